package hashindex

const (
	hashA = 31415
	hashB = 27183
)

// Hash maps key to a slot in a table of m slots, m >= 2.
//
// It is a rolling hash whose multiplier advances by hashB modulo m-1 after
// each byte.
func Hash(key string, m int) int {
	mod := uint64(m)
	var h, a uint64 = 0, hashA
	for i := 0; i < len(key); i++ {
		h = (a*h + uint64(key[i])) % mod
		a = a * hashB % (mod - 1)
	}
	return int(h)
}
