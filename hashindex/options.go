package hashindex

// DefaultCapacity is the number of slots of a new Index.
const DefaultCapacity = 26

const minCapacity = 2

type indexOpts struct {
	capacity    int
	maxCapacity int
}

type Option func(*indexOpts)

// WithCapacity sets the initial number of slots.  Values below 2 are
// raised to 2.
func WithCapacity(n int) Option {
	return func(o *indexOpts) { o.capacity = n }
}

// WithMaxCapacity bounds growth.  Zero means unbounded.
func WithMaxCapacity(n int) Option {
	return func(o *indexOpts) { o.maxCapacity = n }
}
