package debug

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type debug struct {
	Tree  bool
	Hash  bool
	Store bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tree = boolEnv("PATHTREE_DEBUG_TREE")
	d.Hash = boolEnv("PATHTREE_DEBUG_HASH")
	d.Store = boolEnv("PATHTREE_DEBUG_STORE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Enable turns on the named switches ("tree", "hash", "store" or "all").
// It is meant to be called once at program start, before any store is used.
func Enable(names ...string) error {
	for _, name := range names {
		switch strings.TrimSpace(name) {
		case "tree":
			d.Tree = true
		case "hash":
			d.Hash = true
		case "store":
			d.Store = true
		case "all":
			d.Tree, d.Hash, d.Store = true, true, true
		case "":
		default:
			return fmt.Errorf("unknown debug switch %q", name)
		}
	}
	return nil
}

func Tree() bool {
	return d.Tree
}
func Hash() bool {
	return d.Hash
}
func Store() bool {
	return d.Store
}
