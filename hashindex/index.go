package hashindex

import (
	"iter"

	"github.com/signadot/pathtree/debug"
)

type slot[T any] struct {
	v  T
	ok bool
}

// Index is an open-addressing hash set of T.  Keys are extracted from
// elements with KeyOf; Equal identifies the element to remove.
//
// An Index is not safe for concurrent use.
type Index[T any] struct {
	KeyOf func(T) string
	Equal func(a, b T) bool

	slots []slot[T]
	n     int
	opts  indexOpts
}

func New[T any](keyOf func(T) string, equal func(a, b T) bool, opts ...Option) *Index[T] {
	x := &Index[T]{
		KeyOf: keyOf,
		Equal: equal,
		opts:  indexOpts{capacity: DefaultCapacity},
	}
	for _, opt := range opts {
		opt(&x.opts)
	}
	x.opts.capacity = max(x.opts.capacity, minCapacity)
	x.slots = make([]slot[T], x.opts.capacity)
	return x
}

// Len returns the number of occupied slots.
func (x *Index[T]) Len() int {
	return x.n
}

// Cap returns the number of slots.
func (x *Index[T]) Cap() int {
	return len(x.slots)
}

// CanInsert reports whether Insert would succeed.
func (x *Index[T]) CanInsert() bool {
	if (x.n+1)*2 <= len(x.slots) {
		return true
	}
	return x.opts.maxCapacity == 0 || 2*len(x.slots) <= x.opts.maxCapacity
}

// Insert adds v.  Elements with equal keys, or even equal elements, are
// kept side by side.
func (x *Index[T]) Insert(v T) error {
	if !x.CanInsert() {
		return ErrCapacityExceeded
	}
	x.place(v)
	x.n++
	if x.n*2 > len(x.slots) {
		x.grow()
	}
	return nil
}

func (x *Index[T]) place(v T) {
	m := len(x.slots)
	i := Hash(x.KeyOf(v), m)
	for x.slots[i].ok {
		i = (i + 1) % m
	}
	x.slots[i] = slot[T]{v: v, ok: true}
}

func (x *Index[T]) grow() {
	old := x.slots
	x.slots = make([]slot[T], 2*len(old))
	if debug.Hash() {
		debug.Logf("hashindex: grow %d -> %d (%d live)\n", len(old), len(x.slots), x.n)
	}
	for i := range old {
		if old[i].ok {
			x.place(old[i].v)
		}
	}
}

// Search returns the preferred element among those whose key is key.  The
// first match found along the probe run is taken; each later match
// replaces it when better(candidate, best) is true.
func (x *Index[T]) Search(key string, better func(candidate, best T) bool) (T, bool) {
	var (
		best  T
		found bool
	)
	for v := range x.SearchAll(key) {
		if !found || better(v, best) {
			best = v
			found = true
		}
	}
	return best, found
}

// SearchAll returns an iterator over every element whose key is key, in
// probe order.
func (x *Index[T]) SearchAll(key string) iter.Seq[T] {
	return func(yield func(T) bool) {
		m := len(x.slots)
		for i := Hash(key, m); x.slots[i].ok; i = (i + 1) % m {
			if x.KeyOf(x.slots[i].v) != key {
				continue
			}
			if !yield(x.slots[i].v) {
				return
			}
		}
	}
}

// Remove removes the first element along v's probe run for which
// Equal(v, element) holds and reports whether one was found.
func (x *Index[T]) Remove(v T) bool {
	m := len(x.slots)
	i := Hash(x.KeyOf(v), m)
	for ; x.slots[i].ok; i = (i + 1) % m {
		if x.Equal(v, x.slots[i].v) {
			break
		}
	}
	if !x.slots[i].ok {
		return false
	}
	x.slots[i] = slot[T]{}
	x.n--

	// reseat the rest of the run so that probes do not stop at i.
	moved := 0
	for j := (i + 1) % m; x.slots[j].ok; j = (j + 1) % m {
		w := x.slots[j].v
		x.slots[j] = slot[T]{}
		x.place(w)
		moved++
	}
	if debug.Hash() {
		debug.Logf("hashindex: remove at %d reseated %d\n", i, moved)
	}
	return true
}

// All returns an iterator over every element in slot order.
func (x *Index[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range x.slots {
			if x.slots[i].ok && !yield(x.slots[i].v) {
				return
			}
		}
	}
}

// Reset drops every element and shrinks the table back to its initial
// capacity.
func (x *Index[T]) Reset() {
	x.slots = make([]slot[T], x.opts.capacity)
	x.n = 0
}
