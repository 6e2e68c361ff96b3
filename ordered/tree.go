package ordered

import "iter"

// Tree is an AVL tree ordered by Cmp. The zero value is not usable; create
// trees with New.
//
// A Tree is not safe for concurrent use.
type Tree[T any] struct {
	Cmp  func(a, b T) int
	root *node[T]
	n    int
}

func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{Cmp: cmp}
}

// Insert adds v to the tree.  It returns false, leaving the tree unchanged,
// when an element comparing equal to v is already present.
func (t *Tree[T]) Insert(v T) bool {
	root, added := insert(t.root, v, t.Cmp)
	t.root = root
	if added {
		t.n++
	}
	return added
}

// Remove removes the element comparing equal to v and reports whether one
// was found.
func (t *Tree[T]) Remove(v T) bool {
	root, removed := remove(t.root, v, t.Cmp)
	t.root = root
	if removed {
		t.n--
	}
	return removed
}

// Get returns the element comparing equal to v under the tree's order.
func (t *Tree[T]) Get(v T) (T, bool) {
	return Find(t, v, t.Cmp)
}

// Find performs a binary search of t for key.  cmp compares key against an
// element and must be consistent with the tree's order.
func Find[T, K any](t *Tree[T], key K, cmp func(K, T) int) (T, bool) {
	n := t.root
	for n != nil {
		c := cmp(key, n.v)
		switch {
		case c < 0:
			n = n.l
		case c > 0:
			n = n.r
		default:
			return n.v, true
		}
	}
	var zero T
	return zero, false
}

// All returns an iterator over the elements of t in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		inOrder(t.root, yield)
	}
}

// PostOrder returns an iterator yielding each element after both of its
// subtrees.
func (t *Tree[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		postOrder(t.root, yield)
	}
}

// Min returns the smallest element.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return minNode(t.root).v, true
}

// Max returns the largest element.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return maxNode(t.root).v, true
}

func (t *Tree[T]) Len() int {
	return t.n
}

// Height returns the height of the root, 0 for an empty tree.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Clear drops every node.  Elements themselves are left alone.
func (t *Tree[T]) Clear() {
	release(t.root)
	t.root = nil
	t.n = 0
}
