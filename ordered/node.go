package ordered

import "github.com/signadot/pathtree/debug"

type node[T any] struct {
	v    T
	l, r *node[T]
	h    int
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.h
}

func (n *node[T]) fix() {
	hl, hr := height(n.l), height(n.r)
	if hl > hr {
		n.h = hl + 1
		return
	}
	n.h = hr + 1
}

func (n *node[T]) bf() int {
	if n == nil {
		return 0
	}
	return height(n.l) - height(n.r)
}

func rotL[T any](n *node[T]) *node[T] {
	x := n.r
	n.r = x.l
	x.l = n
	n.fix()
	x.fix()
	return x
}

func rotR[T any](n *node[T]) *node[T] {
	x := n.l
	n.l = x.r
	x.r = n
	n.fix()
	x.fix()
	return x
}

func balance[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	switch bf := n.bf(); {
	case bf > 1:
		if debug.Tree() {
			debug.Logf("ordered: rotate right at h=%d bf=%d\n", n.h, bf)
		}
		if n.l.bf() < 0 {
			n.l = rotL(n.l)
		}
		return rotR(n)
	case bf < -1:
		if debug.Tree() {
			debug.Logf("ordered: rotate left at h=%d bf=%d\n", n.h, bf)
		}
		if n.r.bf() > 0 {
			n.r = rotR(n.r)
		}
		return rotL(n)
	}
	n.fix()
	return n
}

// insert returns the new subtree root and whether v was added.
func insert[T any](n *node[T], v T, cmp func(a, b T) int) (*node[T], bool) {
	if n == nil {
		return &node[T]{v: v, h: 1}, true
	}
	var added bool
	switch c := cmp(v, n.v); {
	case c < 0:
		n.l, added = insert(n.l, v, cmp)
	case c > 0:
		n.r, added = insert(n.r, v, cmp)
	default:
		return n, false
	}
	if !added {
		return n, false
	}
	return balance(n), true
}

func remove[T any](n *node[T], v T, cmp func(a, b T) int) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch c := cmp(v, n.v); {
	case c < 0:
		n.l, removed = remove(n.l, v, cmp)
	case c > 0:
		n.r, removed = remove(n.r, v, cmp)
	default:
		removed = true
		if n.l != nil && n.r != nil {
			n.v = maxNode(n.l).v
			n.l, _ = remove(n.l, n.v, cmp)
			break
		}
		if n.l != nil {
			n = n.l
		} else {
			n = n.r
		}
	}
	if !removed {
		return n, false
	}
	return balance(n), true
}

// pre: n != nil
func maxNode[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// pre: n != nil
func minNode[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func inOrder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.l, yield) && yield(n.v) && inOrder(n.r, yield)
}

func postOrder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.l, yield) && postOrder(n.r, yield) && yield(n.v)
}

func release[T any](n *node[T]) {
	if n == nil {
		return
	}
	release(n.l)
	release(n.r)
	var zero T
	n.v = zero
	n.l, n.r = nil, nil
}
