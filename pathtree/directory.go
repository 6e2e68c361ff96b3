package pathtree

import (
	"cmp"
	"slices"
	"strings"

	"github.com/signadot/pathtree/ordered"
)

// Directory is a node of the store.  The parent owns its children; the two
// child trees are ordered views over the same set of directories.
type Directory struct {
	id       uint64
	depth    int
	name     string
	value    string
	hasValue bool
	parent   *Directory

	byName *ordered.Tree[*Directory]
	byID   *ordered.Tree[*Directory]
}

func newDirectory(id uint64, name string, parent *Directory) *Directory {
	d := &Directory{
		id:     id,
		name:   name,
		parent: parent,
		byName: ordered.New(cmpName),
		byID:   ordered.New(cmpID),
	}
	if parent != nil {
		d.depth = parent.depth + 1
	}
	return d
}

func cmpName(a, b *Directory) int {
	return strings.Compare(a.name, b.name)
}

func cmpID(a, b *Directory) int {
	return cmp.Compare(a.id, b.id)
}

func nameKey(name string, d *Directory) int {
	return strings.Compare(name, d.name)
}

func (d *Directory) child(name string) *Directory {
	c, _ := ordered.Find(d.byName, name, nameKey)
	return c
}

// ID returns the creation id.  Ids grow with creation order and are never
// reused within a store.
func (d *Directory) ID() uint64 {
	return d.id
}

// Name returns the last segment of the directory's path, "" for the root.
func (d *Directory) Name() string {
	return d.name
}

// Depth is the number of edges between d and the root.
func (d *Directory) Depth() int {
	return d.depth
}

func (d *Directory) Parent() *Directory {
	return d.parent
}

func (d *Directory) Value() (string, bool) {
	return d.value, d.hasValue
}

// Segments returns the segments of d's path from the root.
func (d *Directory) Segments() []string {
	segs := make([]string, 0, d.depth)
	for x := d; x.parent != nil; x = x.parent {
		segs = append(segs, x.name)
	}
	slices.Reverse(segs)
	return segs
}

// Path returns d's absolute path.
func (d *Directory) Path() string {
	return Join(d.Segments()...)
}

// Len returns the number of immediate children.
func (d *Directory) Len() int {
	return d.byID.Len()
}

func (d *Directory) String() string {
	return d.Path()
}

// newerBranch reports whether a is preferred over b as a search result.
//
// Both are lifted to the two ancestors that are siblings directly below
// their lowest common ancestor; a is preferred when its ancestor was
// created first.  A nil b always loses.
func newerBranch(a, b *Directory) bool {
	if b == nil {
		return true
	}
	for a.depth > b.depth {
		a = a.parent
	}
	for b.depth > a.depth {
		b = b.parent
	}
	for a.parent != b.parent {
		a, b = a.parent, b.parent
	}
	return a.id < b.id
}
