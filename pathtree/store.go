package pathtree

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/signadot/pathtree/debug"
	"github.com/signadot/pathtree/hashindex"
)

// Store is a tree of directories holding string values, with a reverse
// index from value to directory.
type Store struct {
	cfg    Config
	log    *slog.Logger
	root   *Directory
	values *hashindex.Index[*Directory]
	nextID uint64
	dirs   int
}

// Stats describes the size of a Store.
type Stats struct {
	Directories int
	Values      int
	Slots       int
}

// New creates an empty store.  A nil cfg means DefaultConfig.
func New(cfg *Config, opts ...Option) (*Store, error) {
	c := DefaultConfig()
	if cfg != nil {
		c.Merge(cfg)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	s := &Store{
		cfg: c,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.values = hashindex.New(valueOf, sameDirectory,
		hashindex.WithCapacity(c.InitialCapacity),
		hashindex.WithMaxCapacity(c.MaxCapacity))
	return s, nil
}

func valueOf(d *Directory) string {
	return d.value
}

func sameDirectory(a, b *Directory) bool {
	return a == b
}

// Set stores value at path, creating missing directories and replacing any
// value already held there.
func (s *Store) Set(path, value string) error {
	segs := Split(path)
	if s.cfg.MaxValueBytes > 0 && len(value) > s.cfg.MaxValueBytes {
		return fmt.Errorf("%w: value of %d bytes exceeds %d", ErrResourceExhausted, len(value), s.cfg.MaxValueBytes)
	}
	deepest, missing := s.resolve(segs)
	if s.cfg.MaxDirectories > 0 && s.dirs+missing > s.cfg.MaxDirectories {
		return fmt.Errorf("%w: would reach %d directories, limit %d", ErrResourceExhausted, s.dirs+missing, s.cfg.MaxDirectories)
	}
	newValue := missing > 0 || !deepest.hasValue
	if newValue && !s.values.CanInsert() {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, hashindex.ErrCapacityExceeded)
	}

	d := s.createPath(segs)
	s.log.Debug("set", "path", path, "id", d.id)
	if d.hasValue {
		s.values.Remove(d)
	}
	d.value = value
	d.hasValue = true
	// a replaced value frees its slot before the insert, so only a new
	// value can need growth, and CanInsert allowed that above.
	if err := s.values.Insert(d); err != nil {
		panic(fmt.Sprintf("pathtree: value index rejected %s after capacity check: %v", d.Path(), err))
	}
	return nil
}

// Get returns the value stored at path.
func (s *Store) Get(path string) (string, error) {
	d := s.findPath(Split(path))
	if d == nil {
		return "", ErrNotFound
	}
	if !d.hasValue {
		return "", ErrNoData
	}
	return d.value, nil
}

// List returns an iterator over the names of the immediate children of
// path, in lexicographic order.
func (s *Store) List(path string) (iter.Seq[string], error) {
	d := s.findPath(Split(path))
	if d == nil {
		return nil, ErrNotFound
	}
	return func(yield func(string) bool) {
		for c := range d.byName.All() {
			if !yield(c.name) {
				return
			}
		}
	}, nil
}

// Remove removes the directory at path together with everything below it.
// Removing the root empties the store.
func (s *Store) Remove(path string) error {
	d := s.findPath(Split(path))
	if d == nil {
		return ErrNotFound
	}
	if p := d.parent; p != nil {
		p.byName.Remove(d)
		p.byID.Remove(d)
	}
	s.log.Debug("remove", "path", d.Path(), "id", d.id)
	if d == s.root {
		s.Clear()
		return nil
	}
	s.destroy(d)
	return nil
}

// Clear removes every directory.
func (s *Store) Clear() {
	if s.root == nil {
		return
	}
	s.destroy(s.root)
	s.root = nil
	s.values.Reset()
}

// Lookup returns the directory chosen among those holding value, or nil.
func (s *Store) Lookup(value string) *Directory {
	d, _ := s.values.Search(value, newerBranch)
	return d
}

// Search returns the path of the directory chosen among those holding
// value.
func (s *Store) Search(value string) (string, error) {
	d := s.Lookup(value)
	if d == nil {
		return "", ErrNotFound
	}
	return d.Path(), nil
}

// SearchAll returns an iterator over every directory holding value, in no
// particular order.
func (s *Store) SearchAll(value string) iter.Seq[*Directory] {
	return s.values.SearchAll(value)
}

// Walk calls fn on every directory holding a value, in creation order,
// until fn returns false.
func (s *Store) Walk(fn func(*Directory) bool) {
	if s.root == nil {
		return
	}
	walk(s.root, fn)
}

func walk(d *Directory, fn func(*Directory) bool) bool {
	if d.hasValue && !fn(d) {
		return false
	}
	for c := range d.byID.All() {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// Entries returns an iterator over (path, value) pairs in creation order.
func (s *Store) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		s.Walk(func(d *Directory) bool {
			return yield(d.Path(), d.value)
		})
	}
}

// Print writes one "path value" line per entry, in creation order.
func (s *Store) Print(w io.Writer) error {
	for path, value := range s.Entries() {
		if _, err := fmt.Fprintf(w, "%s %s\n", path, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Stats() Stats {
	return Stats{
		Directories: s.dirs,
		Values:      s.values.Len(),
		Slots:       s.values.Cap(),
	}
}

// resolve returns the deepest existing directory on segs and the number
// of directories, root included, that createPath would allocate.
func (s *Store) resolve(segs []string) (*Directory, int) {
	if s.root == nil {
		return nil, len(segs) + 1
	}
	d := s.root
	for i, seg := range segs {
		c := d.child(seg)
		if c == nil {
			return d, len(segs) - i
		}
		d = c
	}
	return d, 0
}

func (s *Store) createPath(segs []string) *Directory {
	if s.root == nil {
		s.root = s.newDirectory("", nil)
	}
	d := s.root
	for _, seg := range segs {
		c := d.child(seg)
		if c == nil {
			c = s.newDirectory(seg, d)
			if !d.byID.Insert(c) {
				s.log.Warn("rejected duplicate id", "id", c.id, "parent", d.Path())
			}
			if !d.byName.Insert(c) {
				s.log.Warn("rejected duplicate name", "name", seg, "parent", d.Path())
			}
		}
		d = c
	}
	return d
}

func (s *Store) newDirectory(name string, parent *Directory) *Directory {
	d := newDirectory(s.nextID, name, parent)
	s.nextID++
	s.dirs++
	if debug.Store() {
		debug.Logf("pathtree: create %d %q depth %d\n", d.id, name, d.depth)
	}
	return d
}

func (s *Store) findPath(segs []string) *Directory {
	d := s.root
	for _, seg := range segs {
		if d == nil {
			return nil
		}
		d = d.child(seg)
	}
	return d
}

// destroy unregisters the values of d's subtree and unlinks it.  d must
// already be detached from its parent.
func (s *Store) destroy(d *Directory) {
	if d.hasValue {
		s.values.Remove(d)
		d.value, d.hasValue = "", false
	}
	for c := range d.byID.All() {
		s.destroy(c)
	}
	d.byName.Clear()
	d.byID.Clear()
	d.parent = nil
	s.dirs--
	if debug.Store() {
		debug.Logf("pathtree: destroy %d %q\n", d.id, d.name)
	}
}
