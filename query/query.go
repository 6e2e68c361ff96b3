package query

import (
	"fmt"
	"iter"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/pathtree/pathtree"
)

// Entry is the environment of a filter expression.
type Entry struct {
	Path  string
	Name  string
	Value string
	ID    uint64
	Depth int
}

func FromDirectory(d *pathtree.Directory) Entry {
	v, _ := d.Value()
	return Entry{
		Path:  d.Path(),
		Name:  d.Name(),
		Value: v,
		ID:    d.ID(),
		Depth: d.Depth(),
	}
}

// Filter is a compiled expression.
type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	opts := append([]expr.Option{expr.Env(Entry{}), expr.AsBool()}, exprOpts()...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

func (f *Filter) Match(e Entry) (bool, error) {
	res, err := expr.Run(f.prg, e)
	if err != nil {
		return false, fmt.Errorf("error evaluating %q on %s: %w", f.src, e.Path, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%q returned %T, not bool", f.src, res)
	}
	return b, nil
}

// Select returns an iterator over the entries of s matching f, in creation
// order.  Iteration stops after the first evaluation error.
func Select(s *pathtree.Store, f *Filter) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		s.Walk(func(d *pathtree.Directory) bool {
			e := FromDirectory(d)
			ok, err := f.Match(e)
			if err != nil {
				yield(Entry{}, err)
				return false
			}
			if !ok {
				return true
			}
			return yield(e, nil)
		})
	}
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("segments", func(params ...any) (any, error) {
			return pathtree.Split(params[0].(string)), nil
		},
			new(func(string) []string)),
		expr.Function("under", func(params ...any) (any, error) {
			return under(params[0].(string), params[1].(string)), nil
		},
			new(func(string, string) bool)),
	}
}

func under(path, prefix string) bool {
	p := pathtree.Join(pathtree.Split(path)...)
	q := pathtree.Join(pathtree.Split(prefix)...)
	if q == pathtree.Root || p == q {
		return true
	}
	return strings.HasPrefix(p, q+pathtree.Delimiter)
}
