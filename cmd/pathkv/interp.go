package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/signadot/pathtree/pathtree"
	"github.com/signadot/pathtree/query"
)

const helpText = `help: print the available commands.
quit: end the session.
set: add or modify the value stored at a path.
print: print every path and value.
find: print the value stored at a path.
list: list the immediate children of a path.
search: find the path holding a value.
delete: delete a path and everything below it.
select: print the entries matching an expression.
stats: print store sizes.`

const (
	msgNotFound = "not found"
	msgNoData   = "no data"
)

var errQuit = errors.New("quit")

// Interp executes line oriented commands against a store.
type Interp struct {
	Store  *pathtree.Store
	Out    io.Writer
	Colors *Colors
	Log    *slog.Logger
}

func NewInterp(store *pathtree.Store, out io.Writer) *Interp {
	return &Interp{
		Store:  store,
		Out:    out,
		Colors: NoColors(),
		Log:    slog.New(slog.DiscardHandler),
	}
}

// Run executes every line of r.  It stops at quit, at the end of input,
// and when the store runs out of resources.
func (in *Interp) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		err := in.Exec(sc.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return sc.Err()
}

// Exec executes one command line.  Unknown commands are ignored.
func (in *Interp) Exec(line string) error {
	cmd, rest := cut(line)
	switch cmd {
	case "":
		return nil
	case "help":
		return in.println(in.Colors.Help("%s", helpText))
	case "quit":
		in.Store.Clear()
		return errQuit
	case "set":
		path, value := cut(rest)
		if path == "" {
			return in.usage("set <path> <value>")
		}
		return in.set(path, value)
	case "print":
		return in.print()
	case "find":
		path, _ := cut(rest)
		v, err := in.Store.Get(path)
		if err != nil {
			return in.report(err)
		}
		return in.println(in.Colors.Value("%s", v))
	case "list":
		path, _ := cut(rest)
		names, err := in.Store.List(orRoot(path))
		if err != nil {
			return in.report(err)
		}
		for name := range names {
			if err := in.println(in.Colors.Path("%s", name)); err != nil {
				return err
			}
		}
		return nil
	case "search":
		p, err := in.Store.Search(rest)
		if err != nil {
			return in.report(err)
		}
		return in.println(in.Colors.Path("%s", p))
	case "delete":
		path, _ := cut(rest)
		if err := in.Store.Remove(orRoot(path)); err != nil {
			return in.report(err)
		}
		return nil
	case "select":
		if rest == "" {
			return in.usage("select <expr>")
		}
		return in.selectEntries(rest)
	case "stats":
		st := in.Store.Stats()
		return in.println(fmt.Sprintf("directories %d values %d slots %d", st.Directories, st.Values, st.Slots))
	}
	in.Log.Debug("ignored command", "cmd", cmd)
	return nil
}

func (in *Interp) set(path, value string) error {
	err := in.Store.Set(path, value)
	if errors.Is(err, pathtree.ErrResourceExhausted) {
		in.Log.Error("set failed, ending session", "path", path, "error", err)
		in.Store.Clear()
		return err
	}
	return err
}

func (in *Interp) print() error {
	for p, v := range in.Store.Entries() {
		if err := in.println(in.Colors.Path("%s", p) + " " + in.Colors.Value("%s", v)); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interp) selectEntries(src string) error {
	f, err := query.Compile(src)
	if err != nil {
		return in.println(in.Colors.Err("%v", err))
	}
	for e, err := range query.Select(in.Store, f) {
		if err != nil {
			return in.println(in.Colors.Err("%v", err))
		}
		if err := in.println(in.Colors.Path("%s", e.Path) + " " + in.Colors.Value("%s", e.Value)); err != nil {
			return err
		}
	}
	return nil
}

// report prints the message for an ordinary lookup failure.
func (in *Interp) report(err error) error {
	switch {
	case errors.Is(err, pathtree.ErrNotFound):
		return in.println(in.Colors.Err("%s", msgNotFound))
	case errors.Is(err, pathtree.ErrNoData):
		return in.println(in.Colors.Err("%s", msgNoData))
	}
	return err
}

func (in *Interp) usage(synopsis string) error {
	return in.println(in.Colors.Err("usage: %s", synopsis))
}

func (in *Interp) println(s string) error {
	_, err := fmt.Fprintln(in.Out, s)
	return err
}

// cut splits s into its first word and the remainder with leading blanks
// removed.
func cut(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return strings.TrimRight(s, "\r"), ""
	}
	return s[:i], strings.TrimRight(strings.TrimLeft(s[i:], " \t"), "\r")
}

func orRoot(path string) string {
	if path == "" {
		return pathtree.Root
	}
	return path
}
