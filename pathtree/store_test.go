package pathtree

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newStore(t *testing.T, cfg *Config) *Store {
	t.Helper()
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func mustSet(t *testing.T, s *Store, path, value string) {
	t.Helper()
	if err := s.Set(path, value); err != nil {
		t.Fatalf("Set(%q, %q): %v", path, value, err)
	}
}

func list(t *testing.T, s *Store, path string) []string {
	t.Helper()
	seq, err := s.List(path)
	if err != nil {
		t.Fatalf("List(%q): %v", path, err)
	}
	return slices.Collect(seq)
}

func printed(t *testing.T, s *Store) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := s.Print(buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestSetGet(t *testing.T) {
	s := newStore(t, nil)
	mustSet(t, s, "/a/b", "v")

	got, err := s.Get("/a/b")
	if err != nil || got != "v" {
		t.Errorf("Get(/a/b) = %q, %v; want v", got, err)
	}
	if got, err := s.Get("a//b/"); err != nil || got != "v" {
		t.Errorf("Get(a//b/) = %q, %v; want v", got, err)
	}
	if _, err := s.Get("/a"); !errors.Is(err, ErrNoData) {
		t.Errorf("Get(/a) err = %v, want ErrNoData", err)
	}
	if _, err := s.Get("/a/c"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(/a/c) err = %v, want ErrNotFound", err)
	}
	if _, err := s.Get("/"); !errors.Is(err, ErrNoData) {
		t.Errorf("Get(/) err = %v, want ErrNoData", err)
	}
}

func TestEmptyStore(t *testing.T) {
	s := newStore(t, nil)
	if _, err := s.Get("/"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(/) err = %v, want ErrNotFound", err)
	}
	if _, err := s.List("/"); !errors.Is(err, ErrNotFound) {
		t.Errorf("List(/) err = %v, want ErrNotFound", err)
	}
	if err := s.Remove("/"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(/) err = %v, want ErrNotFound", err)
	}
	if _, err := s.Search("v"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Search(v) err = %v, want ErrNotFound", err)
	}
	if got := printed(t, s); got != "" {
		t.Errorf("Print() = %q, want empty", got)
	}
}

func TestSetReplaces(t *testing.T) {
	s := newStore(t, nil)
	mustSet(t, s, "/a", "one")
	mustSet(t, s, "/a", "two")

	if got, _ := s.Get("/a"); got != "two" {
		t.Errorf("Get(/a) = %q, want two", got)
	}
	if _, err := s.Search("one"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Search(one) err = %v, want ErrNotFound", err)
	}
	if got, err := s.Search("two"); err != nil || got != "/a" {
		t.Errorf("Search(two) = %q, %v; want /a", got, err)
	}
	if diff := cmp.Diff(Stats{Directories: 2, Values: 1, Slots: 26}, s.Stats()); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
}

func TestList(t *testing.T) {
	s := newStore(t, nil)
	mustSet(t, s, "/a/c", "2")
	mustSet(t, s, "/a/b", "1")
	mustSet(t, s, "/a/b/deep", "3")
	mustSet(t, s, "/z", "4")

	if diff := cmp.Diff([]string{"b", "c"}, list(t, s, "/a")); diff != "" {
		t.Errorf("List(/a) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "z"}, list(t, s, "")); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
	if got := list(t, s, "/z"); len(got) != 0 {
		t.Errorf("List(/z) = %q, want none", got)
	}
	if _, err := s.List("/nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("List(/nope) err = %v, want ErrNotFound", err)
	}
}

func TestListSorted(t *testing.T) {
	s := newStore(t, nil)
	r := rand.New(rand.NewPCG(3, 5))
	want := map[string]bool{}
	for range 300 {
		name := fmt.Sprintf("n%04d", r.IntN(1000))
		want[name] = true
		mustSet(t, s, "/dir/"+name, name)
	}
	got := list(t, s, "/dir")
	if !slices.IsSorted(got) {
		t.Errorf("List(/dir) not sorted: %q", got)
	}
	if len(got) != len(want) {
		t.Errorf("List(/dir) has %d names, want %d", len(got), len(want))
	}
}

func TestRemove(t *testing.T) {
	s := newStore(t, nil)
	mustSet(t, s, "/a/b", "v")
	mustSet(t, s, "/a/c/d", "w")
	mustSet(t, s, "/e", "v")

	if err := s.Remove("/a"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("/a/b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(/a/b) err = %v, want ErrNotFound", err)
	}
	if _, err := s.Search("w"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Search(w) err = %v, want ErrNotFound", err)
	}
	if got, err := s.Search("v"); err != nil || got != "/e" {
		t.Errorf("Search(v) = %q, %v; want /e", got, err)
	}
	if diff := cmp.Diff([]string{"e"}, list(t, s, "/")); diff != "" {
		t.Errorf("List(/) mismatch (-want +got):\n%s", diff)
	}
	if err := s.Remove("/a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove(/a) err = %v, want ErrNotFound", err)
	}
	if diff := cmp.Diff(Stats{Directories: 2, Values: 1, Slots: 26}, s.Stats()); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveRoot(t *testing.T) {
	s := newStore(t, nil)
	for i := range 40 {
		mustSet(t, s, fmt.Sprintf("/k%d", i), fmt.Sprint(i%3))
	}
	if err := s.Remove("/"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Stats{Slots: 26}, s.Stats()); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
	if _, err := s.Get("/"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(/) err = %v, want ErrNotFound", err)
	}
	mustSet(t, s, "/k1", "1")
	if got, err := s.Search("1"); err != nil || got != "/k1" {
		t.Errorf("Search(1) = %q, %v; want /k1", got, err)
	}
}

func TestIDsNotReused(t *testing.T) {
	s := newStore(t, nil)
	mustSet(t, s, "/a", "v")
	first := s.Lookup("v").ID()
	if err := s.Remove("/a"); err != nil {
		t.Fatal(err)
	}
	mustSet(t, s, "/a", "v")
	if second := s.Lookup("v").ID(); second <= first {
		t.Errorf("id after re-create %d, want > %d", second, first)
	}
}

func TestSearchTieBreak(t *testing.T) {
	tests := []struct {
		name string
		sets [][2]string
		want string
	}{
		{
			name: "siblings",
			sets: [][2]string{{"/x/m", "v"}, {"/x/n", "v"}},
			want: "/x/m",
		},
		{
			name: "siblings reversed names",
			sets: [][2]string{{"/x/n", "v"}, {"/x/m", "v"}},
			want: "/x/n",
		},
		{
			name: "diverge near root",
			sets: [][2]string{{"/a/z", "v"}, {"/b", "v"}, {"/a/y/q", "v"}},
			want: "/a/z",
		},
		{
			name: "branch point decides not leaf",
			sets: [][2]string{{"/p", "."}, {"/q", "."}, {"/q/r", "v"}, {"/p/s", "v"}},
			want: "/p/s",
		},
		{
			name: "ancestor and descendant",
			sets: [][2]string{{"/a/b", "v"}, {"/a", "v"}},
			want: "/a/b",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore(t, nil)
			for _, kv := range tc.sets {
				mustSet(t, s, kv[0], kv[1])
			}
			got, err := s.Search("v")
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("Search(v) = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewerBranch(t *testing.T) {
	s := newStore(t, nil)
	mustSet(t, s, "/x/m/deep", "1")
	mustSet(t, s, "/x/n", "2")
	deep := s.findPath(Split("/x/m/deep"))
	m := s.findPath(Split("/x/m"))
	n := s.findPath(Split("/x/n"))

	if !newerBranch(n, nil) {
		t.Error("candidate should beat absence")
	}
	if !newerBranch(deep, n) {
		t.Error("/x/m/deep should beat /x/n")
	}
	if newerBranch(n, deep) {
		t.Error("/x/n should not beat /x/m/deep")
	}
	if newerBranch(m, m) {
		t.Error("directory should not beat itself")
	}
	if newerBranch(deep, m) || newerBranch(m, deep) {
		t.Error("ancestor pair should not prefer either")
	}
}

func TestPrintCreationOrder(t *testing.T) {
	s := newStore(t, nil)
	mustSet(t, s, "/zeta", "1")
	mustSet(t, s, "/alpha", "2")
	mustSet(t, s, "/mid/x", "3")
	mustSet(t, s, "/", "root")
	mustSet(t, s, "/alpha", "4")

	want := strings.Join([]string{
		"/ root",
		"/zeta 1",
		"/alpha 4",
		"/mid/x 3",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, printed(t, s)); diff != "" {
		t.Errorf("Print mismatch (-want +got):\n%s", diff)
	}

	var paths []string
	for p := range s.Entries() {
		paths = append(paths, p)
	}
	if diff := cmp.Diff([]string{"/", "/zeta", "/alpha", "/mid/x"}, paths); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func TestSetResourceLimits(t *testing.T) {
	t.Run("directories", func(t *testing.T) {
		s := newStore(t, &Config{MaxDirectories: 3})
		mustSet(t, s, "/a/b", "v")
		before, stats := printed(t, s), s.Stats()
		if err := s.Set("/c", "w"); !errors.Is(err, ErrResourceExhausted) {
			t.Fatalf("Set(/c) err = %v, want ErrResourceExhausted", err)
		}
		if diff := cmp.Diff(before, printed(t, s)); diff != "" {
			t.Errorf("Print changed (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(stats, s.Stats()); diff != "" {
			t.Errorf("Stats changed (-want +got):\n%s", diff)
		}
		mustSet(t, s, "/a", "existing directories are free")

		err := s.Set("/d/e", "x")
		want := "resources exhausted: would reach 5 directories, limit 3"
		if err == nil || err.Error() != want {
			t.Errorf("Set(/d/e) err = %v, want %q", err, want)
		}
	})
	t.Run("value bytes", func(t *testing.T) {
		s := newStore(t, &Config{MaxValueBytes: 4})
		mustSet(t, s, "/a", "1234")
		if err := s.Set("/a", "12345"); !errors.Is(err, ErrResourceExhausted) {
			t.Fatalf("Set err = %v, want ErrResourceExhausted", err)
		}
		if got, _ := s.Get("/a"); got != "1234" {
			t.Errorf("Get(/a) = %q, want 1234", got)
		}
	})
	t.Run("index capacity", func(t *testing.T) {
		s := newStore(t, &Config{InitialCapacity: 4, MaxCapacity: 4})
		mustSet(t, s, "/a", "1")
		mustSet(t, s, "/b", "2")
		if err := s.Set("/c", "3"); !errors.Is(err, ErrResourceExhausted) {
			t.Fatalf("Set(/c) err = %v, want ErrResourceExhausted", err)
		}
		if _, err := s.Get("/c"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(/c) err = %v, want ErrNotFound", err)
		}
		for _, v := range []string{"replaced", "again"} {
			mustSet(t, s, "/a", v)
			if got, err := s.Search(v); err != nil || got != "/a" {
				t.Errorf("Search(%s) = %q, %v; want /a", v, got, err)
			}
		}
		for _, v := range []string{"1", "replaced"} {
			if _, err := s.Search(v); !errors.Is(err, ErrNotFound) {
				t.Errorf("Search(%s) err = %v, want ErrNotFound", v, err)
			}
		}
		want := Stats{Directories: 3, Values: 2, Slots: 4}
		if diff := cmp.Diff(want, s.Stats()); diff != "" {
			t.Errorf("Stats mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	for _, cfg := range []Config{
		{MaxDirectories: -1},
		{MaxValueBytes: -1},
		{InitialCapacity: 8, MaxCapacity: 4},
	} {
		if _, err := New(&cfg); err == nil {
			t.Errorf("New(%+v) succeeded, want error", cfg)
		}
	}
}

// TestModel checks a random sequence of operations against a map.
func TestModel(t *testing.T) {
	r := rand.New(rand.NewPCG(17, 19))
	s := newStore(t, nil)
	model := map[string]string{}
	segs := []string{"a", "b", "c"}
	randPath := func() string {
		n := 1 + r.IntN(3)
		p := make([]string, n)
		for i := range p {
			p[i] = segs[r.IntN(len(segs))]
		}
		return Join(p...)
	}
	for step := range 3000 {
		p := randPath()
		switch r.IntN(4) {
		case 0:
			err := s.Remove(p)
			found := false
			for k := range model {
				if k == p || strings.HasPrefix(k, p+"/") {
					delete(model, k)
					found = true
				}
			}
			if err != nil && !errors.Is(err, ErrNotFound) {
				t.Fatalf("step %d: Remove(%s): %v", step, p, err)
			}
			if found && err != nil {
				t.Fatalf("step %d: Remove(%s) = %v with live entries below", step, p, err)
			}
		default:
			v := fmt.Sprint(r.IntN(5))
			mustSet(t, s, p, v)
			model[p] = v
		}
		for k, v := range model {
			got, err := s.Get(k)
			if err != nil || got != v {
				t.Fatalf("step %d: Get(%s) = %q, %v; want %q", step, k, got, err, v)
			}
		}
		for v := range 5 {
			want := fmt.Sprint(v)
			holders := 0
			for _, mv := range model {
				if mv == want {
					holders++
				}
			}
			n := 0
			for d := range s.SearchAll(want) {
				if got, _ := d.Value(); got != want {
					t.Fatalf("step %d: %s holds %q, indexed under %q", step, d.Path(), got, want)
				}
				n++
			}
			if n != holders {
				t.Fatalf("step %d: %d holders of %q, want %d", step, n, want, holders)
			}
			p, err := s.Search(want)
			if holders == 0 {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("step %d: Search(%s) = %q, %v", step, want, p, err)
				}
				continue
			}
			if model[p] != want {
				t.Fatalf("step %d: Search(%s) = %q holding %q", step, want, p, model[p])
			}
		}
	}
}
