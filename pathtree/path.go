package pathtree

import (
	"iter"
	"strings"
)

// Delimiter separates path segments.
const Delimiter = "/"

// Root is the path of the root directory.
const Root = Delimiter

// Segments returns an iterator over the non-empty segments of path.
func Segments(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for seg := range strings.SplitSeq(path, Delimiter) {
			if seg == "" {
				continue
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// Split splits path into its non-empty segments.
//
// Examples:
//   - Split("/a/b") → ["a", "b"]
//   - Split("a//b/") → ["a", "b"]
//   - Split("/") → []
func Split(path string) []string {
	res := []string{}
	for seg := range Segments(path) {
		res = append(res, seg)
	}
	return res
}

// Join renders segments as an absolute path.  Join() is "/".
func Join(segs ...string) string {
	if len(segs) == 0 {
		return Root
	}
	return Delimiter + strings.Join(segs, Delimiter)
}
