// Package pathtree provides an in-memory store of string values addressed
// by slash separated paths.
//
// # Structure
//
// Every path segment names a [Directory].  Directories are created
// implicitly by [Store.Set] and form a tree rooted at "/":
//   - each directory keeps its children twice, ordered by name (for
//     [Store.List]) and ordered by creation id (for [Store.Print])
//   - the store keeps one global reverse index from value to the
//     directories holding it (for [Store.Search])
//
// # Search
//
// Several directories may hold the same value.  [Store.Search] chooses
// among them by ancestry: the two candidates are walked up to the pair of
// sibling ancestors directly below their lowest common ancestor, and the
// candidate whose sibling ancestor has the smaller creation id is chosen.
//
// # Paths
//
//	"/a/b"   // segments a, b
//	"a//b/"  // same; empty segments are skipped
//	"/", ""  // the root
//
// A Store is not safe for concurrent use; callers that share one must
// serialize every call, reads included.
package pathtree
