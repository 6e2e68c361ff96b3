// Package ordered provides a generic height-balanced (AVL) binary search
// tree.
//
// A [Tree] is parameterized by a caller supplied total order. Elements are
// stored by value; the tree never inspects or frees what an element refers
// to, so a tree of pointers is a non-owning view over objects owned
// elsewhere.
//
// # Usage
//
//	t := ordered.New(strings.Compare)
//	t.Insert("b")
//	t.Insert("a")
//	if !t.Insert("a") {
//		// duplicate, tree unchanged
//	}
//	for s := range t.All() {
//		fmt.Println(s) // a, b
//	}
//
// Lookups by a key of a different type than the element use [Find] with a
// key-vs-element comparator:
//
//	d, ok := ordered.Find(byName, "etc", func(k string, d *Dir) int {
//		return strings.Compare(k, d.Name)
//	})
//
// # Balancing
//
// Every node caches the height of its subtree (a leaf has height 1, the
// empty tree height 0). After each structural change the nodes on the
// mutated path are rebalanced bottom-up, so that for every node the heights
// of its two subtrees differ by at most one.
package ordered
