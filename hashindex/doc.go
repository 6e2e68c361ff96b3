// Package hashindex provides a generic open-addressing hash set keyed by
// strings.
//
// An [Index] stores elements directly in a slot array and resolves
// collisions by linear probing.  Several elements may share a key; they
// then occupy different positions along the same probe run, and
// [Index.Search] visits the whole run, choosing among the matches with a
// caller supplied preference.
//
// # Growth and removal
//
// The table keeps its load factor at or below one half: when an insert
// leaves more than half of the slots occupied, the table doubles and every
// element is reinserted in slot order.
//
// There are no tombstones.  Removing an element clears its slot and then
// reinserts every element of the occupied run that follows it, so that no
// probe for a live element ever stops early at the cleared slot.  This
// repair never changes the capacity.
package hashindex
