package rib

import "github.com/google/btree"

// table is the Name-ordered container of RibEntry pointers backing Rib's
// prefix tree. Ordering entries by Name (spec §3) makes "a prefix precedes
// its descendants, and names sharing a prefix are contiguous" a property
// of the underlying structure instead of something re-derived on every
// scan; google/btree's generic BTreeG gives that ordering plus the
// AscendGreaterOrEqual range scan that the parent-steals-children walk in
// insert (spec §4.2) needs.
type table struct {
	t *btree.BTreeG[*RibEntry]
}

func newTable() *table {
	return &table{
		t: btree.NewG(32, func(a, b *RibEntry) bool {
			return a.name.Compare(b.name) < 0
		}),
	}
}

func (tb *table) get(name Name) (*RibEntry, bool) {
	return tb.t.Get(&RibEntry{name: name})
}

func (tb *table) insert(e *RibEntry) {
	tb.t.ReplaceOrInsert(e)
}

func (tb *table) delete(e *RibEntry) {
	tb.t.Delete(e)
}

func (tb *table) len() int {
	return tb.t.Len()
}

// ascend calls fn for every entry in Name order, stopping early if fn
// returns false.
func (tb *table) ascend(fn func(*RibEntry) bool) {
	tb.t.Ascend(func(e *RibEntry) bool { return fn(e) })
}

// descendantsOf calls fn, in Name order, for every entry whose name has
// prefix as a strict prefix. It relies on table ordering: such entries are
// exactly the contiguous run starting just after prefix and ending at the
// first entry whose name no longer has prefix as a prefix.
func (tb *table) descendantsOf(prefix Name, fn func(*RibEntry) bool) {
	tb.t.AscendGreaterOrEqual(&RibEntry{name: prefix}, func(e *RibEntry) bool {
		if e.name.Equal(prefix) {
			return true
		}
		if !prefix.IsPrefixOf(e.name) {
			return false
		}
		return fn(e)
	})
}

// findParent scans ancestors of name — name.Prefix(n-1), name.Prefix(n-2),
// …, the empty name — and returns the first one present in the table
// (spec §4.2: "the first match ... is the parent").
func (tb *table) findParent(name Name) *RibEntry {
	for k := name.Len() - 1; k >= 0; k-- {
		if e, ok := tb.get(name.Prefix(k)); ok {
			return e
		}
	}
	return nil
}
