package strref

import "iter"

// Table keeps distinct strings in insertion order and indexes them by
// content. The zero Table is empty and ready to use.
type Table struct {
	items []Str
	index Map[int]
}

// Add stores v and returns its position. Adding content that is already
// present returns the existing position and releases the converted value.
func (t *Table) Add(v IntoStr) int {
	s := v.IntoStr()
	if i, ok := t.index.Lookup(s.View()); ok {
		s.Release()
		return i
	}
	i := len(t.items)
	t.index.put(s.Clone(), i)
	t.items = append(t.items, s)
	return i
}

// Index returns the position of key.
func (t *Table) Index(key StrRef) (int, bool) {
	return t.index.Get(key)
}

// At returns the value at position i. The result is borrowed from the
// table: clone it to keep it after the table is released.
func (t *Table) At(i int) Str {
	return t.items[i]
}

// Len returns the number of distinct values.
func (t *Table) Len() int {
	return len(t.items)
}

// All iterates over the values in insertion order.
func (t *Table) All() iter.Seq2[int, Str] {
	return func(yield func(int, Str) bool) {
		for i, s := range t.items {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Release releases every stored value and empties the table.
func (t *Table) Release() {
	for i := range t.items {
		t.items[i].Release()
	}
	t.items = nil
	t.index.Clear()
}
