package strref

import (
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Map is a hash map keyed by string content. Keys of any kind with equal
// bytes address the same entry. The zero Map is empty and ready to use.
// A Map is not safe for concurrent mutation.
type Map[V any] struct {
	buckets map[uint64][]mapEntry[V]
	n       int
}

type mapEntry[V any] struct {
	key Str
	val V
}

// NewMap returns an empty Map sized for about capacity keys.
func NewMap[V any](capacity int) *Map[V] {
	return &Map[V]{buckets: make(map[uint64][]mapEntry[V], capacity)}
}

func (m *Map[V]) find(h uint64, key string) int {
	for i := range m.buckets[h] {
		if m.buckets[h][i].key.View() == key {
			return i
		}
	}
	return -1
}

// Put stores val under key and takes ownership of the converted key. When
// the content is already present the stored key is kept, the new one is
// released, and the previous value is returned.
func (m *Map[V]) Put(key IntoStr, val V) (prev V, replaced bool) {
	return m.put(key.IntoStr(), val)
}

func (m *Map[V]) put(k Str, val V) (prev V, replaced bool) {
	if m.buckets == nil {
		m.buckets = make(map[uint64][]mapEntry[V])
	}
	h := Hash(k)
	if i := m.find(h, k.View()); i >= 0 {
		e := &m.buckets[h][i]
		prev, e.val = e.val, val
		k.Release()
		return prev, true
	}
	m.buckets[h] = append(m.buckets[h], mapEntry[V]{key: k, val: val})
	m.n++
	return prev, false
}

// Get returns the value stored under the content of key.
func (m *Map[V]) Get(key StrRef) (V, bool) {
	return m.Lookup(key.BorrowStr())
}

// Lookup returns the value stored under key.
func (m *Map[V]) Lookup(key string) (V, bool) {
	h := xxhash.Sum64String(key)
	if i := m.find(h, key); i >= 0 {
		return m.buckets[h][i].val, true
	}
	var zero V
	return zero, false
}

// Delete removes the entry for key, releasing the stored key. It reports
// whether an entry was removed.
func (m *Map[V]) Delete(key StrRef) bool {
	s := key.BorrowStr()
	h := xxhash.Sum64String(s)
	i := m.find(h, s)
	if i < 0 {
		return false
	}
	bucket := m.buckets[h]
	bucket[i].key.Release()
	last := len(bucket) - 1
	bucket[i] = bucket[last]
	bucket[last] = mapEntry[V]{}
	if last == 0 {
		delete(m.buckets, h)
	} else {
		m.buckets[h] = bucket[:last]
	}
	m.n--
	return true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.n
}

// All iterates over the entries in no particular order. The yielded keys
// are borrowed from the map: clone one to keep it past the next mutation.
func (m *Map[V]) All() iter.Seq2[Str, V] {
	return func(yield func(Str, V) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Clear removes every entry and releases the stored keys.
func (m *Map[V]) Clear() {
	for _, bucket := range m.buckets {
		for i := range bucket {
			bucket[i].key.Release()
		}
	}
	clear(m.buckets)
	m.n = 0
}
