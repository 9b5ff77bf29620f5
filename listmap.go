// Package listmap implements an ordered symbol table backed by a singly
// linked list of distinct keys kept in ascending order.
//
// All operations are linear scans of the chain; the package trades speed for
// a minimal pointer-based structure, which makes it a useful baseline when
// measuring balanced-tree or skip list implementations. Lookups, insertions
// and order statistics (Rank, Select, Min, Max, Floor, Ceiling) all run in
// O(n) time; Len and IsEmpty are O(1).
//
// A Map is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves, for example with a single
// mutex around every call.
package listmap

import "cmp"

// Less reports whether a is ordered before b. Keys compare equal when
// neither argument is less than the other.
type Less[K comparable] func(a, b K) bool

// Map is an ordered symbol table over a sorted singly linked list.
// Keys are pairwise distinct and the chain is strictly ascending under the
// map's comparator.
type Map[K comparable, V any] struct {
	less Less[K]
	// head is a sentinel; head.next is the smallest entry or nil when the
	// map is empty.
	head   *node[K, V]
	length int
	// gen increments on every structural mutation and fails live iterators
	// fast instead of leaving them on unlinked nodes.
	gen   uint64
	free  *node[K, V]
	nfree int
	stats traversalStats
}

// New returns an empty map ordered by less. It panics when less is nil.
func New[K comparable, V any](less Less[K]) *Map[K, V] {
	if less == nil {
		panic("listmap: nil comparator")
	}
	return &Map[K, V]{
		less: less,
		head: newSentinel[K, V](),
	}
}

// NewOrdered returns an empty map using the standard ordering of K.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return New[K, V](func(a, b K) bool { return a < b })
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.length
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.head.next == nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, _, found := m.locate(key)
	return found
}

// Get returns the value stored for key.
// The boolean is true if the key exists, false otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	_, curr, found := m.locate(key)
	if !found {
		var zero V
		return zero, false
	}
	return curr.val, true
}
