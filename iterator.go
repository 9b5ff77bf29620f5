package listmap

import (
	"errors"
	"fmt"
	"iter"
)

// Iterator provides a forward-only ascending view over the map.
//
// The iterator snapshots the map's generation counter; a structural mutation
// (insert or delete, not a value overwrite) between steps invalidates it:
// Next returns false and Err reports ErrIteratorInvalid. SeekGE repositions
// the iterator and re-synchronizes it with the current map state.
type Iterator[K comparable, V any] struct {
	m       *Map[K, V]
	current *node[K, V]
	key     K
	value   V
	valid   bool
	gen     uint64
	err     error
}

// Iterator returns a new iterator positioned before the first element.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, gen: m.gen}
}

// SeekGE returns an iterator positioned at the first element whose key is
// greater than or equal to the provided key. The returned iterator is valid
// if and only if such an element exists.
func (m *Map[K, V]) SeekGE(key K) *Iterator[K, V] {
	it := m.Iterator()
	it.SeekGE(key)
	return it
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K, V]) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Key returns the key at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Key() K {
	var zero K
	if it == nil || !it.valid {
		return zero
	}
	return it.key
}

// Value returns the value at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Value() V {
	var zero V
	if it == nil || !it.valid {
		return zero
	}
	return it.value
}

// Err returns ErrIteratorInvalid after the map was structurally mutated
// between iterator steps, nil otherwise.
func (it *Iterator[K, V]) Err() error {
	if it == nil {
		return nil
	}
	return it.err
}

// Next advances the iterator to the next element and reports whether it
// successfully moved forward. If the iterator was not valid prior to the
// call, it advances to the first element.
func (it *Iterator[K, V]) Next() bool {
	if it == nil || it.m == nil || it.err != nil {
		return false
	}
	if it.gen != it.m.gen {
		it.invalidate()
		it.err = ErrIteratorInvalid
		return false
	}

	start := it.current
	if !it.valid {
		start = it.m.head
	}

	next := start.next
	if next == nil {
		it.invalidate()
		return false
	}

	it.current = next
	it.key = next.key
	it.value = next.val
	it.valid = true
	return true
}

// SeekGE positions the iterator at the first element whose key is greater
// than or equal to the provided key. It returns true if such an element
// exists. SeekGE clears a previous invalidation.
func (it *Iterator[K, V]) SeekGE(key K) bool {
	if it == nil || it.m == nil {
		return false
	}

	it.invalidate()
	it.err = nil
	it.gen = it.m.gen

	_, curr, _ := it.m.locate(key)
	if curr == nil {
		return false
	}

	it.current = curr
	it.key = curr.key
	it.value = curr.val
	it.valid = true
	return true
}

// Remove is not supported: entries cannot be deleted through an iterator.
// It always returns an error satisfying errors.Is(err, errors.ErrUnsupported).
func (it *Iterator[K, V]) Remove() error {
	return fmt.Errorf("listmap: remove through iterator: %w", errors.ErrUnsupported)
}

func (it *Iterator[K, V]) invalidate() {
	if it == nil {
		return
	}
	it.current = nil
	it.valid = false
	var zeroK K
	var zeroV V
	it.key = zeroK
	it.value = zeroV
}

// Keys returns an ascending sequence of all keys, for use with range.
// The walk is live: mutating the map while ranging is undefined. Use
// Iterator when interleaved mutations must be detected.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for t := m.head.next; t != nil; t = t.next {
			if !yield(t.key) {
				return
			}
		}
	}
}

// All returns an ascending sequence of key/value pairs, for use with range.
// Same liveness caveat as Keys.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for t := m.head.next; t != nil; t = t.next {
			if !yield(t.key, t.val) {
				return
			}
		}
	}
}
