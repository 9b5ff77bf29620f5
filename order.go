package listmap

// Min returns the smallest key. The map must be nonempty: Min panics on an
// empty map, check IsEmpty first.
func (m *Map[K, V]) Min() K {
	if m.head.next == nil {
		panic("listmap: Min on empty map")
	}
	return m.head.next.key
}

// Max returns the greatest key. The map must be nonempty: Max panics on an
// empty map, check IsEmpty first. Runs in O(n), the chain only links forward.
func (m *Map[K, V]) Max() K {
	t := m.head.next
	if t == nil {
		panic("listmap: Max on empty map")
	}
	for t.next != nil {
		t = t.next
	}
	return t.key
}

// Rank returns the number of keys less than or equal to key, so a present
// key counts itself: Rank(Select(k)) == k+1 for every valid position k.
// Returns 0 on an empty map.
func (m *Map[K, V]) Rank(key K) int {
	n := 0
	for t := m.head.next; t != nil && !m.less(key, t.key); t = t.next {
		n++
	}
	return n
}

// Select returns the key at zero-based position k in ascending order.
// The boolean is false when k is negative or at least Len().
func (m *Map[K, V]) Select(k int) (K, bool) {
	if k < 0 || k >= m.length {
		var zero K
		return zero, false
	}
	t := m.head.next
	for i := 0; i < k; i++ {
		t = t.next
	}
	return t.key, true
}

// Floor returns the greatest stored key less than or equal to key.
// The boolean is false when every stored key is greater.
func (m *Map[K, V]) Floor(key K) (K, bool) {
	pred, curr, found := m.locate(key)
	if found {
		return curr.key, true
	}
	if pred == m.head {
		var zero K
		return zero, false
	}
	return pred.key, true
}

// Ceiling returns the smallest stored key greater than or equal to key.
// The boolean is false when every stored key is smaller, including on an
// empty map.
func (m *Map[K, V]) Ceiling(key K) (K, bool) {
	_, curr, _ := m.locate(key)
	if curr == nil {
		var zero K
		return zero, false
	}
	return curr.key, true
}
