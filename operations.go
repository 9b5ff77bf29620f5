package listmap

// Put inserts or updates the value for the given key.
// It returns the previous value and true if the key existed, otherwise zero
// value and false. Updating a present key rewrites its value in place and
// does not disturb the chain or live iterators.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	pred, curr, found := m.locate(key)
	if found {
		old := curr.val
		curr.val = value
		return old, true
	}

	n := m.acquireNode(key, value)
	n.next = curr
	pred.next = n
	m.length++
	m.gen++

	var zero V
	return zero, false
}

// Store is the classic symbol table entry point where value absence doubles
// as removal: a nil value deletes key, any other value behaves like Put.
// Prefer the explicit Put and Delete; Store exists for callers that want the
// original conflated signature.
func (m *Map[K, V]) Store(key K, value *V) (V, bool) {
	if value == nil {
		return m.Delete(key)
	}
	return m.Put(key, *value)
}

// Delete removes the entry for the given key.
// It returns the old value and true if the key existed, otherwise zero value
// and false. Deleting an absent key is a no-op.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	pred, curr, found := m.locate(key)
	if !found {
		var zero V
		return zero, false
	}

	pred.next = curr.next
	m.length--
	m.gen++

	old := curr.val
	m.releaseNode(curr)
	return old, true
}

// DeleteMin removes the smallest key. It returns ErrEmpty on an empty map.
func (m *Map[K, V]) DeleteMin() error {
	curr := m.head.next
	if curr == nil {
		return ErrEmpty
	}

	m.head.next = curr.next
	m.length--
	m.gen++
	m.releaseNode(curr)
	return nil
}

// DeleteMax removes the greatest key. It returns ErrEmpty on an empty map.
func (m *Map[K, V]) DeleteMax() error {
	if m.head.next == nil {
		return ErrEmpty
	}

	pred := m.head
	for pred.next.next != nil {
		pred = pred.next
	}
	curr := pred.next

	pred.next = nil
	m.length--
	m.gen++
	m.releaseNode(curr)
	return nil
}
