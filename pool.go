package listmap

// Unlinked nodes are recycled through a small per-map free list so
// steady-state insert/delete churn does not allocate. The list is bounded;
// beyond maxFreeNodes deleted nodes are left to the garbage collector.
const maxFreeNodes = 128

func (m *Map[K, V]) acquireNode(key K, val V) *node[K, V] {
	n := m.free
	if n == nil {
		return &node[K, V]{key: key, val: val}
	}
	m.free = n.next
	m.nfree--

	n.key = key
	n.val = val
	n.next = nil
	return n
}

func (m *Map[K, V]) releaseNode(n *node[K, V]) {
	if n == nil || n == m.head || m.nfree >= maxFreeNodes {
		return
	}

	// Zero the payload so the free list does not pin caller values.
	var zeroK K
	var zeroV V
	n.key = zeroK
	n.val = zeroV

	n.next = m.free
	m.free = n
	m.nfree++
}
