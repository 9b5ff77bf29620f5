package listmap

// locate returns the predecessor and candidate node for key: pred is the
// last node whose key is strictly smaller than key (the head sentinel when
// none is), and curr = pred.next is the first node whose key is greater than
// or equal to key, or nil past the end of the chain. found reports whether
// curr holds exactly the given key.
//
// Every other operation is built on this one scan, so the front-of-chain
// edge cases collapse into the sentinel predecessor. No side effects beyond
// the traversal counters.
func (m *Map[K, V]) locate(key K) (pred, curr *node[K, V], found bool) {
	m.stats.calls++
	pred = m.head
	for pred.next != nil && m.less(pred.next.key, key) {
		pred = pred.next
		m.stats.steps++
	}
	curr = pred.next
	if curr != nil && !m.less(key, curr.key) {
		found = true
	}
	return pred, curr, found
}
