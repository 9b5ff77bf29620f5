package listmap

// node is a single link in the chain. Every node is owned exclusively by its
// predecessor; the head sentinel owns the first real entry. A node's key is
// never mutated after creation, only val and next change.
type node[K, V any] struct {
	key  K
	val  V
	next *node[K, V]
}

// newSentinel creates the head sentinel. It carries zero key/value and acts
// as the permanent predecessor of the smallest entry, so insertion and
// removal at the front need no special case.
func newSentinel[K, V any]() *node[K, V] {
	return &node[K, V]{}
}
