package listmap

// traversalStats counts the work done by locate. The chain deliberately
// keeps its O(n) scan cost model; the counters make that cost observable in
// benchmarks and in the CLI summary.
type traversalStats struct {
	calls int64
	steps int64
}

// TraversalStats returns the number of locate scans performed so far and
// the total number of nodes stepped over. steps/calls is the average scan
// depth of the workload.
func (m *Map[K, V]) TraversalStats() (calls, steps int64) {
	return m.stats.calls, m.stats.steps
}

// ResetTraversalStats zeroes both counters, typically between the load and
// measure phases of a benchmark.
func (m *Map[K, V]) ResetTraversalStats() {
	m.stats = traversalStats{}
}
