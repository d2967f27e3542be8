package intervaltree

import (
	"fmt"
	"io"

	"github.com/Sumatoshi-tech/regiondex/pkg/interval"
)

// Snapshot returns an independent deep copy of the tree. The copy owns an
// entirely new node graph, rebuilt by median insertion over the sorted key
// order, and shares no mutable state with the original.
func (t *Tree[K, V]) Snapshot() *Tree[K, V] {
	out := &Tree[K, V]{threshold: t.threshold}

	nodes := collect(t.root, t.nodeCount)
	sortByKey(nodes)
	out.insertMedian(nodes)

	return out
}

// Merge returns a new tree holding the combined content of both inputs.
// Value bags of exact-matching keys are unioned. Neither input is mutated.
func (t *Tree[K, V]) Merge(other *Tree[K, V]) *Tree[K, V] {
	out := t.Snapshot()

	for _, n := range collect(other.root, other.nodeCount) {
		out.insertNode(n)
	}

	return out
}

// Filter returns a new tree where every value bag is filtered by pred.
// Nodes whose bag becomes empty stay in the tree as empty-bag nodes, so
// CountNodes is unchanged while Size shrinks.
func (t *Tree[K, V]) Filter(pred func(V) bool) *Tree[K, V] {
	out := &Tree[K, V]{threshold: t.threshold}

	nodes := collect(t.root, t.nodeCount)
	for _, n := range nodes {
		kept := n.values[:0]

		for _, v := range n.values {
			if pred(v) {
				kept = append(kept, v)
			}
		}

		n.values = kept
	}

	sortByKey(nodes)
	out.insertMedian(nodes)

	return out
}

// Map returns a new tree with the same keys where every value has f
// applied. It is a package function rather than a method so the result
// may hold a different value type.
func Map[K interval.Key[K], V, W comparable](t *Tree[K, V], f func(V) W) *Tree[K, W] {
	out := &Tree[K, W]{threshold: t.threshold}

	nodes := collect(t.root, t.nodeCount)
	sortByKey(nodes)

	mapped := make([]*node[K, W], len(nodes))

	for i, n := range nodes {
		values := make([]W, len(n.values))
		for j, v := range n.values {
			values[j] = f(v)
		}

		mapped[i] = newNode(n.key, values)
	}

	out.insertMedian(mapped)

	return out
}

// PrintNodes writes a diagnostic dump to w: one line per node, sorted by
// key order, with the node's value bag.
func (t *Tree[K, V]) PrintNodes(w io.Writer) error {
	nodes := collect(t.root, t.nodeCount)
	sortByKey(nodes)

	for _, n := range nodes {
		_, err := fmt.Fprintf(w, "%v -> %v\n", n.key, n.values)
		if err != nil {
			return fmt.Errorf("intervaltree: dump write failed: %w", err)
		}
	}

	return nil
}
