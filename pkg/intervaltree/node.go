package intervaltree

import (
	"slices"

	"github.com/Sumatoshi-tech/regiondex/pkg/interval"
)

// node is a tree node holding one key interval, the bag of values stored
// under that exact key, and the subtree augmentation.
//
// subtreeMax is the maximum End() across the node's own key and every key
// in its subtree. It must hold after every structural mutation; overlap
// search relies on it to prune branches.
type node[K interval.Key[K], V comparable] struct {
	key        K
	values     []V
	left       *node[K, V]
	right      *node[K, V]
	subtreeMax int64
}

// newNode creates a detached node owning the given value bag.
func newNode[K interval.Key[K], V comparable](key K, values []V) *node[K, V] {
	return &node[K, V]{
		key:        key,
		values:     values,
		subtreeMax: key.End(),
	}
}

// snapshot returns a deep copy of the node with children detached,
// safe to reattach into a different tree.
func (n *node[K, V]) snapshot() *node[K, V] {
	return newNode(n.key, slices.Clone(n.values))
}

// widen raises the node's subtreeMax to cover the given end bound.
func (n *node[K, V]) widen(end int64) {
	if end > n.subtreeMax {
		n.subtreeMax = end
	}
}

// collect walks the subtree with an explicit stack and returns a detached
// snapshot of every node. Visit order is node, then left subtree, then
// right subtree; callers that need key order must sort.
func collect[K interval.Key[K], V comparable](root *node[K, V], sizeHint int) []*node[K, V] {
	if root == nil {
		return nil
	}

	out := make([]*node[K, V], 0, sizeHint)
	stack := []*node[K, V]{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out = append(out, n.snapshot())

		// Right below left so the left subtree is visited first.
		if n.right != nil {
			stack = append(stack, n.right)
		}

		if n.left != nil {
			stack = append(stack, n.left)
		}
	}

	return out
}

// sortByKey orders detached snapshots by the full key order. The primary
// component is the start position; the remainder of Compare (end bound and
// any further key fields) is the deterministic tie-break.
func sortByKey[K interval.Key[K], V comparable](nodes []*node[K, V]) {
	slices.SortFunc(nodes, func(a, b *node[K, V]) int {
		return a.key.Compare(b.key)
	})
}
