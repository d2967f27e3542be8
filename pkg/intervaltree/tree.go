// Package intervaltree provides an augmented interval tree: a binary
// search tree keyed on half-open intervals where every node carries the
// maximum end bound of its subtree, enabling pruned range-overlap queries.
//
// A key may be inserted many times; values accumulate in the node's bag.
// The tree tracks approximate left/right insertion depth and rebuilds
// itself into near-minimal depth once the imbalance exceeds a threshold.
//
// The tree is not safe for concurrent use. A rebalance replaces the whole
// node graph, so readers must not overlap mutating calls; use Snapshot for
// copy-on-write style sharing.
package intervaltree

import (
	"slices"

	"github.com/Sumatoshi-tech/regiondex/pkg/interval"
)

// DefaultRebalanceThreshold is the depth-imbalance trigger used when no
// option overrides it.
const DefaultRebalanceThreshold = 15

// Entry is one (key, value) pair stored in a tree.
type Entry[K interval.Key[K], V comparable] struct {
	Key   K
	Value V
}

// Tree is an augmented interval tree. Use New to create one; the zero
// value has no rebalance threshold and is not usable.
type Tree[K interval.Key[K], V comparable] struct {
	root       *node[K, V]
	nodeCount  int
	valueCount int

	// leftDepth and rightDepth are high-water marks of hops observed on
	// insertion descents since the last rebalance. They approximate tree
	// skew; they are not the exact current height.
	leftDepth  int
	rightDepth int

	threshold int
}

// Option configures a Tree.
type Option[K interval.Key[K], V comparable] func(*Tree[K, V])

// WithRebalanceThreshold sets the depth-imbalance trigger. Values below 1
// are ignored.
func WithRebalanceThreshold[K interval.Key[K], V comparable](n int) Option[K, V] {
	return func(t *Tree[K, V]) {
		if n >= 1 {
			t.threshold = n
		}
	}
}

// New creates an empty interval tree.
func New[K interval.Key[K], V comparable](opts ...Option[K, V]) *Tree[K, V] {
	t := &Tree[K, V]{threshold: DefaultRebalanceThreshold}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Size returns the total number of values across all nodes.
func (t *Tree[K, V]) Size() int {
	return t.valueCount
}

// CountNodes returns the number of distinct key intervals.
func (t *Tree[K, V]) CountNodes() int {
	return t.nodeCount
}

// Insert stores one value under the given key. An exact-matching key
// (Compare == 0) reuses the existing node and appends to its bag; keys
// that merely overlap an existing key get their own node.
func (t *Tree[K, V]) Insert(key K, value V) {
	t.InsertAll(key, []V{value})
}

// InsertAll stores a batch of values under one key. The descent widens
// subtreeMax on every visited node and records left/right hop counts
// against the tree's depth high-water marks; when the marks diverge past
// the threshold the tree rebuilds itself.
func (t *Tree[K, V]) InsertAll(key K, values []V) {
	t.valueCount += len(values)

	if t.root == nil {
		t.root = newNode(key, slices.Clone(values))
		t.nodeCount++

		return
	}

	var leftHops, rightHops int

	cur := t.root

	for {
		cur.widen(key.End())

		cmp := key.Compare(cur.key)

		if cmp == 0 {
			cur.values = append(cur.values, values...)

			break
		}

		if cmp < 0 {
			leftHops++

			if cur.left == nil {
				cur.left = newNode(key, slices.Clone(values))
				t.nodeCount++

				break
			}

			cur = cur.left

			continue
		}

		rightHops++

		if cur.right == nil {
			cur.right = newNode(key, slices.Clone(values))
			t.nodeCount++

			break
		}

		cur = cur.right
	}

	t.recordDepth(leftHops, rightHops)

	if imbalance(t.leftDepth, t.rightDepth) > t.threshold {
		t.Rebalance()
	}
}

// insertNode re-inserts a detached node carrying its whole value bag,
// bypassing per-value appends. Used by rebuild and merge. An exact key
// match merges the incoming bag into the existing node's bag.
func (t *Tree[K, V]) insertNode(n *node[K, V]) {
	t.valueCount += len(n.values)

	if t.root == nil {
		t.root = n
		t.nodeCount++

		return
	}

	cur := t.root

	for {
		cur.widen(n.key.End())

		cmp := n.key.Compare(cur.key)

		if cmp == 0 {
			cur.values = append(cur.values, n.values...)

			return
		}

		if cmp < 0 {
			if cur.left == nil {
				cur.left = n
				t.nodeCount++

				return
			}

			cur = cur.left

			continue
		}

		if cur.right == nil {
			cur.right = n
			t.nodeCount++

			return
		}

		cur = cur.right
	}
}

// Rebalance tears the tree down and rebuilds it into a shape approximating
// a complete binary tree over the sorted key order. All content is
// preserved; the depth high-water marks restart from zero.
func (t *Tree[K, V]) Rebalance() {
	nodes := collect(t.root, t.nodeCount)
	sortByKey(nodes)

	t.root = nil
	t.nodeCount = 0
	t.valueCount = 0
	t.leftDepth = 0
	t.rightDepth = 0

	t.insertMedian(nodes)
}

// insertMedian inserts the middle of a sorted run, then recurses on each
// half. Recursion depth is logarithmic in the run length.
func (t *Tree[K, V]) insertMedian(nodes []*node[K, V]) {
	if len(nodes) == 0 {
		return
	}

	mid := len(nodes) / 2

	t.insertNode(nodes[mid])
	t.insertMedian(nodes[:mid])
	t.insertMedian(nodes[mid+1:])
}

// recordDepth raises the per-side high-water marks if this descent went
// deeper than any previous one since the last rebalance.
func (t *Tree[K, V]) recordDepth(leftHops, rightHops int) {
	if leftHops > t.leftDepth {
		t.leftDepth = leftHops
	}

	if rightHops > t.rightDepth {
		t.rightDepth = rightHops
	}
}

// imbalance returns |left - right|.
func imbalance(left, right int) int {
	if left > right {
		return left - right
	}

	return right - left
}
