package intervaltree

// Search returns every (key, value) pair whose key overlaps the query.
//
// The traversal descends both children of every surviving node: the BST
// key order does not bound which side holds overlapping keys, so the only
// pruning is the augmentation — a branch whose subtreeMax falls below the
// query start cannot contain an overlap. Result order follows traversal
// order and is not a contract. Identical pairs reachable from different
// nodes are collapsed; duplicate values inside one node's bag are kept.
func (t *Tree[K, V]) Search(query K) []Entry[K, V] {
	if t.root == nil {
		return nil
	}

	var results []Entry[K, V]

	seen := make(map[Entry[K, V]]*node[K, V])
	stack := []*node[K, V]{t.root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// No key below here ends past the query start.
		if n.subtreeMax < query.Start() {
			continue
		}

		if n.key.Overlaps(query) {
			for _, v := range n.values {
				entry := Entry[K, V]{Key: n.key, Value: v}

				if owner, dup := seen[entry]; dup && owner != n {
					continue
				}

				seen[entry] = n
				results = append(results, entry)
			}
		}

		if n.left != nil {
			stack = append(stack, n.left)
		}

		if n.right != nil {
			stack = append(stack, n.right)
		}
	}

	return results
}

// Get returns every (key, value) pair in the tree, flattened from all
// nodes in traversal order (node before its left subtree before its
// right). The result is not sorted.
func (t *Tree[K, V]) Get() []Entry[K, V] {
	if t.root == nil {
		return nil
	}

	out := make([]Entry[K, V], 0, t.valueCount)
	stack := []*node[K, V]{t.root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, v := range n.values {
			out = append(out, Entry[K, V]{Key: n.key, Value: v})
		}

		if n.right != nil {
			stack = append(stack, n.right)
		}

		if n.left != nil {
			stack = append(stack, n.left)
		}
	}

	return out
}
