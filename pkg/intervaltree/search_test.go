package intervaltree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/regiondex/pkg/interval"
)

// Randomized search test constants.
const (
	testRandomSeed      = 42
	testRandomIntervals = 500
	testRandomQueries   = 50
	testCoordinateSpace = 10000
	testMaxWidth        = 200
)

// TestSearch_EmptyTree verifies searching an empty tree returns nothing.
func TestSearch_EmptyTree(t *testing.T) {
	t.Parallel()

	tree := New[interval.Span, string]()
	assert.Empty(t, tree.Search(span(testLow1, testHigh5)))
	assert.Empty(t, tree.Get())
}

// TestSearch_OverlapTriple inserts [1,5), [10,15), [3,8) and queries
// [4,6): the first and third overlap, the second does not.
func TestSearch_OverlapTriple(t *testing.T) {
	t.Parallel()

	tree := New[interval.Span, string]()
	tree.Insert(span(testLow1, testHigh5), "a")
	tree.Insert(span(testLow10, testHigh15), "b")
	tree.Insert(span(testLow3, testHigh8), "c")

	pairs := tree.Search(span(testQueryLow4, testQueryHigh6))
	assert.ElementsMatch(t, []Entry[interval.Span, string]{
		{Key: span(testLow1, testHigh5), Value: "a"},
		{Key: span(testLow3, testHigh8), Value: "c"},
	}, pairs)
}

// TestSearch_NoMatch verifies a disjoint query returns nothing.
func TestSearch_NoMatch(t *testing.T) {
	t.Parallel()

	tree := New[interval.Span, string]()
	tree.Insert(span(testLow1, testHigh5), "a")

	assert.Empty(t, tree.Search(span(testLow10, testHigh15)))
}

// TestSearch_AdjacentDoesNotMatch verifies half-open semantics: a query
// starting exactly at a key's end bound does not overlap it.
func TestSearch_AdjacentDoesNotMatch(t *testing.T) {
	t.Parallel()

	tree := New[interval.Span, string]()
	tree.Insert(span(testLow1, testHigh5), "a")

	assert.Empty(t, tree.Search(span(testHigh5, testHigh8)))
}

// TestSearch_ReturnsWholeBag verifies every value of a matching node is
// returned, duplicates included.
func TestSearch_ReturnsWholeBag(t *testing.T) {
	t.Parallel()

	tree := New[interval.Span, string]()
	tree.InsertAll(span(testLow1, testHigh5), []string{"a", "b", "a"})

	pairs := tree.Search(span(testQueryLow4, testQueryHigh6))
	assert.Len(t, pairs, 3)
}

// TestSearch_AgainstBruteForce cross-checks the pruned traversal against
// a linear scan over randomized input, before and after a rebuild.
func TestSearch_AgainstBruteForce(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(testRandomSeed))
	tree := New[interval.Span, int]()

	keys := make([]interval.Span, 0, testRandomIntervals)

	for i := 0; i < testRandomIntervals; i++ {
		low := rng.Int63n(testCoordinateSpace)
		width := rng.Int63n(testMaxWidth) + 1

		key := span(low, low+width)
		keys = append(keys, key)
		tree.Insert(key, i)
	}

	verifyInvariants(t, tree)

	queries := make([]interval.Span, 0, testRandomQueries)
	for q := 0; q < testRandomQueries; q++ {
		low := rng.Int63n(testCoordinateSpace)
		queries = append(queries, span(low, low+rng.Int63n(testMaxWidth)+1))
	}

	check := func() {
		for _, q := range queries {
			var want []Entry[interval.Span, int]

			for i, key := range keys {
				if key.Overlaps(q) {
					want = append(want, Entry[interval.Span, int]{Key: key, Value: i})
				}
			}

			got := tree.Search(q)
			require.ElementsMatch(t, want, got, "query %v", q)
		}
	}

	check()

	// The same queries must hold on the rebuilt shape.
	tree.Rebalance()
	verifyInvariants(t, tree)
	check()
}

// TestGet_FlattensAllBags verifies Get returns every pair.
func TestGet_FlattensAllBags(t *testing.T) {
	t.Parallel()

	tree := New[interval.Span, string]()
	tree.InsertAll(span(testLow1, testHigh5), []string{"a", "b"})
	tree.Insert(span(testLow10, testHigh15), "c")

	pairs := tree.Get()
	assert.ElementsMatch(t, []Entry[interval.Span, string]{
		{Key: span(testLow1, testHigh5), Value: "a"},
		{Key: span(testLow1, testHigh5), Value: "b"},
		{Key: span(testLow10, testHigh15), Value: "c"},
	}, pairs)
}
