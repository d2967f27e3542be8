package regionio

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/regiondex/pkg/interval"
)

// Test constants.
const (
	testLow100  = 100
	testHigh200 = 200
	testLow150  = 150
	testHigh250 = 250
)

const sampleFile = `# transcripts on chr1 and chr2
chr1	100	200	tx1	0	+
chr1	150	250	tx2
chr2	100	200	tx3

chr2	300	400
`

// TestParseRecords verifies column handling, defaults, comments, and
// blank lines.
func TestParseRecords(t *testing.T) {
	t.Parallel()

	records, err := ParseRecords(strings.NewReader(sampleFile))
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "tx1", records[0].Name)
	assert.Equal(t, interval.StrandForward, records[0].Region.Strand)
	assert.Equal(t, int64(testLow100), records[0].Region.Low)

	// Missing strand defaults to independent.
	assert.Equal(t, interval.StrandIndependent, records[1].Region.Strand)

	// Missing name defaults to the region notation.
	assert.Equal(t, "chr2:300-400:.", records[3].Name)
}

// TestParseRecords_Malformed verifies bad lines are rejected with
// position information.
func TestParseRecords_Malformed(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"chr1\t100", "chr1\tx\t200", "chr1\t100\ty", "chr1\t200\t100"} {
		_, err := ParseRecords(strings.NewReader(bad + "\n"))
		require.ErrorIs(t, err, ErrBadRecord, "input %q", bad)
	}
}

// TestRoundTrip_Plain verifies write-then-parse preserves records.
func TestRoundTrip_Plain(t *testing.T) {
	t.Parallel()

	records, err := ParseRecords(strings.NewReader(sampleFile))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "regions.tsv")
	require.NoError(t, SaveFile(path, records))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

// TestRoundTrip_Compressed verifies the ".lz4" path compresses and
// decompresses transparently.
func TestRoundTrip_Compressed(t *testing.T) {
	t.Parallel()

	records, err := ParseRecords(strings.NewReader(sampleFile))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "regions.tsv.lz4")
	require.NoError(t, SaveFile(path, records))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

// TestBuildTree verifies records are indexed and searchable.
func TestBuildTree(t *testing.T) {
	t.Parallel()

	records, err := ParseRecords(strings.NewReader(sampleFile))
	require.NoError(t, err)

	tree := BuildTree(records)
	assert.Equal(t, len(records), tree.Size())

	query, err := interval.NewRegion("chr1", testLow150, testHigh200)
	require.NoError(t, err)

	pairs := tree.Search(query)
	names := make([]string, 0, len(pairs))

	for _, p := range pairs {
		names = append(names, p.Value)
	}

	assert.ElementsMatch(t, []string{"tx1", "tx2"}, names)
}
