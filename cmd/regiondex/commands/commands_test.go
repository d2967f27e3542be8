package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/regiondex/pkg/regionio"
)

// Test constants.
const (
	filePerm    = 0o600
	sampleLines = "chr1\t100\t200\ttx1\t0\t+\nchr1\t150\t250\ttx2\nchr2\t100\t200\ttx3\n"
)

// writeSample writes a small region file and returns its path.
func writeSample(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "regions.tsv")
	require.NoError(t, os.WriteFile(path, []byte(sampleLines), filePerm))

	return path
}

// TestQueryCommand_Run verifies overlap hits and misses are rendered.
func TestQueryCommand_Run(t *testing.T) {
	path := writeSample(t)

	qc := &QueryCommand{
		regionsPath: path,
		queries:     []string{"chr1:150-200", "chr2:900-950"},
		noColor:     true,
	}

	var buf bytes.Buffer

	require.NoError(t, qc.run(&buf))

	out := buf.String()
	assert.Contains(t, out, "tx1")
	assert.Contains(t, out, "tx2")
	assert.NotContains(t, out, "tx3")
	assert.Contains(t, out, "no overlaps")
}

// TestQueryCommand_BadQuery verifies malformed query notation errors out.
func TestQueryCommand_BadQuery(t *testing.T) {
	path := writeSample(t)

	qc := &QueryCommand{
		regionsPath: path,
		queries:     []string{"not-a-region"},
		noColor:     true,
	}

	var buf bytes.Buffer

	require.Error(t, qc.run(&buf))
}

// TestStatsCommand_Text verifies the text summary.
func TestStatsCommand_Text(t *testing.T) {
	path := writeSample(t)

	sc := &StatsCommand{regionsPath: path, format: "text"}

	var buf bytes.Buffer

	require.NoError(t, sc.run(&buf))

	out := buf.String()
	assert.Contains(t, out, "records:       3")
	assert.Contains(t, out, "references:    2")
}

// TestStatsCommand_YAML verifies the yaml summary parses as yaml keys.
func TestStatsCommand_YAML(t *testing.T) {
	path := writeSample(t)

	sc := &StatsCommand{regionsPath: path, format: "yaml"}

	var buf bytes.Buffer

	require.NoError(t, sc.run(&buf))

	out := buf.String()
	assert.Contains(t, out, "records: 3")
	assert.Contains(t, out, "distinct_keys: 3")
}

// TestDumpCommand_Raw verifies the plain dump lists every node.
func TestDumpCommand_Raw(t *testing.T) {
	path := writeSample(t)

	dc := &DumpCommand{regionsPath: path, raw: true}

	var buf bytes.Buffer

	require.NoError(t, dc.run(&buf))
	assert.Contains(t, buf.String(), "tx1")
	assert.Contains(t, buf.String(), "tx3")
}

// TestDumpCommand_Table verifies grouped table output.
func TestDumpCommand_Table(t *testing.T) {
	path := writeSample(t)

	dc := &DumpCommand{regionsPath: path}

	var buf bytes.Buffer

	require.NoError(t, dc.run(&buf))
	assert.Contains(t, buf.String(), "chr1:100-200:+")
}

// TestCompactCommand_RoundTrip verifies compress-then-load equality.
func TestCompactCommand_RoundTrip(t *testing.T) {
	path := writeSample(t)
	out := filepath.Join(t.TempDir(), "regions.tsv.lz4")

	cc := &CompactCommand{inPath: path, outPath: out}
	require.NoError(t, cc.run())

	original, err := regionio.LoadFile(path)
	require.NoError(t, err)

	compressed, err := regionio.LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, original, compressed)
}

// TestPlotCommand_WritesHTML verifies chart rendering produces a file.
func TestPlotCommand_WritesHTML(t *testing.T) {
	path := writeSample(t)
	out := filepath.Join(t.TempDir(), "regions.html")

	pc := &PlotCommand{regionsPath: path, outPath: out}
	require.NoError(t, pc.run())

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "echarts")
}
