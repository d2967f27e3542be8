// Package regionio loads and saves region record files for the CLI.
//
// The format is BED-flavoured whitespace-separated text: reference, low
// bound, high bound, and an optional record name, with an optional strand
// in the sixth column. Blank lines and '#' comments are skipped. Files
// ending in ".lz4" are read and written LZ4-compressed transparently.
package regionio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pierrec/lz4/v4"

	"github.com/Sumatoshi-tech/regiondex/pkg/interval"
	"github.com/Sumatoshi-tech/regiondex/pkg/intervaltree"
)

// ErrBadRecord indicates a line that does not parse as a region record.
var ErrBadRecord = errors.New("regionio: malformed record")

// compressedSuffix marks files handled through LZ4 framing.
const compressedSuffix = ".lz4"

// Column layout of a record line.
const (
	minColumns    = 3
	nameColumn    = 3
	strandColumn  = 5
	recordColumns = 6
)

// Record is one named region loaded from a file.
type Record struct {
	Region interval.Region
	Name   string
}

// ParseRecords reads region records from r until EOF.
func ParseRecords(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		record, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("regionio: read failed: %w", err)
	}

	return records, nil
}

// parseLine parses one whitespace-separated record line.
func parseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < minColumns {
		return Record{}, fmt.Errorf("%w: want at least %d columns, got %d", ErrBadRecord, minColumns, len(fields))
	}

	low, lowErr := strconv.ParseInt(fields[1], 10, 64)
	if lowErr != nil {
		return Record{}, fmt.Errorf("%w: low bound %q", ErrBadRecord, fields[1])
	}

	high, highErr := strconv.ParseInt(fields[2], 10, 64)
	if highErr != nil {
		return Record{}, fmt.Errorf("%w: high bound %q", ErrBadRecord, fields[2])
	}

	strand := interval.StrandIndependent
	if len(fields) >= recordColumns && len(fields[strandColumn]) == 1 {
		strand = interval.Strand(fields[strandColumn][0])
	}

	region, err := interval.NewStrandedRegion(fields[0], low, high, strand)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}

	name := region.String()
	if len(fields) > nameColumn {
		name = fields[nameColumn]
	}

	return Record{Region: region, Name: name}, nil
}

// WriteRecords writes records in the same format ParseRecords accepts.
func WriteRecords(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)

	for _, rec := range records {
		r := rec.Region

		_, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%s\t0\t%s\n", r.Reference, r.Low, r.High, rec.Name, r.Strand)
		if err != nil {
			return fmt.Errorf("regionio: write failed: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("regionio: write failed: %w", err)
	}

	return nil
}

// LoadFile reads all records from a file, decompressing ".lz4" files.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("regionio: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, compressedSuffix) {
		r = lz4.NewReader(f)
	}

	return ParseRecords(r)
}

// SaveFile writes all records to a file, compressing when the path ends
// in ".lz4".
func SaveFile(path string, records []Record) (err error) {
	f, createErr := os.Create(path)
	if createErr != nil {
		return fmt.Errorf("regionio: create %s: %w", path, createErr)
	}

	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("regionio: close %s: %w", path, closeErr)
		}
	}()

	if !strings.HasSuffix(path, compressedSuffix) {
		return WriteRecords(f, records)
	}

	zw := lz4.NewWriter(f)

	if writeErr := WriteRecords(zw, records); writeErr != nil {
		return writeErr
	}

	if closeErr := zw.Close(); closeErr != nil {
		return fmt.Errorf("regionio: compress %s: %w", path, closeErr)
	}

	return nil
}

// BuildTree indexes records into an interval tree keyed by region, with
// record names as values.
func BuildTree(records []Record, opts ...intervaltree.Option[interval.Region, string]) *intervaltree.Tree[interval.Region, string] {
	tree := intervaltree.New(opts...)

	for _, rec := range records {
		tree.Insert(rec.Region, rec.Name)
	}

	return tree
}
