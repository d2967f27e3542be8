package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Strand marks the orientation of a Region on its reference sequence.
type Strand byte

// Strand values. StrandIndependent matches either orientation.
const (
	StrandForward     Strand = '+'
	StrandReverse     Strand = '-'
	StrandIndependent Strand = '.'
)

// String returns the single-character strand notation.
func (s Strand) String() string {
	return string(byte(s))
}

// Region parsing errors.
var (
	ErrBadRegionFormat = errors.New("interval: region must look like ref:low-high or ref:low-high:strand")
	ErrBadStrand       = errors.New("interval: strand must be one of + - .")
)

// Region is a half-open coordinate range [Low, High) on a named reference
// sequence, with an orientation. It implements the full interval contract:
// Overlaps respects strand, Covers collapses it.
type Region struct {
	Reference string
	Low       int64
	High      int64
	Strand    Strand
}

// NewRegion returns a strand-independent Region or ErrInvertedBounds when
// high < low.
func NewRegion(reference string, low, high int64) (Region, error) {
	return NewStrandedRegion(reference, low, high, StrandIndependent)
}

// NewStrandedRegion returns a Region with an explicit orientation or
// ErrInvertedBounds when high < low.
func NewStrandedRegion(reference string, low, high int64, strand Strand) (Region, error) {
	if high < low {
		return Region{}, ErrInvertedBounds
	}

	if strand != StrandForward && strand != StrandReverse && strand != StrandIndependent {
		return Region{}, ErrBadStrand
	}

	return Region{Reference: reference, Low: low, High: high, Strand: strand}, nil
}

// ParseRegion parses "ref:low-high" or "ref:low-high:strand" notation,
// e.g. "chr1:1000-2000" or "chr1:1000-2000:+".
func ParseRegion(s string) (Region, error) {
	reference, rest, ok := strings.Cut(s, ":")
	if !ok || reference == "" {
		return Region{}, fmt.Errorf("%w: %q", ErrBadRegionFormat, s)
	}

	bounds := rest
	strand := StrandIndependent

	if coords, tail, hasStrand := strings.Cut(rest, ":"); hasStrand {
		if len(tail) != 1 {
			return Region{}, fmt.Errorf("%w: %q", ErrBadStrand, tail)
		}

		bounds = coords
		strand = Strand(tail[0])
	}

	lowText, highText, ok := strings.Cut(bounds, "-")
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrBadRegionFormat, s)
	}

	low, lowErr := strconv.ParseInt(lowText, 10, 64)
	if lowErr != nil {
		return Region{}, fmt.Errorf("%w: %q", ErrBadRegionFormat, s)
	}

	high, highErr := strconv.ParseInt(highText, 10, 64)
	if highErr != nil {
		return Region{}, fmt.Errorf("%w: %q", ErrBadRegionFormat, s)
	}

	region, err := NewStrandedRegion(reference, low, high, strand)
	if err != nil {
		return Region{}, fmt.Errorf("%w: %q", err, s)
	}

	return region, nil
}

// Start returns the inclusive lower bound.
func (r Region) Start() int64 {
	return r.Low
}

// End returns the exclusive upper bound.
func (r Region) End() int64 {
	return r.High
}

// Width returns the number of positions the region covers.
func (r Region) Width() int64 {
	return r.High - r.Low
}

// Overlaps reports whether the two regions intersect: same reference,
// compatible strands, and at least one shared position.
func (r Region) Overlaps(other Region) bool {
	return r.Reference == other.Reference &&
		strandsCompatible(r.Strand, other.Strand) &&
		r.Low < other.High && other.Low < r.High
}

// strandsCompatible reports whether two orientations can match: equal
// strands always do, and StrandIndependent matches either.
func strandsCompatible(a, b Strand) bool {
	return a == b || a == StrandIndependent || b == StrandIndependent
}

// Covers is the strand-collapsed overlap relation: same reference and at
// least one shared position, regardless of orientation.
func (r Region) Covers(other Region) bool {
	return r.Reference == other.Reference &&
		r.Low < other.High && other.Low < r.High
}

// Distance returns the number of positions separating the two regions and
// whether a distance is defined. Regions on different references have no
// distance. Overlapping or adjacent regions are at distance zero.
func (r Region) Distance(other Region) (int64, bool) {
	if r.Reference != other.Reference {
		return 0, false
	}

	switch {
	case r.Low < other.High && other.Low < r.High:
		return 0, true
	case r.High <= other.Low:
		return other.Low - r.High, true
	default:
		return r.Low - other.High, true
	}
}

// Compare orders regions by reference name, then Low, High, and strand.
func (r Region) Compare(other Region) int {
	if c := strings.Compare(r.Reference, other.Reference); c != 0 {
		return c
	}

	switch {
	case r.Low < other.Low:
		return -1
	case r.Low > other.Low:
		return 1
	case r.High < other.High:
		return -1
	case r.High > other.High:
		return 1
	default:
		return int(r.Strand) - int(other.Strand)
	}
}

// String returns the parseable "ref:low-high:strand" notation.
func (r Region) String() string {
	return fmt.Sprintf("%s:%d-%d:%s", r.Reference, r.Low, r.High, r.Strand)
}
