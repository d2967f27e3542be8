// Package interval defines the capability contract for half-open numeric
// intervals and two key types implementing it: Span, a bare coordinate
// range, and Region, a reference-named stranded range.
//
// An interval covers [Low, High): Low is included, High is excluded. The
// ordering used for tree placement is a strict total order over the key's
// fields and is unrelated to the overlap relation.
package interval

import "errors"

// ErrInvertedBounds is returned by constructors when the high bound
// precedes the low bound.
var ErrInvertedBounds = errors.New("interval: high bound before low bound")

// Key is the constraint for interval-tree keys. A key supplies its
// half-open bounds, the overlap relation used by searches, and a strict
// total order used for tree placement. Compare must return a negative
// value, zero, or a positive value for less-than, equal, and greater-than
// respectively, and must be consistent: Compare(x) == 0 exactly when the
// keys are interchangeable.
type Key[K any] interface {
	comparable

	// Start returns the inclusive lower bound.
	Start() int64

	// End returns the exclusive upper bound.
	End() int64

	// Overlaps reports whether the two intervals intersect in
	// position space.
	Overlaps(other K) bool

	// Compare orders two keys for tree placement.
	Compare(other K) int
}

// Span is a plain half-open interval [Low, High) with no coordinate-space
// semantics beyond position.
type Span struct {
	Low  int64
	High int64
}

// NewSpan returns a Span or ErrInvertedBounds when high < low.
func NewSpan(low, high int64) (Span, error) {
	if high < low {
		return Span{}, ErrInvertedBounds
	}

	return Span{Low: low, High: high}, nil
}

// Start returns the inclusive lower bound.
func (s Span) Start() int64 {
	return s.Low
}

// End returns the exclusive upper bound.
func (s Span) End() int64 {
	return s.High
}

// Width returns the number of positions the span covers.
func (s Span) Width() int64 {
	return s.High - s.Low
}

// Overlaps reports whether the two spans share at least one position.
// A zero-width span overlaps nothing.
func (s Span) Overlaps(other Span) bool {
	return s.Low < other.High && other.Low < s.High
}

// Covers is the relaxed overlap relation. For bare spans there is no
// collapsed dimension, so it coincides with Overlaps.
func (s Span) Covers(other Span) bool {
	return s.Overlaps(other)
}

// Distance returns the number of positions separating the two spans:
// zero when they overlap or are adjacent. The second return is always
// true for spans; it exists to satisfy the shared contract with Region.
func (s Span) Distance(other Span) (int64, bool) {
	switch {
	case s.Overlaps(other):
		return 0, true
	case s.High <= other.Low:
		return other.Low - s.High, true
	default:
		return s.Low - other.High, true
	}
}

// Compare orders spans by Low, then High.
func (s Span) Compare(other Span) int {
	switch {
	case s.Low < other.Low:
		return -1
	case s.Low > other.Low:
		return 1
	case s.High < other.High:
		return -1
	case s.High > other.High:
		return 1
	default:
		return 0
	}
}
