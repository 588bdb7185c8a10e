// Package hap models timed events ("haps") and the set operations used to
// lay them out: onset sorting, batch clipping and row packing.
package hap

import (
	"fmt"
	"math/big"

	"pianoroll/span"
)

// Hap is one occurrence of a value. Part is the fragment under consideration;
// Whole, when known, is the full logical extent the fragment was cut from.
type Hap[V any] struct {
	Whole *span.Span
	Part  span.Span
	Value V
}

// New builds a hap. Pass a nil whole for events without a known extent.
func New[V any](whole *span.Span, part span.Span, value V) Hap[V] {
	return Hap[V]{Whole: whole, Part: part, Value: value}
}

// Validate reports a part with negative length.
func (h Hap[V]) Validate() error {
	if h.Part.Length().Sign() < 0 {
		return fmt.Errorf("%w: part %s", ErrNegativePart, h.Part)
	}
	return nil
}

// WithPart returns a copy sharing Whole and Value with a different part.
func (h Hap[V]) WithPart(part span.Span) Hap[V] {
	return Hap[V]{Whole: h.Whole, Part: part, Value: h.Value}
}

// Intersect clips the part against s. It reports false when nothing of
// positive length remains.
func (h Hap[V]) Intersect(s span.Span) (Hap[V], bool) {
	part, ok := h.Part.Intersect(s)
	if !ok {
		return Hap[V]{}, false
	}
	return h.WithPart(part), true
}

// HasOnset reports whether the part starts where the whole starts.
func (h Hap[V]) HasOnset() bool {
	return h.Whole != nil && h.Whole.Begin().Cmp(h.Part.Begin()) == 0
}

// HasOffset reports whether the part ends where the whole ends.
func (h Hap[V]) HasOffset() bool {
	return h.Whole != nil && h.Whole.End().Cmp(h.Part.End()) == 0
}

// Follows reports whether the part begins exactly at boundary.
func (h Hap[V]) Follows(boundary *big.Rat) bool {
	return h.Part.Begin().Cmp(boundary) == 0
}

// FollowsHap reports whether the part begins where prev's part ends.
func (h Hap[V]) FollowsHap(prev Hap[V]) bool {
	return h.Follows(prev.Part.End())
}

// Leads reports whether the part ends exactly at boundary.
func (h Hap[V]) Leads(boundary *big.Rat) bool {
	return h.Part.End().Cmp(boundary) == 0
}

// LeadsHap reports whether the part ends where next's part begins.
func (h Hap[V]) LeadsHap(next Hap[V]) bool {
	return h.Leads(next.Part.Begin())
}

func (h Hap[V]) String() string {
	whole := "-"
	if h.Whole != nil {
		whole = h.Whole.String()
	}
	return fmt.Sprintf("%v whole=%s part=%s", h.Value, whole, h.Part)
}
