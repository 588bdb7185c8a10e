package diagram

import (
	"math/big"

	"pianoroll/span"
)

// Edge says whether a strip side is an outer boundary of the row or is
// shared with a neighbouring strip.
type Edge int

const (
	EdgeOuter Edge = iota
	EdgeInward
)

// inset is the pixel amount a strip outline moves on this side: outer edges
// widen by one pixel, shared edges pull in by one so that the two strips
// meeting there do not stroke the same pixels.
func (e Edge) inset() *big.Rat {
	if e == EdgeInward {
		return big.NewRat(1, 1)
	}
	return big.NewRat(-1, 1)
}

// Strip is one of the before/middle/after sections of a row.
type Strip struct {
	Span  span.Span
	Tone  Tone
	Left  Edge
	Right Edge
}

// Empty reports whether the strip has nothing to draw.
func (s Strip) Empty() bool {
	return s.Span.IsEmpty()
}

// Slices splits visible into the before, middle and after strips around
// highlight. Without a highlight the middle strip covers everything and the
// other two are zero-width at the ends of visible.
func Slices(visible span.Span, highlight *span.Span) [3]Strip {
	vb, ve := visible.Begin(), visible.End()

	before := Strip{Span: span.New(vb, vb), Tone: Dim, Left: EdgeOuter, Right: EdgeInward}
	middle := Strip{Span: visible, Tone: Bright, Left: EdgeOuter, Right: EdgeOuter}
	after := Strip{Span: span.New(ve, ve), Tone: Dim, Left: EdgeInward, Right: EdgeOuter}

	if highlight != nil {
		before.Span, _ = visible.Crop(vb, highlight.Begin())
		middle.Span, _ = visible.Intersect(*highlight)
		after.Span, _ = visible.Crop(highlight.End(), ve)
	}

	return [3]Strip{before, middle, after}
}
