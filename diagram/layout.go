// Package diagram lays out rows of haps as a piano-roll diagram.
//
// Layout is a pure function of its options and events: it returns a flat
// list of primitives (lines, boxes, labels) in device coordinates and never
// touches a drawing surface. All time arithmetic stays exact until a
// coordinate is emitted.
package diagram

import (
	"fmt"
	"math/big"

	"pianoroll/hap"
	"pianoroll/span"
)

// Geometry holds the pixel dimensions of a diagram.
type Geometry struct {
	Width        int
	MarginLeft   int
	MarginRight  int
	RowHeight    int
	HeaderHeight int
	FooterHeight int
	AxisHeight   int
}

// DefaultGeometry returns the dimensions used when no config is given.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:        600,
		MarginLeft:   5,
		MarginRight:  5,
		RowHeight:    50,
		HeaderHeight: 30,
		FooterHeight: 10,
		AxisHeight:   30,
	}
}

// Options describes one render.
type Options struct {
	Geometry

	// Visible is the time window mapped onto the drawing width.
	Visible span.Span

	// Highlight, when set, is drawn bright while the rest of Visible is dimmed.
	Highlight *span.Span

	// Steps is the number of axis ticks per cycle. Nil means 1.
	Steps *big.Rat

	Title string
	Axis  bool
}

// Diagram is the result of a layout pass.
type Diagram struct {
	Width      float64
	Height     float64
	Rows       int
	Primitives []Primitive
}

func (d *Diagram) add(p ...Primitive) {
	d.Primitives = append(d.Primitives, p...)
}

// Lines returns the line primitives in emission order.
func (d *Diagram) Lines() []Line {
	var lines []Line
	for _, p := range d.Primitives {
		if l, ok := p.(Line); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// Boxes returns the box primitives in emission order.
func (d *Diagram) Boxes() []Box {
	var boxes []Box
	for _, p := range d.Primitives {
		if b, ok := p.(Box); ok {
			boxes = append(boxes, b)
		}
	}
	return boxes
}

// Labels returns the label primitives in emission order.
func (d *Diagram) Labels() []Label {
	var labels []Label
	for _, p := range d.Primitives {
		if l, ok := p.(Label); ok {
			labels = append(labels, l)
		}
	}
	return labels
}

// Layout packs haps into rows and lays them out.
func Layout[V any](opts Options, haps []hap.Hap[V]) (*Diagram, error) {
	return LayoutRows(opts, hap.SplitIntoRows(haps))
}

// LayoutRows lays out rows that are already packed. Each row must be sorted
// by onset and free of overlapping parts.
func LayoutRows[V any](opts Options, rows [][]hap.Hap[V]) (*Diagram, error) {
	sc, err := newScale(opts.Geometry, opts.Visible)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for _, h := range row {
			if err := h.Validate(); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		}
	}

	if len(rows) == 0 {
		rows = [][]hap.Hap[V]{nil}
	}

	g := opts.Geometry
	d := &Diagram{Width: float64(g.Width), Rows: len(rows)}

	if opts.Title != "" {
		d.add(Label{
			X:    float64(g.MarginLeft),
			Y:    float64(g.HeaderHeight) * 2 / 3,
			Text: opts.Title,
			Tone: Bright,
		})
	}

	strips := Slices(opts.Visible, opts.Highlight)
	for i, row := range rows {
		top := float64(g.HeaderHeight + i*g.RowHeight)
		for _, strip := range strips {
			if strip.Empty() {
				continue
			}
			layoutStrip(d, sc, strip, hap.IntersectAll(strip.Span, row), top, float64(g.RowHeight))
		}
	}

	bottom := float64(g.HeaderHeight + len(rows)*g.RowHeight)
	if opts.Axis {
		layoutAxis(d, sc, opts.Steps, bottom)
		d.Height = bottom + float64(g.AxisHeight)
	} else {
		d.Height = bottom + float64(g.FooterHeight)
	}

	return d, nil
}

// scale maps time onto the horizontal device range.
type scale struct {
	device  span.Span
	visible span.Span
}

func newScale(g Geometry, visible span.Span) (scale, error) {
	if visible.Length().Sign() == 0 {
		return scale{}, fmt.Errorf("visible window %s: %w", visible, span.ErrDegenerateMapping)
	}
	return scale{
		device:  span.FromInts(int64(g.MarginLeft), int64(g.Width-g.MarginRight)),
		visible: visible,
	}, nil
}

// x and span cannot fail once newScale has accepted the visible window.
func (s scale) x(t *big.Rat) *big.Rat {
	r, _ := s.device.Map(t, s.visible)
	return r
}

func (s scale) span(t span.Span) span.Span {
	r, _ := s.device.MapSpan(t, s.visible)
	return r
}

// layoutStrip draws one strip of a row: its outline, then every hap clipped
// to it. haps must already be clipped to strip.Span.
func layoutStrip[V any](d *Diagram, sc scale, strip Strip, haps []hap.Hap[V], top, height float64) {
	outline := sc.span(strip.Span).ContractEach(strip.Left.inset(), strip.Right.inset())
	left, right := toFloat(outline.Begin()), toFloat(outline.End())
	upper, lower := top+1, top+height-1

	d.add(
		Line{X1: left, Y1: upper, X2: right, Y2: upper, Tone: strip.Tone},
		Line{X1: left, Y1: lower, X2: right, Y2: lower, Tone: strip.Tone},
	)

	begin, end := strip.Span.Begin(), strip.Span.End()
	if len(haps) == 0 || !haps[0].Follows(begin) {
		d.add(Line{X1: left, Y1: upper, X2: left, Y2: lower, Tone: strip.Tone})
	}
	if len(haps) == 0 || !haps[len(haps)-1].Leads(end) {
		d.add(Line{X1: right, Y1: upper, X2: right, Y2: lower, Tone: strip.Tone})
	}

	for i, h := range haps {
		showBegin := true
		if i == 0 {
			showBegin = !(h.Follows(begin) && strip.Left == EdgeInward)
		}

		var showEnd bool
		if i == len(haps)-1 {
			showEnd = !(h.Leads(end) && strip.Right == EdgeInward)
		} else {
			showEnd = !h.LeadsHap(haps[i+1])
		}

		layoutHap(d, sc, h, showBegin, showEnd, strip.Tone, top, height)
	}
}

func layoutHap[V any](d *Diagram, sc scale, h hap.Hap[V], showBegin, showEnd bool, tone Tone, top, height float64) {
	outer := sc.span(h.Part)
	inner := outer.Contract(big.NewRat(2, 1))

	d.add(Box{
		X:      toFloat(inner.Begin()),
		Y:      top,
		Width:  max(toFloat(inner.Length()), 0),
		Height: height,
		Onset:  h.HasOnset(),
		Tone:   tone,
	})

	if showBegin {
		x := toFloat(outer.Begin())
		d.add(Line{X1: x, Y1: top, X2: x, Y2: top + height, Dashed: !h.HasOnset(), Tone: tone})
	}
	if showEnd {
		x := toFloat(outer.End())
		d.add(Line{X1: x, Y1: top, X2: x, Y2: top + height, Dashed: !h.HasOffset(), Tone: tone})
	}

	d.add(Label{
		X:        toFloat(inner.MapUnit(big.NewRat(1, 2))),
		Y:        top + height/2,
		Text:     LabelOf(h.Value),
		Anchor:   AnchorMiddle,
		Baseline: BaselineMiddle,
		Tone:     tone,
	})
}

func toFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}
