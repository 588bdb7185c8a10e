package diagram

// Tone is the visual treatment of a strip. At most one strip per row is bright.
type Tone int

const (
	Dim Tone = iota
	Bright
)

func (t Tone) String() string {
	if t == Bright {
		return "bright"
	}
	return "dim"
}

// Kind identifies the concrete type of a Primitive.
type Kind int

const (
	KindLine Kind = iota
	KindBox
	KindLabel
)

// Primitive is one drawing instruction. Backends switch on Kind or on the
// concrete type (Line, Box, Label).
type Primitive interface {
	Kind() Kind
}

// Line is a stroked segment in device coordinates.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Dashed bool
	Tone   Tone
}

func (Line) Kind() Kind { return KindLine }

// Vertical reports whether the segment is vertical.
func (l Line) Vertical() bool { return l.X1 == l.X2 }

// Box is a filled, unstroked rectangle. Onset selects the stronger fill used
// for haps that start inside the drawing.
type Box struct {
	X, Y          float64
	Width, Height float64
	Onset         bool
	Tone          Tone
}

func (Box) Kind() Kind { return KindBox }

// Anchor is the horizontal alignment of a label relative to its X.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
)

// Baseline is the vertical alignment of a label relative to its Y.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineMiddle
	BaselineHanging
)

// Label is positioned text.
type Label struct {
	X, Y     float64
	Text     string
	Anchor   Anchor
	Baseline Baseline
	Tone     Tone
}

func (Label) Kind() Kind { return KindLabel }
