// Package span implements exact rational time intervals.
//
// All arithmetic uses math/big.Rat so that repeated subdivision of a cycle
// never accumulates rounding error. Conversion to float64 only happens when
// a backend asks for device coordinates.
package span

import (
	"fmt"
	"math/big"
	"strings"
)

// Span is an immutable [begin, end] pair on the time axis.
// The zero value is the empty span [0, 0].
type Span struct {
	begin *big.Rat
	end   *big.Rat
}

// Unit is the span [0, 1], the default source of Map.
var Unit = FromInts(0, 1)

// New returns the span [begin, end]. The arguments are copied.
func New(begin, end *big.Rat) Span {
	return Span{begin: copyRat(begin), end: copyRat(end)}
}

// FromInts returns the span [begin, end] for integer endpoints.
func FromInts(begin, end int64) Span {
	return Span{begin: big.NewRat(begin, 1), end: big.NewRat(end, 1)}
}

// NewFromStrings parses both endpoints with Parse.
func NewFromStrings(begin, end string) (Span, error) {
	b, err := Parse(begin)
	if err != nil {
		return Span{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return Span{}, err
	}
	return Span{begin: b, end: e}, nil
}

// MustParseSpan is NewFromStrings for literals known to be valid.
func MustParseSpan(begin, end string) Span {
	s, err := NewFromStrings(begin, end)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse reads an exact rational. It accepts integers ("3"), decimals
// ("0.25"), fractions ("1/3") and rational time values with a trailing
// seconds suffix ("1001/24000s").
func Parse(s string) (*big.Rat, error) {
	text := strings.TrimSpace(s)
	text = strings.TrimSuffix(text, "s")
	if text == "" {
		return nil, fmt.Errorf("%w: empty endpoint", ErrInvalidInput)
	}
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return r, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) *big.Rat {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Begin returns a copy of the start point.
func (s Span) Begin() *big.Rat { return copyRat(s.begin) }

// End returns a copy of the end point.
func (s Span) End() *big.Rat { return copyRat(s.end) }

// Length returns end - begin. It may be negative.
func (s Span) Length() *big.Rat {
	return new(big.Rat).Sub(s.e(), s.b())
}

// IsEmpty reports whether the span has zero or negative length.
func (s Span) IsEmpty() bool {
	return s.Length().Sign() <= 0
}

// Equal reports whether both endpoints are equal.
func (s Span) Equal(other Span) bool {
	return s.b().Cmp(other.b()) == 0 && s.e().Cmp(other.e()) == 0
}

// Intersect returns the overlap of two spans. Spans that only touch do not
// intersect, so the result always has positive length when ok is true.
func (s Span) Intersect(other Span) (Span, bool) {
	if s.e().Cmp(other.b()) <= 0 || s.b().Cmp(other.e()) >= 0 {
		return Span{}, false
	}
	return Span{begin: Max(s.b(), other.b()), end: Min(s.e(), other.e())}, true
}

// Crop clamps the span to [lo, hi]. Unlike Intersect a zero-length result is
// kept; only a negative length is reported as absent.
func (s Span) Crop(lo, hi *big.Rat) (Span, bool) {
	cropped := Span{begin: Max(s.b(), lo), end: Min(s.e(), hi)}
	if cropped.Length().Sign() < 0 {
		return Span{}, false
	}
	return cropped, true
}

// Contract shrinks the span by amount, half on each side.
func (s Span) Contract(amount *big.Rat) Span {
	half := new(big.Rat).Quo(amount, big.NewRat(2, 1))
	return s.ContractEach(half, half)
}

// ContractEach moves begin right by left and end left by right.
// Negative amounts widen the span.
func (s Span) ContractEach(left, right *big.Rat) Span {
	return Span{
		begin: new(big.Rat).Add(s.b(), left),
		end:   new(big.Rat).Sub(s.e(), right),
	}
}

// Map sends x from the coordinate system of from into s:
//
//	(x - from.begin) / from.length * s.length + s.begin
//
// A zero-length source has no affine map and yields ErrDegenerateMapping.
func (s Span) Map(x *big.Rat, from Span) (*big.Rat, error) {
	fromLength := from.Length()
	if fromLength.Sign() == 0 {
		return nil, fmt.Errorf("%w: source %s", ErrDegenerateMapping, from)
	}
	r := new(big.Rat).Sub(x, from.b())
	r.Quo(r, fromLength)
	r.Mul(r, s.Length())
	return r.Add(r, s.b()), nil
}

// MapSpan maps both endpoints of other with Map.
func (s Span) MapSpan(other, from Span) (Span, error) {
	b, err := s.Map(other.b(), from)
	if err != nil {
		return Span{}, err
	}
	e, err := s.Map(other.e(), from)
	if err != nil {
		return Span{}, err
	}
	return Span{begin: b, end: e}, nil
}

// MapUnit maps x from [0, 1] into s. It cannot fail.
func (s Span) MapUnit(x *big.Rat) *big.Rat {
	r := new(big.Rat).Mul(x, s.Length())
	return r.Add(r, s.b())
}

func (s Span) String() string {
	return fmt.Sprintf("[%s, %s]", s.b().RatString(), s.e().RatString())
}

func (s Span) b() *big.Rat {
	if s.begin == nil {
		return new(big.Rat)
	}
	return s.begin
}

func (s Span) e() *big.Rat {
	if s.end == nil {
		return new(big.Rat)
	}
	return s.end
}

// Max returns a copy of the larger of a and b.
func Max(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return copyRat(a)
	}
	return copyRat(b)
}

// Min returns a copy of the smaller of a and b.
func Min(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return copyRat(a)
	}
	return copyRat(b)
}

func copyRat(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(r)
}
