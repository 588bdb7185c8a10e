package span

import (
	"errors"
	"math/big"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want *big.Rat
	}{
		{"3", big.NewRat(3, 1)},
		{"0.25", big.NewRat(1, 4)},
		{"1/3", big.NewRat(1, 3)},
		{" 2/4 ", big.NewRat(1, 2)},
		{"1001/24000s", big.NewRat(1001, 24000)},
		{"-1/2", big.NewRat(-1, 2)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.in, err)
			continue
		}
		if got.Cmp(tt.want) != 0 {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got.RatString(), tt.want.RatString())
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1/0", "s", "one/two"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidInput", in, err)
		}
	}

	if _, err := NewFromStrings("0", "x"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewFromStrings with bad end: error = %v, want ErrInvalidInput", err)
	}
}

func TestLength(t *testing.T) {
	s := MustParseSpan("1/4", "3/4")
	if s.Length().Cmp(big.NewRat(1, 2)) != 0 {
		t.Errorf("Length() = %s, want 1/2", s.Length().RatString())
	}

	var zero Span
	if zero.Length().Sign() != 0 || !zero.IsEmpty() {
		t.Errorf("zero value should be the empty span, got %s", zero)
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Span
		want   Span
		wantOK bool
	}{
		{"overlap", FromInts(0, 2), FromInts(1, 3), FromInts(1, 2), true},
		{"contained", FromInts(0, 4), FromInts(1, 2), FromInts(1, 2), true},
		{"identical", FromInts(0, 1), FromInts(0, 1), FromInts(0, 1), true},
		{"touching right", FromInts(0, 1), FromInts(1, 2), Span{}, false},
		{"touching left", FromInts(1, 2), FromInts(0, 1), Span{}, false},
		{"disjoint", FromInts(0, 1), FromInts(2, 3), Span{}, false},
		{"fractions", MustParseSpan("1/3", "2/3"), MustParseSpan("1/2", "1"), MustParseSpan("1/2", "2/3"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Intersect ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Intersect = %s, want %s", got, tt.want)
			}

			rev, revOK := tt.b.Intersect(tt.a)
			if revOK != ok {
				t.Fatalf("Intersect is not commutative: %v vs %v", ok, revOK)
			}
			if ok && !rev.Equal(got) {
				t.Errorf("Intersect is not commutative: %s vs %s", got, rev)
			}
		})
	}
}

func TestCrop(t *testing.T) {
	s := FromInts(0, 4)

	got, ok := s.Crop(big.NewRat(1, 1), big.NewRat(3, 1))
	if !ok || !got.Equal(FromInts(1, 3)) {
		t.Errorf("Crop(1, 3) = %s, %v; want [1, 3], true", got, ok)
	}

	// Zero length survives a crop.
	got, ok = s.Crop(big.NewRat(0, 1), big.NewRat(0, 1))
	if !ok || got.Length().Sign() != 0 {
		t.Errorf("Crop(0, 0) = %s, %v; want zero-length span", got, ok)
	}

	if _, ok := s.Crop(big.NewRat(5, 1), big.NewRat(6, 1)); ok {
		t.Errorf("Crop outside the span should be absent")
	}
}

func TestContract(t *testing.T) {
	s := FromInts(0, 10)

	if got := s.Contract(big.NewRat(2, 1)); !got.Equal(FromInts(1, 9)) {
		t.Errorf("Contract(2) = %s, want [1, 9]", got)
	}
	if got := s.ContractEach(big.NewRat(1, 1), big.NewRat(3, 1)); !got.Equal(FromInts(1, 7)) {
		t.Errorf("ContractEach(1, 3) = %s, want [1, 7]", got)
	}
	if got := s.ContractEach(big.NewRat(-1, 1), big.NewRat(-1, 1)); !got.Equal(FromInts(-1, 11)) {
		t.Errorf("ContractEach(-1, -1) = %s, want [-1, 11]", got)
	}
}

func TestMap(t *testing.T) {
	device := FromInts(5, 205)
	visible := FromInts(0, 2)

	got, err := device.Map(big.NewRat(1, 1), visible)
	if err != nil {
		t.Fatalf("Map returned error: %v", err)
	}
	if got.Cmp(big.NewRat(105, 1)) != 0 {
		t.Errorf("Map(1) = %s, want 105", got.RatString())
	}

	mapped, err := device.MapSpan(MustParseSpan("1/2", "3/2"), visible)
	if err != nil {
		t.Fatalf("MapSpan returned error: %v", err)
	}
	if !mapped.Equal(FromInts(55, 155)) {
		t.Errorf("MapSpan = %s, want [55, 155]", mapped)
	}

	if mid := FromInts(2, 4).MapUnit(big.NewRat(1, 2)); mid.Cmp(big.NewRat(3, 1)) != 0 {
		t.Errorf("MapUnit(1/2) = %s, want 3", mid.RatString())
	}
}

func TestMapRoundTrip(t *testing.T) {
	target := FromInts(0, 3)
	x := big.NewRat(1, 3)

	there, err := target.Map(x, Unit)
	if err != nil {
		t.Fatalf("Map returned error: %v", err)
	}
	if there.Cmp(big.NewRat(1, 1)) != 0 {
		t.Fatalf("Map(1/3) = %s, want 1", there.RatString())
	}

	back, err := Unit.Map(there, target)
	if err != nil {
		t.Fatalf("inverse Map returned error: %v", err)
	}
	if back.Cmp(x) != 0 {
		t.Errorf("round trip = %s, want %s", back.RatString(), x.RatString())
	}

	// Repeated thirds stay exact.
	v := new(big.Rat).Set(x)
	for i := 0; i < 50; i++ {
		v, _ = target.Map(v, Unit)
		v, _ = Unit.Map(v, target)
	}
	if v.Cmp(x) != 0 {
		t.Errorf("50 round trips drifted to %s", v.RatString())
	}
}

func TestMapDegenerate(t *testing.T) {
	_, err := FromInts(0, 100).Map(big.NewRat(1, 1), FromInts(2, 2))
	if !errors.Is(err, ErrDegenerateMapping) {
		t.Errorf("Map from zero-length span: error = %v, want ErrDegenerateMapping", err)
	}

	_, err = FromInts(0, 100).MapSpan(FromInts(0, 1), FromInts(2, 2))
	if !errors.Is(err, ErrDegenerateMapping) {
		t.Errorf("MapSpan from zero-length span: error = %v, want ErrDegenerateMapping", err)
	}
}

func TestImmutability(t *testing.T) {
	b := big.NewRat(1, 1)
	s := New(b, big.NewRat(2, 1))
	b.SetInt64(10)
	if s.Begin().Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("New did not copy its arguments")
	}

	s.Begin().SetInt64(7)
	if s.Begin().Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("Begin() exposed internal state")
	}
}

func TestString(t *testing.T) {
	if got := MustParseSpan("1/3", "2").String(); got != "[1/3, 2]" {
		t.Errorf("String() = %q, want %q", got, "[1/3, 2]")
	}
}
