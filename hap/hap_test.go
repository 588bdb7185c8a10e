package hap

import (
	"errors"
	"math/big"
	"testing"

	"pianoroll/span"
)

func whole(b, e string) *span.Span {
	s := span.MustParseSpan(b, e)
	return &s
}

func TestOnsetOffset(t *testing.T) {
	tests := []struct {
		name   string
		h      Hap[string]
		onset  bool
		offset bool
	}{
		{"complete", New(whole("0", "1"), span.FromInts(0, 1), "a"), true, true},
		{"head fragment", New(whole("0", "2"), span.FromInts(0, 1), "a"), true, false},
		{"tail fragment", New(whole("0", "2"), span.FromInts(1, 2), "a"), false, true},
		{"middle fragment", New(whole("0", "3"), span.FromInts(1, 2), "a"), false, false},
		{"no whole", New(nil, span.FromInts(0, 1), "a"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.HasOnset(); got != tt.onset {
				t.Errorf("HasOnset() = %v, want %v", got, tt.onset)
			}
			if got := tt.h.HasOffset(); got != tt.offset {
				t.Errorf("HasOffset() = %v, want %v", got, tt.offset)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	h := New(whole("0", "2"), span.FromInts(0, 2), 7)

	clipped, ok := h.Intersect(span.FromInts(1, 3))
	if !ok {
		t.Fatalf("Intersect reported no overlap")
	}
	if !clipped.Part.Equal(span.FromInts(1, 2)) {
		t.Errorf("clipped part = %s, want [1, 2]", clipped.Part)
	}
	if clipped.Whole != h.Whole || clipped.Value != 7 {
		t.Errorf("clipped hap should share whole and value")
	}
	if clipped.HasOnset() || !clipped.HasOffset() {
		t.Errorf("clipped tail should have an offset but no onset")
	}

	if _, ok := h.Intersect(span.FromInts(2, 3)); ok {
		t.Errorf("touching span should not intersect")
	}
}

func TestFollowsLeads(t *testing.T) {
	a := New(nil, span.FromInts(0, 1), "a")
	b := New(nil, span.FromInts(1, 2), "b")
	c := New(nil, span.MustParseSpan("5/2", "3"), "c")

	if !b.FollowsHap(a) || !a.LeadsHap(b) {
		t.Errorf("adjacent haps should follow/lead each other")
	}
	if c.FollowsHap(b) || b.LeadsHap(c) {
		t.Errorf("separated haps should not follow/lead each other")
	}
	if !a.Follows(big.NewRat(0, 1)) || !a.Leads(big.NewRat(1, 1)) {
		t.Errorf("boundary checks failed")
	}
	if !c.Follows(big.NewRat(5, 2)) {
		t.Errorf("Follows(5/2) should be true for %s", c)
	}
}

func TestValidate(t *testing.T) {
	bad := New(nil, span.FromInts(2, 1), "x")
	if err := bad.Validate(); !errors.Is(err, ErrNegativePart) {
		t.Errorf("Validate() = %v, want ErrNegativePart", err)
	}

	good := New(nil, span.FromInts(1, 1), "x")
	if err := good.Validate(); err != nil {
		t.Errorf("zero-length part should validate, got %v", err)
	}
}
