package pattern

import (
	"math/big"
	"strings"

	"pianoroll/hap"
	"pianoroll/span"
)

// Rest marks a silent step in a sequence.
const Rest = "~"

// Sequence repeats a list of steps once per cycle, each step taking an equal
// share of the cycle.
type Sequence struct {
	steps []string
}

// NewSequence splits text on whitespace into steps.
func NewSequence(text string) Sequence {
	return Sequence{steps: strings.Fields(text)}
}

// Steps returns the number of steps per cycle, rests included.
func (s Sequence) Steps() int {
	return len(s.steps)
}

// Query returns the haps overlapping window in onset order. Steps cut by the
// window keep their full whole, so a clipped step has no onset or offset.
func (s Sequence) Query(window span.Span) []hap.Hap[string] {
	n := int64(len(s.steps))
	if n == 0 || window.IsEmpty() {
		return nil
	}

	first := floorInt(window.Begin())
	last := floorInt(window.End())

	var haps []hap.Hap[string]
	for cycle := new(big.Int).Set(first); cycle.Cmp(last) <= 0; cycle.Add(cycle, big.NewInt(1)) {
		base := new(big.Rat).SetInt(cycle)
		for i, value := range s.steps {
			if value == Rest {
				continue
			}
			begin := new(big.Rat).Add(base, big.NewRat(int64(i), n))
			end := new(big.Rat).Add(base, big.NewRat(int64(i)+1, n))
			whole := span.New(begin, end)

			part, ok := whole.Intersect(window)
			if !ok {
				continue
			}
			haps = append(haps, hap.New(&whole, part, value))
		}
	}
	return haps
}

func floorInt(r *big.Rat) *big.Int {
	q, _ := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	return q
}
