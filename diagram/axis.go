package diagram

import (
	"math/big"
)

const (
	majorTick = 15
	minorTick = 8
	tickGap   = 3
)

// layoutAxis ticks the visible window every 1/steps cycles starting at the
// first step boundary inside it. Whole cycles get a long labelled tick.
func layoutAxis(d *Diagram, sc scale, steps *big.Rat, y float64) {
	if steps == nil || steps.Sign() <= 0 {
		steps = big.NewRat(1, 1)
	}
	stride := new(big.Rat).Inv(steps)

	begin, end := sc.visible.Begin(), sc.visible.End()
	if begin.Cmp(end) > 0 {
		begin, end = end, begin
	}

	first := ceilRat(new(big.Rat).Mul(begin, steps))
	for t := new(big.Rat).Quo(first, steps); t.Cmp(end) <= 0; t = new(big.Rat).Add(t, stride) {
		x := toFloat(sc.x(t))
		if t.IsInt() {
			d.add(
				Line{X1: x, Y1: y, X2: x, Y2: y + majorTick, Tone: Bright},
				Label{
					X:        x,
					Y:        y + majorTick + tickGap,
					Text:     t.RatString(),
					Anchor:   AnchorMiddle,
					Baseline: BaselineHanging,
					Tone:     Bright,
				},
			)
		} else {
			d.add(Line{X1: x, Y1: y, X2: x, Y2: y + minorTick, Tone: Bright})
		}
	}
}

// ceilRat returns the smallest integer not less than r, as a Rat.
func ceilRat(r *big.Rat) *big.Rat {
	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return new(big.Rat).SetInt(q)
}
