package hap

import (
	"math/big"
	"slices"

	"pianoroll/span"
)

// SortByOnset returns a copy of haps ordered by part begin. Equal onsets
// keep their input order.
func SortByOnset[V any](haps []Hap[V]) []Hap[V] {
	sorted := slices.Clone(haps)
	slices.SortStableFunc(sorted, func(a, b Hap[V]) int {
		return a.Part.Begin().Cmp(b.Part.Begin())
	})
	return sorted
}

// IntersectAll clips every hap against s, dropping those that do not overlap it.
func IntersectAll[V any](s span.Span, haps []Hap[V]) []Hap[V] {
	clipped := make([]Hap[V], 0, len(haps))
	for _, h := range haps {
		if c, ok := h.Intersect(s); ok {
			clipped = append(clipped, c)
		}
	}
	return clipped
}

// SplitIntoRows packs haps into rows of non-overlapping parts.
//
// Haps are taken in onset order and placed in the first row whose last part
// ends at or before the hap's begin; touching parts share a row. A new row is
// opened when none fits. For intervals this first-fit order needs exactly as
// many rows as the deepest point of overlap (see MaxOverlap).
func SplitIntoRows[V any](haps []Hap[V]) [][]Hap[V] {
	var rows [][]Hap[V]

	for _, h := range SortByOnset(haps) {
		placed := false
		for i, row := range rows {
			last := row[len(row)-1]
			if last.Part.End().Cmp(h.Part.Begin()) <= 0 {
				rows[i] = append(row, h)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, []Hap[V]{h})
		}
	}

	return rows
}

// MaxOverlap returns the largest number of parts open at any one time.
// Parts that only touch are not counted as overlapping, and zero-length
// parts are ignored.
func MaxOverlap[V any](haps []Hap[V]) int {
	type point struct {
		at    *big.Rat
		delta int
	}

	points := make([]point, 0, 2*len(haps))
	for _, h := range haps {
		if h.Part.IsEmpty() {
			continue
		}
		points = append(points, point{h.Part.Begin(), 1}, point{h.Part.End(), -1})
	}

	// Closings sort before openings at the same instant.
	slices.SortFunc(points, func(a, b point) int {
		if c := a.at.Cmp(b.at); c != 0 {
			return c
		}
		return a.delta - b.delta
	})

	open, deepest := 0, 0
	for _, p := range points {
		open += p.delta
		deepest = max(deepest, open)
	}
	return deepest
}
