package pack

import (
	"math"
	"math/rand/v2"
	"slices"
)

// encloseSeed fixes the shuffle in Enclose so layouts are reproducible.
const encloseSeed = 42

// Enclose returns the smallest circle that contains every disc, using
// Welzl's move-to-front algorithm. The input slice is not modified.
func Enclose(discs []Disc) Disc {
	if len(discs) == 0 {
		return Disc{}
	}

	circles := slices.Clone(discs)
	rng := rand.New(rand.NewPCG(encloseSeed, encloseSeed^0xdeadbeef))
	rng.Shuffle(len(circles), func(i, j int) {
		circles[i], circles[j] = circles[j], circles[i]
	})

	var (
		basis []Disc
		e     Disc
		have  bool
	)
	for i := 0; i < len(circles); {
		p := circles[i]
		if have && enclosesWeak(e, p) {
			i++
			continue
		}
		next, ok := extendBasis(basis, p)
		if !ok {
			return bounding(circles)
		}
		basis, e, have = next, encloseBasis(next), true
		i = 0
	}
	return e
}

func extendBasis(basis []Disc, p Disc) ([]Disc, bool) {
	if enclosesWeakAll(p, basis) {
		return []Disc{p}, true
	}

	for _, b := range basis {
		if enclosesNot(p, b) && enclosesWeakAll(encloseBasis2(b, p), basis) {
			return []Disc{b, p}, true
		}
	}

	for i := 0; i < len(basis)-1; i++ {
		for j := i + 1; j < len(basis); j++ {
			bi, bj := basis[i], basis[j]
			if enclosesNot(encloseBasis2(bi, bj), p) &&
				enclosesNot(encloseBasis2(bi, p), bj) &&
				enclosesNot(encloseBasis2(bj, p), bi) &&
				enclosesWeakAll(encloseBasis3(bi, bj, p), basis) {
				return []Disc{bi, bj, p}, true
			}
		}
	}

	return nil, false
}

func enclosesNot(a, b Disc) bool {
	dr := a.R - b.R
	dx, dy := b.X-a.X, b.Y-a.Y
	return dr < 0 || dr*dr < dx*dx+dy*dy
}

func enclosesWeak(a, b Disc) bool {
	dr := a.R - b.R + math.Max(math.Max(a.R, b.R), 1)*1e-9
	dx, dy := b.X-a.X, b.Y-a.Y
	return dr > 0 && dr*dr > dx*dx+dy*dy
}

func enclosesWeakAll(a Disc, basis []Disc) bool {
	for _, b := range basis {
		if !enclosesWeak(a, b) {
			return false
		}
	}
	return true
}

func encloseBasis(basis []Disc) Disc {
	switch len(basis) {
	case 1:
		return basis[0]
	case 2:
		return encloseBasis2(basis[0], basis[1])
	default:
		return encloseBasis3(basis[0], basis[1], basis[2])
	}
}

func encloseBasis2(a, b Disc) Disc {
	x21, y21, r21 := b.X-a.X, b.Y-a.Y, b.R-a.R
	l := math.Sqrt(x21*x21 + y21*y21)
	if l == 0 {
		return Disc{X: a.X, Y: a.Y, R: math.Max(a.R, b.R)}
	}
	return Disc{
		X: (a.X + b.X + x21/l*r21) / 2,
		Y: (a.Y + b.Y + y21/l*r21) / 2,
		R: (l + a.R + b.R) / 2,
	}
}

// encloseBasis3 solves for the circle internally tangent to a, b and c.
func encloseBasis3(a, b, c Disc) Disc {
	x1, y1, r1 := a.X, a.Y, a.R
	x2, y2, r2 := b.X, b.Y, b.R
	x3, y3, r3 := c.X, c.Y, c.R

	a2, a3 := x1-x2, x1-x3
	b2, b3 := y1-y2, y1-y3
	c2, c3 := r2-r1, r3-r1
	d1 := x1*x1 + y1*y1 - r1*r1
	d2 := d1 - x2*x2 - y2*y2 + r2*r2
	d3 := d1 - x3*x3 - y3*y3 + r3*r3
	ab := a3*b2 - a2*b3
	xa := (b2*d3-b3*d2)/(ab*2) - x1
	xb := (b3*c2 - b2*c3) / ab
	ya := (a3*d2-a2*d3)/(ab*2) - y1
	yb := (a2*c3 - a3*c2) / ab
	qa := xb*xb + yb*yb - 1
	qb := 2 * (r1 + xa*xb + ya*yb)
	qc := xa*xa + ya*ya - r1*r1

	var r float64
	if qa != 0 {
		r = -(qb + math.Sqrt(qb*qb-4*qa*qc)) / (2 * qa)
	} else {
		r = -qc / qb
	}
	return Disc{X: x1 + xa + xb*r, Y: y1 + ya + yb*r, R: r}
}

// bounding is a conservative enclosing circle for inputs the exact solver
// cannot handle (collinear or numerically degenerate bases).
func bounding(discs []Disc) Disc {
	var cx, cy float64
	for _, d := range discs {
		cx += d.X
		cy += d.Y
	}
	cx /= float64(len(discs))
	cy /= float64(len(discs))

	r := 0.0
	for _, d := range discs {
		r = math.Max(r, math.Hypot(d.X-cx, d.Y-cy)+d.R)
	}
	return Disc{X: cx, Y: cy, R: r}
}
