package pack

import "math"

// chainNode is one link of the circular front chain.
type chainNode struct {
	d          *Disc
	next, prev *chainNode
}

// Siblings packs discs around the origin without overlap, keeping their
// radii, and returns the radius of the smallest circle enclosing them. The
// discs are positioned in place, relative to the enclosing circle's center.
func Siblings(discs []*Disc) float64 {
	n := len(discs)
	if n == 0 {
		return 0
	}

	a := discs[0]
	a.X, a.Y = 0, 0
	if n == 1 {
		return a.R
	}

	b := discs[1]
	a.X = -b.R
	b.X, b.Y = a.R, 0
	if n == 2 {
		return a.R + b.R
	}

	place(b, a, discs[2])

	na, nb, nc := &chainNode{d: a}, &chainNode{d: b}, &chainNode{d: discs[2]}
	na.next, nc.prev = nb, nb
	nb.next, na.prev = nc, nc
	nc.next, nb.prev = na, na

pack:
	for i := 3; i < n; i++ {
		place(na.d, nb.d, discs[i])
		c := &chainNode{d: discs[i]}

		// Look for the closest circle on the front chain that the new one
		// intersects, walking both directions by accumulated radius.
		j, k := nb.next, na.prev
		sj, sk := nb.d.R, na.d.R
		for {
			if sj <= sk {
				if intersects(j.d, c.d) {
					nb = j
					na.next, nb.prev = nb, na
					i--
					continue pack
				}
				sj += j.d.R
				j = j.next
			} else {
				if intersects(k.d, c.d) {
					na = k
					na.next, nb.prev = nb, na
					i--
					continue pack
				}
				sk += k.d.R
				k = k.prev
			}
			if j == k.next {
				break
			}
		}

		// A disc dropped from the chain can still sit in c's way when radii
		// differ by orders of magnitude.
		if collides(discs[:i], c.d) {
			relocate(discs[:i], c.d)
			continue
		}

		c.prev, c.next = na, nb
		na.next, nb.prev = c, c
		nb = c

		// The next pair to place against is the one closest to the centroid.
		best := score(na)
		for c = c.next; c != nb; c = c.next {
			if s := score(c); s < best {
				na, best = c, s
			}
		}
		nb = na.next
	}

	// Relocated discs are off the chain, so enclose every disc.
	all := make([]Disc, n)
	for i, d := range discs {
		all[i] = *d
	}
	e := Enclose(all)

	for _, d := range discs {
		d.X -= e.X
		d.Y -= e.Y
	}
	return e.R
}

// place positions c tangent to both a and b.
func place(b, a, c *Disc) {
	dx, dy := b.X-a.X, b.Y-a.Y
	d2 := dx*dx + dy*dy
	if d2 == 0 {
		c.X, c.Y = a.X+c.R, a.Y
		return
	}

	a2 := (a.R + c.R) * (a.R + c.R)
	b2 := (b.R + c.R) * (b.R + c.R)
	if a2 > b2 {
		x := (d2 + b2 - a2) / (2 * d2)
		y := math.Sqrt(math.Max(0, b2/d2-x*x))
		c.X = b.X - x*dx - y*dy
		c.Y = b.Y - x*dy + y*dx
		return
	}
	x := (d2 + a2 - b2) / (2 * d2)
	y := math.Sqrt(math.Max(0, a2/d2-x*x))
	c.X = a.X + x*dx - y*dy
	c.Y = a.Y + x*dy + y*dx
}

// collides reports whether c intersects any of the placed discs.
func collides(placed []*Disc, c *Disc) bool {
	for _, p := range placed {
		if intersects(p, c) {
			return true
		}
	}
	return false
}

// relocate moves c to the free position closest to the origin among those
// tangent to two placed discs. Just outside the outermost placed disc, in
// c's current direction, is always free and serves as the fallback.
func relocate(placed []*Disc, c *Disc) {
	extent := 0.0
	for _, p := range placed {
		extent = math.Max(extent, math.Hypot(p.X, p.Y)+p.R)
	}
	ux, uy := 1.0, 0.0
	if h := math.Hypot(c.X, c.Y); h > 0 {
		ux, uy = c.X/h, c.Y/h
	}
	bx, by := ux*(extent+c.R), uy*(extent+c.R)
	best := bx*bx + by*by

	for i, p := range placed {
		for _, q := range placed[i+1:] {
			if math.Hypot(p.X-q.X, p.Y-q.Y) > p.R+q.R+2*c.R {
				continue
			}
			for _, pair := range [2][2]*Disc{{p, q}, {q, p}} {
				place(pair[0], pair[1], c)
				if d2 := c.X*c.X + c.Y*c.Y; d2 < best && !collides(placed, c) {
					bx, by, best = c.X, c.Y, d2
				}
			}
		}
	}
	c.X, c.Y = bx, by
}

func intersects(a, b *Disc) bool {
	dr := a.R + b.R - 1e-6
	dx, dy := b.X-a.X, b.Y-a.Y
	return dr > 0 && dr*dr > dx*dx+dy*dy
}

// score is the squared distance from the origin to the weighted midpoint of
// node and its successor.
func score(node *chainNode) float64 {
	a, b := node.d, node.next.d
	ab := a.R + b.R
	if ab == 0 {
		return a.X*a.X + a.Y*a.Y
	}
	dx := (a.X*b.R + b.X*a.R) / ab
	dy := (a.Y*b.R + b.Y*a.R) / ab
	return dx*dx + dy*dy
}
