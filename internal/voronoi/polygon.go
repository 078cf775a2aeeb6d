package voronoi

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/unixpickle/model3d/model2d"
)

// Area returns the area of the cell, 0 for empty cells.
func (c *Cell) Area() float64 {
	return math.Abs(signedArea(c.Polygon))
}

// Empty returns if the cell owns no area at all.
func (c *Cell) Empty() bool {
	return len(c.Polygon) < 3
}

// Bounds returns the smallest rectangle containing the cell.
func (c *Cell) Bounds() r2.Rect {
	if c.Empty() {
		return r2.EmptyRect()
	}
	pts := make([]r2.Point, len(c.Polygon))
	for i, p := range c.Polygon {
		pts[i] = r2.Point{X: p.X, Y: p.Y}
	}
	return r2.RectFromPoints(pts...)
}

// Contains returns if p is inside the cell or on its boundary (within tolerance).
// Cells are convex so p is inside iff it is left of (or on) every edge.
func (c *Cell) Contains(p model2d.Coord) bool {
	if c.Empty() {
		return false
	}
	n := len(c.Polygon)
	for k := 0; k < n; k++ {
		a, b := c.Polygon[k], c.Polygon[(k+1)%n]
		edge := b.Sub(a)
		// cross product of edge & a->p, scaled by edge length to get a distance
		cross := edge.X*(p.Y-a.Y) - edge.Y*(p.X-a.X)
		if cross < -1e-9*math.Max(1, edge.Norm()) {
			return false
		}
	}
	return true
}

// Segments returns the cell outline as segments, in ring order.
func (c *Cell) Segments() []*model2d.Segment {
	n := len(c.Polygon)
	segs := make([]*model2d.Segment, 0, n)
	for k := 0; k < n; k++ {
		segs = append(segs, &model2d.Segment{c.Polygon[k], c.Polygon[(k+1)%n]})
	}
	return segs
}

// Across returns the site on the other side of the k'th edge of the polygon,
// or Border.
func (c *Cell) Across(k int) int {
	if k < 0 || k >= len(c.across) {
		return Border
	}
	return c.across[k]
}

// signedArea by the shoelace formula; positive when wound counter-clockwise
// (in a y-up frame). Nb. coords are taken relative to the first vertex, so
// polygons far from the origin don't lose their area to rounding.
func signedArea(pts []model2d.Coord) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	origin := pts[0]
	sum := 0.0
	for k := 1; k+1 < n; k++ {
		a, b := pts[k].Sub(origin), pts[k+1].Sub(origin)
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}
