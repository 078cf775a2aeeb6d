package voronoi

import (
	"sort"

	"github.com/golang/geo/r2"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// Cells are built in the manner of
// https://github.com/unixpickle/voronoi-glass/blob/main/voronoi.go
// ie. each cell is the bounding rectangle intersected with the half planes
// closer to its site than to each other site. We visit other sites nearest
// first so we can stop as soon as no remaining bisector can reach the cell,
// and we track which site produced each edge for the wireframe.

// clipEpsilon is how far outside a half plane a vertex may sit & still count as in
const clipEpsilon = 1e-9

// polytopeCells computes one cell per site. Cells are independent so they're
// computed concurrently, but Build still returns only once every cell is done.
func polytopeCells(sites []model2d.Coord, bounds r2.Rect) []*Cell {
	cells := make([]*Cell, len(sites))
	first := firstOccurrence(sites)
	essentials.ConcurrentMap(0, len(sites), func(i int) {
		if first[i] != i {
			// a later duplicate; the earlier site wins every tie
			cells[i] = &Cell{Site: i, Center: sites[i]}
			return
		}
		cells[i] = polytopeCell(sites, i, byDistance(sites, i, nil), bounds)
	})
	return cells
}

// polytopeCell clips the bounding rectangle down to the cell of site i, using
// the bisectors with the sites in order (nearest first).
func polytopeCell(sites []model2d.Coord, i int, order []int, bounds r2.Rect) *Cell {
	site := sites[i]
	poly := rectRing(bounds)

	for _, j := range order {
		other := sites[j]
		if other == site {
			continue
		}
		if site.Dist(other) > 2*poly.maxDist(site) {
			// every bisector from here on lies beyond the furthest vertex
			break
		}
		poly = poly.clip(bisector(site, other), j)
		if poly.empty() {
			break
		}
	}

	return &Cell{Site: i, Center: site, Polygon: poly.points, across: poly.across}
}

// bisector returns the half plane of points at least as close to site as to other.
func bisector(site, other model2d.Coord) *model2d.LinearConstraint {
	normal := other.Sub(site).Normalize()
	return &model2d.LinearConstraint{
		Normal: normal,
		Max:    normal.Dot(site.Mid(other)),
	}
}

// firstOccurrence maps each site to the index of the first site with the same coords.
func firstOccurrence(sites []model2d.Coord) []int {
	seen := map[model2d.Coord]int{}
	first := make([]int, len(sites))
	for i, s := range sites {
		j, ok := seen[s]
		if !ok {
			seen[s] = i
			j = i
		}
		first[i] = j
	}
	return first
}

// byDistance returns the indexes of the candidate sites (all sites if nil)
// except i, nearest to site i first.
// Equal distances are ordered by index so the result is deterministic.
func byDistance(sites []model2d.Coord, i int, candidates []int) []int {
	if candidates == nil {
		candidates = make([]int, len(sites))
		for j := range sites {
			candidates[j] = j
		}
	}
	order := make([]int, 0, len(candidates))
	dist := make([]float64, len(sites))
	for _, j := range candidates {
		if j == i {
			continue
		}
		order = append(order, j)
		dist[j] = sites[i].Dist(sites[j])
	}
	sort.Slice(order, func(a, b int) bool {
		da, db := dist[order[a]], dist[order[b]]
		if da != db {
			return da < db
		}
		return order[a] < order[b]
	})
	return order
}

// ring is a convex polygon under construction.
// across[k] labels the edge from points[k] to points[k+1].
type ring struct {
	points []model2d.Coord
	across []int
}

// rectRing returns the bounding rectangle as a ring, all edges on the Border.
func rectRing(b r2.Rect) *ring {
	lo, hi := b.Lo(), b.Hi()
	return &ring{
		points: []model2d.Coord{
			model2d.XY(lo.X, lo.Y),
			model2d.XY(hi.X, lo.Y),
			model2d.XY(hi.X, hi.Y),
			model2d.XY(lo.X, hi.Y),
		},
		across: []int{Border, Border, Border, Border},
	}
}

func (r *ring) empty() bool {
	return len(r.points) == 0
}

// add appends a vertex whose outgoing edge borders site `across`.
// A vertex landing on the previous one replaces its label instead, since the
// edge between them has no length.
func (r *ring) add(c model2d.Coord, across int) {
	if n := len(r.points); n > 0 && r.points[n-1] == c {
		r.across[n-1] = across
		return
	}
	r.points = append(r.points, c)
	r.across = append(r.across, across)
}

// close drops a final vertex equal to the first & empties rings that have
// collapsed below a triangle.
func (r *ring) close() *ring {
	if n := len(r.points); n > 1 && r.points[n-1] == r.points[0] {
		r.points = r.points[:n-1]
		r.across = r.across[:n-1]
	}
	if len(r.points) < 3 {
		r.points = nil
		r.across = nil
	}
	return r
}

// clip returns the part of the ring inside constraint c. New edges lying
// along the constraint are labelled with site `label`.
func (r *ring) clip(c *model2d.LinearConstraint, label int) *ring {
	res := &ring{}
	n := len(r.points)
	for k := 0; k < n; k++ {
		a, b := r.points[k], r.points[(k+1)%n]
		da := c.Normal.Dot(a) - c.Max
		db := c.Normal.Dot(b) - c.Max
		aIn, bIn := da <= clipEpsilon, db <= clipEpsilon

		switch {
		case aIn && bIn:
			res.add(a, r.across[k])
		case aIn && !bIn:
			// leaving: from the exit point we run along the constraint
			res.add(a, r.across[k])
			res.add(intersect(a, b, da, db), label)
		case !aIn && bIn:
			// entering: the clipped edge resumes at the entry point
			res.add(intersect(a, b, da, db), r.across[k])
		}
	}
	return res.close()
}

// intersect returns where a->b crosses the line, given signed distances da & db.
func intersect(a, b model2d.Coord, da, db float64) model2d.Coord {
	t := da / (da - db)
	return a.Add(b.Sub(a).Scale(t))
}

// maxDist returns the distance from c to the furthest vertex
func (r *ring) maxDist(c model2d.Coord) float64 {
	max := 0.0
	for _, p := range r.points {
		if d := p.Dist(c); d > max {
			max = d
		}
	}
	return max
}

// Repair merges nearly identical vertices across all cells so that edges shared
// by two cells have bit-identical endpoints, then drops edges that collapsed.
func (d *Diagram) Repair(epsilon float64) {
	coordSet := map[model2d.Coord]bool{}
	coordSlice := []model2d.Coord{}
	for _, cell := range d.Cells {
		for _, p := range cell.Polygon {
			if !coordSet[p] {
				coordSet[p] = true
				coordSlice = append(coordSlice, p)
			}
		}
	}
	if len(coordSlice) == 0 {
		return
	}
	tree := model2d.NewCoordTree(coordSlice)

	mapping := map[model2d.Coord]model2d.Coord{}
	for _, c := range coordSlice {
		if !coordSet[c] {
			continue
		}
		mapping[c] = c
		for _, n := range neighborsInDistance(tree, c, epsilon) {
			if coordSet[n] {
				coordSet[n] = false
				mapping[n] = c
			}
		}
	}

	for _, cell := range d.Cells {
		if len(cell.Polygon) == 0 {
			continue
		}
		r := &ring{}
		for k, p := range cell.Polygon {
			r.add(mapping[p], cell.across[k])
		}
		r.close()
		cell.Polygon, cell.across = r.points, r.across
	}
}

// neighborsInDistance returns all coords in the tree within epsilon of c
// (c included, if present).
func neighborsInDistance(tree *model2d.CoordTree, c model2d.Coord, epsilon float64) []model2d.Coord {
	for k := 2; true; k++ {
		neighbors := tree.KNN(k, c)
		if len(neighbors) < k {
			return neighbors
		}
		if neighbors[len(neighbors)-1].Dist(c) > epsilon {
			return neighbors[:len(neighbors)-1]
		}
	}
	panic("unreachable")
}
