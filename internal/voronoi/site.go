package voronoi

import (
	"sort"

	"github.com/unixpickle/model3d/model2d"
)

// Neighbours returns the sites sharing an edge with site i, in ascending order.
func (d *Diagram) Neighbours(i int) []int {
	c := d.Cell(i)
	if c == nil {
		return nil
	}

	seen := map[int]bool{}
	ls := []int{}
	for _, other := range c.across {
		if other == Border || seen[other] {
			continue
		}
		seen[other] = true
		ls = append(ls, other)
	}
	sort.Ints(ls)
	return ls
}

// wireframe collects every cell edge once. An edge between two cells is
// emitted by whichever of the two is visited first (ie. usually the lower
// index) & is oriented as that cell winds it.
func (d *Diagram) wireframe() []*Edge {
	edges := []*Edge{}
	seen := map[[2]int]bool{}

	for _, c := range d.Cells {
		n := len(c.Polygon)
		for k := 0; k < n; k++ {
			seg := model2d.Segment{c.Polygon[k], c.Polygon[(k+1)%n]}
			other := c.across[k]
			if other == Border {
				edges = append(edges, &Edge{Segment: seg, Left: c.Site, Right: Border})
				continue
			}

			left, right := c.Site, other
			if right < left {
				left, right = right, left
				seg = model2d.Segment{seg[1], seg[0]}
			}
			key := [2]int{left, right}
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, &Edge{Segment: seg, Left: left, Right: right})
		}
	}

	return edges
}
