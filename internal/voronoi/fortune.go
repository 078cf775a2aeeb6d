package voronoi

import (
	"image"
	"io"
	"log"
	"math"
	"sync"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/quasoft/dcel"
	fortune "github.com/quasoft/voronoi"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// fortuneGrid is the number of integer steps the larger side of the bounds is
// split into; the sweep line library works on integer coordinates.
const fortuneGrid = 1 << 16

// the sweep line library logs every event with the standard logger
var quietLog sync.Mutex

// fortuneCells computes cells with Fortune's sweep line.
//
// The sweep gives us which sites share an edge. Each cell is then the bounding
// rectangle clipped against just those neighbours, so a cell is never smaller
// than the real one. Build checks the cells tile the bounds & falls back to the
// polytope method when the sweep missed a neighbour.
//
// The library panics on some degenerate input rather than returning an error,
// so we recover & report it.
func fortuneCells(sites []model2d.Coord, bounds r2.Rect) (cells []*Cell, err error) {
	defer func() {
		if r := recover(); r != nil {
			cells = nil
			err = errors.Errorf("fortune: %v", r)
		}
	}()

	first := firstOccurrence(sites)
	input, err := fortuneSites(sites, first, bounds)
	if err != nil {
		return nil, err
	}

	neighbours, err := sweep(input, len(sites))
	if err != nil {
		return nil, err
	}

	cells = make([]*Cell, len(sites))
	essentials.ConcurrentMap(0, len(sites), func(i int) {
		if first[i] != i {
			cells[i] = &Cell{Site: i, Center: sites[i]}
			return
		}
		cells[i] = polytopeCell(sites, i, byDistance(sites, i, neighbours[i]), bounds)
	})
	return cells, nil
}

// fortuneSites snaps the (unique) sites onto the integer grid. Sites landing on
// the same grid point are an error since the sweep would merge them.
func fortuneSites(sites []model2d.Coord, first []int, bounds r2.Rect) (fortune.SiteSlice, error) {
	lo := bounds.Lo()
	scale := fortuneGrid / math.Max(bounds.X.Length(), bounds.Y.Length())

	seen := map[[2]int]int{}
	input := fortune.SiteSlice{}
	for i, s := range sites {
		if first[i] != i {
			continue
		}
		x := int(math.Round((s.X - lo.X) * scale))
		y := int(math.Round((s.Y - lo.Y) * scale))
		if j, ok := seen[[2]int{x, y}]; ok {
			return nil, errors.Errorf("fortune: sites %d and %d are too close", j, i)
		}
		seen[[2]int{x, y}] = i
		input = append(input, fortune.Site{X: x, Y: y, ID: int64(i)})
	}
	return input, nil
}

// sweep runs the sweep line & returns the neighbours of each site, by index.
func sweep(input fortune.SiteSlice, n int) ([][]int, error) {
	quietLog.Lock()
	prev := log.Writer()
	log.SetOutput(io.Discard)
	defer func() {
		log.SetOutput(prev)
		quietLog.Unlock()
	}()

	v := fortune.New(input, image.Rect(0, 0, fortuneGrid, fortuneGrid))
	v.Generate()

	neighbours := make([][]int, n)
	seen := map[[2]int]bool{}
	for _, he := range v.DCEL.HalfEdges {
		a, b, ok := faces(he)
		if !ok || a == b || seen[[2]int{a, b}] {
			continue
		}
		if a < 0 || b < 0 || a >= n || b >= n {
			return nil, errors.Errorf("fortune: edge between unknown sites %d and %d", a, b)
		}
		seen[[2]int{a, b}] = true
		seen[[2]int{b, a}] = true
		neighbours[a] = append(neighbours[a], b)
		neighbours[b] = append(neighbours[b], a)
	}

	// a lone site has no neighbours, but nil would mean "every site"
	for i := range neighbours {
		if neighbours[i] == nil {
			neighbours[i] = []int{}
		}
	}
	return neighbours, nil
}

// faces returns the site on each side of a half edge
func faces(he *dcel.HalfEdge) (int, int, bool) {
	if he.Face == nil || he.Twin == nil || he.Twin.Face == nil {
		return 0, 0, false
	}
	return int(he.Face.ID), int(he.Twin.Face.ID), true
}
