package voronoi

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/unixpickle/model3d/model2d"
)

// Border stands in for a site index on edges that run along the bounding
// rectangle rather than between two cells.
const Border = -1

// Cell is the region of the bounding rectangle closest to one site.
type Cell struct {
	// Site is the insertion index of the owning site
	Site int

	// Center is the site itself
	Center model2d.Coord

	// Polygon is a closed convex ring (first vertex not repeated) with
	// positive signed area. Empty for sites that own no area (ie. a later
	// duplicate of an earlier site).
	Polygon []model2d.Coord

	// across[k] is the site on the other side of Polygon[k] -> Polygon[k+1]
	across []int
}

// Edge is one boundary segment of the wireframe.
// Left is always the lower site index. Right is Border for edges along the
// bounding rectangle.
type Edge struct {
	Segment model2d.Segment
	Left    int
	Right   int
}

// Diagram is the partition of Bounds into Cells, one per site in insertion order.
type Diagram struct {
	Bounds r2.Rect
	Mode   Mode
	Engine Engine

	Cells []*Cell

	// Edges is only populated in Wireframe mode
	Edges []*Edge

	// Raster is only populated by EngineRaster
	Raster *Raster
}

// Build computes the Voronoi diagram of sites clipped to bounds.
//
// Build is a pure function of its arguments: calling it twice with the same
// input yields deep-equal diagrams. Points equidistant from several sites
// belong to the site with the lowest index.
// An invalid (empty, zero or negative sized) rectangle yields an empty diagram.
func Build(sites []model2d.Coord, bounds r2.Rect, opts ...Option) *Diagram {
	o := newOptions(opts)
	d := &Diagram{Bounds: bounds, Mode: o.mode, Engine: o.engine}
	if !ValidBounds(bounds) || len(sites) == 0 {
		return d
	}

	switch o.engine {
	case EngineFortune:
		cells, err := fortuneCells(sites, bounds)
		if err != nil || !coversBounds(cells, bounds) {
			// the sweep line struggles with some degenerate layouts,
			// the polytope method doesn't
			d.Engine = EnginePolytope
			cells = polytopeCells(sites, bounds)
		}
		d.Cells = cells
	case EngineRaster:
		d.Cells = polytopeCells(sites, bounds)
		d.Raster = Rasterize(sites, PixelBounds(bounds))
	default:
		d.Cells = polytopeCells(sites, bounds)
	}

	d.Repair(o.epsilon * math.Max(bounds.X.Length(), bounds.Y.Length()))

	if o.mode == Wireframe {
		d.Edges = d.wireframe()
	}
	return d
}

// ValidBounds returns if b has finite, strictly positive width and height.
func ValidBounds(b r2.Rect) bool {
	for _, i := range []r1.Interval{b.X, b.Y} {
		if math.IsNaN(i.Lo) || math.IsNaN(i.Hi) || math.IsInf(i.Lo, 0) || math.IsInf(i.Hi, 0) {
			return false
		}
		if i.Length() <= 0 {
			return false
		}
	}
	return true
}

// Rect returns the rectangle spanning (x0, y0) to (x1, y1).
func Rect(x0, y0, x1, y1 float64) r2.Rect {
	return r2.RectFromPoints(r2.Point{X: x0, Y: y0}, r2.Point{X: x1, Y: y1})
}

// Area returns the summed area of all cells.
func (d *Diagram) Area() float64 {
	total := 0.0
	for _, c := range d.Cells {
		total += c.Area()
	}
	return total
}

// Cell returns the cell of site i, or nil if i is out of range.
func (d *Diagram) Cell(i int) *Cell {
	if i < 0 || i >= len(d.Cells) {
		return nil
	}
	return d.Cells[i]
}

// SiteFor returns the index of the nearest site to (x, y), lowest index on
// ties. Border is returned for a diagram with no cells.
func (d *Diagram) SiteFor(x, y float64) int {
	sites := make([]model2d.Coord, len(d.Cells))
	for i, c := range d.Cells {
		sites[i] = c.Center
	}
	return nearest(sites, model2d.XY(x, y))
}

// Mesh returns the wireframe as a 2D mesh. Falls back to the cell outlines
// if the diagram was built in Filled mode.
func (d *Diagram) Mesh() *model2d.Mesh {
	segs := []*model2d.Segment{}
	if d.Edges != nil {
		for _, e := range d.Edges {
			seg := e.Segment
			segs = append(segs, &seg)
		}
	} else {
		for _, c := range d.Cells {
			segs = append(segs, c.Segments()...)
		}
	}
	return model2d.NewMeshSegments(segs)
}

// Triangles fans every (convex) cell into triangles, in cell order.
// Useful to renderers that can only fill triangles.
func (d *Diagram) Triangles() [][3]model2d.Coord {
	tris := [][3]model2d.Coord{}
	for _, c := range d.Cells {
		for k := 1; k+1 < len(c.Polygon); k++ {
			tris = append(tris, [3]model2d.Coord{c.Polygon[0], c.Polygon[k], c.Polygon[k+1]})
		}
	}
	return tris
}

// nearest returns the index of the closest site to c, lowest index on ties.
func nearest(sites []model2d.Coord, c model2d.Coord) int {
	pick := Border
	best := math.Inf(1)
	for i, s := range sites {
		// squared distance is enough for comparison & keeps ties exact
		dx, dy := s.X-c.X, s.Y-c.Y
		dist := dx*dx + dy*dy
		if dist < best {
			best = dist
			pick = i
		}
	}
	return pick
}

// coversBounds sanity checks that cells tile the whole rectangle.
func coversBounds(cells []*Cell, bounds r2.Rect) bool {
	if cells == nil {
		return false
	}
	want := bounds.X.Length() * bounds.Y.Length()
	got := 0.0
	for _, c := range cells {
		got += c.Area()
	}
	return math.Abs(got-want) <= want*1e-6
}
