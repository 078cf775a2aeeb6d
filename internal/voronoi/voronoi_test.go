package voronoi

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model2d"
)

func randomSites(seed int64, n int, w, h float64) []model2d.Coord {
	rng := rand.New(rand.NewSource(seed))
	sites := make([]model2d.Coord, n)
	for i := range sites {
		sites[i] = model2d.XY(rng.Float64()*w, rng.Float64()*h)
	}
	return sites
}

func TestBuildEmpty(t *testing.T) {
	d := Build(nil, Rect(0, 0, 100, 100), WithMode(Wireframe))

	assert.Empty(t, d.Cells)
	assert.Empty(t, d.Edges)
	assert.Equal(t, Border, d.SiteFor(10, 10))
}

func TestBuildInvalidBounds(t *testing.T) {
	sites := []model2d.Coord{model2d.XY(1, 1)}

	for name, b := range map[string]struct{ x0, y0, x1, y1 float64 }{
		"zero width":  {0, 0, 0, 100},
		"zero height": {0, 0, 100, 0},
		"point":       {5, 5, 5, 5},
	} {
		t.Run(name, func(t *testing.T) {
			rect := Rect(b.x0, b.y0, b.x1, b.y1)
			assert.False(t, ValidBounds(rect))
			assert.Empty(t, Build(sites, rect).Cells)
		})
	}
	assert.True(t, ValidBounds(Rect(0, 0, 1, 1)))
}

func TestBuildSingleSite(t *testing.T) {
	d := Build([]model2d.Coord{model2d.XY(10, 10)}, Rect(0, 0, 100, 100), WithMode(Wireframe))

	require.Len(t, d.Cells, 1)
	assert.InDelta(t, 10000, d.Cells[0].Area(), 1e-9)
	assert.Len(t, d.Cells[0].Polygon, 4)
	assert.Len(t, d.Edges, 4)
	for _, e := range d.Edges {
		assert.Equal(t, 0, e.Left)
		assert.Equal(t, Border, e.Right)
	}
}

func TestBuildTwoSitesSplitsDownTheMiddle(t *testing.T) {
	sites := []model2d.Coord{model2d.XY(0, 0), model2d.XY(100, 0)}
	d := Build(sites, Rect(0, 0, 100, 100), WithMode(Wireframe))

	require.Len(t, d.Cells, 2)
	assert.InDelta(t, 5000, d.Cells[0].Area(), 1e-6)
	assert.InDelta(t, 5000, d.Cells[1].Area(), 1e-6)

	left := d.Cells[0].Bounds()
	assert.InDelta(t, 0, left.X.Lo, 1e-9)
	assert.InDelta(t, 50, left.X.Hi, 1e-9)
	right := d.Cells[1].Bounds()
	assert.InDelta(t, 50, right.X.Lo, 1e-9)
	assert.InDelta(t, 100, right.X.Hi, 1e-9)

	shared := []*Edge{}
	for _, e := range d.Edges {
		if e.Right != Border {
			shared = append(shared, e)
		}
	}
	require.Len(t, shared, 1)
	assert.Equal(t, 0, shared[0].Left)
	assert.Equal(t, 1, shared[0].Right)
	for _, p := range shared[0].Segment {
		assert.InDelta(t, 50, p.X, 1e-9)
	}
	assert.Equal(t, []int{1}, d.Neighbours(0))
	assert.Equal(t, []int{0}, d.Neighbours(1))
}

func TestBuildDuplicates(t *testing.T) {
	sites := []model2d.Coord{model2d.XY(25, 50), model2d.XY(75, 50), model2d.XY(25, 50)}
	d := Build(sites, Rect(0, 0, 100, 100), WithMode(Wireframe))

	require.Len(t, d.Cells, 3)
	assert.InDelta(t, 5000, d.Cells[0].Area(), 1e-6)
	assert.InDelta(t, 5000, d.Cells[1].Area(), 1e-6)
	assert.True(t, d.Cells[2].Empty())
	assert.Equal(t, 0, d.SiteFor(25, 50))
	for _, e := range d.Edges {
		assert.NotEqual(t, 2, e.Left)
		assert.NotEqual(t, 2, e.Right)
	}
}

func TestBuildTieGoesToLowestIndex(t *testing.T) {
	sites := []model2d.Coord{model2d.XY(0, 0), model2d.XY(100, 0)}
	d := Build(sites, Rect(0, 0, 100, 100))

	assert.Equal(t, 0, d.SiteFor(50, 30))

	reversed := Build([]model2d.Coord{sites[1], sites[0]}, Rect(0, 0, 100, 100))
	assert.Equal(t, 0, reversed.SiteFor(50, 30))
}

func TestBuildProperties(t *testing.T) {
	bounds := Rect(0, 0, 640, 480)

	for _, n := range []int{2, 3, 10, 50, 200} {
		sites := randomSites(int64(n), n, 640, 480)
		d := Build(sites, bounds, WithMode(Wireframe))
		require.Len(t, d.Cells, n)

		// cells tile the rectangle
		assert.InDelta(t, 640*480, d.Area(), 1e-6*640*480, "n=%d", n)

		// every vertex & edge lies within the rectangle
		for _, c := range d.Cells {
			for _, p := range c.Polygon {
				assert.True(t, p.X >= -1e-9 && p.X <= 640+1e-9 && p.Y >= -1e-9 && p.Y <= 480+1e-9)
			}
			assert.True(t, c.Contains(c.Center), "site %d outside its own cell", c.Site)
		}

		// samples inside a cell are no further from its site than from any other
		rng := rand.New(rand.NewSource(99))
		for i := 0; i < 500; i++ {
			q := model2d.XY(rng.Float64()*640, rng.Float64()*480)
			owner := d.SiteFor(q.X, q.Y)
			require.True(t, d.Cells[owner].Contains(q), "n=%d sample %v not in cell %d", n, q, owner)
			for _, c := range d.Cells {
				if c.Contains(q) {
					assert.LessOrEqual(t, q.Dist(c.Center), q.Dist(sites[owner])+1e-6)
				}
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	sites := randomSites(7, 100, 300, 200)
	a := Build(sites, Rect(0, 0, 300, 200), WithMode(Wireframe))
	b := Build(sites, Rect(0, 0, 300, 200), WithMode(Wireframe))
	assert.Equal(t, a, b)
}

func TestWireframeEdgesAreShared(t *testing.T) {
	sites := randomSites(3, 30, 100, 100)
	d := Build(sites, Rect(0, 0, 100, 100), WithMode(Wireframe))

	pairs := map[[2]int]bool{}
	for _, e := range d.Edges {
		if e.Right == Border {
			// border edges run along the rectangle
			onSide := func(p model2d.Coord) bool {
				return math.Abs(p.X) < 1e-9 || math.Abs(p.X-100) < 1e-9 || math.Abs(p.Y) < 1e-9 || math.Abs(p.Y-100) < 1e-9
			}
			assert.True(t, onSide(e.Segment[0]) && onSide(e.Segment[1]))
			continue
		}
		assert.Less(t, e.Left, e.Right)
		key := [2]int{e.Left, e.Right}
		assert.False(t, pairs[key], "edge %v emitted twice", key)
		pairs[key] = true

		// midpoint of a shared edge is equidistant from both sites
		mid := e.Segment[0].Mid(e.Segment[1])
		assert.InDelta(t, mid.Dist(sites[e.Left]), mid.Dist(sites[e.Right]), 1e-6)
	}

	assert.Nil(t, Build(sites, Rect(0, 0, 100, 100)).Edges)
	assert.NotEmpty(t, d.Mesh().SegmentSlice())
}

func TestTriangles(t *testing.T) {
	sites := randomSites(11, 20, 100, 100)
	d := Build(sites, Rect(0, 0, 100, 100))

	total := 0.0
	for _, tri := range d.Triangles() {
		total += math.Abs(signedArea(tri[:]))
	}
	assert.InDelta(t, 10000, total, 1e-6)
}

func TestBuildSitesOutsideBounds(t *testing.T) {
	sites := []model2d.Coord{
		model2d.XY(-20, 50),
		model2d.XY(60, 50),
		model2d.XY(130, 50),
		model2d.XY(500, 50),
	}

	for _, engine := range []Engine{EnginePolytope, EngineFortune} {
		t.Run(engine.String(), func(t *testing.T) {
			d := Build(sites, Rect(0, 0, 100, 100), WithEngine(engine))

			require.Len(t, d.Cells, 4)
			assert.InDelta(t, 2000, d.Cells[0].Area(), 1e-6)
			assert.InDelta(t, 7500, d.Cells[1].Area(), 1e-6)
			assert.InDelta(t, 500, d.Cells[2].Area(), 1e-6)
			assert.True(t, d.Cells[3].Empty(), "site beyond every bisector")
			assert.InDelta(t, 10000, d.Area(), 1e-6)

			assert.Equal(t, 0, d.SiteFor(10, 10))
			assert.Equal(t, 1, d.SiteFor(50, 90))
			assert.Equal(t, 2, d.SiteFor(99, 1))
			assert.True(t, d.Cells[0].Contains(model2d.XY(10, 10)))
			assert.False(t, d.Cells[0].Contains(model2d.XY(50, 10)))
		})
	}
}

func TestBuildFarFromOrigin(t *testing.T) {
	const o = 1e12
	sites := []model2d.Coord{model2d.XY(o-5, o-5), model2d.XY(o+5, o-5), model2d.XY(o, o+5)}
	d := Build(sites, Rect(o-10, o-10, o+10, o+10))

	require.Len(t, d.Cells, 3)
	assert.InDelta(t, 400, d.Area(), 0.1)
	assert.Equal(t, 0, d.SiteFor(o-9, o-9))
	assert.Equal(t, 2, d.SiteFor(o, o+9))
}

func TestSignedAreaFarFromOrigin(t *testing.T) {
	const o = 1e12
	square := []model2d.Coord{
		model2d.XY(o-10, o-10),
		model2d.XY(o+10, o-10),
		model2d.XY(o+10, o+10),
		model2d.XY(o-10, o+10),
	}
	assert.InDelta(t, 400, signedArea(square), 1e-9)

	reversed := []model2d.Coord{square[3], square[2], square[1], square[0]}
	assert.InDelta(t, -400, signedArea(reversed), 1e-9)
}

func TestStats(t *testing.T) {
	sites := []model2d.Coord{model2d.XY(0, 0), model2d.XY(100, 0), model2d.XY(0, 0)}
	s := Build(sites, Rect(0, 0, 100, 100), WithMode(Wireframe)).Stats()

	assert.Equal(t, 3, s.Cells)
	assert.Equal(t, 1, s.EmptyCells)
	assert.Equal(t, 7, s.Edges)
	assert.Equal(t, 6, s.BorderEdges)
	assert.InDelta(t, 10000, s.Area, 1e-6)
}

func TestModeToggle(t *testing.T) {
	assert.Equal(t, Wireframe, Filled.Toggle())
	assert.Equal(t, Filled, Wireframe.Toggle())
	assert.Equal(t, "wireframe", Wireframe.String())
}

func TestParseEngine(t *testing.T) {
	for in, want := range map[string]Engine{"": EnginePolytope, "Fortune": EngineFortune, " raster ": EngineRaster} {
		got, err := ParseEngine(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseEngine("delaunay")
	assert.Error(t, err)
}
