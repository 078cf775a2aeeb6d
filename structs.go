package voronoiplay

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/voronoiplay/internal/voronoi"
)

// Diagram types are defined by the geometry package; they're aliased here so
// renderers & callers only need to import this package.
type (
	Diagram = voronoi.Diagram
	Cell    = voronoi.Cell
	Edge    = voronoi.Edge
	Stats   = voronoi.Stats
	Mode    = voronoi.Mode
	Engine  = voronoi.Engine
	Option  = voronoi.Option
)

var (
	// WithMode sets whether a diagram carries wireframe edges
	WithMode = voronoi.WithMode

	// WithEngine sets the method used to compute cells
	WithEngine = voronoi.WithEngine

	// ParseEngine returns the Engine with the given name
	ParseEngine = voronoi.ParseEngine
)

const (
	Filled    = voronoi.Filled
	Wireframe = voronoi.Wireframe

	EnginePolytope = voronoi.EnginePolytope
	EngineFortune  = voronoi.EngineFortune
	EngineRaster   = voronoi.EngineRaster

	// Border is the Right side of edges along the bounding rectangle
	Border = voronoi.Border
)

// Point is a site in screen coordinates.
// It reads & writes as a JSON pair [x, y]; {"x": .., "y": ..} is also
// accepted when reading.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Coord returns the point as a model2d coordinate
func (p Point) Coord() model2d.Coord {
	return model2d.XY(p.X, p.Y)
}

// Finite returns if both coordinates are real, finite numbers
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// MarshalJSON writes the point as [x, y]
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON reads either [x, y] or {"x": x, "y": y}
func (p *Point) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			X *float64 `json:"x"`
			Y *float64 `json:"y"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.X == nil || obj.Y == nil {
			return errors.Errorf("point %s requires both x and y", data)
		}
		p.X, p.Y = *obj.X, *obj.Y
		return nil
	}

	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.Errorf("point %s should have exactly 2 coordinates, got %d", data, len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// coords converts points for the geometry package
func coords(pts []Point) []model2d.Coord {
	cs := make([]model2d.Coord, len(pts))
	for i, p := range pts {
		cs[i] = p.Coord()
	}
	return cs
}
