package voronoi

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode picks what a renderer should draw from a diagram.
type Mode int

const (
	// Filled draws every cell as a solid polygon
	Filled Mode = iota

	// Wireframe draws only the edges between cells (and the border)
	Wireframe
)

// String returns the name of the mode
func (m Mode) String() string {
	if m == Wireframe {
		return "wireframe"
	}
	return "filled"
}

// Toggle flips between Filled and Wireframe
func (m Mode) Toggle() Mode {
	if m == Wireframe {
		return Filled
	}
	return Wireframe
}

// Engine is the method used to compute cells.
type Engine int

const (
	// EnginePolytope clips the bounding rectangle against bisectors, nearest site first
	EnginePolytope Engine = iota

	// EngineFortune runs Fortune's sweep line
	EngineFortune

	// EngineRaster computes polytope cells plus a per-pixel ownership map
	EngineRaster
)

var engineNames = map[Engine]string{
	EnginePolytope: "polytope",
	EngineFortune:  "fortune",
	EngineRaster:   "raster",
}

// String returns the name of the engine
func (e Engine) String() string {
	name, ok := engineNames[e]
	if !ok {
		return "unknown"
	}
	return name
}

// ParseEngine returns the Engine with the given name (case insensitive).
// The empty string is EnginePolytope.
func ParseEngine(name string) (Engine, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EnginePolytope, nil
	}
	for e, n := range engineNames {
		if n == name {
			return e, nil
		}
	}
	return EnginePolytope, errors.Errorf("unknown engine %q", name)
}

// defaultEpsilon is relative to the larger side of the bounding rectangle
const defaultEpsilon = 1e-9

// Option configures Build
type Option func(*options)

type options struct {
	mode    Mode
	engine  Engine
	epsilon float64
}

func newOptions(opts []Option) *options {
	o := &options{mode: Filled, engine: EnginePolytope, epsilon: defaultEpsilon}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithMode sets whether wireframe edges are computed
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithEngine sets the method used to compute cells
func WithEngine(e Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithEpsilon sets the distance, relative to the larger side of the bounds,
// under which cell vertices are merged.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.epsilon = eps
		}
	}
}
