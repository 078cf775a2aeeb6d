package voronoiplay

import (
	"image/color"
)

// Renderer draws a diagram. The window / GPU side of the demo lives outside
// this module; anything satisfying Renderer can be driven by a State.
type Renderer interface {
	// Render draws d; colours[i] is the fill for the cell of site i.
	// Filled or wireframe drawing is decided by d.Mode.
	Render(d *Diagram, colours []color.Color) error
}
