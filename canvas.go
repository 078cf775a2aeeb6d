package voronoiplay

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

const (
	lineWidth  = 2.0
	siteRadius = 4.0
)

// ColourScheme defines how the parts of a diagram should be coloured.
type ColourScheme struct {
	Background color.Color
	Lines      color.Color
	Sites      color.Color

	// Cells are picked from at random for each new site
	Cells []color.Color
}

// DefaultScheme returns a reasonable default ColourScheme; white background,
// blue outlines & black sites.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.White,
		Lines:      colornames.Blue,
		Sites:      colornames.Black,
		Cells: []color.Color{
			colornames.Lightgreen,
			colornames.Gold,
			colornames.Indigo,
			colornames.Lightgray,
			colornames.Royalblue,
			colornames.Steelblue,
			colornames.Slateblue,
			colornames.Crimson,
			colornames.Fuchsia,
			colornames.Hotpink,
			colornames.Yellow,
			colornames.Firebrick,
			colornames.Brown,
			colornames.Maroon,
			colornames.Lightblue,
			colornames.Mediumturquoise,
			colornames.Wheat,
			colornames.Orange,
		},
	}
}

// randomColour picks a cell colour
func (s *ColourScheme) randomColour(rng *rand.Rand) color.Color {
	if len(s.Cells) == 0 {
		return s.Background
	}
	return s.Cells[rng.Intn(len(s.Cells))]
}

// Canvas is a Renderer drawing into an in-memory image.
type Canvas struct {
	ctx    *gg.Context
	scheme *ColourScheme
	origin image.Point
}

// NewCanvas returns a canvas covering rect
func NewCanvas(rect image.Rectangle, scheme *ColourScheme) *Canvas {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	return &Canvas{
		ctx:    gg.NewContext(rect.Dx(), rect.Dy()),
		scheme: scheme,
		origin: rect.Min,
	}
}

// Render implements Renderer
func (c *Canvas) Render(d *Diagram, colours []color.Color) error {
	c.ctx.Identity()
	c.ctx.SetColor(c.scheme.Background)
	c.ctx.Clear()
	c.ctx.Translate(-float64(c.origin.X), -float64(c.origin.Y))

	colour := func(i int) color.Color {
		if i >= 0 && i < len(colours) && colours[i] != nil {
			return colours[i]
		}
		return c.scheme.Background
	}

	if d.Raster != nil {
		c.drawRaster(d, colour)
	} else if d.Mode == Filled {
		for _, cell := range d.Cells {
			if cell.Empty() {
				continue
			}
			c.ctx.NewSubPath()
			c.ctx.MoveTo(cell.Polygon[0].X, cell.Polygon[0].Y)
			for _, p := range cell.Polygon[1:] {
				c.ctx.LineTo(p.X, p.Y)
			}
			c.ctx.ClosePath()
			c.ctx.SetColor(colour(cell.Site))
			c.ctx.Fill()
		}
	} else {
		c.ctx.SetColor(c.scheme.Lines)
		c.ctx.SetLineWidth(lineWidth)
		for _, seg := range d.Mesh().SegmentSlice() {
			c.ctx.DrawLine(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
		}
		c.ctx.Stroke()
	}

	c.ctx.SetColor(c.scheme.Sites)
	for _, cell := range d.Cells {
		c.ctx.DrawCircle(cell.Center.X, cell.Center.Y, siteRadius)
	}
	c.ctx.Fill()
	return nil
}

// drawRaster paints pixel by pixel from the diagram's ownership map.
// In wireframe mode only the boundary pixels are painted.
func (c *Canvas) drawRaster(d *Diagram, colour func(int) color.Color) {
	r := d.Raster
	im := image.NewRGBA(r.Rect)
	for y := r.Rect.Min.Y; y < r.Rect.Max.Y; y++ {
		for x := r.Rect.Min.X; x < r.Rect.Max.X; x++ {
			switch {
			case d.Mode == Wireframe && r.IsBoundary(x, y):
				im.Set(x, y, c.scheme.Lines)
			case d.Mode == Wireframe:
				im.Set(x, y, c.scheme.Background)
			default:
				im.Set(x, y, colour(r.Owner(x, y)))
			}
		}
	}
	c.ctx.DrawImage(im, r.Rect.Min.X, r.Rect.Min.Y)
}

// Image returns what has been drawn so far
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes what has been drawn so far to disk
func (c *Canvas) SavePNG(fpath string) error {
	return c.ctx.SavePNG(fpath)
}
