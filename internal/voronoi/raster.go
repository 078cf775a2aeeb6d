package voronoi

import (
	"image"
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/golang/geo/r2"
	"github.com/unixpickle/model3d/model2d"
)

// Raster is the brute force decomposition: every pixel is labelled with the
// site nearest to its centre. Boundary pixels are those whose right or lower
// neighbour belongs to another site.
type Raster struct {
	Rect image.Rectangle

	owner    []int
	boundary bitmap.Bitmap
}

// PixelBounds returns the pixel grid covering b.
func PixelBounds(b r2.Rect) image.Rectangle {
	lo, hi := b.Lo(), b.Hi()
	return image.Rect(
		int(math.Floor(lo.X)), int(math.Floor(lo.Y)),
		int(math.Ceil(hi.X)), int(math.Ceil(hi.Y)),
	)
}

// Rasterize labels every pixel of rect with its nearest site (lowest index on ties).
// With no sites every pixel is owned by Border.
func Rasterize(sites []model2d.Coord, rect image.Rectangle) *Raster {
	w, h := rect.Dx(), rect.Dy()
	r := &Raster{Rect: rect, owner: make([]int, w*h), boundary: bitmap.New(w * h)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := model2d.XY(float64(rect.Min.X+x)+0.5, float64(rect.Min.Y+y)+0.5)
			r.owner[y*w+x] = nearest(sites, c)
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if x+1 < w && r.owner[i+1] != r.owner[i] {
				r.boundary.Set(i, true)
			}
			if y+1 < h && r.owner[i+w] != r.owner[i] {
				r.boundary.Set(i, true)
			}
		}
	}

	return r
}

// index returns the offset of (x, y) into our slices, -1 if out of bounds
func (r *Raster) index(x, y int) int {
	if !image.Pt(x, y).In(r.Rect) {
		return -1
	}
	return (y-r.Rect.Min.Y)*r.Rect.Dx() + (x - r.Rect.Min.X)
}

// Owner returns the site owning pixel (x, y), Border if outside the raster.
func (r *Raster) Owner(x, y int) int {
	i := r.index(x, y)
	if i < 0 {
		return Border
	}
	return r.owner[i]
}

// IsBoundary returns if pixel (x, y) sits on the edge of its cell.
func (r *Raster) IsBoundary(x, y int) bool {
	i := r.index(x, y)
	if i < 0 {
		return false
	}
	return r.boundary.Get(i)
}

// PixelCount returns how many pixels each site owns, indexed by site.
func (r *Raster) PixelCount(sites int) []int {
	counts := make([]int, sites)
	for _, o := range r.owner {
		if o >= 0 && o < sites {
			counts[o]++
		}
	}
	return counts
}
