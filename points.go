package voronoiplay

import (
	"encoding/json"
	"math/rand"
	"os"
	"time"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/voidshard/voronoiplay/internal/voronoi"
)

// PointSet holds the ordered sites of the diagram along with the rectangle
// they're drawn in. Insertion order is kept; duplicates are allowed.
type PointSet struct {
	bounds r2.Rect
	points []Point
	rng    *rand.Rand
	cfilt  []CandidateFilter
	sfilt  []SiteFilter
}

// NewPointSet returns an empty set for the given bounds
func NewPointSet(bounds r2.Rect) *PointSet {
	return &PointSet{
		bounds: bounds,
		points: []Point{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed sets our internal RNG seed
func (s *PointSet) SetSeed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Bounds returns the rectangle the set lives in
func (s *PointSet) Bounds() r2.Rect {
	return s.bounds
}

// Len returns how many points are in the set
func (s *PointSet) Len() int {
	return len(s.points)
}

// Append adds p at the end of the set. Filters are not consulted, see Accepted.
func (s *PointSet) Append(p Point) {
	s.points = append(s.points, p)
}

// Replace discards the current contents & installs points verbatim.
// If any point is not finite an *InputError is returned & the set is unchanged.
func (s *PointSet) Replace(points []Point) error {
	for i, p := range points {
		if !p.Finite() {
			return &InputError{Index: i, Err: errors.Errorf("coordinates (%v, %v) are not finite", p.X, p.Y)}
		}
	}
	s.points = append(make([]Point, 0, len(points)), points...)
	return nil
}

// Clear empties the set
func (s *PointSet) Clear() {
	s.points = []Point{}
}

// RandomFill replaces the contents with n points drawn uniformly from the bounds.
func (s *PointSet) RandomFill(n int) error {
	if n < 0 {
		return newConfigError("random_count", "must not be negative, got %d", n)
	}

	lo, size := s.bounds.Lo(), s.bounds.Size()
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Pt(lo.X+s.rng.Float64()*size.X, lo.Y+s.rng.Float64()*size.Y)
	}
	s.points = pts
	return nil
}

// Snapshot returns a copy of the points in insertion order
func (s *PointSet) Snapshot() []Point {
	return append(make([]Point, 0, len(s.points)), s.points...)
}

// SetCandidateFilters sets filters that accept / reject a proposed point without
// reference to other current point(s).
func (s *PointSet) SetCandidateFilters(f ...CandidateFilter) {
	s.cfilt = f
}

// SetSiteFilters sets filters that compare proposed points to all current points.
func (s *PointSet) SetSiteFilters(f ...SiteFilter) {
	s.sfilt = f
}

// Accepted returns if the proposed point is acceptable to our filters.
// We run CandidateFilter(s) first so we can hopefully reject candidates early.
func (s *PointSet) Accepted(p Point) bool {
	for _, fn := range s.cfilt {
		if !fn(p) {
			return false
		}
	}
	for _, site := range s.points {
		for _, fn := range s.sfilt {
			if !fn(p, site) {
				return false
			}
		}
	}
	return true
}

// Diagram computes the Voronoi diagram of the current points.
func (s *PointSet) Diagram(opts ...voronoi.Option) *Diagram {
	return voronoi.Build(coords(s.points), s.bounds, opts...)
}

// JSON returns the points as a JSON list of [x, y] pairs.
func (s *PointSet) JSON() ([]byte, error) {
	return json.Marshal(s.points)
}

// SaveJSON writes the points to the given path.
func (s *PointSet) SaveJSON(fpath string) error {
	data, err := s.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}

// ParsePoints reads a JSON list of points. Errors are *InputError.
func ParsePoints(data []byte) ([]Point, error) {
	pts := []Point{}
	if err := json.Unmarshal(data, &pts); err != nil {
		return nil, &InputError{Index: -1, Err: err}
	}
	for i, p := range pts {
		if !p.Finite() {
			return nil, &InputError{Index: i, Err: errors.Errorf("coordinates (%v, %v) are not finite", p.X, p.Y)}
		}
	}
	return pts, nil
}

// LoadPoints reads a JSON list of points from disk. Errors are *InputError.
func LoadPoints(fpath string) ([]Point, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, &InputError{Path: fpath, Index: -1, Err: err}
	}
	pts, err := ParsePoints(data)
	if err != nil {
		err.(*InputError).Path = fpath
		return nil, err
	}
	return pts, nil
}
