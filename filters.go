package voronoiplay

import (
	"github.com/golang/geo/r2"
)

// CandidateFilter accepts or rejects a candidate point based purely on the
// point itself.
// These filters are run before SiteFilter(s) which naturally require
// us to iterate each site.
type CandidateFilter func(candidate Point) bool

// SiteFilter is a filter for a candidate point that is run against every
// current site in the set.
// Ie. we must 'accept' the candidate when compared with every existing site.
type SiteFilter func(candidate, site Point) bool

// MinDistance ensures that a candidate is further than `dist` from every
// other site on both axes.
func MinDistance(dist float64) SiteFilter {
	return func(candidate, site Point) bool {
		dx, dy := candidate.X-site.X, candidate.Y-site.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		return dx >= dist || dy >= dist
	}
}

// WithinBounds rejects candidates outside of b.
func WithinBounds(b r2.Rect) CandidateFilter {
	return func(candidate Point) bool {
		return b.ContainsPoint(r2.Point{X: candidate.X, Y: candidate.Y})
	}
}

// Finite rejects NaN & infinite coordinates.
func Finite() CandidateFilter {
	return func(candidate Point) bool {
		return candidate.Finite()
	}
}
