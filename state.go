package voronoiplay

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math/rand"
	"time"
	"unicode"

	"github.com/pkg/errors"
)

// Key is a key press the demo reacts to.
type Key rune

const (
	KeyClear     Key = 'N' // remove every site
	KeyRandom    Key = 'R' // replace sites with Config.RandomCount random ones
	KeyLinesOnly Key = 'L' // toggle filled / wireframe
	KeyRecolour  Key = 'C' // pick new cell colours
	KeySave      Key = 'S' // print the sites as JSON
)

// State is everything the control loop owns: the sites, their colours, the
// current mode & the most recently computed diagram.
// A State is not safe for concurrent use; it belongs to the loop handling input.
type State struct {
	cfg    *Config
	log    *slog.Logger
	out    io.Writer
	scheme *ColourScheme
	rng    *rand.Rand

	points  *PointSet
	colours []color.Color
	mode    Mode
	engine  Engine

	diagram *Diagram
	dirty   bool
}

// NewState validates the config & loads the initial sites (if cfg.JSONPath is set).
// Snapshots requested by KeySave are written to out.
func NewState(cfg *Config, logger *slog.Logger, out io.Writer) (*State, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &State{
		cfg:    cfg,
		log:    logger,
		out:    out,
		scheme: DefaultScheme(),
		rng:    rand.New(rand.NewSource(seed + 1)),
		points: NewPointSet(cfg.Bounds()),
		mode:   cfg.Mode(),
		engine: cfg.EngineKind(),
		dirty:  true,
	}
	s.points.SetSeed(seed)
	s.points.SetCandidateFilters(Finite(), WithinBounds(cfg.Bounds()))
	if cfg.ClickEpsilon > 0 {
		s.points.SetSiteFilters(MinDistance(cfg.ClickEpsilon))
	}

	if cfg.JSONPath != "" {
		pts, err := LoadPoints(cfg.JSONPath)
		if err != nil {
			return nil, err
		}
		if err := s.points.Replace(pts); err != nil {
			return nil, errors.Wrap(err, cfg.JSONPath)
		}
		s.recolour()
		s.log.Info("loaded points", "path", cfg.JSONPath, "count", len(pts))
	}

	return s, nil
}

// Points returns the site set
func (s *State) Points() *PointSet {
	return s.points
}

// Mode returns the current drawing mode
func (s *State) Mode() Mode {
	return s.mode
}

// Scheme returns the colour scheme used for new sites
func (s *State) Scheme() *ColourScheme {
	return s.scheme
}

// Colours returns the fill colour of each site, by index
func (s *State) Colours() []color.Color {
	return s.colours
}

// Click adds a site at (x, y) unless it falls outside the bounds or right on
// top of an existing site. Returns if the site was added.
func (s *State) Click(x, y float64) bool {
	p := Pt(x, y)
	if !s.points.Accepted(p) {
		s.log.Debug("click ignored", "x", x, "y", y)
		return false
	}
	s.points.Append(p)
	s.colours = append(s.colours, s.scheme.randomColour(s.rng))
	s.dirty = true
	return true
}

// Key handles a key press. Letters are case insensitive; keys we don't know
// are ignored.
func (s *State) Key(k Key) error {
	switch Key(unicode.ToUpper(rune(k))) {
	case KeyClear:
		s.points.Clear()
		s.colours = nil
		s.dirty = true
	case KeyRandom:
		if err := s.points.RandomFill(s.cfg.RandomCount); err != nil {
			return err
		}
		s.recolour()
		s.dirty = true
	case KeyLinesOnly:
		s.mode = s.mode.Toggle()
		s.dirty = true
		s.log.Info("mode changed", "mode", s.mode)
	case KeyRecolour:
		s.recolour()
	case KeySave:
		return s.Dump()
	}
	return nil
}

// Dump writes the current sites as a single line JSON list, in insertion order.
func (s *State) Dump() error {
	data, err := json.Marshal(s.points.Snapshot())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, string(data))
	return err
}

// Diagram returns the diagram for the current sites & mode, recomputing it
// only if something changed since the last call.
func (s *State) Diagram() *Diagram {
	if !s.dirty && s.diagram != nil {
		return s.diagram
	}

	start := time.Now()
	d := s.points.Diagram(WithMode(s.mode), WithEngine(s.engine))
	stats := d.Stats()
	s.log.Debug(
		"diagram computed",
		"engine", d.Engine,
		"mode", d.Mode,
		"cells", stats.Cells,
		"empty", stats.EmptyCells,
		"edges", stats.Edges,
		"area", stats.Area,
		"took", time.Since(start),
	)

	// swapped in whole; a renderer never sees a half built diagram
	s.diagram = d
	s.dirty = false
	return d
}

// Render draws the current diagram with r
func (s *State) Render(r Renderer) error {
	return r.Render(s.Diagram(), s.colours)
}

// recolour picks a fresh colour for every site
func (s *State) recolour() {
	s.colours = make([]color.Color, s.points.Len())
	for i := range s.colours {
		s.colours[i] = s.scheme.randomColour(s.rng)
	}
}
