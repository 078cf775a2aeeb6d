package voronoiplay

import (
	"bytes"
	"math"
	"os"

	"github.com/golang/geo/r2"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/voidshard/voronoiplay/internal/voronoi"
)

const (
	// DefaultWidth & DefaultHeight are the size of the demo window
	DefaultWidth  = 1280
	DefaultHeight = 720

	// DefaultRandomCount is how many points pressing R places
	DefaultRandomCount = 50

	// DefaultClickEpsilon rejects clicks this close (on both axes) to an existing site
	DefaultClickEpsilon = 0.001
)

// Config holds everything the demo needs at startup.
// Most settings can come from a TOML file with command line flags taking
// precedence; see LoadConfig.
type Config struct {
	// Size of the drawable area, required to be > 0
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Start in wireframe mode
	LinesOnly bool `toml:"lines_only"`

	// How many points RandomFill places when R is pressed, >= 0
	RandomCount int `toml:"random_count"`

	// JSON file of points to load at startup (optional)
	JSONPath string `toml:"json_dots"`

	// Seed for rng (random number chosen if not set)
	Seed int64 `toml:"seed"`

	// Engine name, one of polytope, fortune, raster. Polytope if not given
	Engine string `toml:"engine"`

	// Clicks closer than this to an existing site are ignored.
	// 0 or less disables the check.
	ClickEpsilon float64 `toml:"click_epsilon"`

	// PNG file repainted after every change (optional)
	Output string `toml:"out"`
}

// DefaultConfig returns the default demo settings
func DefaultConfig() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		RandomCount:  DefaultRandomCount,
		ClickEpsilon: DefaultClickEpsilon,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Unknown keys are
// rejected so typos don't go unnoticed. Errors are *ConfigError.
func LoadConfig(fpath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, &ConfigError{Field: "config", Reason: err.Error()}
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, &ConfigError{Field: "config", Reason: errors.Wrap(err, fpath).Error()}
	}

	return cfg, nil
}

// Validate returns a *ConfigError describing the first unusable setting.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return newConfigError("width", "must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return newConfigError("height", "must be positive, got %d", c.Height)
	}
	if c.RandomCount < 0 {
		return newConfigError("random_count", "must not be negative, got %d", c.RandomCount)
	}
	if math.IsNaN(c.ClickEpsilon) || math.IsInf(c.ClickEpsilon, 0) {
		return newConfigError("click_epsilon", "must be a finite number")
	}
	if _, err := voronoi.ParseEngine(c.Engine); err != nil {
		return newConfigError("engine", "%v", err)
	}
	return nil
}

// Bounds returns the drawable rectangle, (0,0) to (Width, Height)
func (c *Config) Bounds() r2.Rect {
	return voronoi.Rect(0, 0, float64(c.Width), float64(c.Height))
}

// Mode returns the mode the demo starts in
func (c *Config) Mode() Mode {
	if c.LinesOnly {
		return Wireframe
	}
	return Filled
}

// EngineKind returns the configured Engine, EnginePolytope if invalid.
func (c *Config) EngineKind() Engine {
	e, _ := voronoi.ParseEngine(c.Engine)
	return e
}
