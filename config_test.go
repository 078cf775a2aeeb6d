package voronoiplay

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.RandomCount)
	assert.Equal(t, Filled, cfg.Mode())
	assert.Equal(t, EnginePolytope, cfg.EngineKind())

	b := cfg.Bounds()
	assert.Equal(t, 1280.0, b.X.Hi)
	assert.Equal(t, 720.0, b.Y.Hi)
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"width":         func(c *Config) { c.Width = 0 },
		"height":        func(c *Config) { c.Height = -5 },
		"random_count":  func(c *Config) { c.RandomCount = -1 },
		"engine":        func(c *Config) { c.Engine = "delaunay" },
		"click_epsilon": func(c *Config) { c.ClickEpsilon = math.Inf(1) },
	}

	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsConfigError(err))
			assert.Equal(t, field, err.(*ConfigError).Field)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, "demo.toml")
	require.NoError(t, os.WriteFile(fpath, []byte(`
width = 640
height = 480
lines_only = true
random_count = 5
engine = "fortune"
seed = 7
`), 0644))

	cfg, err := LoadConfig(fpath)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, Wireframe, cfg.Mode())
	assert.Equal(t, 5, cfg.RandomCount)
	assert.Equal(t, EngineFortune, cfg.EngineKind())
	assert.Equal(t, int64(7), cfg.Seed)

	// unset values keep their defaults
	assert.Equal(t, DefaultClickEpsilon, cfg.ClickEpsilon)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("colour = \"red\"\n"), 0644))
	_, err := LoadConfig(unknown)
	assert.True(t, IsConfigError(err))

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("width = \n"), 0644))
	_, err = LoadConfig(broken)
	assert.True(t, IsConfigError(err))

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.True(t, IsConfigError(err))
}
