package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "ca-player/pkg/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("ca", nil)
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
	assert.Equal(t, 100*time.Millisecond, cfg.Delay())

	params, err := cfg.ParamMap()
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load("ca", []string{"--cell", "8", "-d", "20", "-p", "rows=10", "-p", "Pattern = blank", "--fps"})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.CellSize)
	assert.Equal(t, 20*time.Millisecond, cfg.Delay())
	assert.True(t, cfg.FPS)

	params, err := cfg.ParamMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"rows": "10", "pattern": "blank"}, params)
}

func TestLoadFileUnderFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sim: life
cell_size: 3
delay_ms: 50
params:
  - rows=20
  - cols=40
`), 0o644))

	cfg, err := Load("ca", []string{"--config", path, "--cell", "7", "-p", "rows=30"})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.CellSize, "flags override the file")
	assert.Equal(t, 50, cfg.DelayMS, "file overrides the defaults")
	assert.Equal(t, path, cfg.ConfigFile)

	params, err := cfg.ParamMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"rows": "30", "cols": "40"}, params)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := Load("ca", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cell_size: [1, 2"), 0o644))
	_, err = Load("ca", []string{"--config", path})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())

	for name, mutate := range map[string]func(*Config){
		"unknown sim":    func(c *Config) { c.Sim = "nope" },
		"empty sim":      func(c *Config) { c.Sim = "" },
		"zero cell":      func(c *Config) { c.CellSize = 0 },
		"negative delay": func(c *Config) { c.DelayMS = -1 },
		"bad param":      func(c *Config) { c.Params = []string{"rows"} },
		"empty key":      func(c *Config) { c.Params = []string{"=3"} },
	} {
		t.Run(name, func(t *testing.T) {
			c := NewConfig()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestParamMapRejectsMissingEquals(t *testing.T) {
	c := NewConfig()
	c.Params = []string{"rows=3", "cols"}
	_, err := c.ParamMap()
	assert.ErrorIs(t, err, ErrBadParam)
}
