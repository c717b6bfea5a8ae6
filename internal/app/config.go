package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"ca-player/pkg/core"

	"github.com/go-playground/validator/v10"
	"github.com/integrii/flaggy"
	"gopkg.in/yaml.v3"
)

// ErrBadParam is returned for sim parameters not written as key=value.
var ErrBadParam = errors.New("sim parameter must be key=value")

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("registered_sim", func(fl validator.FieldLevel) bool {
		_, ok := core.Sims()[fl.Field().String()]
		return ok
	})
}

// Config represents the command-line parameters for the application.
// Values from ConfigFile are applied first and explicit flags override them.
type Config struct {
	Sim      string   `yaml:"sim" validate:"required,registered_sim"`
	CellSize int      `yaml:"cell_size" validate:"min=1,max=64"`
	DelayMS  int      `yaml:"delay_ms" validate:"min=0,max=60000"`
	Seed     int64    `yaml:"seed"`
	Terminal bool     `yaml:"terminal"`
	Verbose  bool     `yaml:"verbose"`
	FPS      bool     `yaml:"fps"`
	Params   []string `yaml:"params"`

	ConfigFile string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", CellSize: 5, DelayMS: 100, Seed: 42}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.Sim, "s", "sim", "simulation to run ["+strings.Join(core.SimNames(), "|")+"]")
	p.Int(&c.CellSize, "c", "cell", "pixel size of one cell")
	p.Int(&c.DelayMS, "d", "delay", "milliseconds between generations while playing")
	p.Int64(&c.Seed, "", "seed", "seed for random patterns")
	p.Bool(&c.Terminal, "t", "terminal", "run in the terminal instead of a window")
	p.Bool(&c.Verbose, "v", "verbose", "log debug output")
	p.Bool(&c.FPS, "", "fps", "show the frame rate overlay")
	p.StringSlice(&c.Params, "p", "param", "sim parameter as key=value, repeatable")
	p.String(&c.ConfigFile, "f", "config", "YAML file with default settings")
}

// Load parses args, merging in the config file they name, and validates the
// result.
func Load(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.parse(name, args); err != nil {
		return nil, err
	}
	if path := cfg.ConfigFile; path != "" {
		// Re-parse on top of the file so that explicit flags win. Params
		// accumulate, and ParamMap lets the later flag entries override.
		cfg = NewConfig()
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
		if err := cfg.parse(name, args); err != nil {
			return nil, err
		}
		cfg.ConfigFile = path
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parse(name string, args []string) error {
	p := flaggy.NewParser(name)
	p.Description = "Interactive cellular automaton player"
	p.ShowHelpOnUnexpected = true
	c.Bind(p)
	if err := p.ParseArgs(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

// LoadFile applies the settings found in a YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks field ranges and that Sim names a registered simulation.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.ParamMap(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Delay returns DelayMS as a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// ParamMap converts Params into the map handed to sim factories. Later
// entries win over earlier ones.
func (c *Config) ParamMap() (map[string]string, error) {
	if len(c.Params) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(c.Params))
	for _, kv := range c.Params {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%q: %w", kv, ErrBadParam)
		}
		out[strings.ToLower(k)] = strings.TrimSpace(v)
	}
	return out, nil
}
