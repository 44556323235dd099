package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/utils"
)

// Config is the on-disk configuration (config.yaml in the config directory).
type Config struct {
	APIURL   string        `yaml:"api_url"`
	Timezone string        `yaml:"timezone"`
	Timeout  time.Duration `yaml:"timeout"`
	Debug    bool          `yaml:"debug"`
}

// Overrides carries values from flags and environment. Zero values leave the
// file setting in place.
type Overrides struct {
	APIURL   string
	Timezone string
	Timeout  time.Duration
	Debug    bool
}

func Default() Config {
	return Config{
		APIURL:   constants.DefaultAPIURL,
		Timezone: constants.DefaultTimezone,
		Timeout:  constants.DefaultAPITimeout,
	}
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, constants.ConfigFileName)
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory when needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Apply returns cfg with every non-zero override applied.
func (c Config) Apply(o Overrides) Config {
	if o.APIURL != "" {
		c.APIURL = o.APIURL
	}
	if o.Timezone != "" {
		c.Timezone = o.Timezone
	}
	if o.Timeout > 0 {
		c.Timeout = o.Timeout
	}
	if o.Debug {
		c.Debug = true
	}
	return c
}

func (c Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("api_url cannot be empty")
	}
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone %q", c.Timezone)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := utils.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
