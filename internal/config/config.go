package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/misterclayt0n/liftcalc/internal/export"
	"github.com/misterclayt0n/liftcalc/internal/units"
)

type Config struct {
	Display DisplayConfig `toml:"display"`
}

type DisplayConfig struct {
	Unit   units.Unit    `toml:"unit"`   // Unit weights are typed and shown in.
	Format export.Format `toml:"format"` // Default output format of estimate and formulas.
	Color  bool          `toml:"color"`
}

func Default() *Config {
	return &Config{Display: DisplayConfig{Unit: units.Metric, Format: export.Text, Color: true}}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "liftcalc")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from path, or the default location when path is
// empty. A missing file at the default location leaves the defaults in place;
// a missing explicit path is an error. Values from a .env file
// and the environment win over the file.
func LoadConfig(path string) (*Config, error) {
	optional := path == ""
	if optional {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !(optional && errors.Is(err, os.ErrNotExist)) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	// .env is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	format, err := export.ParseFormat(string(cfg.Display.Format))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Display.Format = format

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LIFTCALC_UNIT"); v != "" {
		u, err := units.ParseUnit(v)
		if err != nil {
			return fmt.Errorf("LIFTCALC_UNIT: %w", err)
		}
		c.Display.Unit = u
	}

	if v := os.Getenv("LIFTCALC_FORMAT"); v != "" {
		f, err := export.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("LIFTCALC_FORMAT: %w", err)
		}
		c.Display.Format = f
	}

	if os.Getenv("LIFTCALC_NO_COLOR") == "true" {
		c.Display.Color = false
	}

	return nil
}
