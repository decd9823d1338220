package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/misterclayt0n/liftcalc/internal/export"
	"github.com/misterclayt0n/liftcalc/internal/units"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir()) // keep a developer's .env out of the test
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LIFTCALC_UNIT", "")
	t.Setenv("LIFTCALC_FORMAT", "")
	t.Setenv("LIFTCALC_NO_COLOR", "")
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nope.toml")
	_, err := LoadConfig(path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig(%q) error = %v, want os.ErrNotExist", path, err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[display]
unit = "lbs"
format = "yaml"
color = false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := &Config{Display: DisplayConfig{Unit: units.Imperial, Format: export.YAML, Color: false}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[display]\nunit = \"metric\"\nformat = \"toml\"\n")
	t.Setenv("LIFTCALC_UNIT", "imperial")
	t.Setenv("LIFTCALC_FORMAT", "json")
	t.Setenv("LIFTCALC_NO_COLOR", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := &Config{Display: DisplayConfig{Unit: units.Imperial, Format: export.JSON, Color: false}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("LIFTCALC_UNIT")
	if err := os.WriteFile(".env", []byte("LIFTCALC_UNIT=lb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("LIFTCALC_UNIT") })

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Display.Unit != units.Imperial {
		t.Errorf("unit = %v, want imperial from .env", cfg.Display.Unit)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     string
	}{
		{"bad unit in file", "[display]\nunit = \"stone\"\n", ""},
		{"bad format in file", "[display]\nformat = \"csv\"\n", ""},
		{"bad unit in env", "", "furlong"},
		{"malformed toml", "[display\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("LIFTCALC_UNIT", tt.env)
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
