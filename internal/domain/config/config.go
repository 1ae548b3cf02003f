// Package config loads and validates the rigup configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ShellConfig configures where shell customizations land.
type ShellConfig struct {
	// Profile is the shell profile file units append to.
	Profile string `yaml:"profile" toml:"profile" validate:"required"`
}

// Root is the full configuration. All ambient host state the core needs
// (home directory, profile path, per-unit options) lives here; the core
// never reads globals.
type Root struct {
	Shell ShellConfig `yaml:"shell" toml:"shell"`

	// Units carries per-unit option bundles keyed by unit name, e.g. a
	// license file path for matlab or name/email for git.
	Units map[string]map[string]any `yaml:"units" toml:"units"`
}

// Default returns the configuration used when no file is present.
func Default() Root {
	return Root{
		Shell: ShellConfig{Profile: "~/.bashrc"},
		Units: map[string]map[string]any{},
	}
}

// Load reads a configuration file. YAML is the primary format; a .toml
// extension switches the parser. A missing path returns defaults.
func Load(path string) (Root, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Root) {
	if cfg.Shell.Profile == "" {
		cfg.Shell.Profile = "~/.bashrc"
	}
	if cfg.Units == nil {
		cfg.Units = map[string]map[string]any{}
	}
}

// UnitOptions decodes the option bundle for a unit into a typed struct.
// A unit with no bundle leaves out untouched.
func (r Root) UnitOptions(name string, out any) error {
	raw, ok := r.Units[name]
	if !ok {
		return nil
	}
	if err := mapstructure.Decode(raw, out); err != nil {
		return fmt.Errorf("unit %s options: %w", name, err)
	}
	return nil
}
