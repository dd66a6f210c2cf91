// Package config handles layered YAML configuration with .env and environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all contacts configuration.
type Config struct {
	UI   UI   `yaml:"ui"`
	Menu Menu `yaml:"menu"`
}

// UI holds frontend selection settings.
type UI struct {
	Mode string `yaml:"mode"` // "auto" | "tui" | "plain"
}

// Menu holds menu behavior settings.
type Menu struct {
	AddMode       string `yaml:"add_mode"`       // "append" | "upsert"
	ReportMissing bool   `yaml:"report_missing"` // Report update/delete of absent names
}

// UI modes.
const (
	ModeAuto  = "auto"
	ModeTUI   = "tui"
	ModePlain = "plain"
)

// Add modes.
const (
	AddAppend = "append"
	AddUpsert = "upsert"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			Mode: ModeAuto,
		},
		Menu: Menu{
			AddMode:       AddAppend,
			ReportMissing: false,
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := decodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already set are left alone. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: loading %s: %w", path, err)
	}
	return nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch c.UI.Mode {
	case ModeAuto, ModeTUI, ModePlain:
		// valid
	default:
		return fmt.Errorf("config: ui.mode must be \"auto\", \"tui\" or \"plain\", got %q", c.UI.Mode)
	}
	switch c.Menu.AddMode {
	case AddAppend, AddUpsert:
		// valid
	default:
		return fmt.Errorf("config: menu.add_mode must be \"append\" or \"upsert\", got %q", c.Menu.AddMode)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTS_UI_MODE, CONTACTS_ADD_MODE, CONTACTS_REPORT_MISSING.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CONTACTS_UI_MODE"); v != "" {
		c.UI.Mode = v
	}
	if v := os.Getenv("CONTACTS_ADD_MODE"); v != "" {
		c.Menu.AddMode = v
	}
	if v := os.Getenv("CONTACTS_REPORT_MISSING"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid CONTACTS_REPORT_MISSING %q: %w", v, err)
		}
		c.Menu.ReportMissing = b
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	UI   *rawUI   `yaml:"ui"`
	Menu *rawMenu `yaml:"menu"`
}

type rawUI struct {
	Mode *string `yaml:"mode"`
}

type rawMenu struct {
	AddMode       *string `yaml:"add_mode"`
	ReportMissing *bool   `yaml:"report_missing"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist or has no content. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	var raw rawConfig
	ok, err := decodeFile(path, &raw)
	if err != nil || !ok {
		return nil, err
	}
	return &raw, nil
}

// decodeFile strictly decodes the YAML file at path into v. It reports false,
// leaving v untouched, when the file is missing, empty, or comment-only.
func decodeFile(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return false, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return true, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.UI != nil {
		if layer.UI.Mode != nil {
			c.UI.Mode = *layer.UI.Mode
		}
	}
	if layer.Menu != nil {
		if layer.Menu.AddMode != nil {
			c.Menu.AddMode = *layer.Menu.AddMode
		}
		if layer.Menu.ReportMissing != nil {
			c.Menu.ReportMissing = *layer.Menu.ReportMissing
		}
	}
}
