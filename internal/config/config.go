// Package config loads buildmatrix settings from an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// DefaultFile is looked up in the working directory when BUILDMATRIX_CONFIG is unset.
const DefaultFile = ".buildmatrix.yaml"

// UI modes.
const (
	UIAuto   = "auto"
	UISimple = "simple"
	UITUI    = "tui"
)

// Config holds every tunable of a buildmatrix run.
type Config struct {
	Command       string   `yaml:"command"`
	Dir           string   `yaml:"dir"`
	Makefile      string   `yaml:"makefile"`
	QueryTarget   string   `yaml:"query_target"`
	QueryVariable string   `yaml:"query_variable"`
	QueryFlags    []string `yaml:"query_flags"`
	CleanTarget   string   `yaml:"clean_target"`
	BuildTarget   string   `yaml:"build_target"`
	OptionPrefix  string   `yaml:"option_prefix"`
	SelectPrefix  string   `yaml:"select_prefix"`
	Timeout       Duration `yaml:"timeout"`
	UI            string   `yaml:"ui"`
	Report        string   `yaml:"report"`
	LogLevel      string   `yaml:"log_level"`
	LogFormat     string   `yaml:"log_format"`
}

// Duration is a time.Duration that reads from Go duration strings.
type Duration time.Duration

// UnmarshalYAML parses values such as "90s" or "15m".
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)

	return nil
}

// MarshalYAML renders the duration in Go syntax.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Default returns the settings of the stock CompilationTest.mk layout.
func Default() Config {
	return Config{
		Command:       "make",
		Makefile:      "CompilationTest.mk",
		QueryTarget:   "get_var",
		QueryVariable: "GET_VAR",
		QueryFlags:    []string{"-s"},
		CleanTarget:   "clean",
		BuildTarget:   "all",
		OptionPrefix:  "OPT_",
		SelectPrefix:  "SEL_",
		UI:            UIAuto,
		LogLevel:      "warn",
		LogFormat:     "text",
	}
}

// KeyRule returns the option-name to variable-name mapping.
func (c Config) KeyRule() m.KeyRule {
	return m.KeyRule{From: c.OptionPrefix, To: c.SelectPrefix}
}

// Load reads a YAML config file, validates it and layers it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := Validate(data); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Resolve finds the config file (explicit path from the environment, then
// DefaultFile in the working directory), loads it when present and applies
// environment overrides.
func Resolve(getenv func(string) string) (Config, error) {
	cfg := Default()

	path := getenv("BUILDMATRIX_CONFIG")
	explicit := path != ""

	if !explicit {
		path = DefaultFile
	}

	loaded, err := Load(path)

	switch {
	case err == nil:
		cfg = loaded
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// no config file, defaults apply
	default:
		return cfg, err
	}

	if err := ApplyEnv(&cfg, getenv); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplyEnv overrides config values with BUILDMATRIX_* environment variables.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	strs := map[string]*string{
		"BUILDMATRIX_COMMAND":    &cfg.Command,
		"BUILDMATRIX_MAKEFILE":   &cfg.Makefile,
		"BUILDMATRIX_DIR":        &cfg.Dir,
		"BUILDMATRIX_UI":         &cfg.UI,
		"BUILDMATRIX_REPORT":     &cfg.Report,
		"BUILDMATRIX_LOG_LEVEL":  &cfg.LogLevel,
		"BUILDMATRIX_LOG_FORMAT": &cfg.LogFormat,
	}

	for key, dst := range strs {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	if v := getenv("BUILDMATRIX_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("BUILDMATRIX_TIMEOUT: %w", err)
		}

		cfg.Timeout = Duration(d)
	}

	switch cfg.UI {
	case UIAuto, UISimple, UITUI:
	default:
		return fmt.Errorf("unknown ui mode %q (want auto, simple or tui)", cfg.UI)
	}

	return nil
}
