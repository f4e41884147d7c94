// Package config loads restirnv settings from TOML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/cwbudde/restirnv/internal/rtx"
)

// EnvPath names the environment variable consulted by LoadEnv.
const EnvPath = "RESTIRNV_CONFIG"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the on-disk configuration.
type Config struct {
	Profile  string  `toml:"profile"`
	LogLevel string  `toml:"log_level"`
	Capture  string  `toml:"capture"`
	Symbols  Symbols `toml:"symbols"`
}

// Symbols overrides the names resolved by the selected profile. Empty
// fields keep the profile's value.
type Symbols struct {
	Extension       string `toml:"extension"`
	CreatePipelines string `toml:"create_pipelines"`
	BindPipeline    string `toml:"bind_pipeline"`
	TraceRays       string `toml:"trace_rays"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Profile:  rtx.ProfileNV.Name,
		LogLevel: "info",
	}
}

// Load reads the TOML file at path on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadEnv loads the file named by RESTIRNV_CONFIG, or Default when unset.
func LoadEnv() (Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the profile name, the log level and the resolved profile.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.RTXProfile(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// RTXProfile returns the selected built-in profile with symbol overrides applied.
func (c Config) RTXProfile() (rtx.Profile, error) {
	p, err := rtx.LookupProfile(c.Profile)
	if err != nil {
		return rtx.Profile{}, err
	}
	if c.Symbols.Extension != "" {
		p.Extension = c.Symbols.Extension
	}
	if c.Symbols.CreatePipelines != "" {
		p.CreatePipelines = c.Symbols.CreatePipelines
	}
	if c.Symbols.BindPipeline != "" {
		p.BindPipeline = c.Symbols.BindPipeline
	}
	if c.Symbols.TraceRays != "" {
		p.TraceRays = c.Symbols.TraceRays
	}
	return p, p.Validate()
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalid, name)
	}
}
