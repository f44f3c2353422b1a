// Package config loads and validates dotdb configuration.
//
// Configuration comes from an optional YAML file, validated against an
// embedded CUE schema, with DOTDB_* environment variables applied on top.
// Loading with no file yields the schema defaults.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Config holds the validated store configuration.
type Config struct {
	Backend  string       `json:"backend"`
	File     FileConfig   `json:"file"`
	SQLite   SQLiteConfig `json:"sqlite"`
	Locale   string       `json:"locale"`
	LogLevel string       `json:"log_level"`
}

// FileConfig configures the file backend.
type FileConfig struct {
	Path string `json:"path"`
}

// SQLiteConfig configures the SQLite backend.
type SQLiteConfig struct {
	Path string `json:"path"`
}

// Load reads the YAML config at path (empty path means defaults only),
// applies environment overrides, and validates the result against the
// embedded schema.
func Load(path string) (*Config, error) {
	raw := map[string]any{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnv(raw)
	return validate(raw)
}

// validate unifies the raw config with the CUE schema, which both checks
// the shape and fills in defaults.
func validate(raw map[string]any) (*Config, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile config schema: %w", err)
	}

	unified := schema.Unify(ctx.Encode(raw))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg := &Config{}
	if err := unified.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// applyEnv layers DOTDB_* environment variables over the raw config.
func applyEnv(raw map[string]any) {
	if v := os.Getenv("DOTDB_BACKEND"); v != "" {
		raw["backend"] = v
	}
	if v := os.Getenv("DOTDB_FILE_PATH"); v != "" {
		setNested(raw, "file", "path", v)
	}
	if v := os.Getenv("DOTDB_SQLITE_PATH"); v != "" {
		setNested(raw, "sqlite", "path", v)
	}
	if v := os.Getenv("DOTDB_LOCALE"); v != "" {
		raw["locale"] = v
	}
	if v := os.Getenv("DOTDB_LOG_LEVEL"); v != "" {
		raw["log_level"] = v
	}
}

func setNested(raw map[string]any, section, field string, v any) {
	sub, ok := raw[section].(map[string]any)
	if !ok {
		sub = map[string]any{}
		raw[section] = sub
	}
	sub[field] = v
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
