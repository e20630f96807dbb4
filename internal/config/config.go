/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package config loads the user configuration of godiagram from a YAML file
// and merges environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"godiagram/internal/geometry"
	applog "godiagram/internal/log"

	"gopkg.in/yaml.v3"
)

// GeometryConfig holds the engine tolerances and limits used by the CLI.
type GeometryConfig struct {
	HitTolerance  float64 `yaml:"hit_tolerance"`
	MinWidth      int     `yaml:"min_width"`
	MinHeight     int     `yaml:"min_height"`
	SnapThreshold float64 `yaml:"snap_threshold"`
	GridSize      float64 `yaml:"grid_size"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Source     bool   `yaml:"source"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
}

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal.
type AppConfig struct {
	ConfigVersion int            `yaml:"config_version"`
	Geometry      GeometryConfig `yaml:"geometry"`
	Logging       LoggingConfig  `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Geometry: GeometryConfig{
			HitTolerance:  geometry.DefaultHitTolerance,
			MinWidth:      1,
			MinHeight:     1,
			SnapThreshold: geometry.DefaultSnapThreshold,
			GridSize:      10,
		},
		Logging: LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvHitTolerance  = "GDG_HIT_TOLERANCE"
	EnvMinWidth      = "GDG_MIN_WIDTH"
	EnvMinHeight     = "GDG_MIN_HEIGHT"
	EnvSnapThreshold = "GDG_SNAP_THRESHOLD"
	EnvGridSize      = "GDG_GRID_SIZE"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "GDG_LOG_LEVEL"
	EnvLogFormat = "GDG_LOG_FORMAT"
	EnvLogSource = "GDG_LOG_SOURCE"
	EnvLogFile   = "GDG_LOG_FILE"
)

var envKeys = map[string]string{
	"geometry.hit_tolerance":  EnvHitTolerance,
	"geometry.min_width":      EnvMinWidth,
	"geometry.min_height":     EnvMinHeight,
	"geometry.snap_threshold": EnvSnapThreshold,
	"geometry.grid_size":      EnvGridSize,
	"logging.level":           EnvLogLevel,
	"logging.format":          EnvLogFormat,
	"logging.source":          EnvLogSource,
	"logging.file":            EnvLogFile,
}

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "GoDiagram")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoDiagram")
	default: // linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = filepath.Join(xdg, "godiagram")
		} else if home := os.Getenv("HOME"); home != "" {
			base = filepath.Join(home, ".config", "godiagram")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the config file at path (the per-user path when empty),
// applies defaults and merges environment overrides. A missing file is not
// an error; a malformed or invalid one is.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	case errors.Is(err, os.ErrNotExist):
		applog.WithComponent("config").Debug("no config file, using defaults", "path", path)
	default:
		return cfg, err
	}
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config YAML to path (the per-user path when empty).
func Save(path string, cfg AppConfig) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate reports geometry settings the engine would reject.
func (c AppConfig) Validate() error {
	g := c.Geometry
	switch {
	case g.HitTolerance < 0:
		return fmt.Errorf("%w: hit_tolerance %v is negative", geometry.ErrInvalidArgument, g.HitTolerance)
	case g.MinWidth < 1 || g.MinHeight < 1:
		return fmt.Errorf("%w: minimum size %dx%d must be at least 1x1", geometry.ErrInvalidArgument, g.MinWidth, g.MinHeight)
	case g.SnapThreshold < 0:
		return fmt.Errorf("%w: snap_threshold %v is negative", geometry.ErrInvalidArgument, g.SnapThreshold)
	case g.GridSize <= 0:
		return fmt.Errorf("%w: grid_size %v must be positive", geometry.ErrInvalidArgument, g.GridSize)
	}
	return nil
}

// LogOptions converts the logging section for log.Init.
func (c AppConfig) LogOptions() applog.Options {
	return applog.Options{
		Level:      c.Logging.Level,
		Format:     c.Logging.Format,
		AddSource:  c.Logging.Source,
		File:       c.Logging.File,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
	}
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// geometry: zero means "not set"
	if src.Geometry.HitTolerance != 0 {
		dst.Geometry.HitTolerance = src.Geometry.HitTolerance
	}
	if src.Geometry.MinWidth != 0 {
		dst.Geometry.MinWidth = src.Geometry.MinWidth
	}
	if src.Geometry.MinHeight != 0 {
		dst.Geometry.MinHeight = src.Geometry.MinHeight
	}
	if src.Geometry.SnapThreshold != 0 {
		dst.Geometry.SnapThreshold = src.Geometry.SnapThreshold
	}
	if src.Geometry.GridSize != 0 {
		dst.Geometry.GridSize = src.Geometry.GridSize
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
	if src.Logging.MaxSizeMB > 0 {
		dst.Logging.MaxSizeMB = src.Logging.MaxSizeMB
	}
	if src.Logging.MaxBackups > 0 {
		dst.Logging.MaxBackups = src.Logging.MaxBackups
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	l := applog.WithComponent("config")
	float := func(key string, dst *float64) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			} else {
				l.Warn("ignoring malformed override", "env", key, "value", v)
			}
		}
	}
	integer := func(key string, dst *int) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			} else {
				l.Warn("ignoring malformed override", "env", key, "value", v)
			}
		}
	}
	float(EnvHitTolerance, &cfg.Geometry.HitTolerance)
	integer(EnvMinWidth, &cfg.Geometry.MinWidth)
	integer(EnvMinHeight, &cfg.Geometry.MinHeight)
	float(EnvSnapThreshold, &cfg.Geometry.SnapThreshold)
	float(EnvGridSize, &cfg.Geometry.GridSize)

	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	env, ok := envKeys[key]
	if !ok || os.Getenv(env) == "" {
		return "", false
	}
	return env, true
}
