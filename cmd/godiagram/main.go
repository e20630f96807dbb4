/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"godiagram/internal/config"
	"godiagram/internal/crash"
	applog "godiagram/internal/log"
	"godiagram/internal/probe"
	"godiagram/internal/version"

	"gopkg.in/yaml.v3"
)

// envConfig points at an alternative config file.
const envConfig = "GDG_CONFIG"

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "godiagram - geometry engine for diagram editors")
	_, _ = fmt.Fprintf(w, "Version: %s\n", version.String())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  godiagram version|-v|--version   Show version")
	_, _ = fmt.Fprintln(w, "  godiagram probe <file>           Evaluate the queries in a YAML or JSON probe file")
	_, _ = fmt.Fprintln(w, "  godiagram ops                    List the operations a probe file may use")
	_, _ = fmt.Fprintln(w, "  godiagram config                 Print the effective configuration")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "The config file is read from %s when set, else from the per-user config path.\n", envConfig)
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	defer crash.Recover("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	_ = applog.Close()
	os.Exit(code)
}

// run executes one command and returns the process exit code: 0 on
// success, 1 when the command failed and 2 on usage errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	l := applog.WithComponent("cli")
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "version", "--version", "-v":
		_, _ = fmt.Fprintln(stdout, version.String())
		return 0
	case "ops":
		for _, name := range probe.Ops() {
			_, _ = fmt.Fprintln(stdout, name)
		}
		return 0
	case "config":
		cfg, err := loadConfig()
		if err != nil {
			l.Error("config failed", slog.Any("err", err))
			_, _ = fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		return printConfig(stdout, cfg)
	case "probe":
		if len(args) < 2 {
			_, _ = fmt.Fprintln(stderr, "probe requires <file>")
			usage(stderr)
			return 2
		}
		cfg, err := loadConfig()
		if err != nil {
			l.Error("config failed", slog.Any("err", err))
			_, _ = fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		applog.Init(cfg.LogOptions())
		return runProbe(ctx, args[1], cfg, stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	}

	_, _ = fmt.Fprintf(stderr, "unknown command %q\n", args[0])
	usage(stderr)
	return 2
}

func loadConfig() (config.AppConfig, error) {
	return config.Load(strings.TrimSpace(os.Getenv(envConfig)))
}

func runProbe(ctx context.Context, path string, cfg config.AppConfig, stdout, stderr io.Writer) int {
	abs, _ := filepath.Abs(path)
	defer crash.Recover("", "input: "+abs)
	l := applog.WithOperation(applog.WithComponent("cli"), "probe")

	data, err := os.ReadFile(abs)
	if err != nil {
		l.Error("read failed", slog.String("path", abs), slog.Any("err", err))
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	doc, err := probe.Parse(data, probe.FormatFromPath(abs))
	if err != nil {
		l.Error("parse failed", slog.String("path", abs), slog.Any("err", err))
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	results := probe.Run(applog.ContextWith(ctx, slog.String("input", abs)), doc, probe.Options{
		HitTolerance:  cfg.Geometry.HitTolerance,
		MinWidth:      cfg.Geometry.MinWidth,
		MinHeight:     cfg.Geometry.MinHeight,
		GridSize:      cfg.Geometry.GridSize,
		SnapThreshold: cfg.Geometry.SnapThreshold,
	})
	out, err := yaml.Marshal(results)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	_, _ = stdout.Write(out)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	l.Info("probe done", slog.String("path", abs), slog.Int("queries", len(results)), slog.Int("failed", failed))
	if failed > 0 {
		return 1
	}
	return 0
}

func printConfig(w io.Writer, cfg config.AppConfig) int {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		_, _ = fmt.Fprintln(w, "Error:", err)
		return 1
	}
	_, _ = w.Write(out)
	for _, key := range []string{
		"geometry.hit_tolerance", "geometry.min_width", "geometry.min_height",
		"geometry.snap_threshold", "geometry.grid_size",
		"logging.level", "logging.format", "logging.source", "logging.file",
	} {
		if env, ok := config.EnvOverrideFor(key); ok {
			_, _ = fmt.Fprintf(w, "# %s overridden by %s\n", key, env)
		}
	}
	return 0
}
