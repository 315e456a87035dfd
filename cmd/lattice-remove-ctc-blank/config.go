package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// config holds every tunable of the tool. A YAML file supplies
// defaults; flags given on the command line win over the file.
type config struct {
	// Jobs is the number of concurrent transform workers.
	Jobs int `yaml:"jobs"`
	// SkipBroken skips entries that fail instead of aborting the run.
	SkipBroken bool `yaml:"skip_broken"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogJSON switches the log stream from text to JSON lines.
	LogJSON bool `yaml:"log_json"`
}

// defaultConfig is the sequential, fail-fast, info-level baseline.
func defaultConfig() config {
	return config{Jobs: 1, LogLevel: "info"}
}

// loadConfig folds the three configuration layers in precedence order:
// compiled defaults, then the optional YAML file, then any flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (config, error) {
	cfg := defaultConfig()

	// 1. YAML layer.
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, err
	}
	if path != "" {
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return cfg, fmt.Errorf("read config: %w", readErr)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// 2. Flag layer, only where the user typed the flag.
	if cmd.Flags().Changed("jobs") {
		if cfg.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("skip-broken") {
		if cfg.SkipBroken, err = cmd.Flags().GetBool("skip-broken"); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		if cfg.LogLevel, err = cmd.Flags().GetString("log-level"); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("log-json") {
		if cfg.LogJSON, err = cmd.Flags().GetBool("log-json"); err != nil {
			return cfg, err
		}
	}

	// 3. Validation.
	if cfg.Jobs < 1 {
		return cfg, fmt.Errorf("jobs must be at least 1, got %d", cfg.Jobs)
	}
	if _, err = parseLogLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseLogLevel maps the textual level names onto slog levels.
func parseLogLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", name)
	}
}

// newLogger builds the run logger on w, which is the command's stderr
// so archive bytes on stdout stay clean.
func newLogger(w io.Writer, cfg config) *slog.Logger {
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
