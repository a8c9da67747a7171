package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"moist_air_calc/internal/humidair"
	"moist_air_calc/internal/metrics"
)

const metricsNamespace = "moist_air"

// Config holds the persistent flags shared by every command.
type Config struct {
	Pressure float64 // absolute pressure, Pa
	LogLevel string
	Metrics  bool // dump the metrics to stderr on exit
}

func defaultConfig() Config {
	return Config{Pressure: humidair.StandardPressure, LogLevel: "warn"}
}

// app is the state of one command tree.
type app struct {
	cfg       Config
	collector *metrics.Collector
}

func newApp() *app {
	return &app{cfg: defaultConfig(), collector: metrics.NewCollector(metricsNamespace)}
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// setup validates the configuration and installs the default logger.
func (a *app) setup(stderr io.Writer) error {
	level, err := parseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	if !(a.cfg.Pressure > 0) {
		return fmt.Errorf("pressure %g Pa: %w", a.cfg.Pressure, humidair.ErrInvalidArgument)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	slog.Debug("config", "pressure", a.cfg.Pressure, "log_level", a.cfg.LogLevel, "metrics", a.cfg.Metrics)
	return nil
}
