// Package config reads the tool's settings from environment variables.
//
// Every setting has a default, so an empty environment yields a working
// configuration. Load takes the lookup function as a parameter so callers and
// tests can supply their own environment.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/ironsheep/region-trace/internal/imaging"
	"github.com/ironsheep/region-trace/internal/segment"
)

// Environment variable names.
const (
	EnvLogLevel       = "REGIONTRACE_LOG_LEVEL"
	EnvChannels       = "REGIONTRACE_CHANNELS"
	EnvUpperBound     = "REGIONTRACE_UPPER_BOUND"
	EnvStepDiff       = "REGIONTRACE_STEP_DIFF"
	EnvKernel         = "REGIONTRACE_KERNEL"
	EnvRegionColor    = "REGIONTRACE_REGION_COLOR"
	EnvPerimeterColor = "REGIONTRACE_PERIMETER_COLOR"
	EnvDisplayPath    = "REGIONTRACE_DISPLAY_PATH"
	EnvWorkers        = "REGIONTRACE_WORKERS"
)

// Smoothing kernel policies.
const (
	KernelGaussian = "gaussian"
	KernelFixed    = "fixed"
)

const (
	defaultLogLevel       = "info"
	defaultChannels       = 3
	defaultUpperBound     = "50"
	defaultStepDiff       = "5"
	defaultRegionColor    = "#FFFFFF"
	defaultPerimeterColor = "#FF0000"
	defaultDisplayPath    = "display.png"
	defaultWorkers        = 4
)

// Config holds the resolved settings.
type Config struct {
	LogLevel       string
	Channels       int
	UpperBound     segment.Tolerance
	StepDiff       segment.Tolerance
	Kernel         string
	RegionColor    color.NRGBA
	PerimeterColor color.NRGBA
	DisplayPath    string
	Workers        int
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// SmoothingKernel returns the kernel the smooth command uses for factor.
// The fixed kernel ignores factor.
func (c *Config) SmoothingKernel(factor float64) (segment.Kernel, error) {
	if c.Kernel == KernelFixed {
		return segment.FixedKernel(), nil
	}
	return segment.GaussianKernel(factor)
}

// Load builds a Config from getenv, typically os.Getenv.
func Load(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		LogLevel:    strings.ToLower(get(EnvLogLevel, defaultLogLevel)),
		Kernel:      strings.ToLower(get(EnvKernel, KernelGaussian)),
		DisplayPath: get(EnvDisplayPath, defaultDisplayPath),
	}

	var err error
	if cfg.Channels, err = positiveInt(get(EnvChannels, strconv.Itoa(defaultChannels))); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvChannels, err)
	}
	if cfg.Channels != 1 && cfg.Channels != 3 {
		return nil, fmt.Errorf("invalid %s: must be 1 or 3, got %d", EnvChannels, cfg.Channels)
	}

	if cfg.UpperBound, err = ParseTolerance(get(EnvUpperBound, defaultUpperBound), cfg.Channels); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvUpperBound, err)
	}
	if cfg.StepDiff, err = ParseTolerance(get(EnvStepDiff, defaultStepDiff), cfg.Channels); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvStepDiff, err)
	}

	switch cfg.Kernel {
	case KernelGaussian, KernelFixed:
	default:
		return nil, fmt.Errorf("invalid %s: must be %q or %q, got %q", EnvKernel, KernelGaussian, KernelFixed, cfg.Kernel)
	}

	if cfg.RegionColor, err = imaging.ParseColor(get(EnvRegionColor, defaultRegionColor)); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvRegionColor, err)
	}
	if cfg.PerimeterColor, err = imaging.ParseColor(get(EnvPerimeterColor, defaultPerimeterColor)); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvPerimeterColor, err)
	}

	if cfg.Workers, err = positiveInt(get(EnvWorkers, strconv.Itoa(defaultWorkers))); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvWorkers, err)
	}

	return cfg, nil
}

// ParseTolerance parses a comma-separated list of per-channel bounds. A single
// value is broadcast to every channel; otherwise the list must have exactly one
// value per channel.
func ParseTolerance(s string, channels int) (segment.Tolerance, error) {
	fields := strings.Split(s, ",")
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", segment.ErrInvalidParameter, f)
		}
		values = append(values, v)
	}

	var t segment.Tolerance
	if len(values) == 1 {
		t = segment.Uniform(channels, values[0])
	} else {
		t = segment.Tolerance(values)
	}

	if err := t.Validate(channels); err != nil {
		return nil, err
	}
	return t, nil
}

func positiveInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", v)
	}
	return v, nil
}
