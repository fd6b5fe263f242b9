// This file contains environment variable handling for configuration override.

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apperrors "github.com/agbru/intcalc/internal/errors"
)

// envSpec mirrors the overridable settings. Field values are only applied
// for variables that are actually present in the environment.
type envSpec struct {
	URL        string        `envconfig:"URL"`
	Function   string        `envconfig:"FUNCTION"`
	Lower      string        `envconfig:"LOWER"`
	Upper      string        `envconfig:"UPPER"`
	TUI        bool          `envconfig:"TUI"`
	Timeout    time.Duration `envconfig:"TIMEOUT"`
	PlotOut    string        `envconfig:"PLOT_OUT"`
	PlotWidth  int           `envconfig:"PLOT_WIDTH"`
	PlotHeight int           `envconfig:"PLOT_HEIGHT"`
	MetricsOut string        `envconfig:"METRICS_OUT"`
	LogFile    string        `envconfig:"LOG_FILE"`
	Verbose    bool          `envconfig:"VERBOSE"`
	NoColor    bool          `envconfig:"NO_COLOR"`
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the INTCALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that copies the parsed value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, envSpec)
}

var envOverrides = []envOverride{
	{"URL", []string{"url"}, func(c *AppConfig, e envSpec) { c.URL = e.URL }},
	{"FUNCTION", []string{"function", "f"}, func(c *AppConfig, e envSpec) { c.Function = e.Function }},
	{"LOWER", []string{"lower", "a"}, func(c *AppConfig, e envSpec) { c.Lower = e.Lower }},
	{"UPPER", []string{"upper", "b"}, func(c *AppConfig, e envSpec) { c.Upper = e.Upper }},
	{"TUI", []string{"tui"}, func(c *AppConfig, e envSpec) { c.TUI = e.TUI }},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, e envSpec) { c.Timeout = e.Timeout }},
	{"PLOT_OUT", []string{"plot-out"}, func(c *AppConfig, e envSpec) { c.PlotOut = e.PlotOut }},
	{"PLOT_WIDTH", []string{"plot-width"}, func(c *AppConfig, e envSpec) { c.PlotWidth = e.PlotWidth }},
	{"PLOT_HEIGHT", []string{"plot-height"}, func(c *AppConfig, e envSpec) { c.PlotHeight = e.PlotHeight }},
	{"METRICS_OUT", []string{"metrics-out"}, func(c *AppConfig, e envSpec) { c.MetricsOut = e.MetricsOut }},
	{"LOG_FILE", []string{"log-file"}, func(c *AppConfig, e envSpec) { c.LogFile = e.LogFile }},
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, e envSpec) { c.Verbose = e.Verbose }},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, e envSpec) { c.NoColor = e.NoColor }},
}

// LoadDotEnv loads variables from path (".env" when empty) into the process
// environment. A missing file is not an error; existing variables are never
// overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) error {
	var spec envSpec
	if err := envconfig.Process(trimPrefix(EnvPrefix), &spec); err != nil {
		return apperrors.NewConfigError("invalid environment: %v", err)
	}
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if _, ok := os.LookupEnv(EnvPrefix + o.envKey); ok {
			o.apply(config, spec)
		}
	}
	return nil
}

// trimPrefix turns "INTCALC_" into the "INTCALC" form envconfig expects.
func trimPrefix(p string) string {
	if n := len(p); n > 0 && p[n-1] == '_' {
		return p[:n-1]
	}
	return p
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}
