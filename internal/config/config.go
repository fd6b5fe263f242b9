// Package config parses command-line flags and environment variables into
// the application configuration.
package config

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/agbru/intcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "INTCALC_"

// Defaults.
const (
	DefaultURL        = "http://127.0.0.1:5000"
	DefaultPlotWidth  = 800
	DefaultPlotHeight = 450
)

// AppConfig holds every setting of a run.
type AppConfig struct {
	// URL is the base URL of the calculation service.
	URL string
	// Function, Lower and Upper pre-fill the form; in one-shot mode they
	// are submitted as is.
	Function string
	Lower    string
	Upper    string
	// TUI starts the interactive dashboard instead of a one-shot run.
	TUI bool
	// Timeout bounds each submission. Zero means no limit.
	Timeout time.Duration
	// PlotOut, when set, receives a PNG or SVG rendering of every plot.
	PlotOut    string
	PlotWidth  int
	PlotHeight int
	// MetricsOut, when set, receives the metrics registry at exit.
	MetricsOut string
	// LogFile receives structured logs. Empty means stderr in one-shot mode
	// and nowhere in the dashboard.
	LogFile     string
	Verbose     bool
	NoColor     bool
	ShowVersion bool
}

// ParseConfig parses args (without the program name). Priority is flags,
// then INTCALC_* environment variables (optionally loaded from .env), then
// defaults. Usage and flag errors are written to errorWriter; -h yields
// flag.ErrHelp.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errorWriter, "Computes a definite integral with a remote calculation service.\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEvery flag can also be set with an %s environment variable, e.g. %sURL.\n", EnvPrefix, EnvPrefix)
	}

	config := AppConfig{}
	fs.StringVar(&config.URL, "url", DefaultURL, "Base URL of the calculation service.")
	fs.StringVar(&config.Function, "function", "", "Function of x to integrate, e.g. \"x^2\".")
	fs.StringVar(&config.Function, "f", "", "Function to integrate (shorthand).")
	fs.StringVar(&config.Lower, "lower", "", "Lower bound of integration.")
	fs.StringVar(&config.Lower, "a", "", "Lower bound (shorthand).")
	fs.StringVar(&config.Upper, "upper", "", "Upper bound of integration.")
	fs.StringVar(&config.Upper, "b", "", "Upper bound (shorthand).")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive dashboard.")
	fs.DurationVar(&config.Timeout, "timeout", 0, "Maximum time per submission (e.g. 10s). 0 disables the limit.")
	fs.StringVar(&config.PlotOut, "plot-out", "", "Write the plot to this file (.png or .svg).")
	fs.IntVar(&config.PlotWidth, "plot-width", DefaultPlotWidth, "Width in pixels of the exported plot.")
	fs.IntVar(&config.PlotHeight, "plot-height", DefaultPlotHeight, "Height in pixels of the exported plot.")
	fs.StringVar(&config.MetricsOut, "metrics-out", "", "Write Prometheus metrics to this file at exit.")
	fs.StringVar(&config.LogFile, "log-file", "", "Write structured logs to this file.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose logging.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Verbose logging.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print the version and exit.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	if err := applyEnvOverrides(&config, fs); err != nil {
		return AppConfig{}, err
	}
	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
// Form values are never checked; the service is the judge of those.
func (c AppConfig) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.NewConfigError("invalid service URL %q: must be an absolute http(s) URL", c.URL)
	}
	if c.Timeout < 0 {
		return apperrors.NewConfigError("timeout must not be negative, got %s", c.Timeout)
	}
	if c.PlotWidth <= 0 || c.PlotHeight <= 0 {
		return apperrors.NewConfigError("plot size must be positive, got %dx%d", c.PlotWidth, c.PlotHeight)
	}
	if c.PlotOut != "" {
		dir := filepath.Dir(c.PlotOut)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return apperrors.NewConfigError("plot output directory %q does not exist", dir)
		}
	}
	return nil
}
