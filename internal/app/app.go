package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/intcalc/internal/calc"
	"github.com/agbru/intcalc/internal/config"
	apperrors "github.com/agbru/intcalc/internal/errors"
	"github.com/agbru/intcalc/internal/logging"
	"github.com/agbru/intcalc/internal/metrics"
	"github.com/agbru/intcalc/internal/tui"
	"github.com/agbru/intcalc/internal/ui"
)

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/agbru/intcalc/internal/app.Version=v1.2.0" ./cmd/intcalc
var Version = "dev"

// Application represents the intcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// An optional .env file in the working directory feeds the INTCALC_*
// environment layer.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "intcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	if err := config.LoadDotEnv(""); err != nil {
		fmt.Fprintf(errWriter, "Warning: %v\n", err)
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		// flag already reported its own parse errors.
		var configErr apperrors.ConfigError
		if errors.As(err, &configErr) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}
	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	ui.InitTheme(a.Config.NoColor)

	logger, closeLog, err := a.newLogger()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	defer closeLog()

	recorder := metrics.NewRecorder()
	defer a.writeMetrics(recorder, logger)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.TUI {
		return a.runTUI(ctx, logger, recorder)
	}
	return a.runCalculate(ctx, out, logger, recorder)
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context, logger logging.Logger, recorder *metrics.Recorder) int {
	bridge := tui.NewBridge()
	pl := a.newPipeline(logger, recorder, bridge.NotifyTypeset)

	deps := tui.Deps{
		Page:       pl.page,
		Controller: pl.controller,
		Submitter:  pl.client,
		Endpoint:   pl.client.Endpoint(),
		Initial:    a.form(),
	}
	return tui.Run(ctx, deps, bridge, Version)
}

// form returns the pre-filled field values from the configuration.
func (a *Application) form() calc.Values {
	return calc.Values{
		calc.FieldFunction: a.Config.Function,
		calc.FieldLower:    a.Config.Lower,
		calc.FieldUpper:    a.Config.Upper,
	}
}

// newLogger builds the run's logger. Logs go to -log-file as JSON when set.
// Otherwise one-shot runs log warnings (debug with -v) to stderr and the
// dashboard logs nothing, since it owns the terminal.
func (a *Application) newLogger() (logging.Logger, func(), error) {
	level := zerolog.WarnLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}

	if a.Config.LogFile != "" {
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, apperrors.WrapError(err, "open log file")
		}
		zl := zerolog.New(f).Level(level).With().Timestamp().Str("component", "intcalc").Logger()
		return logging.NewZerologAdapter(zl), func() { _ = f.Close() }, nil
	}
	if a.Config.TUI {
		return logging.NewNopLogger(), func() {}, nil
	}
	return logging.NewConsoleLogger(a.ErrWriter, "intcalc", level), func() {}, nil
}

// writeMetrics dumps the registry to -metrics-out, if set.
func (a *Application) writeMetrics(recorder *metrics.Recorder, logger logging.Logger) {
	if a.Config.MetricsOut == "" {
		return
	}
	if err := recorder.WriteFile(a.Config.MetricsOut); err != nil {
		logger.Error("writing metrics failed", err, logging.String("path", a.Config.MetricsOut))
		fmt.Fprintf(a.ErrWriter, "Warning: %v\n", err)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// HasVersionFlag reports whether args ask for the version, so it can be
// printed before any other flag is validated.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-version", "--version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the program version and build platform.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "intcalc %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
