// SPDX-License-Identifier: MIT

// Package cli turns command-line arguments into a config.Config and errors
// into exit codes.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/grassfire/internal/config"
	"github.com/katalvlaran/grassfire/obstacle"
	"github.com/katalvlaran/grassfire/trace"
)

// Exit codes.
const (
	CodeRuntime = 1
	CodeUsage   = 2
	CodeCorrupt = 3
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse reads args into a Config. Values are layered: defaults, then the
// file named by -config, then any flag given explicitly. It returns true when
// the program should exit cleanly (help was printed).
func Parse(args []string, output io.Writer) (config.Config, bool, error) {
	def := config.Default()
	flagSet := flag.NewFlagSet("grassfire", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
grassfire - shortest paths on a grid by wavefront expansion.

Usage:
  grassfire [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	var (
		cfgPath = flagSet.String("config", "", "Path to an HCL config file.")
		rows    = flagSet.Int("rows", def.Rows, "Number of grid rows.")
		cols    = flagSet.Int("cols", def.Cols, "Number of grid columns.")
		sRow    = flagSet.Int("start-row", def.StartRow, "Start cell row.")
		sCol    = flagSet.Int("start-col", def.StartCol, "Start cell column.")
		gRow    = flagSet.Int("goal-row", def.GoalRow, "Goal cell row.")
		gCol    = flagSet.Int("goal-col", def.GoalCol, "Goal cell column.")
		density = flagSet.Int("density", def.Density, "Percentage of cells to block (0-100).")
		seed    = flagSet.Int64("seed", def.Seed, "Obstacle seed; 0 picks one from the clock.")
		exclCol = flagSet.Bool("exclude-start-column", def.ExcludeStartColumn, "Keep the start column free of obstacles.")
		ends    = flagSet.Bool("include-endpoints", def.IncludeEndpoints, "Include start and goal in the reported path.")
		stop    = flagSet.Bool("stop-at-start", def.StopAtStart, "Stop labeling once the start's distance is final.")
		fps     = flagSet.Int("fps", def.FPS, "Frames per second for renderers; 0 disables pacing.")
		rend    = flagSet.String("renderer", def.Renderer, "Renderer: 'terminal', 'text' or 'none'.")
		listen  = flagSet.String("listen", def.Listen, "Websocket address for live frames, e.g. ':8080'.")
		level   = flagSet.String("log-level", def.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
		format  = flagSet.String("log-format", def.LogFormat, "Log output format: 'text' or 'json'.")
	)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return def, true, nil
		}
		return def, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return def, false, &ExitError{Code: CodeUsage, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	cfg := def
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath, def); err != nil {
			return def, false, &ExitError{Code: CodeUsage, Message: err.Error()}
		}
	}

	// Only flags given on the command line override the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "start-row":
			cfg.StartRow = *sRow
		case "start-col":
			cfg.StartCol = *sCol
		case "goal-row":
			cfg.GoalRow = *gRow
		case "goal-col":
			cfg.GoalCol = *gCol
		case "density":
			cfg.Density = *density
		case "seed":
			cfg.Seed = *seed
		case "exclude-start-column":
			cfg.ExcludeStartColumn = *exclCol
		case "include-endpoints":
			cfg.IncludeEndpoints = *ends
		case "stop-at-start":
			cfg.StopAtStart = *stop
		case "fps":
			cfg.FPS = *fps
		case "renderer":
			cfg.Renderer = strings.ToLower(*rend)
		case "listen":
			cfg.Listen = *listen
		case "log-level":
			cfg.LogLevel = strings.ToLower(*level)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*format)
		}
	})

	if err := cfg.Validate(); err != nil {
		return def, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}
	return cfg, false, nil
}

// Exit maps an error from a run to an ExitError; nil stays nil.
func Exit(err error) *ExitError {
	var exitErr *ExitError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &exitErr):
		return exitErr
	case errors.Is(err, trace.ErrCorruptLabeling):
		return &ExitError{Code: CodeCorrupt, Message: err.Error()}
	case errors.Is(err, config.ErrInvalid),
		errors.Is(err, obstacle.ErrDensityRange),
		errors.Is(err, obstacle.ErrInsufficientFreeCells):
		return &ExitError{Code: CodeUsage, Message: err.Error()}
	default:
		return &ExitError{Code: CodeRuntime, Message: err.Error()}
	}
}
