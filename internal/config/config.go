// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/grassfire/gridgraph"
)

// Renderer names accepted in Config.Renderer.
const (
	RendererTerminal = "terminal"
	RendererText     = "text"
	RendererNone     = "none"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every setting of a run. Absent HCL attributes keep the value
// already in the struct, so files only need to name what they change.
type Config struct {
	Rows     int `hcl:"rows,optional"`
	Cols     int `hcl:"cols,optional"`
	StartRow int `hcl:"start_row,optional"`
	StartCol int `hcl:"start_col,optional"`
	GoalRow  int `hcl:"goal_row,optional"`
	GoalCol  int `hcl:"goal_col,optional"`

	// Density is the percentage of cells to block, 0..100.
	Density int `hcl:"density,optional"`
	// Seed fixes obstacle placement; 0 picks a time-based seed.
	Seed int64 `hcl:"seed,optional"`
	// ExcludeStartColumn keeps the start's whole column free of obstacles.
	ExcludeStartColumn bool `hcl:"exclude_start_column,optional"`

	IncludeEndpoints bool `hcl:"include_endpoints,optional"`
	StopAtStart      bool `hcl:"stop_at_start,optional"`

	// FPS paces frames pushed to renderers; 0 disables pacing.
	FPS      int    `hcl:"fps,optional"`
	Renderer string `hcl:"renderer,optional"`
	// Listen is the websocket address, e.g. ":8080"; empty disables it.
	Listen string `hcl:"listen,optional"`

	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

// Default returns the settings of the classic demo: an 8×8 grid searched
// corner to corner at 30 frames per second.
func Default() Config {
	return Config{
		Rows:      8,
		Cols:      8,
		StartRow:  0,
		StartCol:  0,
		GoalRow:   7,
		GoalCol:   7,
		Density:   20,
		FPS:       30,
		Renderer:  RendererTerminal,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Start returns the start cell.
func (c Config) Start() gridgraph.Coord {
	return gridgraph.Coord{Row: c.StartRow, Col: c.StartCol}
}

// Goal returns the goal cell.
func (c Config) Goal() gridgraph.Coord {
	return gridgraph.Coord{Row: c.GoalRow, Col: c.GoalCol}
}

// Load decodes the HCL file at path over base and returns the result.
// Attributes missing from the file keep their value from base.
func Load(path string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	cfg := base
	if diags = gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return base, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations. Every failure wraps ErrInvalid.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Rows, c.Cols)
	}
	for _, p := range []struct {
		name string
		at   gridgraph.Coord
	}{{"start", c.Start()}, {"goal", c.Goal()}} {
		if p.at.Row < 0 || p.at.Row >= c.Rows || p.at.Col < 0 || p.at.Col >= c.Cols {
			return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalid, p.name, p.at, c.Rows, c.Cols)
		}
	}
	if c.Density < 0 || c.Density > 100 {
		return fmt.Errorf("%w: density %d not in [0,100]", ErrInvalid, c.Density)
	}
	if c.FPS < 0 {
		return fmt.Errorf("%w: fps %d is negative", ErrInvalid, c.FPS)
	}
	switch c.Renderer {
	case RendererTerminal, RendererText, RendererNone:
	default:
		return fmt.Errorf("%w: renderer %q (want terminal, text or none)", ErrInvalid, c.Renderer)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalid, c.LogFormat)
	}
	return nil
}
