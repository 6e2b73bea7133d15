// SPDX-License-Identifier: MIT

// Package frame defines what presentation layers receive from a run: a
// sequence of grid snapshots tagged with the phase that produced them.
package frame

import (
	"context"
	"errors"

	"github.com/katalvlaran/grassfire/gridgraph"
)

// Phase names the step of a run a frame belongs to.
type Phase string

const (
	// PhaseObstacles frames follow each obstacle placed.
	PhaseObstacles Phase = "obstacles"
	// PhaseReady is the grid with obstacles and markers, before the search.
	PhaseReady Phase = "ready"
	// PhaseLabeling frames follow each distance label.
	PhaseLabeling Phase = "labeling"
	// PhaseTracing frames follow each path cell.
	PhaseTracing Phase = "tracing"
	// PhaseDone is the final grid with the status line.
	PhaseDone Phase = "done"
)

// Frame is one observation of the grid. Grid is a copy and may be kept.
type Frame struct {
	Seq    int                `json:"seq"`
	Phase  Phase              `json:"phase"`
	Grid   gridgraph.Snapshot `json:"grid"`
	Status string             `json:"status,omitempty"`
}

// Sink consumes frames. Publish is called from a single goroutine, in
// sequence order; an error stops the run.
type Sink interface {
	Publish(ctx context.Context, f Frame) error
}

// Gate is implemented by interactive sinks that hold the run until the user
// acts: WaitStart before the search begins, WaitQuit after the final frame.
type Gate interface {
	WaitStart(ctx context.Context) error
	WaitQuit(ctx context.Context) error
}

// ErrStopped is returned by a Sink or Gate when the viewer asked to stop.
// The run ends without being treated as a failure.
var ErrStopped = errors.New("frame: stopped by viewer")
