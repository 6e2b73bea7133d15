// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/grassfire/gridgraph"
	"github.com/katalvlaran/grassfire/internal/ctxlog"
	"github.com/katalvlaran/grassfire/internal/frame"
	"github.com/katalvlaran/grassfire/obstacle"
	"github.com/katalvlaran/grassfire/trace"
	"github.com/katalvlaran/grassfire/wavefront"
)

// StatusNoPath is shown when the goal cannot be reached.
const StatusNoPath = "No path found"

// Report summarises a finished run.
type Report struct {
	Seed     int64
	Blocked  int
	Regions  int
	Outcome  wavefront.Outcome
	Distance int
	Labeled  int
	Path     []gridgraph.Coord
	// Stopped is set when the viewer quit before the run completed.
	Stopped bool
	Grid    gridgraph.Snapshot
}

// Status is the one-line verdict shown to the viewer.
func (r *Report) Status() string {
	if r.Outcome != wavefront.Found {
		return StatusNoPath
	}
	return fmt.Sprintf("Shortest path: %d steps, %d cells marked", r.Distance, len(r.Path))
}

// Run executes one session. The returned report is non-nil whenever the grid
// was built, including on error.
func (a *App) Run(ctx context.Context) (*Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run started.")

	a.serveStream(ctx)

	g, rep, err := a.buildGrid(ctx)
	if err != nil {
		if errors.Is(err, frame.ErrStopped) {
			a.logger.Info("Stopped by viewer.")
			return &Report{Stopped: true}, nil
		}
		return nil, err
	}
	defer func() { rep.Grid = g.Snapshot() }()

	start, goal := a.cfg.Start(), a.cfg.Goal()
	snap := func() frame.Frame { return frame.Frame{Grid: g.Snapshot()} }

	if err = a.publish(ctx, frame.PhaseReady, snap); err != nil {
		return rep, a.stopOr(rep, errorf("publish", err))
	}
	for _, gate := range a.gates() {
		if err = gate.WaitStart(ctx); err != nil {
			return rep, a.stopOr(rep, err)
		}
	}

	// Label distances from the goal.
	began := time.Now()
	searchOpts := []wavefront.Option{
		wavefront.WithContext(ctx),
		wavefront.WithOnLabel(func(gridgraph.Coord, int) error {
			return a.publish(ctx, frame.PhaseLabeling, snap)
		}),
	}
	if a.cfg.StopAtStart {
		searchOpts = append(searchOpts, wavefront.WithStopAtStart())
	}
	res, err := wavefront.Search(g, start, goal, searchOpts...)
	if res != nil {
		rep.Outcome = res.Outcome
		rep.Labeled = len(res.Order) - 1
	}
	if err != nil {
		return rep, a.stopOr(rep, errorf("search", err))
	}
	logger.Info("Search finished.",
		"outcome", res.Outcome.String(),
		"labeled", rep.Labeled,
		"expanded", res.Expanded,
		"depth", res.Depth,
		"elapsed", time.Since(began))

	// Walk back down the labels.
	if res.Reached() {
		rep.Distance = res.Distance
		traceOpts := []trace.Option{
			trace.WithOnStep(func(gridgraph.Coord) error {
				return a.publish(ctx, frame.PhaseTracing, snap)
			}),
		}
		if a.cfg.IncludeEndpoints {
			traceOpts = append(traceOpts, trace.WithEndpoints())
		}
		rep.Path, err = trace.Reconstruct(g, start, goal, res.Distance, traceOpts...)
		if err != nil {
			return rep, a.stopOr(rep, errorf("trace", err))
		}
		logger.Info("Path reconstructed.", "distance", rep.Distance, "cells", len(rep.Path))
	} else {
		logger.Warn(StatusNoPath, "start", start.String(), "goal", goal.String())
	}

	status := rep.Status()
	if err = a.publish(ctx, frame.PhaseDone, func() frame.Frame {
		return frame.Frame{Grid: g.Snapshot(), Status: status}
	}); err != nil {
		return rep, a.stopOr(rep, errorf("publish", err))
	}
	for _, gate := range a.gates() {
		if err = gate.WaitQuit(ctx); err != nil {
			return rep, a.stopOr(rep, err)
		}
	}

	logger.Debug("App.Run finished.")
	return rep, nil
}

// buildGrid creates the grid, places the markers and scatters obstacles.
func (a *App) buildGrid(ctx context.Context) (*gridgraph.Grid, *Report, error) {
	logger := ctxlog.FromContext(ctx)
	g, err := gridgraph.New(a.cfg.Rows, a.cfg.Cols)
	if err != nil {
		return nil, nil, errorf("grid", err)
	}
	start, goal := a.cfg.Start(), a.cfg.Goal()
	if err = g.SetGoal(goal); err != nil {
		return nil, nil, errorf("grid", err)
	}
	if err = g.SetStart(start); err != nil {
		return nil, nil, errorf("grid", err)
	}

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []obstacle.Option{
		obstacle.WithSeed(seed),
		obstacle.WithOnBlock(func(c gridgraph.Coord) error {
			logger.Debug("Obstacle placed.", "at", c.String())
			return a.publish(ctx, frame.PhaseObstacles, func() frame.Frame {
				return frame.Frame{Grid: g.Snapshot()}
			})
		}),
	}
	if a.cfg.ExcludeStartColumn {
		opts = append(opts, obstacle.WithExcludeColumn(start.Col))
	}
	placed, err := obstacle.Generate(g, a.cfg.Density, opts...)
	if err != nil {
		return nil, nil, errorf("obstacles", err)
	}

	rep := &Report{
		Seed:    seed,
		Blocked: len(placed),
		Regions: len(g.Regions()),
	}
	logger.Info("Grid ready.",
		"rows", g.Rows(),
		"cols", g.Cols(),
		"start", start.String(),
		"goal", goal.String(),
		"blocked", rep.Blocked,
		"regions", rep.Regions,
		"connected", g.Connected(start, goal),
		"seed", seed)

	return g, rep, nil
}

// stopOr turns a viewer stop into a clean return and passes other errors on.
func (a *App) stopOr(rep *Report, err error) error {
	if errors.Is(err, frame.ErrStopped) {
		rep.Stopped = true
		a.logger.Info("Stopped by viewer.")
		return nil
	}
	return err
}
