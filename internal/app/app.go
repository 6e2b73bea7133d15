// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/grassfire/internal/config"
	"github.com/katalvlaran/grassfire/internal/frame"
	"github.com/katalvlaran/grassfire/internal/render"
	"github.com/katalvlaran/grassfire/internal/stream"
)

// Option customises App construction.
type Option func(*App)

// WithSink adds an extra frame sink.
func WithSink(s frame.Sink) Option {
	return func(a *App) {
		if s != nil {
			a.sinks = append(a.sinks, s)
		}
	}
}

// WithScreen makes the terminal renderer draw on screen instead of the real
// terminal.
func WithScreen(screen tcell.Screen) Option {
	return func(a *App) { a.screen = screen }
}

// WithLogOutput sends log records to w instead of the App's output writer.
func WithLogOutput(w io.Writer) Option {
	return func(a *App) {
		if w != nil {
			a.logW = w
		}
	}
}

// WithListenReady registers a callback receiving the websocket server's
// bound address.
func WithListenReady(fn func(net.Addr)) Option {
	return func(a *App) { a.listenReady = fn }
}

// App holds the configuration, logger and sinks of one session.
type App struct {
	cfg    config.Config
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger

	screen      tcell.Screen
	listenReady func(net.Addr)

	sinks   []frame.Sink
	closers []io.Closer
	hub     *stream.Hub

	seq       int
	interval  time.Duration
	lastFrame time.Time
}

// New validates cfg and builds the sinks it names. The text renderer writes
// to outW, and so do logs unless WithLogOutput is given.
func New(cfg config.Config, outW io.Writer, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, outW: outW, logW: outW}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = newLogger(cfg.LogLevel, cfg.LogFormat, a.logW)
	if cfg.FPS > 0 {
		a.interval = time.Second / time.Duration(cfg.FPS)
	}

	switch cfg.Renderer {
	case config.RendererTerminal:
		term, err := render.NewTerminal(a.screen)
		if err != nil {
			return nil, err
		}
		a.sinks = append(a.sinks, term)
		a.closers = append(a.closers, term)
	case config.RendererText:
		a.sinks = append(a.sinks, render.NewText(outW, cfg.LogLevel == "debug"))
	}
	if cfg.Listen != "" {
		a.hub = stream.NewHub(a.logger)
		a.sinks = append(a.sinks, a.hub)
	}
	a.logger.Debug("App configured.", "renderer", cfg.Renderer, "sinks", len(a.sinks), "listen", cfg.Listen)

	return a, nil
}

// Close releases the terminal, if any.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// publish sends one frame to every sink, sleeping to honour the frame rate.
func (a *App) publish(ctx context.Context, phase frame.Phase, snap func() frame.Frame) error {
	if len(a.sinks) == 0 {
		return nil
	}
	if err := a.pace(ctx); err != nil {
		return err
	}
	a.seq++
	f := snap()
	f.Seq, f.Phase = a.seq, phase
	for _, s := range a.sinks {
		if err := s.Publish(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// pace waits until one frame interval has passed since the previous frame.
func (a *App) pace(ctx context.Context) error {
	if a.interval == 0 {
		return nil
	}
	if wait := time.Until(a.lastFrame.Add(a.interval)); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	a.lastFrame = time.Now()
	return nil
}

// gates returns the sinks that hold the run for user input.
func (a *App) gates() []frame.Gate {
	var gs []frame.Gate
	for _, s := range a.sinks {
		if g, ok := s.(frame.Gate); ok {
			gs = append(gs, g)
		}
	}
	return gs
}

// serveStream starts the websocket server in the background.
func (a *App) serveStream(ctx context.Context) {
	if a.hub == nil {
		return
	}
	go func() {
		if err := a.hub.Serve(ctx, a.cfg.Listen, a.listenReady); err != nil {
			a.logger.Error("Stream server failed.", "error", err)
		}
	}()
}

// errorf wraps err with the phase it happened in.
func errorf(phase string, err error) error {
	return fmt.Errorf("%s: %w", phase, err)
}
