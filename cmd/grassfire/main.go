// SPDX-License-Identifier: MIT

// Command grassfire scatters obstacles on a grid, labels every cell with its
// distance to the goal and draws the shortest path from the start.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/grassfire/internal/app"
	"github.com/katalvlaran/grassfire/internal/cli"
)

func main() {
	// Minimal logger until the configured one exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if exitErr := cli.Exit(err); exitErr != nil {
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
}

// run parses args and executes one session. Frames for the text renderer go
// to outW; logs go to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	a, err := app.New(cfg, outW, app.WithLogOutput(logW))
	if err != nil {
		return err
	}
	defer a.Close()

	rep, err := a.Run(ctx)
	if err != nil {
		return err
	}
	if !rep.Stopped {
		fmt.Fprintln(outW, rep.Status())
	}
	return nil
}
