// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/grassfire/internal/frame"
)

// Text prints frames as ASCII pictures (see gridgraph.Snapshot.String).
// Only the final frame is printed unless every frame was requested.
type Text struct {
	w     io.Writer
	every bool
}

// NewText returns a Text sink writing to w.
func NewText(w io.Writer, everyFrame bool) *Text {
	return &Text{w: w, every: everyFrame}
}

// Publish writes f when it is the final frame or when every frame is wanted.
func (t *Text) Publish(_ context.Context, f frame.Frame) error {
	if f.Phase != frame.PhaseDone && !t.every {
		return nil
	}
	if _, err := fmt.Fprintf(t.w, "-- %s #%d\n%s", f.Phase, f.Seq, f.Grid.String()); err != nil {
		return fmt.Errorf("render: write frame %d: %w", f.Seq, err)
	}
	if f.Status != "" {
		if _, err := fmt.Fprintln(t.w, f.Status); err != nil {
			return fmt.Errorf("render: write status: %w", err)
		}
	}
	return nil
}
