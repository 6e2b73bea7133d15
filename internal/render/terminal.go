// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/grassfire/gridgraph"
	"github.com/katalvlaran/grassfire/internal/frame"
)

// cellWidth is the number of terminal columns per grid cell; two columns
// keep cells roughly square.
const cellWidth = 2

var (
	styleEmpty   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleBlocked = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleStart   = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	styleGoal    = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
	styleLabeled = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	stylePath    = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite)
	styleStatus  = tcell.StyleDefault
)

// StyleFor returns the style a cell state is painted with.
func StyleFor(s gridgraph.CellState) tcell.Style {
	switch s {
	case gridgraph.Blocked:
		return styleBlocked
	case gridgraph.Start:
		return styleStart
	case gridgraph.Goal:
		return styleGoal
	case gridgraph.Labeled:
		return styleLabeled
	case gridgraph.OnPath:
		return stylePath
	default:
		return styleEmpty
	}
}

// Terminal is a frame.Sink and frame.Gate drawing on a tcell screen.
type Terminal struct {
	screen  tcell.Screen
	events  chan tcell.Event
	pending []tcell.Event
	last    *frame.Frame

	done      chan struct{}
	closeOnce sync.Once
}

// NewTerminal initialises screen and starts polling its events.
// A nil screen opens the real terminal.
func NewTerminal(screen tcell.Screen) (*Terminal, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("render: open terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("render: init terminal: %w", err)
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	go t.poll()

	return t, nil
}

// poll forwards screen events until the screen is finalised or the
// terminal closed, whichever comes first.
func (t *Terminal) poll() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
	return nil
}

// Publish draws f. A quit key pressed since the last frame stops the run.
func (t *Terminal) Publish(_ context.Context, f frame.Frame) error {
	t.last = &f
	t.draw(f)
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return frame.ErrStopped
			}
			switch {
			case isQuit(ev):
				return frame.ErrStopped
			case isResize(ev):
				t.screen.Sync()
			case isKey(ev):
				// Kept for the next wait, so an early Enter is not lost.
				t.pending = append(t.pending, ev)
			}
		default:
			return nil
		}
	}
}

// WaitStart blocks until Enter is pressed. Esc or q stops the run.
func (t *Terminal) WaitStart(ctx context.Context) error {
	return t.wait(ctx, "Enter: start search   Esc/q: quit", true)
}

// WaitQuit blocks until the viewer dismisses the final frame with Esc, q or
// Enter.
func (t *Terminal) WaitQuit(ctx context.Context) error {
	status := "Esc/q: quit"
	if t.last != nil && t.last.Status != "" {
		status = t.last.Status + "   " + status
	}
	if err := t.wait(ctx, status, false); err != nil && !errors.Is(err, frame.ErrStopped) {
		return err
	}
	return nil
}

func (t *Terminal) wait(ctx context.Context, status string, start bool) error {
	t.drawStatus(status)
	t.screen.Show()
	for {
		ev, err := t.next(ctx)
		if err != nil {
			return err
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuit(ev) {
				return frame.ErrStopped
			}
			if ev.Key() == tcell.KeyEnter {
				if start {
					return nil
				}
				return frame.ErrStopped
			}
		case *tcell.EventResize:
			if t.last != nil {
				t.draw(*t.last)
			}
			t.drawStatus(status)
			t.screen.Sync()
		}
	}
}

// next returns the oldest pending key, or blocks for a new event.
func (t *Terminal) next(ctx context.Context) (tcell.Event, error) {
	if len(t.pending) > 0 {
		ev := t.pending[0]
		t.pending = t.pending[1:]
		return ev, nil
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ev, ok := <-t.events:
		if !ok {
			return nil, frame.ErrStopped
		}
		return ev, nil
	}
}

// isQuit reports Esc, Ctrl-C or q.
func isQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}

func isKey(ev tcell.Event) bool {
	_, ok := ev.(*tcell.EventKey)
	return ok
}

func isResize(ev tcell.Event) bool {
	_, ok := ev.(*tcell.EventResize)
	return ok
}

func (t *Terminal) draw(f frame.Frame) {
	t.screen.Clear()
	g := f.Grid
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			state, d := g.At(r, c)
			label := "  "
			if (state == gridgraph.Labeled || state == gridgraph.OnPath) && d > 0 {
				label = fmt.Sprintf("%2d", d)
				if len(label) > cellWidth {
					label = label[len(label)-cellWidth:]
				}
			}
			style := StyleFor(state)
			for i, ch := range label {
				t.screen.SetContent(c*cellWidth+i, r, ch, nil, style)
			}
		}
	}
	status := string(f.Phase)
	if f.Status != "" {
		status = f.Status
	}
	t.drawStatus(status)
	t.screen.Show()
}

// drawStatus writes msg on the line below the grid.
func (t *Terminal) drawStatus(msg string) {
	row := 0
	if t.last != nil {
		row = t.last.Grid.Rows
	}
	w, _ := t.screen.Size()
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	for i, ch := range []rune(msg) {
		t.screen.SetContent(i, row, ch, nil, styleStatus)
	}
}
