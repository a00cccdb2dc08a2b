package gui

import (
	"fmt"

	"github.com/qnkhuat/xchess/pkg/board"
	"github.com/sirupsen/logrus"
)

// drainEvents empties the event queue and reports whether a quit was seen.
// Events queued behind a quit are discarded.
func drainEvents(s Surface) State {
	state := Running
	for {
		ev, ok := s.PollEvent()
		if !ok {
			return state
		}
		if ev.Kind == EventQuit {
			state = Stopped
		}
	}
}

// squareColor returns the theme's color for square i of the grid
func squareColor(g board.Grid, i int, t Theme) RGBA {
	if g.Parity(i) == 0 {
		return t.SquareDark
	}
	return t.SquareLight
}

// squareRect returns the pixel rectangle of square i
func squareRect(cfg Config, i int) Rect {
	file, rank := cfg.Grid().Coords(i)
	return Rect{
		X: file * cfg.SquareW,
		Y: rank * cfg.SquareH,
		W: cfg.SquareW,
		H: cfg.SquareH,
	}
}

// drawBoard paints the checkered squares
func drawBoard(s Surface, cfg Config, t Theme) error {
	g := cfg.Grid()
	for i := 0; i < g.Len(); i++ {
		if err := s.FillRect(squareRect(cfg, i), squareColor(g, i, t)); err != nil {
			return &RenderError{Op: fmt.Sprintf("fill square %d", i), Err: err}
		}
	}
	return nil
}

// Frame runs one cycle: clear, poll input, paint the grid, present. The
// returned state reflects the input seen during this cycle. Any surface error
// is fatal to the loop.
func Frame(s Surface, b *board.Board, cfg Config, t Theme) (State, error) {
	if err := s.Clear(t.Background); err != nil {
		return Stopped, &RenderError{Op: "clear", Err: err}
	}

	state := drainEvents(s)

	// TODO: paint the pieces of b on top of the squares once sprites exist
	if err := drawBoard(s, cfg, t); err != nil {
		return Stopped, err
	}

	if err := s.Present(); err != nil {
		return Stopped, &RenderError{Op: "present", Err: err}
	}
	return state, nil
}

// Loop runs frames back to back until a quit is observed
func Loop(s Surface, b *board.Board, cfg Config, t Theme) error {
	frames := 0
	for {
		state, err := Frame(s, b, cfg, t)
		if err != nil {
			logrus.Errorf("frame %d: %s", frames, err)
			return err
		}
		frames++
		if state == Stopped {
			logrus.Infof("loop stopped after %d frames", frames)
			return nil
		}
	}
}
