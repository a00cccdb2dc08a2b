package gui

import (
	"fmt"

	"github.com/qnkhuat/xchess/pkg/board"
	"github.com/sirupsen/logrus"
)

// Session owns the display resources for one run of the presentation loop
type Session struct {
	Display Display
	Config  Config
	Theme   Theme
}

func NewSession(d Display, cfg Config, t Theme) *Session {
	return &Session{Display: d, Config: cfg, Theme: t}
}

// Run brings the display up, runs the loop over b and tears the display down.
// Every resource acquired is released exactly once, whatever the exit path.
func (s *Session) Run(b *board.Board) error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("%w: no board", ErrInvalidConfig)
	}

	if err := s.Display.Init(); err != nil {
		return &InitError{Stage: StageInit, Err: err}
	}
	defer s.Display.Quit()

	w, err := s.Display.CreateWindow(s.Config.Title, s.Config.WindowW, s.Config.WindowH)
	if err != nil {
		return &InitError{Stage: StageWindow, Err: err}
	}
	defer w.Destroy()

	surface, err := s.Display.CreateSurface(w)
	if err != nil {
		return &InitError{Stage: StageSurface, Err: err}
	}
	defer surface.Destroy()

	logrus.Infof("session started: %s", s.Config)
	logrus.Debugf("theme %s", s.Theme.Name)
	return Loop(surface, b, s.Config, s.Theme)
}
