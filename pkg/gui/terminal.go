package gui

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// TerminalDisplay draws into a terminal through tcell. The window is the
// initialized screen and the surface maps pixel rectangles onto cells of
// CellW x CellH pixels.
type TerminalDisplay struct {
	Config      Config
	QuitSignals []os.Signal

	// NewScreen creates the screen on Init, tcell.NewScreen by default
	NewScreen func() (tcell.Screen, error)

	screen tcell.Screen
}

func NewTerminalDisplay(cfg Config) *TerminalDisplay {
	return &TerminalDisplay{
		Config:      cfg,
		QuitSignals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		NewScreen:   tcell.NewScreen,
	}
}

func (d *TerminalDisplay) Init() error {
	s, err := d.NewScreen()
	if err != nil {
		return err
	}
	d.screen = s
	return nil
}

func (d *TerminalDisplay) CreateWindow(title string, w, h int) (Window, error) {
	if d.screen == nil {
		return nil, errors.New("display not initialized")
	}
	if err := d.screen.Init(); err != nil {
		return nil, err
	}
	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.HideCursor()

	cols, rows := ceilDiv(w, d.Config.CellW), ceilDiv(h, d.Config.CellH)
	if sw, sh := d.screen.Size(); sw < cols || sh < rows {
		logrus.Warnf("terminal is %dx%d cells, %q needs %dx%d", sw, sh, title, cols, rows)
	}

	win := &terminalWindow{
		screen: d.screen,
		title:  title,
		sigc:   make(chan os.Signal, 1),
		done:   make(chan struct{}),
	}
	if len(d.QuitSignals) > 0 {
		signal.Notify(win.sigc, d.QuitSignals...)
		go win.forwardSignals()
	}
	logrus.Debugf("opened window %q (%dx%d px, %dx%d cells)", title, w, h, cols, rows)
	return win, nil
}

func (d *TerminalDisplay) CreateSurface(w Window) (Surface, error) {
	win, ok := w.(*terminalWindow)
	if !ok || win.screen != d.screen {
		return nil, ErrForeignWindow
	}
	if win.destroyed {
		return nil, errors.New("window destroyed")
	}
	return &terminalSurface{
		screen: win.screen,
		cellW:  d.Config.CellW,
		cellH:  d.Config.CellH,
		clock:  newFrameClock(d.Config.FrameInterval),
	}, nil
}

// Quit drops the screen handle; the terminal itself is restored by the window
func (d *TerminalDisplay) Quit() {
	d.screen = nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// quitSignal marks interrupts posted for an OS signal
type quitSignal struct {
	os.Signal
}

type terminalWindow struct {
	screen    tcell.Screen
	title     string
	sigc      chan os.Signal
	done      chan struct{}
	destroyed bool
}

// forwardSignals turns OS signals into interrupt events so the loop sees them
// on its next poll
func (w *terminalWindow) forwardSignals() {
	for {
		select {
		case sig := <-w.sigc:
			w.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{sig}))
		case <-w.done:
			return
		}
	}
}

func (w *terminalWindow) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	signal.Stop(w.sigc)
	close(w.done)
	w.screen.Fini()
}

type terminalSurface struct {
	screen tcell.Screen
	cellW  int
	cellH  int
	clock  *frameClock
	closed bool
}

func (s *terminalSurface) Clear(c RGBA) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	s.screen.Fill(' ', tcell.StyleDefault.Background(c.Color()))
	return nil
}

// FillRect paints every cell whose origin lies inside r
func (s *terminalSurface) FillRect(r Rect, c RGBA) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	style := tcell.StyleDefault.Background(c.Color())
	x0, y0 := ceilDiv(r.X, s.cellW), ceilDiv(r.Y, s.cellH)
	x1, y1 := ceilDiv(r.X+r.W, s.cellW), ceilDiv(r.Y+r.H, s.cellH)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	return nil
}

func (s *terminalSurface) Present() error {
	if s.closed {
		return ErrSurfaceClosed
	}
	s.clock.Wait()
	s.screen.Show()
	return nil
}

func (s *terminalSurface) PollEvent() (Event, bool) {
	if s.closed || !s.screen.HasPendingEvent() {
		return Event{}, false
	}
	return translateEvent(s.screen.PollEvent()), true
}

func (s *terminalSurface) Destroy() {
	s.closed = true
}

// translateEvent maps tcell events onto loop events. Escape, Ctrl-C, q and
// interrupts quit.
func translateEvent(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		// The screen was finalized underneath us
		return Event{Kind: EventQuit}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Event{Kind: EventQuit}
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return Event{Kind: EventQuit}
			}
		}
		return Event{Kind: EventKey}
	case *tcell.EventInterrupt:
		return Event{Kind: EventQuit}
	case *tcell.EventResize:
		return Event{Kind: EventResize}
	default:
		return Event{Kind: EventOther}
	}
}
