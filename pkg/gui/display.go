package gui

import "fmt"

// State is the state of the presentation loop
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// RGBA is a display color
type RGBA struct {
	R, G, B, A uint8
}

func (c RGBA) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Rect is an axis-aligned rectangle in pixels
type Rect struct {
	X, Y, W, H int
}

type EventKind int

const (
	EventOther EventKind = iota
	EventQuit
	EventKey
	EventResize
)

type Event struct {
	Kind EventKind
}

// Display is the windowing subsystem the presentation loop draws through
type Display interface {
	Init() error
	CreateWindow(title string, w, h int) (Window, error)
	CreateSurface(w Window) (Surface, error)
	Quit()
}

type Window interface {
	Destroy()
}

// Surface is an accelerated drawing target bound to a window. PollEvent must
// never block; it reports false when no event is pending.
type Surface interface {
	Clear(c RGBA) error
	FillRect(r Rect, c RGBA) error
	Present() error
	PollEvent() (Event, bool)
	Destroy()
}
