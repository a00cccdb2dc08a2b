package gui

import "errors"

// fakeDisplay records every call made through the display interfaces
type fakeDisplay struct {
	initErr    error
	windowErr  error
	surfaceErr error

	// events are handed out one poll drain per frame
	frames [][]Event
	// failAt makes the n-th FillRect call fail when set
	failAt int

	inits, quits                     int
	windowsCreated, windowsDestroyed int
	surfacesCreated, surfacesDestroy int

	surface *fakeSurface
	title   string
	w, h    int
}

func (d *fakeDisplay) Init() error {
	if d.initErr != nil {
		return d.initErr
	}
	d.inits++
	return nil
}

func (d *fakeDisplay) CreateWindow(title string, w, h int) (Window, error) {
	if d.windowErr != nil {
		return nil, d.windowErr
	}
	d.windowsCreated++
	d.title, d.w, d.h = title, w, h
	return &fakeWindow{d: d}, nil
}

func (d *fakeDisplay) CreateSurface(w Window) (Surface, error) {
	if d.surfaceErr != nil {
		return nil, d.surfaceErr
	}
	d.surfacesCreated++
	d.surface = &fakeSurface{d: d, frames: d.frames, failAt: d.failAt}
	return d.surface, nil
}

func (d *fakeDisplay) Quit() {
	d.quits++
}

type fakeWindow struct {
	d *fakeDisplay
}

func (w *fakeWindow) Destroy() {
	w.d.windowsDestroyed++
}

type fill struct {
	r Rect
	c RGBA
}

type fakeSurface struct {
	d      *fakeDisplay
	frames [][]Event
	queue  []Event
	failAt int

	clears   []RGBA
	fills    []fill
	presents int
	polls    int
	ops      []string
}

var errFakeFill = errors.New("fill failed")

func (s *fakeSurface) Clear(c RGBA) error {
	s.clears = append(s.clears, c)
	s.ops = append(s.ops, "clear")
	// Load the events for this frame
	s.queue = nil
	if len(s.frames) > 0 {
		s.queue, s.frames = s.frames[0], s.frames[1:]
	}
	return nil
}

func (s *fakeSurface) FillRect(r Rect, c RGBA) error {
	s.fills = append(s.fills, fill{r, c})
	if s.failAt > 0 && len(s.fills) == s.failAt {
		return errFakeFill
	}
	if len(s.ops) == 0 || s.ops[len(s.ops)-1] != "fill" {
		s.ops = append(s.ops, "fill")
	}
	return nil
}

func (s *fakeSurface) Present() error {
	s.presents++
	s.ops = append(s.ops, "present")
	return nil
}

func (s *fakeSurface) PollEvent() (Event, bool) {
	s.polls++
	if len(s.queue) == 0 {
		if len(s.ops) == 0 || s.ops[len(s.ops)-1] != "poll" {
			s.ops = append(s.ops, "poll")
		}
		return Event{}, false
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev, true
}

func (s *fakeSurface) Destroy() {
	s.d.surfacesDestroy++
}
