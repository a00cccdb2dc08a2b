package gui

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrRender        = errors.New("render failed")
	ErrSurfaceClosed = errors.New("surface closed")
	ErrForeignWindow = errors.New("window was not created by this display")
	ErrNoTheme       = errors.New("theme: no theme found")
)

// Stages of session startup
const (
	StageInit    = "initialize display"
	StageWindow  = "open window"
	StageSurface = "create renderer"
)

// InitError is returned when the display could not be brought up
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("couldn't %s: %s", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// RenderError is returned when the surface fails during a frame
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrRender, e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrRender as well as the surface error
func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}
