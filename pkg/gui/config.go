package gui

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/qnkhuat/xchess/pkg/board"
)

const (
	DefaultWindowW       = 960
	DefaultWindowH       = 960
	DefaultCellW         = 60
	DefaultCellH         = 120
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultTitle         = "Chess"
)

// Config describes the window and the grid painted into it. Square sizes are
// derived with floor division; leftover pixels on the right and bottom edges
// are left uncovered.
type Config struct {
	WindowW int
	WindowH int
	SquareW int
	SquareH int
	Files   int
	Ranks   int

	// Pixels covered by one terminal cell
	CellW int
	CellH int

	FrameInterval time.Duration
	Title         string
}

func NewConfig(windowW, windowH, files, ranks int) Config {
	cfg := Config{
		WindowW:       windowW,
		WindowH:       windowH,
		Files:         files,
		Ranks:         ranks,
		CellW:         DefaultCellW,
		CellH:         DefaultCellH,
		FrameInterval: DefaultFrameInterval,
		Title:         DefaultTitle,
	}
	if files > 0 {
		cfg.SquareW = windowW / files
	}
	if ranks > 0 {
		cfg.SquareH = windowH / ranks
	}
	return cfg
}

func DefaultConfig() Config {
	return NewConfig(DefaultWindowW, DefaultWindowH, board.Files, board.Ranks)
}

// Grid returns the board dimensions painted by the loop
func (c Config) Grid() board.Grid {
	return board.Grid{Files: c.Files, Ranks: c.Ranks}
}

func (c Config) String() string {
	return fmt.Sprintf("%d, %d\n%d %d", c.WindowW, c.WindowH, c.SquareW, c.SquareH)
}

func (c Config) Validate() error {
	switch {
	case c.WindowW <= 0 || c.WindowH <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.WindowW, c.WindowH)
	case c.Files <= 0 || c.Ranks <= 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Files, c.Ranks)
	case c.SquareW <= 0 || c.SquareH <= 0:
		return fmt.Errorf("%w: window %dx%d too small for %dx%d squares", ErrInvalidConfig, c.WindowW, c.WindowH, c.Files, c.Ranks)
	case c.CellW <= 0 || c.CellH <= 0:
		return fmt.Errorf("%w: cell %dx%d", ErrInvalidConfig, c.CellW, c.CellH)
	case c.FrameInterval < 0:
		return fmt.Errorf("%w: negative frame interval", ErrInvalidConfig)
	}
	return nil
}

// ConfigFile is the JSON document accepted by LoadConfig. Zero values keep
// the defaults.
type ConfigFile struct {
	WindowW         int        `json:"windowW"`
	WindowH         int        `json:"windowH"`
	Files           int        `json:"files"`
	Ranks           int        `json:"ranks"`
	CellW           int        `json:"cellW"`
	CellH           int        `json:"cellH"`
	FrameIntervalMs *int       `json:"frameIntervalMs"`
	Title           string     `json:"title"`
	Theme           string     `json:"theme"`
	Themes          []ThemeHex `json:"themes"`
}

// Resolve applies f on top of the defaults
func (f ConfigFile) Resolve() (Config, Theme, error) {
	def := DefaultConfig()
	pick := func(v, fallback int) int {
		if v == 0 {
			return fallback
		}
		return v
	}
	cfg := NewConfig(pick(f.WindowW, def.WindowW), pick(f.WindowH, def.WindowH), pick(f.Files, def.Files), pick(f.Ranks, def.Ranks))
	cfg.CellW = pick(f.CellW, def.CellW)
	cfg.CellH = pick(f.CellH, def.CellH)
	if f.FrameIntervalMs != nil {
		cfg.FrameInterval = time.Duration(*f.FrameIntervalMs) * time.Millisecond
	}
	if f.Title != "" {
		cfg.Title = f.Title
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, Theme{}, err
	}

	name := f.Theme
	if name == "" {
		name = ThemeBasic.Name
	}
	th, err := ImportThemes(name, f.Themes)
	if err != nil {
		return Config{}, Theme{}, err
	}
	return cfg, th, nil
}

// LoadConfig reads a ConfigFile from path
func LoadConfig(path string) (Config, Theme, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, Theme{}, err
	}
	var f ConfigFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Config{}, Theme{}, fmt.Errorf("%w: %s: %s", ErrInvalidConfig, path, err)
	}
	return f.Resolve()
}
