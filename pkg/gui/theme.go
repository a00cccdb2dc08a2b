package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colors used to paint a frame
type Theme struct {
	Name        string
	Background  RGBA
	SquareDark  RGBA
	SquareLight RGBA
}

// ThemeHex is the config file form of a Theme. Colors are anything
// tcell.GetColor understands: "#rrggbb" or a color name such as "maroon".
type ThemeHex struct {
	Name        string `json:"name"`
	Background  string `json:"background"`
	SquareDark  string `json:"squareDark"`
	SquareLight string `json:"squareLight"`
}

// ThemeBasic is the default black and white theme
var ThemeBasic = Theme{
	Name:        "basic",
	Background:  RGBA{0, 0, 0, 0xff},
	SquareDark:  RGBA{0, 0, 0, 0xff},
	SquareLight: RGBA{0xff, 0xff, 0xff, 0xff},
}

// ThemeWood is a brown board closer to a real set
var ThemeWood = Theme{
	Name:        "wood",
	Background:  RGBA{0x1c, 0x1c, 0x1c, 0xff},
	SquareDark:  RGBA{0xb5, 0x88, 0x63, 0xff},
	SquareLight: RGBA{0xf0, 0xd9, 0xb5, 0xff},
}

var builtinThemes = []Theme{ThemeBasic, ThemeWood}

func fmtHex(c RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// parseColor converts a tcell color string to an opaque RGBA
func parseColor(s string) (RGBA, error) {
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return RGBA{}, fmt.Errorf("theme: unknown color %q", s)
	}
	r, g, b := c.RGB()
	return RGBA{uint8(r), uint8(g), uint8(b), 0xff}, nil
}

// Color converts c for use in a tcell style, dropping alpha
func (c RGBA) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		Name:        t.Name,
		Background:  fmtHex(t.Background),
		SquareDark:  fmtHex(t.SquareDark),
		SquareLight: fmtHex(t.SquareLight),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() (Theme, error) {
	th := Theme{Name: t.Name}
	var err error
	if th.Background, err = parseColor(t.Background); err != nil {
		return Theme{}, err
	}
	if th.SquareDark, err = parseColor(t.SquareDark); err != nil {
		return Theme{}, err
	}
	if th.SquareLight, err = parseColor(t.SquareLight); err != nil {
		return Theme{}, err
	}
	return th, nil
}

// ImportThemes returns the theme named want. Themes from the config take
// precedence over the built-in ones.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme()
		}
	}
	for _, t := range builtinThemes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrNoTheme, want)
}
