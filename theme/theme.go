// Package theme resolves named colors and blends between them.
package theme

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termgrid/terminal"
)

// ErrUnknownColor is returned for names neither tcell nor hex parsing accepts
var ErrUnknownColor = errors.New("unknown color")

// Palette holds every color the reference games draw with
type Palette struct {
	Frame      terminal.RGB
	Grid       terminal.RGB
	X          terminal.RGB
	O          terminal.RGB
	Text       terminal.RGB
	Button     terminal.RGB
	ButtonText terminal.RGB
	WinFrom    terminal.RGB
	WinTo      terminal.RGB
}

// Default returns the built-in palette
func Default() Palette {
	return Palette{
		Frame:      terminal.RGB{R: 135, G: 175, B: 255},
		Grid:       terminal.RGB{R: 88, G: 110, B: 117},
		X:          terminal.RGB{R: 255, G: 95, B: 95},
		O:          terminal.RGB{R: 95, G: 215, B: 255},
		Text:       terminal.RGB{R: 208, G: 208, B: 208},
		Button:     terminal.RGB{R: 48, G: 48, B: 64},
		ButtonText: terminal.RGBWhite,
		WinFrom:    terminal.RGB{R: 255, G: 215, B: 0},
		WinTo:      terminal.RGB{R: 255, G: 95, B: 0},
	}
}

// Parse resolves a W3C color name or #rrggbb value
func Parse(name string) (terminal.RGB, error) {
	c := tcell.GetColor(strings.ToLower(strings.TrimSpace(name)))
	if c == tcell.ColorDefault || !c.Valid() {
		return terminal.RGB{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	r, g, b := c.RGB()
	if r < 0 {
		return terminal.RGB{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Apply overrides palette entries from a name to color map
// Keys are matched case-insensitively: frame, grid, x, o, text, button, button_text, win_from, win_to
func (p *Palette) Apply(colors map[string]string) error {
	slots := map[string]*terminal.RGB{
		"frame":       &p.Frame,
		"grid":        &p.Grid,
		"x":           &p.X,
		"o":           &p.O,
		"text":        &p.Text,
		"button":      &p.Button,
		"button_text": &p.ButtonText,
		"win_from":    &p.WinFrom,
		"win_to":      &p.WinTo,
	}
	for key, value := range colors {
		slot, ok := slots[strings.ToLower(key)]
		if !ok {
			return fmt.Errorf("theme: unknown palette entry %q", key)
		}
		rgb, err := Parse(value)
		if err != nil {
			return fmt.Errorf("theme: %s: %w", key, err)
		}
		*slot = rgb
	}
	return nil
}

func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend interpolates from a to b in Lab space; t is clamped to [0,1]
func Blend(a, b terminal.RGB, t float64) terminal.RGB {
	t = math.Min(math.Max(t, 0), 1)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	r, g, bl := toColorful(a).BlendLab(toColorful(b), t).Clamped().RGB255()
	return terminal.RGB{R: r, G: g, B: bl}
}

// Pulse oscillates between a and b once every period frames, starting at a
func Pulse(a, b terminal.RGB, frame, period int) terminal.RGB {
	if period <= 0 {
		return a
	}
	phase := float64(frame%period) / float64(period)
	return Blend(a, b, (1-math.Cos(2*math.Pi*phase))/2)
}
