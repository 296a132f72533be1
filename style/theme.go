package style

import (
	"fmt"
	"image/color"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/text"
)

// Theme is a compact, device-independent style description, loadable from
// YAML so boards can ship looks in a config file instead of code. Only four
// base colors are named; the per-state widget palette is derived.
type Theme struct {
	// Background, Surface, Text and Accent are "#rrggbb" hex colors:
	// the screen background, the widget body, the label color and the
	// highlight used for the active state.
	Background string `yaml:"background"`
	Surface    string `yaml:"surface"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`

	BorderWidth  int `yaml:"border_width"`
	WidgetHeight int `yaml:"widget_height"`

	Spacing struct {
		Item    [2]int `yaml:"item"`
		Button  [2]int `yaml:"button"`
		Default [2]int `yaml:"default"`
		Window  [2]int `yaml:"window"`
	} `yaml:"spacing"`
}

// DecodeTheme reads one YAML theme document.
func DecodeTheme(r io.Reader) (Theme, error) {
	var t Theme
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return Theme{}, fmt.Errorf("style: decode theme: %w", err)
	}
	return t, nil
}

// BuildStyle turns a theme into a ready Style for the device's color type.
// conv maps a working-space color to a device pixel; use RGB565Conv for
// 16-bit panels. Hover and active shades are blended from the base colors,
// so a theme stays four colors no matter the widget set.
func BuildStyle[C gfx.Color](t Theme, conv func(colorful.Color) C) (*Style[C], error) {
	bg, err := parseHex("background", t.Background)
	if err != nil {
		return nil, err
	}
	surface, err := parseHex("surface", t.Surface)
	if err != nil {
		return nil, err
	}
	fg, err := parseHex("text", t.Text)
	if err != nil {
		return nil, err
	}
	accent, err := parseHex("accent", t.Accent)
	if err != nil {
		return nil, err
	}

	hover := surface.BlendLab(fg, 0.15).Clamped()
	active := surface.BlendLab(accent, 0.35).Clamped()
	disabledBg := surface.BlendLab(bg, 0.5).Clamped()
	disabledFg := fg.BlendLab(surface, 0.5).Clamped()
	border := surface.BlendLab(fg, 0.4).Clamped()

	height := t.WidgetHeight
	if height <= 0 {
		height = 16
	}

	state := func(bg, fg, border colorful.Color) WidgetStyleElements[C] {
		return WidgetStyleElements[C]{
			BorderWidth:     t.BorderWidth,
			BorderColor:     conv(border),
			BackgroundColor: conv(bg),
			ForegroundColor: conv(fg),
		}
	}

	s := &Style[C]{
		BackgroundColor:     conv(bg),
		DefaultWidgetHeight: height,
		Font:                text.Default(),
		Spacing: Spacing{
			ItemSpacing:         sizeOr(t.Spacing.Item, gfx.Sz(8, 4)),
			ButtonPadding:       sizeOr(t.Spacing.Button, gfx.Sz(5, 5)),
			DefaultPadding:      sizeOr(t.Spacing.Default, gfx.Sz(1, 1)),
			WindowBorderPadding: sizeOr(t.Spacing.Window, gfx.Sz(3, 3)),
		},
		Widget: WidgetStyle[C]{
			Normal:   state(surface, fg, border),
			Hover:    state(hover, fg, border),
			Active:   state(active, fg, accent),
			Disabled: state(disabledBg, disabledFg, disabledBg),
		},
	}
	return s, nil
}

func parseHex(field, s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("style: theme %s: %w", field, err)
	}
	return c, nil
}

func sizeOr(v [2]int, def gfx.Size) gfx.Size {
	if v[0] <= 0 && v[1] <= 0 {
		return def
	}
	return gfx.Sz(v[0], v[1])
}

// RGB565Conv maps a working-space color onto a 16-bit pixel.
func RGB565Conv(c colorful.Color) gfx.RGB565 {
	r, g, b := c.RGB255()
	return gfx.NewRGB565(r, g, b)
}

// RGBAConv maps a working-space color onto an 8-bit RGBA pixel, for
// in-memory displays and tests.
func RGBAConv(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
