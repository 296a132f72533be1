// Package style holds the visual parameters widgets consult to size and
// paint themselves: colors per interaction state, paddings, spacing and the
// font face. A Style is plain data; mutate it between widgets to restyle
// the rest of the frame.
package style

import (
	"golang.org/x/image/font"

	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/text"
)

// Spacing groups the fixed gaps and paddings of a layout.
type Spacing struct {
	// ItemSpacing separates widgets: W within a row, H between rows.
	ItemSpacing gfx.Size
	// ButtonPadding insets a button's label from its border.
	ButtonPadding gfx.Size
	// DefaultPadding insets content of plain widgets such as labels.
	DefaultPadding gfx.Size
	// WindowBorderPadding insets the whole layout from the display edge.
	WindowBorderPadding gfx.Size
}

// WidgetStyleElements is the look of one widget interaction state.
type WidgetStyleElements[C gfx.Color] struct {
	BorderWidth     int
	BorderColor     C
	BackgroundColor C
	ForegroundColor C
}

// WidgetStyle holds the look of a widget per interaction state.
type WidgetStyle[C gfx.Color] struct {
	Normal   WidgetStyleElements[C]
	Hover    WidgetStyleElements[C]
	Active   WidgetStyleElements[C]
	Disabled WidgetStyleElements[C]
}

// Style is the full parameter set for one display's UI.
type Style[C gfx.Color] struct {
	BackgroundColor     C
	DefaultWidgetHeight int
	Font                font.Face
	Spacing             Spacing
	Widget              WidgetStyle[C]
}

func mediumSpacing() Spacing {
	return Spacing{
		ItemSpacing:         gfx.Sz(8, 4),
		ButtonPadding:       gfx.Sz(5, 5),
		DefaultPadding:      gfx.Sz(1, 1),
		WindowBorderPadding: gfx.Sz(3, 3),
	}
}

// DarkRGB565 is the default style for 16-bit panels: light text on a dark
// background, borderless widgets.
func DarkRGB565() *Style[gfx.RGB565] {
	return &Style[gfx.RGB565]{
		BackgroundColor:     gfx.Black565,
		DefaultWidgetHeight: 16,
		Font:                text.Default(),
		Spacing:             mediumSpacing(),
		Widget: WidgetStyle[gfx.RGB565]{
			Normal: WidgetStyleElements[gfx.RGB565]{
				BorderColor:     gfx.Gray565,
				BackgroundColor: gfx.NewRGB565(68, 68, 68),
				ForegroundColor: gfx.White565,
			},
			Hover: WidgetStyleElements[gfx.RGB565]{
				BorderColor:     gfx.Gray565,
				BackgroundColor: gfx.NewRGB565(96, 96, 96),
				ForegroundColor: gfx.White565,
			},
			Active: WidgetStyleElements[gfx.RGB565]{
				BorderColor:     gfx.White565,
				BackgroundColor: gfx.NewRGB565(36, 36, 36),
				ForegroundColor: gfx.White565,
			},
			Disabled: WidgetStyleElements[gfx.RGB565]{
				BorderColor:     gfx.NewRGB565(60, 60, 60),
				BackgroundColor: gfx.NewRGB565(48, 48, 48),
				ForegroundColor: gfx.Gray565,
			},
		},
	}
}

// LightRGB565 is dark text on a light background with thin borders.
func LightRGB565() *Style[gfx.RGB565] {
	return &Style[gfx.RGB565]{
		BackgroundColor:     gfx.White565,
		DefaultWidgetHeight: 16,
		Font:                text.Default(),
		Spacing:             mediumSpacing(),
		Widget: WidgetStyle[gfx.RGB565]{
			Normal: WidgetStyleElements[gfx.RGB565]{
				BorderWidth:     1,
				BorderColor:     gfx.NewRGB565(160, 160, 160),
				BackgroundColor: gfx.NewRGB565(230, 230, 230),
				ForegroundColor: gfx.Black565,
			},
			Hover: WidgetStyleElements[gfx.RGB565]{
				BorderWidth:     1,
				BorderColor:     gfx.NewRGB565(120, 120, 120),
				BackgroundColor: gfx.NewRGB565(210, 210, 210),
				ForegroundColor: gfx.Black565,
			},
			Active: WidgetStyleElements[gfx.RGB565]{
				BorderWidth:     1,
				BorderColor:     gfx.Black565,
				BackgroundColor: gfx.NewRGB565(180, 180, 180),
				ForegroundColor: gfx.Black565,
			},
			Disabled: WidgetStyleElements[gfx.RGB565]{
				BorderWidth:     1,
				BorderColor:     gfx.NewRGB565(200, 200, 200),
				BackgroundColor: gfx.NewRGB565(240, 240, 240),
				ForegroundColor: gfx.Gray565,
			},
		},
	}
}

// DebugRGB565 makes every widget state loud and every border visible, for
// eyeballing layout and smartstate behavior on hardware.
func DebugRGB565() *Style[gfx.RGB565] {
	return &Style[gfx.RGB565]{
		BackgroundColor:     gfx.Black565,
		DefaultWidgetHeight: 16,
		Font:                text.Default(),
		Spacing: Spacing{
			ItemSpacing:         gfx.Sz(8, 4),
			ButtonPadding:       gfx.Sz(2, 2),
			DefaultPadding:      gfx.Sz(3, 3),
			WindowBorderPadding: gfx.Sz(3, 3),
		},
		Widget: WidgetStyle[gfx.RGB565]{
			Normal: WidgetStyleElements[gfx.RGB565]{
				BorderWidth:     1,
				BorderColor:     gfx.Green565,
				BackgroundColor: gfx.NewRGB565(0, 64, 0),
				ForegroundColor: gfx.White565,
			},
			Hover: WidgetStyleElements[gfx.RGB565]{
				BorderWidth:     1,
				BorderColor:     gfx.Cyan565,
				BackgroundColor: gfx.NewRGB565(0, 64, 64),
				ForegroundColor: gfx.White565,
			},
			Active: WidgetStyleElements[gfx.RGB565]{
				BorderWidth:     1,
				BorderColor:     gfx.Red565,
				BackgroundColor: gfx.NewRGB565(64, 0, 0),
				ForegroundColor: gfx.White565,
			},
			Disabled: WidgetStyleElements[gfx.RGB565]{
				BorderWidth:     1,
				BorderColor:     gfx.Gray565,
				BackgroundColor: gfx.NewRGB565(32, 32, 32),
				ForegroundColor: gfx.Gray565,
			},
		},
	}
}
