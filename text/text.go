// Package text measures and rasterizes strings through golang.org/x/image
// font faces. It draws monochrome: every glyph pixel with at least half
// coverage is set to the foreground color, everything else is left alone,
// which suits 16-bit panels without alpha.
package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/flint/gfx"
)

// Default returns the built-in 7x13 face, usable without any font assets.
func Default() font.Face { return basicfont.Face7x13 }

// Measure returns the pixel extent of s in face: total advance width by
// line height (ascent plus descent).
func Measure(face font.Face, s string) gfx.Size {
	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil()
	return gfx.Sz(w, (m.Ascent + m.Descent).Ceil())
}

// Draw renders s with its top-left corner at origin. Runes the face has no
// glyph for render as the replacement character. Pixels land on dst one at
// a time; dst clips anything outside its bounds.
func Draw[C gfx.Color](dst gfx.Target[C], face font.Face, s string, origin gfx.Point, col C) error {
	m := face.Metrics()
	x := fixed.I(origin.X)
	baseline := fixed.I(origin.Y) + m.Ascent

	var firstErr error
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			x += face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{X: x, Y: baseline}, r)
		if !ok {
			dr, mask, maskp, advance, ok = face.Glyph(fixed.Point26_6{X: x, Y: baseline}, '�')
			if !ok {
				prev = r
				continue
			}
		}
		for gy := dr.Min.Y; gy < dr.Max.Y; gy++ {
			for gx := dr.Min.X; gx < dr.Max.X; gx++ {
				_, _, _, a := mask.At(maskp.X+gx-dr.Min.X, maskp.Y+gy-dr.Min.Y).RGBA()
				if a < 0x8000 {
					continue
				}
				if err := dst.SetPixel(gfx.Pt(gx, gy), col); err != nil && firstErr == nil {
					firstErr = err
				}
			}
		}
		x += advance
		prev = r
	}
	return firstErr
}

// DrawCentered renders s centered inside area.
func DrawCentered[C gfx.Color](dst gfx.Target[C], face font.Face, s string, area gfx.Rect, col C) error {
	sz := Measure(face, s)
	origin := gfx.Pt(
		area.X+(area.W-sz.W)/2,
		area.Y+(area.H-sz.H)/2,
	)
	return Draw(dst, face, s, origin, col)
}
