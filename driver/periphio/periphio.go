// Package periphio adapts any periph.io display.Drawer (SSD1306, ILI9341,
// ST7735 and friends) into a gfx.Target the UI core can draw on. Primitives
// rasterize into an in-memory staging image while a dirty rectangle grows
// around them; Flush pushes just that rectangle over the bus.
package periphio

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"

	"github.com/hubastard/flint/gfx"
)

// Target wraps a panel behind a staging buffer. It implements
// gfx.Target[color.RGBA]; the drawer's own color model converts on Draw.
// Not safe for concurrent use.
type Target struct {
	drawer display.Drawer
	stage  *image.RGBA
	dirty  image.Rectangle
	bounds gfx.Rect
}

// New wraps d. The staging image covers the full panel.
func New(d display.Drawer) *Target {
	b := d.Bounds()
	return &Target{
		drawer: d,
		stage:  image.NewRGBA(b),
		bounds: gfx.RectOf(b.Min.X, b.Min.Y, b.Dx(), b.Dy()),
	}
}

// Drawer returns the wrapped panel.
func (t *Target) Drawer() display.Drawer { return t.drawer }

// Flush pushes the pixels touched since the last Flush to the panel. Call
// it once per frame, after the last widget.
func (t *Target) Flush() error {
	if t.dirty.Empty() {
		return nil
	}
	// Dirty is kept on failure so the next Flush retries the same region.
	if err := t.drawer.Draw(t.dirty, t.stage, t.dirty.Min); err != nil {
		return fmt.Errorf("periphio: draw %v: %w", t.dirty, err)
	}
	t.dirty = image.Rectangle{}
	return nil
}

// Halt turns the panel off, releasing the bus.
func (t *Target) Halt() error {
	if err := t.drawer.Halt(); err != nil {
		return fmt.Errorf("periphio: halt: %w", err)
	}
	return nil
}

func (t *Target) Bounds() gfx.Rect { return t.bounds }

func (t *Target) FillRect(r gfx.Rect, c color.RGBA) error {
	ir := toImageRect(r).Intersect(t.stage.Rect)
	if ir.Empty() {
		return nil
	}
	draw.Draw(t.stage, ir, &image.Uniform{C: c}, image.Point{}, draw.Src)
	t.mark(ir)
	return nil
}

func (t *Target) StrokeRect(r gfx.Rect, width int, c color.RGBA) error {
	return gfx.StrokeRectOn[color.RGBA](t, r, width, c)
}

func (t *Target) Line(a, b gfx.Point, c color.RGBA) error {
	return gfx.LineOn[color.RGBA](t, a, b, c)
}

func (t *Target) SetPixel(p gfx.Point, c color.RGBA) error {
	pt := image.Pt(p.X, p.Y)
	if !pt.In(t.stage.Rect) {
		return nil
	}
	t.stage.SetRGBA(p.X, p.Y, c)
	t.mark(image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))})
	return nil
}

func (t *Target) Blit(r gfx.Rect, pix []color.RGBA) error {
	if len(pix) < r.Area() {
		return gfx.ErrBufferTooSmall
	}
	ir := toImageRect(r).Intersect(t.stage.Rect)
	if ir.Empty() {
		return nil
	}
	for y := ir.Min.Y; y < ir.Max.Y; y++ {
		src := (y-r.Y)*r.W + (ir.Min.X - r.X)
		for x := ir.Min.X; x < ir.Max.X; x++ {
			t.stage.SetRGBA(x, y, pix[src])
			src++
		}
	}
	t.mark(ir)
	return nil
}

func (t *Target) mark(r image.Rectangle) {
	if t.dirty.Empty() {
		t.dirty = r
		return
	}
	t.dirty = t.dirty.Union(r)
}

func toImageRect(r gfx.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}
