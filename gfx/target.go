package gfx

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall reports that a framebuffer cannot hold the requested
// area. It is not a failure of the drawing pipeline; callers fall back to
// drawing directly against the display.
var ErrBufferTooSmall = errors.New("gfx: buffer too small for area")

// DrawError wraps a failure reported by the underlying pixel target, e.g. a
// bus error on an SPI display. It is surfaced to the frame driver rather
// than swallowed, since it may indicate a hardware fault the application
// must react to.
type DrawError struct {
	Op  string
	Err error
}

func (e *DrawError) Error() string { return fmt.Sprintf("gfx: %s: %v", e.Op, e.Err) }
func (e *DrawError) Unwrap() error { return e.Err }

// Target is the minimal primitive vocabulary shared between the core and a
// concrete display driver. All coordinates are absolute device pixels.
// Implementations must be synchronous and clip silently; the only failures
// they report are I/O-level ones.
type Target[C Color] interface {
	// Bounds returns the drawable area of the target.
	Bounds() Rect
	// FillRect fills r with c.
	FillRect(r Rect, c C) error
	// StrokeRect outlines r with a border of the given width drawn inside r.
	StrokeRect(r Rect, width int, c C) error
	// Line draws a one pixel line from a to b.
	Line(a, b Point, c C) error
	// SetPixel sets a single pixel, used for glyph cells.
	SetPixel(p Point, c C) error
	// Blit copies a pre-rasterized block of len(pix) == r.W*r.H pixels,
	// in row-major order, onto r.
	Blit(r Rect, pix []C) error
}
