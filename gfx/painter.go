package gfx

import (
	"github.com/hubastard/flint/internal/logging"
)

// Painter routes primitives either straight to the display or into an
// attached scratch framebuffer that Finalize blits in one block transfer.
// It keeps the first error it sees and reports it from Finalize (and Err),
// so widget code can issue a run of primitives without checking each one.
type Painter[C Color] struct {
	target   Target[C]
	fb       *Framebuf[C] // optional
	buffered bool         // fb bound for the current widget
	err      error
}

func NewPainter[C Color](target Target[C]) *Painter[C] {
	return &Painter[C]{target: target}
}

// SetBuffer attaches a scratch framebuffer for subsequent widgets.
func (p *Painter[C]) SetBuffer(fb *Framebuf[C]) { p.fb = fb }

// Target returns the underlying display target.
func (p *Painter[C]) Target() Target[C] { return p.target }

// Buffered reports whether the current widget is drawing into the buffer.
func (p *Painter[C]) Buffered() bool { return p.buffered }

// Err returns the first primitive failure since the last Finalize.
func (p *Painter[C]) Err() error { return p.err }

// Sub returns a painter over the same display and buffer, for scoped
// sub-layouts. It must not be taken while a widget is mid-draw.
func (p *Painter[C]) Sub() *Painter[C] {
	return &Painter[C]{target: p.target, fb: p.fb}
}

// StartDrawing begins a widget draw over area. When a buffer is attached
// and the area fits, primitives go to the buffer until Finalize; otherwise
// they hit the display directly, which is functionally equivalent but not
// atomic.
func (p *Painter[C]) StartDrawing(area Rect) {
	p.err = nil
	p.buffered = false
	if p.fb == nil {
		return
	}
	if err := p.fb.Bind(area); err != nil {
		logging.Get().Debug("gfx: widget exceeds buffer, drawing direct",
			"area", area, "capacity", p.fb.Cap())
		return
	}
	p.buffered = true
}

// ClearBuffer fills the bound buffer region with c. It reports false when
// drawing direct, in which case the caller relies on the display's prior
// contents instead.
func (p *Painter[C]) ClearBuffer(c C) bool {
	if !p.buffered {
		return false
	}
	p.fb.Clear(c)
	return true
}

// Finalize flushes the buffer (when bound) and returns the first error of
// the whole widget draw.
func (p *Painter[C]) Finalize() error {
	if p.buffered {
		if err := p.fb.Flush(p.target); err != nil {
			p.fail("flush buffer", err)
		}
		p.fb.Release()
		p.buffered = false
	}
	err := p.err
	p.err = nil
	return err
}

func (p *Painter[C]) fail(op string, err error) {
	if p.err == nil && err != nil {
		p.err = &DrawError{Op: op, Err: err}
	}
}

func (p *Painter[C]) dst() Target[C] {
	if p.buffered {
		return p.fb
	}
	return p.target
}

// Painter implements Target so text and widget helpers draw through it
// without knowing whether a buffer is in play.

func (p *Painter[C]) Bounds() Rect { return p.target.Bounds() }

func (p *Painter[C]) FillRect(r Rect, c C) error {
	err := p.dst().FillRect(r, c)
	p.fail("fill rect", err)
	return err
}

func (p *Painter[C]) StrokeRect(r Rect, width int, c C) error {
	err := p.dst().StrokeRect(r, width, c)
	p.fail("stroke rect", err)
	return err
}

func (p *Painter[C]) Line(a, b Point, c C) error {
	err := p.dst().Line(a, b, c)
	p.fail("line", err)
	return err
}

func (p *Painter[C]) SetPixel(pt Point, c C) error {
	err := p.dst().SetPixel(pt, c)
	p.fail("set pixel", err)
	return err
}

func (p *Painter[C]) Blit(r Rect, pix []C) error {
	err := p.dst().Blit(r, pix)
	p.fail("blit", err)
	return err
}
