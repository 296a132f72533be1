package gfx

// Framebuf is a fixed-capacity scratch pixel buffer that a widget draws
// into before the result is blitted to the display in one block transfer.
// Allocate it once at startup and reuse it across widgets and frames; its
// contents are undefined between Bind calls and must be cleared before use.
type Framebuf[C Color] struct {
	buf   []C
	area  Rect // device-space area currently bound, valid when bound
	bound bool
}

// NewFramebuf allocates a framebuffer able to hold capacity pixels.
func NewFramebuf[C Color](capacity int) *Framebuf[C] {
	if capacity < 0 {
		capacity = 0
	}
	return FramebufOf[C](make([]C, capacity))
}

// FramebufOf wraps a caller-provided backing slice, e.g. a statically
// allocated array on memory-constrained targets.
func FramebufOf[C Color](buf []C) *Framebuf[C] {
	return &Framebuf[C]{buf: buf}
}

func (f *Framebuf[C]) Cap() int    { return len(f.buf) }
func (f *Framebuf[C]) Bound() bool { return f.bound }

// Area returns the device-space rectangle the buffer is bound to.
func (f *Framebuf[C]) Area() Rect { return f.area }

// Bind points the buffer at a device-space area. It returns
// ErrBufferTooSmall without binding when the area does not fit.
func (f *Framebuf[C]) Bind(area Rect) error {
	if area.Area() > len(f.buf) {
		return ErrBufferTooSmall
	}
	f.area = area
	f.bound = true
	return nil
}

// Release unbinds the buffer. Pixels are left as-is; the next Bind must not
// trust them.
func (f *Framebuf[C]) Release() { f.bound = false }

// Clear fills the bound region with c. Stale pixels from a previous, larger
// widget would otherwise leak into the blit.
func (f *Framebuf[C]) Clear(c C) {
	if !f.bound {
		return
	}
	px := f.buf[:f.area.Area()]
	for i := range px {
		px[i] = c
	}
}

// Flush blits the bound region to dst at its device position.
func (f *Framebuf[C]) Flush(dst Target[C]) error {
	if !f.bound {
		return nil
	}
	return dst.Blit(f.area, f.buf[:f.area.Area()])
}

// Framebuf is itself a Target so primitives rasterize into it unchanged.
// Coordinates stay absolute; pixels outside the bound area are dropped.

func (f *Framebuf[C]) Bounds() Rect {
	if !f.bound {
		return Rect{}
	}
	return f.area
}

func (f *Framebuf[C]) SetPixel(p Point, c C) error {
	if !f.bound || !f.area.Contains(p) {
		return nil
	}
	f.buf[(p.Y-f.area.Y)*f.area.W+(p.X-f.area.X)] = c
	return nil
}

func (f *Framebuf[C]) FillRect(r Rect, c C) error {
	if !f.bound {
		return nil
	}
	r = r.Intersect(f.area)
	for y := r.Y; y < r.Bottom(); y++ {
		off := (y-f.area.Y)*f.area.W + (r.X - f.area.X)
		row := f.buf[off : off+r.W]
		for i := range row {
			row[i] = c
		}
	}
	return nil
}

func (f *Framebuf[C]) StrokeRect(r Rect, width int, c C) error {
	return StrokeRectOn[C](f, r, width, c)
}

func (f *Framebuf[C]) Line(a, b Point, c C) error {
	return LineOn[C](f, a, b, c)
}

func (f *Framebuf[C]) Blit(r Rect, pix []C) error {
	if len(pix) < r.Area() {
		return ErrBufferTooSmall
	}
	if !f.bound {
		return nil
	}
	clipped := r.Intersect(f.area)
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		srcOff := (y-r.Y)*r.W + (clipped.X - r.X)
		dstOff := (y-f.area.Y)*f.area.W + (clipped.X - f.area.X)
		copy(f.buf[dstOff:dstOff+clipped.W], pix[srcOff:srcOff+clipped.W])
	}
	return nil
}
