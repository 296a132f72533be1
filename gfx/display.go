package gfx

// Display is an in-memory software display. It is the reference Target
// implementation: drivers for real hardware behave like a Display whose
// Blit is a bus transaction. It never fails.
type Display[C Color] struct {
	w, h int
	pix  []C
}

func NewDisplay[C Color](w, h int) *Display[C] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Display[C]{w: w, h: h, pix: make([]C, w*h)}
}

func (d *Display[C]) Bounds() Rect { return Rect{0, 0, d.w, d.h} }

// Pix exposes the backing pixels in row-major order.
func (d *Display[C]) Pix() []C { return d.pix }

// At returns the pixel at (x, y), or the zero color when out of bounds.
func (d *Display[C]) At(x, y int) C {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		var zero C
		return zero
	}
	return d.pix[y*d.w+x]
}

// Fill sets every pixel to c.
func (d *Display[C]) Fill(c C) {
	for i := range d.pix {
		d.pix[i] = c
	}
}

func (d *Display[C]) SetPixel(p Point, c C) error {
	if p.X < 0 || p.X >= d.w || p.Y < 0 || p.Y >= d.h {
		return nil
	}
	d.pix[p.Y*d.w+p.X] = c
	return nil
}

func (d *Display[C]) FillRect(r Rect, c C) error {
	r = r.Intersect(d.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		row := d.pix[y*d.w+r.X : y*d.w+r.Right()]
		for i := range row {
			row[i] = c
		}
	}
	return nil
}

func (d *Display[C]) StrokeRect(r Rect, width int, c C) error {
	return StrokeRectOn[C](d, r, width, c)
}

func (d *Display[C]) Line(a, b Point, c C) error {
	return LineOn[C](d, a, b, c)
}

func (d *Display[C]) Blit(r Rect, pix []C) error {
	if len(pix) < r.Area() {
		return ErrBufferTooSmall
	}
	clipped := r.Intersect(d.Bounds())
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		srcOff := (y-r.Y)*r.W + (clipped.X - r.X)
		dstOff := y*d.w + clipped.X
		copy(d.pix[dstOff:dstOff+clipped.W], pix[srcOff:srcOff+clipped.W])
	}
	return nil
}

// StrokeRectOn outlines r on t as four filled strips, collapsing to a full
// fill when the border would overlap itself. Drivers use it so every target
// rasterizes borders identically.
func StrokeRectOn[C Color](t Target[C], r Rect, width int, c C) error {
	if r.Empty() || width <= 0 {
		return nil
	}
	if width*2 >= r.W || width*2 >= r.H {
		return t.FillRect(r, c)
	}
	if err := t.FillRect(Rect{r.X, r.Y, r.W, width}, c); err != nil {
		return err
	}
	if err := t.FillRect(Rect{r.X, r.Bottom() - width, r.W, width}, c); err != nil {
		return err
	}
	if err := t.FillRect(Rect{r.X, r.Y + width, width, r.H - 2*width}, c); err != nil {
		return err
	}
	return t.FillRect(Rect{r.Right() - width, r.Y + width, width, r.H - 2*width}, c)
}

// LineOn walks the integer Bresenham line from a to b on t.
func LineOn[C Color](t Target[C], a, b Point, c C) error {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	for {
		if e := t.SetPixel(a, c); e != nil {
			return e
		}
		if a == b {
			return nil
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			a.X += sx
		}
		if e2 <= dx {
			err += dx
			a.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
