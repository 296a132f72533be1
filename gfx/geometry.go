package gfx

// Point is a position in device pixel coordinates.
type Point struct{ X, Y int }

func Pt(x, y int) Point { return Point{x, y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Size is a widget extent in pixels. Negative extents are treated as empty.
type Size struct{ W, H int }

func Sz(w, h int) Size { return Size{w, h} }

func (s Size) Area() int   { return s.W * s.H }
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// Width and height are never negative in rectangles produced by this package.
type Rect struct{ X, Y, W, H int }

func RectOf(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{x, y, w, h}
}

// RectAt places size at origin.
func RectAt(origin Point, size Size) Rect {
	return RectOf(origin.X, origin.Y, size.W, size.H)
}

func (r Rect) Origin() Point { return Point{r.X, r.Y} }
func (r Rect) Size() Size    { return Size{r.W, r.H} }
func (r Rect) Right() int    { return r.X + r.W }
func (r Rect) Bottom() int   { return r.Y + r.H }
func (r Rect) Area() int     { return r.W * r.H }
func (r Rect) Empty() bool   { return r.W <= 0 || r.H <= 0 }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

func (r Rect) Translate(d Point) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.W, r.H}
}

// Inset shrinks the rectangle by dx horizontally and dy vertically on every
// side, collapsing to an empty rectangle instead of inverting.
func (r Rect) Inset(dx, dy int) Rect {
	return RectOf(r.X+dx, r.Y+dy, r.W-2*dx, r.H-2*dy)
}

// Intersect returns the overlap of r and o, which may be empty.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	return RectOf(x0, y0, x1-x0, y1-y0)
}

// In reports whether r is fully contained in o. Empty rectangles are in
// everything.
func (r Rect) In(o Rect) bool {
	if r.Empty() {
		return true
	}
	return r.X >= o.X && r.Y >= o.Y && r.Right() <= o.Right() && r.Bottom() <= o.Bottom()
}
