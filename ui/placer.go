package ui

import (
	"errors"

	"github.com/hubastard/flint/gfx"
)

// ErrNoSpaceLeft reports that a widget does not fit in the vertical space
// remaining below the current layout cursor.
var ErrNoSpaceLeft = errors.New("ui: no space left")

// Placer turns the per-frame sequence of widget extents into
// non-overlapping rectangles. Widgets stack top to bottom, one per row; a
// continuation joins the current row to the right of the previous widget
// and wraps to a fresh row when it does not fit. Rows never interleave: a
// new row always starts below the tallest widget of the one before it.
type Placer struct {
	bounds    gfx.Rect
	gap       gfx.Size // horizontal between row-mates, vertical between rows
	nextX     int      // x of the next continuation slot in the current row
	rowTop    int
	rowHeight int
	inRow     bool
	centered  bool
}

// NewPlacer lays out over bounds with the given inter-widget gap.
func NewPlacer(bounds gfx.Rect, gap gfx.Size) *Placer {
	return &Placer{bounds: bounds, gap: gap, nextX: bounds.X, rowTop: bounds.Y}
}

// Allocate claims a rectangle of the given size. A widget wider than the
// layout bounds is placed anyway and clips at draw time; only vertical
// exhaustion fails. After ErrNoSpaceLeft the placer stays usable, but every
// allocation taller than the remaining space keeps failing.
func (p *Placer) Allocate(size gfx.Size, continuation bool) (gfx.Rect, error) {
	if continuation && p.inRow && p.nextX+size.W <= p.bounds.Right() {
		return p.place(p.nextX, size)
	}
	if p.inRow {
		p.rowTop += p.rowHeight + p.gap.H
		p.rowHeight = 0
		p.inRow = false
	}
	x := p.bounds.X
	if p.centered && size.W < p.bounds.W {
		x += (p.bounds.W - size.W) / 2
	}
	p.nextX = p.bounds.X
	return p.place(x, size)
}

// SetCentered makes row-starting allocations center horizontally instead of
// left-aligning until switched back off.
func (p *Placer) SetCentered(on bool) { p.centered = on }

func (p *Placer) place(x int, size gfx.Size) (gfx.Rect, error) {
	r := gfx.RectAt(gfx.Pt(x, p.rowTop), size)
	if r.Bottom() > p.bounds.Bottom() {
		return gfx.Rect{}, ErrNoSpaceLeft
	}
	p.nextX = r.Right() + p.gap.W
	if size.H > p.rowHeight {
		p.rowHeight = size.H
	}
	p.inRow = true
	return r, nil
}

// NewRow ends the current row and opens a fresh one of the given initial
// height. The next continuation joins the fresh row at its left edge; the
// next regular allocation starts below it, so NewRow with no widget in
// between acts as a vertical skip.
func (p *Placer) NewRow(height int) {
	if p.inRow {
		p.rowTop += p.rowHeight + p.gap.H
	}
	p.rowHeight = height
	p.nextX = p.bounds.X
	p.inRow = height > 0
}

// RowHeight returns the height of the current row so far.
func (p *Placer) RowHeight() int { return p.rowHeight }

// ExpandRowHeight grows the current row to at least height, for widgets
// that size themselves to their row after allocation.
func (p *Placer) ExpandRowHeight(height int) {
	if height > p.rowHeight {
		p.rowHeight = height
	}
}

// SpaceAvailable returns the width left in the current row and the height
// left from the top of the current row to the bottom of the bounds.
func (p *Placer) SpaceAvailable() gfx.Size {
	w := p.bounds.Right() - p.nextX
	if !p.inRow {
		w = p.bounds.W
	}
	if w < 0 {
		w = 0
	}
	h := p.bounds.Bottom() - p.rowTop
	if h < 0 {
		h = 0
	}
	return gfx.Sz(w, h)
}

// Bounds returns the area the placer lays out over.
func (p *Placer) Bounds() gfx.Rect { return p.bounds }

// SetBounds narrows or widens the layout area mid-frame. The cursor is not
// moved; side panels use this to fence off a column before laying it out
// separately.
func (p *Placer) SetBounds(r gfx.Rect) { p.bounds = r }

// Cursor returns the top-left corner of the next regular allocation.
func (p *Placer) Cursor() gfx.Point {
	y := p.rowTop
	if p.inRow {
		y += p.rowHeight + p.gap.H
	}
	return gfx.Pt(p.bounds.X, y)
}
