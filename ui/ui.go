// Package ui is the immediate-mode frame orchestrator. An application
// builds a Ui over its display once per frame, feeds it the frame's pointer
// interaction, and adds widgets in a fixed order; the Ui places each widget,
// consults its smartstate, and paints it through the shared painter.
package ui

import (
	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/input"
	"github.com/hubastard/flint/style"
)

// Widget is anything that can size, place and paint itself through a Ui.
// Draw runs at most once per frame per widget value.
type Widget[C gfx.Color] interface {
	Draw(ui *Ui[C]) (Response, error)
}

// alwaysRedraw is handed to widgets when no smartstate pool is attached.
// Its sentinel flag keeps Update from ever storing a fingerprint.
var alwaysRedraw = Smartstate{sentinel: true}

// Ui drives one frame. It is cheap to build and must not outlive the frame;
// only the smartstate Provider and the Framebuf carry state across frames.
type Ui[C gfx.Color] struct {
	painter *gfx.Painter[C]
	placer  *Placer
	smart   *Provider
	style   *style.Style[C]
	inter   input.Interaction

	horizontal bool // next allocation joins the current row
	cleared    bool
	debug      *C
}

// New builds a frame over target, laying out inside the target bounds inset
// by the style's window border padding.
func New[C gfx.Color](target gfx.Target[C], st *style.Style[C]) *Ui[C] {
	pad := st.Spacing.WindowBorderPadding
	return newUi(target, st, target.Bounds().Inset(pad.W, pad.H))
}

// NewFullscreen is New without the window border inset.
func NewFullscreen[C gfx.Color](target gfx.Target[C], st *style.Style[C]) *Ui[C] {
	return newUi(target, st, target.Bounds())
}

func newUi[C gfx.Color](target gfx.Target[C], st *style.Style[C], bounds gfx.Rect) *Ui[C] {
	return &Ui[C]{
		painter: gfx.NewPainter(target),
		placer:  NewPlacer(bounds, st.Spacing.ItemSpacing),
		style:   st,
	}
}

// Interact feeds the frame's pointer interaction. Call it before adding
// widgets; widgets added earlier never see it.
func (u *Ui[C]) Interact(i input.Interaction) { u.inter = i }

// Style returns the live style; mutating it affects the rest of the frame.
func (u *Ui[C]) Style() *style.Style[C] { return u.style }

// SetStyle swaps the style for the rest of the frame.
func (u *Ui[C]) SetStyle(st *style.Style[C]) { u.style = st }

// SetBuffer attaches a scratch framebuffer so widgets paint in one blit.
func (u *Ui[C]) SetBuffer(fb *gfx.Framebuf[C]) { u.painter.SetBuffer(fb) }

// SetSmartstates attaches the persistent redraw-skip pool and rewinds its
// cursor for this frame. Without a pool every widget repaints every frame.
func (u *Ui[C]) SetSmartstates(p *Provider) {
	u.smart = p
	if p != nil {
		p.RestartCounter()
	}
}

// Smartstates returns the attached pool, or nil.
func (u *Ui[C]) Smartstates() *Provider { return u.smart }

// NextSmartstate hands the calling widget its slot in the pool. With no
// pool attached it returns a state that always reports a redraw.
func (u *Ui[C]) NextSmartstate() *Smartstate {
	if u.smart == nil {
		return &alwaysRedraw
	}
	return u.smart.Next()
}

// Add places w on its own row and draws it.
func (u *Ui[C]) Add(w Widget[C]) Response {
	u.horizontal = false
	return u.draw(w)
}

// AddHorizontal places w to the right of the previous widget, wrapping to a
// fresh row when it does not fit.
func (u *Ui[C]) AddHorizontal(w Widget[C]) Response {
	u.horizontal = true
	resp := u.draw(w)
	u.horizontal = false
	return resp
}

// AddCentered places w on its own row, centered horizontally.
func (u *Ui[C]) AddCentered(w Widget[C]) Response {
	u.horizontal = false
	u.placer.SetCentered(true)
	resp := u.draw(w)
	u.placer.SetCentered(false)
	return resp
}

func (u *Ui[C]) draw(w Widget[C]) Response {
	resp, err := w.Draw(u)
	if err != nil && resp.Err == nil {
		resp.Err = err
	}
	return resp
}

// AllocateSpace claims a rectangle for the calling widget and pairs it with
// the pointer interaction that hits it.
func (u *Ui[C]) AllocateSpace(size gfx.Size) (Allocation, error) {
	area, err := u.placer.Allocate(size, u.horizontal)
	if err != nil {
		return Allocation{}, err
	}
	if u.debug != nil {
		u.painter.Target().StrokeRect(area, 1, *u.debug)
	}
	return Allocation{Area: area, Interaction: u.CheckInteract(area)}, nil
}

// CheckInteract returns the frame interaction when it lands inside area,
// and a zero Interaction otherwise.
func (u *Ui[C]) CheckInteract(area gfx.Rect) input.Interaction {
	if pt, ok := u.inter.Point(); ok && area.Contains(pt) {
		return u.inter
	}
	return input.Interaction{}
}

// Painter returns the frame painter. Widgets draw through it between
// StartDrawing and FinishDrawing.
func (u *Ui[C]) Painter() *gfx.Painter[C] { return u.painter }

// StartDrawing begins a widget's paint over area. With a buffer attached the
// area is pre-filled with the style background, so widgets need not paint
// their empty space.
func (u *Ui[C]) StartDrawing(area gfx.Rect) {
	u.painter.StartDrawing(area)
	u.painter.ClearBuffer(u.style.BackgroundColor)
}

// FinishDrawing flushes the widget's pixels and returns the first draw
// failure of the whole widget paint.
func (u *Ui[C]) FinishDrawing() error { return u.painter.Finalize() }

// SubUI runs fn on a child frame that shares this frame's placer, pointer
// interaction and smartstate pool. Style changes and layout flags inside fn
// stay inside fn; allocations advance the parent's layout.
func (u *Ui[C]) SubUI(fn func(*Ui[C]) error) error {
	child := *u
	child.painter = u.painter.Sub()
	child.horizontal = false
	err := fn(&child)
	if child.cleared {
		u.cleared = true
	}
	return err
}

// Scoped runs fn on a child frame laying out over bounds with a fresh
// placer. The parent layout is untouched.
func (u *Ui[C]) Scoped(bounds gfx.Rect, fn func(*Ui[C]) error) error {
	child := *u
	child.painter = u.painter.Sub()
	child.placer = NewPlacer(bounds, u.placer.gap)
	child.horizontal = false
	err := fn(&child)
	if child.cleared {
		u.cleared = true
	}
	return err
}

// RightPanel fences off the rightmost width columns of the remaining layout
// area and runs fn over them; the parent keeps laying out to their left.
// When width exceeds the remaining area it is clamped if allowSmaller, and
// ErrNoSpaceLeft is returned otherwise.
func (u *Ui[C]) RightPanel(width int, allowSmaller bool, fn func(*Ui[C]) error) error {
	b := u.placer.Bounds()
	if width > b.W {
		if !allowSmaller {
			return ErrNoSpaceLeft
		}
		width = b.W
	}
	panel := gfx.RectOf(b.Right()-width, b.Y, width, b.H)
	u.placer.SetBounds(gfx.RectOf(b.X, b.Y, b.W-width, b.H))
	return u.Scoped(panel, fn)
}

// LeftPanel is RightPanel mirrored to the left edge.
func (u *Ui[C]) LeftPanel(width int, allowSmaller bool, fn func(*Ui[C]) error) error {
	b := u.placer.Bounds()
	if width > b.W {
		if !allowSmaller {
			return ErrNoSpaceLeft
		}
		width = b.W
	}
	panel := gfx.RectOf(b.X, b.Y, width, b.H)
	u.placer.SetBounds(gfx.RectOf(b.X+width, b.Y, b.W-width, b.H))
	return u.Scoped(panel, fn)
}

// CenterPanel runs fn over a size-sized area centered in the layout bounds,
// e.g. for modal dialogs. The parent layout is untouched.
func (u *Ui[C]) CenterPanel(size gfx.Size, fn func(*Ui[C]) error) error {
	b := u.placer.Bounds()
	r := gfx.RectAt(gfx.Pt(b.X+(b.W-size.W)/2, b.Y+(b.H-size.H)/2), size)
	return u.Scoped(r.Intersect(b), fn)
}

// ClearBackground wipes the whole display to the style background and
// forces every smartstate to repaint.
func (u *Ui[C]) ClearBackground() error {
	u.cleared = true
	if u.smart != nil {
		u.smart.ForceRedrawAll()
	}
	t := u.painter.Target()
	return t.FillRect(t.Bounds(), u.style.BackgroundColor)
}

// ClearArea wipes r to the style background. Smartstates of widgets under r
// are the caller's to invalidate.
func (u *Ui[C]) ClearArea(r gfx.Rect) error {
	u.cleared = true
	return u.painter.Target().FillRect(r, u.style.BackgroundColor)
}

// ClearRow wipes the current row band across the full layout width.
func (u *Ui[C]) ClearRow() error {
	b := u.placer.Bounds()
	return u.ClearArea(gfx.RectOf(b.X, u.placer.rowTop, b.W, u.placer.rowHeight))
}

// ClearRowToEnd wipes the current row from the next free slot to the right
// edge, e.g. before re-rendering a shrinking row.
func (u *Ui[C]) ClearRowToEnd() error {
	b := u.placer.Bounds()
	return u.ClearArea(gfx.RectOf(u.placer.nextX, u.placer.rowTop, b.Right()-u.placer.nextX, u.placer.rowHeight))
}

// ClearToBottom wipes everything from the top of the current row to the
// bottom of the layout bounds.
func (u *Ui[C]) ClearToBottom() error {
	b := u.placer.Bounds()
	return u.ClearArea(gfx.RectOf(b.X, u.placer.rowTop, b.W, b.Bottom()-u.placer.rowTop))
}

// Cleared reports whether any clear ran this frame.
func (u *Ui[C]) Cleared() bool { return u.cleared }

// NewRow skips to a fresh row of the default widget height.
func (u *Ui[C]) NewRow() { u.placer.NewRow(u.style.DefaultWidgetHeight) }

// NewRowSized skips to a fresh row of the given height.
func (u *Ui[C]) NewRowSized(height int) { u.placer.NewRow(height) }

// RowHeight returns the height of the current row so far.
func (u *Ui[C]) RowHeight() int { return u.placer.RowHeight() }

// ExpandRowHeight grows the current row to at least height.
func (u *Ui[C]) ExpandRowHeight(height int) { u.placer.ExpandRowHeight(height) }

// SpaceAvailable returns the space left in the current row and below it.
func (u *Ui[C]) SpaceAvailable() gfx.Size { return u.placer.SpaceAvailable() }

// Bounds returns the current layout area.
func (u *Ui[C]) Bounds() gfx.Rect { return u.placer.Bounds() }

// SetDebugColor outlines every allocation in c, straight onto the display.
func (u *Ui[C]) SetDebugColor(c C) { u.debug = &c }
