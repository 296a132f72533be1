package widgets

import (
	"golang.org/x/image/font"

	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/text"
	"github.com/hubastard/flint/ui"
)

// Label is static text sized to its content plus the default padding. It
// repaints only when its text or placement moves.
type Label[C gfx.Color] struct {
	text string
	font font.Face
}

func NewLabel[C gfx.Color](s string) *Label[C] {
	return &Label[C]{text: s}
}

// Font overrides the style font for this label only.
func (l *Label[C]) Font(f font.Face) *Label[C] {
	l.font = f
	return l
}

func (l *Label[C]) Draw(u *ui.Ui[C]) (ui.Response, error) {
	st := u.Style()
	face := l.font
	if face == nil {
		face = st.Font
	}
	pad := st.Spacing.DefaultPadding
	txt := text.Measure(face, l.text)
	size := gfx.Sz(txt.W+2*pad.W, txt.H+2*pad.H)

	alloc, err := u.AllocateSpace(size)
	if err != nil {
		return ui.Response{}, err
	}

	resp := ui.Response{Area: alloc.Area, Interaction: alloc.Interaction}
	fp := ui.Fingerprint(ui.HashString(l.text), ui.HashRect(alloc.Area))
	if !u.NextSmartstate().Update(fp) {
		return resp, nil
	}
	resp.Redraw = true

	u.StartDrawing(alloc.Area)
	p := u.Painter()
	if !p.Buffered() {
		// Direct draws must wipe the old text themselves.
		p.FillRect(alloc.Area, st.BackgroundColor)
	}
	origin := alloc.Area.Origin().Add(gfx.Pt(pad.W, pad.H))
	text.Draw(p, face, l.text, origin, st.Widget.Normal.ForegroundColor)
	if err := u.FinishDrawing(); err != nil {
		resp.Err = err
		return resp, err
	}
	return resp, nil
}
