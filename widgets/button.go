package widgets

import (
	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/input"
	"github.com/hubastard/flint/text"
	"github.com/hubastard/flint/ui"
)

// Button is a push button sized to its label plus the style's button
// padding and border. It reports Click on the frame the pointer releases
// inside it.
type Button[C gfx.Color] struct {
	label    string
	disabled bool
}

func NewButton[C gfx.Color](label string) *Button[C] {
	return &Button[C]{label: label}
}

// Disabled greys the button out and suppresses clicks.
func (b *Button[C]) Disabled(d bool) *Button[C] {
	b.disabled = d
	return b
}

func (b *Button[C]) Draw(u *ui.Ui[C]) (ui.Response, error) {
	st := u.Style()
	pad := st.Spacing.ButtonPadding
	bw := st.Widget.Normal.BorderWidth
	txt := text.Measure(st.Font, b.label)
	size := gfx.Sz(txt.W+2*pad.W+2*bw, txt.H+2*pad.H+2*bw)
	if size.H < st.DefaultWidgetHeight {
		size.H = st.DefaultWidgetHeight
	}

	alloc, err := u.AllocateSpace(size)
	if err != nil {
		return ui.Response{}, err
	}

	resp := ui.Response{Area: alloc.Area, Interaction: alloc.Interaction}
	state, stateID, down := stateFor(st, alloc.Interaction, b.disabled)
	resp.Down = down
	if !b.disabled && alloc.Interaction.Kind == input.Release {
		resp.Click = true
	}

	fp := ui.Fingerprint(stateID, ui.HashString(b.label), ui.HashRect(alloc.Area))
	if !u.NextSmartstate().Update(fp) {
		return resp, nil
	}
	resp.Redraw = true

	u.StartDrawing(alloc.Area)
	p := u.Painter()
	p.FillRect(alloc.Area, state.BackgroundColor)
	if state.BorderWidth > 0 {
		p.StrokeRect(alloc.Area, state.BorderWidth, state.BorderColor)
	}
	inner := alloc.Area.Inset(state.BorderWidth, state.BorderWidth)
	text.DrawCentered(p, st.Font, b.label, inner, state.ForegroundColor)
	if err := u.FinishDrawing(); err != nil {
		resp.Err = err
		return resp, err
	}
	return resp, nil
}
