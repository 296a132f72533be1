package widgets

import (
	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/input"
	"github.com/hubastard/flint/ui"
)

// ToggleSwitch is a two-position switch bound to a bool, drawn as a 2:1
// pill with the knob on the side of the current state.
type ToggleSwitch[C gfx.Color] struct {
	on       *bool
	disabled bool
}

func NewToggleSwitch[C gfx.Color](on *bool) *ToggleSwitch[C] {
	return &ToggleSwitch[C]{on: on}
}

func (t *ToggleSwitch[C]) Disabled(d bool) *ToggleSwitch[C] {
	t.disabled = d
	return t
}

func (t *ToggleSwitch[C]) Draw(u *ui.Ui[C]) (ui.Response, error) {
	st := u.Style()
	h := st.DefaultWidgetHeight
	size := gfx.Sz(2*h, h)

	alloc, err := u.AllocateSpace(size)
	if err != nil {
		return ui.Response{}, err
	}
	area := alloc.Area

	resp := ui.Response{Area: area, Interaction: alloc.Interaction}
	state, stateID, down := stateFor(st, alloc.Interaction, t.disabled)
	resp.Down = down
	if !t.disabled && alloc.Interaction.Kind == input.Release {
		*t.on = !*t.on
		resp.Click = true
		resp.Changed = true
	}

	on := uint64(0)
	if *t.on {
		on = 1
	}
	fp := ui.Fingerprint(stateID, on, ui.HashRect(area))
	if !u.NextSmartstate().Update(fp) {
		return resp, nil
	}
	resp.Redraw = true

	u.StartDrawing(area)
	p := u.Painter()
	p.FillRect(area, state.BackgroundColor)
	bw := state.BorderWidth
	if bw == 0 {
		bw = 1
	}
	p.StrokeRect(area, bw, state.BorderColor)
	knob := gfx.RectOf(area.X, area.Y, area.W/2, area.H).Inset(2, 2)
	if *t.on {
		knob = knob.Translate(gfx.Pt(area.W-area.W/2, 0))
	}
	p.FillRect(knob, state.ForegroundColor)
	if err := u.FinishDrawing(); err != nil {
		resp.Err = err
		return resp, err
	}
	return resp, nil
}
