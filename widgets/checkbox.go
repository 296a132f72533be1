package widgets

import (
	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/input"
	"github.com/hubastard/flint/ui"
)

// Checkbox is a square toggle bound to a bool. It flips the bound value on
// the frame the pointer releases inside it and reports Changed that frame.
type Checkbox[C gfx.Color] struct {
	checked  *bool
	disabled bool
}

func NewCheckbox[C gfx.Color](checked *bool) *Checkbox[C] {
	return &Checkbox[C]{checked: checked}
}

func (c *Checkbox[C]) Disabled(d bool) *Checkbox[C] {
	c.disabled = d
	return c
}

func (c *Checkbox[C]) Draw(u *ui.Ui[C]) (ui.Response, error) {
	st := u.Style()
	side := st.DefaultWidgetHeight
	if h := u.RowHeight(); h > side {
		side = h
	}

	alloc, err := u.AllocateSpace(gfx.Sz(side, side))
	if err != nil {
		return ui.Response{}, err
	}

	resp := ui.Response{Area: alloc.Area, Interaction: alloc.Interaction}
	state, stateID, down := stateFor(st, alloc.Interaction, c.disabled)
	resp.Down = down
	if !c.disabled && alloc.Interaction.Kind == input.Release {
		*c.checked = !*c.checked
		resp.Click = true
		resp.Changed = true
	}

	checked := uint64(0)
	if *c.checked {
		checked = 1
	}
	fp := ui.Fingerprint(stateID, checked, ui.HashRect(alloc.Area))
	if !u.NextSmartstate().Update(fp) {
		return resp, nil
	}
	resp.Redraw = true

	u.StartDrawing(alloc.Area)
	p := u.Painter()
	p.FillRect(alloc.Area, state.BackgroundColor)
	bw := state.BorderWidth
	if bw == 0 {
		bw = 1
	}
	p.StrokeRect(alloc.Area, bw, state.BorderColor)
	if *c.checked {
		mark := alloc.Area.Inset(side/4, side/4)
		p.FillRect(mark, state.ForegroundColor)
	}
	if err := u.FinishDrawing(); err != nil {
		resp.Err = err
		return resp, err
	}
	return resp, nil
}
