package widgets

import (
	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/ui"
)

// Slider drags an int across [min, max]. The bound value updates while the
// pointer is held anywhere on the track; Changed is set on frames the value
// actually moved.
type Slider[C gfx.Color] struct {
	value    *int
	min, max int
	width    int
	disabled bool
}

// NewSlider binds a slider to value. min must be below max; equal bounds
// pin the value to min.
func NewSlider[C gfx.Color](value *int, min, max int) *Slider[C] {
	if max < min {
		min, max = max, min
	}
	return &Slider[C]{value: value, min: min, max: max, width: 100}
}

// Width overrides the default 100 pixel track width.
func (s *Slider[C]) Width(w int) *Slider[C] {
	if w > 0 {
		s.width = w
	}
	return s
}

func (s *Slider[C]) Disabled(d bool) *Slider[C] {
	s.disabled = d
	return s
}

func (s *Slider[C]) Draw(u *ui.Ui[C]) (ui.Response, error) {
	st := u.Style()
	h := st.DefaultWidgetHeight

	alloc, err := u.AllocateSpace(gfx.Sz(s.width, h))
	if err != nil {
		return ui.Response{}, err
	}
	area := alloc.Area

	resp := ui.Response{Area: area, Interaction: alloc.Interaction}
	state, stateID, down := stateFor(st, alloc.Interaction, s.disabled)
	resp.Down = down

	knobW := h / 2
	if knobW < 4 {
		knobW = 4
	}
	span := area.W - knobW
	if down && !s.disabled && span > 0 && s.max > s.min {
		pt, _ := alloc.Interaction.Point()
		pos := pt.X - area.X - knobW/2
		v := s.min + (pos*(s.max-s.min)+span/2)/span
		v = clamp(v, s.min, s.max)
		if v != *s.value {
			*s.value = v
			resp.Changed = true
		}
	}
	*s.value = clamp(*s.value, s.min, s.max)

	fp := ui.Fingerprint(stateID, uint64(uint32(*s.value)), ui.HashRect(area))
	if !u.NextSmartstate().Update(fp) {
		return resp, nil
	}
	resp.Redraw = true

	u.StartDrawing(area)
	p := u.Painter()
	p.FillRect(area, state.BackgroundColor)
	if state.BorderWidth > 0 {
		p.StrokeRect(area, state.BorderWidth, state.BorderColor)
	}
	midY := area.Y + area.H/2
	p.Line(gfx.Pt(area.X+2, midY), gfx.Pt(area.Right()-3, midY), state.ForegroundColor)
	knobX := area.X
	if span > 0 && s.max > s.min {
		knobX += (*s.value - s.min) * span / (s.max - s.min)
	}
	p.FillRect(gfx.RectOf(knobX, area.Y+1, knobW, area.H-2), state.ForegroundColor)
	if err := u.FinishDrawing(); err != nil {
		resp.Err = err
		return resp, err
	}
	return resp, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
