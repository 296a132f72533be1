// Package widgets is the built-in widget set: buttons, labels, checkboxes,
// sliders, toggles, icons and spacers. Each widget is a short-lived value
// built fresh every frame and handed to ui.Add; application state lives in
// the variables the widgets point at.
package widgets

import (
	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/input"
	"github.com/hubastard/flint/style"
)

// State fingerprint words shared by the interactive widgets.
const (
	stateNormal uint64 = iota
	stateHover
	stateActive
	stateDisabled
)

// stateFor picks the widget state for this frame's interaction. The second
// result feeds the draw fingerprint, the third reports the pointer holding
// the widget down.
func stateFor[C gfx.Color](st *style.Style[C], i input.Interaction, disabled bool) (style.WidgetStyleElements[C], uint64, bool) {
	switch {
	case disabled:
		return st.Widget.Disabled, stateDisabled, false
	case i.Kind == input.Click || i.Kind == input.Drag:
		return st.Widget.Active, stateActive, true
	case i.Kind == input.Hover:
		return st.Widget.Hover, stateHover, false
	default:
		return st.Widget.Normal, stateNormal, false
	}
}
