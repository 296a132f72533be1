package ui

import (
	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/input"
)

// Allocation is the rectangle a widget was placed at together with the
// pointer interaction that applies to it this frame.
type Allocation struct {
	Area        gfx.Rect
	Interaction input.Interaction
}

// Response is what a widget reports back from its draw. The application
// reads it immediately; it is only valid for the frame it was produced in.
type Response struct {
	Area        gfx.Rect
	Interaction input.Interaction

	// Click is set on the frame the pointer was released inside the widget.
	Click bool
	// Down is set while the pointer is held on the widget.
	Down bool
	// Changed is set on frames the widget's value changed, e.g. a checkbox
	// toggled or a slider moved.
	Changed bool
	// Redraw is set when the widget actually repainted this frame.
	Redraw bool
	// Err carries the first draw failure, typically a *gfx.DrawError from
	// the display bus. Interaction fields stay meaningful regardless.
	Err error
}
