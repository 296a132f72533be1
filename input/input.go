// Package input models the single pointer sample a flint frame consumes.
// There is no event queue: once per frame the application polls its touch
// controller or encoder and hands the core one Pointer.
package input

import "github.com/hubastard/flint/gfx"

// Pointer is one input sample in device pixel coordinates.
type Pointer struct {
	X, Y    int
	Pressed bool
}

func (p Pointer) Point() gfx.Point { return gfx.Point{X: p.X, Y: p.Y} }

// Kind classifies an interaction for one frame.
type Kind uint8

const (
	// None means no interaction this frame.
	None Kind = iota
	// Click is the frame the pointer went down.
	Click
	// Drag means the pointer stayed down.
	Drag
	// Release is the frame the pointer came up.
	Release
	// Hover means the pointer is up; not applicable to touch panels.
	Hover
)

// Interaction is a classified pointer sample. Widgets compare At against
// their placed rectangle to build their Response.
type Interaction struct {
	Kind Kind
	At   gfx.Point
}

// Point returns the interaction position, ok=false for None.
func (i Interaction) Point() (gfx.Point, bool) {
	return i.At, i.Kind != None
}

// Pressed reports whether the pointer is or just went down.
func (i Interaction) Pressed() bool {
	return i.Kind == Click || i.Kind == Drag
}

// Tracker folds successive pointer samples into edge-aware interactions.
// It lives across frames, unlike the per-frame Ui.
type Tracker struct {
	last Pointer
}

// Update consumes the frame's sample and returns its classification. A
// release is reported at the position of the sample that released.
func (t *Tracker) Update(p Pointer) Interaction {
	prev := t.last
	t.last = p
	switch {
	case p.Pressed && !prev.Pressed:
		return Interaction{Kind: Click, At: p.Point()}
	case p.Pressed:
		return Interaction{Kind: Drag, At: p.Point()}
	case prev.Pressed:
		return Interaction{Kind: Release, At: p.Point()}
	default:
		return Interaction{Kind: Hover, At: p.Point()}
	}
}
