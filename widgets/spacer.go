package widgets

import (
	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/ui"
)

// Spacer claims layout space without painting. It consumes no smartstate
// slot, so it can be added or removed without skewing other widgets.
type Spacer[C gfx.Color] struct {
	size gfx.Size
}

func NewSpacer[C gfx.Color](size gfx.Size) Spacer[C] {
	return Spacer[C]{size: size}
}

func (s Spacer[C]) Draw(u *ui.Ui[C]) (ui.Response, error) {
	alloc, err := u.AllocateSpace(s.size)
	if err != nil {
		return ui.Response{}, err
	}
	return ui.Response{Area: alloc.Area, Interaction: alloc.Interaction}, nil
}
