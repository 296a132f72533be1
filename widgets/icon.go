package widgets

import (
	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/ui"
)

// Bitmap is a 1-bit-per-pixel image, row-major, most significant bit first,
// rows padded to whole bytes. The usual source is a sprite exported from an
// image tool into a byte array.
type Bitmap struct {
	W, H int
	Bits []byte
}

// At reports whether the pixel at (x, y) is set. Out of range is unset.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	stride := (b.W + 7) / 8
	i := y*stride + x/8
	if i >= len(b.Bits) {
		return false
	}
	return b.Bits[i]>>(7-x%8)&1 == 1
}

// Icon draws a monochrome bitmap in the widget foreground color.
type Icon[C gfx.Color] struct {
	bmp Bitmap
}

func NewIcon[C gfx.Color](bmp Bitmap) *Icon[C] {
	return &Icon[C]{bmp: bmp}
}

func (ic *Icon[C]) Draw(u *ui.Ui[C]) (ui.Response, error) {
	st := u.Style()
	pad := st.Spacing.DefaultPadding
	size := gfx.Sz(ic.bmp.W+2*pad.W, ic.bmp.H+2*pad.H)

	alloc, err := u.AllocateSpace(size)
	if err != nil {
		return ui.Response{}, err
	}

	resp := ui.Response{Area: alloc.Area, Interaction: alloc.Interaction}
	fp := ui.Fingerprint(
		uint64(uint32(ic.bmp.W))|uint64(uint32(ic.bmp.H))<<32,
		ui.HashBytes(ic.bmp.Bits),
		ui.HashRect(alloc.Area),
	)
	if !u.NextSmartstate().Update(fp) {
		return resp, nil
	}
	resp.Redraw = true

	u.StartDrawing(alloc.Area)
	p := u.Painter()
	if !p.Buffered() {
		p.FillRect(alloc.Area, st.BackgroundColor)
	}
	origin := alloc.Area.Origin().Add(gfx.Pt(pad.W, pad.H))
	fg := st.Widget.Normal.ForegroundColor
	for y := 0; y < ic.bmp.H; y++ {
		for x := 0; x < ic.bmp.W; x++ {
			if ic.bmp.At(x, y) {
				p.SetPixel(origin.Add(gfx.Pt(x, y)), fg)
			}
		}
	}
	if err := u.FinishDrawing(); err != nil {
		resp.Err = err
		return resp, err
	}
	return resp, nil
}
