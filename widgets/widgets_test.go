package widgets

import (
	"testing"

	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/input"
	"github.com/hubastard/flint/style"
	"github.com/hubastard/flint/ui"
)

func frame(disp *gfx.Display[gfx.RGB565], sp *ui.Provider, in input.Interaction) *ui.Ui[gfx.RGB565] {
	u := ui.NewFullscreen[gfx.RGB565](disp, style.DarkRGB565())
	u.SetSmartstates(sp)
	u.Interact(in)
	return u
}

func center(r gfx.Rect) gfx.Point {
	return gfx.Pt(r.X+r.W/2, r.Y+r.H/2)
}

func TestButtonClickOnRelease(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](240, 135)
	sp := ui.NewProvider(8)

	resp := frame(disp, sp, input.Interaction{}).Add(NewButton[gfx.RGB565]("OK"))
	if !resp.Redraw {
		t.Fatal("first frame did not paint the button")
	}
	if resp.Click {
		t.Fatal("click without any interaction")
	}
	at := center(resp.Area)

	resp = frame(disp, sp, input.Interaction{Kind: input.Click, At: at}).Add(NewButton[gfx.RGB565]("OK"))
	if !resp.Down {
		t.Fatal("press not reported as Down")
	}
	if resp.Click {
		t.Fatal("Click on press, want it on release")
	}
	if !resp.Redraw {
		t.Fatal("active state did not repaint")
	}

	resp = frame(disp, sp, input.Interaction{Kind: input.Release, At: at}).Add(NewButton[gfx.RGB565]("OK"))
	if !resp.Click {
		t.Fatal("release inside the button did not click")
	}

	// Release elsewhere never clicks.
	resp = frame(disp, sp, input.Interaction{Kind: input.Release, At: gfx.Pt(200, 100)}).Add(NewButton[gfx.RGB565]("OK"))
	if resp.Click {
		t.Fatal("release outside the button clicked")
	}
}

func TestButtonDisabled(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](240, 135)
	sp := ui.NewProvider(8)
	resp := frame(disp, sp, input.Interaction{}).Add(NewButton[gfx.RGB565]("OK").Disabled(true))
	at := center(resp.Area)
	resp = frame(disp, sp, input.Interaction{Kind: input.Release, At: at}).Add(NewButton[gfx.RGB565]("OK").Disabled(true))
	if resp.Click {
		t.Fatal("disabled button clicked")
	}
}

func TestButtonSizing(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](240, 135)
	sp := ui.NewProvider(8)
	short := frame(disp, sp, input.Interaction{}).Add(NewButton[gfx.RGB565]("a"))
	long := frame(disp, sp, input.Interaction{}).Add(NewButton[gfx.RGB565]("a longer label"))
	if long.Area.W <= short.Area.W {
		t.Fatalf("label length ignored: %d <= %d", long.Area.W, short.Area.W)
	}
	if short.Area.H < 16 {
		t.Fatalf("button height %d below default widget height", short.Area.H)
	}
}

func TestButtonSkipsUnchangedFrames(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](240, 135)
	sp := ui.NewProvider(8)
	frame(disp, sp, input.Interaction{}).Add(NewButton[gfx.RGB565]("OK"))
	resp := frame(disp, sp, input.Interaction{}).Add(NewButton[gfx.RGB565]("OK"))
	if resp.Redraw {
		t.Fatal("identical frame repainted")
	}
	resp = frame(disp, sp, input.Interaction{}).Add(NewButton[gfx.RGB565]("Cancel"))
	if !resp.Redraw {
		t.Fatal("label change did not repaint")
	}
}

func TestCheckboxToggles(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](240, 135)
	sp := ui.NewProvider(8)
	checked := false

	resp := frame(disp, sp, input.Interaction{}).Add(NewCheckbox[gfx.RGB565](&checked))
	if checked || resp.Changed {
		t.Fatal("checkbox toggled without interaction")
	}
	at := center(resp.Area)

	resp = frame(disp, sp, input.Interaction{Kind: input.Release, At: at}).Add(NewCheckbox[gfx.RGB565](&checked))
	if !checked {
		t.Fatal("release did not toggle")
	}
	if !resp.Changed || !resp.Click {
		t.Fatalf("Changed=%v Click=%v, want both", resp.Changed, resp.Click)
	}
	if !resp.Redraw {
		t.Fatal("toggle did not repaint")
	}

	resp = frame(disp, sp, input.Interaction{Kind: input.Release, At: at}).Add(NewCheckbox[gfx.RGB565](&checked))
	if checked {
		t.Fatal("second release did not toggle back")
	}
	if !resp.Changed {
		t.Fatal("second toggle not reported")
	}
}

func TestSliderDrag(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](240, 135)
	sp := ui.NewProvider(8)
	value := 0

	resp := frame(disp, sp, input.Interaction{}).Add(NewSlider[gfx.RGB565](&value, 0, 100))
	if value != 0 {
		t.Fatalf("value moved to %d without interaction", value)
	}
	area := resp.Area

	mid := center(area)
	resp = frame(disp, sp, input.Interaction{Kind: input.Drag, At: mid}).Add(NewSlider[gfx.RGB565](&value, 0, 100))
	if !resp.Changed {
		t.Fatal("drag did not change the value")
	}
	if value < 40 || value > 60 {
		t.Fatalf("mid-track drag gave %d, want about 50", value)
	}

	right := gfx.Pt(area.Right()-1, mid.Y)
	frame(disp, sp, input.Interaction{Kind: input.Drag, At: right}).Add(NewSlider[gfx.RGB565](&value, 0, 100))
	if value != 100 {
		t.Fatalf("right edge drag gave %d, want 100", value)
	}

	left := gfx.Pt(area.X, mid.Y)
	frame(disp, sp, input.Interaction{Kind: input.Drag, At: left}).Add(NewSlider[gfx.RGB565](&value, 0, 100))
	if value != 0 {
		t.Fatalf("left edge drag gave %d, want 0", value)
	}
}

func TestSliderClampsBoundValue(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](240, 135)
	sp := ui.NewProvider(8)
	value := 999
	frame(disp, sp, input.Interaction{}).Add(NewSlider[gfx.RGB565](&value, 0, 100))
	if value != 100 {
		t.Fatalf("out-of-range value clamped to %d, want 100", value)
	}
}

func TestToggleSwitch(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](240, 135)
	sp := ui.NewProvider(8)
	on := false

	resp := frame(disp, sp, input.Interaction{}).Add(NewToggleSwitch[gfx.RGB565](&on))
	if resp.Area.W != 2*resp.Area.H {
		t.Fatalf("toggle is %+v, want a 2:1 pill", resp.Area.Size())
	}
	at := center(resp.Area)
	resp = frame(disp, sp, input.Interaction{Kind: input.Release, At: at}).Add(NewToggleSwitch[gfx.RGB565](&on))
	if !on || !resp.Changed {
		t.Fatalf("on=%v Changed=%v, want toggled", on, resp.Changed)
	}
}

func TestLabelRepaintsOnTextChange(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](240, 135)
	sp := ui.NewProvider(8)
	if resp := frame(disp, sp, input.Interaction{}).Add(NewLabel[gfx.RGB565]("12 V")); !resp.Redraw {
		t.Fatal("first frame did not paint")
	}
	if resp := frame(disp, sp, input.Interaction{}).Add(NewLabel[gfx.RGB565]("12 V")); resp.Redraw {
		t.Fatal("unchanged label repainted")
	}
	if resp := frame(disp, sp, input.Interaction{}).Add(NewLabel[gfx.RGB565]("13 V")); !resp.Redraw {
		t.Fatal("changed label did not repaint")
	}
}

func TestSpacerConsumesNoSmartstate(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](240, 135)
	sp := ui.NewProvider(8)

	u := frame(disp, sp, input.Interaction{})
	u.Add(NewLabel[gfx.RGB565]("a"))
	u.Add(NewSpacer[gfx.RGB565](gfx.Sz(0, 10)))
	u.Add(NewLabel[gfx.RGB565]("b"))
	if got := sp.Position(); got != 2 {
		t.Fatalf("smartstates consumed = %d, want 2", got)
	}

	// Same tree again: both labels skip.
	u = frame(disp, sp, input.Interaction{})
	if resp := u.Add(NewLabel[gfx.RGB565]("a")); resp.Redraw {
		t.Fatal("label a repainted")
	}
	u.Add(NewSpacer[gfx.RGB565](gfx.Sz(0, 10)))
	if resp := u.Add(NewLabel[gfx.RGB565]("b")); resp.Redraw {
		t.Fatal("label b repainted")
	}
}

func TestIconDraws(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](240, 135)
	sp := ui.NewProvider(8)
	// 8x2, top row set.
	bmp := Bitmap{W: 8, H: 2, Bits: []byte{0xFF, 0x00}}

	resp := frame(disp, sp, input.Interaction{}).Add(NewIcon[gfx.RGB565](bmp))
	if !resp.Redraw {
		t.Fatal("icon did not paint")
	}
	pad := style.DarkRGB565().Spacing.DefaultPadding
	fg := style.DarkRGB565().Widget.Normal.ForegroundColor
	for x := 0; x < 8; x++ {
		if got := disp.At(resp.Area.X+pad.W+x, resp.Area.Y+pad.H); got != fg {
			t.Fatalf("icon pixel %d = %04x, want foreground", x, got)
		}
	}
	if got := disp.At(resp.Area.X+pad.W, resp.Area.Y+pad.H+1); got == fg {
		t.Fatal("unset bitmap row painted")
	}

	if resp := frame(disp, sp, input.Interaction{}).Add(NewIcon[gfx.RGB565](bmp)); resp.Redraw {
		t.Fatal("unchanged icon repainted")
	}
}

func TestBitmapAt(t *testing.T) {
	bmp := Bitmap{W: 10, H: 2, Bits: []byte{0x80, 0x40, 0x01, 0x80}}
	if !bmp.At(0, 0) {
		t.Fatal("bit (0,0) unset")
	}
	if bmp.At(1, 0) {
		t.Fatal("bit (1,0) set")
	}
	if !bmp.At(9, 0) {
		t.Fatal("bit (9,0) unset, second byte not read")
	}
	if !bmp.At(7, 1) {
		t.Fatal("bit (7,1) unset, row stride wrong")
	}
	if bmp.At(-1, 0) || bmp.At(10, 0) || bmp.At(0, 2) {
		t.Fatal("out of range reads as set")
	}
}
