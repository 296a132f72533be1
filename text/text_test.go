package text

import (
	"testing"

	"github.com/hubastard/flint/gfx"
)

func TestMeasure(t *testing.T) {
	face := Default() // 7x13 fixed width
	got := Measure(face, "abc")
	if got != gfx.Sz(21, 13) {
		t.Fatalf("Measure = %+v, want {21 13}", got)
	}
	if got := Measure(face, ""); got.W != 0 {
		t.Fatalf("empty string width = %d, want 0", got.W)
	}
}

func TestDrawStaysInsideMeasuredBox(t *testing.T) {
	face := Default()
	disp := gfx.NewDisplay[gfx.RGB565](64, 32)
	origin := gfx.Pt(10, 5)
	s := "Hi"
	if err := Draw[gfx.RGB565](disp, face, s, origin, gfx.White565); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	box := gfx.RectAt(origin, Measure(face, s))
	set := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if disp.At(x, y) != gfx.White565 {
				continue
			}
			set++
			if !box.Contains(gfx.Pt(x, y)) {
				t.Fatalf("glyph pixel (%d,%d) outside %+v", x, y, box)
			}
		}
	}
	if set == 0 {
		t.Fatal("Draw set no pixels")
	}
}

func TestDrawClipsAtEdges(t *testing.T) {
	disp := gfx.NewDisplay[gfx.RGB565](10, 10)
	// Mostly off-screen; must neither fail nor wrap around.
	if err := Draw[gfx.RGB565](disp, Default(), "wide text", gfx.Pt(-5, 7), gfx.White565); err != nil {
		t.Fatalf("Draw: %v", err)
	}
}

func TestDrawCentered(t *testing.T) {
	face := Default()
	disp := gfx.NewDisplay[gfx.RGB565](40, 20)
	area := gfx.RectOf(0, 0, 40, 20)
	if err := DrawCentered[gfx.RGB565](disp, face, "ab", area, gfx.White565); err != nil {
		t.Fatalf("DrawCentered: %v", err)
	}

	sz := Measure(face, "ab")
	want := gfx.RectAt(gfx.Pt((40-sz.W)/2, (20-sz.H)/2), sz)
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if disp.At(x, y) == gfx.White565 && !want.Contains(gfx.Pt(x, y)) {
				t.Fatalf("glyph pixel (%d,%d) outside centered box %+v", x, y, want)
			}
		}
	}
}
