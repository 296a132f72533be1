package gfx

import (
	"errors"
	"testing"
)

// failTarget reports a bus fault on every primitive.
type failTarget struct {
	err error
}

func (f *failTarget) Bounds() Rect                       { return RectOf(0, 0, 32, 32) }
func (f *failTarget) FillRect(Rect, RGB565) error        { return f.err }
func (f *failTarget) StrokeRect(Rect, int, RGB565) error { return f.err }
func (f *failTarget) Line(Point, Point, RGB565) error    { return f.err }
func (f *failTarget) SetPixel(Point, RGB565) error       { return f.err }
func (f *failTarget) Blit(Rect, []RGB565) error          { return f.err }

func paintScene(p *Painter[RGB565], area Rect) {
	p.StartDrawing(area)
	p.ClearBuffer(Black565)
	p.FillRect(area, Gray565)
	p.StrokeRect(area, 1, White565)
	p.Line(area.Origin(), Pt(area.Right()-1, area.Bottom()-1), Red565)
	p.SetPixel(Pt(area.X+2, area.Y+2), Green565)
}

func TestPainterBufferedMatchesDirect(t *testing.T) {
	area := RectOf(3, 3, 10, 8)

	direct := NewDisplay[RGB565](20, 20)
	p := NewPainter[RGB565](direct)
	paintScene(p, area)
	if err := p.Finalize(); err != nil {
		t.Fatalf("direct Finalize: %v", err)
	}

	buffered := NewDisplay[RGB565](20, 20)
	pb := NewPainter[RGB565](buffered)
	pb.SetBuffer(NewFramebuf[RGB565](256))
	paintScene(pb, area)
	if !pb.Buffered() {
		t.Fatal("painter did not bind the buffer")
	}
	if err := pb.Finalize(); err != nil {
		t.Fatalf("buffered Finalize: %v", err)
	}

	for i, want := range direct.Pix() {
		if got := buffered.Pix()[i]; got != want {
			t.Fatalf("pixel %d = %04x, want %04x", i, got, want)
		}
	}
}

func TestPainterFallsBackWhenBufferTooSmall(t *testing.T) {
	disp := NewDisplay[RGB565](20, 20)
	p := NewPainter[RGB565](disp)
	p.SetBuffer(NewFramebuf[RGB565](4))

	area := RectOf(0, 0, 10, 10)
	p.StartDrawing(area)
	if p.Buffered() {
		t.Fatal("painter bound a buffer that cannot hold the area")
	}
	if p.ClearBuffer(White565) {
		t.Fatal("ClearBuffer reported success while drawing direct")
	}
	p.FillRect(area, Cyan565)
	if err := p.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if got := disp.At(5, 5); got != Cyan565 {
		t.Fatalf("At(5,5) = %04x, direct fallback did not draw", got)
	}
}

func TestPainterStickyError(t *testing.T) {
	bus := errors.New("spi timeout")
	p := NewPainter[RGB565](&failTarget{err: bus})

	p.StartDrawing(RectOf(0, 0, 4, 4))
	p.FillRect(RectOf(0, 0, 4, 4), White565)
	p.SetPixel(Pt(1, 1), White565)

	err := p.Finalize()
	if err == nil {
		t.Fatal("Finalize = nil, want error")
	}
	var de *DrawError
	if !errors.As(err, &de) {
		t.Fatalf("Finalize = %v, want *DrawError", err)
	}
	if de.Op != "fill rect" {
		t.Fatalf("Op = %q, want first failing op", de.Op)
	}
	if !errors.Is(err, bus) {
		t.Fatalf("error chain lost the bus error: %v", err)
	}
	if p.Err() != nil {
		t.Fatal("Finalize did not clear the sticky error")
	}
}

func TestPainterSubSharesTarget(t *testing.T) {
	disp := NewDisplay[RGB565](10, 10)
	p := NewPainter[RGB565](disp)
	sub := p.Sub()
	sub.StartDrawing(RectOf(0, 0, 2, 2))
	sub.FillRect(RectOf(0, 0, 2, 2), Red565)
	if err := sub.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if disp.At(0, 0) != Red565 {
		t.Fatal("sub painter did not reach the shared display")
	}
}
