// Package flint is an immediate-mode GUI core for pixel-addressable
// displays on microcontroller-class hardware.
//
// The widget tree is rebuilt from scratch every frame: the application
// creates a ui.Ui over the display, adds widgets in a fixed order, and
// reads each widget's interaction Response. Three mechanisms keep that
// affordable on slow displays:
//
//   - ui.Placer turns the sequence of widget extents into non-overlapping
//     rectangles under a row-wrapping, side-panel-aware policy.
//   - ui.Smartstate lets a widget skip its entire draw when its visual
//     fingerprint (content and bounds) matches the previous frame.
//   - gfx.Painter stages a widget's pixels in a small reusable gfx.Framebuf
//     and blits them in one block transfer, falling back to direct drawing
//     when the widget exceeds the buffer.
//
// Concrete display drivers plug in through the gfx.Target interface;
// driver/periphio adapts any periph.io display.Drawer.
package flint

import (
	"log/slog"

	"github.com/hubastard/flint/internal/logging"
)

// SetLogger configures logging for flint and all its sub-packages. By
// default flint produces no log output. Pass nil to restore the silent
// default. Safe for concurrent use.
//
// Levels used: Debug for per-widget diagnostics (buffer fallback, layout),
// Warn for recoverable misuse (smartstate pool exhausted).
func SetLogger(l *slog.Logger) { logging.Set(l) }
