package ui

import (
	"github.com/hubastard/flint/gfx"
	"github.com/hubastard/flint/internal/logging"
)

// Smartstate remembers one widget's visual fingerprint across frames. A
// widget hashes everything that affects its pixels, asks Update whether the
// hash moved, and skips its draw entirely when it did not.
type Smartstate struct {
	fp       uint64
	valid    bool
	sentinel bool
}

// Update records fp and reports whether the widget must repaint, i.e. the
// fingerprint differs from the stored one or a redraw was forced.
func (s *Smartstate) Update(fp uint64) bool {
	if s.sentinel {
		return true
	}
	if s.valid && s.fp == fp {
		return false
	}
	s.fp = fp
	s.valid = true
	return true
}

// ForceRedraw drops the stored fingerprint so the next Update repaints,
// e.g. after something else painted over the widget's area.
func (s *Smartstate) ForceRedraw() { s.valid = false }

// Valid reports whether a fingerprint from a previous frame is stored.
func (s *Smartstate) Valid() bool { return s.valid && !s.sentinel }

// Provider is a fixed pool of smartstates handed out positionally. Widgets
// must be visited in the same order every frame so each one meets the same
// state again; conditional widgets reserve their slots with Skip.
type Provider struct {
	states     []Smartstate
	cursor     int
	overflow   Smartstate
	overflowed bool
}

// NewProvider allocates a pool of size states, all initially invalid.
func NewProvider(size int) *Provider {
	if size < 0 {
		size = 0
	}
	return &Provider{
		states:   make([]Smartstate, size),
		overflow: Smartstate{sentinel: true},
	}
}

// RestartCounter rewinds the cursor. Call it once at the top of each frame.
func (p *Provider) RestartCounter() { p.cursor = 0 }

// Next hands out the state for the widget about to draw. Past the end of
// the pool it returns a shared sentinel that always repaints, so an
// undersized pool costs redraws, not correctness.
func (p *Provider) Next() *Smartstate {
	if p.cursor >= len(p.states) {
		if !p.overflowed {
			p.overflowed = true
			logging.Get().Warn("ui: smartstate pool exhausted, extra widgets repaint every frame",
				"size", len(p.states))
		}
		return &p.overflow
	}
	s := &p.states[p.cursor]
	p.cursor++
	return s
}

// Skip advances the cursor past n states without touching them, keeping
// later widgets aligned when a branch draws nothing this frame.
func (p *Provider) Skip(n int) {
	if n > 0 {
		p.cursor += n
	}
}

// Position returns the cursor, the index Next will hand out next.
func (p *Provider) Position() int { return p.cursor }

// Size returns the pool capacity.
func (p *Provider) Size() int { return len(p.states) }

// Overflowed reports whether Next ever ran past the pool.
func (p *Provider) Overflowed() bool { return p.overflowed }

// Get returns the state at index i, or the always-repaint sentinel when i
// is out of range.
func (p *Provider) Get(i int) *Smartstate {
	if i < 0 || i >= len(p.states) {
		return &p.overflow
	}
	return &p.states[i]
}

// ForceRedrawAll invalidates every state, e.g. after the screen was cleared.
func (p *Provider) ForceRedrawAll() { p.ForceRedrawFrom(0) }

// ForceRedrawFrom invalidates every state at index i and later, e.g. after
// clearing the rows below a widget.
func (p *Provider) ForceRedrawFrom(i int) {
	if i < 0 {
		i = 0
	}
	for ; i < len(p.states); i++ {
		p.states[i].valid = false
	}
}

// 64 bit FNV-1a.
const (
	fnvOffset64 = 0xcbf29ce484222325
	fnvPrime64  = 0x100000001b3
)

// Fingerprint folds words into a draw fingerprint. Include every input that
// affects the widget's pixels; order matters.
func Fingerprint(words ...uint64) uint64 {
	h := uint64(fnvOffset64)
	for _, w := range words {
		for i := 0; i < 64; i += 8 {
			h ^= (w >> i) & 0xff
			h *= fnvPrime64
		}
	}
	return h
}

// HashString hashes s for use as a Fingerprint word.
func HashString(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

// HashBytes hashes b for use as a Fingerprint word.
func HashBytes(b []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

// HashRect folds a widget's placed rectangle, so a widget that moved or
// resized repaints even when its content did not change.
func HashRect(r gfx.Rect) uint64 {
	return Fingerprint(
		uint64(uint32(r.X))|uint64(uint32(r.Y))<<32,
		uint64(uint32(r.W))|uint64(uint32(r.H))<<32,
	)
}
