package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-freelook/common"
)

// Tracker accumulates window input callbacks between frames.
// Key state persists across snapshots; mouse and scroll deltas are drained by each Snapshot call.
// The first cursor sample after construction or ResetBaseline only establishes the baseline.
type Tracker struct {
	mu *sync.Mutex

	held map[uint32]struct{}

	hasBaseline bool
	lastX       float64
	lastY       float64

	mouseDX  float32
	mouseDY  float32
	scrollDY float32
}

// NewTracker creates an empty tracker with no cursor baseline.
//
// Returns:
//   - *Tracker: the newly created tracker
func NewTracker() *Tracker {
	return &Tracker{
		mu:   &sync.Mutex{},
		held: make(map[uint32]struct{}),
	}
}

// KeyDown marks a key as held. Codes outside [0, common.MaxKeyCode) are ignored.
func (t *Tracker) KeyDown(keyCode uint32) {
	if keyCode >= common.MaxKeyCode {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.held[keyCode] = struct{}{}
}

// KeyUp marks a key as released. Codes outside [0, common.MaxKeyCode) are ignored.
func (t *Tracker) KeyUp(keyCode uint32) {
	if keyCode >= common.MaxKeyCode {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.held, keyCode)
}

// MouseMove records an absolute cursor position in window coordinates.
// The vertical delta is inverted because window y grows downward.
//
// Parameters:
//   - x, y: cursor position in pixels
func (t *Tracker) MouseMove(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.hasBaseline {
		t.lastX, t.lastY = x, y
		t.hasBaseline = true
		return
	}

	t.mouseDX += float32(x - t.lastX)
	t.mouseDY += float32(t.lastY - y)
	t.lastX, t.lastY = x, y
}

// Scroll accumulates a vertical scroll delta.
func (t *Tracker) Scroll(dy float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scrollDY += dy
}

// ResetBaseline discards the cursor baseline and any pending mouse delta, so the next
// MouseMove is treated as a first sample. Use after the cursor is captured or warped.
func (t *Tracker) ResetBaseline() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hasBaseline = false
	t.mouseDX, t.mouseDY = 0, 0
}

// ReleaseAll clears every held key, e.g. when the window loses focus.
func (t *Tracker) ReleaseAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.held)
}

// Snapshot returns the input state of the current frame and zeroes the accumulated deltas.
//
// Returns:
//   - Snapshot: held keys plus mouse and scroll deltas since the previous call
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		held:     make(map[uint32]struct{}, len(t.held)),
		MouseDX:  t.mouseDX,
		MouseDY:  t.mouseDY,
		ScrollDY: t.scrollDY,
	}
	for k := range t.held {
		s.held[k] = struct{}{}
	}

	t.mouseDX, t.mouseDY, t.scrollDY = 0, 0, 0
	return s
}
