package input

import "slices"

// Snapshot is the input state of a single frame.
// It owns its held-key set; later tracker callbacks never mutate a returned snapshot.
type Snapshot struct {
	held map[uint32]struct{}

	// MouseDX is the horizontal mouse delta in pixels since the previous snapshot.
	MouseDX float32

	// MouseDY is the vertical mouse delta in pixels since the previous snapshot.
	// Moving the mouse up yields a positive value.
	MouseDY float32

	// ScrollDY is the accumulated vertical scroll delta since the previous snapshot.
	ScrollDY float32
}

// NewSnapshot builds a snapshot directly, bypassing a Tracker.
//
// Parameters:
//   - mouseDX, mouseDY: sign-corrected mouse deltas
//   - scrollDY: scroll delta
//   - held: key codes held during the frame
//
// Returns:
//   - Snapshot: the constructed snapshot
func NewSnapshot(mouseDX, mouseDY, scrollDY float32, held ...uint32) Snapshot {
	s := Snapshot{
		held:     make(map[uint32]struct{}, len(held)),
		MouseDX:  mouseDX,
		MouseDY:  mouseDY,
		ScrollDY: scrollDY,
	}
	for _, k := range held {
		s.held[k] = struct{}{}
	}
	return s
}

// Held reports whether the key was held when the snapshot was taken.
func (s Snapshot) Held(keyCode uint32) bool {
	_, ok := s.held[keyCode]
	return ok
}

// HeldKeys returns the held key codes in ascending order.
func (s Snapshot) HeldKeys() []uint32 {
	keys := make([]uint32, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Empty reports whether the snapshot carries no held keys and no deltas.
func (s Snapshot) Empty() bool {
	return len(s.held) == 0 && s.MouseDX == 0 && s.MouseDY == 0 && s.ScrollDY == 0
}
