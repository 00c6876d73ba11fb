package camera

import (
	"github.com/Carmen-Shannon/oxy-freelook/common"
	"github.com/Carmen-Shannon/oxy-freelook/engine/input"
)

// KeyBindings maps movement directions and the reset action to key codes.
type KeyBindings struct {
	Forward  uint32
	Backward uint32
	Left     uint32
	Right    uint32
	Reset    uint32
}

// DefaultKeyBindings returns WASD for movement and R for reset.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward:  common.KeyW,
		Backward: common.KeyS,
		Left:     common.KeyA,
		Right:    common.KeyD,
		Reset:    common.KeyR,
	}
}

// ApplyInput feeds one frame of input into the camera.
//
// A held reset key resets the camera and nothing else is applied that frame.
// Otherwise held movement keys are applied in the order Forward, Backward, Left, Right,
// followed by constrained mouse movement and then scroll. Each held key moves the full
// MovementSpeed*deltaTime, so holding forward and a strafe key together moves sqrt(2)
// times faster than a single key. A negative deltaTime is treated as zero.
//
// Parameters:
//   - cam: the camera to update
//   - snap: the frame's input snapshot
//   - bindings: key codes for each action
//   - deltaTime: frame time in seconds
func ApplyInput(cam Camera, snap input.Snapshot, bindings KeyBindings, deltaTime float32) {
	if cam == nil {
		return
	}
	if snap.Held(bindings.Reset) {
		cam.Reset()
		return
	}
	if deltaTime < 0 {
		deltaTime = 0
	}

	moves := [...]struct {
		key uint32
		dir Direction
	}{
		{bindings.Forward, Forward},
		{bindings.Backward, Backward},
		{bindings.Left, Left},
		{bindings.Right, Right},
	}
	for _, m := range moves {
		if snap.Held(m.key) {
			cam.ProcessKeyboard(m.dir, deltaTime)
		}
	}

	cam.ProcessMouseMovement(snap.MouseDX, snap.MouseDY, true)
	if snap.ScrollDY != 0 {
		cam.ProcessMouseScroll(snap.ScrollDY)
	}
}
