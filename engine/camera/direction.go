package camera

// Direction identifies a keyboard movement direction relative to the camera's basis.
type Direction int

const (
	// Forward moves along the front vector.
	Forward Direction = iota
	// Backward moves against the front vector.
	Backward
	// Left moves against the right vector.
	Left
	// Right moves along the right vector.
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
