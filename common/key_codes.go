package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyA     = 65  // A key (ASCII)
	KeyS     = 83  // S key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeyR     = 82  // R key (ASCII)
	KeyQ     = 81  // Q key (ASCII)
	KeyE     = 69  // E key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)

// MaxKeyCode bounds the key table; GLFW never reports codes at or above it.
const MaxKeyCode = 1024

// KeyNames maps the key codes above to the names accepted in configuration files.
var KeyNames = map[string]uint32{
	"w":           KeyW,
	"a":           KeyA,
	"s":           KeyS,
	"d":           KeyD,
	"r":           KeyR,
	"q":           KeyQ,
	"e":           KeyE,
	"space":       KeySpace,
	"escape":      KeyEsc,
	"right":       KeyRight,
	"left":        KeyLeft,
	"down":        KeyDown,
	"up":          KeyUp,
	"left_shift":  KeyLeftShift,
	"right_shift": KeyRightShift,
}
