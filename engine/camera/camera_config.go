package camera

// Default camera tuning values.
const (
	DefaultYaw              float32 = -90.0
	DefaultPitch            float32 = 0.0
	DefaultPitchLimit       float32 = 89.0
	DefaultZoomMin          float32 = 1.0
	DefaultZoomMax          float32 = 45.0
	DefaultZoom             float32 = 45.0
	DefaultMovementSpeed    float32 = 2.5
	DefaultMouseSensitivity float32 = 0.1
)

// maxPitchLimit is the exclusive upper bound for PitchLimit. At ±90° the front vector is
// parallel to the world up vector and the look-at basis degenerates.
const maxPitchLimit float32 = 90.0

// maxZoom is the exclusive upper bound for ZoomMax. A field of view of 180° or more
// inverts the perspective projection.
const maxZoom float32 = 180.0

// Config holds the named tuning values of a free-look camera.
// All angles are in degrees.
type Config struct {
	// InitialYaw is the yaw restored by Reset. -90° faces down the negative Z axis.
	InitialYaw float32 `yaml:"initial_yaw"`

	// InitialPitch is the pitch restored by Reset.
	InitialPitch float32 `yaml:"initial_pitch"`

	// PitchLimit bounds |pitch| when mouse movement is constrained. Must lie in (0, 90).
	PitchLimit float32 `yaml:"pitch_limit"`

	// ZoomMin and ZoomMax bound the field of view.
	ZoomMin float32 `yaml:"zoom_min"`
	ZoomMax float32 `yaml:"zoom_max"`

	// InitialZoom is the field of view restored by Reset.
	InitialZoom float32 `yaml:"initial_zoom"`

	// MovementSpeed is the translation speed in world units per second.
	MovementSpeed float32 `yaml:"movement_speed"`

	// MouseSensitivity is the rotation in degrees per pixel of mouse movement.
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
}

// DefaultConfig returns the configuration used when no options are supplied.
//
// Returns:
//   - Config: yaw -90°, pitch 0°, pitch limit 89°, zoom bounds [1°, 45°], zoom 45°,
//     speed 2.5 units/s, sensitivity 0.1°/px
func DefaultConfig() Config {
	return Config{
		InitialYaw:       DefaultYaw,
		InitialPitch:     DefaultPitch,
		PitchLimit:       DefaultPitchLimit,
		ZoomMin:          DefaultZoomMin,
		ZoomMax:          DefaultZoomMax,
		InitialZoom:      DefaultZoom,
		MovementSpeed:    DefaultMovementSpeed,
		MouseSensitivity: DefaultMouseSensitivity,
	}
}

// Normalize returns a copy of the config with out-of-range values repaired:
// a pitch limit outside (0, 90) falls back to the default, inverted zoom bounds are swapped,
// a zoom maximum of 180° or more falls back to the default, the initial yaw is wrapped into
// [-180, 180), the initial pitch and zoom are clamped into their bounds, and negative speed or
// sensitivity become zero.
//
// Returns:
//   - Config: the repaired configuration
func (c Config) Normalize() Config {
	if c.PitchLimit <= 0 || c.PitchLimit >= maxPitchLimit {
		c.PitchLimit = DefaultPitchLimit
	}
	if c.ZoomMin > c.ZoomMax {
		c.ZoomMin, c.ZoomMax = c.ZoomMax, c.ZoomMin
	}
	if c.ZoomMax >= maxZoom {
		c.ZoomMax = DefaultZoomMax
	}
	if c.ZoomMin <= 0 || c.ZoomMin > c.ZoomMax {
		c.ZoomMin = DefaultZoomMin
		if c.ZoomMax < c.ZoomMin {
			c.ZoomMax = c.ZoomMin
		}
	}
	c.InitialYaw = wrapYaw(c.InitialYaw)
	c.InitialPitch = clampPitch(c.InitialPitch, c.PitchLimit)
	c.InitialZoom = clampZoom(c.InitialZoom, c.ZoomMin, c.ZoomMax)
	if c.MovementSpeed < 0 {
		c.MovementSpeed = 0
	}
	if c.MouseSensitivity < 0 {
		c.MouseSensitivity = 0
	}
	return c
}
