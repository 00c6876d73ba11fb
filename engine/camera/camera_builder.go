package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the initial eye position. Reset returns the camera to this position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithWorldUp sets the fixed world up reference. The vector is normalized;
// a zero vector falls back to (0, 1, 0).
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's world up vector
func WithWorldUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.worldUp = mgl32.Vec3{x, y, z}
	}
}

// WithConfig replaces the camera's tuning values and resets yaw, pitch, zoom,
// speed and sensitivity to the config's initial values.
// Options applied after WithConfig can still override individual fields.
//
// Parameters:
//   - cfg: the configuration to use
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's configuration
func WithConfig(cfg Config) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.config = cfg
		c.yaw = cfg.InitialYaw
		c.pitch = cfg.InitialPitch
		c.zoom = cfg.InitialZoom
		c.movementSpeed = cfg.MovementSpeed
		c.mouseSensitivity = cfg.MouseSensitivity
	}
}

// WithYaw sets the initial yaw in degrees and makes it the value restored by Reset.
//
// Parameters:
//   - yaw: horizontal angle in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's yaw
func WithYaw(yaw float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
		c.config.InitialYaw = yaw
	}
}

// WithPitch sets the initial pitch in degrees and makes it the value restored by Reset.
// The value is clamped to the pitch limit.
//
// Parameters:
//   - pitch: vertical angle in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's pitch
func WithPitch(pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitch = pitch
		c.config.InitialPitch = pitch
	}
}

// WithZoom sets the initial field of view in degrees and makes it the value restored by Reset.
// The value is clamped to the zoom bounds.
//
// Parameters:
//   - zoom: vertical field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's zoom
func WithZoom(zoom float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = zoom
		c.config.InitialZoom = zoom
	}
}

// WithMovementSpeed sets the translation speed in world units per second.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's movement speed
func WithMovementSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.movementSpeed = speed
		c.config.MovementSpeed = speed
	}
}

// WithMouseSensitivity sets the rotation in degrees per pixel of mouse movement.
//
// Parameters:
//   - sensitivity: degrees per pixel
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSensitivity = sensitivity
		c.config.MouseSensitivity = sensitivity
	}
}

// WithPitchLimit sets the maximum |pitch| in degrees for constrained mouse movement.
// Values outside (0, 90) fall back to DefaultPitchLimit.
//
// Parameters:
//   - limit: pitch limit in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's pitch limit
func WithPitchLimit(limit float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.config.PitchLimit = limit
	}
}

// WithZoomBounds sets the minimum and maximum field of view in degrees.
//
// Parameters:
//   - min: narrowest field of view
//   - max: widest field of view
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's zoom bounds
func WithZoomBounds(min, max float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.config.ZoomMin = min
		c.config.ZoomMax = max
	}
}
