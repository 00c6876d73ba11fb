package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// degenerateEpsilon is the length below which front × worldUp is treated as zero.
const degenerateEpsilon = 1e-6

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32
	zoom  float32

	movementSpeed    float32
	mouseSensitivity float32

	config        Config
	startPosition mgl32.Vec3

	viewMatrix mgl32.Mat4
}

// Camera defines the interface for a free-look (FPS-style) camera.
// The camera turns held movement keys, mouse deltas and scroll deltas into a position,
// an orthonormal basis and a field of view, and exposes the resulting view matrix.
type Camera interface {
	// ProcessKeyboard translates the camera along its basis for one held movement key.
	// The distance travelled is MovementSpeed * deltaTime. Forward/Backward follow the front
	// vector, Left/Right follow the right vector. deltaTime must not be negative; callers are
	// responsible for clamping it (see ApplyInput).
	//
	// Parameters:
	//   - dir: the movement direction
	//   - deltaTime: frame time in seconds
	ProcessKeyboard(dir Direction, deltaTime float32)

	// ProcessMouseMovement rotates the camera by a mouse delta in pixels.
	// yOffset must already be sign-corrected so that moving the mouse up is positive.
	// When constrainPitch is true the pitch is clamped to ±PitchLimit. Yaw is kept in [-180, 180).
	//
	// Parameters:
	//   - xOffset: horizontal delta, added to yaw after scaling by MouseSensitivity
	//   - yOffset: vertical delta, added to pitch after scaling by MouseSensitivity
	//   - constrainPitch: clamp pitch to the configured limit
	ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool)

	// ProcessMouseScroll narrows (positive yOffset) or widens (negative yOffset) the field of view.
	// The result is clamped to [ZoomMin, ZoomMax].
	//
	// Parameters:
	//   - yOffset: scroll wheel delta
	ProcessMouseScroll(yOffset float32)

	// ViewMatrix returns the look-at matrix built from Position, Position+Front and Up.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns a perspective matrix using the current zoom as vertical field of view.
	//
	// Parameters:
	//   - p: near/far plane configuration
	//   - aspect: viewport width / height
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix(p Projection, aspect float32) mgl32.Mat4

	// Zoom returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Zoom() float32

	// Reset restores the construction-time position and the configured initial
	// yaw, pitch, zoom, movement speed and mouse sensitivity. WorldUp is unchanged.
	Reset()

	// ApplyConfig replaces the tuning values of the camera without moving it.
	// Pitch and zoom are re-clamped to the new bounds and the basis is recomputed.
	//
	// Parameters:
	//   - cfg: the new configuration; it is normalized before use
	ApplyConfig(cfg Config)

	// Config returns the normalized configuration currently in effect.
	//
	// Returns:
	//   - Config: the camera configuration
	Config() Config

	// Position returns the world-space eye position.
	Position() mgl32.Vec3

	// SetPosition moves the eye to p without changing orientation.
	SetPosition(p mgl32.Vec3)

	// Front returns the unit facing direction.
	Front() mgl32.Vec3

	// Up returns the unit camera-space up vector.
	Up() mgl32.Vec3

	// Right returns the unit camera-space right vector.
	Right() mgl32.Vec3

	// WorldUp returns the fixed world up reference.
	WorldUp() mgl32.Vec3

	// Yaw returns the horizontal angle in degrees, in [-180, 180).
	Yaw() float32

	// Pitch returns the vertical angle in degrees.
	Pitch() float32

	// MovementSpeed returns the translation speed in units per second.
	MovementSpeed() float32

	// MouseSensitivity returns the rotation in degrees per pixel.
	MouseSensitivity() float32
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new free-look camera.
// Without options the camera sits at the origin looking down -Z with world up (0, 1, 0)
// and the values of DefaultConfig.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:      &sync.Mutex{},
		worldUp: mgl32.Vec3{0, 1, 0},
		config:  DefaultConfig(),
	}
	c.yaw = c.config.InitialYaw
	c.pitch = c.config.InitialPitch
	c.zoom = c.config.InitialZoom
	c.movementSpeed = c.config.MovementSpeed
	c.mouseSensitivity = c.config.MouseSensitivity

	for _, option := range options {
		option(c)
	}

	if c.worldUp.Len() < degenerateEpsilon {
		c.worldUp = mgl32.Vec3{0, 1, 0}
	}
	c.worldUp = c.worldUp.Normalize()
	c.config = c.config.Normalize()
	c.yaw = wrapYaw(c.yaw)
	c.movementSpeed = c.config.MovementSpeed
	c.mouseSensitivity = c.config.MouseSensitivity
	c.pitch = clampPitch(c.pitch, c.config.PitchLimit)
	c.zoom = clampZoom(c.zoom, c.config.ZoomMin, c.config.ZoomMax)
	c.startPosition = c.position

	// A right vector is needed before the first basis update in case the initial
	// orientation is already parallel to worldUp.
	c.right = fallbackRight(c.worldUp)
	c.updateCameraVectors()
	return c
}

func (c *cameraImpl) ProcessKeyboard(dir Direction, deltaTime float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	velocity := c.movementSpeed * deltaTime
	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	default:
		return
	}
	c.updateViewMatrix()
}

func (c *cameraImpl) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	if xOffset == 0 && yOffset == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.yaw = wrapYaw(c.yaw + xOffset*c.mouseSensitivity)
	c.pitch += yOffset * c.mouseSensitivity
	if constrainPitch {
		c.pitch = clampPitch(c.pitch, c.config.PitchLimit)
	}
	c.updateCameraVectors()
}

func (c *cameraImpl) ProcessMouseScroll(yOffset float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = clampZoom(c.zoom-yOffset, c.config.ZoomMin, c.config.ZoomMax)
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix(p Projection, aspect float32) mgl32.Mat4 {
	return p.Matrix(c.Zoom(), aspect)
}

func (c *cameraImpl) Zoom() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.position = c.startPosition
	c.yaw = c.config.InitialYaw
	c.pitch = c.config.InitialPitch
	c.zoom = c.config.InitialZoom
	c.movementSpeed = c.config.MovementSpeed
	c.mouseSensitivity = c.config.MouseSensitivity
	c.right = fallbackRight(c.worldUp)
	c.updateCameraVectors()
}

func (c *cameraImpl) ApplyConfig(cfg Config) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.config = cfg.Normalize()
	c.movementSpeed = c.config.MovementSpeed
	c.mouseSensitivity = c.config.MouseSensitivity
	c.pitch = clampPitch(c.pitch, c.config.PitchLimit)
	c.zoom = clampZoom(c.zoom, c.config.ZoomMin, c.config.ZoomMax)
	c.updateCameraVectors()
}

func (c *cameraImpl) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
	c.updateViewMatrix()
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right
}

func (c *cameraImpl) WorldUp() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldUp
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) MovementSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movementSpeed
}

func (c *cameraImpl) MouseSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mouseSensitivity
}

// updateCameraVectors recomputes front, right and up from yaw, pitch and worldUp,
// then refreshes the cached view matrix.
// If front is parallel to worldUp the previous right vector is kept.
// Caller must hold the mutex.
func (c *cameraImpl) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()

	right := c.front.Cross(c.worldUp)
	if right.Len() >= degenerateEpsilon {
		c.right = right.Normalize()
	} else {
		// Project the previous right vector off the new front so the basis stays orthogonal.
		r := c.right.Sub(c.front.Mul(c.right.Dot(c.front)))
		if r.Len() >= degenerateEpsilon {
			c.right = r.Normalize()
		}
	}
	c.up = c.right.Cross(c.front).Normalize()
	c.updateViewMatrix()
}

// updateViewMatrix refreshes the cached look-at matrix.
// Caller must hold the mutex.
func (c *cameraImpl) updateViewMatrix() {
	c.viewMatrix = mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// fallbackRight returns a unit vector perpendicular to worldUp, used to seed the basis
// before the first update.
func fallbackRight(worldUp mgl32.Vec3) mgl32.Vec3 {
	axis := mgl32.Vec3{0, 0, -1}
	if mgl32.FloatEqualThreshold(mgl32.Abs(worldUp.Dot(axis)), 1, 1e-4) {
		axis = mgl32.Vec3{1, 0, 0}
	}
	return axis.Cross(worldUp).Normalize()
}

func clampPitch(pitch, limit float32) float32 {
	return mgl32.Clamp(pitch, -limit, limit)
}

func clampZoom(zoom, lo, hi float32) float32 {
	return mgl32.Clamp(zoom, lo, hi)
}

// wrapYaw maps an angle in degrees into [-180, 180).
func wrapYaw(yaw float32) float32 {
	w := math.Mod(float64(yaw)+180, 360)
	if w < 0 {
		w += 360
	}
	r := float32(w - 180)
	if r >= 180 {
		r -= 360
	}
	return r
}
