package camera

import (
	"github.com/Carmen-Shannon/oxy-freelook/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Default clipping planes.
const (
	DefaultNear float32 = 0.1
	DefaultFar  float32 = 100.0
)

// Projection holds the clipping planes used to turn the camera's zoom into a perspective matrix.
// The field of view comes from the camera; the aspect ratio comes from the viewport.
type Projection struct {
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// DefaultProjection returns near 0.1 and far 100.
func DefaultProjection() Projection {
	return Projection{Near: DefaultNear, Far: DefaultFar}
}

// Matrix builds an OpenGL-convention perspective matrix (clip z in [-w, w]).
// A non-positive aspect falls back to 1. Invalid planes fall back to the defaults.
//
// Parameters:
//   - fovYDegrees: vertical field of view in degrees
//   - aspect: viewport width / height
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func (p Projection) Matrix(fovYDegrees, aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	near, far := p.Near, p.Far
	if near <= 0 || far <= near {
		near, far = DefaultNear, DefaultFar
	}
	return mgl32.Perspective(mgl32.DegToRad(fovYDegrees), aspect, near, far)
}

// ViewFrustum returns the world-space frustum seen by the camera, for visibility tests
// in the rendering layer.
//
// Parameters:
//   - cam: the camera to read
//   - p: clipping planes
//   - aspect: viewport width / height
//
// Returns:
//   - common.Frustum: the six normalized frustum planes
func ViewFrustum(cam Camera, p Projection, aspect float32) common.Frustum {
	viewProj := cam.ProjectionMatrix(p, aspect).Mul4(cam.ViewMatrix())
	return common.ExtractFrustum(viewProj)
}
