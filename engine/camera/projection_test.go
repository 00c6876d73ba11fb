package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestProjection_Matrix(t *testing.T) {
	tests := []struct {
		P        Projection
		Fov      float32
		Aspect   float32
		Expected mgl32.Mat4
	}{
		{DefaultProjection(), 45, 800.0 / 600.0, mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)},
		{DefaultProjection(), 30, 0, mgl32.Perspective(mgl32.DegToRad(30), 1, 0.1, 100)},
		{Projection{Near: 1, Far: 50}, 60, 2, mgl32.Perspective(mgl32.DegToRad(60), 2, 1, 50)},
		{Projection{Near: 5, Far: 1}, 45, 1, mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)},
		{Projection{}, 45, 1, mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)},
	}

	for _, tc := range tests {
		if got := tc.P.Matrix(tc.Fov, tc.Aspect); got != tc.Expected {
			t.Errorf("Projection(%+v).Matrix(%v, %v) != %v (got %v)", tc.P, tc.Fov, tc.Aspect, tc.Expected, got)
		}
	}
}

func TestCamera_ProjectionMatrixFollowsZoom(t *testing.T) {
	c := NewCamera()
	c.ProcessMouseScroll(15)
	want := mgl32.Perspective(mgl32.DegToRad(30), 1.5, 0.1, 100)
	if got := c.ProjectionMatrix(DefaultProjection(), 1.5); !got.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("ProjectionMatrix() != %v (got %v)", want, got)
	}
}

func TestViewFrustum(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 3))
	f := ViewFrustum(c, DefaultProjection(), 1)

	tests := []struct {
		Point    mgl32.Vec3
		Expected bool
	}{
		{mgl32.Vec3{0, 0, 0}, true},
		{mgl32.Vec3{0.5, 0.5, 0}, true},
		{mgl32.Vec3{0, 0, 4}, false},
		{mgl32.Vec3{0, 0, 2.95}, false},
		{mgl32.Vec3{0, 0, -200}, false},
		{mgl32.Vec3{50, 0, 0}, false},
	}
	for _, tc := range tests {
		if got := f.ContainsPoint(tc.Point); got != tc.Expected {
			t.Errorf("ViewFrustum().ContainsPoint(%v) != %v", tc.Point, tc.Expected)
		}
	}

	if !f.IntersectsSphere(mgl32.Vec3{0, 0, 4}, 2) {
		t.Errorf("sphere straddling the near plane should intersect")
	}
	if f.IntersectsSphere(mgl32.Vec3{0, 0, 10}, 1) {
		t.Errorf("sphere behind the camera should not intersect")
	}
}
