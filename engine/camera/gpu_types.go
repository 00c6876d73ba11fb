package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the GLSL definition of the CameraUniform block.
// Matches GPUCameraUniform layout exactly (144 bytes, std140).
//
//go:embed assets/camera_uniform.glsl
var GPUCameraUniformSource string

// GPUCameraUniform is the std140 representation of the camera uniform block.
// Size: 144 bytes.
type GPUCameraUniform struct {
	View           [16]float32 // offset   0: view matrix (mat4)
	Projection     [16]float32 // offset  64: projection matrix (mat4)
	CameraPosition [3]float32  // offset 128: world-space eye position (vec3)
	ZoomDegrees    float32     // offset 140: vertical field of view in degrees
}

// NewGPUCameraUniform captures the camera's current matrices into a uniform block.
//
// Parameters:
//   - cam: the camera to read
//   - p: clipping planes for the projection matrix
//   - aspect: viewport width / height
//
// Returns:
//   - GPUCameraUniform: the populated uniform block
func NewGPUCameraUniform(cam Camera, p Projection, aspect float32) GPUCameraUniform {
	return GPUCameraUniform{
		View:           cam.ViewMatrix(),
		Projection:     cam.ProjectionMatrix(p, aspect),
		CameraPosition: cam.Position(),
		ZoomDegrees:    cam.Zoom(),
	}
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (144)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a little-endian byte buffer suitable for upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.View[i]))
	}
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Projection[i]))
	}
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.CameraPosition[i]))
	}
	binary.LittleEndian.PutUint32(buf[140:], math.Float32bits(g.ZoomDegrees))
	return buf
}
