// Package camera provides the perspective camera the viewer looks through.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/surfview/pkg/math"
)

// Camera is a perspective camera that always looks down its -Z axis.
// Orbiting is done by rotating the model, so the camera only translates.
type Camera struct {
	Position math.Vec3

	FOV    float32 // Vertical field of view in degrees
	Aspect float32
	Near   float32
	Far    float32
}

// New creates a camera at the origin.
func New(fov, aspect, near, far float32) *Camera {
	return &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// SetViewport updates the aspect ratio from surface dimensions.
// Degenerate sizes are ignored so a minimized window keeps the last aspect.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV*math32.Pi/180, c.Aspect, c.Near, c.Far)
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Translate(-c.Position.X, -c.Position.Y, -c.Position.Z)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// InRange reports whether z lies strictly inside the dolly envelope
// (near, 0.9*far).
func (c *Camera) InRange(z float32) bool {
	return z > c.Near && z < 0.9*c.Far
}
