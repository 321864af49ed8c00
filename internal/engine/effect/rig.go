package effect

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/surfview/internal/engine/camera"
	"github.com/Faultbox/surfview/pkg/math"
)

// Rig derives a pair of off-axis eye cameras from the scene camera. Both eyes
// converge on the plane Focus units in front of the camera.
type Rig struct {
	EyeSeparation float32
	Focus         float32
}

// DefaultRig returns 6.4 units of separation focused at 500.
func DefaultRig() Rig {
	return Rig{EyeSeparation: 6.4, Focus: 500}
}

// Center returns the camera's own view.
func Center(cam *camera.Camera) View {
	return View{Projection: cam.ProjectionMatrix(), View: cam.ViewMatrix()}
}

// Eyes returns the left and right views for a viewport of the given aspect.
// Each eye is shifted half the separation sideways and its frustum is skewed
// back toward the focus plane.
func (r Rig) Eyes(cam *camera.Camera, aspect float32) (left, right View) {
	focus := r.Focus
	if focus <= 0 {
		focus = cam.Position.Z
	}
	half := r.EyeSeparation / 2
	shift := half * cam.Near / focus
	ymax := cam.Near * math32.Tan(cam.FOV*math32.Pi/360)
	xmax := ymax * aspect

	view := cam.ViewMatrix()
	left = View{
		Projection: math.Frustum(-xmax+shift, xmax+shift, -ymax, ymax, cam.Near, cam.Far),
		View:       math.Translate(half, 0, 0).Mul(view),
	}
	right = View{
		Projection: math.Frustum(-xmax-shift, xmax-shift, -ymax, ymax, cam.Near, cam.Far),
		View:       math.Translate(-half, 0, 0).Mul(view),
	}
	return left, right
}
