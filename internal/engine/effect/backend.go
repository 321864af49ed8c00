// Package effect implements the render passes the viewer can draw through:
// the plain base renderer and a closed set of stereoscopic effects.
package effect

import (
	"image/color"

	"github.com/Faultbox/surfview/internal/engine/scene"
	"github.com/Faultbox/surfview/pkg/math"
)

// Target selects where draw calls land.
type Target int

const (
	TargetScreen Target = iota
	TargetLeft          // offscreen left-eye image
	TargetRight         // offscreen right-eye image
)

func (t Target) String() string {
	switch t {
	case TargetLeft:
		return "left"
	case TargetRight:
		return "right"
	default:
		return "screen"
	}
}

// Composite selects how the left and right eye images are merged onto the
// screen.
type Composite int

const (
	// CompositeAnaglyph mixes both eyes into one red/cyan image.
	CompositeAnaglyph Composite = iota
	// CompositeInterlace takes even rows from one eye and odd rows from the
	// other.
	CompositeInterlace
)

// View is one eye's camera.
type View struct {
	Projection math.Mat4
	View       math.Mat4
}

// ViewProjection returns projection * view.
func (v View) ViewProjection() math.Mat4 {
	return v.Projection.Mul(v.View)
}

// Backend is the drawing surface effects render through. The OpenGL renderer
// implements it for the desktop host; tests use a recorder.
type Backend interface {
	// SetSize resizes the screen and every offscreen target.
	SetSize(width, height int)
	// Bind selects the target for subsequent Viewport, Clear and Draw calls
	// and resets the viewport to the whole target.
	Bind(target Target)
	// Viewport restricts drawing to a region of the bound target.
	Viewport(x, y, width, height int)
	Clear(c color.RGBA)
	Draw(f *scene.Frame, v View)
	// Composite merges the left and right targets onto the screen.
	Composite(mode Composite)
}
