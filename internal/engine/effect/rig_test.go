package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/surfview/internal/engine/camera"
	"github.com/Faultbox/surfview/pkg/math"
)

func TestEyesConvergeOnFocusPlane(t *testing.T) {
	cam := camera.New(30, 1.5, 1, 10000)
	cam.Position = math.Vec3{Z: 500}
	rig := Rig{EyeSeparation: 6.4, Focus: 500}

	left, right := rig.Eyes(cam, 1.5)

	// the world origin sits on the focus plane, so both eyes see it at the
	// same screen position as the center camera
	center := Center(cam).ViewProjection().TransformPoint(math.Vec3{})
	l := left.ViewProjection().TransformPoint(math.Vec3{})
	r := right.ViewProjection().TransformPoint(math.Vec3{})
	assert.InDelta(t, center.X, l.X, 1e-4)
	assert.InDelta(t, center.X, r.X, 1e-4)

	// a point nearer than focus separates
	near := math.Vec3{Z: 250}
	ln := left.ViewProjection().TransformPoint(near)
	rn := right.ViewProjection().TransformPoint(near)
	assert.Greater(t, ln.X, rn.X)
}

func TestEyesZeroSeparationMatchesCenter(t *testing.T) {
	cam := camera.New(45, 2, 0.5, 100)
	cam.Position = math.Vec3{X: 1, Y: 2, Z: 30}

	left, right := Rig{Focus: 30}.Eyes(cam, 2)
	center := Center(cam)

	for i := range center.Projection {
		assert.InDelta(t, center.Projection[i], left.Projection[i], 1e-5)
		assert.InDelta(t, center.View[i], right.View[i], 1e-5)
	}
}
