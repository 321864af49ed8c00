package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/surfview/pkg/math"
)

func TestApplyMatrixComposes(t *testing.T) {
	tr := NewTransform()
	tr.Position = math.Vec3{X: 1}
	tr.ApplyMatrix(math.Translate(0, 2, 0))
	tr.ApplyMatrix(math.RotateAxis(math.UnitZ, math32.Pi/2))

	// (1,2,0) rotated a quarter turn about Z
	assertVec(t, math.Vec3{X: -2, Y: 1}, tr.Position)
}

func TestApplyInverseRestoresIdentity(t *testing.T) {
	tr := NewTransform()
	tr.RotateOnAxis(math.UnitX, 0.4)
	tr.RotateOnAxis(math.UnitY, -2.2)
	tr.Position = math.Vec3{X: 3, Y: -1, Z: 8}

	tr.ApplyMatrix(tr.Matrix().Inverse())
	assert.True(t, matNear(math.Identity(), tr.Matrix(), eps))
}

func TestRotateOnWorldAxisKeepsWorldAxis(t *testing.T) {
	tr := NewTransform()
	tr.RotateOnAxis(math.UnitY, math32.Pi/2)

	// a point on world Y stays put under any further world-Y rotation
	tr.RotateOnWorldAxis(math.UnitY, 0.8)
	assertVec(t, math.Vec3{Y: 1}, tr.Matrix().TransformPoint(math.Vec3{Y: 1}))
}

func TestRotateOnWorldAxisDiffersFromLocal(t *testing.T) {
	world := NewTransform()
	world.RotateOnAxis(math.UnitY, math32.Pi/2)
	local := world

	world.RotateOnWorldAxis(math.UnitX, math32.Pi/2)
	local.RotateOnAxis(math.UnitX, math32.Pi/2)

	// after a Y quarter turn local +Z points down world X, so a world-X
	// rotation leaves it there
	assertVec(t, math.Vec3{X: 1}, world.Matrix().TransformDirection(math.UnitZ))
	// the local rotation moves it off world X
	assert.False(t, vecEqual(local.Matrix().TransformDirection(math.UnitZ), math.Vec3{X: 1}))
}

func vecEqual(a, b math.Vec3) bool {
	return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
}
