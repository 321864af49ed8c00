package scene

import "github.com/Faultbox/surfview/pkg/math"

// Transform is a node's local placement. Rotation and translation accumulate
// by composing incremental transforms rather than by assigning angles.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
}

// NewTransform returns the identity placement.
func NewTransform() Transform {
	return Transform{
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Matrix returns position * rotation * scale.
func (t *Transform) Matrix() math.Mat4 {
	return math.Compose(t.Position, t.Rotation, t.Scale)
}

// ApplyMatrix premultiplies the local matrix by m and stores the result back
// as position, rotation and scale.
func (t *Transform) ApplyMatrix(m math.Mat4) {
	t.Position, t.Rotation, t.Scale = m.Mul(t.Matrix()).Decompose()
}

// RotateOnAxis rotates about an axis expressed in local space.
func (t *Transform) RotateOnAxis(axis math.Vec3, angle float32) {
	q := math.QuatFromAxisAngle(axis.Normalize(), angle)
	t.Rotation = t.Rotation.Mul(q).Normalize()
}

// RotateOnWorldAxis rotates about an axis expressed in world (parent) space.
// The axis is carried into local space through the inverse of the current
// matrix, so the result does not depend on rotations applied earlier.
func (t *Transform) RotateOnWorldAxis(axis math.Vec3, angle float32) {
	local := t.Matrix().Inverse().TransformDirection(axis).Normalize()
	t.RotateOnAxis(local, angle)
}

// ResetRotation zeroes the rotation.
func (t *Transform) ResetRotation() {
	t.Rotation = math.QuatIdentity()
}
