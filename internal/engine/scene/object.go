package scene

import (
	"github.com/Faultbox/surfview/pkg/geometry"
	"github.com/Faultbox/surfview/pkg/math"
)

// Object is one renderable surface parented under the model root. Its
// geometry is stored centered on the centroid and the object is placed at the
// centroid, so it renders at its original location.
type Object struct {
	Transform

	Name     string
	Geometry *geometry.Record

	model *Model
}

// Centroid returns the centroid the geometry was shifted by. ok is false when
// there is none or it is not finite; callers then use the origin.
func (o *Object) Centroid() (c math.Vec3, ok bool) {
	if o.Geometry == nil || !o.Geometry.HasCentroid || !o.Geometry.Centroid.IsFinite() {
		return math.Vec3{}, false
	}
	return o.Geometry.Centroid, true
}

// WorldMatrix returns model root matrix * object matrix.
func (o *Object) WorldMatrix() math.Mat4 {
	if o.model == nil {
		return o.Matrix()
	}
	return o.model.Matrix().Mul(o.Matrix())
}

// resetPlacement moves the object back to its centroid (or the origin) and
// zeroes its rotation.
func (o *Object) resetPlacement() {
	c, _ := o.Centroid()
	o.Position = c
	o.ResetRotation()
}
