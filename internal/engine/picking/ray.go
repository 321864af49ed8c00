// Package picking resolves screen positions to surface vertices by casting a
// ray through the camera.
package picking

import (
	gomath "math"

	"github.com/chewxy/math32"

	"github.com/Faultbox/surfview/pkg/geometry"
	"github.com/Faultbox/surfview/pkg/math"
)

// Ray is a half-line Origin + t*Direction, t >= 0.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// ScreenToRay converts pixel coordinates to a world-space ray with a
// normalized direction. invViewProj is the inverse of the view-projection
// matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Normalized device coordinates, Y up
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	near := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	far := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// At returns the point at parameter t.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform carries the ray into another space. The direction is not
// renormalized, so t values stay comparable with the source space.
func (r Ray) Transform(m math.Mat4) Ray {
	return Ray{Origin: m.TransformPoint(r.Origin), Direction: m.TransformDirection(r.Direction)}
}

// IntersectAABB tests the ray against a box using slabs.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin, dir := r.Origin.Array(), r.Direction.Array()
	lo, hi := box.Min.Array(), box.Max.Array()
	for a := 0; a < 3; a++ {
		if dir[a] == 0 {
			if origin[a] < lo[a] || origin[a] > hi[a] {
				return 0, false
			}
			continue
		}
		t1 := (lo[a] - origin[a]) / dir[a]
		t2 := (hi[a] - origin[a]) / dir[a]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectTriangle is a two-sided Möller-Trumbore test. It returns the ray
// parameter of the hit.
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (t float32, hit bool) {
	const epsilon = 1e-7

	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < epsilon*e1.Length()*e2.Length()*r.Direction.Length() {
		return 0, false // parallel or degenerate
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t = e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// BoundsAABB converts record bounds.
func BoundsAABB(b geometry.Bounds) AABB {
	return NewAABB(math.Vec3From(b.Min), math.Vec3From(b.Max))
}

// NewAABB creates a box from two corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: math32.Min(a.X, b.X), Y: math32.Min(a.Y, b.Y), Z: math32.Min(a.Z, b.Z)},
		Max: math.Vec3{X: math32.Max(a.X, b.X), Y: math32.Max(a.Y, b.Y), Z: math32.Max(a.Z, b.Z)},
	}
}
