package picking

import (
	"sort"

	"github.com/Faultbox/surfview/internal/engine/scene"
	"github.com/Faultbox/surfview/pkg/math"
)

// Hit is one ray/triangle intersection.
type Hit struct {
	Object   *scene.Object
	Distance float32   // along the world ray
	Point    math.Vec3 // world space
	Triangle int
	Vertices [3]uint32 // render vertex indices of the triangle
}

// Raycast intersects a world-space ray with every object's render triangles
// and returns the hits nearest first.
func Raycast(ray Ray, objects []*scene.Object) []Hit {
	var hits []Hit
	for _, o := range objects {
		hits = append(hits, raycastObject(ray, o)...)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

func raycastObject(ray Ray, o *scene.Object) []Hit {
	g := o.Geometry
	if g == nil || g.TriangleCount() == 0 {
		return nil
	}
	inv, ok := o.WorldMatrix().Invert()
	if !ok {
		return nil
	}
	local := ray.Transform(inv)
	if _, hit := local.IntersectAABB(BoundsAABB(g.Bounds)); !hit {
		return nil
	}

	var hits []Hit
	for t := 0; t < g.TriangleCount(); t++ {
		tri := g.Triangle(t)
		d, hit := local.IntersectTriangle(g.RenderVertex(tri[0]), g.RenderVertex(tri[1]), g.RenderVertex(tri[2]))
		if !hit {
			continue
		}
		hits = append(hits, Hit{
			Object:   o,
			Distance: d,
			Point:    ray.At(d),
			Triangle: t,
			Vertices: tri,
		})
	}
	return hits
}
