package geometry

import "github.com/chewxy/math32"

// Displace returns the radial offset for a unit direction.
type Displace func(x, y, z float32) float32

// Sphere generates an indexed latitude/longitude sphere of the given radius
// centered at center, with each vertex pushed outward by displace (which may
// be nil). It is used for the demo surface and in tests.
func Sphere(rings, segments int, radius float32, center [3]float32, displace Displace) (vertices []float32, indices []uint32) {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	for r := 0; r <= rings; r++ {
		theta := float32(r) / float32(rings) * math32.Pi
		st, ct := math32.Sincos(theta)
		for s := 0; s <= segments; s++ {
			phi := float32(s) / float32(segments) * 2 * math32.Pi
			sp, cp := math32.Sincos(phi)
			x, y, z := st*cp, ct, st*sp
			rad := radius
			if displace != nil {
				rad += displace(x, y, z)
			}
			vertices = append(vertices, center[0]+x*rad, center[1]+y*rad, center[2]+z*rad)
		}
	}

	row := uint32(segments + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint32(r)*row + uint32(s)
			b := a + row
			// counter-clockwise seen from outside
			if r != 0 {
				indices = append(indices, a, a+1, b)
			}
			if r != rings-1 {
				indices = append(indices, a+1, b+1, b)
			}
		}
	}
	return vertices, indices
}
