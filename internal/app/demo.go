package app

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/surfview/internal/viewer"
	"github.com/Faultbox/surfview/pkg/geometry"
)

// DemoSurfaces builds two folded hemispheres side by side, colored by fold
// depth, so the host has something to show without a mesh loader.
func DemoSurfaces() ([]viewer.Surface, error) {
	folds := func(x, y, z float32) float32 {
		return 4*math32.Sin(9*x+3*y)*math32.Cos(7*z) + 2*math32.Sin(13*y)
	}

	var out []viewer.Surface
	for _, h := range []struct {
		name string
		x    float32
	}{{"left", -38}, {"right", 38}} {
		vertices, indices := geometry.Sphere(96, 128, 34, [3]float32{h.x, 0, 0}, folds)
		rec, err := geometry.Build(vertices, indices)
		if err != nil {
			return nil, err
		}
		rec.Colors = depthColors(rec, h.x)
		out = append(out, viewer.Surface{Name: h.name, Record: rec})
	}
	return out, nil
}

// depthColors shades each render vertex from dark (sulcus) to light (gyrus)
// by its distance from the hemisphere center.
func depthColors(rec *geometry.Record, cx float32) []float32 {
	n := len(rec.RenderPositions) / 3
	colors := make([]float32, 0, n*4)
	for i := 0; i < n; i++ {
		v := rec.OriginalVertex(rec.OriginalIndex(uint32(i)))
		d := math32.Sqrt((v.X-cx)*(v.X-cx) + v.Y*v.Y + v.Z*v.Z)
		t := math32.Max(0, math32.Min(1, (d-28)/12))
		colors = append(colors, 0.45+0.45*t, 0.42+0.4*t, 0.4+0.35*t, 1)
	}
	return colors
}
