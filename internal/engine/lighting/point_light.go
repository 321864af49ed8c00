// Package lighting provides the point light that illuminates the surface.
package lighting

import (
	"image/color"

	"github.com/Faultbox/surfview/pkg/math"
)

// PointLight is an omnidirectional light. The viewer keeps it at the camera
// position so the visible side of the surface is always lit.
type PointLight struct {
	Position  math.Vec3
	Color     [3]float32 // RGB color (0-1 range)
	Intensity float32
}

// NewPointLight creates a light of the given color at the origin.
func NewPointLight(c color.RGBA) *PointLight {
	return &PointLight{
		Color: [3]float32{
			float32(c.R) / 255,
			float32(c.G) / 255,
			float32(c.B) / 255,
		},
		Intensity: 1,
	}
}

// White returns a full-intensity white light.
func White() *PointLight {
	return NewPointLight(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}
