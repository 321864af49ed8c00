package scene

import (
	"image/color"

	"github.com/Faultbox/surfview/internal/engine/camera"
	"github.com/Faultbox/surfview/internal/engine/lighting"
	"github.com/Faultbox/surfview/pkg/math"
)

// Frame is a value snapshot of everything one render pass needs. Backends
// read it and never touch the live graph.
type Frame struct {
	Width, Height int

	Camera     camera.Camera
	Light      lighting.PointLight
	ClearColor color.RGBA

	Items []Item
}

// Item is one object with its world matrix resolved.
type Item struct {
	Object *Object
	World  math.Mat4
}

// Frame captures the current state for rendering.
func (g *Graph) Frame() Frame {
	children := g.Model.Children()
	f := Frame{
		Width:      g.width,
		Height:     g.height,
		Camera:     *g.Camera,
		Light:      *g.Light,
		ClearColor: g.ClearColor,
		Items:      make([]Item, 0, len(children)),
	}
	root := g.Model.Matrix()
	for _, o := range children {
		f.Items = append(f.Items, Item{Object: o, World: root.Mul(o.Matrix())})
	}
	return f
}
