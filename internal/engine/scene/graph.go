// Package scene holds the viewer's scene graph: a camera, a point light that
// follows it, and a model root that every loaded surface object hangs from.
package scene

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/Faultbox/surfview/internal/engine/camera"
	"github.com/Faultbox/surfview/internal/engine/lighting"
	"github.com/Faultbox/surfview/internal/logger"
	"github.com/Faultbox/surfview/pkg/geometry"
	"github.com/Faultbox/surfview/pkg/math"
	"go.uber.org/zap"
)

// Config holds the initial camera and surface settings.
type Config struct {
	Width, Height  int
	FOV            float32 // degrees
	Near, Far      float32
	CameraDistance float32
	ClearColor     color.RGBA
}

// DefaultConfig returns the stock camera: fov 30, near 1, far 10000, z 500.
func DefaultConfig() Config {
	return Config{
		Width:          1280,
		Height:         720,
		FOV:            30,
		Near:           1,
		Far:            10000,
		CameraDistance: 500,
		ClearColor:     color.RGBA{A: 0xff},
	}
}

// Graph owns the camera, the light and the model root.
type Graph struct {
	Camera *camera.Camera
	Light  *lighting.PointLight
	Model  *Model

	ClearColor color.RGBA

	home   math.Vec3
	width  int
	height int
}

// New creates a scene sized to the viewport with the camera on +Z looking at
// the origin and the light co-located with it.
func New(cfg Config) *Graph {
	aspect := float32(1)
	if cfg.Width > 0 && cfg.Height > 0 {
		aspect = float32(cfg.Width) / float32(cfg.Height)
	}
	g := &Graph{
		Camera:     camera.New(cfg.FOV, aspect, cfg.Near, cfg.Far),
		Light:      lighting.White(),
		Model:      newModel(),
		ClearColor: cfg.ClearColor,
		home:       math.Vec3{Z: cfg.CameraDistance},
		width:      cfg.Width,
		height:     cfg.Height,
	}
	g.SetCameraPosition(0, 0, cfg.CameraDistance)
	return g
}

// Resize updates the projection aspect. Degenerate sizes are ignored.
func (g *Graph) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	g.width, g.height = width, height
	g.Camera.SetViewport(width, height)
}

// Viewport returns the last accepted surface size.
func (g *Graph) Viewport() (width, height int) {
	return g.width, g.height
}

// SetCameraPosition moves the camera and the light together.
func (g *Graph) SetCameraPosition(x, y, z float32) {
	p := math.Vec3{X: x, Y: y, Z: z}
	g.Camera.Position = p
	g.Light.Position = p
}

// Pan shifts the camera and light in the view plane.
func (g *Graph) Pan(dx, dy float32) {
	p := g.Camera.Position
	g.SetCameraPosition(p.X+dx, p.Y+dy, p.Z)
}

// Zoom dollies the camera to z/factor. The move is dropped when the result
// leaves (near, 0.9*far) or the factor is not a usable number.
func (g *Graph) Zoom(factor float32) {
	if factor == 0 || math32.IsNaN(factor) || math32.IsInf(factor, 0) {
		return
	}
	z := g.Camera.Position.Z / factor
	if !g.Camera.InRange(z) {
		logger.Debug("zoom clamped", zap.Float32("factor", factor), zap.Float32("z", z))
		return
	}
	g.Camera.Position.Z = z
	g.Light.Position.Z = z
}

// ResetView undoes every drag and autorotation applied to the model, puts the
// camera and light back home, and returns each object to its centroid.
func (g *Graph) ResetView() {
	g.Model.ApplyMatrix(g.Model.Matrix().Inverse())
	g.SetCameraPosition(g.home.X, g.home.Y, g.home.Z)
	for _, o := range g.Model.Children() {
		o.resetPlacement()
	}
}

// Add attaches a surface object for the record. The record's bounds are
// recomputed from its render positions, since loaders may hand over records
// that were never built here.
func (g *Graph) Add(rec *geometry.Record, name string) *Object {
	rec.RefreshBounds()
	o := g.Model.Add(rec, name)
	logger.Debug("object added", zap.String("name", name), zap.Int("triangles", rec.TriangleCount()))
	return o
}

// Remove detaches an object.
func (g *Graph) Remove(o *Object) bool {
	return g.Model.Remove(o)
}

// Clear detaches every object, leaving the model transform untouched.
func (g *Graph) Clear() {
	n := len(g.Model.Children())
	g.Model.Clear()
	logger.Debug("scene cleared", zap.Int("objects", n))
}

// Objects returns the attached objects in insertion order.
func (g *Graph) Objects() []*Object {
	return g.Model.Children()
}

// SetClearColor sets the background color.
func (g *Graph) SetClearColor(c color.RGBA) {
	g.ClearColor = c
}
