// Package renderer draws frames with OpenGL. It implements the effect
// backend: one surface pass per eye plus the stereo composites.
package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/surfview/internal/engine/effect"
	"github.com/Faultbox/surfview/internal/engine/framebuffer"
	"github.com/Faultbox/surfview/internal/engine/renderer/shaders"
	"github.com/Faultbox/surfview/internal/engine/scene"
	"github.com/Faultbox/surfview/internal/engine/shader"
	"github.com/Faultbox/surfview/internal/engine/snapshot"
	"github.com/Faultbox/surfview/internal/logger"
	"github.com/Faultbox/surfview/pkg/geometry"
	"github.com/Faultbox/surfview/pkg/math"
)

// Lighting tuning for the surface shader.
const (
	ambient   = 0.06
	shininess = 150
)

// Renderer handles all OpenGL drawing.
type Renderer struct {
	width, height int

	surface   *shader.Program
	anaglyph  *shader.Program
	interlace *shader.Program

	left, right *framebuffer.Framebuffer
	emptyVAO    uint32

	target effect.Target
	meshes map[*geometry.Record]*mesh
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{meshes: make(map[*geometry.Record]*mesh)}

	var err error
	if r.surface, err = shader.Compile("surface", shaders.SurfaceVertexShader, shaders.SurfaceFragmentShader); err != nil {
		return nil, err
	}
	if r.anaglyph, err = shader.Compile("anaglyph", shaders.CompositeVertexShader, shaders.AnaglyphFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.interlace, err = shader.Compile("interlace", shaders.CompositeVertexShader, shaders.InterlaceFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.left, err = framebuffer.New(width, height); err != nil {
		r.Close()
		return nil, fmt.Errorf("left eye target: %w", err)
	}
	if r.right, err = framebuffer.New(width, height); err != nil {
		r.Close()
		return nil, fmt.Errorf("right eye target: %w", err)
	}

	// core profile needs a bound VAO even for attribute-less draws
	gl.GenVertexArrays(1, &r.emptyVAO)

	r.SetSize(width, height)
	return r, nil
}

// Close releases every GL resource.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for rec, m := range r.meshes {
		m.destroy()
		delete(r.meshes, rec)
	}
	for _, p := range []*shader.Program{r.surface, r.anaglyph, r.interlace} {
		if p != nil {
			p.Delete()
		}
	}
	for _, fb := range []*framebuffer.Framebuffer{r.left, r.right} {
		if fb != nil {
			fb.Destroy()
		}
	}
	if r.emptyVAO != 0 {
		gl.DeleteVertexArrays(1, &r.emptyVAO)
	}
}

// SetSize resizes the screen viewport and both eye targets.
func (r *Renderer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.left.Resize(width, height)
	r.right.Resize(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Bind selects the draw target.
func (r *Renderer) Bind(target effect.Target) {
	r.target = target
	switch target {
	case effect.TargetLeft:
		r.left.Bind()
	case effect.TargetRight:
		r.right.Bind()
	default:
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(r.width), int32(r.height))
	}
}

// Viewport restricts drawing to a region of the bound target.
func (r *Renderer) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// Clear clears color and depth of the bound target.
func (r *Renderer) Clear(c color.RGBA) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders every object of the frame from view v.
func (r *Renderer) Draw(f *scene.Frame, v effect.View) {
	r.prune(f)

	p := r.surface
	p.Use()
	p.SetMat4("uViewProj", v.ViewProjection())
	p.SetVec3("uLightPos", f.Light.Position)
	p.SetVec3("uLightColor", lightColor(f))
	p.SetVec3("uEyePos", f.Camera.Position)
	p.SetFloat("uAmbient", ambient)
	p.SetFloat("uShininess", shininess)

	for _, item := range f.Items {
		rec := item.Object.Geometry
		if rec == nil || len(rec.RenderPositions) == 0 {
			continue
		}
		m, ok := r.meshes[rec]
		if !ok {
			m = uploadMesh(rec)
			r.meshes[rec] = m
			logger.Debug("mesh uploaded", zap.String("object", item.Object.Name), zap.Int32("vertices", m.count))
		}
		p.SetMat4("uModel", item.World)
		m.draw()
	}
}

// Composite merges the eye targets onto the screen.
func (r *Renderer) Composite(mode effect.Composite) {
	p := r.anaglyph
	if mode == effect.CompositeInterlace {
		p = r.interlace
	}

	r.Bind(effect.TargetScreen)
	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	p.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.left.Texture())
	p.SetInt("uLeft", 0)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.right.Texture())
	p.SetInt("uRight", 1)

	gl.BindVertexArray(r.emptyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
}

// ReadPixels reads the screen back as a top-down image.
func (r *Renderer) ReadPixels() (*image.RGBA, error) {
	if r.width <= 0 || r.height <= 0 {
		return nil, fmt.Errorf("no screen size")
	}
	pixels := make([]byte, r.width*r.height*4)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return snapshot.FromPixels(pixels, r.width, r.height)
}

// prune frees meshes whose records left the scene.
func (r *Renderer) prune(f *scene.Frame) {
	if len(r.meshes) == 0 {
		return
	}
	live := make(map[*geometry.Record]bool, len(f.Items))
	for _, item := range f.Items {
		live[item.Object.Geometry] = true
	}
	for rec, m := range r.meshes {
		if !live[rec] {
			m.destroy()
			delete(r.meshes, rec)
		}
	}
}

func lightColor(f *scene.Frame) math.Vec3 {
	c := math.Vec3From(f.Light.Color)
	return c.Scale(f.Light.Intensity)
}
