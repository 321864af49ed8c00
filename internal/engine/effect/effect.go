package effect

import "github.com/Faultbox/surfview/internal/engine/scene"

// Effect names accepted by Pipeline.Add.
const (
	Anaglyph        = "AnaglyphEffect"
	Stereo          = "StereoEffect"
	ParallaxBarrier = "ParallaxBarrierEffect"
	// Base names the plain renderer used when no effect is active.
	Base = "Renderer"
)

// Effect is one render pass.
type Effect interface {
	Name() string
	SetSize(width, height int)
	Render(b Backend, f *scene.Frame)
}

// size is embedded by every effect to track its render target size.
type size struct {
	width, height int
}

func (s *size) SetSize(width, height int) {
	s.width, s.height = width, height
}

// Size returns the size last set.
func (s *size) Size() (width, height int) {
	return s.width, s.height
}

func (s *size) aspect() float32 {
	if s.width <= 0 || s.height <= 0 {
		return 1
	}
	return float32(s.width) / float32(s.height)
}

// NullEffect draws the scene once from the camera straight to the screen.
type NullEffect struct {
	size
}

func (e *NullEffect) Name() string { return Base }

func (e *NullEffect) Render(b Backend, f *scene.Frame) {
	b.Bind(TargetScreen)
	b.Clear(f.ClearColor)
	b.Draw(f, Center(&f.Camera))
}

// AnaglyphEffect renders both eyes offscreen and mixes them into one
// red/cyan image.
type AnaglyphEffect struct {
	size
	rig Rig
}

func (e *AnaglyphEffect) Name() string { return Anaglyph }

func (e *AnaglyphEffect) Render(b Backend, f *scene.Frame) {
	renderEyes(b, f, e.rig, e.aspect())
	b.Composite(CompositeAnaglyph)
}

// ParallaxBarrierEffect renders both eyes offscreen and interlaces them by
// row for barrier displays.
type ParallaxBarrierEffect struct {
	size
	rig Rig
}

func (e *ParallaxBarrierEffect) Name() string { return ParallaxBarrier }

func (e *ParallaxBarrierEffect) Render(b Backend, f *scene.Frame) {
	renderEyes(b, f, e.rig, e.aspect())
	b.Composite(CompositeInterlace)
}

// StereoEffect draws the two eyes side by side, each in half the screen.
type StereoEffect struct {
	size
	rig Rig
}

func (e *StereoEffect) Name() string { return Stereo }

func (e *StereoEffect) Render(b Backend, f *scene.Frame) {
	half := e.width / 2
	left, right := e.rig.Eyes(&f.Camera, e.aspect()/2)

	b.Bind(TargetScreen)
	b.Clear(f.ClearColor)
	b.Viewport(0, 0, half, e.height)
	b.Draw(f, left)
	b.Viewport(half, 0, half, e.height)
	b.Draw(f, right)
}

func renderEyes(b Backend, f *scene.Frame, rig Rig, aspect float32) {
	left, right := rig.Eyes(&f.Camera, aspect)

	b.Bind(TargetLeft)
	b.Clear(f.ClearColor)
	b.Draw(f, left)

	b.Bind(TargetRight)
	b.Clear(f.ClearColor)
	b.Draw(f, right)

	b.Bind(TargetScreen)
}

// construct builds a known effect. ok is false for unknown names.
func construct(name string, rig Rig) (e Effect, ok bool) {
	switch name {
	case Anaglyph:
		return &AnaglyphEffect{rig: rig}, true
	case Stereo:
		return &StereoEffect{rig: rig}, true
	case ParallaxBarrier:
		return &ParallaxBarrierEffect{rig: rig}, true
	}
	return nil, false
}
