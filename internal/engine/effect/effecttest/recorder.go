// Package effecttest provides a Backend that records calls instead of
// drawing, for headless tests of effects and the viewer.
package effecttest

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Faultbox/surfview/internal/engine/effect"
	"github.com/Faultbox/surfview/internal/engine/scene"
)

// Call is one recorded backend call.
type Call struct {
	Op     string // "size", "bind", "viewport", "clear", "draw", "composite"
	Target effect.Target
	Rect   image.Rectangle
	Color  color.RGBA
	View   effect.View
	Items  int
	Mode   effect.Composite
}

func (c Call) String() string {
	switch c.Op {
	case "bind":
		return "bind " + c.Target.String()
	case "viewport", "size":
		return fmt.Sprintf("%s %v", c.Op, c.Rect)
	case "composite":
		return fmt.Sprintf("composite %d", c.Mode)
	default:
		return c.Op
	}
}

// Recorder records every call. ReadPixels returns a solid image filled with
// the last clear color.
type Recorder struct {
	Calls []Call

	Width, Height int
	target        effect.Target
	clear         color.RGBA
}

func (r *Recorder) SetSize(width, height int) {
	r.Width, r.Height = width, height
	r.Calls = append(r.Calls, Call{Op: "size", Rect: image.Rect(0, 0, width, height)})
}

func (r *Recorder) Bind(target effect.Target) {
	r.target = target
	r.Calls = append(r.Calls, Call{Op: "bind", Target: target})
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.Calls = append(r.Calls, Call{Op: "viewport", Target: r.target, Rect: image.Rect(x, y, x+width, y+height)})
}

func (r *Recorder) Clear(c color.RGBA) {
	r.clear = c
	r.Calls = append(r.Calls, Call{Op: "clear", Target: r.target, Color: c})
}

func (r *Recorder) Draw(f *scene.Frame, v effect.View) {
	r.Calls = append(r.Calls, Call{Op: "draw", Target: r.target, View: v, Items: len(f.Items)})
}

func (r *Recorder) Composite(mode effect.Composite) {
	r.Calls = append(r.Calls, Call{Op: "composite", Target: r.target, Mode: mode})
}

// ReadPixels returns the screen as the last clear color.
func (r *Recorder) ReadPixels() (*image.RGBA, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("recorder: no size set")
	}
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = r.clear.R
		img.Pix[i+1] = r.clear.G
		img.Pix[i+2] = r.clear.B
		img.Pix[i+3] = r.clear.A
	}
	return img, nil
}

// Ops returns the recorded calls in String form.
func (r *Recorder) Ops() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.String()
	}
	return out
}

// Draws returns only the draw calls.
func (r *Recorder) Draws() []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == "draw" {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
