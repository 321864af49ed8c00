// Package framebuffer provides the offscreen color+depth targets each stereo
// eye renders into before compositing.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an offscreen target whose color attachment can be sampled
// as a texture.
type Framebuffer struct {
	fbo    uint32
	color  uint32
	depth  uint32
	width  int32
	height int32
}

// New allocates a target. Sizes below one pixel are raised to one.
func New(width, height int) (*Framebuffer, error) {
	fb := &Framebuffer{}
	gl.GenFramebuffers(1, &fb.fbo)
	gl.GenTextures(1, &fb.color)
	gl.GenRenderbuffers(1, &fb.depth)

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	fb.allocate(width, height)

	gl.BindTexture(gl.TEXTURE_2D, fb.color)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.color, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depth)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return fb, nil
}

func (fb *Framebuffer) allocate(width, height int) {
	fb.width, fb.height = int32(max(width, 1)), int32(max(height, 1))

	gl.BindTexture(gl.TEXTURE_2D, fb.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.width, fb.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
}

// Resize reallocates storage when the size changed.
func (fb *Framebuffer) Resize(width, height int) {
	if int32(width) == fb.width && int32(height) == fb.height {
		return
	}
	fb.allocate(width, height)
}

// Bind makes this the render target with a full-size viewport.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.Viewport(0, 0, fb.width, fb.height)
}

// Texture returns the color attachment.
func (fb *Framebuffer) Texture() uint32 {
	return fb.color
}

// Size returns the allocated size.
func (fb *Framebuffer) Size() (width, height int) {
	return int(fb.width), int(fb.height)
}

// Destroy releases all GL objects.
func (fb *Framebuffer) Destroy() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
	if fb.color != 0 {
		gl.DeleteTextures(1, &fb.color)
		fb.color = 0
	}
	if fb.depth != 0 {
		gl.DeleteRenderbuffers(1, &fb.depth)
		fb.depth = 0
	}
}
