// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SurfaceVertexShader transforms surface vertices into clip space.
//
//go:embed surface.vert
var SurfaceVertexShader string

// SurfaceFragmentShader shades the surface with the point light.
//
//go:embed surface.frag
var SurfaceFragmentShader string

// CompositeVertexShader emits a full-screen triangle.
//
//go:embed composite.vert
var CompositeVertexShader string

// AnaglyphFragmentShader mixes two eye images into a red/cyan image.
//
//go:embed anaglyph.frag
var AnaglyphFragmentShader string

// InterlaceFragmentShader alternates rows between two eye images.
//
//go:embed interlace.frag
var InterlaceFragmentShader string
