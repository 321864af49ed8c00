// Package geometry holds the surface buffers handed to the viewer by the
// loader: the original indexed mesh and its de-indexed (triangle soup) render
// copy, kept side by side so render-time hits can be mapped back to source
// vertices.
package geometry

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/chewxy/math32"

	"github.com/Faultbox/surfview/pkg/math"
)

// Validation errors.
var (
	ErrInvalidVertices = errors.New("geometry: vertex buffer length is not a multiple of 3")
	ErrInvalidIndices  = errors.New("geometry: index buffer length is not a multiple of 3")
	ErrIndexRange      = errors.New("geometry: index out of range")
	ErrMapping         = errors.New("geometry: render-to-original table does not match render vertices")
)

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Record is one loaded surface object.
//
// RenderPositions and RenderToOriginal are parallel tables over render
// vertices: render vertex i sits at RenderPositions[3i:3i+3] and was copied
// from original vertex RenderToOriginal[i].
type Record struct {
	OriginalVertices []float32
	OriginalIndices  []uint32

	RenderPositions  []float32
	RenderIndices    []uint32
	RenderToOriginal []uint32

	// Colors is optional RGBA per render vertex.
	Colors []float32

	// Centroid was subtracted from RenderPositions. It is only meaningful
	// when HasCentroid is set.
	Centroid    math.Vec3
	HasCentroid bool

	// Bounds of RenderPositions.
	Bounds Bounds
}

// Build de-indexes an indexed mesh and recenters it on its centroid.
func Build(vertices []float32, indices []uint32) (*Record, error) {
	if err := validateIndexed(vertices, indices); err != nil {
		return nil, err
	}
	return BuildWithCentroid(vertices, indices, Centroid(vertices))
}

// BuildWithCentroid de-indexes an indexed mesh and shifts every render vertex
// by -centroid. A non-finite centroid is treated as the origin.
func BuildWithCentroid(vertices []float32, indices []uint32, centroid math.Vec3) (*Record, error) {
	if err := validateIndexed(vertices, indices); err != nil {
		return nil, err
	}

	r := &Record{
		OriginalVertices: vertices,
		OriginalIndices:  indices,
	}
	if centroid.IsFinite() {
		r.Centroid = centroid
		r.HasCentroid = true
	}

	r.RenderPositions, r.RenderToOriginal = Deindex(vertices, indices)
	if r.HasCentroid {
		for i := 0; i < len(r.RenderPositions); i += 3 {
			r.RenderPositions[i] -= r.Centroid.X
			r.RenderPositions[i+1] -= r.Centroid.Y
			r.RenderPositions[i+2] -= r.Centroid.Z
		}
	}
	r.RenderIndices = make([]uint32, len(r.RenderToOriginal))
	for i := range r.RenderIndices {
		r.RenderIndices[i] = uint32(i)
	}
	r.Bounds = computeBounds(r.RenderPositions)
	return r, nil
}

// Deindex flattens an indexed mesh into a triangle soup. The returned table
// maps each render vertex to the original vertex it was copied from, which for
// a straight flattening is a copy of indices.
func Deindex(vertices []float32, indices []uint32) (positions []float32, toOriginal []uint32) {
	positions = make([]float32, 0, len(indices)*3)
	toOriginal = make([]uint32, len(indices))
	for i, idx := range indices {
		positions = append(positions, vertices[idx*3], vertices[idx*3+1], vertices[idx*3+2])
		toOriginal[i] = idx
	}
	return positions, toOriginal
}

// Centroid returns the center of the bounding box of a flat vertex buffer.
func Centroid(vertices []float32) math.Vec3 {
	if len(vertices) < 3 {
		return math.Vec3{}
	}
	b := computeBounds(vertices)
	return math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
}

// Validate checks the buffer invariants of a record supplied by an external
// loader.
func (r *Record) Validate() error {
	if err := validateIndexed(r.OriginalVertices, r.OriginalIndices); err != nil {
		return err
	}
	if len(r.RenderPositions)%3 != 0 {
		return ErrInvalidVertices
	}
	renderCount := uint32(len(r.RenderPositions) / 3)
	if len(r.RenderToOriginal) != int(renderCount) {
		return fmt.Errorf("%w: %d entries for %d render vertices", ErrMapping, len(r.RenderToOriginal), renderCount)
	}
	originalCount := uint32(len(r.OriginalVertices) / 3)
	for i, o := range r.RenderToOriginal {
		if o >= originalCount {
			return fmt.Errorf("%w: render vertex %d maps to %d", ErrIndexRange, i, o)
		}
	}
	if r.RenderIndices != nil {
		if len(r.RenderIndices)%3 != 0 {
			return ErrInvalidIndices
		}
		for i, idx := range r.RenderIndices {
			if idx >= renderCount {
				return fmt.Errorf("%w: render index %d = %d", ErrIndexRange, i, idx)
			}
		}
	}
	return nil
}

// TriangleCount returns the number of render triangles.
func (r *Record) TriangleCount() int {
	if r.RenderIndices != nil {
		return len(r.RenderIndices) / 3
	}
	return len(r.RenderPositions) / 9
}

// Triangle returns the render vertex indices of triangle t.
func (r *Record) Triangle(t int) [3]uint32 {
	if r.RenderIndices != nil {
		return [3]uint32{r.RenderIndices[t*3], r.RenderIndices[t*3+1], r.RenderIndices[t*3+2]}
	}
	base := uint32(t * 3)
	return [3]uint32{base, base + 1, base + 2}
}

// RenderVertex returns the centered position of render vertex i.
func (r *Record) RenderVertex(i uint32) math.Vec3 {
	return math.Vec3{X: r.RenderPositions[i*3], Y: r.RenderPositions[i*3+1], Z: r.RenderPositions[i*3+2]}
}

// OriginalVertex returns the uncentered position of original vertex i.
func (r *Record) OriginalVertex(i uint32) math.Vec3 {
	return math.Vec3{X: r.OriginalVertices[i*3], Y: r.OriginalVertices[i*3+1], Z: r.OriginalVertices[i*3+2]}
}

// OriginalIndex maps render vertex i to its source vertex.
func (r *Record) OriginalIndex(i uint32) uint32 {
	return r.RenderToOriginal[i]
}

// OriginalVertexCount returns the number of source vertices.
func (r *Record) OriginalVertexCount() int {
	return len(r.OriginalVertices) / 3
}

// RefreshBounds recomputes Bounds from RenderPositions.
func (r *Record) RefreshBounds() {
	r.Bounds = computeBounds(r.RenderPositions)
}

func validateIndexed(vertices []float32, indices []uint32) error {
	if len(vertices)%3 != 0 {
		return ErrInvalidVertices
	}
	if len(indices)%3 != 0 {
		return ErrInvalidIndices
	}
	count := uint32(len(vertices) / 3)
	for i, idx := range indices {
		if idx >= count {
			return fmt.Errorf("%w: index %d = %d (vertices: %d)", ErrIndexRange, i, idx, count)
		}
	}
	return nil
}

func computeBounds(positions []float32) Bounds {
	if len(positions) < 3 {
		return Bounds{}
	}
	const big = float32(gomath.MaxFloat32)
	b := Bounds{
		Min: [3]float32{big, big, big},
		Max: [3]float32{-big, -big, -big},
	}
	for i := 0; i+2 < len(positions); i += 3 {
		for a := 0; a < 3; a++ {
			b.Min[a] = math32.Min(b.Min[a], positions[i+a])
			b.Max[a] = math32.Max(b.Max[a], positions[i+a])
		}
	}
	return b
}
