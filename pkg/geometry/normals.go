package geometry

// FlatNormals returns one unit face normal per render vertex, parallel to
// RenderPositions. Every corner of a triangle gets that triangle's normal,
// which gives the faceted look of a de-indexed mesh. Degenerate triangles
// get a zero normal.
func (r *Record) FlatNormals() []float32 {
	normals := make([]float32, len(r.RenderPositions))
	for t := 0; t < r.TriangleCount(); t++ {
		tri := r.Triangle(t)
		a := r.RenderVertex(tri[0])
		n := r.RenderVertex(tri[1]).Sub(a).Cross(r.RenderVertex(tri[2]).Sub(a)).Normalize()
		for _, v := range tri {
			normals[v*3] = n.X
			normals[v*3+1] = n.Y
			normals[v*3+2] = n.Z
		}
	}
	return normals
}
