package picking

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/surfview/internal/engine/scene"
	"github.com/Faultbox/surfview/internal/logger"
	"github.com/Faultbox/surfview/pkg/math"
)

// Result is a resolved pick.
type Result struct {
	// Index is the original (source mesh) vertex nearest the hit.
	Index uint32
	// Point is the world-space intersection.
	Point  math.Vec3
	Object *scene.Object
}

// Picker answers point queries against a scene. It never mutates the scene.
type Picker struct {
	graph *scene.Graph
}

// New creates a picker for graph.
func New(graph *scene.Graph) *Picker {
	return &Picker{graph: graph}
}

// Pick returns the original vertex under pixel (x, y), measured from the
// surface's top-left corner. ok is false when nothing is under the cursor.
func (p *Picker) Pick(x, y float32) (r Result, ok bool) {
	w, h := p.graph.Viewport()
	if w <= 0 || h <= 0 {
		return Result{}, false
	}
	inv, invertible := p.graph.Camera.ViewProjection().Invert()
	if !invertible {
		return Result{}, false
	}
	ray := ScreenToRay(x, y, float32(w), float32(h), inv)

	hits := Raycast(ray, p.graph.Objects())
	if len(hits) == 0 {
		return Result{}, false
	}
	return Resolve(hits[0])
}

// Resolve maps a hit on render geometry to the nearest original vertex of
// its triangle. The hit point is carried into the object's local space and
// the centroid added back, which puts it in the same space as the source
// vertices. Ties go to the first triangle corner.
func Resolve(hit Hit) (Result, bool) {
	o := hit.Object
	g := o.Geometry
	inv, ok := o.WorldMatrix().Invert()
	if !ok {
		return Result{}, false
	}
	centroid, _ := o.Centroid()
	local := inv.TransformPoint(hit.Point).Add(centroid)

	best := g.OriginalIndex(hit.Vertices[0])
	bestDist := float32(math32.Inf(1))
	for _, rv := range hit.Vertices {
		idx := g.OriginalIndex(rv)
		d := local.Distance(g.OriginalVertex(idx))
		if d < bestDist {
			best, bestDist = idx, d
		}
	}

	logger.Debug("pick",
		zap.String("object", o.Name),
		zap.Uint32("vertex", best),
		zap.Float32("distance", bestDist))
	return Result{Index: best, Point: hit.Point, Object: o}, true
}
