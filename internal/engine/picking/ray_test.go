package picking

import (
	"testing"

	"github.com/Faultbox/surfview/internal/engine/camera"
	"github.com/Faultbox/surfview/pkg/math"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestScreenToRayCenter(t *testing.T) {
	cam := camera.New(30, 1, 1, 10000)
	cam.Position = math.Vec3{Z: 500}

	ray := ScreenToRay(50, 50, 100, 100, cam.ViewProjection().Inverse())

	if abs(ray.Origin.X) > 1e-3 || abs(ray.Origin.Y) > 1e-3 {
		t.Errorf("origin off axis: %v", ray.Origin)
	}
	if abs(ray.Origin.Z-499) > 1e-2 {
		t.Errorf("origin z = %v, want near plane 499", ray.Origin.Z)
	}
	if abs(ray.Direction.Z+1) > 1e-4 {
		t.Errorf("direction = %v, want -Z", ray.Direction)
	}
}

func TestScreenToRayYIsFlipped(t *testing.T) {
	cam := camera.New(30, 1, 1, 10000)
	cam.Position = math.Vec3{Z: 500}
	inv := cam.ViewProjection().Inverse()

	top := ScreenToRay(50, 0, 100, 100, inv)
	left := ScreenToRay(0, 50, 100, 100, inv)

	if top.Direction.Y <= 0 {
		t.Errorf("top of screen should point up, got %v", top.Direction)
	}
	if left.Direction.X >= 0 {
		t.Errorf("left of screen should point left, got %v", left.Direction)
	}
}

func TestIntersectAABB(t *testing.T) {
	box := NewAABB(math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: -1, Y: -1, Z: -1})

	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float32
	}{
		{"front", Ray{math.Vec3{Z: 5}, math.Vec3{Z: -1}}, true, 4},
		{"inside", Ray{math.Vec3{}, math.Vec3{X: 1}}, true, 1},
		{"behind", Ray{math.Vec3{Z: 5}, math.Vec3{Z: 1}}, false, 0},
		{"parallel outside", Ray{math.Vec3{X: 2, Z: 5}, math.Vec3{Z: -1}}, false, 0},
		{"diagonal", Ray{math.Vec3{X: 3, Y: 3, Z: 3}, math.Vec3{X: -1, Y: -1, Z: -1}}, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(box)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && abs(got-tt.wantT) > 1e-5 {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestIntersectTriangle(t *testing.T) {
	a := math.Vec3{}
	b := math.Vec3{X: 10}
	c := math.Vec3{Y: 10}

	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float32
	}{
		{"front face", Ray{math.Vec3{X: 2, Y: 2, Z: 5}, math.Vec3{Z: -1}}, true, 5},
		{"back face", Ray{math.Vec3{X: 2, Y: 2, Z: -5}, math.Vec3{Z: 1}}, true, 5},
		{"outside", Ray{math.Vec3{X: 8, Y: 8, Z: 5}, math.Vec3{Z: -1}}, false, 0},
		{"behind origin", Ray{math.Vec3{X: 2, Y: 2, Z: 5}, math.Vec3{Z: 1}}, false, 0},
		{"parallel", Ray{math.Vec3{X: -1, Y: 2}, math.Vec3{X: 1}}, false, 0},
		{"unnormalized", Ray{math.Vec3{X: 2, Y: 2, Z: 5}, math.Vec3{Z: -2}}, true, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectTriangle(a, b, c)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && abs(got-tt.wantT) > 1e-5 {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}
