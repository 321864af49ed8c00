package math

import "testing"

func TestVec2Distance(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{3, 4}
	if d := a.Distance(b); d != 5 {
		t.Errorf("Vec2 Distance: got %v, want 5", d)
	}
}

func TestVec3Cross(t *testing.T) {
	result := UnitX.Cross(UnitY)
	if result != UnitZ {
		t.Errorf("X cross Y should be Z, got %v", result)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if abs(v.Length()-1) > 1e-6 {
		t.Errorf("Normalize length: got %v, want 1", v.Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("Normalize of zero vector should be zero")
	}
}

func TestVec3IsFinite(t *testing.T) {
	zero := float32(0)
	tests := []struct {
		v    Vec3
		want bool
	}{
		{Vec3{1, 2, 3}, true},
		{Vec3{zero / zero, 0, 0}, false},
		{Vec3{0, 1 / zero, 0}, false},
	}
	for _, tt := range tests {
		if got := tt.v.IsFinite(); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
