package control

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/surfview/internal/engine/scene"
	"github.com/Faultbox/surfview/pkg/math"
)

const eps = 1e-4

func setup() (*Controller, *Dispatcher, *scene.Graph) {
	g := scene.New(scene.DefaultConfig())
	d := NewDispatcher()
	return New(g, d, DefaultConfig()), d, g
}

func down(d *Dispatcher, button int, x, y float32) {
	d.Dispatch(Event{Kind: PointerDown, Button: button, X: x, Y: y})
}

func move(d *Dispatcher, x, y float32) {
	d.Dispatch(Event{Kind: PointerMove, X: x, Y: y})
}

func up(d *Dispatcher) {
	d.Dispatch(Event{Kind: PointerUp})
}

func touches(kind Kind, pts ...math.Vec2) Event {
	return Event{Kind: kind, Touches: pts}
}

func assertMat(t *testing.T, want, got math.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

func TestPermanentListeners(t *testing.T) {
	c, d, _ := setup()

	assert.Equal(t, 1, d.Listeners(PointerDown))
	assert.Equal(t, 1, d.Listeners(TouchStart))
	assert.Equal(t, 1, d.Listeners(Wheel))
	assert.Equal(t, 0, d.Listeners(PointerMove))

	c.Close()
	assert.Equal(t, 0, d.Listeners(PointerDown))
	assert.Equal(t, 0, d.Listeners(Wheel))
}

func TestGestureListenersAttachAndDetach(t *testing.T) {
	c, d, _ := setup()

	down(d, ButtonPrimary, 0, 0)
	assert.True(t, c.Active())
	assert.Equal(t, 1, d.Listeners(PointerMove))
	assert.Equal(t, 1, d.Listeners(PointerUp))

	up(d)
	assert.False(t, c.Active())
	assert.Equal(t, None, c.Mode())
	assert.Equal(t, 0, d.Listeners(PointerMove))
	assert.Equal(t, 0, d.Listeners(PointerUp))
}

func TestUnendedGestureDoesNotLeakListeners(t *testing.T) {
	_, d, _ := setup()

	down(d, ButtonPrimary, 0, 0)
	down(d, ButtonPrimary, 0, 0)
	d.Dispatch(touches(TouchStart, math.Vec2{}))
	d.Dispatch(touches(TouchStart, math.Vec2{}, math.Vec2{X: 5}))

	assert.Equal(t, 0, d.Listeners(PointerMove))
	assert.Equal(t, 1, d.Listeners(TouchMove))
	assert.Equal(t, 1, d.Listeners(TouchEnd))
}

func TestModeSelection(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want Mode
	}{
		{"primary button", Event{Kind: PointerDown, Button: ButtonPrimary}, Rotate},
		{"middle button", Event{Kind: PointerDown, Button: 2}, Translate},
		{"right button", Event{Kind: PointerDown, Button: 3}, Translate},
		{"one finger", touches(TouchStart, math.Vec2{}), Rotate},
		{"two fingers", touches(TouchStart, math.Vec2{}, math.Vec2{}), Zoom},
		{"three fingers", touches(TouchStart, math.Vec2{}, math.Vec2{}, math.Vec2{}), Translate},
		{"four fingers", touches(TouchStart, math.Vec2{}, math.Vec2{}, math.Vec2{}, math.Vec2{}), Translate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, d, _ := setup()
			d.Dispatch(tt.ev)
			assert.Equal(t, tt.want, c.Mode())
		})
	}
}

func TestFirstSampleIsBaseline(t *testing.T) {
	_, d, g := setup()

	down(d, ButtonPrimary, 10, 10)
	move(d, 300, 200)
	assert.Equal(t, math.Identity(), g.Model.Matrix())
}

func TestGestureRestartHasNoJump(t *testing.T) {
	_, d, g := setup()

	down(d, ButtonPrimary, 0, 0)
	move(d, 0, 0)
	move(d, 30, 0)
	up(d)
	after := g.Model.Matrix()

	// the new drag starts far from where the last one ended
	down(d, ButtonPrimary, 500, 400)
	move(d, 500, 400)
	assertMat(t, after, g.Model.Matrix())

	move(d, 530, 400)
	twice := g.Model.Matrix()
	assert.InDelta(t, math32.Sin(60.0/150), twice.TransformDirection(math.UnitZ).X, eps)
}

func TestRotateHorizontalDragAfterYQuarterTurn(t *testing.T) {
	_, d, g := setup()
	g.Model.RotateOnAxis(math.UnitY, math32.Pi/2)

	down(d, ButtonPrimary, 0, 0)
	move(d, 0, 0)
	move(d, 75, 0)

	// world Y stays fixed
	assertMat(t, math.RotateAxis(math.UnitY, math32.Pi/2+0.5), g.Model.Matrix())
	assert.InDelta(t, 1, g.Model.Matrix().TransformDirection(math.UnitY).Y, eps)
}

func TestRotateVerticalDragIsWorldAligned(t *testing.T) {
	_, d, g := setup()
	g.Model.RotateOnAxis(math.UnitY, math32.Pi/2)
	naive := g.Model.Transform
	naive.RotateOnAxis(math.UnitX, 75.0/150)

	down(d, ButtonPrimary, 0, 0)
	move(d, 0, 0)
	move(d, 0, 75)

	want := math.RotateAxis(math.UnitX, 0.5).Mul(math.RotateAxis(math.UnitY, math32.Pi/2))
	assertMat(t, want, g.Model.Matrix())

	differs := false
	got, n := g.Model.Matrix(), naive.Matrix()
	for i := range got {
		if math32.Abs(got[i]-n[i]) > eps {
			differs = true
		}
	}
	assert.True(t, differs, "world-aligned rotation must differ from local-axis rotation")
}

func TestMouseTranslate(t *testing.T) {
	_, d, g := setup()

	down(d, 3, 0, 0)
	move(d, 100, 100)
	move(d, 140, 80)

	// x moves against the drag, y with it, at a quarter of the pixel delta
	assert.InDelta(t, -10, g.Camera.Position.X, eps)
	assert.InDelta(t, -5, g.Camera.Position.Y, eps)
	assert.Equal(t, g.Camera.Position, g.Light.Position)
	assert.Equal(t, math.Identity(), g.Model.Matrix())
}

func TestTouchTranslateUsesRawDelta(t *testing.T) {
	_, d, g := setup()
	three := []math.Vec2{{X: 10, Y: 10}, {X: 50}, {X: 90}}

	d.Dispatch(touches(TouchStart, three...))
	d.Dispatch(touches(TouchMove, three...))
	d.Dispatch(touches(TouchMove, math.Vec2{X: 20, Y: 30}))

	assert.InDelta(t, -10, g.Camera.Position.X, eps)
	assert.InDelta(t, 20, g.Camera.Position.Y, eps)
}

func TestOffsetAppliedToSamples(t *testing.T) {
	c, d, g := setup()
	c.Offset = math.Vec2{X: 200, Y: 100}

	down(d, 2, 0, 0)
	move(d, 200, 100)
	move(d, 204, 100)
	assert.InDelta(t, -1, g.Camera.Position.X, eps)
}

func TestPinchZoom(t *testing.T) {
	_, d, g := setup()

	d.Dispatch(touches(TouchStart, math.Vec2{}, math.Vec2{X: 100}))
	d.Dispatch(touches(TouchMove, math.Vec2{}, math.Vec2{X: 100}))
	assert.Equal(t, float32(500), g.Camera.Position.Z, "first pinch sample is a baseline")

	d.Dispatch(touches(TouchMove, math.Vec2{}, math.Vec2{X: 200}))
	assert.InDelta(t, 250, g.Camera.Position.Z, eps)

	d.Dispatch(touches(TouchEnd))
	d.Dispatch(touches(TouchStart, math.Vec2{}, math.Vec2{X: 10}))
	d.Dispatch(touches(TouchMove, math.Vec2{}, math.Vec2{X: 10}))
	assert.InDelta(t, 250, g.Camera.Position.Z, eps, "restart does not inherit the old distance")
}

func TestWheelClampsDelta(t *testing.T) {
	tests := []struct {
		delta float32
		want  float32
	}{
		{1, 500 / 1.05},
		{120, 500 / 1.05},
		{-3, 500 / 0.95},
		{0.5, 500 / 1.025},
		{0, 500},
	}
	for _, tt := range tests {
		_, d, g := setup()
		d.Dispatch(Event{Kind: Wheel, Delta: tt.delta})
		assert.InDelta(t, tt.want, g.Camera.Position.Z, 1e-2, "delta %v", tt.delta)
	}
}

func TestWheelIndependentOfDrag(t *testing.T) {
	c, d, g := setup()
	down(d, ButtonPrimary, 0, 0)
	d.Dispatch(Event{Kind: Wheel, Delta: 1})

	assert.Equal(t, Rotate, c.Mode())
	require.InDelta(t, 500/1.05, g.Camera.Position.Z, 1e-2)
}
