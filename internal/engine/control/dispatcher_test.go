package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherOnAndDetach(t *testing.T) {
	d := NewDispatcher()
	var got []string
	detachA := d.On(Wheel, func(Event) { got = append(got, "a") })
	d.On(Wheel, func(Event) { got = append(got, "b") })

	d.Dispatch(Event{Kind: Wheel})
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, d.Listeners(Wheel))

	detachA()
	detachA()
	got = nil
	d.Dispatch(Event{Kind: Wheel})
	assert.Equal(t, []string{"b"}, got)
	assert.Equal(t, 1, d.Listeners(Wheel))
	assert.Equal(t, 0, d.Listeners(PointerMove))
}

func TestDispatcherDetachDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	var detach func()
	detach = d.On(PointerUp, func(Event) {
		calls++
		detach()
	})
	d.On(PointerUp, func(Event) { calls++ })

	d.Dispatch(Event{Kind: PointerUp})
	assert.Equal(t, 2, calls)

	d.Dispatch(Event{Kind: PointerUp})
	assert.Equal(t, 3, calls)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "touch-start", TouchStart.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
