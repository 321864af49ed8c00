package input

import (
	"github.com/Faultbox/surfview/internal/engine/control"
	"github.com/Faultbox/surfview/pkg/math"
)

type finger struct {
	id  int64
	pos math.Vec2
}

// touches tracks the fingers currently down. Every event carries all of
// them in the order they touched, the way browsers report touch lists.
type touches struct {
	fingers []finger
}

func (t *touches) down(id int64, x, y float32) control.Event {
	if i := t.index(id); i >= 0 {
		t.fingers[i].pos = math.Vec2{X: x, Y: y}
	} else {
		t.fingers = append(t.fingers, finger{id: id, pos: math.Vec2{X: x, Y: y}})
	}
	return t.event(control.TouchStart)
}

func (t *touches) move(id int64, x, y float32) control.Event {
	if i := t.index(id); i >= 0 {
		t.fingers[i].pos = math.Vec2{X: x, Y: y}
	}
	return t.event(control.TouchMove)
}

func (t *touches) up(id int64) control.Event {
	if i := t.index(id); i >= 0 {
		t.fingers = append(t.fingers[:i], t.fingers[i+1:]...)
	}
	return t.event(control.TouchEnd)
}

func (t *touches) index(id int64) int {
	for i, f := range t.fingers {
		if f.id == id {
			return i
		}
	}
	return -1
}

func (t *touches) event(kind control.Kind) control.Event {
	pts := make([]math.Vec2, len(t.fingers))
	for i, f := range t.fingers {
		pts[i] = f.pos
	}
	return control.Event{Kind: kind, Touches: pts}
}
