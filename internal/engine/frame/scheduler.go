package frame

import (
	"github.com/Faultbox/surfview/internal/engine/scene"
	"github.com/Faultbox/surfview/internal/logger"
	"github.com/Faultbox/surfview/pkg/math"
)

// DefaultRotationRate is the autorotation speed in radians per millisecond.
const DefaultRotationRate = 0.00015

// State is the scheduler's position in its loop.
type State int

const (
	Idle State = iota
	Scheduled
	Rendering
)

func (s State) String() string {
	switch s {
	case Scheduled:
		return "scheduled"
	case Rendering:
		return "rendering"
	default:
		return "idle"
	}
}

// Axes selects which model axes autorotate.
type Axes struct {
	X, Y, Z bool
}

// Renderer draws a captured frame. effect.Pipeline implements it.
type Renderer interface {
	Render(f scene.Frame)
}

// Scheduler advances autorotation and renders once per frame callback, then
// asks its Source for the next one.
type Scheduler struct {
	graph    *scene.Graph
	renderer Renderer
	rate     float64

	axes  Axes
	src   Source
	state State

	last    float64
	hasLast bool
}

// New creates an idle scheduler. A non-positive rate uses
// DefaultRotationRate.
func New(graph *scene.Graph, r Renderer, rate float64) *Scheduler {
	if rate <= 0 {
		rate = DefaultRotationRate
	}
	return &Scheduler{graph: graph, renderer: r, rate: rate}
}

// Start begins the loop on src. Starting a running scheduler restarts it, and
// the first frame after a start always has zero delta.
func (s *Scheduler) Start(src Source) {
	if s.state != Idle {
		s.Stop()
	}
	s.src = src
	s.hasLast = false
	s.state = Scheduled
	src.Request(s.tick)
	logger.Debug("render loop started")
}

// Stop cancels the pending callback. A frame in progress finishes but does
// not reschedule.
func (s *Scheduler) Stop() {
	if s.state == Idle {
		return
	}
	if s.src != nil {
		s.src.Cancel()
	}
	s.state = Idle
	logger.Debug("render loop stopped")
}

// State returns the loop state.
func (s *Scheduler) State() State {
	return s.state
}

// SetAutorotate enables or disables autorotation per axis.
func (s *Scheduler) SetAutorotate(a Axes) {
	s.axes = a
}

// Autorotate returns the enabled axes.
func (s *Scheduler) Autorotate() Axes {
	return s.axes
}

func (s *Scheduler) tick(ts float64) {
	s.state = Rendering
	s.Frame(ts)
	if s.state != Rendering {
		// stopped from inside the frame
		return
	}
	s.state = Scheduled
	s.src.Request(s.tick)
}

// Frame renders one frame at timestamp ts (milliseconds). The delta against
// the previous frame drives autorotation; it is zero on the first frame and
// never negative.
func (s *Scheduler) Frame(ts float64) {
	var delta float64
	if s.hasLast && ts > s.last {
		delta = ts - s.last
	}
	s.last, s.hasLast = ts, true

	if delta > 0 {
		s.rotate(float32(delta * s.rate))
	}
	s.renderer.Render(s.graph.Frame())
}

func (s *Scheduler) rotate(angle float32) {
	m := s.graph.Model
	if s.axes.X {
		m.RotateOnAxis(math.UnitX, angle)
	}
	if s.axes.Y {
		m.RotateOnAxis(math.UnitY, angle)
	}
	if s.axes.Z {
		m.RotateOnAxis(math.UnitZ, angle)
	}
}
