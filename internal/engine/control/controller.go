package control

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/surfview/internal/engine/scene"
	"github.com/Faultbox/surfview/internal/logger"
	"github.com/Faultbox/surfview/pkg/math"
)

// Mode is the gesture decided at gesture start.
type Mode int

const (
	None Mode = iota
	Rotate
	Translate
	Zoom
)

func (m Mode) String() string {
	switch m {
	case Rotate:
		return "rotate"
	case Translate:
		return "translate"
	case Zoom:
		return "zoom"
	default:
		return "none"
	}
}

// Config tunes gesture response.
type Config struct {
	// Translate distance per pixel of drag.
	MouseSensitivity float32
	TouchSensitivity float32
	// Pixels of drag per radian of rotation.
	RotateDivisor float32
	// Zoom factor change per pixel of pinch and per wheel step.
	PinchZoomRate float32
	WheelZoomRate float32
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MouseSensitivity: 0.25,
		TouchSensitivity: 1.0,
		RotateDivisor:    150,
		PinchZoomRate:    0.01,
		WheelZoomRate:    0.05,
	}
}

// Controller owns drag state. It listens permanently for gesture starts and
// wheel events, and listens for moves and ends only while a gesture runs.
type Controller struct {
	graph *scene.Graph
	d     *Dispatcher
	cfg   Config

	// Offset is the render surface's top-left corner in event coordinates.
	Offset math.Vec2

	mode        Mode
	sensitivity float32

	last     math.Vec2
	hasLast  bool
	lastDist float32
	hasDist  bool

	gesture   []func()
	permanent []func()
}

// New attaches a controller for graph to d.
func New(graph *scene.Graph, d *Dispatcher, cfg Config) *Controller {
	if cfg.RotateDivisor == 0 {
		cfg.RotateDivisor = DefaultConfig().RotateDivisor
	}
	c := &Controller{graph: graph, d: d, cfg: cfg}
	c.permanent = []func(){
		d.On(PointerDown, c.pointerDown),
		d.On(TouchStart, c.touchStart),
		d.On(Wheel, c.wheel),
	}
	return c
}

// Close ends any gesture and detaches every listener.
func (c *Controller) Close() {
	c.end(Event{})
	for _, detach := range c.permanent {
		detach()
	}
	c.permanent = nil
}

// Mode returns the running gesture's mode, or None.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Active reports whether a gesture is running.
func (c *Controller) Active() bool {
	return c.gesture != nil
}

func (c *Controller) pointerDown(ev Event) {
	c.end(ev)
	if ev.Button == ButtonPrimary {
		c.begin(Rotate, c.cfg.MouseSensitivity)
	} else {
		c.begin(Translate, c.cfg.MouseSensitivity)
	}
	c.gesture = []func(){
		c.d.On(PointerMove, c.pointerMove),
		c.d.On(PointerUp, c.end),
	}
}

func (c *Controller) touchStart(ev Event) {
	c.end(ev)
	switch n := len(ev.Touches); {
	case n == 0:
		return
	case n == 1:
		c.begin(Rotate, c.cfg.TouchSensitivity)
	case n == 2:
		c.begin(Zoom, c.cfg.TouchSensitivity)
	default:
		c.begin(Translate, c.cfg.TouchSensitivity)
	}
	c.gesture = []func(){
		c.d.On(TouchMove, c.touchMove),
		c.d.On(TouchEnd, c.end),
	}
}

func (c *Controller) begin(m Mode, sensitivity float32) {
	c.mode = m
	c.sensitivity = sensitivity
	logger.Debug("gesture start", zap.Stringer("mode", m))
}

// end detaches the gesture listeners and forgets every sample so the next
// gesture starts from a fresh baseline.
func (c *Controller) end(Event) {
	if c.gesture == nil {
		return
	}
	for _, detach := range c.gesture {
		detach()
	}
	logger.Debug("gesture end", zap.Stringer("mode", c.mode))
	c.gesture = nil
	c.mode = None
	c.hasLast = false
	c.hasDist = false
}

func (c *Controller) pointerMove(ev Event) {
	c.drag(math.Vec2{X: ev.X, Y: ev.Y})
}

func (c *Controller) touchMove(ev Event) {
	if len(ev.Touches) == 0 {
		return
	}
	if c.mode == Zoom {
		if len(ev.Touches) >= 2 {
			c.pinch(ev.Touches[0], ev.Touches[1])
		}
		return
	}
	c.drag(ev.Touches[0])
}

// drag applies the movement since the previous sample.
func (c *Controller) drag(p math.Vec2) {
	p = p.Sub(c.Offset)
	if !c.hasLast {
		c.last, c.hasLast = p, true
		return
	}
	d := p.Sub(c.last)
	c.last = p

	switch c.mode {
	case Rotate:
		c.graph.Model.RotateOnWorldAxis(math.UnitX, d.Y/c.cfg.RotateDivisor)
		c.graph.Model.RotateOnWorldAxis(math.UnitY, d.X/c.cfg.RotateDivisor)
	case Translate:
		c.graph.Pan(-d.X*c.sensitivity, d.Y*c.sensitivity)
	}
}

// pinch zooms by the change in distance between two contacts.
func (c *Controller) pinch(a, b math.Vec2) {
	dist := a.Distance(b)
	if c.hasDist {
		c.graph.Zoom(1 + c.cfg.PinchZoomRate*(dist-c.lastDist))
	}
	c.lastDist, c.hasDist = dist, true
}

func (c *Controller) wheel(ev Event) {
	delta := math32.Max(-1, math32.Min(1, ev.Delta))
	if delta == 0 {
		return
	}
	c.graph.Zoom(1 + c.cfg.WheelZoomRate*delta)
}
