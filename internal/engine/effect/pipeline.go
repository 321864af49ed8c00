package effect

import (
	"go.uber.org/zap"

	"github.com/Faultbox/surfview/internal/engine/scene"
	"github.com/Faultbox/surfview/internal/logger"
)

// Pipeline is the registry of added effects and the one currently drawing.
// Effects are never removed once added.
type Pipeline struct {
	backend Backend
	rig     Rig

	base    *NullEffect
	effects map[string]Effect
	order   []string
	active  Effect

	width, height int
}

// NewPipeline creates a pipeline drawing through b with the base renderer
// active.
func NewPipeline(b Backend, rig Rig) *Pipeline {
	base := &NullEffect{}
	return &Pipeline{
		backend: b,
		rig:     rig,
		base:    base,
		effects: make(map[string]Effect),
		active:  base,
	}
}

// Add constructs the named effect, sized to the current viewport. Unknown
// names do nothing and report false, so callers can probe availability.
// Adding a name twice keeps the first instance.
func (p *Pipeline) Add(name string) bool {
	if _, ok := p.effects[name]; ok {
		return true
	}
	e, ok := construct(name, p.rig)
	if !ok {
		logger.Debug("effect not available", zap.String("name", name))
		return false
	}
	e.SetSize(p.width, p.height)
	p.effects[name] = e
	p.order = append(p.order, name)
	logger.Debug("effect added", zap.String("name", name))
	return true
}

// Set activates a previously added effect. Any other name selects the base
// renderer.
func (p *Pipeline) Set(name string) {
	e, ok := p.effects[name]
	if !ok {
		if name != Base && name != "" {
			logger.Debug("effect not added, using base renderer", zap.String("name", name))
		}
		p.active = p.base
		return
	}
	p.active = e
}

// IsActive reports whether the named effect is drawing.
func (p *Pipeline) IsActive(name string) bool {
	return p.active.Name() == name
}

// Active returns the name of the drawing effect, or Base.
func (p *Pipeline) Active() string {
	return p.active.Name()
}

// Names returns added effect names in the order they were added.
func (p *Pipeline) Names() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// SetSize resizes the backend and every added effect.
func (p *Pipeline) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.width, p.height = width, height
	p.backend.SetSize(width, height)
	p.base.SetSize(width, height)
	for _, e := range p.effects {
		e.SetSize(width, height)
	}
}

// Render draws one frame through the active effect.
func (p *Pipeline) Render(f scene.Frame) {
	p.active.Render(p.backend, &f)
}

// Effect returns an added effect by name.
func (p *Pipeline) Effect(name string) (Effect, bool) {
	e, ok := p.effects[name]
	return e, ok
}
