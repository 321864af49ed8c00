package control

// Listener handles one event.
type Listener func(Event)

type entry struct {
	fn Listener
}

// Dispatcher fans events out to the listeners registered for their kind.
type Dispatcher struct {
	listeners map[Kind][]*entry
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Kind][]*entry)}
}

// On registers fn for kind and returns a func that removes it. Calling the
// returned func more than once is harmless.
func (d *Dispatcher) On(kind Kind, fn Listener) (detach func()) {
	e := &entry{fn: fn}
	d.listeners[kind] = append(d.listeners[kind], e)
	return func() {
		list := d.listeners[kind]
		for i, l := range list {
			if l == e {
				d.listeners[kind] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers ev to every listener registered for its kind when the
// dispatch began. Listeners may attach or detach during delivery.
func (d *Dispatcher) Dispatch(ev Event) {
	list := d.listeners[ev.Kind]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*entry, len(list))
	copy(snapshot, list)
	for _, e := range snapshot {
		e.fn(ev)
	}
}

// Listeners returns how many listeners are registered for kind.
func (d *Dispatcher) Listeners(kind Kind) int {
	return len(d.listeners[kind])
}
