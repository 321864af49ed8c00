// Package input polls SDL2 events and translates pointer, touch and wheel
// input into viewer control events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/surfview/internal/engine/control"
)

// touchMouseID marks mouse events SDL synthesizes from touches. Those are
// handled as touches instead.
const touchMouseID = ^uint32(0)

// EventType is a host-level event the application loop reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Event represents a processed host event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events   []Event
	controls []control.Event
	touch    touches

	width, height int
}

// New creates an input handler for a window of the given size.
func New(width, height int) *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		controls: make([]control.Event, 0, 16),
		width:    width,
		height:   height,
	}
}

// SetSize updates the size finger coordinates are scaled to.
func (i *Input) SetSize(width, height int) {
	i.width, i.height = width, height
}

// Update polls SDL events. Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.controls = i.controls[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.SetSize(int(e.Data1), int(e.Data2))
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseMotionEvent:
			if e.Which == touchMouseID {
				continue
			}
			i.controls = append(i.controls, control.Event{Kind: control.PointerMove, X: float32(e.X), Y: float32(e.Y)})

		case *sdl.MouseButtonEvent:
			if e.Which == touchMouseID {
				continue
			}
			kind := control.PointerDown
			if e.Type == sdl.MOUSEBUTTONUP {
				kind = control.PointerUp
			}
			i.controls = append(i.controls, control.Event{
				Kind:   kind,
				X:      float32(e.X),
				Y:      float32(e.Y),
				Button: int(e.Button),
			})

		case *sdl.MouseWheelEvent:
			delta := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				delta = -delta
			}
			i.controls = append(i.controls, control.Event{Kind: control.Wheel, Delta: delta})

		case *sdl.TouchFingerEvent:
			x, y := e.X*float32(i.width), e.Y*float32(i.height)
			var ev control.Event
			switch e.Type {
			case sdl.FINGERDOWN:
				ev = i.touch.down(int64(e.FingerID), x, y)
			case sdl.FINGERUP:
				ev = i.touch.up(int64(e.FingerID))
			default:
				ev = i.touch.move(int64(e.FingerID), x, y)
			}
			i.controls = append(i.controls, ev)
		}
	}

	return false
}

// Events returns the host events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Controls returns the control events from the last Update, in order.
func (i *Input) Controls() []control.Event {
	return i.controls
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
