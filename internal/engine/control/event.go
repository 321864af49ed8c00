// Package control turns pointer, touch and wheel input into camera and model
// transforms.
package control

import "github.com/Faultbox/surfview/pkg/math"

// Kind identifies an input event.
type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	TouchStart
	TouchMove
	TouchEnd
	Wheel
)

var kindNames = [...]string{"pointer-down", "pointer-move", "pointer-up", "touch-start", "touch-move", "touch-end", "wheel"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ButtonPrimary is the button number of the primary (left) mouse button.
const ButtonPrimary = 1

// Event is one input sample in window coordinates.
type Event struct {
	Kind Kind

	// Pointer position.
	X, Y   float32
	Button int

	// Touches holds every contact currently down, in order.
	Touches []math.Vec2

	// Delta is the wheel movement; positive scrolls away from the user.
	Delta float32
}
