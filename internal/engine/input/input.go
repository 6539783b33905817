// Package input watches SDL2 events for a close request.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Input drains the SDL event queue once per frame.
type Input struct {
	closed bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{}
}

// Update polls all pending events without blocking.
// Returns true once the window has been asked to close.
func (i *Input) Update() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if IsClose(event) {
			i.closed = true
		}
	}
	return i.closed
}

// IsClose reports whether an event asks the viewer to exit.
func IsClose(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.WindowEvent:
		return e.Event == sdl.WINDOWEVENT_CLOSE
	}
	return false
}
