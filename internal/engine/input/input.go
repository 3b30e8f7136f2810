// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventAction
	EventDrag
	EventZoom
)

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionWindSlow
	ActionWindMedium
	ActionWindFast
	ActionToggleNight
	ActionSunLeft
	ActionSunRight
	ActionTogglePanel
	ActionScreenshot
	ActionQuit
)

// Bindings maps scancodes to actions. Both hosts share it.
var Bindings = map[sdl.Scancode]Action{
	sdl.SCANCODE_1:      ActionWindSlow,
	sdl.SCANCODE_2:      ActionWindMedium,
	sdl.SCANCODE_3:      ActionWindFast,
	sdl.SCANCODE_N:      ActionToggleNight,
	sdl.SCANCODE_LEFT:   ActionSunLeft,
	sdl.SCANCODE_RIGHT:  ActionSunRight,
	sdl.SCANCODE_H:      ActionTogglePanel,
	sdl.SCANCODE_F12:    ActionScreenshot,
	sdl.SCANCODE_ESCAPE: ActionQuit,
}

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Action Action
	Width  int
	Height int
	DX, DY float32 // drag delta in pixels, or wheel steps for EventZoom
}

// Input handles all input processing.
type Input struct {
	events   []Event
	dragging bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			// Left/Right repeat while held; everything else fires once.
			if e.Type != sdl.KEYDOWN {
				continue
			}
			action, ok := Bindings[e.Keysym.Scancode]
			if !ok || (e.Repeat != 0 && action != ActionSunLeft && action != ActionSunRight) {
				continue
			}
			i.events = append(i.events, Event{Type: EventAction, Action: action})

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_LEFT {
				i.dragging = e.Type == sdl.MOUSEBUTTONDOWN
			}

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.events = append(i.events, Event{
					Type: EventDrag,
					DX:   float32(e.XRel),
					DY:   float32(e.YRel),
				})
			}

		case *sdl.MouseWheelEvent:
			if e.Y != 0 {
				i.events = append(i.events, Event{Type: EventZoom, DY: float32(e.Y)})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsActionPressed reports whether an action fired this frame.
func (i *Input) IsActionPressed(a Action) bool {
	for _, e := range i.events {
		if e.Type == EventAction && e.Action == a {
			return true
		}
	}
	return false
}
