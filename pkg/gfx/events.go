package gfx

import "github.com/kjkrol/goquad/internal/platform"

type Event interface{}

type Expose struct{}
type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}
type ButtonRelease struct {
	Button uint32
	X, Y   int
}
type Resize struct {
	Width, Height int
}

// Action is a named UI control, e.g. one of the page's color buttons.
type Action struct {
	Name string
}
type CreateNotify struct{}
type DestroyNotify struct{}
type UnexpectedEvent struct{}

// TriggerApplied is delivered to the event handler after a trigger ran.
// Err is nil when the quad was redrawn.
type TriggerApplied struct {
	Trigger Trigger
	Err     error
}

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.Expose:
		return Expose{}
	case platform.KeyPress:
		return KeyPress{Code: e.Code, Label: e.Label}
	case platform.KeyRelease:
		return KeyRelease{Code: e.Code, Label: e.Label}
	case platform.ButtonPress:
		return ButtonPress{Button: e.Button, X: e.X, Y: e.Y}
	case platform.ButtonRelease:
		return ButtonRelease{Button: e.Button, X: e.X, Y: e.Y}
	case platform.Resize:
		return Resize{Width: e.Width, Height: e.Height}
	case platform.Action:
		return Action{Name: e.Name}
	case platform.CreateNotify:
		return CreateNotify{}
	case platform.DestroyNotify:
		return DestroyNotify{}
	default:
		return UnexpectedEvent{}
	}
}
