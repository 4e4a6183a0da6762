package gfx

import (
	"strings"

	"github.com/pkg/errors"
)

// Trigger is one of the four discrete "select color" events.
type Trigger uint8

const (
	TriggerRed Trigger = iota
	TriggerGreen
	TriggerBlue
	TriggerReset
)

var ErrUnknownTrigger = errors.New("gfx: unknown trigger")

// Triggers lists every trigger in button order.
var Triggers = [...]Trigger{TriggerRed, TriggerGreen, TriggerBlue, TriggerReset}

func (t Trigger) String() string {
	switch t {
	case TriggerRed:
		return "red"
	case TriggerGreen:
		return "green"
	case TriggerBlue:
		return "blue"
	case TriggerReset:
		return "reset"
	default:
		return "unknown"
	}
}

func (t Trigger) Color() Color {
	switch t {
	case TriggerRed:
		return Red
	case TriggerGreen:
		return Green
	case TriggerBlue:
		return Blue
	default:
		return Black
	}
}

// Next returns the trigger after t in button order, wrapping to red.
func (t Trigger) Next() Trigger {
	return Triggers[(int(t)+1)%len(Triggers)]
}

// ParseTrigger accepts a trigger name or anything ParseColor understands that
// names one of the trigger colors.
func ParseTrigger(s string) (Trigger, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Triggers {
		if t.String() == name {
			return t, nil
		}
	}
	c, err := ParseColor(name)
	if err != nil {
		return 0, errors.Wrapf(ErrUnknownTrigger, "%q", s)
	}
	for _, t := range Triggers {
		if t.Color() == c {
			return t, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownTrigger, "%q is not a trigger color", s)
}

// Apply runs t against r.
func Apply(r *Renderer, t Trigger) error {
	switch t {
	case TriggerRed, TriggerGreen, TriggerBlue:
		return r.SetColor(t.Color())
	case TriggerReset:
		return r.Reset()
	default:
		return errors.Wrapf(ErrUnknownTrigger, "%d", t)
	}
}

// KeyBindings maps platform key labels to triggers.
type KeyBindings map[string]Trigger

func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		"1":      TriggerRed,
		"r":      TriggerRed,
		"2":      TriggerGreen,
		"g":      TriggerGreen,
		"3":      TriggerBlue,
		"b":      TriggerBlue,
		"0":      TriggerReset,
		"Escape": TriggerReset,
	}
}

func (kb KeyBindings) Lookup(label string) (Trigger, bool) {
	if t, ok := kb[label]; ok {
		return t, true
	}
	t, ok := kb[strings.ToLower(label)]
	return t, ok
}
