//go:build js && wasm

package notify

import (
	"syscall/js"

	"github.com/kjkrol/goquad/pkg/gfx"
)

var _ gfx.Notifier = Alert{}

// Alert shows notifications with window.alert.
type Alert struct {
	Messages Messages
}

func (a Alert) Notify(err error) {
	if err == nil {
		return
	}
	js.Global().Call("alert", a.Messages.Format(err))
}
