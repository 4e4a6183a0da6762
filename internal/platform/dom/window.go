//go:build js && wasm

// Package dom provides a browser PlatformWindowWrapper: a WebGL canvas plus
// the page's color buttons.
package dom

import (
	"fmt"
	"syscall/js"
	"time"

	"github.com/kjkrol/goquad/internal/platform"
)

var _ platform.PlatformWindowWrapper = (*Wrapper)(nil)

const eventQueueSize = 64

// CanvasID is the element looked up before a canvas is created.
const CanvasID = "glCanvas"

// DefaultButtons maps the page's button ids to trigger names.
func DefaultButtons() map[string]string {
	return map[string]string{
		"button1": "red",
		"button2": "green",
		"button3": "blue",
		"button4": "reset",
	}
}

type listener struct {
	target js.Value
	typ    string
	fn     js.Func
}

type Wrapper struct {
	canvas    js.Value
	gl        js.Value
	events    chan platform.Event
	listeners []listener
	closed    bool
}

// New reuses the page's #glCanvas or appends a new canvas sized by conf,
// requests a "webgl" context and wires keyboard and button listeners.
// buttons maps element ids to Action names; nil selects DefaultButtons.
func New(conf platform.WindowConfig, buttons map[string]string) *Wrapper {
	doc := js.Global().Get("document")
	if conf.Title != "" {
		doc.Set("title", conf.Title)
	}

	canvas := doc.Call("getElementById", CanvasID)
	if canvas.IsNull() {
		canvas = doc.Call("createElement", "canvas")
		canvas.Set("id", CanvasID)
		canvas.Set("width", conf.Width)
		canvas.Set("height", conf.Height)
		style := canvas.Get("style")
		style.Set("border", fmt.Sprintf("%dpx solid black", conf.BorderWidth))
		doc.Get("body").Call("appendChild", canvas)
	}
	canvas.Call("setAttribute", "tabindex", "0")

	w := &Wrapper{
		canvas: canvas,
		gl:     canvas.Call("getContext", "webgl"),
		events: make(chan platform.Event, eventQueueSize),
	}

	w.listen(doc, "keydown", func(e js.Value) {
		w.send(platform.KeyPress{Label: e.Get("key").String()})
	})
	w.listen(doc, "keyup", func(e js.Value) {
		w.send(platform.KeyRelease{Label: e.Get("key").String()})
	})

	if buttons == nil {
		buttons = DefaultButtons()
	}
	for id, name := range buttons {
		el := doc.Call("getElementById", id)
		if el.IsNull() {
			continue
		}
		w.listen(el, "click", func(js.Value) {
			w.send(platform.Action{Name: name})
		})
	}
	return w
}

func (w *Wrapper) listen(target js.Value, typ string, f func(js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			f(args[0])
		}
		return nil
	})
	target.Call("addEventListener", typ, fn)
	w.listeners = append(w.listeners, listener{target: target, typ: typ, fn: fn})
}

// send never blocks: JS callbacks run on the browser's event loop.
func (w *Wrapper) send(e platform.Event) {
	select {
	case w.events <- e:
	default:
	}
}

func (w *Wrapper) Show() {
	w.canvas.Call("focus")
	w.send(platform.CreateNotify{})
	w.send(platform.Resize{
		Width:  w.canvas.Get("width").Int(),
		Height: w.canvas.Get("height").Int(),
	})
}

func (w *Wrapper) Close() {
	if w.closed {
		return
	}
	w.closed = true
	for _, l := range w.listeners {
		l.target.Call("removeEventListener", l.typ, l.fn)
		l.fn.Release()
	}
	w.listeners = nil
	w.send(platform.DestroyNotify{})
}

func (w *Wrapper) NextEventTimeout(timeoutMs int) platform.Event {
	if timeoutMs <= 0 {
		select {
		case e := <-w.events:
			return e
		default:
			return platform.TimeoutEvent{}
		}
	}
	select {
	case e := <-w.events:
		return e
	case <-time.After(time.Duration(timeoutMs) * time.Millisecond):
		return platform.TimeoutEvent{}
	}
}

// GLContext returns the WebGL rendering context, null when the browser
// refused to create one.
func (w *Wrapper) GLContext() any {
	return w.gl
}

func (w *Wrapper) BeginFrame() {}

// EndFrame is a no-op: the browser composites the canvas itself.
func (w *Wrapper) EndFrame() {}
