package gfx

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/kjkrol/goquad/internal/platform"
)

// Notifier is the user-visible failure channel: a dialog, a banner, a
// terminal line. Hosts pick the presentation.
type Notifier interface {
	Notify(err error)
}

type NotifierFunc func(err error)

func (f NotifierFunc) Notify(err error) {
	f(err)
}

type WindowConfig struct {
	// Bindings maps key labels to triggers; nil selects DefaultKeyBindings.
	Bindings KeyBindings
	Notifier Notifier
	Logger   *slog.Logger
	// QueueSize bounds triggers posted from other goroutines.
	QueueSize int
}

const (
	defaultQueueSize = 16
	maxEventWaitMs   = 50
)

// Window binds a platform surface to a Renderer and turns platform events
// into triggers. It is the renderer's single owner: triggers raised
// elsewhere are queued with Post and applied on the ListenEvents goroutine.
type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	renderer           *Renderer
	bindings           KeyBindings
	notifier           Notifier
	logger             *slog.Logger
	triggers           chan Trigger
	dirty              bool
	closed             bool
	ctx                context.Context
	cancel             context.CancelFunc
}

func NewWindow(wrapper platform.PlatformWindowWrapper, renderer *Renderer, conf WindowConfig) *Window {
	if wrapper == nil {
		panic("platform window wrapper is required")
	}
	if renderer == nil {
		panic("renderer is required")
	}
	if conf.Bindings == nil {
		conf.Bindings = DefaultKeyBindings()
	}
	if conf.Logger == nil {
		conf.Logger = slog.Default()
	}
	if conf.QueueSize <= 0 {
		conf.QueueSize = defaultQueueSize
	}
	w := &Window{
		platformWinWrapper: wrapper,
		renderer:           renderer,
		bindings:           conf.Bindings,
		notifier:           conf.Notifier,
		logger:             conf.Logger,
		triggers:           make(chan Trigger, conf.QueueSize),
		dirty:              true,
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	return w
}

func (w *Window) Renderer() *Renderer {
	return w.renderer
}

// Show makes the surface visible and presents the initial frame.
func (w *Window) Show() {
	w.platformWinWrapper.Show()
	w.present()
}

// Post queues t for the event loop. It never blocks and reports false when
// the queue is full.
func (w *Window) Post(t Trigger) bool {
	select {
	case w.triggers <- t:
		return true
	default:
		w.logger.Warn("trigger dropped", "trigger", t)
		return false
	}
}

func (w *Window) Stop() {
	w.cancel()
}

// Close stops the loop, releases the renderer and closes the platform
// window. It is idempotent.
func (w *Window) Close() {
	w.cancel()
	if w.closed {
		return
	}
	w.closed = true
	w.renderer.Close()
	w.platformWinWrapper.Close()
}

// ListenEvents runs the event loop until Stop is called or the platform
// reports DestroyNotify. handle, when non-nil, sees every event after the
// window reacted to it.
func (w *Window) ListenEvents(handle func(event Event), strategy EventsConsumerStrategy) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if strategy == nil {
		strategy = DrainAll()
	}
	poll := func(timeoutMs int) (Event, bool) {
		platformEvent := w.platformWinWrapper.NextEventTimeout(timeoutMs)
		if _, ok := platformEvent.(platform.TimeoutEvent); ok {
			return nil, false
		}
		return convert(platformEvent), true
	}
	dispatch := func(event Event) {
		w.handleEvent(event, handle)
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		default:
		}
		timeoutMs := maxEventWaitMs
		if len(w.triggers) > 0 {
			timeoutMs = 0
		}
		strategy.Consume(poll, dispatch, timeoutMs)
		w.drainTriggers(handle)
		w.present()
	}
}

func (w *Window) handleEvent(event Event, handle func(Event)) {
	switch e := event.(type) {
	case KeyPress:
		if t, ok := w.bindings.Lookup(e.Label); ok {
			w.apply(t, handle)
		}
	case Action:
		t, err := ParseTrigger(e.Name)
		if err != nil {
			w.logger.Warn("unknown action", "name", e.Name, "error", err)
			break
		}
		w.apply(t, handle)
	case Expose:
		w.renderer.Redraw()
		w.dirty = true
	case Resize:
		w.renderer.Resize(e.Width, e.Height)
		w.dirty = true
	case DestroyNotify:
		w.Stop()
	}
	if handle != nil {
		handle(event)
	}
}

func (w *Window) drainTriggers(handle func(Event)) {
	for {
		select {
		case t := <-w.triggers:
			w.apply(t, handle)
		default:
			return
		}
	}
}

func (w *Window) apply(t Trigger, handle func(Event)) {
	err := Apply(w.renderer, t)
	if err != nil {
		w.logger.Error("trigger failed", "trigger", t, "error", err)
		if w.notifier != nil {
			w.notifier.Notify(err)
		}
	} else {
		w.logger.Debug("trigger applied", "trigger", t, "color", w.renderer.Color())
		w.dirty = true
	}
	if handle != nil {
		handle(TriggerApplied{Trigger: t, Err: err})
	}
}

func (w *Window) present() {
	if !w.dirty {
		return
	}
	w.platformWinWrapper.BeginFrame()
	w.platformWinWrapper.EndFrame()
	w.dirty = false
}
