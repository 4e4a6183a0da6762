package gfx_test

import (
	"testing"

	"github.com/kjkrol/goquad/internal/platform"
	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/kjkrol/goquad/pkg/gfx/gfxtest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWrapper replays events and reports DestroyNotify once they run out.
type fakeWrapper struct {
	events    []platform.Event
	destroyed bool
	shown     int
	closed    int
	frames    int
}

func (w *fakeWrapper) Show()  { w.shown++ }
func (w *fakeWrapper) Close() { w.closed++ }

func (w *fakeWrapper) NextEventTimeout(int) platform.Event {
	if len(w.events) == 0 {
		if w.destroyed {
			return platform.TimeoutEvent{}
		}
		w.destroyed = true
		return platform.DestroyNotify{}
	}
	e := w.events[0]
	w.events = w.events[1:]
	return e
}

func (w *fakeWrapper) GLContext() any { return nil }
func (w *fakeWrapper) BeginFrame()    {}
func (w *fakeWrapper) EndFrame()      { w.frames++ }

type recordingNotifier struct {
	errs []error
}

func (n *recordingNotifier) Notify(err error) {
	n.errs = append(n.errs, err)
}

func newWindow(t *testing.T, events ...platform.Event) (*gfx.Window, *fakeWrapper, *gfxtest.Context, *recordingNotifier) {
	t.Helper()
	ctx := gfxtest.New(100, 100)
	r, err := gfx.NewRenderer(ctx, gfx.RendererConfig{Logger: quietLogger()})
	require.NoError(t, err)
	wrapper := &fakeWrapper{events: events}
	notifier := &recordingNotifier{}
	w := gfx.NewWindow(wrapper, r, gfx.WindowConfig{Notifier: notifier, Logger: quietLogger()})
	return w, wrapper, ctx, notifier
}

func applied(events []gfx.Event) []gfx.TriggerApplied {
	var out []gfx.TriggerApplied
	for _, e := range events {
		if ta, ok := e.(gfx.TriggerApplied); ok {
			out = append(out, ta)
		}
	}
	return out
}

func TestWindow_KeysAndButtons_UseCase(t *testing.T) {
	w, wrapper, ctx, notifier := newWindow(t,
		platform.KeyPress{Label: "3"},
		platform.KeyRelease{Label: "3"},
		platform.Action{Name: "green"},
		platform.KeyPress{Label: "q"},
		platform.Action{Name: "reset"},
	)
	r := w.Renderer()
	var seen []gfx.Event

	w.Show()
	w.ListenEvents(func(e gfx.Event) { seen = append(seen, e) }, gfx.DrainAll())

	assert.Equal(t, []gfx.TriggerApplied{
		{Trigger: gfx.TriggerBlue},
		{Trigger: gfx.TriggerGreen},
		{Trigger: gfx.TriggerReset},
	}, applied(seen))
	assert.Equal(t, gfx.Black, r.Color())
	assert.Equal(t, black, ctx.Sample(0, 0))
	assert.Contains(t, seen, gfx.Event(gfx.KeyRelease{Label: "3"}))
	assert.Contains(t, seen, gfx.Event(gfx.DestroyNotify{}))
	assert.Equal(t, 1, wrapper.shown)
	assert.GreaterOrEqual(t, wrapper.frames, 2)
	assert.Empty(t, notifier.errs)

	w.Close()
	w.Close()
	assert.Equal(t, 1, wrapper.closed)
	assert.Equal(t, 0, ctx.LivePrograms())
	assert.Empty(t, ctx.Errors)
}

func TestWindow_FailedTriggerNotifies(t *testing.T) {
	w, _, ctx, notifier := newWindow(t, platform.Action{Name: "blue"})
	ctx.FailNextCompile(gfx.FragmentStage, "0:1: bad")
	var seen []gfx.Event

	w.ListenEvents(func(e gfx.Event) { seen = append(seen, e) }, nil)

	require.Len(t, notifier.errs, 1)
	var compileErr *gfx.ShaderCompileError
	assert.True(t, errors.As(notifier.errs[0], &compileErr))
	got := applied(seen)
	require.Len(t, got, 1)
	assert.Error(t, got[0].Err)
	assert.Equal(t, gfx.Red, w.Renderer().Color())
	assert.Equal(t, red, ctx.Sample(0, 0))
	w.Close()
}

func TestWindow_UnknownActionIgnored(t *testing.T) {
	w, _, _, notifier := newWindow(t, platform.Action{Name: "purple"})
	var seen []gfx.Event

	w.ListenEvents(func(e gfx.Event) { seen = append(seen, e) }, gfx.DrainMax(1))

	assert.Empty(t, applied(seen))
	assert.Empty(t, notifier.errs)
	assert.Equal(t, gfx.Red, w.Renderer().Color())
	w.Close()
}

func TestWindow_Post(t *testing.T) {
	ctx := gfxtest.New(100, 100)
	r, err := gfx.NewRenderer(ctx, gfx.RendererConfig{Logger: quietLogger()})
	require.NoError(t, err)
	w := gfx.NewWindow(&fakeWrapper{}, r, gfx.WindowConfig{QueueSize: 2, Logger: quietLogger()})

	assert.True(t, w.Post(gfx.TriggerGreen))
	assert.True(t, w.Post(gfx.TriggerBlue))
	assert.False(t, w.Post(gfx.TriggerReset), "queue is full")

	w.ListenEvents(nil, gfx.DrainAll())

	assert.Equal(t, gfx.Blue, r.Color())
	assert.Equal(t, blue, ctx.Sample(0, 0))
	w.Close()
}

func TestWindow_ResizeAndExpose(t *testing.T) {
	w, _, ctx, _ := newWindow(t,
		platform.Resize{Width: 320, Height: 200},
		platform.Expose{},
	)

	w.ListenEvents(nil, gfx.DrainAll())

	assert.Equal(t, 320, ctx.ViewportSize().X)
	assert.Equal(t, 200, ctx.ViewportSize().Y)
	assert.Equal(t, 3, ctx.Count("DrawArrays"), "initial draw, resize, expose")
	w.Close()
}

func TestWindow_CustomBindings(t *testing.T) {
	ctx := gfxtest.New(100, 100)
	r, err := gfx.NewRenderer(ctx, gfx.RendererConfig{Logger: quietLogger()})
	require.NoError(t, err)
	wrapper := &fakeWrapper{events: []platform.Event{
		platform.KeyPress{Label: "1"},
		platform.KeyPress{Label: "F2"},
	}}
	w := gfx.NewWindow(wrapper, r, gfx.WindowConfig{
		Bindings: gfx.KeyBindings{"F2": gfx.TriggerGreen},
		Logger:   quietLogger(),
	})

	w.ListenEvents(nil, gfx.DrainAll())

	assert.Equal(t, gfx.Green, r.Color())
	w.Close()
}

func TestNewWindowPanicsWithoutDependencies(t *testing.T) {
	ctx := gfxtest.New(10, 10)
	r, err := gfx.NewRenderer(ctx, gfx.RendererConfig{Logger: quietLogger()})
	require.NoError(t, err)
	defer r.Close()

	assert.Panics(t, func() { gfx.NewWindow(nil, r, gfx.WindowConfig{}) })
	assert.Panics(t, func() { gfx.NewWindow(&fakeWrapper{}, nil, gfx.WindowConfig{}) })
}
