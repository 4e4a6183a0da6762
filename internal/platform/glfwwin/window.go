//go:build !js

// Package glfwwin provides a desktop PlatformWindowWrapper backed by GLFW
// with an OpenGL 3.3 core profile context.
package glfwwin

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjkrol/goquad/internal/platform"
	"github.com/pkg/errors"
)

var _ platform.PlatformWindowWrapper = (*Wrapper)(nil)

// Wrapper owns the GLFW library for its lifetime. GLFW requires every call
// below to happen on the main OS thread.
type Wrapper struct {
	win     *glfw.Window
	pending []platform.Event
	closed  bool
}

// New initializes GLFW, creates a hidden window and makes its context
// current on the calling thread.
func New(conf platform.WindowConfig) (*Wrapper, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw.Init")
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	if conf.BorderWidth == 0 {
		glfw.WindowHint(glfw.Decorated, glfw.False)
	}

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrapf(err, "create %dx%d window", conf.Width, conf.Height)
	}
	if conf.PositionX != 0 || conf.PositionY != 0 {
		win.SetPos(conf.PositionX, conf.PositionY)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &Wrapper{win: win}
	win.SetKeyCallback(w.onKey)
	win.SetMouseButtonCallback(w.onMouseButton)
	win.SetFramebufferSizeCallback(w.onFramebufferSize)
	win.SetRefreshCallback(w.onRefresh)
	win.SetCloseCallback(w.onClose)
	return w, nil
}

func (w *Wrapper) Show() {
	w.win.Show()
	width, height := w.win.GetFramebufferSize()
	w.push(platform.CreateNotify{})
	w.push(platform.Resize{Width: width, Height: height})
}

func (w *Wrapper) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Wrapper) NextEventTimeout(timeoutMs int) platform.Event {
	if e, ok := w.pop(); ok {
		return e
	}
	if w.closed {
		return platform.DestroyNotify{}
	}
	if timeoutMs > 0 {
		glfw.WaitEventsTimeout(float64(timeoutMs) / 1000)
	} else {
		glfw.PollEvents()
	}
	if e, ok := w.pop(); ok {
		return e
	}
	return platform.TimeoutEvent{}
}

// GLContext returns the *glfw.Window whose context is current.
func (w *Wrapper) GLContext() any {
	return w.win
}

func (w *Wrapper) BeginFrame() {
	w.win.MakeContextCurrent()
}

func (w *Wrapper) EndFrame() {
	w.win.SwapBuffers()
}

func (w *Wrapper) push(e platform.Event) {
	w.pending = append(w.pending, e)
}

func (w *Wrapper) pop() (platform.Event, bool) {
	if len(w.pending) == 0 {
		return nil, false
	}
	e := w.pending[0]
	w.pending = w.pending[1:]
	return e, true
}

func (w *Wrapper) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
	label := keyLabel(key, scancode)
	switch action {
	case glfw.Press:
		w.push(platform.KeyPress{Code: uint64(key), Label: label})
	case glfw.Release:
		w.push(platform.KeyRelease{Code: uint64(key), Label: label})
	}
}

func (w *Wrapper) onMouseButton(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	x, y := gw.GetCursorPos()
	// X11 numbering: 1 left, 2 middle, 3 right.
	b := uint32(button) + 1
	switch button {
	case glfw.MouseButtonMiddle:
		b = 2
	case glfw.MouseButtonRight:
		b = 3
	}
	if action == glfw.Press {
		w.push(platform.ButtonPress{Button: b, X: int(x), Y: int(y)})
	} else {
		w.push(platform.ButtonRelease{Button: b, X: int(x), Y: int(y)})
	}
}

func (w *Wrapper) onFramebufferSize(_ *glfw.Window, width, height int) {
	w.push(platform.Resize{Width: width, Height: height})
}

func (w *Wrapper) onRefresh(_ *glfw.Window) {
	w.push(platform.Expose{})
}

func (w *Wrapper) onClose(_ *glfw.Window) {
	w.push(platform.DestroyNotify{})
}

// keyLabel names keys the way browsers fill KeyboardEvent.key so that one
// binding table serves every platform.
func keyLabel(key glfw.Key, scancode int) string {
	switch key {
	case glfw.KeyEscape:
		return "Escape"
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return "Enter"
	case glfw.KeySpace:
		return " "
	case glfw.KeyBackspace:
		return "Backspace"
	case glfw.KeyTab:
		return "Tab"
	}
	if key >= glfw.KeyKP0 && key <= glfw.KeyKP9 {
		return string(rune('0' + int(key-glfw.KeyKP0)))
	}
	return glfw.GetKeyName(key, scancode)
}
