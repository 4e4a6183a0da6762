//go:build darwin || linux || windows

// quad-mobile runs the renderer as an x/mobile app. A tap on the quad
// selects the next color; a tap beside it resets.
package main

import (
	"log/slog"

	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/kjkrol/goquad/pkg/gfx/mobilegl"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"
)

func main() {
	logger := slog.Default()
	bindings := gfx.DefaultKeyBindings()

	app.Main(func(a app.App) {
		var (
			renderer *gfx.Renderer
			sz       size.Event
		)
		apply := func(t gfx.Trigger) {
			if err := gfx.Apply(renderer, t); err != nil {
				logger.Error("trigger failed", "trigger", t, "error", err)
				return
			}
			logger.Info("color selected", "trigger", t, "color", renderer.Color())
			a.Send(paint.Event{})
		}

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ := e.DrawContext.(gl.Context)
					r, err := gfx.NewRenderer(mobilegl.New(glctx), gfx.RendererConfig{Logger: logger})
					if err != nil {
						logger.Error("renderer init failed", "error", err)
						continue
					}
					renderer = r
					renderer.Resize(sz.WidthPx, sz.HeightPx)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if renderer != nil {
						renderer.Close()
						renderer = nil
					}
				}
			case size.Event:
				sz = e
				if renderer != nil {
					renderer.Resize(sz.WidthPx, sz.HeightPx)
				}
			case paint.Event:
				if renderer == nil || e.External {
					continue
				}
				renderer.Redraw()
				a.Publish()
			case touch.Event:
				if renderer == nil || e.Type != touch.TypeBegin || sz.WidthPx == 0 || sz.HeightPx == 0 {
					continue
				}
				x := e.X/float32(sz.WidthPx)*2 - 1
				y := 1 - e.Y/float32(sz.HeightPx)*2
				if gfx.QuadVertices.Contains(x, y) {
					apply(currentTrigger(renderer).Next())
				} else {
					apply(gfx.TriggerReset)
				}
			case key.Event:
				if renderer == nil || e.Direction != key.DirPress {
					continue
				}
				label := string(e.Rune)
				if e.Code == key.CodeEscape {
					label = "Escape"
				}
				if t, ok := bindings.Lookup(label); ok {
					apply(t)
				}
			}
		}
	})
}

// currentTrigger maps the renderer's color back onto the trigger that
// selects it.
func currentTrigger(r *gfx.Renderer) gfx.Trigger {
	for _, t := range gfx.Triggers {
		if t.Color() == r.Color() {
			return t
		}
	}
	return gfx.TriggerReset
}
