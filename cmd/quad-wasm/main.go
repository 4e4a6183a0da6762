//go:build js && wasm

package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"github.com/kjkrol/goquad/internal/notify"
	"github.com/kjkrol/goquad/internal/platform"
	"github.com/kjkrol/goquad/internal/platform/dom"
	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/kjkrol/goquad/pkg/gfx/webgl"
)

func main() {
	// stdout ends up in the browser console.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	alert := notify.Alert{Messages: notify.Browser}

	wrapper := dom.New(platform.WindowConfig{
		Width:       640,
		Height:      480,
		BorderWidth: 1,
	}, dom.DefaultButtons())

	glctx, _ := wrapper.GLContext().(js.Value)
	renderer, err := gfx.NewRenderer(webgl.New(glctx), gfx.RendererConfig{Logger: logger})
	if err != nil {
		logger.Error("renderer init failed", "error", err)
		alert.Notify(err)
		wrapper.Close()
		return
	}

	window := gfx.NewWindow(wrapper, renderer, gfx.WindowConfig{
		Notifier: alert,
		Logger:   logger,
	})
	defer window.Close()

	window.Show()
	window.ListenEvents(nil, gfx.DrainMax(8))
}
