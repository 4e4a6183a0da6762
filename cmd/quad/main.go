//go:build !js

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/kjkrol/goquad/internal/config"
	"github.com/kjkrol/goquad/internal/notify"
	"github.com/kjkrol/goquad/internal/platform/glfwwin"
	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/kjkrol/goquad/pkg/gfx/glbackend"
	"github.com/spf13/pflag"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := pflag.StringP("config", "c", config.DefaultFilename, "YAML config file")
	logLevel := pflag.String("log-level", "", "log level (debug, info, warn, error); overrides the config")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *logLevel != "" {
		cfg.Renderer.LogLevel = *logLevel
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	notifier := notify.NewTerminal(os.Stderr, notify.Desktop)
	if err := run(cfg, logger, notifier); err != nil {
		logger.Error("quad failed", "error", err)
		notifier.Notify(err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger, notifier gfx.Notifier) error {
	wrapper, err := glfwwin.New(cfg.PlatformWindow())
	if err != nil {
		return err
	}
	glctx, err := glbackend.New()
	if err != nil {
		wrapper.Close()
		return err
	}
	logger.Info("context ready", "gl", glctx.String())

	renderer, err := gfx.NewRenderer(glctx, cfg.RendererConfig(logger))
	if err != nil {
		glctx.Close()
		wrapper.Close()
		return err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		renderer.Close()
		glctx.Close()
		wrapper.Close()
		return err
	}

	window := gfx.NewWindow(wrapper, renderer, gfx.WindowConfig{
		Bindings: bindings,
		Notifier: notifier,
		Logger:   logger,
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		window.Stop()
	}()

	window.Show()
	window.ListenEvents(func(event gfx.Event) {
		if e, ok := event.(gfx.TriggerApplied); ok && e.Err == nil {
			logger.Info("color selected", "trigger", e.Trigger, "color", renderer.Color())
		}
	}, gfx.DrainAll())

	renderer.Close()
	glctx.Close()
	window.Close()
	return nil
}
