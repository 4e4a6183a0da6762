package gfx

import "log/slog"

// DefaultProgramCache holds one program per palette color.
const DefaultProgramCache = 4

// RendererConfig tunes a Renderer.
// ProgramCache is the number of linked programs kept per distinct color:
// 0 selects DefaultProgramCache, a negative value disables caching so the
// previous program is deleted as soon as another one becomes active.
type RendererConfig struct {
	ProgramCache int
	Logger       *slog.Logger
}

func (c RendererConfig) cacheCapacity() int {
	switch {
	case c.ProgramCache == 0:
		return DefaultProgramCache
	case c.ProgramCache < 0:
		return 0
	default:
		return c.ProgramCache
	}
}

func (c RendererConfig) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
