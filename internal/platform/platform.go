package platform

type WindowConfig struct {
	PositionX   int
	PositionY   int
	Width       int
	Height      int
	BorderWidth int
	Title       string
}

// PlatformWindowWrapper is a visible surface with a GPU context and an event
// source. All methods must be called from the goroutine that created it.
type PlatformWindowWrapper interface {
	Show()
	Close()
	// NextEventTimeout waits up to timeoutMs for the next event and returns
	// TimeoutEvent when none arrived.
	NextEventTimeout(timeoutMs int) Event
	// GLContext returns the backend handle a gfx.Context is built from.
	GLContext() any
	BeginFrame()
	// EndFrame presents what was drawn since BeginFrame.
	EndFrame()
}
