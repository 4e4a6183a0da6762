package platform

type Event interface{}

type Expose struct{}
type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}
type ButtonRelease struct {
	Button uint32
	X, Y   int
}

// Resize reports the new drawable size in pixels.
type Resize struct {
	Width, Height int
}

// Action is a named UI control being activated, e.g. a page button.
type Action struct {
	Name string
}
type CreateNotify struct{}
type DestroyNotify struct{}
type UnexpectedEvent struct{}
type TimeoutEvent struct{}
