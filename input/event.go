package input

// Event is a platform event translated by a driver.
type Event interface {
	isEvent()
}

// ButtonEvent reports a key or mouse button changing state.
type ButtonEvent struct {
	Button Button
	Down   bool
}

// MotionEvent reports the pointer position in window pixels.
type MotionEvent struct {
	X, Y float64
}

// WheelEvent reports scroll wheel movement; positive Y scrolls up.
type WheelEvent struct {
	X, Y float64
}

// TextEvent carries UTF-8 text produced by the keyboard.
type TextEvent struct {
	Text string
}

// QuitEvent asks the event loop to stop. It is consumed by the window and
// never reaches Input.
type QuitEvent struct{}

// RawEvent wraps a native event that has no translation.
type RawEvent struct {
	Native any
}

func (ButtonEvent) isEvent() {}
func (MotionEvent) isEvent() {}
func (WheelEvent) isEvent()  {}
func (TextEvent) isEvent()   {}
func (QuitEvent) isEvent()   {}
func (RawEvent) isEvent()    {}
