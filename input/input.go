package input

import (
	"strings"
	"sync"
)

// Input accumulates fed events and applies them once per update. The zero
// value is ready to use.
//
// Feed may be called from any goroutine; Update and the state queries belong
// to the goroutine running the event loop.
type Input struct {
	// OnButtonDown is invoked during Update for every button that went down.
	OnButtonDown func(Button)
	// OnButtonUp is invoked during Update for every button that went up.
	OnButtonUp func(Button)

	mutex   sync.Mutex
	pending []Event

	down     map[Button]bool
	pressed  map[Button]bool
	released map[Button]bool

	mouseX, mouseY float64
	text           string
}

func New() *Input {
	i := &Input{}
	i.init()
	return i
}

func (i *Input) init() {
	i.down = make(map[Button]bool)
	i.pressed = make(map[Button]bool)
	i.released = make(map[Button]bool)
}

// Feed queues an event for the next Update.
func (i *Input) Feed(event Event) {
	if event == nil {
		return
	}
	i.mutex.Lock()
	i.pending = append(i.pending, event)
	i.mutex.Unlock()
}

// Update applies every queued event in arrival order and fires the button
// callbacks. Edge state (Pressed, Released, Text) describes only this update.
func (i *Input) Update() {
	i.mutex.Lock()
	events := i.pending
	i.pending = nil
	i.mutex.Unlock()

	if i.down == nil {
		i.init()
	}
	clear(i.pressed)
	clear(i.released)
	var text strings.Builder

	for _, event := range events {
		switch e := event.(type) {
		case ButtonEvent:
			if e.Down {
				i.press(e.Button)
			} else {
				i.release(e.Button)
			}
		case MotionEvent:
			i.mouseX, i.mouseY = e.X, e.Y
		case WheelEvent:
			if e.Y > 0 {
				i.press(MsWheelUp)
				i.release(MsWheelUp)
			} else if e.Y < 0 {
				i.press(MsWheelDown)
				i.release(MsWheelDown)
			}
		case TextEvent:
			text.WriteString(e.Text)
		}
	}
	i.text = text.String()
}

func (i *Input) press(b Button) {
	if b == NoButton || i.down[b] {
		return
	}
	i.down[b] = true
	i.pressed[b] = true
	if i.OnButtonDown != nil {
		i.OnButtonDown(b)
	}
}

func (i *Input) release(b Button) {
	if b == NoButton || !i.down[b] {
		return
	}
	delete(i.down, b)
	i.released[b] = true
	if i.OnButtonUp != nil {
		i.OnButtonUp(b)
	}
}

// Down reports whether b is currently held.
func (i *Input) Down(b Button) bool {
	return i.down[b]
}

// Pressed reports whether b went down during the last update.
func (i *Input) Pressed(b Button) bool {
	return i.pressed[b]
}

// Released reports whether b went up during the last update.
func (i *Input) Released(b Button) bool {
	return i.released[b]
}

func (i *Input) MouseX() float64 {
	return i.mouseX
}

func (i *Input) MouseY() float64 {
	return i.mouseY
}

// Text returns the text typed during the last update.
func (i *Input) Text() string {
	return i.text
}
