package sdl2

import (
	"github.com/spajus/gosu/input"
	"github.com/veandco/go-sdl2/sdl"
)

func convert(event sdl.Event) input.Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return input.QuitEvent{}
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return input.RawEvent{Native: event}
		}
		return input.ButtonEvent{
			Button: keyButton(e.Keysym.Scancode),
			Down:   e.Type == sdl.KEYDOWN,
		}
	case *sdl.MouseButtonEvent:
		return input.ButtonEvent{
			Button: mouseButton(e.Button),
			Down:   e.Type == sdl.MOUSEBUTTONDOWN,
		}
	case *sdl.MouseMotionEvent:
		return input.MotionEvent{X: float64(e.X), Y: float64(e.Y)}
	case *sdl.MouseWheelEvent:
		x, y := float64(e.X), float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			x, y = -x, -y
		}
		return input.WheelEvent{X: x, Y: y}
	case *sdl.TextInputEvent:
		return input.TextEvent{Text: e.GetText()}
	}
	return input.RawEvent{Native: event}
}

// SDL scancodes are USB-HID usage IDs, the same numbering input.Button uses
// for keyboard buttons.
func keyButton(code sdl.Scancode) input.Button {
	b := input.Button(code)
	if !b.IsKeyboard() {
		return input.NoButton
	}
	return b
}

func mouseButton(button uint8) input.Button {
	switch button {
	case sdl.BUTTON_LEFT:
		return input.MsLeft
	case sdl.BUTTON_MIDDLE:
		return input.MsMiddle
	case sdl.BUTTON_RIGHT:
		return input.MsRight
	case sdl.BUTTON_X1:
		return input.MsOther0
	case sdl.BUTTON_X2:
		return input.MsOther1
	}
	return input.NoButton
}
