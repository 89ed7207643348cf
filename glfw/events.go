package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spajus/gosu/input"
)

func (d *Driver) keyEvent(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	b := keyButton(key)
	if b == input.NoButton {
		d.push(input.RawEvent{Native: key})
		return
	}
	d.push(input.ButtonEvent{Button: b, Down: action == glfw.Press})
}

func (d *Driver) mouseButtonEvent(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	d.push(input.ButtonEvent{Button: mouseButton(button), Down: action == glfw.Press})
}

func (d *Driver) cursorPosEvent(_ *glfw.Window, x, y float64) {
	d.push(input.MotionEvent{X: x, Y: y})
}

func (d *Driver) scrollEvent(_ *glfw.Window, x, y float64) {
	d.push(input.WheelEvent{X: x, Y: y})
}

func (d *Driver) charEvent(_ *glfw.Window, char rune) {
	d.push(input.TextEvent{Text: string(char)})
}

func (d *Driver) closeEvent(w *glfw.Window) {
	// the loop decides when the window goes away
	w.SetShouldClose(false)
	d.mutex.Lock()
	d.quit = true
	d.mutex.Unlock()
}

// keyButton maps GLFW key tokens to USB-HID based buttons.
func keyButton(key glfw.Key) input.Button {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return input.KbA + input.Button(key-glfw.KeyA)
	case key >= glfw.Key1 && key <= glfw.Key9:
		return input.Kb1 + input.Button(key-glfw.Key1)
	case key == glfw.Key0:
		return input.Kb0
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return input.KbF1 + input.Button(key-glfw.KeyF1)
	}
	if b, ok := keys[key]; ok {
		return b
	}
	return input.NoButton
}

var keys = map[glfw.Key]input.Button{
	glfw.KeyEnter:        input.KbReturn,
	glfw.KeyEscape:       input.KbEscape,
	glfw.KeyBackspace:    input.KbBackspace,
	glfw.KeyTab:          input.KbTab,
	glfw.KeySpace:        input.KbSpace,
	glfw.KeyInsert:       input.KbInsert,
	glfw.KeyHome:         input.KbHome,
	glfw.KeyPageUp:       input.KbPageUp,
	glfw.KeyDelete:       input.KbDelete,
	glfw.KeyEnd:          input.KbEnd,
	glfw.KeyPageDown:     input.KbPageDown,
	glfw.KeyRight:        input.KbRight,
	glfw.KeyLeft:         input.KbLeft,
	glfw.KeyDown:         input.KbDown,
	glfw.KeyUp:           input.KbUp,
	glfw.KeyLeftControl:  input.KbLeftControl,
	glfw.KeyLeftShift:    input.KbLeftShift,
	glfw.KeyLeftAlt:      input.KbLeftAlt,
	glfw.KeyLeftSuper:    input.KbLeftMeta,
	glfw.KeyRightControl: input.KbRightControl,
	glfw.KeyRightShift:   input.KbRightShift,
	glfw.KeyRightAlt:     input.KbRightAlt,
	glfw.KeyRightSuper:   input.KbRightMeta,
}

func mouseButton(button glfw.MouseButton) input.Button {
	switch button {
	case glfw.MouseButtonLeft:
		return input.MsLeft
	case glfw.MouseButtonMiddle:
		return input.MsMiddle
	case glfw.MouseButtonRight:
		return input.MsRight
	}
	other := input.MsOther0 + input.Button(button-glfw.MouseButton4)
	if button < glfw.MouseButton4 || other > input.MsRangeEnd {
		return input.NoButton
	}
	return other
}
