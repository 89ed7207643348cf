package input

import "fmt"

// Button identifies a keyboard key or mouse button.
//
// Keyboard buttons use USB-HID scancodes, so they name physical key positions
// rather than the characters printed on them.
type Button uint32

// NoButton is reported where no button applies.
const NoButton Button = 0xffffffff

const (
	KbRangeBegin Button = 1
	KbRangeEnd   Button = 255
	MsRangeBegin Button = 256
	MsRangeEnd   Button = 264
)

const (
	KbA Button = iota + 4
	KbB
	KbC
	KbD
	KbE
	KbF
	KbG
	KbH
	KbI
	KbJ
	KbK
	KbL
	KbM
	KbN
	KbO
	KbP
	KbQ
	KbR
	KbS
	KbT
	KbU
	KbV
	KbW
	KbX
	KbY
	KbZ
	Kb1
	Kb2
	Kb3
	Kb4
	Kb5
	Kb6
	Kb7
	Kb8
	Kb9
	Kb0
	KbReturn
	KbEscape
	KbBackspace
	KbTab
	KbSpace
)

const (
	KbF1 Button = iota + 58
	KbF2
	KbF3
	KbF4
	KbF5
	KbF6
	KbF7
	KbF8
	KbF9
	KbF10
	KbF11
	KbF12
)

const (
	KbInsert   Button = 73
	KbHome     Button = 74
	KbPageUp   Button = 75
	KbDelete   Button = 76
	KbEnd      Button = 77
	KbPageDown Button = 78
	KbRight    Button = 79
	KbLeft     Button = 80
	KbDown     Button = 81
	KbUp       Button = 82

	KbLeftControl  Button = 224
	KbLeftShift    Button = 225
	KbLeftAlt      Button = 226
	KbLeftMeta     Button = 227
	KbRightControl Button = 228
	KbRightShift   Button = 229
	KbRightAlt     Button = 230
	KbRightMeta    Button = 231
)

const (
	MsLeft Button = iota + MsRangeBegin
	MsMiddle
	MsRight
	MsWheelUp
	MsWheelDown
	MsOther0
	MsOther1
	MsOther2
	MsOther3
)

var names = map[Button]string{
	NoButton:       "NoButton",
	KbReturn:       "Return",
	KbEscape:       "Escape",
	KbBackspace:    "Backspace",
	KbTab:          "Tab",
	KbSpace:        "Space",
	KbInsert:       "Insert",
	KbHome:         "Home",
	KbPageUp:       "PageUp",
	KbDelete:       "Delete",
	KbEnd:          "End",
	KbPageDown:     "PageDown",
	KbRight:        "Right",
	KbLeft:         "Left",
	KbDown:         "Down",
	KbUp:           "Up",
	KbLeftControl:  "LeftControl",
	KbLeftShift:    "LeftShift",
	KbLeftAlt:      "LeftAlt",
	KbLeftMeta:     "LeftMeta",
	KbRightControl: "RightControl",
	KbRightShift:   "RightShift",
	KbRightAlt:     "RightAlt",
	KbRightMeta:    "RightMeta",
	MsLeft:         "MsLeft",
	MsMiddle:       "MsMiddle",
	MsRight:        "MsRight",
	MsWheelUp:      "MsWheelUp",
	MsWheelDown:    "MsWheelDown",
}

// IsKeyboard reports whether b lies in the keyboard range.
func (b Button) IsKeyboard() bool {
	return b >= KbRangeBegin && b <= KbRangeEnd
}

// IsMouse reports whether b lies in the mouse range.
func (b Button) IsMouse() bool {
	return b >= MsRangeBegin && b <= MsRangeEnd
}

func (b Button) String() string {
	if name, ok := names[b]; ok {
		return name
	}
	switch {
	case b >= KbA && b <= KbZ:
		return string(rune('A' + b - KbA))
	case b >= Kb1 && b <= Kb9:
		return string(rune('1' + b - Kb1))
	case b == Kb0:
		return "0"
	case b >= KbF1 && b <= KbF12:
		return fmt.Sprintf("F%d", b-KbF1+1)
	case b >= MsOther0 && b <= MsRangeEnd:
		return fmt.Sprintf("MsOther%d", b-MsOther0)
	case b.IsKeyboard():
		return fmt.Sprintf("Kb(%d)", uint32(b))
	}
	return fmt.Sprintf("Button(%d)", uint32(b))
}
