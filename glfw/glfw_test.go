package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/core/std"
	"github.com/spajus/gosu/input"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestKeyButton(t *testing.T) {
	assert.Equal(t, input.KbA, keyButton(glfw.KeyA))
	assert.Equal(t, input.KbZ, keyButton(glfw.KeyZ))
	assert.Equal(t, input.Kb1, keyButton(glfw.Key1))
	assert.Equal(t, input.Kb9, keyButton(glfw.Key9))
	assert.Equal(t, input.Kb0, keyButton(glfw.Key0))
	assert.Equal(t, input.KbF5, keyButton(glfw.KeyF5))
	assert.Equal(t, input.KbEscape, keyButton(glfw.KeyEscape))
	assert.Equal(t, input.KbRightMeta, keyButton(glfw.KeyRightSuper))
	assert.Equal(t, input.NoButton, keyButton(glfw.KeyUnknown))
}

func TestMouseButton(t *testing.T) {
	assert.Equal(t, input.MsLeft, mouseButton(glfw.MouseButtonLeft))
	assert.Equal(t, input.MsRight, mouseButton(glfw.MouseButtonRight))
	assert.Equal(t, input.MsMiddle, mouseButton(glfw.MouseButtonMiddle))
	assert.Equal(t, input.MsOther0, mouseButton(glfw.MouseButton4))
	assert.Equal(t, input.MsOther3, mouseButton(glfw.MouseButton7))
	assert.Equal(t, input.NoButton, mouseButton(glfw.MouseButton8))
}

func TestCallbacksAreQueued(t *testing.T) {
	d := New()
	d.keyEvent(nil, glfw.KeyA, 0, glfw.Press, 0)
	d.keyEvent(nil, glfw.KeyA, 0, glfw.Repeat, 0)
	d.mouseButtonEvent(nil, glfw.MouseButtonLeft, glfw.Release, 0)
	d.cursorPosEvent(nil, 1.5, 2.5)
	d.scrollEvent(nil, 0, -1)
	d.charEvent(nil, 'ä')
	d.keyEvent(nil, glfw.KeyUnknown, 0, glfw.Press, 0)

	var got []input.Event
	for e, ok := d.next(); ok; e, ok = d.next() {
		got = append(got, e)
	}
	assert.Equal(t, []input.Event{
		input.ButtonEvent{Button: input.KbA, Down: true},
		input.ButtonEvent{Button: input.MsLeft, Down: false},
		input.MotionEvent{X: 1.5, Y: 2.5},
		input.WheelEvent{X: 0, Y: -1},
		input.TextEvent{Text: "ä"},
		input.RawEvent{Native: glfw.KeyUnknown},
	}, got)
}

func TestQuitIsReportedFirst(t *testing.T) {
	d := New()
	d.cursorPosEvent(nil, 1, 1)
	d.mutex.Lock()
	d.quit = true
	d.mutex.Unlock()

	e, ok := d.next()
	assert.True(t, ok)
	assert.Equal(t, input.QuitEvent{}, e)

	e, ok = d.next()
	assert.True(t, ok)
	assert.Equal(t, input.MotionEvent{X: 1, Y: 1}, e)
}

func TestCentered(t *testing.T) {
	assert.Equal(t, std.XY[int]{X: 560, Y: 240}, centered(std.XY[int]{X: 800, Y: 600}, std.XY[int]{X: 1920, Y: 1080}))
}

func TestVideoModeHints(t *testing.T) {
	mode := &glfw.VidMode{Width: 2560, Height: 1440, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 144}
	assert.Equal(t, map[glfw.Hint]int{
		glfw.RedBits:     8,
		glfw.GreenBits:   8,
		glfw.BlueBits:    8,
		glfw.RefreshRate: 144,
	}, videoModeHints(mode))
}
