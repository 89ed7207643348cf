package gosu

import "github.com/spajus/gosu/input"

// Hooks are the application callbacks a Window drives. All of them run on the
// goroutine executing Window.Show.
type Hooks interface {
	// Update runs once per loop iteration, after input has been updated.
	Update()
	// Draw runs once per loop iteration when the graphics surface is drawable.
	Draw()
	ButtonDown(id input.Button)
	ButtonUp(id input.Button)
}

// HookFuncs implements Hooks with optional functions.
type HookFuncs struct {
	OnUpdate     func()
	OnDraw       func()
	OnButtonDown func(input.Button)
	OnButtonUp   func(input.Button)
}

func (h HookFuncs) Update() {
	if h.OnUpdate != nil {
		h.OnUpdate()
	}
}

func (h HookFuncs) Draw() {
	if h.OnDraw != nil {
		h.OnDraw()
	}
}

func (h HookFuncs) ButtonDown(id input.Button) {
	if h.OnButtonDown != nil {
		h.OnButtonDown(id)
	}
}

func (h HookFuncs) ButtonUp(id input.Button) {
	if h.OnButtonUp != nil {
		h.OnButtonUp(id)
	}
}
