package gosu

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/pkg/errors"
	"github.com/spajus/gosu/graphics"
	"github.com/spajus/gosu/input"
	"golang.org/x/text/encoding/unicode"
	"runtime"
	"time"
)

// Window owns a native window, its GL context, a drawing surface and the
// input state, and runs the loop that ties them to the application Hooks.
//
// New, Show and Destroy must be called from the same goroutine, which stays
// locked to its OS thread while the Window exists.
type Window struct {
	ID uint64

	driver   Driver
	hooks    Hooks
	clock    Clock
	interval time.Duration

	graphics Graphics
	input    *input.Input

	synchro   std.Synchro
	destroyed bool
}

// New initializes the video subsystem and opens a window configured by cfg.
//
// On failure every native resource acquired so far is released again and no
// Window is returned.
func New(driver Driver, hooks Hooks, cfg Config) (w *Window, err error) {
	cfg = cfg.withDefaults()
	if hooks == nil {
		hooks = HookFuncs{}
	}

	runtime.LockOSThread()

	var undo []func()
	defer func() {
		if err != nil {
			for i := len(undo) - 1; i >= 0; i-- {
				undo[i]()
			}
			runtime.UnlockOSThread()
		}
	}()

	if err := driver.InitVideo(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize video")
	}
	undo = append(undo, driver.QuitVideo)

	actual := cfg.Size
	if cfg.Fullscreen {
		if actual, err = ScreenSize(driver); err != nil {
			return nil, err
		}
	}

	if err := driver.CreateWindow(actual, cfg.Fullscreen); err != nil {
		return nil, errors.Wrap(err, "failed to create window")
	}
	undo = append(undo, driver.DestroyWindow)

	if err := driver.CreateContext(); err != nil {
		return nil, errors.Wrap(err, "failed to create OpenGL context")
	}
	undo = append(undo, driver.DeleteContext)

	if err := driver.SetSwapInterval(1); err != nil {
		core.Verbosef(ModuleName, "swap interval not supported: %v\n", err)
	}

	g, err := cfg.Graphics(actual, cfg.Fullscreen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create graphics")
	}
	drawable := driver.DrawableSize()
	g.SetDrawableSize(drawable)
	g.SetResolution(cfg.Size)

	w = &Window{
		ID:       core.NextID(),
		driver:   driver,
		hooks:    hooks,
		clock:    cfg.Clock,
		interval: cfg.UpdateInterval,
		graphics: g,
		input:    input.New(),
		synchro:  make(std.Synchro),
	}
	w.input.OnButtonDown = func(id input.Button) { w.hooks.ButtonDown(id) }
	w.input.OnButtonUp = func(id input.Button) { w.hooks.ButtonUp(id) }

	if cfg.Caption != "" {
		w.SetCaption(cfg.Caption)
	}

	if cfg.Fullscreen {
		core.Verbosef(ModuleName, "fullscreen window [%d] created at %dx%d (%dx%d drawable), drawing at %dx%d\n", w.ID, actual.X, actual.Y, drawable.X, drawable.Y, cfg.Size.X, cfg.Size.Y)
	} else {
		core.Verbosef(ModuleName, "window [%d] created at %dx%d (%dx%d drawable)\n", w.ID, actual.X, actual.Y, drawable.X, drawable.Y)
	}
	return w, nil
}

func openGLGraphics(size std.XY[int], _ bool) (Graphics, error) {
	g, err := graphics.New(size)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Destroy releases the GL context, the window and the video subsystem, in
// that order. Calling it again does nothing.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true

	w.driver.DeleteContext()
	w.driver.DestroyWindow()
	w.driver.QuitVideo()
	runtime.UnlockOSThread()

	core.Verbosef(ModuleName, "window [%d] cleaned up\n", w.ID)
}

// Caption returns the window title.
func (w *Window) Caption() string {
	return w.driver.Title()
}

// SetCaption sets the window title. Invalid UTF-8 is replaced with U+FFFD.
func (w *Window) SetCaption(caption string) {
	w.driver.SetTitle(toUTF8(caption))
}

func toUTF8(s string) string {
	out, err := unicode.UTF8.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}

// UpdateInterval returns the pacing target of one loop iteration.
func (w *Window) UpdateInterval() time.Duration {
	return w.interval
}

// Show runs the event loop on the calling goroutine until a quit event is
// polled, either from the platform or from Close.
func (w *Window) Show() {
	for {
		start := w.clock.Now()

		w.synchro.Engage()

		for event, ok := w.driver.PollEvent(); ok; event, ok = w.driver.PollEvent() {
			if _, quit := event.(input.QuitEvent); quit {
				core.Verbosef(ModuleName, "window [%d] loop stopped\n", w.ID)
				return
			}
			w.input.Feed(event)
		}

		w.input.Update()

		w.hooks.Update()

		if w.graphics.Begin() {
			w.hooks.Draw()
			w.graphics.End()
		}

		w.driver.Swap()

		pace(w.clock, start, w.interval)
	}
}

// Close asks a running Show to return. It only enqueues a quit event, so it
// may be called from hooks and from other goroutines; Show observes it at its
// next poll.
func (w *Window) Close() error {
	if err := w.driver.PushQuit(); err != nil {
		return errors.Wrap(err, "failed to push quit event")
	}
	return nil
}

// Invoke runs action on the loop goroutine at the start of the next loop
// iteration and blocks until it has run. It must not be called from the loop
// goroutine itself, and it blocks forever if Show is not running.
func (w *Window) Invoke(action func()) {
	w.synchro.Send(action)
}

// Graphics returns the drawing surface.
func (w *Window) Graphics() Graphics {
	return w.graphics
}

// Input returns the input state.
func (w *Window) Input() *input.Input {
	return w.input
}
