package gosu

import (
	"github.com/ignite-laboratories/core/std"
	"github.com/spajus/gosu/input"
)

// Driver is the native windowing layer a Window sits on.
//
// A Driver owns at most one window and one GL context. Apart from PushQuit,
// every method must be called from the goroutine that created the Window.
type Driver interface {
	// InitVideo initializes the video subsystem.
	InitVideo() error
	// QuitVideo shuts the video subsystem down.
	QuitVideo()
	// DesktopSize queries the native resolution of the primary display.
	DesktopSize() (std.XY[int], error)

	// CreateWindow creates a centered, high-DPI, GL-capable window. A
	// fullscreen window is borderless and covers the desktop.
	CreateWindow(size std.XY[int], fullscreen bool) error
	DestroyWindow()
	// CreateContext creates a GL context for the window and makes it current.
	CreateContext() error
	DeleteContext()
	SetSwapInterval(interval int) error
	// DrawableSize returns the size of the GL drawable in pixels, which may
	// exceed the window size on high-DPI displays.
	DrawableSize() std.XY[int]

	Title() string
	SetTitle(title string)

	// PollEvent returns the next pending event without blocking.
	PollEvent() (input.Event, bool)
	// PushQuit enqueues an input.QuitEvent. It is safe from any goroutine.
	PushQuit() error
	// Swap presents the back buffer.
	Swap()
}

// Graphics is the drawing surface owned by a Window.
type Graphics interface {
	Size() std.XY[int]
	// SetDrawableSize tells the surface how many framebuffer pixels back
	// its Size.
	SetDrawableSize(drawable std.XY[int])
	Resolution() std.XY[int]
	SetResolution(resolution std.XY[int])
	Begin() bool
	End()
}

// GraphicsFactory creates the drawing surface once the GL context is current.
type GraphicsFactory func(size std.XY[int], fullscreen bool) (Graphics, error)
