package sdl2

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/pkg/errors"
	"github.com/spajus/gosu"
	"github.com/spajus/gosu/input"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	GLVersion.Major = 3
	GLVersion.Minor = 3
	GLVersion.Core = true
}

// GLVersion selects the OpenGL context requested by CreateContext.
var GLVersion struct {
	Major int
	Minor int
	Core  bool
}

var _ gosu.Driver = (*Driver)(nil)

// Driver drives a single SDL window and its OpenGL context.
type Driver struct {
	Handle  *sdl.Window
	Context sdl.GLContext
}

func New() *Driver {
	return &Driver{}
}

func (d *Driver) InitVideo() error {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "failed to initialize SDL video")
	}

	driver, _ := sdl.GetCurrentVideoDriver()
	core.Verbosef(ModuleName, "SDL video driver: %s\n", driver)
	return nil
}

func (d *Driver) QuitVideo() {
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
}

func (d *Driver) DesktopSize() (std.XY[int], error) {
	mode, err := sdl.GetDesktopDisplayMode(0)
	if err != nil {
		return std.XY[int]{}, errors.Wrap(err, "failed to get desktop display mode")
	}
	return std.XY[int]{X: int(mode.W), Y: int(mode.H)}, nil
}

func (d *Driver) CreateWindow(size std.XY[int], fullscreen bool) error {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, GLVersion.Major)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, GLVersion.Minor)
	if GLVersion.Core {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	} else {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_COMPATIBILITY)
	}
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	var flags uint32 = sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	h, err := sdl.CreateWindow(
		"",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(size.X), int32(size.Y),
		flags,
	)
	if err != nil {
		return errors.Wrap(err, "failed to create SDL window")
	}
	d.Handle = h

	id, _ := h.GetID()
	core.Verbosef(ModuleName, "window [%d] created\n", id)
	return nil
}

func (d *Driver) DestroyWindow() {
	if d.Handle == nil {
		return
	}
	if err := d.Handle.Destroy(); err != nil {
		core.Verbosef(ModuleName, "failed to destroy SDL window: %v\n", err)
	}
	d.Handle = nil
}

func (d *Driver) CreateContext() error {
	glContext, err := d.Handle.GLCreateContext()
	if err != nil {
		return errors.Wrap(err, "failed to create OpenGL context")
	}
	if err := d.Handle.GLMakeCurrent(glContext); err != nil {
		sdl.GLDeleteContext(glContext)
		return errors.Wrap(err, "failed to make OpenGL context current")
	}
	d.Context = glContext
	return nil
}

func (d *Driver) DeleteContext() {
	if d.Context == nil {
		return
	}
	sdl.GLDeleteContext(d.Context)
	d.Context = nil
}

func (d *Driver) SetSwapInterval(interval int) error {
	return sdl.GLSetSwapInterval(interval)
}

func (d *Driver) DrawableSize() std.XY[int] {
	w, h := d.Handle.GLGetDrawableSize()
	return std.XY[int]{X: int(w), Y: int(h)}
}

func (d *Driver) Title() string {
	return d.Handle.GetTitle()
}

func (d *Driver) SetTitle(title string) {
	d.Handle.SetTitle(title)
}

func (d *Driver) PollEvent() (input.Event, bool) {
	event := sdl.PollEvent()
	if event == nil {
		return nil, false
	}
	return convert(event), true
}

// PushQuit is safe to call from any goroutine; SDL's event queue is
// internally locked.
func (d *Driver) PushQuit() error {
	if _, err := sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT}); err != nil {
		return errors.Wrap(err, "failed to push SDL quit event")
	}
	return nil
}

func (d *Driver) Swap() {
	d.Handle.GLSwap()
}
