package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/pkg/errors"
	"github.com/spajus/gosu"
	"github.com/spajus/gosu/input"
	"sync"
)

func init() {
	GLVersion.Major = 3
	GLVersion.Minor = 3
	GLVersion.Core = true
}

// GLVersion selects the OpenGL context created alongside the window.
var GLVersion struct {
	Major int
	Minor int
	Core  bool
}

var _ gosu.Driver = (*Driver)(nil)

// Driver drives a single GLFW window. GLFW delivers input through callbacks
// during glfw.PollEvents; the driver buffers them so they can be polled one
// at a time like any other event queue.
//
// GLFW creates the GL context together with the window, so CreateWindow
// allocates both and CreateContext only makes the context current.
type Driver struct {
	Handle *glfw.Window

	mutex  sync.Mutex
	queue  []input.Event
	quit   bool
	pumped bool
	title  string
}

func New() *Driver {
	return &Driver{}
}

func (d *Driver) InitVideo() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize GLFW")
	}
	core.Verbosef(ModuleName, "GLFW %s\n", glfw.GetVersionString())
	return nil
}

func (d *Driver) QuitVideo() {
	glfw.Terminate()
}

func (d *Driver) DesktopSize() (std.XY[int], error) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return std.XY[int]{}, errors.New("no primary monitor")
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return std.XY[int]{}, errors.New("primary monitor has no video mode")
	}
	return std.XY[int]{X: mode.Width, Y: mode.Height}, nil
}

func (d *Driver) CreateWindow(size std.XY[int], fullscreen bool) error {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, GLVersion.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, GLVersion.Minor)
	if GLVersion.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	}
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	// Hidden until positioned, GLFW has no centered hint
	glfw.WindowHint(glfw.Visible, glfw.False)

	// Fullscreen windows take over the primary monitor in its current video
	// mode, so GLFW keeps the desktop mode instead of switching it.
	var monitor *glfw.Monitor
	if fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor == nil {
			return errors.New("no primary monitor")
		}
		mode := monitor.GetVideoMode()
		if mode == nil {
			return errors.New("primary monitor has no video mode")
		}
		for hint, value := range videoModeHints(mode) {
			glfw.WindowHint(hint, value)
		}
		size = std.XY[int]{X: mode.Width, Y: mode.Height}
	}

	h, err := glfw.CreateWindow(size.X, size.Y, "", monitor, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create GLFW window")
	}
	d.Handle = h
	d.title = ""

	if monitor == nil {
		if desktop, err := d.DesktopSize(); err == nil {
			pos := centered(size, desktop)
			h.SetPos(pos.X, pos.Y)
		}
	}

	h.SetKeyCallback(d.keyEvent)
	h.SetMouseButtonCallback(d.mouseButtonEvent)
	h.SetCursorPosCallback(d.cursorPosEvent)
	h.SetScrollCallback(d.scrollEvent)
	h.SetCharCallback(d.charEvent)
	h.SetCloseCallback(d.closeEvent)

	h.Show()
	core.Verbosef(ModuleName, "window created at %dx%d\n", size.X, size.Y)
	return nil
}

func videoModeHints(mode *glfw.VidMode) map[glfw.Hint]int {
	return map[glfw.Hint]int{
		glfw.RedBits:     mode.RedBits,
		glfw.GreenBits:   mode.GreenBits,
		glfw.BlueBits:    mode.BlueBits,
		glfw.RefreshRate: mode.RefreshRate,
	}
}

func centered(size, desktop std.XY[int]) std.XY[int] {
	return std.XY[int]{
		X: (desktop.X - size.X) / 2,
		Y: (desktop.Y - size.Y) / 2,
	}
}

func (d *Driver) DestroyWindow() {
	if d.Handle == nil {
		return
	}
	d.Handle.Destroy()
	d.Handle = nil
}

func (d *Driver) CreateContext() error {
	d.Handle.MakeContextCurrent()
	return nil
}

// DeleteContext detaches the context; GLFW destroys it with the window.
func (d *Driver) DeleteContext() {
	glfw.DetachCurrentContext()
}

func (d *Driver) SetSwapInterval(interval int) error {
	glfw.SwapInterval(interval)
	return nil
}

func (d *Driver) DrawableSize() std.XY[int] {
	w, h := d.Handle.GetFramebufferSize()
	return std.XY[int]{X: w, Y: h}
}

// Title returns the last title set; GLFW 3.3 cannot read it back.
func (d *Driver) Title() string {
	return d.title
}

func (d *Driver) SetTitle(title string) {
	d.Handle.SetTitle(title)
	d.title = title
}

// PollEvent pumps GLFW once per drain, then hands out the buffered events.
// A pending quit request is reported ahead of the rest of the queue.
func (d *Driver) PollEvent() (input.Event, bool) {
	if !d.pumped {
		glfw.PollEvents()
		d.pumped = true
	}
	return d.next()
}

func (d *Driver) next() (input.Event, bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.quit {
		d.quit = false
		d.pumped = false
		return input.QuitEvent{}, true
	}
	if len(d.queue) == 0 {
		d.pumped = false
		return nil, false
	}
	event := d.queue[0]
	d.queue = d.queue[1:]
	return event, true
}

func (d *Driver) push(event input.Event) {
	d.mutex.Lock()
	d.queue = append(d.queue, event)
	d.mutex.Unlock()
}

// PushQuit may be called from any goroutine.
func (d *Driver) PushQuit() error {
	d.mutex.Lock()
	d.quit = true
	d.mutex.Unlock()
	glfw.PostEmptyEvent()
	return nil
}

func (d *Driver) Swap() {
	d.Handle.SwapBuffers()
}
