package graphics

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/pkg/errors"
	"sync"
)

var glOnce sync.Once
var glErr error

// ClearColor is the RGBA color a frame starts from.
var ClearColor = [4]float32{0, 0, 0, 1}

// Viewport is a pixel rectangle inside the drawable surface.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Graphics is a drawing surface of a fixed window size exposing a logical
// resolution. The logical resolution is scaled to fit the framebuffer while
// keeping its aspect ratio; the remaining area is left as borders.
type Graphics struct {
	size       std.XY[int]
	drawable   std.XY[int]
	resolution std.XY[int]
	drawing    bool

	// device performs the GL calls; nil in headless use.
	device device
}

type device interface {
	begin(v Viewport)
	end()
}

// New loads the GL function pointers for the current context (once per
// process) and returns a surface of the given size.
func New(size std.XY[int]) (*Graphics, error) {
	glOnce.Do(func() {
		if err := gl.Init(); err != nil {
			glErr = errors.Wrap(err, "failed to initialize OpenGL")
			return
		}
		core.Verbosef(ModuleName, "initialized with %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
	})
	if glErr != nil {
		return nil, glErr
	}

	g := newGraphics(size)
	g.device = glDevice{}
	return g, nil
}

func newGraphics(size std.XY[int]) *Graphics {
	return &Graphics{
		size:       size,
		drawable:   size,
		resolution: size,
	}
}

// Size returns the size of the surface in window coordinates.
func (g *Graphics) Size() std.XY[int] {
	return g.size
}

// DrawableSize returns the size of the framebuffer in pixels. It exceeds Size
// on high-DPI displays.
func (g *Graphics) DrawableSize() std.XY[int] {
	return g.drawable
}

// SetDrawableSize records the framebuffer size reported by the window.
func (g *Graphics) SetDrawableSize(drawable std.XY[int]) {
	g.drawable = drawable
}

// Resolution returns the logical coordinate system used for drawing.
func (g *Graphics) Resolution() std.XY[int] {
	return g.resolution
}

// SetResolution changes the logical coordinate system.
func (g *Graphics) SetResolution(resolution std.XY[int]) {
	g.resolution = resolution
}

// Viewport returns where the logical resolution lands inside the
// framebuffer, in framebuffer pixels.
func (g *Graphics) Viewport() Viewport {
	return letterbox(g.drawable, g.resolution)
}

// Begin opens a frame. It reports false, and opens nothing, if the surface
// or the resolution is empty or a frame is already open.
func (g *Graphics) Begin() bool {
	if g.drawing || g.drawable.X <= 0 || g.drawable.Y <= 0 || g.resolution.X <= 0 || g.resolution.Y <= 0 {
		return false
	}
	g.drawing = true
	if g.device != nil {
		g.device.begin(g.Viewport())
	}
	return true
}

// End closes the frame opened by Begin.
func (g *Graphics) End() {
	if !g.drawing {
		return
	}
	if g.device != nil {
		g.device.end()
	}
	g.drawing = false
}

func letterbox(size, resolution std.XY[int]) Viewport {
	if size.X <= 0 || size.Y <= 0 || resolution.X <= 0 || resolution.Y <= 0 {
		return Viewport{}
	}
	// Compare aspect ratios without floating point: size.X/size.Y vs res.X/res.Y
	if size.X*resolution.Y > resolution.X*size.Y {
		// surface is wider; pillarbox
		w := resolution.X * size.Y / resolution.Y
		return Viewport{X: (size.X - w) / 2, Y: 0, Width: w, Height: size.Y}
	}
	h := resolution.Y * size.X / resolution.X
	return Viewport{X: 0, Y: (size.Y - h) / 2, Width: size.X, Height: h}
}

type glDevice struct{}

func (glDevice) begin(v Viewport) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Viewport(int32(v.X), int32(v.Y), int32(v.Width), int32(v.Height))
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(v.X), int32(v.Y), int32(v.Width), int32(v.Height))
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (glDevice) end() {
	gl.Disable(gl.SCISSOR_TEST)
	gl.Flush()
}
