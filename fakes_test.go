package gosu

import (
	"github.com/ignite-laboratories/core/std"
	"github.com/pkg/errors"
	"github.com/spajus/gosu/input"
	"sync"
	"time"
)

// fakeDriver records every native call and serves events from a queue.
type fakeDriver struct {
	mutex sync.Mutex
	calls []string

	desktop        std.XY[int]
	desktopQueries int

	initErr    error
	windowErr  error
	contextErr error

	windowSize std.XY[int]
	// pixelRatio scales windowSize into the drawable size; 0 means 1.
	pixelRatio int
	fullscreen bool
	title      string

	// frames holds the events served per drain; each drain consumes one
	// entry. Once exhausted, drains yield a quit event so loops terminate,
	// unless endless is set.
	frames  [][]input.Event
	endless bool
	queue   []input.Event
	swaps   int
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{desktop: std.XY[int]{X: 1920, Y: 1080}}
}

func (d *fakeDriver) record(call string) {
	d.mutex.Lock()
	d.calls = append(d.calls, call)
	d.mutex.Unlock()
}

func (d *fakeDriver) recorded() []string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return append([]string(nil), d.calls...)
}

func (d *fakeDriver) InitVideo() error {
	d.record("InitVideo")
	return d.initErr
}

func (d *fakeDriver) QuitVideo() { d.record("QuitVideo") }

func (d *fakeDriver) DesktopSize() (std.XY[int], error) {
	d.record("DesktopSize")
	d.desktopQueries++
	return d.desktop, nil
}

func (d *fakeDriver) CreateWindow(size std.XY[int], fullscreen bool) error {
	d.record("CreateWindow")
	if d.windowErr != nil {
		return d.windowErr
	}
	d.windowSize = size
	d.fullscreen = fullscreen
	return nil
}

func (d *fakeDriver) DestroyWindow() { d.record("DestroyWindow") }

func (d *fakeDriver) CreateContext() error {
	d.record("CreateContext")
	return d.contextErr
}

func (d *fakeDriver) DeleteContext() { d.record("DeleteContext") }

func (d *fakeDriver) SetSwapInterval(interval int) error {
	d.record("SetSwapInterval")
	return nil
}

func (d *fakeDriver) DrawableSize() std.XY[int] {
	if d.pixelRatio == 0 {
		return d.windowSize
	}
	return std.XY[int]{X: d.windowSize.X * d.pixelRatio, Y: d.windowSize.Y * d.pixelRatio}
}

func (d *fakeDriver) Title() string { return d.title }

func (d *fakeDriver) SetTitle(title string) { d.title = title }

func (d *fakeDriver) PollEvent() (input.Event, bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.queue == nil {
		switch {
		case len(d.frames) == 0 && d.endless:
			d.queue = []input.Event{}
		case len(d.frames) == 0:
			d.queue = []input.Event{input.QuitEvent{}}
		default:
			d.queue = append([]input.Event{}, d.frames[0]...)
			d.frames = d.frames[1:]
		}
	}
	if len(d.queue) == 0 {
		d.queue = nil
		return nil, false
	}
	event := d.queue[0]
	d.queue = d.queue[1:]
	return event, true
}

func (d *fakeDriver) PushQuit() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.calls = append(d.calls, "PushQuit")
	if d.queue == nil {
		d.frames = append([][]input.Event{{input.QuitEvent{}}}, d.frames...)
	} else {
		d.queue = append(d.queue, input.QuitEvent{})
	}
	return nil
}

func (d *fakeDriver) Swap() {
	d.record("Swap")
	d.swaps++
}

type fakeGraphics struct {
	size         std.XY[int]
	drawableSize std.XY[int]
	resolution   std.XY[int]
	fullscreen   bool
	drawable     bool
	begins       int
	ends         int
}

func (g *fakeGraphics) Size() std.XY[int]                    { return g.size }
func (g *fakeGraphics) SetDrawableSize(drawable std.XY[int]) { g.drawableSize = drawable }
func (g *fakeGraphics) Resolution() std.XY[int]              { return g.resolution }
func (g *fakeGraphics) SetResolution(resolution std.XY[int]) { g.resolution = resolution }

func (g *fakeGraphics) Begin() bool {
	g.begins++
	return g.drawable
}

func (g *fakeGraphics) End() { g.ends++ }

// fakeClock advances only when the test says so and records sleeps.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// testConfig returns a config wired to fakes, recording the created graphics.
func testConfig(size std.XY[int], fullscreen bool, g **fakeGraphics) Config {
	return Config{
		Size:           size,
		Fullscreen:     fullscreen,
		UpdateInterval: 16 * time.Millisecond,
		Clock:          newFakeClock(),
		Graphics: func(size std.XY[int], fullscreen bool) (Graphics, error) {
			*g = &fakeGraphics{size: size, resolution: size, fullscreen: fullscreen, drawable: true}
			return *g, nil
		},
	}
}

var errFake = errors.New("native failure")
