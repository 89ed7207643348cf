package gosu

import (
	"github.com/ignite-laboratories/core/std"
	"github.com/pkg/errors"
	"sync"
)

// desktopDisplayMode caches the primary display resolution for the lifetime
// of the process. Failed queries are not cached.
var desktopDisplayMode struct {
	sync.Mutex
	populated bool
	size      std.XY[int]
}

// ScreenSize returns the native resolution of the primary display, querying
// the driver only on the first successful call. The driver's video subsystem
// must be initialized.
func ScreenSize(driver Driver) (std.XY[int], error) {
	desktopDisplayMode.Lock()
	defer desktopDisplayMode.Unlock()

	if !desktopDisplayMode.populated {
		size, err := driver.DesktopSize()
		if err != nil {
			return std.XY[int]{}, errors.Wrap(err, "failed to query desktop display mode")
		}
		desktopDisplayMode.size = size
		desktopDisplayMode.populated = true
	}
	return desktopDisplayMode.size, nil
}

// ScreenWidth returns the desktop width, or 0 if it cannot be queried.
func ScreenWidth(driver Driver) int {
	size, _ := ScreenSize(driver)
	return size.X
}

// ScreenHeight returns the desktop height, or 0 if it cannot be queried.
func ScreenHeight(driver Driver) int {
	size, _ := ScreenSize(driver)
	return size.Y
}

func resetDisplayMode() {
	desktopDisplayMode.Lock()
	desktopDisplayMode.populated = false
	desktopDisplayMode.size = std.XY[int]{}
	desktopDisplayMode.Unlock()
}
