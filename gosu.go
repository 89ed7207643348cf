package gosu

import (
	"github.com/ignite-laboratories/core/std"
	"time"
)

// DefaultSize sets the window size used when a Config leaves it empty.
//
// If not overridden, it defaults to 640x480px
var DefaultSize = std.XY[int]{
	X: 640,
	Y: 480,
}

// DefaultUpdateInterval sets the loop pacing used when a Config leaves it empty.
//
// If not overridden, it defaults to roughly 60 iterations per second.
var DefaultUpdateInterval = 16666666 * time.Nanosecond
