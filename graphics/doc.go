// Package graphics provides the OpenGL drawing surface a window presents.
package graphics

import (
	"github.com/ignite-laboratories/core"
)

var ModuleName = "graphics"

func init() {
	core.SubmoduleReport("gosu", ModuleName)
}
