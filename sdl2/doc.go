// Package sdl2 provides a gosu.Driver on top of SDL2
package sdl2

import (
	"github.com/ignite-laboratories/core"
	"github.com/spajus/gosu"
)

var ModuleName = "sdl2"

func init() {
	gosu.Report()
	core.SubmoduleReport(gosu.ModuleName, ModuleName)
}

func Report() {}
