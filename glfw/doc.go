// Package glfw provides a gosu.Driver on top of GLFW
package glfw

import (
	"github.com/ignite-laboratories/core"
	"github.com/spajus/gosu"
)

var ModuleName = "glfw"

func init() {
	gosu.Report()
	core.SubmoduleReport(gosu.ModuleName, ModuleName)
}

func Report() {}
