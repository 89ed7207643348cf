// Package gosu opens an OpenGL window and drives a fixed cadence update/draw loop over it.
package gosu

import (
	"github.com/ignite-laboratories/core"
)

var ModuleName = "gosu"

func init() {
	core.ModuleReport(ModuleName)
}

func Report() {}
