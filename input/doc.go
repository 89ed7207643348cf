// Package input tracks button and pointer state fed from a native event queue.
package input

import (
	"github.com/ignite-laboratories/core"
)

var ModuleName = "input"

func init() {
	core.SubmoduleReport("gosu", ModuleName)
}
