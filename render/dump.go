package render

import (
	"github.com/davecgh/go-spew/spew"

	"littleeye/node"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump returns the full structure of a node tree, for debugging the analysis
// rather than reading the summary.
func Dump(n *node.Node) string {
	return dumpConfig.Sdump(n)
}
