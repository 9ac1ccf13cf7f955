package layout

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump returns an ASCII rendering of the tree with one line of geometry
// per node, for the inspection tools.
func (t *RenderTree) Dump() string {
	if t.Root == nil {
		return "(empty render tree)\n"
	}
	root := treeprint.NewWithRoot(nodeLabel(t.Root))
	for _, child := range t.Root.Children {
		addBranch(root, child)
	}
	return root.String()
}

func addBranch(parent treeprint.Tree, n *RenderNode) {
	branch := parent.AddBranch(nodeLabel(n))
	for _, child := range n.Children {
		addBranch(branch, child)
	}
}

func nodeLabel(n *RenderNode) string {
	return fmt.Sprintf("<%s> display=%s box=(%g,%g %gx%g)",
		n.Element.Tag, n.Style.Display,
		n.Box.X, n.Box.Y, n.Box.Width, n.Box.Height)
}
