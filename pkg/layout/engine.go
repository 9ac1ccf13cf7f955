package layout

// BlockGap is the fixed vertical gap between adjacent sibling blocks, in
// layout units.
const BlockGap = 8.0

// Engine computes geometry for render trees with a single-pass top-down
// block flow. It holds nothing but the viewport: layout is pure over the
// tree it is given and idempotent: running it twice with the same
// viewport produces identical boxes, and a resize only takes effect on
// the next explicit Layout call.
type Engine struct {
	viewport struct {
		width  float64
		height float64
	}
}

// NewEngine creates an engine for the given viewport size.
func NewEngine(width, height float64) *Engine {
	e := &Engine{}
	e.viewport.width = width
	e.viewport.height = height
	return e
}

// Resize updates the viewport. The change applies on the next Layout.
func (e *Engine) Resize(width, height float64) {
	e.viewport.width = width
	e.viewport.height = height
}

// Viewport returns the current viewport size.
func (e *Engine) Viewport() (width, height float64) {
	return e.viewport.width, e.viewport.height
}

// Layout assigns a box to every node in the tree.
//
// Every node spans the full available width (the viewport width at the
// root) and takes its parent's x. Children stack top to bottom with a
// BlockGap between adjacent siblings. A node's height is the extent from
// its own top to its last child's bottom edge; a childless node has
// height 0; content-driven height for text is a collaborator concern.
func (e *Engine) Layout(tree *RenderTree) {
	if tree == nil || tree.Root == nil {
		return
	}
	layoutNode(tree.Root, 0, 0, e.viewport.width)
}

func layoutNode(node *RenderNode, x, y, availableWidth float64) {
	node.Box = LayoutBox{X: x, Y: y, Width: availableWidth}

	cursor := y
	bottom := y
	for i, child := range node.Children {
		if i > 0 {
			cursor += BlockGap
		}
		layoutNode(child, x, cursor, availableWidth)
		bottom = child.Box.Y + child.Box.Height
		cursor = bottom
	}

	node.Box.Height = bottom - y
}
