package layout

import (
	"minnow/pkg/css"
	"minnow/pkg/dom"
)

// LayoutBox is the computed geometry of one render node: top-left
// position and size in layout-space pixels, origin at the viewport
// top-left, y growing downward. Values are transient zeros until the
// engine lays the tree out.
type LayoutBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RenderNode pairs an element with its resolved style and geometry. The
// node owns a copy of the element's paint-relevant data (tag, attributes,
// text); its children mirror the element tree's shape and order exactly.
type RenderNode struct {
	Element  *dom.Element
	Style    css.ComputedStyle
	Box      LayoutBox
	Children []*RenderNode
}

// RenderTree owns a single root render node.
type RenderTree struct {
	Root *RenderNode
}

// BuildRenderTree derives a render tree from a document: one render node
// per element, same shape, same order. Each node's style comes from
// resolving the element against the sheet (a nil or empty sheet yields
// all defaults). Boxes stay zeroed until Layout runs.
func (e *Engine) BuildRenderTree(doc *dom.Document, sheet *css.Stylesheet) *RenderTree {
	if doc == nil || doc.Root == nil {
		return &RenderTree{}
	}
	return &RenderTree{Root: buildRenderNode(doc.Root, sheet)}
}

func buildRenderNode(el *dom.Element, sheet *css.Stylesheet) *RenderNode {
	node := &RenderNode{
		Element: copyElement(el),
		Style:   css.Resolve(el, sheet),
	}
	if len(el.Children) > 0 {
		node.Children = make([]*RenderNode, len(el.Children))
		for i, child := range el.Children {
			node.Children[i] = buildRenderNode(child, sheet)
		}
	}
	return node
}

// copyElement copies the paint-relevant parts of an element. Children
// are not copied; the render node's own children carry the tree shape.
func copyElement(el *dom.Element) *dom.Element {
	copied := &dom.Element{Tag: el.Tag, Text: el.Text}
	if len(el.Attributes) > 0 {
		copied.Attributes = make([]dom.Attribute, len(el.Attributes))
		copy(copied.Attributes, el.Attributes)
	}
	return copied
}

// Walk visits the node and all descendants in pre-order.
func (n *RenderNode) Walk(fn func(*RenderNode)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Count returns the number of nodes in the tree.
func (t *RenderTree) Count() int {
	if t.Root == nil {
		return 0
	}
	n := 0
	t.Root.Walk(func(*RenderNode) { n++ })
	return n
}
