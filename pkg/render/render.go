// Package render rasterizes a laid-out render tree. It is the
// presentation collaborator of the layout pipeline: it reads boxes and
// styles, never mutates them.
package render

import (
	"image"
	"strings"

	"github.com/fogleman/gg"

	"minnow/pkg/css"
	"minnow/pkg/layout"
)

// textBaseline is the vertical offset of the first text baseline inside
// a node's box, chosen for the default bitmap face.
const textBaseline = 13.0

type Renderer struct {
	context *gg.Context
}

// NewRenderer creates a renderer with a white canvas of the given size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render paints the tree onto the canvas: backgrounds first-to-last in
// pre-order (parents under children), then text in the node's color.
// Nodes with display none are skipped along with their subtrees. The
// tree must already be laid out.
func (r *Renderer) Render(tree *layout.RenderTree) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	if tree == nil || tree.Root == nil {
		return
	}
	r.drawNode(tree.Root)
}

func (r *Renderer) drawNode(node *layout.RenderNode) {
	if node.Style.Display == css.DisplayNone {
		return
	}

	if bg := node.Style.BackgroundColor; bg.A > 0 {
		r.setColor(bg)
		r.context.DrawRectangle(node.Box.X, node.Box.Y, node.Box.Width, node.Box.Height)
		r.context.Fill()
	}

	if text := strings.TrimSpace(node.Element.Text); text != "" {
		r.setColor(node.Style.Color)
		r.context.DrawString(text, node.Box.X+2, node.Box.Y+textBaseline)
	}

	for _, child := range node.Children {
		r.drawNode(child)
	}
}

func (r *Renderer) setColor(c css.Color) {
	r.context.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}

// Image returns the current canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the canvas to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.context.SavePNG(path)
}
