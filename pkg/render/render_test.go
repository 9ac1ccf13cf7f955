package render

import (
	"image/color"
	"testing"

	"minnow/pkg/css"
	"minnow/pkg/dom"
	"minnow/pkg/layout"
)

func renderDoc(t *testing.T, root *dom.Element, sheet *css.Stylesheet, w, h int) *Renderer {
	t.Helper()
	engine := layout.NewEngine(float64(w), float64(h))
	tree := engine.BuildRenderTree(&dom.Document{Root: root}, sheet)
	engine.Layout(tree)

	r := NewRenderer(w, h)
	r.Render(tree)
	return r
}

func rgbAt(r *Renderer, x, y int) (uint8, uint8, uint8) {
	c := color.RGBAModel.Convert(r.Image().At(x, y)).(color.RGBA)
	return c.R, c.G, c.B
}

func TestRenderClearsToWhite(t *testing.T) {
	r := renderDoc(t, dom.NewElement("p"), nil, 40, 40)

	if cr, cg, cb := rgbAt(r, 20, 30); cr != 255 || cg != 255 || cb != 255 {
		t.Errorf("expected white canvas, got (%d,%d,%d)", cr, cg, cb)
	}
}

func TestRenderFillsBackground(t *testing.T) {
	sheet := (&css.Stylesheet{}).AddRule("div",
		css.Declaration{Property: "background-color", Value: "red"},
	)
	// Give the root a child so it has nonzero height to paint.
	root := dom.NewElement("div").
		WithChild(dom.NewElement("p")).
		WithChild(dom.NewElement("p"))

	r := renderDoc(t, root, sheet, 40, 40)

	if cr, cg, cb := rgbAt(r, 20, 4); cr != 255 || cg != 0 || cb != 0 {
		t.Errorf("expected red background pixel, got (%d,%d,%d)", cr, cg, cb)
	}
}

func TestRenderSkipsTransparentBackground(t *testing.T) {
	root := dom.NewElement("div").
		WithChild(dom.NewElement("p")).
		WithChild(dom.NewElement("p"))

	r := renderDoc(t, root, nil, 40, 40)

	if cr, cg, cb := rgbAt(r, 20, 4); cr != 255 || cg != 255 || cb != 255 {
		t.Errorf("default background should leave canvas white, got (%d,%d,%d)", cr, cg, cb)
	}
}

func TestRenderSkipsDisplayNone(t *testing.T) {
	sheet := (&css.Stylesheet{}).
		AddRule("div", css.Declaration{Property: "background-color", Value: "blue"}).
		AddRule("div", css.Declaration{Property: "display", Value: "none"})
	root := dom.NewElement("div").
		WithChild(dom.NewElement("p")).
		WithChild(dom.NewElement("p"))

	r := renderDoc(t, root, sheet, 40, 40)

	if cr, cg, cb := rgbAt(r, 20, 4); cr != 255 || cg != 255 || cb != 255 {
		t.Errorf("display:none subtree was painted: (%d,%d,%d)", cr, cg, cb)
	}
}

func TestRenderDrawsText(t *testing.T) {
	root := dom.NewElement("p").WithText("Hello")
	r := renderDoc(t, root, nil, 60, 30)

	// Some pixel in the text row must be non-white.
	found := false
	for x := 0; x < 60 && !found; x++ {
		for y := 0; y < 20 && !found; y++ {
			if cr, cg, cb := rgbAt(r, x, y); cr != 255 || cg != 255 || cb != 255 {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected text pixels on the canvas")
	}
}

func TestRenderNilTree(t *testing.T) {
	r := NewRenderer(10, 10)
	r.Render(nil)
	r.Render(&layout.RenderTree{})
}
