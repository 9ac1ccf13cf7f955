package html

import "minnow/pkg/dom"

// ExtractTitle returns the text content of the first element in
// pre-order whose tag is exactly "title", or "Untitled" if the tree has
// no such element. A title element with no text yields the empty string.
func ExtractTitle(root *dom.Element) string {
	if title := root.Find("title"); title != nil {
		return title.Text
	}
	return "Untitled"
}
