package dom

// Document is the result of parsing one page of markup. It owns the root
// element and records the derived title and the source URL.
//
// A document is immutable after creation: a new navigation produces a new
// document, and the previous one is simply dropped.
type Document struct {
	Root  *Element
	Title string
	URL   string

	// Stylesheets holds the raw CSS text of <style> blocks in source
	// order. Style elements do not appear in the tree itself.
	Stylesheets []string
}
