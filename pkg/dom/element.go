package dom

import "strings"

// Attribute is a single name/value pair on an element. Attributes keep
// their source order, and duplicates are allowed; lookup returns the
// first occurrence.
type Attribute struct {
	Name  string
	Value string
}

// Element is a node in the parsed markup tree. Each element exclusively
// owns its children; the tree is acyclic and carries no parent pointers.
//
// An element may hold child elements, text content, or both. When both
// are present, traversal follows the children and the text is retained
// for extraction (e.g. title lookup).
type Element struct {
	Tag        string
	Attributes []Attribute
	Children   []*Element
	Text       string
}

// NewElement creates an element with the given tag name and no
// attributes, children, or text.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// WithAttribute appends an attribute and returns the element for chaining.
func (e *Element) WithAttribute(name, value string) *Element {
	e.Attributes = append(e.Attributes, Attribute{Name: name, Value: value})
	return e
}

// WithChild appends a child element and returns the element for chaining.
// The child is now owned by this element.
func (e *Element) WithChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return e
}

// WithText sets the text content and returns the element for chaining.
func (e *Element) WithText(text string) *Element {
	e.Text = text
	return e
}

// GetAttribute returns the value of the first attribute with the given
// name. Names compare case-insensitively.
func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.Attributes {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// AppendText adds text to the element's text content. Character data
// split across child tags accumulates into one string.
func (e *Element) AppendText(text string) {
	e.Text += text
}

// Walk visits the element and all descendants in pre-order. The walk
// stops early if fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, child := range e.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Count returns the number of elements in the subtree rooted here,
// including the element itself.
func (e *Element) Count() int {
	n := 0
	e.Walk(func(*Element) bool {
		n++
		return true
	})
	return n
}

// Find returns the first element in pre-order whose tag equals the given
// tag exactly, or nil if none exists.
func (e *Element) Find(tag string) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if el.Tag == tag {
			found = el
			return false
		}
		return true
	})
	return found
}

// Clone returns a deep copy of the subtree rooted at this element.
func (e *Element) Clone() *Element {
	clone := &Element{
		Tag:  e.Tag,
		Text: e.Text,
	}
	if len(e.Attributes) > 0 {
		clone.Attributes = make([]Attribute, len(e.Attributes))
		copy(clone.Attributes, e.Attributes)
	}
	if len(e.Children) > 0 {
		clone.Children = make([]*Element, len(e.Children))
		for i, child := range e.Children {
			clone.Children[i] = child.Clone()
		}
	}
	return clone
}
