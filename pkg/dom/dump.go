package dom

import (
	"strings"

	"github.com/xlab/treeprint"
)

// Dump returns an ASCII rendering of the element tree, one branch per
// element, for debugging and inspection tools.
func (e *Element) Dump() string {
	root := treeprint.NewWithRoot(e.label())
	for _, child := range e.Children {
		addBranch(root, child)
	}
	return root.String()
}

func addBranch(parent treeprint.Tree, e *Element) {
	branch := parent.AddBranch(e.label())
	for _, child := range e.Children {
		addBranch(branch, child)
	}
}

func (e *Element) label() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, a := range e.Attributes {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	if text := strings.TrimSpace(e.Text); text != "" {
		if len(text) > 40 {
			text = text[:40] + "…"
		}
		sb.WriteString(" ")
		sb.WriteString(text)
	}
	return sb.String()
}
