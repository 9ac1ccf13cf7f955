package css

import "minnow/pkg/dom"

// Resolve computes the style for one element against a stylesheet.
//
// Rules are applied in sheet order; each matching rule's declarations
// fold into the accumulator in declaration order, so a later matching
// rule overwrites an earlier one for the same property. Properties no
// rule sets keep their defaults. Every element resolves independently;
// there is no inheritance from parents.
func Resolve(el *dom.Element, sheet *Stylesheet) ComputedStyle {
	style := DefaultStyle()
	if sheet == nil {
		return style
	}
	for _, rule := range sheet.Rules {
		if !rule.Matches(el.Tag) {
			continue
		}
		for _, d := range rule.Declarations {
			style.apply(d.Property, d.Value)
		}
	}
	return style
}
