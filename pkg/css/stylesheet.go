package css

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Declaration is a single property/value pair inside a rule.
type Declaration struct {
	Property string
	Value    string
}

// Rule pairs a selector with its declarations. Declaration order is
// significant: within a matching rule later declarations overwrite
// earlier ones for the same property.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Matches reports whether the rule applies to an element with the given
// tag name. Matching is tag-name equality only, case-insensitive; the
// selector field stays a free-form string so richer matching can be
// layered on without changing the data model.
func (r Rule) Matches(tag string) bool {
	return strings.EqualFold(strings.TrimSpace(r.Selector), tag)
}

// Stylesheet is an ordered list of rules. Order is the whole cascade:
// later rules win over earlier ones for the same property on a matching
// element. There is no specificity weighting.
type Stylesheet struct {
	Rules []Rule
}

// AddRule appends a rule and returns the stylesheet for chaining.
func (s *Stylesheet) AddRule(selector string, declarations ...Declaration) *Stylesheet {
	s.Rules = append(s.Rules, Rule{Selector: selector, Declarations: declarations})
	return s
}

// ParseStylesheet parses CSS text into an ordered rule list. A rule with
// a selector group ("p, div") expands to one rule per selector, keeping
// source order. At-rules (@media, @import, ...) are skipped; malformed
// input returns an error from the underlying parser.
func ParseStylesheet(text string) (*Stylesheet, error) {
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}

	sheet := &Stylesheet{}
	for _, rule := range parsed.Rules {
		if len(rule.Declarations) == 0 {
			continue
		}
		decls := make([]Declaration, 0, len(rule.Declarations))
		for _, d := range rule.Declarations {
			decls = append(decls, Declaration{
				Property: strings.ToLower(strings.TrimSpace(d.Property)),
				Value:    strings.TrimSpace(d.Value),
			})
		}
		for _, sel := range rule.Selectors {
			sheet.Rules = append(sheet.Rules, Rule{
				Selector:     strings.TrimSpace(sel),
				Declarations: decls,
			})
		}
	}
	return sheet, nil
}
