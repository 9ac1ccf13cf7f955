package html

import (
	"errors"
	"strings"

	"minnow/pkg/dom"
)

// ErrEmptyInput is the only failure mode of Parse: the input string was
// exactly empty. Any other markup, however malformed, degrades to a
// minimal valid tree rather than aborting navigation.
var ErrEmptyInput = errors.New("html: empty input")

// Parser builds an element tree from markup using an open-element stack.
type Parser struct {
	tokenizer   *Tokenizer
	container   *dom.Element // synthetic holder for top-level elements
	stack       []*dom.Element
	stylesheets []string
}

func NewParser(markup string) *Parser {
	return &Parser{
		tokenizer: NewTokenizer(markup),
		container: dom.NewElement("#document"),
	}
}

// Parse parses markup into a document. The url is recorded on the
// document unchanged.
//
// An empty input fails with ErrEmptyInput; after that precondition the
// parser is total. A leading doctype declaration is skipped. Input with
// no recognizable tag at all yields a single empty "div" root, and a tag
// header with no name token defaults to "div".
func Parse(markup, url string) (*dom.Document, error) {
	if markup == "" {
		return nil, ErrEmptyInput
	}

	p := NewParser(strings.TrimSpace(markup))
	root := p.run()

	return &dom.Document{
		Root:        root,
		Title:       ExtractTitle(root),
		URL:         url,
		Stylesheets: p.stylesheets,
	}, nil
}

func (p *Parser) run() *dom.Element {
	p.stack = []*dom.Element{p.container}

	for {
		token := p.tokenizer.NextToken()
		if token.Type == TokenEOF {
			break
		}

		switch token.Type {
		case TokenStartTag:
			name := token.TagName
			if name == "" {
				name = "div"
			}

			// Raw-text elements: their content is not markup. Style
			// text is collected for the document; script is a
			// collaborator concern and is dropped.
			if name == "style" {
				if !token.SelfClosing {
					if css := p.tokenizer.ReadRawUntil("style"); strings.TrimSpace(css) != "" {
						p.stylesheets = append(p.stylesheets, css)
					}
				}
				continue
			}
			if name == "script" {
				if !token.SelfClosing {
					p.tokenizer.ReadRawUntil("script")
				}
				continue
			}

			if isBlockElement(name) {
				p.autoCloseP()
			}

			el := &dom.Element{Tag: name, Attributes: token.Attributes}
			p.currentParent().WithChild(el)

			if !isVoidElement(name) && !token.SelfClosing {
				p.stack = append(p.stack, el)
			}

		case TokenText:
			p.currentParent().AppendText(token.Text)

		case TokenEndTag:
			p.closeTag(token.TagName)
		}
	}

	// The first top-level element is the document root; without one the
	// parse degrades to an empty div.
	if len(p.container.Children) > 0 {
		return p.container.Children[0]
	}
	return dom.NewElement("div")
}

func (p *Parser) currentParent() *dom.Element {
	return p.stack[len(p.stack)-1]
}

// closeTag pops the stack down to the matching open tag. An end tag with
// no matching open element is ignored.
func (p *Parser) closeTag(tagName string) {
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].Tag == tagName {
			p.stack = p.stack[:i]
			return
		}
	}
}

// autoCloseP closes an open <p> element, stopping at any other
// block-level container.
func (p *Parser) autoCloseP() {
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].Tag == "p" {
			p.stack = p.stack[:i]
			return
		}
		if isBlockElement(p.stack[i].Tag) {
			return
		}
	}
}

// isVoidElement reports whether a tag never takes content or an end tag.
func isVoidElement(tagName string) bool {
	switch tagName {
	case "br", "hr", "img", "input", "meta", "link", "area", "base",
		"col", "embed", "param", "source", "track", "wbr":
		return true
	}
	return false
}

// isBlockElement reports whether a tag auto-closes an open <p>.
func isBlockElement(tagName string) bool {
	switch tagName {
	case "address", "article", "aside", "blockquote", "details", "dialog",
		"dd", "div", "dl", "dt", "fieldset", "figcaption", "figure",
		"footer", "form", "h1", "h2", "h3", "h4", "h5", "h6",
		"header", "hgroup", "hr", "li", "main", "nav", "ol",
		"p", "pre", "section", "table", "ul":
		return true
	}
	return false
}
