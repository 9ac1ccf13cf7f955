package html

import (
	gohtml "html"
	"strings"
	"unicode"

	"minnow/pkg/dom"
)

type TokenType int

const (
	TokenStartTag TokenType = iota
	TokenEndTag
	TokenText
	TokenEOF
)

type Token struct {
	Type        TokenType
	TagName     string
	Attributes  []dom.Attribute
	Text        string
	SelfClosing bool // True for tags ending with /> (XHTML self-closing syntax)
}

// Tokenizer splits markup into start-tag, end-tag, and text tokens.
// It is total: malformed input never produces an error, it degrades to
// fewer tokens (an unterminated tag swallows the rest of the input).
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(markup string) *Tokenizer {
	return &Tokenizer{input: markup, pos: 0}
}

func (t *Tokenizer) NextToken() Token {
	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF}
	}
	if t.input[t.pos] == '<' {
		return t.readTag()
	}
	return t.readText()
}

func (t *Tokenizer) readTag() Token {
	t.pos++

	// <!-- comments -->
	if t.pos+2 < len(t.input) && t.input[t.pos] == '!' && t.input[t.pos+1] == '-' && t.input[t.pos+2] == '-' {
		t.pos += 3
		for t.pos+2 < len(t.input) {
			if t.input[t.pos] == '-' && t.input[t.pos+1] == '-' && t.input[t.pos+2] == '>' {
				t.pos += 3
				return t.NextToken()
			}
			t.pos++
		}
		t.pos = len(t.input)
		return Token{Type: TokenEOF}
	}

	// <?xml ...?> and other processing instructions
	if t.pos < len(t.input) && t.input[t.pos] == '?' {
		for t.pos+1 < len(t.input) {
			if t.input[t.pos] == '?' && t.input[t.pos+1] == '>' {
				t.pos += 2
				return t.NextToken()
			}
			t.pos++
		}
		t.pos = len(t.input)
		return Token{Type: TokenEOF}
	}

	// <!DOCTYPE ...> and other markup declarations: skip to the closing
	// '>'. Without one, the declaration swallows the rest of the input.
	if t.pos < len(t.input) && t.input[t.pos] == '!' {
		if !t.skipTo('>') {
			return Token{Type: TokenEOF}
		}
		t.pos++
		return t.NextToken()
	}

	isEndTag := false
	if t.pos < len(t.input) && t.input[t.pos] == '/' {
		isEndTag = true
		t.pos++
	}
	// The tag name is the first whitespace-delimited token of the header.
	t.skipWhitespace()
	tagName := t.readTagName()
	if isEndTag {
		if !t.skipTo('>') {
			return Token{Type: TokenEOF}
		}
		t.pos++
		return Token{Type: TokenEndTag, TagName: tagName}
	}

	var attributes []dom.Attribute
	for {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			// Unterminated tag: keep whatever was read so far.
			return Token{Type: TokenStartTag, TagName: tagName, Attributes: attributes}
		}
		if t.input[t.pos] == '>' {
			t.pos++
			break
		}
		if t.input[t.pos] == '/' {
			t.pos++
			t.skipWhitespace()
			if t.pos < len(t.input) && t.input[t.pos] == '>' {
				t.pos++
				return Token{Type: TokenStartTag, TagName: tagName, Attributes: attributes, SelfClosing: true}
			}
			continue
		}
		name, value, ok := t.readAttribute()
		if !ok {
			// Stray character inside the tag; step over it.
			t.pos++
			continue
		}
		attributes = append(attributes, dom.Attribute{Name: name, Value: value})
	}
	return Token{Type: TokenStartTag, TagName: tagName, Attributes: attributes}
}

func (t *Tokenizer) readTagName() string {
	start := t.pos
	for t.pos < len(t.input) && isTagNameChar(t.input[t.pos]) {
		t.pos++
	}
	return strings.ToLower(t.input[start:t.pos])
}

func (t *Tokenizer) readAttribute() (string, string, bool) {
	start := t.pos
	for t.pos < len(t.input) && isAttributeNameChar(t.input[t.pos]) {
		t.pos++
	}
	name := strings.ToLower(t.input[start:t.pos])
	if name == "" {
		return "", "", false
	}
	t.skipWhitespace()
	if t.pos >= len(t.input) || t.input[t.pos] != '=' {
		return name, "", true
	}
	t.pos++
	t.skipWhitespace()
	return name, t.readAttributeValue(), true
}

func (t *Tokenizer) readAttributeValue() string {
	if t.pos >= len(t.input) {
		return ""
	}
	quote := t.input[t.pos]
	if quote == '"' || quote == '\'' {
		t.pos++
		start := t.pos
		for t.pos < len(t.input) && t.input[t.pos] != quote {
			t.pos++
		}
		value := t.input[start:t.pos]
		if t.pos < len(t.input) {
			t.pos++
		}
		return value
	}
	start := t.pos
	for t.pos < len(t.input) && !unicode.IsSpace(rune(t.input[t.pos])) && t.input[t.pos] != '>' {
		t.pos++
	}
	return t.input[start:t.pos]
}

func (t *Tokenizer) readText() Token {
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '<' {
		t.pos++
	}
	raw := t.input[start:t.pos]
	// Pure inter-tag whitespace (indentation, newlines) is not content.
	if strings.TrimSpace(raw) == "" {
		if t.pos < len(t.input) {
			return t.NextToken()
		}
		return Token{Type: TokenEOF}
	}
	text := normalizeWhitespace(raw)
	text = gohtml.UnescapeString(text)
	return Token{Type: TokenText, Text: text}
}

// normalizeWhitespace collapses runs of whitespace to a single space,
// keeping a single space at each boundary so word breaks between text
// runs survive.
func normalizeWhitespace(s string) string {
	hasLeading := len(s) > 0 && unicode.IsSpace(rune(s[0]))
	hasTrailing := len(s) > 0 && unicode.IsSpace(rune(s[len(s)-1]))

	fields := strings.Fields(s)
	if len(fields) == 0 {
		if hasLeading || hasTrailing {
			return " "
		}
		return ""
	}

	result := strings.Join(fields, " ")
	if hasLeading {
		result = " " + result
	}
	if hasTrailing {
		result = result + " "
	}
	return result
}

// ReadRawUntil reads raw content until the closing end tag (e.g.
// </style>), for elements whose content is not markup. The end tag
// itself is consumed. Without one, the rest of the input is returned.
func (t *Tokenizer) ReadRawUntil(endTag string) string {
	needle := "</" + strings.ToLower(endTag)
	start := t.pos
	for t.pos < len(t.input) {
		if t.input[t.pos] == '<' && t.matchesEndTag(needle) {
			content := t.input[start:t.pos]
			t.pos += len(needle)
			if t.skipTo('>') {
				t.pos++
			}
			return content
		}
		t.pos++
	}
	return t.input[start:]
}

// matchesEndTag reports whether the input at the current position is
// the given end tag (case-insensitive), followed by '>' or whitespace.
func (t *Tokenizer) matchesEndTag(needle string) bool {
	end := t.pos + len(needle)
	if end > len(t.input) || !strings.EqualFold(t.input[t.pos:end], needle) {
		return false
	}
	return end == len(t.input) || t.input[end] == '>' || unicode.IsSpace(rune(t.input[end]))
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(rune(t.input[t.pos])) {
		t.pos++
	}
}

func (t *Tokenizer) skipTo(target byte) bool {
	for t.pos < len(t.input) && t.input[t.pos] != target {
		t.pos++
	}
	return t.pos < len(t.input)
}

func isTagNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_' || c == ':'
}

func isAttributeNameChar(c byte) bool {
	return isTagNameChar(c) || c == '.'
}
