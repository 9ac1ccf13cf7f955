package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStylesheetRuleOrder(t *testing.T) {
	sheet, err := ParseStylesheet(`
		p { color: black; }
		div { width: 100px; height: 50px; }
		p { color: red; }
	`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)

	assert.Equal(t, "p", sheet.Rules[0].Selector)
	assert.Equal(t, "div", sheet.Rules[1].Selector)
	assert.Equal(t, "p", sheet.Rules[2].Selector)
	assert.Equal(t, []Declaration{{"color", "red"}}, sheet.Rules[2].Declarations)
}

func TestParseStylesheetSelectorGroupExpands(t *testing.T) {
	sheet, err := ParseStylesheet(`p, div, span { color: blue; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)

	for i, sel := range []string{"p", "div", "span"} {
		assert.Equal(t, sel, sheet.Rules[i].Selector)
		assert.Equal(t, []Declaration{{"color", "blue"}}, sheet.Rules[i].Declarations)
	}
}

func TestParseStylesheetDeclarationOrder(t *testing.T) {
	sheet, err := ParseStylesheet(`p { color: black; color: red; width: 10px; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)

	assert.Equal(t, []Declaration{
		{"color", "black"},
		{"color", "red"},
		{"width", "10px"},
	}, sheet.Rules[0].Declarations)
}

func TestParseStylesheetSkipsAtRules(t *testing.T) {
	sheet, err := ParseStylesheet(`
		@import url("other.css");
		p { color: red; }
	`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, "p", sheet.Rules[0].Selector)
}

func TestParseStylesheetEmpty(t *testing.T) {
	sheet, err := ParseStylesheet("")
	require.NoError(t, err)
	assert.Empty(t, sheet.Rules)
}

func TestParseStylesheetNormalizesProperties(t *testing.T) {
	sheet, err := ParseStylesheet(`p { COLOR : red ; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	require.Len(t, sheet.Rules[0].Declarations, 1)

	d := sheet.Rules[0].Declarations[0]
	assert.Equal(t, "color", d.Property)
	assert.Equal(t, "red", d.Value)
}

func TestParsedStylesheetFeedsResolver(t *testing.T) {
	sheet, err := ParseStylesheet(`
		p { color: black; }
		p { color: red; }
	`)
	require.NoError(t, err)

	style := DefaultStyle()
	for _, rule := range sheet.Rules {
		if rule.Matches("p") {
			for _, d := range rule.Declarations {
				style.apply(d.Property, d.Value)
			}
		}
	}
	assert.Equal(t, Color{255, 0, 0, 255}, style.Color)
}
