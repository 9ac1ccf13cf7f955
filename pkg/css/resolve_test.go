package css

import (
	"testing"

	"minnow/pkg/dom"
)

func TestResolveDefaults(t *testing.T) {
	style := Resolve(dom.NewElement("p"), &Stylesheet{})

	if style.Display != DisplayBlock {
		t.Errorf("expected default display block, got %v", style.Display)
	}
	if style.Width != nil || style.Height != nil {
		t.Error("expected auto width/height by default")
	}
	if style.BackgroundColor != Transparent {
		t.Errorf("expected transparent background, got %v", style.BackgroundColor)
	}
	if style.Color != Black {
		t.Errorf("expected black text, got %v", style.Color)
	}
}

func TestResolveNilSheet(t *testing.T) {
	style := Resolve(dom.NewElement("p"), nil)
	if style != DefaultStyle() {
		t.Errorf("nil sheet should yield defaults, got %+v", style)
	}
}

func TestResolveLaterRuleWins(t *testing.T) {
	sheet := (&Stylesheet{}).
		AddRule("p", Declaration{"color", "black"}).
		AddRule("p", Declaration{"color", "red"})

	style := Resolve(dom.NewElement("p"), sheet)
	if style.Color != (Color{255, 0, 0, 255}) {
		t.Errorf("expected later rule to win (red), got %v", style.Color)
	}
}

func TestResolveUnmatchedSelectorIgnored(t *testing.T) {
	sheet := (&Stylesheet{}).
		AddRule("div", Declaration{"color", "red"})

	style := Resolve(dom.NewElement("p"), sheet)
	if style.Color != Black {
		t.Errorf("unmatched rule changed style: %v", style.Color)
	}
}

func TestResolveSelectorCaseInsensitive(t *testing.T) {
	sheet := (&Stylesheet{}).
		AddRule("P", Declaration{"color", "red"})

	style := Resolve(dom.NewElement("p"), sheet)
	if style.Color == Black {
		t.Error("expected case-insensitive tag match")
	}
}

func TestResolveProperties(t *testing.T) {
	sheet := (&Stylesheet{}).
		AddRule("div",
			Declaration{"display", "inline-block"},
			Declaration{"width", "120px"},
			Declaration{"height", "40"},
			Declaration{"background-color", "#336699"},
			Declaration{"color", "white"},
		)

	style := Resolve(dom.NewElement("div"), sheet)
	if style.Display != DisplayInlineBlock {
		t.Errorf("expected inline-block, got %v", style.Display)
	}
	if style.Width == nil || *style.Width != 120 {
		t.Errorf("expected width 120, got %v", style.Width)
	}
	if style.Height == nil || *style.Height != 40 {
		t.Errorf("expected height 40, got %v", style.Height)
	}
	if style.BackgroundColor != (Color{0x33, 0x66, 0x99, 255}) {
		t.Errorf("unexpected background: %v", style.BackgroundColor)
	}
	if style.Color != White {
		t.Errorf("expected white text, got %v", style.Color)
	}
}

func TestResolveUnknownPropertyIgnored(t *testing.T) {
	sheet := (&Stylesheet{}).
		AddRule("p",
			Declaration{"font-variant", "small-caps"},
			Declaration{"color", "navy"},
		)

	style := Resolve(dom.NewElement("p"), sheet)
	if style.Color != (Color{0, 0, 128, 255}) {
		t.Errorf("known property after unknown one not applied: %v", style.Color)
	}
}

func TestResolveBadValueLeavesDefault(t *testing.T) {
	sheet := (&Stylesheet{}).
		AddRule("p",
			Declaration{"width", "wide"},
			Declaration{"color", "blurple"},
		)

	style := Resolve(dom.NewElement("p"), sheet)
	if style.Width != nil {
		t.Errorf("unparseable width should stay auto, got %v", *style.Width)
	}
	if style.Color != Black {
		t.Errorf("unparseable color should stay black, got %v", style.Color)
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100px", 100, true},
		{"100", 100, true},
		{" 12.5px ", 12.5, true},
		{"0", 0, true},
		{"-4px", 0, false},
		{"wide", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseLength(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseLength(%q) = %v,%v; want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"black", Black, true},
		{" RED ", Color{255, 0, 0, 255}, true},
		{"transparent", Transparent, true},
		{"#fff", White, true},
		{"#ff8000", Color{255, 128, 0, 255}, true},
		{"#ff800080", Color{255, 128, 0, 128}, true},
		{"#ggg", Color{}, false},
		{"#1234", Color{}, false},
		{"blurple", Color{}, false},
	}
	for _, c := range cases {
		got, ok := ParseColor(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseColor(%q) = %v,%v; want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseDisplay(t *testing.T) {
	cases := []struct {
		in   string
		want Display
		ok   bool
	}{
		{"block", DisplayBlock, true},
		{"inline", DisplayInline, true},
		{"inline-block", DisplayInlineBlock, true},
		{"flex", DisplayFlex, true},
		{"none", DisplayNone, true},
		{"grid", DisplayBlock, false},
	}
	for _, c := range cases {
		got, ok := ParseDisplay(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseDisplay(%q) = %v,%v; want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}
