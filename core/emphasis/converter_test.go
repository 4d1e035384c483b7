package emphasis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/postfmt/core/style"
)

func bold(s string) string   { return style.Apply(style.Bold, s) }
func italic(s string) string { return style.Apply(style.Italic, s) }

func TestConvert_EveryLetterBold(t *testing.T) {
	c := New()
	for _, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" {
		got := c.Convert("*" + string(r) + "*")
		assert.Equal(t, string(style.Rune(style.Bold, r)), got, "letter %c", r)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"double asterisk", "**bold**", bold("bold")},
		{"single asterisk", "*bold*", bold("bold")},
		{"double underscore", "__bold__", bold("bold")},
		{"single underscore", "_it_", italic("it")},
		{"b tag", "<b>x</b>", bold("x")},
		{"strong tag", "<strong>x</strong>", bold("x")},
		{"i tag", "<i>x</i>", italic("x")},
		{"em tag", "<em>x</em>", italic("x")},
		{
			"double before single",
			"**bold** and *also bold*",
			bold("bold") + " and " + bold("also bold"),
		},
		{"mixed html and markers", "<b>Hi</b> _there_", bold("Hi") + " " + italic("there")},
		{"non-greedy", "*a* b *c*", bold("a") + " b " + bold("c")},
		{"bold digits", "*2024*", bold("2024")},
		{"italic digits pass through", "_2024_", "2024"},
		{"punctuation inside span", "*hi, you!*", bold("hi") + ", " + bold("you") + "!"},
		{"unmatched asterisk literal", "*a", "*a"},
		{"unmatched underscore literal", "a_b", "a_b"},
		{"empty span literal", "**", "**"},
		{"four asterisks literal", "****", "****"},
		{"unmatched open tag dropped", "<b>a", "a"},
		{"unmatched close tag dropped", "a</i>", "a"},
		{"no span across line", "*a\nb*", "*a\nb*"},
		{"no span across paragraph", "*a\n\nb*", "*a\n\nb*"},
		{"no tag span across line", "<b>a\nb</b>", "a\nb"},
		{"spans on adjacent lines", "*a*\n_b_", bold("a") + "\n" + italic("b")},
		{"bullet asterisks skipped", "* one\n* two", "* one\n* two"},
		{"bullet with bold item", "* *one*\n* two", "* " + bold("one") + "\n* two"},
		{"triple asterisk", "***x***", bold("x")},
		{"plain text untouched", "nothing to see", "nothing to see"},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Convert(tt.input))
		})
	}
}

// Nested spans of different kinds apply outer-then-inner in rule order;
// a letter keeps the style of the first rule that reached it.
func TestConvert_Nesting(t *testing.T) {
	c := New()

	assert.Equal(t, bold("bold it"), c.Convert("**bold _it_**"))
	assert.Equal(t, italic("it ")+bold("b"), c.Convert("_it **b**_"))
	assert.Equal(t, bold("a")+italic("b")+bold("c"), c.Convert("<b>a_b_c</b>"))
	assert.Equal(t, bold("x"), c.Convert("<i>*x*</i>"))
}

func TestConvert_NoDelimitersRemain(t *testing.T) {
	out := New().Convert("**a** *b* __c__ _d_ <b>e</b> <strong>f</strong> <i>g</i> <em>h</em>")
	for _, d := range []string{"*", "_", "<", ">"} {
		assert.False(t, strings.Contains(out, d), "found %q in %q", d, out)
	}
}
