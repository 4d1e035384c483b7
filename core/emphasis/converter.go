// Package emphasis implements the Converter interface.
// It finds spans marked for bold or italic emphasis and rewrites their
// characters with the matching style table, removing the delimiters.
//
// Rules run as separate scanning passes in a fixed order, double markers
// before single ones, so "**x**" is never half consumed by the "*" rule.
// A later pass only sees the output of earlier passes: letters already
// styled by an earlier rule are outside the ASCII tables and keep their
// first style.
package emphasis

import (
	"strings"

	"github.com/gaurav-prasanna/postfmt/core/bullet"
	"github.com/gaurav-prasanna/postfmt/core/style"
)

// Rule is one span notation.
type Rule struct {
	Open  string
	Close string
	Style style.Style
	// Tag rules come from HTML; an unmatched tag is dropped instead of
	// being kept as literal text.
	Tag bool
}

// Rules lists the span notations in the order they are applied.
var Rules = []Rule{
	{Open: "**", Close: "**", Style: style.Bold},
	{Open: "*", Close: "*", Style: style.Bold},
	{Open: "__", Close: "__", Style: style.Bold},
	{Open: "_", Close: "_", Style: style.Italic},
	{Open: "<b>", Close: "</b>", Style: style.Bold, Tag: true},
	{Open: "<strong>", Close: "</strong>", Style: style.Bold, Tag: true},
	{Open: "<i>", Close: "</i>", Style: style.Italic, Tag: true},
	{Open: "<em>", Close: "</em>", Style: style.Italic, Tag: true},
}

// leftoverTags removes emphasis tags that never found a partner.
var leftoverTags = strings.NewReplacer(
	"<b>", "", "</b>", "",
	"<strong>", "", "</strong>", "",
	"<i>", "", "</i>", "",
	"<em>", "", "</em>", "",
)

// SpanConverter applies Rules to text.
type SpanConverter struct{}

// New creates a SpanConverter.
func New() *SpanConverter {
	return &SpanConverter{}
}

// Convert applies every rule in order and strips unmatched emphasis tags.
func (c *SpanConverter) Convert(text string) string {
	for _, r := range Rules {
		text = apply(text, r)
	}
	return leftoverTags.Replace(text)
}

// apply rewrites every span of rule r in text. Matching is non-greedy,
// the body must be non-empty and stays on one line.
func apply(text string, r Rule) string {
	if !strings.Contains(text, r.Open) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for i < len(text) {
		j := indexDelimiter(text, i, r.Open)
		if j < 0 {
			break
		}
		start := j + len(r.Open)
		end := indexClose(text, start, r.Close)

		b.WriteString(text[i:j])
		if end <= start {
			// No partner, or an empty span.
			if !r.Tag {
				b.WriteString(r.Open)
			}
			i = start
			continue
		}
		b.WriteString(style.Apply(r.Style, text[start:end]))
		i = end + len(r.Close)
	}
	if i < len(text) {
		b.WriteString(text[i:])
	}
	return b.String()
}

// indexClose returns the position of the closing delimiter for a span whose
// body starts at start, or -1. The search stops at the end of the line, so
// a span never joins paragraphs or list items.
func indexClose(text string, start int, delim string) int {
	limit := len(text)
	if p := strings.IndexByte(text[start:], '\n'); p >= 0 {
		limit = start + p
	}
	return indexDelimiter(text[:limit], start, delim)
}

// indexDelimiter returns the first position at or after from where delim
// starts and is not a list bullet marker, or -1.
func indexDelimiter(text string, from int, delim string) int {
	for from <= len(text) {
		k := strings.Index(text[from:], delim)
		if k < 0 {
			return -1
		}
		k += from
		if delim == "*" && bullet.IsMarkerAt(text, k) {
			from = k + 1
			continue
		}
		return k
	}
	return -1
}
