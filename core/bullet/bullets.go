// Package bullet normalizes list item lines to a single bullet glyph.
package bullet

import (
	"regexp"
	"strings"
)

// DefaultGlyph is the bullet every list item is rendered with.
const DefaultGlyph = "•"

// Normalizer rewrites "- x", "* x", "+ x" and "• x" lines to Glyph + " x".
type Normalizer struct {
	Glyph string
	// GuardLeadingSpace prefixes bullet lines with one ordinary space.
	// Some post surfaces swallow a glyph at the very start of a line.
	GuardLeadingSpace bool

	itemRegex *regexp.Regexp
}

// New creates a Normalizer. An empty glyph selects DefaultGlyph.
func New(glyph string, guard bool) *Normalizer {
	if glyph == "" {
		glyph = DefaultGlyph
	}
	glyphs := regexp.QuoteMeta(glyph)
	if glyph != DefaultGlyph {
		glyphs += "|" + DefaultGlyph
	}
	// One or more leading markers, each ASCII marker followed by at least
	// one blank, so "- • x" and "•x" both collapse to a single glyph.
	re := regexp.MustCompile(`(?m)^[ \t]*(?:(?:[-*+][ \t]+)|(?:(?:` + glyphs + `)[ \t]*))+(.*)$`)
	return &Normalizer{Glyph: glyph, GuardLeadingSpace: guard, itemRegex: re}
}

// Normalize renders every list item line with exactly one glyph and one space.
func (n *Normalizer) Normalize(text string) string {
	return n.itemRegex.ReplaceAllStringFunc(text, func(line string) string {
		m := n.itemRegex.FindStringSubmatch(line)
		return n.Glyph + " " + strings.TrimLeft(m[1], " \t")
	})
}

// Guard prefixes each line that starts with the glyph with one space.
// It runs after the final whitespace cleanup, which would otherwise trim it.
func (n *Normalizer) Guard(text string) string {
	if !n.GuardLeadingSpace {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, n.Glyph) {
			lines[i] = " " + line
		}
	}
	return strings.Join(lines, "\n")
}

// IsMarkerAt reports whether the byte at i is a list bullet marker: it sits
// at the start of a line (after optional blanks) and is followed by a blank.
// Such a marker is never an emphasis delimiter.
func IsMarkerAt(text string, i int) bool {
	switch text[i] {
	case '*', '-', '+':
	default:
		return false
	}
	if i+1 >= len(text) || (text[i+1] != ' ' && text[i+1] != '\t') {
		return false
	}
	for j := i - 1; j >= 0; j-- {
		switch text[j] {
		case ' ', '\t':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}
