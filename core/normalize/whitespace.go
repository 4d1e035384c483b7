package normalize

import (
	"regexp"
	"strings"
)

var (
	// Horizontal whitespace, including NBSP and the other Zs spaces.
	hspaceRegex   = regexp.MustCompile(`[\t\f\v \p{Zs}]+`)
	blankRunRegex = regexp.MustCompile(`\n{3,}`)
	crlfReplacer  = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Cleanup collapses horizontal whitespace runs to one space, trims every
// line, allows at most one blank line between paragraphs, and trims the
// text. Cleanup(Cleanup(s)) == Cleanup(s).
func Cleanup(text string) string {
	text = crlfReplacer.Replace(text)
	text = hspaceRegex.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Trim(line, " ")
	}
	text = strings.Join(lines, "\n")

	text = blankRunRegex.ReplaceAllString(text, "\n\n")
	return strings.Trim(text, "\n")
}
