// Package scrub strips zero-width and byte-order-mark characters from input.
// They are invisible to the caller but break marker counting and style
// substitution, so they are removed before anything else runs.
package scrub

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// invisible lists the characters removed from input.
var invisible = map[rune]bool{
	'\u200b': true, // zero width space
	'\u200c': true, // zero width non-joiner
	'\u200d': true, // zero width joiner
	'\u2060': true, // word joiner
	'\ufeff': true, // byte order mark / zero width no-break space
	'\u00ad': true, // soft hyphen
}

// IsInvisible reports whether r is removed by the scrubber.
func IsInvisible(r rune) bool {
	return invisible[r]
}

// InvisibleScrubber removes invisible formatting characters.
type InvisibleScrubber struct{}

// New creates an InvisibleScrubber.
func New() *InvisibleScrubber {
	return &InvisibleScrubber{}
}

// Scrub returns text with every invisible character removed.
func (s *InvisibleScrubber) Scrub(text string) string {
	// Transformers are not safe for concurrent use.
	out, _, err := transform.String(runes.Remove(runes.Predicate(IsInvisible)), text)
	if err != nil {
		// Removal cannot fail on a string source; keep the input intact.
		return text
	}
	return out
}
