// Package validate checks emphasis marker balance before formatting.
// An odd marker count makes span boundaries ambiguous, so under the strict
// policy the input is rejected instead of being half styled.
package validate

import (
	"github.com/gaurav-prasanna/postfmt/core"
	"github.com/gaurav-prasanna/postfmt/core/bullet"
)

const (
	boldMarker   = '*'
	italicMarker = '_'
)

// BalanceValidator rejects input with an odd bold or italic marker count.
type BalanceValidator struct{}

// New creates a BalanceValidator.
func New() *BalanceValidator {
	return &BalanceValidator{}
}

// Validate returns core.ErrUnbalancedMarkers (matched with errors.Is) when
// either marker count is odd. List bullet asterisks are not counted.
func (v *BalanceValidator) Validate(text string) error {
	bold, italic := Count(text)
	if bold%2 != 0 || italic%2 != 0 {
		return core.Unbalanced(bold, italic)
	}
	return nil
}

// Count returns the number of bold and italic emphasis markers in text.
func Count(text string) (bold, italic int) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case boldMarker:
			if !bullet.IsMarkerAt(text, i) {
				bold++
			}
		case italicMarker:
			italic++
		}
	}
	return bold, italic
}
