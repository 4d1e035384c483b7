package scrub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrub(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", "hello"},
		{"zero width space", "a\u200bb", "ab"},
		{"bom prefix", "\ufeffhello", "hello"},
		{"joiners", "x\u200c\u200dy\u2060z", "xyz"},
		{"soft hyphen", "co\u00adoperate", "cooperate"},
		{"marker split by zws", "*\u200bbold*", "*bold*"},
		{"keeps emoji zwj-free text", "✓ done", "✓ done"},
		{"empty", "", ""},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Scrub(tt.input))
		})
	}
}
