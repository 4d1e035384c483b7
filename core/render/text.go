// Package render provides output renderers for formatter results.
// This file implements the plain text renderer, used when the output is
// pasted straight into a post field.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/postfmt/core"
)

// partSeparator sits between split parts in text output.
const partSeparator = "\n\n---\n\n"

// TextRenderer writes the formatted text as is.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render returns the formatted text, or the parts separated by a rule
// when the text was split. A failed result is an error.
func (r *TextRenderer) Render(res core.Result) ([]byte, error) {
	if res.Err != nil {
		return nil, fmt.Errorf("formatting: %w", res.Err)
	}
	if len(res.Parts) > 1 {
		return []byte(strings.Join(res.Parts, partSeparator) + "\n"), nil
	}
	return []byte(res.Text + "\n"), nil
}

// Extension returns the file extension for text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
