// Package core defines the pipeline interfaces for postfmt.
// Each stage of the formatting pipeline is a small, testable interface.
package core

import "context"

// Policy selects how unmatched emphasis markers are handled.
type Policy string

const (
	// PolicyStrict rejects input whose bold or italic marker count is odd.
	PolicyStrict Policy = "strict"
	// PolicyLenient leaves unmatched markers in place as literal text.
	PolicyLenient Policy = "lenient"
)

// ParsePolicy maps a config or flag value to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch Policy(s) {
	case PolicyStrict, "":
		return PolicyStrict, true
	case PolicyLenient:
		return PolicyLenient, true
	}
	return "", false
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Result is the outcome of one formatting run: either Text (and
// optionally Parts) or Err, never both.
type Result struct {
	Text  string
	Parts []string
	Err   error
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Scrubber removes characters that must not take part in formatting.
type Scrubber interface {
	Scrub(text string) string
}

// Extractor pulls the main content out of a full HTML document.
type Extractor interface {
	Extract(html string) (string, error)
}

// Validator rejects input before any transformation is attempted.
type Validator interface {
	Validate(text string) error
}

// Normalizer collapses block-level HTML into the plain-text line model.
type Normalizer interface {
	Normalize(text string) string
}

// Converter rewrites emphasis spans into styled Unicode text.
type Converter interface {
	Convert(text string) string
}

// BulletNormalizer rewrites list item lines to a single bullet glyph.
type BulletNormalizer interface {
	Normalize(text string) string
	// Guard applies the leading-space guard to bullet lines, if enabled.
	Guard(text string) string
}

// Splitter breaks formatted text into parts that fit a post length limit.
type Splitter interface {
	Split(text string) []string
}

// Renderer converts a Result into a final output format.
type Renderer interface {
	Render(res Result) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".txt").
	Extension() string
}
