// Package extract implements the Extractor interface.
// A saved page or an email body is reduced to its main content; pasted
// fragments pass through untouched.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before extraction.
// None of them carries text that belongs in a post.
var noiseSelectors = []string{
	"head", "script", "style", "noscript", "template",
	"nav", "footer", "header", "aside",
	"img", "picture", "figure",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

var documentRegex = regexp.MustCompile(`(?i)<(?:!doctype|html|head|body)[\s>]`)

// IsDocument reports whether text looks like a full HTML document rather
// than a fragment.
func IsDocument(text string) bool {
	return documentRegex.MatchString(text)
}

// HTMLExtractor strips noise from HTML documents and returns the main content.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract returns the inner HTML of the main content container of a full
// document. Anything that is not a full document is returned as is.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	if !IsDocument(html) {
		return html, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	// Remove noise elements first, including <head> so a title never
	// reaches the post.
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// Find the best content container in priority order.
	// <main> is the most semantically correct, then <article>, then <body>.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	// Inner HTML only: the container tag itself adds nothing to a post.
	result, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return result, nil
}
