// Package normalize implements the Normalizer interface.
// It collapses block-level HTML (paragraphs, line breaks, lists) into the
// line-oriented plain text a post field understands. Inline emphasis tags
// survive in canonical form for the emphasis converter; every other tag is
// stripped and its text kept.
package normalize

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// blockTags open a new line. Closers of p and div are dropped; closers of
// the others end the line.
var blockTags = map[string]bool{
	"p": true, "div": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "section": true, "article": true,
}

// emphasisTags are passed through as bare lowercase tags.
var emphasisTags = map[string]bool{
	"b": true, "strong": true, "i": true, "em": true,
}

// skipTags have content that never reaches the output.
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// markupRegex matches comments, doctypes and well-formed tags. A tag's
// attributes must all have values, so "a<b and c>d" is not a tag.
var markupRegex = regexp.MustCompile(`<!--[\s\S]*?-->|<![A-Za-z][^<>]*>|</?[A-Za-z][A-Za-z0-9-]*(?:\s+[A-Za-z_:][-A-Za-z0-9_:.]*\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'=<>` + "`" + `]+))*\s*/?>`)

// escapeStrayBrackets escapes every "<" that does not start markup, so the
// tokenizer keeps it as text instead of opening a tag.
func escapeStrayBrackets(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range markupRegex.FindAllStringIndex(text, -1) {
		b.WriteString(strings.ReplaceAll(text[last:m[0]], "<", "&lt;"))
		b.WriteString(text[m[0]:m[1]])
		last = m[1]
	}
	b.WriteString(strings.ReplaceAll(text[last:], "<", "&lt;"))
	return b.String()
}

// HTMLNormalizer converts HTML structure into plain lines.
type HTMLNormalizer struct {
	// Bullet is written before unordered list items.
	Bullet string
}

// New creates an HTMLNormalizer. An empty bullet selects "•".
func New(bullet string) *HTMLNormalizer {
	if bullet == "" {
		bullet = "•"
	}
	return &HTMLNormalizer{Bullet: bullet}
}

type listFrame struct {
	ordered bool
	n       int
}

// lineWriter buffers output and knows whether it currently ends a line.
type lineWriter struct {
	buf []byte
}

func (w *lineWriter) write(s string) { w.buf = append(w.buf, s...) }

// ensureNewline drops trailing blanks and starts a new line unless the
// output is empty or already at a line start.
func (w *lineWriter) ensureNewline() {
	w.buf = bytes.TrimRight(w.buf, " \t")
	if len(w.buf) > 0 && w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
}

// Normalize converts text to plain lines and runs Cleanup on the result.
// Text without markup passes through the tokenizer unchanged.
func (n *HTMLNormalizer) Normalize(text string) string {
	z := html.NewTokenizer(strings.NewReader(escapeStrayBrackets(text)))
	var (
		w     lineWriter
		lists []listFrame
		skip  string
	)

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF; a strings.Reader produces no other error.
			break
		}

		if skip != "" {
			if tt == html.EndTagToken {
				if name, _ := z.TagName(); string(name) == skip {
					skip = ""
				}
			}
			continue
		}

		switch tt {
		case html.TextToken:
			w.write(string(z.Text()))

		case html.StartTagToken, html.SelfClosingTagToken:
			nameBytes, _ := z.TagName()
			name := string(nameBytes)
			switch {
			case name == "br":
				w.write("\n")
			case blockTags[name]:
				w.write("\n")
			case name == "ul" || name == "ol":
				w.ensureNewline()
				lists = append(lists, listFrame{ordered: name == "ol"})
			case name == "li":
				w.ensureNewline()
				if len(lists) > 0 && lists[len(lists)-1].ordered {
					lists[len(lists)-1].n++
					w.write(fmt.Sprintf("%d. ", lists[len(lists)-1].n))
				} else {
					w.write(n.Bullet + " ")
				}
			case emphasisTags[name] && tt == html.StartTagToken:
				w.write("<" + name + ">")
			case skipTags[name] && tt == html.StartTagToken:
				skip = name
			}

		case html.EndTagToken:
			nameBytes, _ := z.TagName()
			name := string(nameBytes)
			switch {
			case name == "p" || name == "div":
			case blockTags[name]:
				w.ensureNewline()
			case name == "ul" || name == "ol":
				if len(lists) > 0 {
					lists = lists[:len(lists)-1]
				}
				w.ensureNewline()
			case name == "br":
				// Browsers treat </br> as <br>.
				w.write("\n")
			case emphasisTags[name]:
				w.write("</" + name + ">")
			}

		case html.CommentToken, html.DoctypeToken:
		}
	}

	return Cleanup(string(w.buf))
}
