// Package chunk splits formatted text into parts that fit a post length
// limit, for publishing long text as a thread.
// Length is counted in runes; styled letters are one rune each.
package chunk

import (
	"strings"
	"unicode/utf8"
)

// Chunker splits text into parts of at most MaxRunes runes.
type Chunker struct {
	MaxRunes int // 0 disables splitting
}

// New creates a Chunker. A limit <= 0 disables splitting.
func New(maxRunes int) *Chunker {
	if maxRunes < 0 {
		maxRunes = 0
	}
	return &Chunker{MaxRunes: maxRunes}
}

// Split packs whole lines into parts greedily. A line longer than the
// limit is split on word boundaries, and a word longer than the limit is
// cut at the limit. Returns nil for blank text.
func (c *Chunker) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if c.MaxRunes == 0 || utf8.RuneCountInString(text) <= c.MaxRunes {
		return []string{text}
	}

	p := packer{max: c.MaxRunes}
	for _, line := range strings.Split(text, "\n") {
		if utf8.RuneCountInString(line) <= c.MaxRunes {
			p.add(line, "\n")
			continue
		}
		// The first word still starts a new line.
		p.sep = "\n"
		for _, word := range strings.Fields(line) {
			for _, piece := range cut(word, c.MaxRunes) {
				p.add(piece, " ")
			}
		}
	}
	return p.finish()
}

// packer accumulates pieces into parts.
type packer struct {
	max   int
	parts []string
	cur   strings.Builder
	n     int    // runes in cur
	sep   string // separator forced before the next piece, if set
}

func (p *packer) add(piece, sep string) {
	if p.sep != "" {
		sep, p.sep = p.sep, ""
	}
	size := utf8.RuneCountInString(piece)
	if p.n > 0 && p.n+utf8.RuneCountInString(sep)+size > p.max {
		p.flush()
	}
	if p.n > 0 {
		p.cur.WriteString(sep)
		p.n += utf8.RuneCountInString(sep)
	}
	p.cur.WriteString(piece)
	p.n += size
}

func (p *packer) flush() {
	if part := strings.Trim(p.cur.String(), "\n "); part != "" {
		p.parts = append(p.parts, part)
	}
	p.cur.Reset()
	p.n = 0
}

func (p *packer) finish() []string {
	p.flush()
	return p.parts
}

// cut splits word into runs of at most max runes.
func cut(word string, max int) []string {
	if utf8.RuneCountInString(word) <= max {
		return []string{word}
	}
	var out []string
	r := []rune(word)
	for i := 0; i < len(r); i += max {
		end := i + max
		if end > len(r) {
			end = len(r)
		}
		out = append(out, string(r[i:end]))
	}
	return out
}
