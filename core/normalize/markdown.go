package normalize

import (
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

// MarkdownExporter converts editor HTML into the marker syntax the
// formatter accepts: **bold**, _italic_ and "- " list items.
type MarkdownExporter struct {
	conv *converter.Converter
}

// NewMarkdownExporter creates a MarkdownExporter. The converter is
// goroutine-safe and reused across calls.
func NewMarkdownExporter() *MarkdownExporter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithStrongDelimiter("**"),
				// A single asterisk means bold to the formatter.
				commonmark.WithEmDelimiter("_"),
			),
		),
	)
	return &MarkdownExporter{conv: conv}
}

// Export converts an HTML fragment into marker text.
func (e *MarkdownExporter) Export(html string) (string, error) {
	markdown, err := e.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
