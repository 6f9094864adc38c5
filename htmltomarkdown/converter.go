// Package htmltomarkdown provides a cratedoc.Converter backed by the
// html-to-markdown library.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/cratedoc"
)

// Ensure Converter implements cratedoc.Converter at compile time.
var _ cratedoc.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// The table plugin matters for rustdoc output: method and trait listings
// render as tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", cratedoc.Errorf(cratedoc.EINVALID, "empty HTML input")
	}

	return c.conv.ConvertString(html)
}
