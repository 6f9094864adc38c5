// Package goquery provides a cratedoc.Extractor that locates the main
// documentation region in rustdoc-generated HTML with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cratedoc"
)

// contentSelectors are tried in order; the first match wins.
// #main-content is the rustdoc content node on both docs.rs and local
// builds. The remaining entries cover stripped-down or older page layouts.
var contentSelectors = []string{
	"#main-content",
	"main",
	".docblock",
}

// titleSuffix is appended by rustdoc to every page title.
const titleSuffix = " - Rust"

// Ensure Extractor implements cratedoc.Extractor at compile time.
var _ cratedoc.Extractor = (*Extractor)(nil)

// Extractor selects the primary content node from rustdoc HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main documentation content.
// Returns ENOTFOUND when no content region can be located.
func (e *Extractor) Extract(rawHTML string) (*cratedoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, cratedoc.Errorf(cratedoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, cratedoc.Errorf(cratedoc.EINVALID, "failed to parse HTML: %v", err)
	}

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			content = sel
			break
		}
	}
	if content == nil {
		return nil, cratedoc.Errorf(cratedoc.ENOTFOUND, "main content not found")
	}

	// Non-content elements inside the selection would otherwise leak into
	// the Markdown output.
	content.Find("script, style").Remove()

	contentHTML, err := content.Html()
	if err != nil {
		return nil, err
	}

	return &cratedoc.ExtractResult{
		Title:       pageTitle(doc),
		ContentHTML: contentHTML,
	}, nil
}

// pageTitle returns the document title with the rustdoc suffix stripped.
func pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	return strings.TrimSuffix(title, titleSuffix)
}
