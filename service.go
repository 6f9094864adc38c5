package cratedoc

import (
	"context"
	"os"
)

// Service runs the documentation pipeline: resolve the target, obtain HTML,
// extract the content region, and convert it to Markdown.
type Service struct {
	Fetcher   Fetcher
	Builder   Builder
	Extractor Extractor
	Converter Converter
}

// Docs returns the documentation for the target as cleaned Markdown.
//
// Online targets are fetched from docs.rs; local targets are built with the
// Builder and read from the generated tree. Errors from each stage propagate
// with their codes.
func (s *Service) Docs(ctx context.Context, target Target) (string, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}

	html, err := s.acquire(ctx, target)
	if err != nil {
		return "", err
	}

	return s.Render(html)
}

// Render extracts the main content from page HTML and converts it to
// cleaned Markdown. It is the tail of the pipeline, shared by both modes
// and usable directly with HTML obtained elsewhere.
func (s *Service) Render(html string) (string, error) {
	result, err := s.Extractor.Extract(html)
	if err != nil {
		return "", err
	}

	markdown, err := s.Converter.Convert(result.ContentHTML)
	if err != nil {
		return "", err
	}

	return CleanMarkdown(markdown), nil
}

func (s *Service) acquire(ctx context.Context, target Target) (string, error) {
	if target.Online {
		return s.Fetcher.Fetch(ctx, target.DocsURL())
	}

	docRoot, err := s.Builder.Build(ctx, target.Crate)
	if err != nil {
		return "", err
	}

	page := target.DocFile(docRoot)
	data, err := os.ReadFile(page)
	if os.IsNotExist(err) {
		return "", Errorf(ENOTFOUND, "documentation not found at %s", page)
	} else if err != nil {
		return "", err
	}

	return string(data), nil
}
