package cratedoc

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title, if present.
	Title string

	// ContentHTML is the main documentation content as HTML.
	// Page chrome (navigation, sidebar, scripts) has been removed.
	ContentHTML string
}

// Extractor extracts the main documentation content from an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns an ENOTFOUND error when no content region can be located.
	Extract(html string) (*ExtractResult, error)
}
