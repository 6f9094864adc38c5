package cratedoc

import "context"

// Fetcher retrieves rendered HTML from URLs.
type Fetcher interface {
	// Fetch performs a blocking GET against the URL and returns the
	// response body. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
