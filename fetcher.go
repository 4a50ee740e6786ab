package omzthemes

import "context"

// Fetcher retrieves the raw HTML of the themes page.
type Fetcher interface {
	// Fetch performs a single attempt to retrieve the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
