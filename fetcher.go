package pagespec

import "context"

// Fetcher retrieves raw HTML from URLs without a browser. It is used by
// preview mode, where static markup is enough to enumerate assets and
// landmarks; anything needing geometry or computed styles goes through a
// Session instead.
type Fetcher interface {
	// Fetch retrieves the HTML content at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources.
	Close() error
}
