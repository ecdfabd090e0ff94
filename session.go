package pagespec

import (
	"context"
	"time"
)

// Session owns the page lifecycle for one (url, viewport) pair. A session
// runs in an isolated browsing context; cookies, cache, and storage are
// destroyed when the session closes, so no state leaks between passes.
type Session interface {
	// Navigate sizes the context to the viewport, navigates to the URL, and
	// waits until the DOM is parsed (not network idle). It returns elapsed
	// wall-clock time from navigation start. Exceeding the navigation
	// timeout fails with ENAVTIMEOUT; any other navigation failure fails
	// with ENAVIGATION carrying the underlying message.
	Navigate(ctx context.Context, url string, viewport Viewport) (time.Duration, error)

	// Eval evaluates a JavaScript function against the rendered document and
	// unmarshals its JSON-compatible return value into out.
	Eval(ctx context.Context, js string, out any) error

	// HTML returns the rendered document's outer HTML.
	HTML(ctx context.Context) (string, error)

	// Close destroys the browsing context unconditionally.
	// Must be called when the session is no longer needed.
	Close() error
}

// Browser creates render sessions against one shared browser process.
// Implementations launch the browser once and hand out isolated contexts.
type Browser interface {
	// NewSession creates a fresh isolated session.
	NewSession(ctx context.Context) (Session, error)

	// Close shuts the browser process down.
	Close() error
}
