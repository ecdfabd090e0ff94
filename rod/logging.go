package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagespec"
)

// Ensure LoggingBrowser implements pagespec.Browser.
var _ pagespec.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with debug logging. Sessions it hands out
// log navigation and evaluation timings.
type LoggingBrowser struct {
	next   pagespec.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next pagespec.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// NewSession delegates to the wrapped browser and wraps the session.
func (b *LoggingBrowser) NewSession(ctx context.Context) (pagespec.Session, error) {
	session, err := b.next.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	return &LoggingSession{next: session, logger: b.logger}, nil
}

// Close delegates to the wrapped browser.
func (b *LoggingBrowser) Close() error {
	return b.next.Close()
}

// Ensure LoggingSession implements pagespec.Session.
var _ pagespec.Session = (*LoggingSession)(nil)

// LoggingSession wraps a Session with debug logging.
type LoggingSession struct {
	next   pagespec.Session
	logger *slog.Logger
}

// NewLoggingSession creates a new LoggingSession.
func NewLoggingSession(next pagespec.Session, logger *slog.Logger) *LoggingSession {
	return &LoggingSession{next: next, logger: logger}
}

// Navigate logs the navigation target and outcome, then delegates.
func (s *LoggingSession) Navigate(ctx context.Context, url string, viewport pagespec.Viewport) (loadTime time.Duration, err error) {
	defer func(begin time.Time) {
		s.logger.Info("navigate",
			"url", url,
			"viewport", viewport.Name,
			"loadTime", loadTime,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url, viewport)
}

// Eval logs evaluation timing and delegates.
func (s *LoggingSession) Eval(ctx context.Context, js string, out any) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("eval",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Eval(ctx, js, out)
}

// HTML delegates to the wrapped session.
func (s *LoggingSession) HTML(ctx context.Context) (string, error) {
	return s.next.HTML(ctx)
}

// Close delegates to the wrapped session.
func (s *LoggingSession) Close() error {
	return s.next.Close()
}
