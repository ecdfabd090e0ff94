package mock

import (
	"context"
	"time"

	"github.com/fwojciec/pagespec"
)

var _ pagespec.Session = (*Session)(nil)

// Session is a mock implementation of pagespec.Session.
type Session struct {
	NavigateFn func(ctx context.Context, url string, viewport pagespec.Viewport) (time.Duration, error)
	EvalFn     func(ctx context.Context, js string, out any) error
	HTMLFn     func(ctx context.Context) (string, error)
	CloseFn    func() error
}

func (s *Session) Navigate(ctx context.Context, url string, viewport pagespec.Viewport) (time.Duration, error) {
	return s.NavigateFn(ctx, url, viewport)
}

func (s *Session) Eval(ctx context.Context, js string, out any) error {
	return s.EvalFn(ctx, js, out)
}

func (s *Session) HTML(ctx context.Context) (string, error) {
	return s.HTMLFn(ctx)
}

func (s *Session) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

var _ pagespec.Browser = (*Browser)(nil)

// Browser is a mock implementation of pagespec.Browser.
type Browser struct {
	NewSessionFn func(ctx context.Context) (pagespec.Session, error)
	CloseFn      func() error
}

func (b *Browser) NewSession(ctx context.Context) (pagespec.Session, error) {
	return b.NewSessionFn(ctx)
}

func (b *Browser) Close() error {
	if b.CloseFn == nil {
		return nil
	}
	return b.CloseFn()
}
