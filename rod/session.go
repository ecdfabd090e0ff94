package rod

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pagespec"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Ensure Session implements pagespec.Session at compile time.
var _ pagespec.Session = (*Session)(nil)

// Session owns one isolated browsing context and the page rendered inside
// it. The context is destroyed unconditionally on Close, success or
// failure, so no cookies, cache, or storage leak between viewport passes.
type Session struct {
	incognito  *rod.Browser
	page       *rod.Page
	router     *rod.HijackRouter
	stealth    bool
	navTimeout time.Duration
	closed     atomic.Bool
}

// Navigate sizes the context to the viewport, navigates, and waits until
// the DOM is parsed. Waiting for network idle instead would never complete
// on pages with long-polling or streaming connections, so availability wins
// over completeness of late-loading assets.
func (s *Session) Navigate(ctx context.Context, url string, viewport pagespec.Viewport) (time.Duration, error) {
	if s.closed.Load() {
		return 0, pagespec.Errorf(pagespec.EINVALID, "session is closed")
	}

	// Re-navigation replaces the page; tear down the previous one so the
	// old tab and its request observer do not outlive it.
	if s.router != nil {
		_ = s.router.Stop()
		s.router = nil
	}
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}

	var page *rod.Page
	var err error
	if s.stealth {
		page, err = stealth.Page(s.incognito)
	} else {
		page, err = s.incognito.Page(proto.TargetCreateTarget{})
	}
	if err != nil {
		return 0, pagespec.Errorf(pagespec.ENAVIGATION, "creating page: %v", err)
	}
	s.page = page

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewport.Width,
		Height:            viewport.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return 0, pagespec.Errorf(pagespec.ENAVIGATION, "setting viewport: %v", err)
	}

	// Observe requests without blocking or rewriting them. This is a hook
	// point for future throttling or recording; today every request
	// continues unmodified.
	s.router = page.HijackRequests()
	if err := s.router.Add("*", "", func(h *rod.Hijack) {
		h.ContinueRequest(&proto.FetchContinueRequest{})
	}); err != nil {
		return 0, pagespec.Errorf(pagespec.ENAVIGATION, "installing request observer: %v", err)
	}
	go s.router.Run()

	navCtx, cancel := context.WithTimeout(ctx, s.navTimeout)
	defer cancel()
	timed := page.Context(navCtx)

	begin := time.Now()
	wait := timed.WaitEvent(&proto.PageDomContentEventFired{})
	if err := timed.Navigate(url); err != nil {
		return 0, s.navError(navCtx, url, err)
	}
	wait()
	if err := navCtx.Err(); err != nil {
		return 0, s.navError(navCtx, url, err)
	}

	return time.Since(begin), nil
}

// navError maps a navigation failure onto the error taxonomy: the timeout
// ceiling yields ENAVTIMEOUT, everything else ENAVIGATION with the
// underlying message.
func (s *Session) navError(navCtx context.Context, url string, err error) error {
	if navCtx.Err() == context.DeadlineExceeded {
		return pagespec.Errorf(pagespec.ENAVTIMEOUT, "navigation to %s exceeded %s", url, s.navTimeout)
	}
	return pagespec.Errorf(pagespec.ENAVIGATION, "navigating to %s: %v", url, err)
}

// Eval evaluates a JavaScript function that returns a JSON string and
// unmarshals the result into out.
func (s *Session) Eval(ctx context.Context, js string, out any) error {
	if s.page == nil {
		return pagespec.Errorf(pagespec.EINVALID, "session has not navigated")
	}
	res, err := s.page.Context(ctx).Eval(js)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(res.Value.Str()), out)
}

// HTML returns the rendered document's outer HTML.
func (s *Session) HTML(ctx context.Context) (string, error) {
	if s.page == nil {
		return "", pagespec.Errorf(pagespec.EINVALID, "session has not navigated")
	}
	return s.page.Context(ctx).HTML()
}

// Close destroys the browsing context. Close is safe to call multiple times.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if s.router != nil {
		_ = s.router.Stop()
	}
	if s.page != nil {
		_ = s.page.Close()
	}
	// Closing the incognito browser disposes only its browsing context;
	// the shared browser process stays up.
	return s.incognito.Close()
}
