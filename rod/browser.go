// Package rod implements pagespec.Browser and pagespec.Session using
// Chrome browser automation.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pagespec"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultNavigationTimeout is the fixed navigation ceiling. Sessions that
// exceed it fail with ENAVTIMEOUT.
const DefaultNavigationTimeout = 60 * time.Second

// DefaultMaxContexts is the default number of browsing contexts before
// browser recycling.
const DefaultMaxContexts = 75

// Ensure Browser implements pagespec.Browser at compile time.
var _ pagespec.Browser = (*Browser)(nil)

// Browser launches one shared headless Chrome process and hands out
// isolated browsing contexts. Chrome accumulates memory over time and the
// baseline never returns to initial levels even with proper page cleanup,
// so the browser is recycled after maxContexts contexts have been created.
//
// Browser is safe for concurrent use.
type Browser struct {
	browser      *rod.Browser
	launcher     *launcher.Launcher
	stealth      bool
	navTimeout   time.Duration
	contextCount int64
	maxContexts  int64
	mu           sync.Mutex
	closed       atomic.Bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithNavigationTimeout sets the per-session navigation ceiling.
// Defaults to DefaultNavigationTimeout (60s).
func WithNavigationTimeout(d time.Duration) Option {
	return func(b *Browser) {
		b.navTimeout = d
	}
}

// WithStealth makes sessions create pages with bot-detection evasion
// scripts injected. Useful for sites that block headless browsers.
func WithStealth() Option {
	return func(b *Browser) {
		b.stealth = true
	}
}

// WithMaxContexts sets the number of contexts before the browser is
// recycled. Defaults to DefaultMaxContexts.
func WithMaxContexts(n int64) Option {
	return func(b *Browser) {
		b.maxContexts = n
	}
}

// NewBrowser launches a headless Chrome browser. Close must be called when
// the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...Option) (*Browser, error) {
	b := &Browser{
		navTimeout:  DefaultNavigationTimeout,
		maxContexts: DefaultMaxContexts,
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.launchBrowser(); err != nil {
		return nil, err
	}

	return b, nil
}

// NewSession creates a fresh isolated browsing context. The context shares
// the browser process but no cookies, cache, or storage with other
// sessions; it is destroyed when the session closes.
func (b *Browser) NewSession(ctx context.Context) (pagespec.Session, error) {
	if b.closed.Load() {
		return nil, pagespec.Errorf(pagespec.EINVALID, "browser is closed")
	}

	b.mu.Lock()
	if atomic.LoadInt64(&b.contextCount) >= b.maxContexts {
		b.recycleBrowser()
	}
	browser := b.browser
	b.mu.Unlock()

	incognito, err := browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("creating browsing context: %w", err)
	}
	atomic.AddInt64(&b.contextCount, 1)

	return &Session{
		incognito:  incognito,
		stealth:    b.stealth,
		navTimeout: b.navTimeout,
	}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.closeBrowser()
}

// launchBrowser starts a new browser instance with stability flags.
func (b *Browser) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.browser = browser
	b.launcher = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (b *Browser) closeBrowser() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one.
// If launching the new browser fails, the old browser is kept.
// Must be called with mu held.
func (b *Browser) recycleBrowser() {
	oldBrowser := b.browser
	oldLauncher := b.launcher
	b.browser = nil
	b.launcher = nil

	if err := b.launchBrowser(); err != nil {
		b.browser = oldBrowser
		b.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&b.contextCount, 0)
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}
