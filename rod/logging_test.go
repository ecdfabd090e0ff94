package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/pagespec"
	"github.com/fwojciec/pagespec/mock"
	"github.com/fwojciec/pagespec/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSession_Navigate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	session := &mock.Session{
		NavigateFn: func(_ context.Context, _ string, _ pagespec.Viewport) (time.Duration, error) {
			return 42 * time.Millisecond, nil
		},
	}

	wrapped := rod.NewLoggingSession(session, logger)
	loadTime, err := wrapped.Navigate(context.Background(), "https://example.com", pagespec.Viewport{Name: "desktop", Width: 1920, Height: 1080})

	require.NoError(t, err)
	assert.Equal(t, 42*time.Millisecond, loadTime)
	assert.Contains(t, buf.String(), "navigate")
	assert.Contains(t, buf.String(), "https://example.com")
	assert.Contains(t, buf.String(), "desktop")
}

func TestLoggingBrowser_WrapsSessions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	var closed bool
	browser := &mock.Browser{
		NewSessionFn: func(_ context.Context) (pagespec.Session, error) {
			return &mock.Session{
				NavigateFn: func(_ context.Context, _ string, _ pagespec.Viewport) (time.Duration, error) {
					return 0, nil
				},
			}, nil
		},
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	wrapped := rod.NewLoggingBrowser(browser, logger)

	session, err := wrapped.NewSession(context.Background())
	require.NoError(t, err)

	_, err = session.Navigate(context.Background(), "https://example.com", pagespec.Viewport{Width: 1, Height: 1})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "navigate")

	require.NoError(t, wrapped.Close())
	assert.True(t, closed)
}
