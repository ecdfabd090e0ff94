package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pagespec"
	main "github.com/fwojciec/pagespec/cmd/pagespec"
	"github.com/fwojciec/pagespec/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints title assets and landmarks", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "<html>...</html>", nil
			},
		}
		scanner := &mock.StaticScanner{
			ScanFn: func(html string, baseURL string) (*pagespec.StaticScan, error) {
				return &pagespec.StaticScan{
					Title:       "Example",
					Images:      []string{"https://example.com/hero.png"},
					Stylesheets: []string{"https://example.com/main.css"},
					Scripts:     []string{},
					Landmarks:   map[string]bool{"header": true, "main": true},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Fetcher: fetcher,
			Scanner: scanner,
		}

		cmd := &main.PreviewCmd{URL: "https://example.com"}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "Title: Example")
		assert.Contains(t, out, "header main")
		assert.Contains(t, out, "Images (1):")
		assert.Contains(t, out, "https://example.com/hero.png")
		assert.Contains(t, out, "Stylesheets (1):")
		assert.Contains(t, out, "Scripts (0):")
	})

	t.Run("reports no landmarks", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html></html>", nil
				},
			},
			Scanner: &mock.StaticScanner{
				ScanFn: func(_ string, _ string) (*pagespec.StaticScan, error) {
					return &pagespec.StaticScan{Landmarks: map[string]bool{}}, nil
				},
			},
		}

		stdout := deps.Stdout.(*bytes.Buffer)
		cmd := &main.PreviewCmd{URL: "https://example.com"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "(none)")
	})

	t.Run("propagates fetch error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", pagespec.Errorf(pagespec.ENAVIGATION, "HTTP 503 for https://example.com")
				},
			},
		}

		cmd := &main.PreviewCmd{URL: "https://example.com"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "HTTP 503")
	})
}
