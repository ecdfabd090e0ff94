//go:build integration

package analyze_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/pagespec"
	"github.com/fwojciec/pagespec/analyze"
	"github.com/fwojciec/pagespec/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_EndToEnd(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html><html><head>
<title>Landing</title>
<meta name="description" content="A test page">
<style>
header { display: flex; background: #112233; }
.card { margin: 16px; border-radius: 8px; }
</style>
</head><body>
<header><nav><a href="/">Home</a></nav></header>
<main>
  <div class="card">First</div>
  <div class="card">Second</div>
</main>
<footer>done</footer>
</body></html>`))
	}))
	t.Cleanup(srv.Close)

	browser, err := rod.NewBrowser()
	require.NoError(t, err)
	t.Cleanup(func() { _ = browser.Close() })

	analyzer := analyze.NewAnalyzer(browser)

	doc, err := analyzer.Analyze(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	require.NotNil(t, doc)

	// One responsive entry per default viewport; the primary payload comes
	// from the last (desktop) pass.
	require.Len(t, doc.Responsive, 3)
	for _, vp := range pagespec.DefaultViewports() {
		entry, ok := doc.Responsive[vp.Name]
		require.True(t, ok, "missing responsive entry %q", vp.Name)
		assert.Equal(t, vp, entry.Viewport)
		assert.Greater(t, entry.Layout.PageHeight, 0.0)
	}

	assert.Equal(t, srv.URL, doc.Metadata.URL)
	assert.Equal(t, "desktop", doc.Metadata.Viewport.Name)
	assert.Equal(t, "Landing", doc.Metadata.Title)
	require.NotNil(t, doc.Metadata.Description)
	assert.Equal(t, "A test page", *doc.Metadata.Description)
	assert.Greater(t, doc.Metadata.ElementCount, 0)
	assert.Equal(t, doc.Metadata.ElementCount, len(doc.Elements))

	assert.True(t, doc.Layout.Sections["header"].Exists)
	assert.True(t, doc.Layout.Sections["nav"].Exists)
	assert.True(t, doc.Layout.Sections["main"].Exists)
	assert.True(t, doc.Layout.Sections["footer"].Exists)
	assert.False(t, doc.Layout.Sections["aside"].Exists)
	assert.GreaterOrEqual(t, doc.Layout.LayoutTypes.Flex, 1)

	assert.NotEmpty(t, doc.DesignTokens.Colors)
	assert.Contains(t, doc.DesignTokens.Spacing, "16px")
	assert.Contains(t, doc.DesignTokens.BorderRadii, "8px")

	var cards *pagespec.ComponentPattern
	for i := range doc.ComponentPatterns {
		if doc.ComponentPatterns[i].Name == "cards" {
			cards = &doc.ComponentPatterns[i]
		}
	}
	require.NotNil(t, cards)
	assert.Equal(t, 2, cards.Count)
}

func TestAnalyzer_EndToEnd_NavigationFailure(t *testing.T) {
	t.Parallel()

	browser, err := rod.NewBrowser()
	require.NoError(t, err)
	t.Cleanup(func() { _ = browser.Close() })

	analyzer := analyze.NewAnalyzer(browser)

	doc, err := analyzer.Analyze(context.Background(), "http://unreachable.invalid", nil)
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Equal(t, pagespec.ENAVIGATION, pagespec.ErrorCode(err))
}
