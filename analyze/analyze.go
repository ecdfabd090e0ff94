// Package analyze implements the extraction pipeline: per-viewport render
// passes, the five DOM collectors, and assembly of the final analysis
// document. Collectors are read-only passes over one rendered snapshot and
// never mutate the page.
package analyze

import (
	"context"
	"time"

	"github.com/fwojciec/pagespec"
)

// Ensure Analyzer implements pagespec.Analyzer at compile time.
var _ pagespec.Analyzer = (*Analyzer)(nil)

// Analyzer runs the full pipeline against a shared browser. Viewport passes
// run sequentially: each pass opens a fresh isolated session, is fully
// analyzed, and closes before the next pass opens, so no state crosses
// viewport boundaries.
type Analyzer struct {
	Browser pagespec.Browser

	// Catalog overrides the pattern selector catalog. Defaults to
	// pagespec.DefaultCatalog when nil.
	Catalog []pagespec.CatalogEntry

	// now is swappable for tests.
	now func() time.Time
}

// NewAnalyzer creates an Analyzer using the given browser.
func NewAnalyzer(browser pagespec.Browser) *Analyzer {
	return &Analyzer{Browser: browser, now: time.Now}
}

// Analyze renders url once per viewport, sequentially, and merges the
// results into one immutable document. The last viewport is the primary
// pass and contributes the full element, asset, and pattern data; every
// pass contributes a reduced entry to the responsive map. A navigation
// failure on any pass aborts the whole invocation with no partial document.
func (a *Analyzer) Analyze(ctx context.Context, url string, viewports []pagespec.Viewport) (*pagespec.AnalysisDocument, error) {
	if url == "" {
		return nil, pagespec.Errorf(pagespec.EINVALID, "url required")
	}
	if len(viewports) == 0 {
		viewports = pagespec.DefaultViewports()
	}
	seen := make(map[string]struct{}, len(viewports))
	for _, vp := range viewports {
		if err := vp.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[vp.Name]; ok {
			return nil, pagespec.Errorf(pagespec.EINVALID, "duplicate viewport name %q", vp.Name)
		}
		seen[vp.Name] = struct{}{}
	}

	doc := &pagespec.AnalysisDocument{
		Responsive: make(map[string]*pagespec.ResponsiveResult, len(viewports)),
	}

	primary := len(viewports) - 1
	for i, vp := range viewports {
		pass, err := a.runPass(ctx, url, vp, i == primary)
		if err != nil {
			return nil, err
		}

		doc.Responsive[vp.Name] = &pagespec.ResponsiveResult{
			Viewport:     vp,
			ElementCount: pass.metadata.ElementCount,
			Layout:       *pass.layout,
			DesignTokens: *pass.tokens,
		}

		if i == primary {
			doc.Metadata = pagespec.Metadata{
				URL:          url,
				Timestamp:    a.timestamp(),
				Viewport:     vp,
				LoadTimeMs:   pass.loadTime.Milliseconds(),
				ElementCount: pass.metadata.ElementCount,
				MaxDepth:     pass.metadata.MaxDepth,
				UserAgent:    pass.metadata.UserAgent,
				Title:        pass.metadata.Title,
				Description:  pass.metadata.Description,
				Performance:  pass.metadata.Performance,
			}
			doc.DesignTokens = *pass.tokens
			doc.Elements = pass.elements
			doc.Layout = *pass.layout
			doc.Assets = *pass.assets
			doc.ComponentPatterns = pass.patterns
		}
	}

	return doc, nil
}

// passResult accumulates the collector outputs of one viewport pass.
type passResult struct {
	loadTime time.Duration
	metadata *PageMetadata
	tokens   *pagespec.DesignTokens
	layout   *pagespec.LayoutInfo
	elements []pagespec.ElementRecord
	assets   *pagespec.AssetInventory
	patterns []pagespec.ComponentPattern
}

// runPass opens a session, renders, and runs the collectors. The reduced
// set (metadata, tokens, layout) runs every pass; the exhaustive collectors
// run only on the primary pass, a deliberate cost control: full per-element
// CSS capture at N viewports would multiply output size by N.
func (a *Analyzer) runPass(ctx context.Context, url string, vp pagespec.Viewport, full bool) (*passResult, error) {
	session, err := a.Browser.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	pass := &passResult{}

	pass.loadTime, err = session.Navigate(ctx, url, vp)
	if err != nil {
		return nil, err
	}

	if pass.metadata, err = CollectMetadata(ctx, session); err != nil {
		return nil, err
	}
	if pass.tokens, err = CollectTokens(ctx, session); err != nil {
		return nil, err
	}
	if pass.layout, err = CollectLayout(ctx, session); err != nil {
		return nil, err
	}

	if !full {
		return pass, nil
	}

	if pass.elements, err = CollectElements(ctx, session); err != nil {
		return nil, err
	}
	if pass.assets, err = CollectAssets(ctx, session); err != nil {
		return nil, err
	}
	catalog := a.Catalog
	if catalog == nil {
		catalog = pagespec.DefaultCatalog()
	}
	if pass.patterns, err = CollectPatterns(ctx, session, catalog); err != nil {
		return nil, err
	}

	return pass, nil
}

func (a *Analyzer) timestamp() string {
	now := time.Now
	if a.now != nil {
		now = a.now
	}
	return now().UTC().Format(time.RFC3339)
}
