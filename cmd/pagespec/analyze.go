package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/pagespec"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	viewports, err := c.viewports()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagespec.ErrorMessage(err))
		return err
	}

	doc, err := deps.Analyzer.Analyze(deps.Ctx, c.URL, viewports)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagespec.ErrorMessage(err))
		return err
	}

	path, err := deps.Writer.WriteDocument(deps.Ctx, doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagespec.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s (%d elements, %d patterns)\n",
		path, doc.Metadata.ElementCount, len(doc.ComponentPatterns))

	if c.Content {
		if err := c.captureContent(deps, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: content capture failed: %s\n", pagespec.ErrorMessage(err))
		}
	}

	if c.Probe {
		if err := c.probeAssets(deps, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: asset probe failed: %s\n", pagespec.ErrorMessage(err))
		}
	}

	if c.DB {
		analysis := &pagespec.Analysis{URL: c.URL, Document: doc}
		if err := deps.Analyses.CreateAnalysis(deps.Ctx, analysis); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagespec.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved analysis %s\n", analysis.ID)
	}

	return nil
}

// viewports builds the viewport sequence from flags. The last entry is the
// primary pass.
func (c *AnalyzeCmd) viewports() ([]pagespec.Viewport, error) {
	viewports := pagespec.DefaultViewports()
	if len(c.Viewport) > 0 {
		viewports = viewports[:0]
		for _, spec := range c.Viewport {
			vp, err := parseViewport(spec)
			if err != nil {
				return nil, err
			}
			viewports = append(viewports, vp)
		}
	}
	if c.NoResponsive {
		viewports = viewports[len(viewports)-1:]
	}
	return viewports, nil
}

// captureContent renders the page once more at the primary viewport, strips
// boilerplate, and saves the remaining content as markdown.
func (c *AnalyzeCmd) captureContent(deps *Dependencies, doc *pagespec.AnalysisDocument) error {
	session, err := deps.Browser.NewSession(deps.Ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	if _, err := session.Navigate(deps.Ctx, c.URL, doc.Metadata.Viewport); err != nil {
		return err
	}

	html, err := session.HTML(deps.Ctx)
	if err != nil {
		return err
	}

	result, err := deps.Extractor.Extract(html)
	if err != nil {
		return err
	}

	markdown, err := deps.Converter.Convert(result.ContentHTML)
	if err != nil {
		return err
	}

	path, err := deps.Writer.WriteContent(deps.Ctx, doc, markdown)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}

// probeAssets checks every inventoried asset URL and prints one line each.
func (c *AnalyzeCmd) probeAssets(deps *Dependencies, doc *pagespec.AnalysisDocument) error {
	urls := doc.Assets.URLs()
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No assets to probe")
		return nil
	}

	results, err := deps.Prober.Probe(deps.Ctx, urls)
	if err != nil {
		return err
	}

	var ok int
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(deps.Stdout, "  ERR %s (%s)\n", r.URL, r.Error)
			continue
		}
		if r.StatusCode >= 200 && r.StatusCode < 400 {
			ok++
		}
		fmt.Fprintf(deps.Stdout, "  %d %s\n", r.StatusCode, r.URL)
	}
	fmt.Fprintf(deps.Stdout, "Probed %d assets, %d reachable\n", len(results), ok)
	return nil
}

// parseViewport parses "WxH" or "name=WxH" into a Viewport. Without an
// explicit name, the dimension string doubles as the responsive map key.
func parseViewport(spec string) (pagespec.Viewport, error) {
	name := spec
	dims := spec
	if idx := strings.IndexByte(spec, '='); idx >= 0 {
		name = spec[:idx]
		dims = spec[idx+1:]
	}

	parts := strings.SplitN(dims, "x", 2)
	if len(parts) != 2 {
		return pagespec.Viewport{}, pagespec.Errorf(pagespec.EINVALID, "invalid viewport %q: expected WxH", spec)
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return pagespec.Viewport{}, pagespec.Errorf(pagespec.EINVALID, "invalid viewport width %q", parts[0])
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return pagespec.Viewport{}, pagespec.Errorf(pagespec.EINVALID, "invalid viewport height %q", parts[1])
	}

	vp := pagespec.Viewport{Name: name, Width: width, Height: height}
	if err := vp.Validate(); err != nil {
		return pagespec.Viewport{}, err
	}
	return vp, nil
}
