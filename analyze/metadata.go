package analyze

import (
	"context"

	"github.com/fwojciec/pagespec"
)

// metadataJS reports page identity and navigation timing. Paint timings are
// absent on engines that don't expose them and default to zero.
const metadataJS = `() => {
	const meta = document.querySelector('meta[name="description"]');
	const maxDepth = (() => {
		let max = 0;
		const walk = (node, depth) => {
			if (depth > max) max = depth;
			for (const child of node.children) walk(child, depth + 1);
		};
		walk(document.documentElement, 1);
		return max;
	})();
	const timing = performance.timing;
	const start = timing.navigationStart;
	const paints = performance.getEntriesByType('paint');
	const paint = (name) => {
		const entry = paints.find(p => p.name === name);
		return entry ? entry.startTime : 0;
	};
	return JSON.stringify({
		title: document.title,
		description: meta && meta.content ? meta.content : null,
		userAgent: navigator.userAgent,
		elementCount: document.querySelectorAll('*').length,
		maxDepth: maxDepth,
		performance: {
			domContentLoaded: timing.domContentLoadedEventEnd > 0 ? timing.domContentLoadedEventEnd - start : 0,
			loadComplete: timing.loadEventEnd > 0 ? timing.loadEventEnd - start : 0,
			firstPaint: paint('first-paint'),
			firstContentfulPaint: paint('first-contentful-paint'),
			resourceCount: performance.getEntriesByType('resource').length
		}
	});
}`

// PageMetadata is the raw per-pass page data the metadata script reports.
// The analyzer merges it with the request URL, timestamp, viewport, and
// measured load time to form the document metadata.
type PageMetadata struct {
	Title        string               `json:"title"`
	Description  *string              `json:"description"`
	UserAgent    string               `json:"userAgent"`
	ElementCount int                  `json:"elementCount"`
	MaxDepth     int                  `json:"maxDepth"`
	Performance  pagespec.Performance `json:"performance"`
}

// CollectMetadata reads page identity and performance metrics.
func CollectMetadata(ctx context.Context, session pagespec.Session) (*PageMetadata, error) {
	var meta PageMetadata
	if err := session.Eval(ctx, metadataJS, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
