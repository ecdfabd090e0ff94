package analyze

import (
	"context"

	"github.com/fwojciec/pagespec"
)

// layoutJS resolves the five landmark regions by tag name first, ARIA role
// as fallback, and reports coarse layout signals. The grid/flex counters
// are substring matches over style attributes and class names, not resolved
// display values.
const layoutJS = `() => {
	const landmarks = {
		header: 'banner',
		nav: 'navigation',
		main: 'main',
		aside: 'complementary',
		footer: 'contentinfo'
	};
	const sections = {};
	for (const [tag, role] of Object.entries(landmarks)) {
		const el = document.querySelector(tag) || document.querySelector('[role="' + role + '"]');
		if (!el) {
			sections[tag] = { exists: false };
			continue;
		}
		const rect = el.getBoundingClientRect();
		const cs = getComputedStyle(el);
		sections[tag] = {
			exists: true,
			dimensions: { width: rect.width, height: rect.height },
			position: { x: rect.x, y: rect.y },
			display: cs.display,
			positionMode: cs.position
		};
	}

	let grid = 0, flex = 0;
	for (const el of document.querySelectorAll('*')) {
		const probe = (el.getAttribute('style') || '') + ' ' +
			(typeof el.className === 'string' ? el.className : '');
		if (probe.includes('grid')) grid++;
		if (probe.includes('flex')) flex++;
	}

	return JSON.stringify({
		pageHeight: Math.max(document.body.scrollHeight, document.documentElement.scrollHeight),
		pageWidth: Math.max(document.body.scrollWidth, document.documentElement.scrollWidth),
		sections: sections,
		layoutTypes: { grid: grid, flex: flex },
		scrollable: document.body.scrollHeight > window.innerHeight
	});
}`

// CollectLayout detects landmark regions and page-level layout signals.
func CollectLayout(ctx context.Context, session pagespec.Session) (*pagespec.LayoutInfo, error) {
	var layout pagespec.LayoutInfo
	if err := session.Eval(ctx, layoutJS, &layout); err != nil {
		return nil, err
	}
	return &layout, nil
}
