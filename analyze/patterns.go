package analyze

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pagespec"
)

// patternsJS runs each catalog selector against the document. Selector
// evaluation is wrapped per entry: the catalog mixes syntactically
// adventurous attribute-substring selectors, and an entry the engine
// rejects must skip silently rather than abort the batch.
const patternsJS = `() => {
	const catalog = %s;
	const patterns = [];
	for (const entry of catalog) {
		let matches;
		try {
			matches = document.querySelectorAll(entry.selector);
		} catch (e) {
			continue;
		}
		if (matches.length < 2) continue;
		const variations = Array.from(matches).map(el => {
			const rect = el.getBoundingClientRect();
			const cs = getComputedStyle(el);
			let text = (el.textContent || '').trim();
			if (text.length > 50) text = text.substring(0, 50);
			return {
				classes: Array.from(el.classList),
				width: rect.width,
				height: rect.height,
				text: text,
				backgroundColor: cs.backgroundColor,
				color: cs.color
			};
		});
		patterns.push({
			name: entry.name,
			selector: entry.selector,
			count: matches.length,
			variations: variations
		});
	}
	return JSON.stringify(patterns);
}`

type catalogEntryJSON struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
}

// CollectPatterns groups elements into recurring UI-component buckets using
// the selector catalog. Only selectors matching two or more elements emit a
// pattern; a single match carries no comparative signal.
func CollectPatterns(ctx context.Context, session pagespec.Session, catalog []pagespec.CatalogEntry) ([]pagespec.ComponentPattern, error) {
	entries := make([]catalogEntryJSON, 0, len(catalog))
	for _, e := range catalog {
		entries = append(entries, catalogEntryJSON{
			Name:     pagespec.SanitizePatternName(e.Name),
			Selector: e.Selector,
		})
	}
	encoded, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	var patterns []pagespec.ComponentPattern
	if err := session.Eval(ctx, fmt.Sprintf(patternsJS, encoded), &patterns); err != nil {
		return nil, err
	}
	if patterns == nil {
		patterns = []pagespec.ComponentPattern{}
	}
	return patterns, nil
}
