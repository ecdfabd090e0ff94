package analyze

import (
	"context"

	"github.com/fwojciec/pagespec"
)

// elementsJS snapshots every element in document order. The element list
// and the index map are taken from the same querySelectorAll('*') snapshot,
// so parent lookups are computed once and stay consistent for the pass.
// cssStyles captures every property the style engine exposes, not a curated
// subset: downstream diffing tools need arbitrary properties later.
const elementsJS = `() => {
	const els = Array.from(document.querySelectorAll('*'));
	const indexOf = new Map();
	els.forEach((el, i) => indexOf.set(el, i));

	const buildSelector = (el) => {
		if (el.id) return '#' + el.id;
		if (el === document.body) return 'body';
		const parts = [];
		let node = el;
		while (node && node.nodeType === 1) {
			if (node.id) {
				parts.unshift('#' + node.id);
				break;
			}
			if (node === document.body) {
				parts.unshift('body');
				break;
			}
			let part = node.tagName.toLowerCase();
			if (node.classList.length > 0) {
				part += '.' + Array.from(node.classList).join('.');
			}
			parts.unshift(part);
			node = node.parentElement;
		}
		return parts.join(' > ');
	};

	const records = els.map((el, i) => {
		const rect = el.getBoundingClientRect();
		const cs = getComputedStyle(el);
		const styles = {};
		for (let j = 0; j < cs.length; j++) {
			const prop = cs[j];
			styles[prop] = cs.getPropertyValue(prop);
		}
		const attrs = {};
		for (const attr of el.attributes) {
			attrs[attr.name] = attr.value;
		}
		let text = (el.textContent || '').trim();
		if (text.length > 200) text = text.substring(0, 200);
		const parent = el.parentElement;
		return {
			index: i,
			tagName: el.tagName.toLowerCase(),
			id: el.id || null,
			classes: Array.from(el.classList),
			textContent: text || null,
			geometry: {
				x: rect.x, y: rect.y,
				width: rect.width, height: rect.height,
				top: rect.top, right: rect.right,
				bottom: rect.bottom, left: rect.left
			},
			cssStyles: styles,
			selector: buildSelector(el),
			parentIndex: parent !== null && indexOf.has(parent) ? indexOf.get(parent) : null,
			childCount: el.children.length,
			attributes: attrs
		};
	});
	return JSON.stringify(records);
}`

// CollectElements produces one record per element in document traversal
// order, with no sampling or truncation. This is the single largest cost
// center in the pipeline.
func CollectElements(ctx context.Context, session pagespec.Session) ([]pagespec.ElementRecord, error) {
	var records []pagespec.ElementRecord
	if err := session.Eval(ctx, elementsJS, &records); err != nil {
		return nil, err
	}
	return records, nil
}
