package analyze

import (
	"context"

	"github.com/fwojciec/pagespec"
)

// assetsJS enumerates images, stylesheets, and external scripts verbatim,
// and derives background-image URLs from computed styles. Image sources
// fall back to common lazy-loading data attributes when src is empty.
const assetsJS = `() => {
	const lazyAttrs = ['data-src', 'data-lazy-src', 'data-original', 'data-lazy'];
	const imgSrc = (img) => {
		if (img.getAttribute('src')) return img.src;
		for (const attr of lazyAttrs) {
			const v = img.getAttribute(attr);
			if (v) return new URL(v, document.baseURI).href;
		}
		return img.src || '';
	};

	const images = Array.from(document.querySelectorAll('img')).map(img => ({
		src: imgSrc(img),
		alt: img.alt || '',
		width: img.width,
		height: img.height,
		naturalWidth: img.naturalWidth,
		naturalHeight: img.naturalHeight,
		loading: img.getAttribute('loading') || ''
	}));

	const stylesheets = Array.from(document.querySelectorAll('link[rel="stylesheet"]')).map(link => ({
		href: link.href,
		media: link.media || '',
		disabled: link.disabled
	}));

	const scripts = Array.from(document.querySelectorAll('script[src]')).map(s => ({
		src: s.src,
		async: s.async,
		defer: s.defer,
		type: s.type || ''
	}));

	const backgroundImages = [];
	for (const el of document.querySelectorAll('*')) {
		const bg = getComputedStyle(el).backgroundImage;
		if (!bg || bg === 'none' || !bg.includes('url(')) continue;
		const m = bg.match(/url\(["']?([^"')]+)["']?\)/);
		if (!m) continue;
		let selector = el.tagName.toLowerCase();
		if (el.id) {
			selector = '#' + el.id;
		} else if (el.classList.length > 0) {
			selector = '.' + el.classList[0];
		}
		backgroundImages.push({
			url: m[1],
			element: el.tagName.toLowerCase(),
			selector: selector
		});
	}

	return JSON.stringify({
		images: images,
		stylesheets: stylesheets,
		scripts: scripts,
		backgroundImages: backgroundImages,
		fonts: []
	});
}`

// CollectAssets enumerates the page's asset inventory. The fonts slice is
// reserved and always empty: font-face enumeration is not implemented.
func CollectAssets(ctx context.Context, session pagespec.Session) (*pagespec.AssetInventory, error) {
	var inv pagespec.AssetInventory
	if err := session.Eval(ctx, assetsJS, &inv); err != nil {
		return nil, err
	}
	if inv.Images == nil {
		inv.Images = []pagespec.ImageAsset{}
	}
	if inv.Stylesheets == nil {
		inv.Stylesheets = []pagespec.StylesheetAsset{}
	}
	if inv.Scripts == nil {
		inv.Scripts = []pagespec.ScriptAsset{}
	}
	if inv.BackgroundImages == nil {
		inv.BackgroundImages = []pagespec.BackgroundImageAsset{}
	}
	if inv.Fonts == nil {
		inv.Fonts = []pagespec.FontAsset{}
	}
	return &inv, nil
}
