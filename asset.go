package pagespec

import "context"

// ImageAsset describes one <img> element. Src falls back to lazy-loading
// data attributes (data-src and friends) when the src attribute is empty.
type ImageAsset struct {
	Src           string `json:"src"`
	Alt           string `json:"alt"`
	Width         int    `json:"width"` // rendered
	Height        int    `json:"height"`
	NaturalWidth  int    `json:"naturalWidth"`
	NaturalHeight int    `json:"naturalHeight"`
	Loading       string `json:"loading"`
}

// StylesheetAsset describes one <link rel="stylesheet"> element.
type StylesheetAsset struct {
	Href     string `json:"href"`
	Media    string `json:"media"`
	Disabled bool   `json:"disabled"`
}

// ScriptAsset describes one <script src> element.
type ScriptAsset struct {
	Src   string `json:"src"`
	Async bool   `json:"async"`
	Defer bool   `json:"defer"`
	Type  string `json:"type"`
}

// BackgroundImageAsset describes a url(...) extracted from a computed
// background-image. Selector is a best-effort locator (id, else first class
// token, else tag name), not guaranteed unique.
type BackgroundImageAsset struct {
	URL      string `json:"url"`
	Element  string `json:"element"` // owning element's tag name
	Selector string `json:"selector"`
}

// FontAsset is reserved for font-face enumeration, which the base engine
// does not implement. The fonts slice is always empty.
type FontAsset struct {
	Family string `json:"family"`
	Src    string `json:"src"`
}

// AssetInventory enumerates page assets from one render pass.
type AssetInventory struct {
	Images           []ImageAsset           `json:"images"`
	Stylesheets      []StylesheetAsset      `json:"stylesheets"`
	Scripts          []ScriptAsset          `json:"scripts"`
	BackgroundImages []BackgroundImageAsset `json:"backgroundImages"`
	Fonts            []FontAsset            `json:"fonts"`
}

// URLs returns the deduplicated set of probeable asset URLs in the
// inventory, in first-seen order.
func (a *AssetInventory) URLs() []string {
	seen := make(map[string]struct{})
	var urls []string
	add := func(u string) {
		if u == "" {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	for _, img := range a.Images {
		add(img.Src)
	}
	for _, ss := range a.Stylesheets {
		add(ss.Href)
	}
	for _, s := range a.Scripts {
		add(s.Src)
	}
	for _, bg := range a.BackgroundImages {
		add(bg.URL)
	}
	return urls
}

// ProbeResult reports the reachability of one asset URL.
type ProbeResult struct {
	URL           string `json:"url"`
	StatusCode    int    `json:"statusCode"`
	ContentType   string `json:"contentType"`
	ContentLength int64  `json:"contentLength"`
	Error         string `json:"error,omitempty"`
}

// AssetProber checks asset URLs for reachability.
type AssetProber interface {
	// Probe checks each URL and returns one result per URL, in input order.
	// Individual failures are reported in the result, not as an error.
	Probe(ctx context.Context, urls []string) ([]ProbeResult, error)
}
