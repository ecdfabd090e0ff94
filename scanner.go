package pagespec

// StaticScan is the reduced result preview mode produces from raw HTML:
// asset enumeration and landmark existence only. Geometry, computed styles,
// and natural image sizes require a rendered page and are absent here.
type StaticScan struct {
	Title       string          `json:"title"`
	Images      []string        `json:"images"`
	Stylesheets []string        `json:"stylesheets"`
	Scripts     []string        `json:"scripts"`
	Landmarks   map[string]bool `json:"landmarks"` // keyed by landmark role
}

// StaticScanner scans raw HTML without a browser. Asset references are
// resolved against baseURL.
type StaticScanner interface {
	Scan(html string, baseURL string) (*StaticScan, error)
}
