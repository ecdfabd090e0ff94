package pagespec

import "strings"

// PatternVariation captures one matched element for a component pattern:
// the raw material a downstream tool uses to decide whether matches are
// true structural repeats or coincidental selector collisions.
type PatternVariation struct {
	Classes         []string `json:"classes"`
	Width           float64  `json:"width"`
	Height          float64  `json:"height"`
	Text            string   `json:"text"` // trimmed, capped at 50 chars
	BackgroundColor string   `json:"backgroundColor"`
	Color           string   `json:"color"`
}

// ComponentPattern is a named group of two or more elements matched by one
// catalog selector. Single-match selectors carry no comparative signal and
// are never emitted.
type ComponentPattern struct {
	Name       string             `json:"name"`
	Selector   string             `json:"selector"`
	Count      int                `json:"count"`
	Variations []PatternVariation `json:"variations"`
}

// CatalogEntry pairs a pattern name with the CSS selector used to find it.
type CatalogEntry struct {
	Name     string
	Selector string
}

// DefaultCatalog returns the fixed selector catalog targeting common UI
// archetypes. Entries whose selector fails to evaluate against a given
// document are skipped individually; the catalog deliberately mixes plain
// and attribute-substring selectors.
func DefaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		{Name: "buttons", Selector: `button, .btn, [class*="button"]`},
		{Name: "cards", Selector: `.card, [class*="card"]`},
		{Name: "nav-items", Selector: `nav a, .nav-item, [class*="nav"] a`},
		{Name: "modals", Selector: `.modal, [role="dialog"], [class*="modal"]`},
		{Name: "forms", Selector: `form, [class*="form"]`},
		{Name: "headers", Selector: `header, .header, [class*="header"]`},
		{Name: "footers", Selector: `footer, .footer, [class*="footer"]`},
		{Name: "items", Selector: `[class*="item"]`},
		{Name: "components", Selector: `[class*="component"]`},
	}
}

// SanitizePatternName normalizes a catalog key for use in output and file
// names: lowercase, runs of non-alphanumeric characters collapsed to a
// single hyphen.
func SanitizePatternName(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
