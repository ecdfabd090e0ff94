// Package goquery implements static HTML scanning using the goquery library.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagespec"
)

// Ensure Scanner implements pagespec.StaticScanner.
var _ pagespec.StaticScanner = (*Scanner)(nil)

// Scanner inspects raw, unrendered HTML. It sees only what the server sent,
// so pages that build their DOM client-side report far less than a rendered
// analysis would.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan parses html and reports the title, declared assets, and landmark
// presence. Asset URLs are resolved against baseURL; unparseable hrefs are
// skipped rather than failing the scan.
func (s *Scanner) Scan(html string, baseURL string) (*pagespec.StaticScan, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pagespec.Errorf(pagespec.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagespec.Errorf(pagespec.EINVALID, "failed to parse HTML: %v", err)
	}

	scan := &pagespec.StaticScan{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Images:      []string{},
		Stylesheets: []string{},
		Scripts:     []string{},
		Landmarks:   make(map[string]bool, len(pagespec.LandmarkRoles)),
	}

	seen := make(map[string]bool)
	collect := func(dst *[]string, raw string) {
		resolved := resolveURL(base, raw)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		*dst = append(*dst, resolved)
	}

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			// Lazy-loading libraries stash the real URL in data-src.
			src, _ = sel.Attr("data-src")
		}
		if src != "" {
			collect(&scan.Images, src)
		}
	})

	doc.Find("link[rel='stylesheet']").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			collect(&scan.Stylesheets, href)
		}
	})

	doc.Find("script[src]").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok && src != "" {
			collect(&scan.Scripts, src)
		}
	})

	for _, role := range pagespec.LandmarkRoles {
		scan.Landmarks[role] = doc.Find(role).Length() > 0 ||
			doc.Find("[role='"+ariaRole(role)+"']").Length() > 0
	}

	return scan, nil
}

// ariaRole maps a landmark tag name to its equivalent ARIA role.
func ariaRole(tag string) string {
	switch tag {
	case "header":
		return "banner"
	case "nav":
		return "navigation"
	case "aside":
		return "complementary"
	case "footer":
		return "contentinfo"
	default:
		return tag
	}
}

// resolveURL resolves a possibly relative asset reference against the base
// URL. Returns empty string for unparseable or non-HTTP references.
func resolveURL(base *url.URL, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "data:") || strings.HasPrefix(raw, "javascript:") {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
