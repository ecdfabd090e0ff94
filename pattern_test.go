package pagespec_test

import (
	"testing"

	"github.com/fwojciec/pagespec"
	"github.com/stretchr/testify/assert"
)

func TestSanitizePatternName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "buttons", "buttons"},
		{"uppercase", "NavItems", "navitems"},
		{"spaces and symbols", "nav items (primary)", "nav-items-primary"},
		{"selector characters", `[class*="card"]`, "class-card"},
		{"collapses runs", "a--//--b", "a-b"},
		{"trailing junk", "forms!!", "forms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagespec.SanitizePatternName(tt.in))
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog := pagespec.DefaultCatalog()

	assert.NotEmpty(t, catalog)
	names := make(map[string]bool)
	for _, entry := range catalog {
		assert.NotEmpty(t, entry.Name)
		assert.NotEmpty(t, entry.Selector)
		assert.False(t, names[entry.Name], "duplicate catalog name %q", entry.Name)
		names[entry.Name] = true
	}
	assert.True(t, names["buttons"])
	assert.True(t, names["cards"])
}

func TestAssetInventory_URLs(t *testing.T) {
	t.Parallel()

	inv := &pagespec.AssetInventory{
		Images: []pagespec.ImageAsset{
			{Src: "https://example.com/a.png"},
			{Src: "https://example.com/a.png"}, // duplicate
			{Src: ""},                          // empty skipped
		},
		Stylesheets: []pagespec.StylesheetAsset{
			{Href: "https://example.com/style.css"},
		},
		Scripts: []pagespec.ScriptAsset{
			{Src: "https://example.com/app.js"},
		},
		BackgroundImages: []pagespec.BackgroundImageAsset{
			{URL: "https://example.com/a.png"}, // duplicate of image src
			{URL: "https://example.com/bg.jpg"},
		},
	}

	urls := inv.URLs()

	assert.Equal(t, []string{
		"https://example.com/a.png",
		"https://example.com/style.css",
		"https://example.com/app.js",
		"https://example.com/bg.jpg",
	}, urls)
}
