package readability

import (
	"strings"

	"github.com/fwojciec/pagespec"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagespec.Extractor at compile time.
var _ pagespec.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*pagespec.ExtractResult, error) {
	if rawHTML == "" {
		return nil, pagespec.Errorf(pagespec.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pagespec.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
