package pagespec

import (
	"context"
	"time"
)

// AnalysisDocument is the root artifact produced by one analysis invocation.
// It is assembled once per invocation and never mutated afterward; the caller
// owns it exclusively once returned.
type AnalysisDocument struct {
	Metadata          Metadata                      `json:"metadata"`
	DesignTokens      DesignTokens                  `json:"designTokens"`
	Elements          []ElementRecord               `json:"elements"`
	Layout            LayoutInfo                    `json:"layout"`
	Assets            AssetInventory                `json:"assets"`
	ComponentPatterns []ComponentPattern            `json:"componentPatterns"`
	Responsive        map[string]*ResponsiveResult  `json:"responsive"`
}

// Metadata describes one render pass. Computed once per pass.
type Metadata struct {
	URL          string      `json:"url"`
	Timestamp    string      `json:"timestamp"` // RFC 3339
	Viewport     Viewport    `json:"viewport"`
	LoadTimeMs   int64       `json:"loadTimeMs"`
	ElementCount int         `json:"elementCount"`
	MaxDepth     int         `json:"maxDepth"`
	UserAgent    string      `json:"userAgent"`
	Title        string      `json:"title"`
	Description  *string     `json:"description"`
	Performance  Performance `json:"performance"`
}

// Performance holds navigation timing metrics reported by the page, in
// milliseconds relative to navigation start.
type Performance struct {
	DOMContentLoaded     float64 `json:"domContentLoaded"`
	LoadComplete         float64 `json:"loadComplete"`
	FirstPaint           float64 `json:"firstPaint"`
	FirstContentfulPaint float64 `json:"firstContentfulPaint"`
	ResourceCount        int     `json:"resourceCount"`
}

// ResponsiveResult is the reduced per-viewport payload stored in the
// responsive map. Extra viewports carry element count, layout, and design
// tokens only; full per-element data is captured once, for the primary pass.
type ResponsiveResult struct {
	Viewport     Viewport     `json:"viewport"`
	ElementCount int          `json:"elementCount"`
	Layout       LayoutInfo   `json:"layout"`
	DesignTokens DesignTokens `json:"designTokens"`
}

// Analyzer runs the full extraction pipeline for a URL.
type Analyzer interface {
	// Analyze renders url once per viewport and produces the merged document.
	// The last viewport is the primary pass. Navigation failures abort the
	// whole invocation; no partial document is returned.
	Analyze(ctx context.Context, url string, viewports []Viewport) (*AnalysisDocument, error)
}

// Analysis is a persisted analysis record.
type Analysis struct {
	ID           string            `json:"id"`
	URL          string            `json:"url"`
	Host         string            `json:"host"`
	Title        string            `json:"title"`
	ElementCount int               `json:"elementCount"`
	ContentHash  string            `json:"contentHash"`
	Document     *AnalysisDocument `json:"document"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "analysis URL required")
	}
	if a.Document == nil {
		return Errorf(EINVALID, "analysis document required")
	}
	return nil
}

// AnalysisService represents a service for managing stored analyses.
type AnalysisService interface {
	// CreateAnalysis persists a new analysis.
	CreateAnalysis(ctx context.Context, analysis *Analysis) error

	// FindAnalysisByID retrieves an analysis by ID.
	// Returns ENOTFOUND if the analysis does not exist.
	FindAnalysisByID(ctx context.Context, id string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter, newest first.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)

	// DeleteAnalysis permanently removes an analysis.
	// Returns ENOTFOUND if the analysis does not exist.
	DeleteAnalysis(ctx context.Context, id string) error
}

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	ID   *string `json:"id"`
	URL  *string `json:"url"`
	Host *string `json:"host"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
