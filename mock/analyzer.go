package mock

import (
	"context"

	"github.com/fwojciec/pagespec"
)

var _ pagespec.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of pagespec.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, url string, viewports []pagespec.Viewport) (*pagespec.AnalysisDocument, error)
}

func (a *Analyzer) Analyze(ctx context.Context, url string, viewports []pagespec.Viewport) (*pagespec.AnalysisDocument, error) {
	return a.AnalyzeFn(ctx, url, viewports)
}

var _ pagespec.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of pagespec.AnalysisService.
type AnalysisService struct {
	CreateAnalysisFn   func(ctx context.Context, analysis *pagespec.Analysis) error
	FindAnalysisByIDFn func(ctx context.Context, id string) (*pagespec.Analysis, error)
	FindAnalysesFn     func(ctx context.Context, filter pagespec.AnalysisFilter) ([]*pagespec.Analysis, error)
	DeleteAnalysisFn   func(ctx context.Context, id string) error
}

func (s *AnalysisService) CreateAnalysis(ctx context.Context, analysis *pagespec.Analysis) error {
	return s.CreateAnalysisFn(ctx, analysis)
}

func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*pagespec.Analysis, error) {
	return s.FindAnalysisByIDFn(ctx, id)
}

func (s *AnalysisService) FindAnalyses(ctx context.Context, filter pagespec.AnalysisFilter) ([]*pagespec.Analysis, error) {
	return s.FindAnalysesFn(ctx, filter)
}

func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	return s.DeleteAnalysisFn(ctx, id)
}
