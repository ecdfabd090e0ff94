// Package slog provides logging decorators for pagespec services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagespec"
)

// Ensure LoggingAnalyzer implements pagespec.Analyzer.
var _ pagespec.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with structured logging of each run.
type LoggingAnalyzer struct {
	next   pagespec.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next pagespec.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, url string, viewports []pagespec.Viewport) (*pagespec.AnalysisDocument, error) {
	begin := time.Now()
	doc, err := a.next.Analyze(ctx, url, viewports)
	if err != nil {
		a.logger.Error("analysis failed",
			"url", url,
			"code", pagespec.ErrorCode(err),
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	a.logger.Info("analysis complete",
		"url", url,
		"viewports", len(doc.Responsive),
		"elements", doc.Metadata.ElementCount,
		"patterns", len(doc.ComponentPatterns),
		"duration", time.Since(begin),
	)
	return doc, nil
}
