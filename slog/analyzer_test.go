package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/pagespec"
	"github.com/fwojciec/pagespec/mock"
	pagespecslog "github.com/fwojciec/pagespec/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	next := &mock.Analyzer{
		AnalyzeFn: func(ctx context.Context, url string, viewports []pagespec.Viewport) (*pagespec.AnalysisDocument, error) {
			return &pagespec.AnalysisDocument{
				Metadata:   pagespec.Metadata{URL: url, ElementCount: 7},
				Responsive: map[string]*pagespec.ResponsiveResult{"desktop": {}},
			}, nil
		},
	}

	analyzer := pagespecslog.NewLoggingAnalyzer(next, logger)

	doc, err := analyzer.Analyze(context.Background(), "https://example.com", nil)
	require.NoError(t, err)
	require.NotNil(t, doc)

	out := buf.String()
	assert.Contains(t, out, "analysis complete")
	assert.Contains(t, out, "url=https://example.com")
	assert.Contains(t, out, "elements=7")
}

func TestLoggingAnalyzer_Analyze_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	next := &mock.Analyzer{
		AnalyzeFn: func(ctx context.Context, url string, viewports []pagespec.Viewport) (*pagespec.AnalysisDocument, error) {
			return nil, pagespec.Errorf(pagespec.ENAVIGATION, "connection refused")
		},
	}

	analyzer := pagespecslog.NewLoggingAnalyzer(next, logger)

	doc, err := analyzer.Analyze(context.Background(), "https://example.com", nil)
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Equal(t, pagespec.ENAVIGATION, pagespec.ErrorCode(err))

	out := buf.String()
	assert.Contains(t, out, "analysis failed")
	assert.Contains(t, out, "code=navigation")
}
