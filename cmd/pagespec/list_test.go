package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagespec"
	main "github.com/fwojciec/pagespec/cmd/pagespec"
	"github.com/fwojciec/pagespec/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists stored analyses", func(t *testing.T) {
		t.Parallel()

		analyses := &mock.AnalysisService{
			FindAnalysesFn: func(_ context.Context, filter pagespec.AnalysisFilter) ([]*pagespec.Analysis, error) {
				return []*pagespec.Analysis{
					{
						ID:           "an-1",
						URL:          "https://example.com",
						ElementCount: 120,
						CreatedAt:    time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Analyses: analyses,
		}

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "an-1")
		assert.Contains(t, out, "https://example.com")
		assert.Contains(t, out, "120 elements")
	})

	t.Run("applies host and limit filters", func(t *testing.T) {
		t.Parallel()

		var gotFilter pagespec.AnalysisFilter
		analyses := &mock.AnalysisService{
			FindAnalysesFn: func(_ context.Context, filter pagespec.AnalysisFilter) ([]*pagespec.Analysis, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Analyses: analyses,
		}

		cmd := &main.ListCmd{Host: "example.com", Limit: 5}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, gotFilter.Host)
		assert.Equal(t, "example.com", *gotFilter.Host)
		assert.Equal(t, 5, gotFilter.Limit)
	})

	t.Run("prints hint when empty", func(t *testing.T) {
		t.Parallel()

		analyses := &mock.AnalysisService{
			FindAnalysesFn: func(_ context.Context, _ pagespec.AnalysisFilter) ([]*pagespec.Analysis, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Analyses: analyses,
		}

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No analyses found")
	})
}
