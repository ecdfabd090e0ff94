package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pagespec"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pagespec.AnalysisFilter{Limit: c.Limit}
	if c.Host != "" {
		filter.Host = &c.Host
	}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	analyses, err := deps.Analyses.FindAnalyses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagespec.ErrorMessage(err))
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses found. Use 'pagespec analyze --db' to store one.")
		return nil
	}

	for _, a := range analyses {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d elements\n",
			a.ID, a.CreatedAt.Format(time.RFC3339), a.URL, a.ElementCount)
	}

	return nil
}
