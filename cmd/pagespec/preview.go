package main

import (
	"fmt"

	"github.com/fwojciec/pagespec"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagespec.ErrorMessage(err))
		return err
	}

	scan, err := deps.Scanner.Scan(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagespec.ErrorMessage(err))
		return err
	}

	if scan.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title: %s\n", scan.Title)
	}

	fmt.Fprint(deps.Stdout, "Landmarks:")
	var found bool
	for _, role := range pagespec.LandmarkRoles {
		if scan.Landmarks[role] {
			fmt.Fprintf(deps.Stdout, " %s", role)
			found = true
		}
	}
	if !found {
		fmt.Fprint(deps.Stdout, " (none)")
	}
	fmt.Fprintln(deps.Stdout)

	printAssets(deps, "Images", scan.Images)
	printAssets(deps, "Stylesheets", scan.Stylesheets)
	printAssets(deps, "Scripts", scan.Scripts)

	return nil
}

func printAssets(deps *Dependencies, label string, urls []string) {
	fmt.Fprintf(deps.Stdout, "%s (%d):\n", label, len(urls))
	for _, u := range urls {
		fmt.Fprintf(deps.Stdout, "  %s\n", u)
	}
}
