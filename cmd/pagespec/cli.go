package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagespec"
	"github.com/fwojciec/pagespec/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Analyses pagespec.AnalysisService
	Analyzer pagespec.Analyzer
	Browser  pagespec.Browser
	Writer   pagespec.DocumentWriter
	Fetcher  pagespec.Fetcher
	Scanner  pagespec.StaticScanner
	Prober   pagespec.AssetProber

	Extractor pagespec.Extractor
	Converter pagespec.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a rendered page and write the result document"`
	Preview PreviewCmd `cmd:"" help:"Scan static HTML without launching a browser"`
	List    ListCmd    `cmd:"" help:"List stored analyses"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored analysis"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL          string        `arg:"" help:"Page URL to analyze"`
	Path         string        `short:"o" default:"." help:"Output directory for the document"`
	Timeout      time.Duration `default:"60s" help:"Navigation timeout per viewport pass"`
	Stealth      bool          `help:"Evade headless-browser detection"`
	Content      bool          `help:"Capture main page content as markdown alongside the document"`
	Extractor    string        `default:"trafilatura" enum:"trafilatura,readability" help:"Content extraction engine for --content"`
	Probe        bool          `help:"Probe inventoried asset URLs for reachability"`
	DB           bool          `help:"Persist the analysis to the database"`
	Viewport     []string      `short:"v" help:"Viewport as WxH or name=WxH (repeatable)"`
	NoResponsive bool          `help:"Single pass at the primary viewport only"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URL string `arg:"" help:"Page URL to scan"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Host  string `help:"Filter by host"`
	URL   string `help:"Filter by exact URL"`
	Limit int    `help:"Maximum number of rows"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Analysis ID"`
	Force bool   `help:"Confirm deletion"`
}
