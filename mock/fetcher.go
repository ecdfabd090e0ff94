package mock

import (
	"context"

	"github.com/fwojciec/pagespec"
)

var _ pagespec.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagespec.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ pagespec.AssetProber = (*AssetProber)(nil)

// AssetProber is a mock implementation of pagespec.AssetProber.
type AssetProber struct {
	ProbeFn func(ctx context.Context, urls []string) ([]pagespec.ProbeResult, error)
}

func (p *AssetProber) Probe(ctx context.Context, urls []string) ([]pagespec.ProbeResult, error) {
	return p.ProbeFn(ctx, urls)
}

var _ pagespec.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagespec.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagespec.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagespec.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ pagespec.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagespec.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ pagespec.StaticScanner = (*StaticScanner)(nil)

// StaticScanner is a mock implementation of pagespec.StaticScanner.
type StaticScanner struct {
	ScanFn func(html string, baseURL string) (*pagespec.StaticScan, error)
}

func (s *StaticScanner) Scan(html string, baseURL string) (*pagespec.StaticScan, error) {
	return s.ScanFn(html, baseURL)
}
