package http

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/pagespec"
	"golang.org/x/sync/errgroup"
)

// DefaultProbeTimeout bounds a single HEAD request.
const DefaultProbeTimeout = 10 * time.Second

// DefaultProbeConcurrency bounds how many probes run at once.
const DefaultProbeConcurrency = 8

// DefaultProbeRPS paces probes within a single host.
const DefaultProbeRPS = 10.0

// Ensure Prober implements pagespec.AssetProber at compile time.
var _ pagespec.AssetProber = (*Prober)(nil)

// Prober checks asset URLs for reachability with HEAD requests, falling
// back to GET when a server rejects HEAD. Probes run concurrently but are
// rate limited per host so asset-heavy pages don't hammer their CDN.
type Prober struct {
	client      *http.Client
	limiter     *DomainLimiter
	concurrency int
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithProbeConcurrency sets the number of concurrent probes.
func WithProbeConcurrency(n int) ProberOption {
	return func(p *Prober) {
		p.concurrency = n
	}
}

// WithProbeRPS sets the per-host requests-per-second limit.
func WithProbeRPS(rps float64) ProberOption {
	return func(p *Prober) {
		p.limiter = NewDomainLimiter(rps)
	}
}

// NewProber creates a new Prober.
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		client:      &http.Client{Timeout: DefaultProbeTimeout},
		limiter:     NewDomainLimiter(DefaultProbeRPS),
		concurrency: DefaultProbeConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe checks each URL and returns one result per URL, in input order.
// Individual failures are recorded in the result rather than aborting the
// batch; the returned error is non-nil only when the context is canceled.
func (p *Prober) Probe(ctx context.Context, urls []string) ([]pagespec.ProbeResult, error) {
	results := make([]pagespec.ProbeResult, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, u := range urls {
		g.Go(func() error {
			results[i] = p.probeOne(ctx, u)
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Prober) probeOne(ctx context.Context, rawURL string) pagespec.ProbeResult {
	result := pagespec.ProbeResult{URL: rawURL}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if err := p.limiter.Wait(ctx, parsed.Host); err != nil {
		result.Error = err.Error()
		return result
	}

	resp, err := p.request(ctx, http.MethodHead, rawURL)
	if err == nil && resp.StatusCode == http.StatusMethodNotAllowed {
		resp.Body.Close()
		resp, err = p.request(ctx, http.MethodGet, rawURL)
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.ContentType = resp.Header.Get("Content-Type")
	result.ContentLength = resp.ContentLength
	return result
}

func (p *Prober) request(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	return p.client.Do(req)
}
