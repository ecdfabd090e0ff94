package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	pagespechttp "github.com/fwojciec/pagespec/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProber_Probe(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/img.png":
			w.Header().Set("Content-Type", "image/png")
			w.Header().Set("Content-Length", "1234")
			w.WriteHeader(http.StatusOK)
		case "/missing.css":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(srv.Close)

	prober := pagespechttp.NewProber(pagespechttp.WithProbeRPS(1000))

	results, err := prober.Probe(context.Background(), []string{
		srv.URL + "/img.png",
		srv.URL + "/missing.css",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, srv.URL+"/img.png", results[0].URL)
	assert.Equal(t, http.StatusOK, results[0].StatusCode)
	assert.Equal(t, "image/png", results[0].ContentType)
	assert.Equal(t, int64(1234), results[0].ContentLength)
	assert.Empty(t, results[0].Error)

	assert.Equal(t, http.StatusNotFound, results[1].StatusCode)
	assert.Empty(t, results[1].Error)
}

func TestProber_Probe_HeadFallsBackToGet(t *testing.T) {
	t.Parallel()

	var sawGet atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		sawGet.Store(true)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	prober := pagespechttp.NewProber(pagespechttp.WithProbeRPS(1000))

	results, err := prober.Probe(context.Background(), []string{srv.URL})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, sawGet.Load())
	assert.Equal(t, http.StatusOK, results[0].StatusCode)
}

func TestProber_Probe_UnreachableHostRecordedNotFatal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	prober := pagespechttp.NewProber(pagespechttp.WithProbeRPS(1000))

	results, err := prober.Probe(context.Background(), []string{
		"http://unreachable.invalid/app.js",
		srv.URL,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.NotEmpty(t, results[0].Error)
	assert.Zero(t, results[0].StatusCode)
	assert.Equal(t, http.StatusOK, results[1].StatusCode)
}

func TestProber_Probe_EmptyInput(t *testing.T) {
	t.Parallel()

	prober := pagespechttp.NewProber()

	results, err := prober.Probe(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProber_Probe_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prober := pagespechttp.NewProber()

	_, err := prober.Probe(ctx, []string{srv.URL})
	require.Error(t, err)
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	limiter := pagespechttp.NewDomainLimiter(1000)

	require.NoError(t, limiter.Wait(context.Background(), "example.com"))
	require.NoError(t, limiter.Wait(context.Background(), "other.com"))
}

func TestDomainLimiter_Wait_ContextCanceled(t *testing.T) {
	t.Parallel()

	limiter := pagespechttp.NewDomainLimiter(0.001)

	// Consume the single burst token, then cancel during the long wait.
	require.NoError(t, limiter.Wait(context.Background(), "example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx, "example.com")
	require.Error(t, err)
}
