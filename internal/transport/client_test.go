package transport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPolicy() Policy {
	return Policy{
		Timeout:       time.Second,
		MaxRetries:    3,
		BaseDelay:     time.Millisecond,
		Multiplier:    2,
		MaxConcurrent: 2,
	}
}

// failingServer answers with status for the first n requests and 200 afterwards.
func failingServer(t *testing.T, n int32, status int, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= n {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGet_RetriesTransientStatusUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := failingServer(t, 3, http.StatusServiceUnavailable, &calls)
	c := New(nil, Config{Policy: testPolicy(), UserAgent: "test"}, testLogger())

	resp, err := c.Get(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, resp.OK())
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	assert.Equal(t, int32(4), calls.Load())
}

func TestGet_StopsAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := failingServer(t, 100, http.StatusServiceUnavailable, &calls)
	c := New(nil, Config{Policy: testPolicy()}, testLogger())

	resp, err := c.Get(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, int32(4), calls.Load(), "initial attempt plus three retries")
}

func TestGet_ZeroRetries(t *testing.T) {
	var calls atomic.Int32
	srv := failingServer(t, 100, http.StatusBadGateway, &calls)
	p := testPolicy()
	p.MaxRetries = 0
	c := New(nil, Config{Policy: p}, testLogger())

	_, err := c.Get(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGet_ClientErrorsAreNotRetried(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusTooManyRequests} {
		var calls atomic.Int32
		srv := failingServer(t, 100, status, &calls)
		c := New(nil, Config{Policy: testPolicy()}, testLogger())

		resp, err := c.Get(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode)
		assert.False(t, resp.OK())
		assert.Equal(t, int32(1), calls.Load(), "status %d", status)
	}
}

func TestGet_RequestTimeoutStatusIsRetried(t *testing.T) {
	var calls atomic.Int32
	srv := failingServer(t, 1, http.StatusRequestTimeout, &calls)
	c := New(nil, Config{Policy: testPolicy()}, testLogger())

	resp, err := c.Get(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGet_AttemptTimeoutIsRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := testPolicy()
	p.Timeout = 50 * time.Millisecond
	c := New(nil, Config{Policy: p}, testLogger())

	resp, err := c.Get(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGet_NetworkErrorExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(nil, Config{Policy: testPolicy()}, testLogger())

	_, err := c.Get(context.Background(), url)

	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, context.Canceled)
}

func TestGet_CancelDuringBackoff(t *testing.T) {
	var calls atomic.Int32
	srv := failingServer(t, 100, http.StatusInternalServerError, &calls)

	p := testPolicy()
	p.BaseDelay = time.Hour
	c := New(nil, Config{Policy: p}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for calls.Load() == 0 {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()

	start := time.Now()
	_, err := c.Get(ctx, srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrTransport))
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGet_CancelInFlight(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := New(nil, Config{Policy: testPolicy()}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := c.Get(ctx, srv.URL)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTransport)
}

func TestGet_SendsHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
	}))
	defer srv.Close()

	c := New(nil, Config{Policy: testPolicy(), UserAgent: "boe-gateway/test"}, testLogger())

	_, err := c.Get(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "boe-gateway/test", gotUA)
	assert.Equal(t, "application/json", gotAccept)
}

func TestGet_ConcurrencyIsCapped(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
	}))
	defer srv.Close()

	c := New(nil, Config{Policy: testPolicy()}, testLogger())

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = c.Get(context.Background(), srv.URL)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestBackOff_Schedule(t *testing.T) {
	p := Policy{BaseDelay: 10 * time.Millisecond, Multiplier: 2, MaxRetries: 3}
	c := New(nil, Config{Policy: p}, testLogger())

	b := c.backOff(context.Background())
	b.Reset()

	assert.Equal(t, 10*time.Millisecond, b.NextBackOff())
	assert.Equal(t, 20*time.Millisecond, b.NextBackOff())
	assert.Equal(t, 40*time.Millisecond, b.NextBackOff())
	assert.Equal(t, backoff.Stop, b.NextBackOff())
}

func TestPolicy_Defaults(t *testing.T) {
	p := Policy{MaxRetries: -1}.withDefaults()

	assert.Equal(t, DefaultTimeout, p.Timeout)
	assert.Equal(t, 0, p.MaxRetries)
	assert.Equal(t, DefaultBaseDelay, p.BaseDelay)
	assert.Equal(t, DefaultMultiplier, p.Multiplier)
	assert.Equal(t, DefaultMaxConcurrent, p.MaxConcurrent)
}

func TestPolicy_Delay(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, time.Second, p.Delay(1))
	assert.Equal(t, 2*time.Second, p.Delay(2))
	assert.Equal(t, 4*time.Second, p.Delay(3))
}

func TestGet_BadURLIsNotTransportFailure(t *testing.T) {
	c := New(nil, Config{Policy: testPolicy()}, testLogger())

	_, err := c.Get(context.Background(), "http://example.com/%zz")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequestURL)
	assert.NotErrorIs(t, err, ErrTransport)
}
