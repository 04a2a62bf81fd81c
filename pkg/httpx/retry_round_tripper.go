package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"numclass/pkg/logx"
)

const (
	defaultMaxAttempts     = 3
	defaultInitialDelay    = 100 * time.Millisecond
	defaultMaxDelay        = 2 * time.Second
	defaultBackoffMultiple = 2.0
)

// RetryRoundTripper re-issues idempotent requests that failed on the transport
// level or got a 5xx/429 answer. Each attempt gets its own timeout.
type RetryRoundTripper struct {
	next            http.RoundTripper
	maxAttempts     int
	attemptTimeout  time.Duration
	initialDelay    time.Duration
	maxDelay        time.Duration
	backoffMultiple float64
}

func NewRetryRoundTripper(
	next http.RoundTripper,
	opts ...RetryOption,
) RetryRoundTripper {
	rt := RetryRoundTripper{
		next:            next,
		maxAttempts:     defaultMaxAttempts,
		attemptTimeout:  0,
		initialDelay:    defaultInitialDelay,
		maxDelay:        defaultMaxDelay,
		backoffMultiple: defaultBackoffMultiple,
	}

	for _, opt := range opts {
		opt(&rt)
	}

	if rt.maxAttempts < 1 {
		rt.maxAttempts = 1
	}

	return rt
}

func (rt RetryRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	delay := rt.initialDelay

	var lastErr error

	for attempt := 1; ; attempt++ {
		resp, err := rt.attempt(req)

		last := attempt >= rt.maxAttempts || !idempotent(req) || ctx.Err() != nil

		switch {
		case err == nil && !retryableStatus(resp.StatusCode):
			return resp, nil
		case err == nil && last:
			return resp, nil
		case err != nil && last:
			return nil, fmt.Errorf("attempt %d: %w", attempt, err)
		}

		if err == nil {
			// Drain so the connection goes back to the pool.
			io.Copy(io.Discard, resp.Body) //nolint:errcheck
			resp.Body.Close()

			lastErr = fmt.Errorf("status %d", resp.StatusCode)
		} else {
			lastErr = err
		}

		logger(ctx).Warn(
			"retrying http request",
			slog.Int(logx.FieldAttempt, attempt),
			logx.Stringer(logx.FieldURL, req.URL),
			logx.Error(lastErr),
		)

		if req, err = rewind(req); err != nil {
			return nil, fmt.Errorf("rewind: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("attempt %d: %w", attempt, errors.Join(ctx.Err(), lastErr))
		case <-time.After(delay):
		}

		delay = min(time.Duration(float64(delay)*rt.backoffMultiple), rt.maxDelay)
	}
}

func (rt RetryRoundTripper) attempt(req *http.Request) (*http.Response, error) {
	if rt.attemptTimeout <= 0 {
		return rt.next.RoundTrip(req) //nolint:wrapcheck
	}

	ctx, cancel := context.WithTimeout(req.Context(), rt.attemptTimeout)

	resp, err := rt.next.RoundTrip(req.WithContext(ctx))
	if err != nil {
		cancel()
		return nil, err //nolint:wrapcheck
	}

	resp.Body = cancelOnClose{ReadCloser: resp.Body, cancel: cancel}

	return resp, nil
}

// cancelOnClose keeps the attempt context alive until the body is consumed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c cancelOnClose) Close() error {
	defer c.cancel()

	return c.ReadCloser.Close() //nolint:wrapcheck
}

func idempotent(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func rewind(req *http.Request) (*http.Request, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return req, nil
	}

	if req.GetBody == nil {
		return nil, errors.New("request body cannot be replayed")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("req.GetBody: %w", err)
	}

	clone := req.Clone(req.Context())
	clone.Body = body

	return clone, nil
}
