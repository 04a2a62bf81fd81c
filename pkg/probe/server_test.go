package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"numclass/pkg/probe"
)

func TestServer(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		listenAddress string
		endpoint      string
		statusCode    int
		appName       string
		appVersion    string
		body          []byte
		checks        []probe.ReadinessCheck
	}{
		{
			name:          "Health handler",
			listenAddress: ":10001",
			endpoint:      "http://:10001/healthz",
			statusCode:    http.StatusOK,
			appName:       "app-1",
			appVersion:    "v0.0.1",
			body:          []byte(`{"name":"app-1","version":"v0.0.1"}`),
		},
		{
			name:          "Ready handler",
			listenAddress: ":10002",
			endpoint:      "http://:10002/ready",
			statusCode:    http.StatusOK,
			appName:       "app-2",
			appVersion:    "v0.0.2",
			body:          []byte(`{"name":"app-2","version":"v0.0.2"}`),
		},
		{
			name:          "Ready with passing check",
			listenAddress: ":10004",
			endpoint:      "http://:10004/ready",
			statusCode:    http.StatusOK,
			appName:       "app-4",
			appVersion:    "v0.0.4",
			body:          []byte(`{"name":"app-4","version":"v0.0.4"}`),
			checks:        []probe.ReadinessCheck{func(context.Context) error { return nil }},
		},
		{
			name:          "Not ready",
			listenAddress: ":10005",
			endpoint:      "http://:10005/ready",
			statusCode:    http.StatusServiceUnavailable,
			appName:       "app-5",
			appVersion:    "v0.0.5",
			body:          []byte(`{"name":"app-5","version":"v0.0.5","error":"redis: connection refused"}`),
			checks: []probe.ReadinessCheck{func(context.Context) error {
				return errors.New("redis: connection refused")
			}},
		},
		{
			name:          "Health ignores readiness checks",
			listenAddress: ":10006",
			endpoint:      "http://:10006/healthz",
			statusCode:    http.StatusOK,
			appName:       "app-6",
			appVersion:    "v0.0.6",
			body:          []byte(`{"name":"app-6","version":"v0.0.6"}`),
			checks: []probe.ReadinessCheck{func(context.Context) error {
				return errors.New("redis: connection refused")
			}},
		},
		{
			name:          "Invalid endpoint",
			listenAddress: ":10003",
			endpoint:      "http://:10003/invalid",
			statusCode:    http.StatusNotFound,
			body:          []byte("404 page not found\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			probeServer := probe.NewServer(
				tc.listenAddress,
				probe.Options{
					Name:    tc.appName,
					Version: tc.appVersion,
				},
				tc.checks...,
			)

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return probeServer.Run(ctx)
			})

			// Wait for server to start.
			time.Sleep(time.Second)

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.endpoint, http.NoBody)
			rq.NoError(err)

			resp, err := http.DefaultClient.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Equal(tc.body, bodyBytes)

			cancel()

			rq.NoError(g.Wait())
		})
	}
}
