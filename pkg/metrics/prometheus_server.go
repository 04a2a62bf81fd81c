package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"numclass/pkg/contextx"
	"numclass/pkg/logx"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// BuildInfo is exported as the constant gauge app_build_info{name,version} = 1.
type BuildInfo struct {
	Name    string
	Version string
}

type PrometheusServer struct {
	listenAddress string
	gatherer      prometheus.Gatherer
}

// NewPrometheusServer serves the default registry together with a private
// registry holding only the build info gauge, so several servers can coexist.
func NewPrometheusServer(
	listenAddress string,
	info BuildInfo,
) PrometheusServer {
	registry := prometheus.NewRegistry()

	registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name:        "app_build_info",
			Help:        "Application name and version",
			ConstLabels: prometheus.Labels{"name": info.Name, "version": info.Version},
		},
		func() float64 { return 1 },
	))

	return PrometheusServer{
		listenAddress: listenAddress,
		gatherer:      prometheus.Gatherers{prometheus.DefaultGatherer, registry},
	}
}

func (p PrometheusServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{}))

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              p.listenAddress,
		Handler:           mux,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("prometheus server started", slog.String("address", p.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("prometheus server stopped")

	return nil
}
