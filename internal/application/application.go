package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"numclass/internal/config"
	"numclass/internal/domain/service/classifier"
	"numclass/internal/infrastructure/factcache"
	"numclass/internal/infrastructure/numbersapi"
	"numclass/internal/server"
	"numclass/internal/worker"
	"numclass/pkg/application/connectors"
	"numclass/pkg/application/modules"
	"numclass/pkg/contextx"
	"numclass/pkg/logx"
	"numclass/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run поднимает HTTP, probe и metrics серверы, а при включённом обновлении фактов
// ещё и asynq. Возвращается после остановки всех модулей.
func Run(ctx context.Context, cfg config.Config) error {
	logger(ctx).Info("application starting",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)

	client, err := numbersapi.NewClient(cfg.NumbersAPI, cfg.Log.FieldMaxLength)
	if err != nil {
		return fmt.Errorf("numbersapi.NewClient: %w", err)
	}

	var (
		store  factcache.Store
		checks []probe.ReadinessCheck
	)

	switch {
	case !cfg.FactCache.Enabled:
	case !cfg.Redis.Enabled():
		store = factcache.NewMemory(cfg.FactCache.TTL)
	default:
		redisConnector := &connectors.Redis{
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer redisConnector.Close(ctx)

		redisClient := redisConnector.Client(ctx)

		store = factcache.NewRedis(redisClient, cfg.FactCache.TTL)
		checks = append(checks, func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	g, ctx := errgroup.WithContext(ctx)

	var (
		facts     classifier.FactProvider = client
		refresher *worker.FactRefresher
	)

	if store != nil {
		provider := factcache.NewProvider(client, store)
		facts = provider

		if cfg.FactRefresh.Enabled {
			asynqClient := asynq.NewClient(redisClientOpt(cfg.Redis))
			defer asynqClient.Close() //nolint:errcheck

			refresher = worker.NewFactRefresher(provider, asynqClient, cfg.FactRefresh)
		}
	} else if cfg.FactRefresh.Enabled {
		logger(ctx).Warn("fact refresh needs the fact cache, skipped")
	}

	classifyService := classifier.NewService(facts)

	if refresher != nil {
		classifyService.WithRefresh(refresher)

		zapLogger, zapErr := zap.NewProduction()
		if zapErr != nil {
			return fmt.Errorf("zap.NewProduction: %w", zapErr)
		}
		defer zapLogger.Sync() //nolint:errcheck

		modules.AsynqServer{
			RedisUsername: cfg.Redis.Username,
			RedisPassword: cfg.Redis.Password,
			RedisAddress:  cfg.Redis.Address,
			RedisDB:       cfg.Redis.DatabaseNumber,
			Concurrency:   cfg.FactRefresh.Concurrency,
			Logger:        zapLogger.Sugar(),
		}.Run(ctx, g, modules.AsynqQueues{cfg.FactRefresh.Queue: 1}, refresher.Handler())
	}

	router := server.NewRouter(
		server.NewServer(server.NewClassifyServer(classifyService)),
		server.RouterOptions{
			HandlerTimeout:      cfg.HTTP.HandlerTimeout,
			SensitiveDataMasker: logx.NewSensitiveDataMasker(),
			LogFieldMaxLen:      cfg.Log.FieldMaxLength,
		},
	)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:            cfg.App.Name,
		Version:         cfg.App.Version,
		ListenAddress:   cfg.Probe.ListenAddress,
		ReadinessChecks: checks,
	}.Run(ctx, g)

	modules.MetricServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}

func redisClientOpt(cfg config.Redis) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DatabaseNumber,
	}
}
