package modules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"
)

type AsynqQueues map[string]int

type AsynqHandler struct {
	Pattern string
	Handle  func(context.Context, *asynq.Task) error
}

// AsynqServer модуль обработчика фоновых задач. Останавливается по ctx,
// а не по сигналу процесса.
type AsynqServer struct {
	RedisUsername string
	RedisPassword string
	RedisAddress  string
	RedisDB       int
	Concurrency   int
	Logger        asynq.Logger
}

func (s AsynqServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	queues AsynqQueues,
	handlers ...AsynqHandler,
) {
	g.Go(func() error {
		redisConnection := asynq.RedisClientOpt{
			Addr:     s.RedisAddress,
			Username: s.RedisUsername,
			Password: s.RedisPassword,
			DB:       s.RedisDB,
		}

		worker := asynq.NewServer(redisConnection, asynq.Config{
			BaseContext: func() context.Context { return ctx },
			Queues:      queues,
			Concurrency: s.Concurrency,
			Logger:      s.Logger,
			LogLevel:    asynq.WarnLevel,
		})

		mux := asynq.NewServeMux()

		for _, h := range handlers {
			mux.HandleFunc(h.Pattern, h.Handle)
		}

		if err := worker.Start(mux); err != nil {
			return fmt.Errorf("asynqServer.Start: %w", err)
		}

		logger(ctx).Info("asynq server started", slog.String("redis-address", s.RedisAddress), slog.Int("redis-db", s.RedisDB))

		<-ctx.Done()

		worker.Shutdown()

		logger(ctx).Info("asynq server stopped", slog.String("redis-address", s.RedisAddress), slog.Int("redis-db", s.RedisDB))

		return nil
	})
}
