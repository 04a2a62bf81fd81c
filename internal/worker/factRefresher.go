package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"numclass/internal/config"
	"numclass/internal/domain"
	"numclass/internal/domain/value"
	"numclass/internal/metrics"
	"numclass/pkg/application/modules"
	"numclass/pkg/contextx"
	"numclass/pkg/errcodes"
	"numclass/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const TypeFactRefresh = "fact:refresh"

var ErrFactUnavailable = errors.New("fact is still unavailable")

type factRefreshPayload struct {
	Number uint64 `json:"number"`
}

type FactSource interface {
	Refresh(ctx context.Context, abs uint64) value.Fact
}

type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// FactRefresher ставит в очередь числа, для которых не удалось получить факт,
// и в фоне дотягивает факт в кеш.
type FactRefresher struct {
	source   FactSource
	enqueuer TaskEnqueuer
	cfg      config.FactRefresh
}

func NewFactRefresher(
	source FactSource,
	enqueuer TaskEnqueuer,
	cfg config.FactRefresh,
) *FactRefresher {
	return &FactRefresher{
		source:   source,
		enqueuer: enqueuer,
		cfg:      cfg,
	}
}

// Schedule ставит задачу; повтор в пределах UniqueTTL не ошибка.
func (w *FactRefresher) Schedule(ctx context.Context, abs uint64) error {
	payload, err := json.Marshal(factRefreshPayload{Number: abs})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	info, err := w.enqueuer.EnqueueContext(
		ctx,
		asynq.NewTask(TypeFactRefresh, payload),
		asynq.Queue(w.cfg.Queue),
		asynq.Unique(w.cfg.UniqueTTL),
		asynq.MaxRetry(w.cfg.MaxRetry),
	)
	if errors.Is(err, asynq.ErrDuplicateTask) {
		metrics.FactRefreshes.WithLabelValues("duplicate").Inc()
		return nil
	}

	if err != nil {
		metrics.FactRefreshes.WithLabelValues("enqueue_failed").Inc()
		return domain.WrapError(err, errcodes.FactEnqueueFailed, "enqueue fact refresh")
	}

	metrics.FactRefreshes.WithLabelValues("enqueued").Inc()

	logger(ctx).Debug("fact refresh scheduled",
		slog.Uint64(logx.FieldNumber, abs),
		slog.String(logx.FieldTaskID, info.ID),
	)

	return nil
}

func (w *FactRefresher) Handle(ctx context.Context, task *asynq.Task) error {
	var payload factRefreshPayload

	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %v: %w", err, asynq.SkipRetry)
	}

	fact := w.source.Refresh(ctx, payload.Number)

	switch {
	case fact.OK():
		metrics.FactRefreshes.WithLabelValues("refreshed").Inc()
		logger(ctx).Info("fact refreshed", slog.Uint64(logx.FieldNumber, payload.Number))

		return nil
	case fact.Outcome == value.FactNoText:
		// Сервис ответил, но факта нет: повторять бессмысленно.
		metrics.FactRefreshes.WithLabelValues("no_text").Inc()
		return nil
	case fact.Outcome == value.FactBadStatus && fact.StatusCode < http.StatusInternalServerError &&
		fact.StatusCode != http.StatusTooManyRequests:
		metrics.FactRefreshes.WithLabelValues("dropped").Inc()
		return fmt.Errorf("%w: status %d: %w", ErrFactUnavailable, fact.StatusCode, asynq.SkipRetry)
	default:
		metrics.FactRefreshes.WithLabelValues("failed").Inc()
		return fmt.Errorf("%w: %s", ErrFactUnavailable, fact.String())
	}
}

func (w *FactRefresher) Handler() modules.AsynqHandler {
	return modules.AsynqHandler{
		Pattern: TypeFactRefresh,
		Handle:  w.Handle,
	}
}
