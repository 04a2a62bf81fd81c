package factcache

import (
	"context"
	"log/slog"
	"strconv"

	"golang.org/x/sync/singleflight"

	"numclass/internal/domain"
	"numclass/internal/domain/value"
	"numclass/internal/metrics"
	"numclass/pkg/contextx"
	"numclass/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type factSource interface {
	Fact(ctx context.Context, abs uint64) value.Fact
}

// Provider отдаёт факт из кеша, а при промахе ходит в источник.
// Одновременные запросы одного числа склеиваются в один поход.
type Provider struct {
	source factSource
	store  Store
	group  singleflight.Group
}

func NewProvider(source factSource, store Store) *Provider {
	return &Provider{
		source: source,
		store:  store,
	}
}

func (p *Provider) Fact(ctx context.Context, abs uint64) value.Fact {
	text, ok, err := p.store.Get(ctx, abs)
	if err != nil {
		logger(ctx).Warn("store.Get",
			slog.Uint64(logx.FieldNumber, abs),
			slog.String(logx.FieldErrorCode, domain.CodeOf(err).String()),
			logx.Error(err),
		)
	}

	if ok {
		metrics.FactCache.WithLabelValues("hit").Inc()
		return value.FactFromText(text)
	}

	metrics.FactCache.WithLabelValues("miss").Inc()

	// Контекст первого запроса не должен обрывать поход для остальных.
	ch := p.group.DoChan(strconv.FormatUint(abs, 10), func() (any, error) {
		return p.Refresh(context.WithoutCancel(ctx), abs), nil
	})

	select {
	case res := <-ch:
		return res.Val.(value.Fact) //nolint:forcetypeassert
	case <-ctx.Done():
		return value.FactFromError(ctx.Err())
	}
}

// Refresh идёт в источник в обход кеша и сохраняет удачный результат.
func (p *Provider) Refresh(ctx context.Context, abs uint64) value.Fact {
	fact := p.source.Fact(ctx, abs)
	if !fact.OK() {
		return fact
	}

	if err := p.store.Set(ctx, abs, fact.Text); err != nil {
		logger(ctx).Warn("store.Set",
			slog.Uint64(logx.FieldNumber, abs),
			slog.String(logx.FieldErrorCode, domain.CodeOf(err).String()),
			logx.Error(err),
		)
	}

	return fact
}
