package classifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"numclass/internal/domain"
	"numclass/internal/domain/entity"
	"numclass/internal/domain/service/numprops"
	"numclass/internal/domain/value"
	"numclass/internal/metrics"
	"numclass/pkg/contextx"
	"numclass/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//go:generate moq -rm -out fact_provider_mock.gen.go . FactProvider:FactProviderMock
// FactProvider никогда не возвращает ошибку: неудача описана в value.Fact.
type FactProvider interface {
	Fact(ctx context.Context, abs uint64) value.Fact
}

//go:generate moq -rm -out refresh_scheduler_mock.gen.go . RefreshScheduler:RefreshSchedulerMock
type RefreshScheduler interface {
	Schedule(ctx context.Context, abs uint64) error
}

type Service struct {
	facts     FactProvider
	refresher RefreshScheduler
}

func NewService(facts FactProvider) *Service {
	return &Service{
		facts: facts,
	}
}

// WithRefresh включает фоновое обновление фактов, которые не удалось получить.
func (s *Service) WithRefresh(refresher RefreshScheduler) *Service {
	s.refresher = refresher
	return s
}

// Classify считает свойства числа и дополняет их фактом.
func (s *Service) Classify(ctx context.Context, n value.Number) (entity.Classification, error) {
	result, err := s.Properties(ctx, n)
	if err != nil {
		return entity.Classification{}, err
	}

	abs := numprops.Abs(n.Int64())

	result.FunFact = s.facts.Fact(ctx, abs)

	if !result.FunFact.OK() && s.refresher != nil {
		if err := s.refresher.Schedule(ctx, abs); err != nil {
			logger(ctx).Warn("refresher.Schedule",
				slog.Uint64(logx.FieldNumber, abs),
				slog.String(logx.FieldErrorCode, domain.CodeOf(err).String()),
				logx.Error(err),
			)
		}
	}

	return result, nil
}

// Properties только вычисления, без похода за фактом.
// Простота и совершенность проверяются лишь для n > 0.
func (s *Service) Properties(ctx context.Context, n value.Number) (entity.Classification, error) {
	v := n.Int64()

	result := entity.Classification{
		Number:   n,
		DigitSum: numprops.DigitSum(v),
	}

	if v > 0 {
		prime, err := numprops.IsPrimeContext(ctx, v)
		if err != nil {
			return entity.Classification{}, fmt.Errorf("numprops.IsPrimeContext: %w", err)
		}

		result.IsPrime = prime

		perfect, err := numprops.IsPerfectContext(ctx, v)
		if err != nil {
			return entity.Classification{}, fmt.Errorf("numprops.IsPerfectContext: %w", err)
		}

		result.IsPerfect = perfect
	}

	if numprops.IsArmstrong(v) {
		result.Properties = append(result.Properties, value.PropertyArmstrong)
	}

	parity := lo.Ternary(numprops.IsEven(v), value.PropertyEven, value.PropertyOdd)
	result.Properties = append(result.Properties, parity)

	metrics.Classifications.
		WithLabelValues(parity.String(), lo.Ternary(v < 0, "negative", "non_negative")).
		Inc()

	return result, nil
}
