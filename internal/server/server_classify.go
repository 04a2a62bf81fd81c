package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"numclass/internal/domain/entity"
	"numclass/internal/domain/value"
	"numclass/internal/metrics"
	"numclass/pkg/errcodes"
	"numclass/pkg/httpx/reply"
	"numclass/pkg/httpx/req"
	"numclass/pkg/logx"
	"numclass/pkg/rest"
)

type classifyService interface {
	Classify(ctx context.Context, n value.Number) (entity.Classification, error)
}

type ClassifyServer struct {
	classifyService classifyService
}

func NewClassifyServer(classifyService classifyService) ClassifyServer {
	return ClassifyServer{
		classifyService: classifyService,
	}
}

type classifyQuery struct {
	Number *string `query:"number"`
}

func (s ClassifyServer) getClassifyNumber(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var query classifyQuery

	if err := req.ReadQuery(r, &query); err != nil {
		return fmt.Errorf("req.ReadQuery: %w", err)
	}

	n, err := value.ParseNumber(query.Number)
	if err != nil {
		replyInvalidNumber(ctx, w, query.Number, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseNumber: %w", err),
			failure.WithCode(errcodes.InvalidNumber),
		))

		return nil
	}

	classification, err := s.classifyService.Classify(ctx, n)
	if err != nil {
		return fmt.Errorf("classifyService.Classify: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, NewRESTClassification(classification))

	return nil
}

// У некорректного числа свой формат ответа: исходная строка и флаг error.
func replyInvalidNumber(ctx context.Context, w http.ResponseWriter, raw *string, err error) {
	metrics.InvalidInputs.Inc()

	logger(ctx).Info("invalid number",
		slog.String(logx.FieldErrorCode, failure.Code(err).String()),
		logx.Error(err),
	)

	reply.JSON(ctx, w, http.StatusBadRequest, rest.ClassificationError{
		Number: raw,
		Error:  true,
	})
}
