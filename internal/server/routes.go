package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"numclass/pkg/httpx/reply"
	"numclass/pkg/logx"
	"numclass/pkg/middlewarex"
)

type RouterOptions struct {
	HandlerTimeout      time.Duration
	SensitiveDataMasker logx.SensitiveDataMaskerInterface
	LogFieldMaxLen      int
}

// NewRouter собирает цепочку middleware и таблицу маршрутов.
func NewRouter(s Server, opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen),
		middlewarex.CORS,
	)

	if opts.HandlerTimeout > 0 {
		r.Use(middlewarex.Timeout(opts.HandlerTimeout))
	}

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/classify-number", handler(s.getClassifyNumber))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
