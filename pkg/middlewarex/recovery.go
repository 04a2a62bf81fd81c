package middlewarex

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"numclass/pkg/httpx/reply"
	"numclass/pkg/logx"
)

// Recovery отвечает на панику обычным JSON с кодом InternalServerError и supportId.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, fmt.Errorf("panic: %v", rec)) //nolint:err113
			}
		}()

		next.ServeHTTP(w, r)
	})
}
