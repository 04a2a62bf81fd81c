package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"numclass/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID принимает входящий X-Trace-Id только если это корректный xid,
// иначе выдаёт новый. Так в логи не попадает произвольная строка клиента.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := xid.FromString(r.Header.Get(headerNameTraceID))
		if err != nil {
			id = xid.New()
		}

		traceID := id.String()

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
