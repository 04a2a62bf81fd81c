package middlewarex

import "net/http"

const (
	corsAllowMethods = "GET, OPTIONS"
	corsAllowHeaders = "Content-Type, X-Trace-Id"
	corsMaxAge       = "86400"
)

// CORS allows cross-origin access from any origin. Preflight requests are
// answered here and never reach the router.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Expose-Headers", headerNameTraceID)

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Max-Age", corsMaxAge)
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
