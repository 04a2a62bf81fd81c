package middlewarex_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/xid"
	"github.com/stretchr/testify/require"

	"numclass/pkg/contextx"
	"numclass/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	valid := xid.New().String()

	testCases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "Generated"},
		{name: "Valid incoming kept", incoming: valid, keep: true},
		{name: "Garbage replaced", incoming: "not-an-id\r\nX-Evil: 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var fromCtx contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				traceID, err := contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				fromCtx = traceID
			}))

			r := httptest.NewRequest(http.MethodGet, "/api/classify-number?number=1", nil)
			if tc.incoming != "" {
				r.Header.Set("X-Trace-Id", tc.incoming)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			header := w.Header().Get("X-Trace-Id")
			rq.Equal(header, fromCtx.String())

			_, err := xid.FromString(header)
			rq.NoError(err)

			if tc.keep {
				rq.Equal(tc.incoming, header)
			} else {
				rq.NotEqual(tc.incoming, header)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.TraceID(middlewarex.Logger(middlewarex.Recovery(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}),
	)))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	rq.Equal(http.StatusInternalServerError, w.Code)

	var body struct {
		Code      string `json:"code"`
		SupportID string `json:"supportId"`
	}

	rq.NoError(jsoniter.Unmarshal(w.Body.Bytes(), &body))
	rq.Equal("InternalServerError", body.Code)
	rq.Equal(w.Header().Get("X-Trace-Id"), body.SupportID)
}

func TestLogger(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.TraceID(middlewarex.Logger(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			_, err := contextx.LoggerFromContext(r.Context())
			rq.NoError(err)
		}),
	))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

type headerCountingWriter struct {
	*httptest.ResponseRecorder
	writeHeaderCalls int
}

func (w *headerCountingWriter) WriteHeader(statusCode int) {
	w.writeHeaderCalls++
	w.ResponseRecorder.WriteHeader(statusCode)
}

func TestTimeout(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		handler    http.HandlerFunc
		statusCode int
	}{
		{
			name: "Deadline set, fast handler",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, ok := r.Context().Deadline()
				rq.True(ok)

				w.WriteHeader(http.StatusOK)
			},
			statusCode: http.StatusOK,
		},
		{
			name: "Handler owns the timeout response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
				rq.ErrorIs(r.Context().Err(), context.DeadlineExceeded)

				w.WriteHeader(http.StatusTeapot)
			},
			statusCode: http.StatusTeapot,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			w := &headerCountingWriter{ResponseRecorder: httptest.NewRecorder()}

			middlewarex.Timeout(20*time.Millisecond)(tc.handler).
				ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			rq.Equal(tc.statusCode, w.Code)
			rq.Equal(1, w.writeHeaderCalls)
		})
	}
}
