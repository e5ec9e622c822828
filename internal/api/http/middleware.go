package http

import (
	"net/http"
	"strconv"
	"time"

	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// userIDHeader carries the authenticated caller's identity, set by the
// gateway in front of this service.
const userIDHeader = "X-Sharer-User-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware tags each request with a request id and records latency
// and status, both in logs and in the Prometheus histogram.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqLog := logger.With("request_id", uuid.NewString(), "method", r.Method, "path", r.URL.Path)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		duration := time.Since(start)
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Observe(duration.Seconds())
		reqLog.Info("request handled", "status", rec.status, "duration_ms", duration.Milliseconds())
	})
}

// requesterID extracts the caller's user id from the identity header.
func requesterID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.Header.Get(userIDHeader), 10, 64)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
