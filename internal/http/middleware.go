package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hockey-odds-service/internal/logging"
	"hockey-odds-service/internal/metrics"
)

// WithMiddleware wraps the router with request-id propagation, request
// logging, and HTTP metrics.
func WithMiddleware(next http.Handler, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := requestID(r)

		reqLogger := logger
		if reqLogger != nil {
			reqLogger = reqLogger.With(slog.String(logging.FieldRequestID, id))
		}
		r = r.WithContext(logging.WithLogger(r.Context(), reqLogger))

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		rw.Header().Set(requestIDHeader, id)

		next.ServeHTTP(rw, r)

		elapsed := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), rw.status, elapsed)
		logging.Info(reqLogger, "request completed",
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.Int(logging.FieldStatusCode, rw.status),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
	})
}

// normalizePath collapses per-game paths so metric cardinality stays bounded.
func normalizePath(path string) string {
	rest := strings.TrimPrefix(path, "/matchups/")
	if rest != path && rest != "" && rest != "today" && !strings.Contains(rest, "/") {
		return "/matchups/:id"
	}
	return path
}

type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	if !rw.wroteHeader {
		rw.status = status
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
	}
	return rw.ResponseWriter.Write(b)
}
