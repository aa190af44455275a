package server

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"anagram/internal/logger"
)

const requestIDHeader = "X-Request-Id"

// middleware wraps h, outermost first: tracing, CORS, request ID, access log.
func (s *Server) middleware(h http.Handler) http.Handler {
	h = accessLog(s.log, h)
	h = requestID(s.log, h)
	if len(s.corsOrigins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins: s.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead},
			ExposedHeaders: []string{requestIDHeader, fingerprintHeader},
		}).Handler(h)
	}
	if s.tracing {
		h = otelhttp.NewHandler(h, "lookupd")
	}
	return h
}

// requestID tags each request with a fresh ID, echoed in X-Request-Id and
// attached to the request's log lines.
func requestID(log logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.NewRandom()
		if err != nil {
			log.Error("failed to generate uuid", zap.Error(err))
		}
		requestID := id.String()
		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(logger.ContextWithRequestID(r.Context(), requestID)))
	})
}

func accessLog(log logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		route := routeLabel(r.URL.Path)
		httpRequestsCounter.WithLabelValues(route, strconv.Itoa(m.Code)).Inc()
		httpDurationHistogram.WithLabelValues(route).Observe(float64(m.Duration.Milliseconds()))

		log.InfoWithContext(r.Context(), "http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", m.Code),
			zap.Int64("bytes", m.Written),
			zap.Duration("duration", m.Duration),
		)
	})
}
