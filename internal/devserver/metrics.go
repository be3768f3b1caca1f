package devserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

type metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	goalMutations   *prometheus.CounterVec
}

// newMetrics registers on reg rather than the global registry so several
// services can coexist in one process.
func newMetrics(reg *prometheus.Registry) *metrics {
	f := promauto.With(reg)
	return &metrics{
		registry: reg,
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goaltrack_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"method", "path", "status"},
		),
		goalMutations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goaltrack_goal_mutations_total",
				Help: "Total number of goal mutations",
			},
			[]string{"op"}, // op: create, update, delete
		),
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Service) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				path = tmpl
			}
		}
		elapsed := time.Since(start)
		s.metrics.requestDuration.
			WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).
			Observe(elapsed.Seconds())

		s.mu.Lock()
		s.requests++
		s.mu.Unlock()

		s.log.Debug("request",
			zap.String("request_id", r.Header.Get("X-Request-ID")),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", elapsed),
		)
	})
}
