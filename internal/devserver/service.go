// Package devserver provides a local Goal Service implementing the REST
// contract goaltrack talks to, backed by SQLite.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/theirongolddev/goaltrack/internal/model"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// GoalStore persists goals for the server.
type GoalStore interface {
	ListGoals(ctx context.Context, userID int) ([]model.Goal, error)
	GetGoal(ctx context.Context, id int) (model.Goal, error)
	CreateGoal(ctx context.Context, g model.Goal) (model.Goal, error)
	UpdateGoal(ctx context.Context, g model.Goal) (model.Goal, error)
	DeleteGoal(ctx context.Context, id int) error
	GoalCount(ctx context.Context) (int, error)
}

// Config controls the server runtime behavior.
type Config struct {
	Addr           string
	AllowedOrigins []string
	EventsBuffer   int
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	Addr            string    `json:"addr"`
	Goals           int       `json:"goals"`
	Requests        int64     `json:"requests"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
	LastError       string    `json:"last_error,omitempty"`
}

// Service is the dev Goal Service.
type Service struct {
	cfg     Config
	store   GoalStore
	log     *zap.Logger
	metrics *metrics

	mu          sync.RWMutex
	startedAt   time.Time
	requests    int64
	lastError   string
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a service over st. A nil logger discards output.
func New(cfg Config, st GoalStore, log *zap.Logger) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:3001"
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		cfg:       cfg,
		store:     st,
		log:       log,
		metrics:   newMetrics(prometheus.NewRegistry()),
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Handler returns the routed HTTP handler with CORS and instrumentation.
func (s *Service) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/goals/{userID:[0-9]+}", s.handleListGoals).Methods(http.MethodGet)
	api.HandleFunc("/goals", s.handleCreateGoal).Methods(http.MethodPost)
	api.HandleFunc("/goals", s.handleUpdateGoal).Methods(http.MethodPut)
	api.HandleFunc("/goals/{goalID:[0-9]+}", s.handleDeleteGoal).Methods(http.MethodDelete)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/v1/events", s.handleEvents).Methods(http.MethodGet)
	r.HandleFunc("/v1/stream", s.handleStream).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "no such route")
	})
	r.Use(s.instrument)

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "X-Request-ID"},
	})
	return c.Handler(r)
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("dev goal service listening", zap.String("addr", s.cfg.Addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("dev goal service shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("devserver http server: %w", err)
	}
}

func (s *Service) recordError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
}

func (s *Service) snapshotStatus(ctx context.Context) Status {
	count, err := s.store.GoalCount(ctx)
	if err != nil {
		s.recordError(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		Addr:            s.cfg.Addr,
		Goals:           count,
		Requests:        s.requests,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
		LastError:       s.lastError,
	}
}
