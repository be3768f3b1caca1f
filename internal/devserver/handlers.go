package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/store"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20 // 1 MB

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	return id, err == nil && id > 0
}

func decodeGoal(w http.ResponseWriter, r *http.Request) (model.Goal, error) {
	var g model.Goal
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	err := dec.Decode(&g)
	return g, err
}

func (s *Service) storeFailure(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	s.recordError(err)
	s.log.Error("store operation failed", zap.String("op", op), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func (s *Service) handleListGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	goals, err := s.store.ListGoals(r.Context(), userID)
	if err != nil {
		s.storeFailure(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Service) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	g, err := decodeGoal(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed goal: "+err.Error())
		return
	}
	if g.UserID <= 0 {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}
	if err := g.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.CreateGoal(r.Context(), g)
	if err != nil {
		s.storeFailure(w, "create", err)
		return
	}
	s.metrics.goalMutations.WithLabelValues("create").Inc()
	s.publish(EventGoalCreated, created)
	writeJSON(w, http.StatusCreated, struct {
		Goal model.Goal `json:"goal"`
	}{created})
}

func (s *Service) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	g, err := decodeGoal(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed goal: "+err.Error())
		return
	}
	if g.ID <= 0 {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if err := g.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.store.UpdateGoal(r.Context(), g)
	if err != nil {
		s.storeFailure(w, "update", err)
		return
	}
	s.metrics.goalMutations.WithLabelValues("update").Inc()
	s.publish(EventGoalUpdated, updated)
	writeJSON(w, http.StatusOK, updated)
}

func (s *Service) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "goalID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}
	existing, err := s.store.GetGoal(r.Context(), id)
	if err != nil {
		s.storeFailure(w, "delete", err)
		return
	}
	if err := s.store.DeleteGoal(r.Context(), id); err != nil {
		s.storeFailure(w, "delete", err)
		return
	}
	s.metrics.goalMutations.WithLabelValues("delete").Inc()
	s.publish(EventGoalDeleted, existing)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "goal deleted"})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus(r.Context()))
}
