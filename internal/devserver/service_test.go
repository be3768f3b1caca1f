package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/goaltrack/internal/goalsapi"
	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/store"
	"github.com/theirongolddev/goaltrack/internal/tracker"
)

func newTestServer(t *testing.T, cfg Config) (*Service, *httptest.Server) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "dev.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })

	svc := New(cfg, st, nil)
	srv := httptest.NewServer(svc.Handler())
	t.Cleanup(srv.Close)
	return svc, srv
}

func TestClientRoundTrip(t *testing.T) {
	_, srv := newTestServer(t, Config{})
	client, err := goalsapi.NewClient(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	ctrl := tracker.NewController(client, tracker.NewPage(7), nil)

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n := len(ctrl.Page().Goals); n != 0 {
		t.Fatalf("fresh server has %d goals", n)
	}

	created, err := ctrl.Add(ctx, model.Goal{
		Title:    "Run a marathon",
		Category: model.CategoryHealthFitness,
		EndDate:  model.NewDate(2024, 10, 1),
		Steps:    model.Steps{{Title: "10k"}, {Title: "half"}},
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.ID == 0 || created.UserID != 7 {
		t.Fatalf("created = %+v", created)
	}

	created.Completed = 50
	created.Steps[0].Done = true
	edited, err := ctrl.Edit(ctx, created)
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if edited.Completed != 50 || !edited.Steps[0].Done {
		t.Errorf("edited = %+v", edited)
	}

	other := tracker.NewController(client, tracker.NewPage(7), nil)
	if err := other.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if got := other.Page().Visible(model.TabInProgress); len(got) != 1 || got[0].ID != created.ID {
		t.Errorf("in progress = %+v", got)
	}

	if err := ctrl.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(ctrl.Page().Goals) != 0 {
		t.Errorf("page still has %d goals", len(ctrl.Page().Goals))
	}

	err = ctrl.Delete(ctx, created.ID)
	if !errors.Is(err, goalsapi.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	_, srv := newTestServer(t, Config{})

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"no user", `{"title":"x","category":"Career","completed":0}`},
		{"no title", `{"userId":7,"title":"","category":"Career","completed":0}`},
		{"bad steps", `{"userId":7,"title":"x","category":"Career","completed":0,"steps":"nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/goals", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestUpdateUnknownGoal(t *testing.T) {
	_, srv := newTestServer(t, Config{})
	body := `{"id":999,"title":"x","category":"Career","completed":10,"steps":"[]"}`
	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/goals", strings.NewReader(body))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestEventsAndStatus(t *testing.T) {
	svc, srv := newTestServer(t, Config{EventsBuffer: 2})
	client, err := goalsapi.NewClient(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		if _, err := client.AddGoal(ctx, model.Goal{Title: title, Category: model.CategoryCareer}, 3); err != nil {
			t.Fatal(err)
		}
	}

	resp, err := http.Get(srv.URL + "/v1/events")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 || events[0].ID != 2 || events[1].ID != 3 {
		t.Fatalf("events = %+v", events)
	}
	if events[1].Type != EventGoalCreated || events[1].Goal.Title != "c" {
		t.Errorf("last event = %+v", events[1])
	}

	st := svc.snapshotStatus(ctx)
	if st.Goals != 3 || st.EventCount != 2 {
		t.Errorf("status = %+v", st)
	}
	if st.Requests < 4 {
		t.Errorf("requests = %d, want >= 4", st.Requests)
	}
}

func TestHealthMetricsAndCORS(t *testing.T) {
	_, srv := newTestServer(t, Config{AllowedOrigins: []string{"http://localhost:3000"}})

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(data), "goaltrack_http_request_duration_seconds") {
		t.Errorf("metrics output missing request histogram:\n%s", data)
	}

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/goals", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{EventsBuffer: 2}, nil, nil)

	s.publish(EventGoalCreated, model.Goal{ID: 1})
	s.publish(EventGoalUpdated, model.Goal{ID: 1})
	s.publish(EventGoalDeleted, model.Goal{ID: 1})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}
