package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/goaltrack/internal/goalsapi"
	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/session"
	"github.com/theirongolddev/goaltrack/internal/store"
	"github.com/theirongolddev/goaltrack/internal/tracker"
	"github.com/theirongolddev/goaltrack/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

type fakeService struct {
	goals  []model.Goal
	nextID int
	err    error
}

func (f *fakeService) ListGoals(context.Context, int) ([]model.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.Goal(nil), f.goals...), nil
}

func (f *fakeService) AddGoal(_ context.Context, draft model.Goal, userID int) (model.Goal, error) {
	if f.err != nil {
		return model.Goal{}, f.err
	}
	draft.ID = f.nextID
	draft.UserID = userID
	return draft, nil
}

func (f *fakeService) EditGoal(_ context.Context, g model.Goal) (model.Goal, error) {
	if f.err != nil {
		return model.Goal{}, f.err
	}
	return g, nil
}

func (f *fakeService) DeleteGoal(context.Context, int) error {
	return f.err
}

type memKV map[string]string

func (m memKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (m memKV) Put(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m memKV) Delete(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func seeded() []model.Goal {
	return []model.Goal{
		{ID: 1, Title: "Ship", Category: model.CategoryCareer, Completed: 100, EndDate: model.NewDate(2024, 1, 1)},
		{ID: 2, Title: "Run", Category: model.CategoryHealthFitness, Completed: 50, EndDate: model.NewDate(2024, 6, 1)},
		{ID: 3, Title: "Read", Category: model.CategoryEducation, Completed: 0, EndDate: model.NewDate(2024, 3, 1)},
	}
}

// drive feeds msg into the app. After a successful session message it also
// runs the returned load command and feeds the result back in. Other
// commands (cursor blink, form init) are dropped.
func drive(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, cmd := a.Update(msg)
	a = m.(App)
	if s, ok := msg.(sessionMsg); !ok || s.err != nil || cmd == nil {
		return a
	}
	next := cmd()
	switch next.(type) {
	case sessionMsg, opDoneMsg:
		return drive(t, a, next)
	}
	return a
}

func loadedApp(t *testing.T, svc *fakeService) App {
	t.Helper()
	a := NewApp(Options{Service: svc, UserID: 7})
	a.now = func() time.Time { return time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC) }
	a = drive(t, a, tea.WindowSizeMsg{Width: 140, Height: 40})
	a = drive(t, a, sessionMsg{userID: 7})
	if !a.loaded {
		t.Fatal("app did not finish loading")
	}
	return a
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func ids(goals []model.Goal) []int {
	out := make([]int, len(goals))
	for i, g := range goals {
		out[i] = g.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLoadSortsGoals(t *testing.T) {
	a := loadedApp(t, &fakeService{goals: seeded()})
	if got := ids(a.visible()); !equalIDs(got, []int{3, 2, 1}) {
		t.Errorf("visible = %v, want [3 2 1]", got)
	}
	if a.noticeErr {
		t.Errorf("unexpected error notice %q", a.notice)
	}
}

func TestTabKeys(t *testing.T) {
	a := loadedApp(t, &fakeService{goals: seeded()})

	tests := []struct {
		key  string
		tab  model.Tab
		want []int
	}{
		{"2", model.TabNotStarted, []int{3}},
		{"3", model.TabInProgress, []int{2}},
		{"4", model.TabCompleted, []int{1}},
		{"1", model.TabAll, []int{3, 2, 1}},
	}
	for _, tt := range tests {
		a = drive(t, a, keyMsg(tt.key))
		if a.activeTab != tt.tab {
			t.Errorf("key %s: tab = %v, want %v", tt.key, a.activeTab, tt.tab)
		}
		if got := ids(a.visible()); !equalIDs(got, tt.want) {
			t.Errorf("key %s: visible = %v, want %v", tt.key, got, tt.want)
		}
	}

	a = drive(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.activeTab != model.TabCompleted {
		t.Errorf("left from All should wrap to Completed, got %v", a.activeTab)
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	a := loadedApp(t, &fakeService{goals: seeded()})
	counts := a.tabCounts()

	x := components.TabVisualWidth(model.TabAll, counts[model.TabAll]) + 1 +
		components.TabVisualWidth(model.TabNotStarted, counts[model.TabNotStarted]) + 1
	a = drive(t, a, tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != model.TabInProgress {
		t.Errorf("click at x=%d selected %v, want In Progress", x, a.activeTab)
	}

	a = drive(t, a, tea.MouseMsg{X: x, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != model.TabInProgress {
		t.Error("click below the tab bar should not switch tabs")
	}
}

func TestCategoryCycleFilters(t *testing.T) {
	a := loadedApp(t, &fakeService{goals: seeded()})

	// All -> Personal Development -> Health & Fitness
	a = drive(t, a, keyMsg("c"))
	a = drive(t, a, keyMsg("c"))
	if a.category != model.CategoryHealthFitness {
		t.Fatalf("category = %v", a.category)
	}
	if got := ids(a.visible()); !equalIDs(got, []int{2}) {
		t.Errorf("visible = %v, want [2]", got)
	}
	if c := a.tabCounts(); c[model.TabAll] != 3 || c[model.TabNotStarted] != 1 {
		t.Errorf("counts = %v, category must not change them", c)
	}
	if !strings.Contains(a.View(), "All (3)") {
		t.Error("tab bar should keep the unfiltered count")
	}

	a = drive(t, a, keyMsg("C"))
	a = drive(t, a, keyMsg("C"))
	if a.category != model.CategoryAll {
		t.Errorf("category = %v, want the no-filter sentinel", a.category)
	}
	a = drive(t, a, keyMsg("C"))
	if a.category != model.CategoryMiscellaneous {
		t.Errorf("C from All should wrap to Miscellaneous, got %v", a.category)
	}
}

func TestCursorStaysInRange(t *testing.T) {
	a := loadedApp(t, &fakeService{goals: seeded()})
	for range 5 {
		a = drive(t, a, keyMsg("j"))
	}
	if a.cursor != 2 {
		t.Errorf("cursor = %d, want 2", a.cursor)
	}
	a = drive(t, a, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if a.cursor != 1 {
		t.Errorf("wheel up cursor = %d, want 1", a.cursor)
	}
	a = drive(t, a, keyMsg("4"))
	if a.cursor != 0 {
		t.Errorf("tab switch should reset cursor, got %d", a.cursor)
	}
}

func TestSearchFiltersTitles(t *testing.T) {
	a := loadedApp(t, &fakeService{goals: seeded()})
	a = drive(t, a, keyMsg("/"))
	if !a.searching {
		t.Fatal("/ should start search")
	}
	a = drive(t, a, keyMsg("RE"))
	a = drive(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.query != "RE" {
		t.Fatalf("query = %q", a.query)
	}
	if got := ids(a.visible()); !equalIDs(got, []int{3}) {
		t.Errorf("visible = %v, want [3]", got)
	}
	if c := a.tabCounts(); c[model.TabCompleted] != 1 || c[model.TabAll] != 3 {
		t.Errorf("counts under search = %v, want unfiltered", c)
	}

	a = drive(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.query != "" || len(a.visible()) != 3 {
		t.Error("esc should clear the search")
	}
}

func TestSubmitAddAppendsGoal(t *testing.T) {
	svc := &fakeService{goals: seeded(), nextID: 42}
	a := loadedApp(t, svc)

	a.openGoalForm(formAdd, model.Goal{Category: model.CategoryFinance})
	a.goalVals.Title = "Save money"
	a.goalVals.Completed = "10"
	a.goalVals.EndDate = "2024-05-01"

	m, cmd := a.submitForm()
	a = m.(App)
	if a.form != nil {
		t.Error("form should close on submit")
	}
	a = drive(t, a, cmd())

	if n := len(a.ctrl.Page().Goals); n != 4 {
		t.Fatalf("goals = %d, want 4", n)
	}
	g, ok := a.selected()
	if !ok || g.ID != 42 {
		t.Errorf("cursor should land on the new goal, got %+v", g)
	}
	if a.noticeErr {
		t.Errorf("unexpected error %q", a.notice)
	}
}

func TestSubmitInvalidGoalSendsNothing(t *testing.T) {
	a := loadedApp(t, &fakeService{goals: seeded()})
	a.openGoalForm(formAdd, model.Goal{})
	a.goalVals.Title = "   "

	m, cmd := a.submitForm()
	a = m.(App)
	if cmd != nil {
		t.Error("invalid draft should not start a request")
	}
	if !a.noticeErr {
		t.Error("invalid draft should set an error notice")
	}
}

func TestDeleteFlow(t *testing.T) {
	svc := &fakeService{goals: seeded()}
	a := loadedApp(t, svc)

	g, _ := a.selected()
	a.openDelete(g)
	a.goalVals.Confirm = true
	m, cmd := a.submitForm()
	a = drive(t, m.(App), cmd())

	if n := len(a.ctrl.Page().Goals); n != 2 {
		t.Errorf("goals = %d, want 2", n)
	}

	// Declined confirmation sends nothing.
	g, _ = a.selected()
	a.openDelete(g)
	m, cmd = a.submitForm()
	if cmd != nil {
		t.Error("declined delete should not start a request")
	}
	if n := len(m.(App).ctrl.Page().Goals); n != 2 {
		t.Errorf("goals = %d, want 2", n)
	}
}

func TestFailedOperationKeepsGoals(t *testing.T) {
	svc := &fakeService{goals: seeded()}
	a := loadedApp(t, svc)

	svc.err = goalsapi.ErrNetwork
	g, _ := a.selected()
	a.openDelete(g)
	a.goalVals.Confirm = true
	m, cmd := a.submitForm()
	a = drive(t, m.(App), cmd())

	if n := len(a.ctrl.Page().Goals); n != 3 {
		t.Errorf("goals = %d, want 3 after failure", n)
	}
	if !a.noticeErr || !strings.Contains(a.notice, "delete goal") {
		t.Errorf("notice = %q (err=%v)", a.notice, a.noticeErr)
	}
	if a.pending != 0 {
		t.Errorf("pending = %d", a.pending)
	}
}

func TestMissingSessionOpensLogin(t *testing.T) {
	kv := memKV{}
	a := NewApp(Options{Service: &fakeService{goals: seeded()}, Sessions: kv})
	a = drive(t, a, tea.WindowSizeMsg{Width: 100, Height: 30})

	a = drive(t, a, bootstrapCmd(a.opts)())
	if a.form == nil || a.formKind != formLogin {
		t.Fatal("expected the login form")
	}
	if a.noticeErr {
		t.Errorf("missing session is not an error, got %q", a.notice)
	}

	a.loginVals.UserID = "7"
	a.loginVals.Name = "ana"
	m, cmd := a.submitForm()
	a = drive(t, m.(App), cmd())

	if a.ctrl == nil || a.ctrl.Page().UserID != 7 {
		t.Fatal("login should start a session for user 7")
	}
	if !a.loaded || len(a.ctrl.Page().Goals) != 3 {
		t.Error("login should load goals")
	}
	if id, err := session.Bootstrap(context.Background(), kv); err != nil || id != 7 {
		t.Errorf("stored session = %d, %v", id, err)
	}
}

func TestBadLoginReopensForm(t *testing.T) {
	a := NewApp(Options{Service: &fakeService{}})
	a = drive(t, a, sessionMsg{err: session.ErrNoSession})
	a.loginVals.UserID = "abc"
	m, _ := a.submitForm()
	a = m.(App)
	if a.formKind != formLogin || !a.noticeErr {
		t.Error("invalid user id should reopen the login form with an error")
	}
}

func TestViewRenders(t *testing.T) {
	a := loadedApp(t, &fakeService{goals: seeded()})

	out := a.View()
	for _, want := range []string{"All (3)", "Not Started (1)", "Read", "Details", "avg "} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if h := lipgloss.Height(out); h != 40 {
		t.Errorf("view height = %d, want 40", h)
	}

	a = drive(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(a.View(), "too narrow") {
		t.Error("narrow terminal should show the warning")
	}
}

func TestLoadFailureStillShowsDashboard(t *testing.T) {
	svc := &fakeService{err: goalsapi.ErrNetwork}
	a := NewApp(Options{Service: svc, UserID: 7})
	a = drive(t, a, tea.WindowSizeMsg{Width: 120, Height: 30})
	a = drive(t, a, sessionMsg{userID: 7})

	if !a.loaded || !a.noticeErr {
		t.Fatalf("loaded=%v noticeErr=%v", a.loaded, a.noticeErr)
	}
	if len(a.ctrl.Page().Goals) != 0 {
		t.Error("failed load should leave the page empty")
	}
	if !strings.Contains(a.View(), "No goals here") {
		t.Error("empty dashboard should show the add hint")
	}
}

var _ tracker.GoalService = (*fakeService)(nil)
