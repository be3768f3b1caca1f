package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"", CategoryAll},
		{"all", CategoryAll},
		{"--Sort by category--", CategoryAll},
		{"Health & Fitness", CategoryHealthFitness},
		{"health & fitness", CategoryHealthFitness},
		{"health", CategoryHealthFitness},
		{"FUN", CategoryFunEntertainment},
		{" Career ", CategoryCareer},
		{"misc", CategoryMiscellaneous},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if err != nil {
			t.Fatalf("ParseCategory(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseCategory("cooking"); err == nil {
		t.Fatal("ParseCategory(cooking) succeeded, want error")
	}
}

func TestCategoriesExcludeSentinel(t *testing.T) {
	cats := Categories()
	if len(cats) != 8 {
		t.Fatalf("len(Categories()) = %d, want 8", len(cats))
	}
	for _, c := range cats {
		if !c.Concrete() {
			t.Errorf("Categories() contains non-concrete %v", c)
		}
	}
}

func TestCategoryJSON(t *testing.T) {
	data, err := json.Marshal(CategoryFunEntertainment)
	if err != nil {
		t.Fatal(err)
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil || name != "Fun & Entertainment" {
		t.Fatalf("Marshal = %s", data)
	}

	var c Category
	if err := json.Unmarshal([]byte(`"Knitting"`), &c); err != nil {
		t.Fatalf("unknown category should not fail: %v", err)
	}
	if c != CategoryMiscellaneous {
		t.Errorf("unknown category = %v, want Miscellaneous", c)
	}
}

func TestParseStepsForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"null", `null`, 0},
		{"empty", ``, 0},
		{"empty string", `""`, 0},
		{"array", `[{"title":"a","done":true},{"title":"b"}]`, 2},
		{"serialized", `"[{\"title\":\"a\",\"done\":false}]"`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := ParseSteps([]byte(tt.raw))
			if err != nil {
				t.Fatalf("ParseSteps error: %v", err)
			}
			if len(steps) != tt.want {
				t.Fatalf("len = %d, want %d", len(steps), tt.want)
			}
		})
	}
}

func TestParseStepsInvalid(t *testing.T) {
	for _, raw := range []string{`"not json"`, `{"title":"x"}`, `[1,2`} {
		_, err := ParseSteps([]byte(raw))
		if !errors.Is(err, ErrStepsParse) {
			t.Errorf("ParseSteps(%s) err = %v, want ErrStepsParse", raw, err)
		}
	}
}

func TestStepsMarshalAsText(t *testing.T) {
	g := Goal{Title: "x", Category: CategoryCareer, Steps: Steps{{Title: "call", Done: true}}}
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"steps":"[{\"title\":\"call\",\"done\":true}]"`) {
		t.Fatalf("steps not serialized as text: %s", data)
	}

	var back Goal
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Steps) != 1 || !back.Steps[0].Done {
		t.Fatalf("round trip steps = %+v", back.Steps)
	}
}

func TestStepsProgress(t *testing.T) {
	s := Steps{{Done: true}, {Done: false}, {Done: true}}
	done, total := s.Progress()
	if done != 2 || total != 3 {
		t.Fatalf("Progress = %d/%d, want 2/3", done, total)
	}
}

func TestParseStepLine(t *testing.T) {
	cases := []struct {
		line string
		want Step
		ok   bool
	}{
		{"[x] plan", Step{Title: "plan", Done: true}, true},
		{"[X]ship", Step{Title: "ship", Done: true}, true},
		{"  [ ] draft ", Step{Title: "draft"}, true},
		{"review", Step{Title: "review"}, true},
		{"[x]  ", Step{Done: true}, false},
		{"", Step{}, false},
	}
	for _, c := range cases {
		got, ok := ParseStepLine(c.line)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseStepLine(%q) = %+v, %v; want %+v, %v", c.line, got, ok, c.want, c.ok)
		}
		if ok {
			if back, _ := ParseStepLine(got.String()); back != got {
				t.Errorf("%q does not read back: %+v", got.String(), back)
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate = %v", d)
	}
	if d.String() != "2024-03-01" {
		t.Errorf("String = %q", d.String())
	}

	ts, err := ParseDate("2024-03-01T12:30:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if ts.Compare(d) <= 0 {
		t.Error("timestamp should order after midnight of the same day")
	}

	if _, err := ParseDate("03/01/2024"); err == nil {
		t.Error("ParseDate accepted US layout")
	}
}

func TestDateJSONNull(t *testing.T) {
	var g Goal
	if err := json.Unmarshal([]byte(`{"id":1,"title":"t","endDate":null}`), &g); err != nil {
		t.Fatal(err)
	}
	if !g.EndDate.IsZero() {
		t.Errorf("EndDate = %v, want zero", g.EndDate)
	}
	data, _ := json.Marshal(g)
	if !strings.Contains(string(data), `"endDate":null`) {
		t.Errorf("zero date marshaled as %s", data)
	}
}

func TestGoalValidate(t *testing.T) {
	ok := Goal{Title: "Run 5k", Category: CategoryHealthFitness}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad := []Goal{
		{Title: "  ", Category: CategoryCareer},
		{Title: "x", Category: CategoryCareer, Completed: 101},
		{Title: "x", Category: CategoryCareer, Completed: -1},
		{Title: "x", Category: CategoryAll},
	}
	for _, g := range bad {
		if err := g.Validate(); !errors.Is(err, ErrInvalidGoal) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidGoal", g, err)
		}
	}
}

func TestParseTab(t *testing.T) {
	for in, want := range map[string]Tab{
		"":            TabAll,
		"in-progress": TabInProgress,
		"Not Started": TabNotStarted,
		"completed":   TabCompleted,
	} {
		got, err := ParseTab(in)
		if err != nil || got != want {
			t.Errorf("ParseTab(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if TabForBucket(BucketCompleted) != TabCompleted {
		t.Error("TabForBucket(Completed) mismatch")
	}
}
