package activities

import (
	"context"
	"testing"

	"github.com/tripmesh/tripmesh/a2a"
	"github.com/tripmesh/tripmesh/trip"
)

func query() trip.ActivityQuery {
	return trip.ActivityQuery{
		City:     "Lisbon",
		DateFrom: "2025-11-11",
		DateTo:   "2025-11-13",
	}
}

func TestStubSpreadsOverDays(t *testing.T) {
	got := Stub(query())
	if len(got) != 9 {
		t.Fatalf("expected 3 activities per day over 3 days, got %d", len(got))
	}
	byDay := make(map[string]int)
	for _, a := range got {
		byDay[a.DateISO]++
		if err := trip.Validate(a); err != nil {
			t.Errorf("stub activity %q invalid: %v", a.Title, err)
		}
	}
	for _, day := range []string{"2025-11-11", "2025-11-12", "2025-11-13"} {
		if byDay[day] != 3 {
			t.Errorf("day %s has %d activities, want 3", day, byDay[day])
		}
	}
}

func TestStubFilters(t *testing.T) {
	q := query()
	q.Categories = []string{"food tour"}
	for _, a := range Stub(q) {
		if a.Category != "food tour" {
			t.Errorf("category filter leaked %q", a.Category)
		}
	}

	q = query()
	q.MinRating = 4.7
	for _, a := range Stub(q) {
		if a.Rating < 4.7 {
			t.Errorf("%q rating %v below minimum", a.Title, a.Rating)
		}
	}

	q = query()
	q.MaxPriceEUR = 30
	for _, a := range Stub(q) {
		if a.PriceEUR > 30 {
			t.Errorf("%q price %v over maximum", a.Title, a.PriceEUR)
		}
	}
}

func TestStubBadDates(t *testing.T) {
	q := query()
	q.DateFrom = "next tuesday"
	if got := Stub(q); got != nil {
		t.Errorf("expected nil for unparseable dates, got %d items", len(got))
	}
}

func TestExecutorEmitsActivities(t *testing.T) {
	exec := NewExecutor(New(nil, "", nil))
	store := a2a.NewTaskStore()
	updater := a2a.NewTaskUpdater(store, "t1", "c1")
	rc := &a2a.RequestContext{Message: a2a.NewTextMessage("m1", query().String())}

	if err := exec.Execute(context.Background(), rc, updater); err != nil {
		t.Fatal(err)
	}
	raw, ok := updater.Task().Artifact("activities_json")
	if !ok {
		t.Fatal("missing activities_json artifact")
	}
	got, err := trip.UnwrapActivities(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 9 {
		t.Errorf("expected 9 activities, got %d", len(got))
	}
}

func TestExecutorEmptyListOnBadQuery(t *testing.T) {
	exec := NewExecutor(New(nil, "", nil))
	store := a2a.NewTaskStore()
	updater := a2a.NewTaskUpdater(store, "t1", "c1")
	rc := &a2a.RequestContext{Message: a2a.NewTextMessage("m1", "what can we do in Lisbon?")}

	if err := exec.Execute(context.Background(), rc, updater); err != nil {
		t.Fatal(err)
	}
	raw, _ := updater.Task().Artifact("activities_json")
	got, err := trip.UnwrapActivities(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d", len(got))
	}
}
