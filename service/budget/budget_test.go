package budget

import (
	"context"
	"testing"

	"github.com/tripmesh/tripmesh/a2a"
	"github.com/tripmesh/tripmesh/trip"
)

func TestAllocateSolo(t *testing.T) {
	plan := Allocate(2000, 1)
	if plan.FlightCapEUR != 900 {
		t.Errorf("flight cap = %v, want 900", plan.FlightCapEUR)
	}
	if plan.HotelCapEUR != 800 {
		t.Errorf("hotel cap = %v, want 800", plan.HotelCapEUR)
	}
	if plan.ActivitiesCapEUR != 300 {
		t.Errorf("activities cap = %v, want 300", plan.ActivitiesCapEUR)
	}
}

func TestAllocateGroup(t *testing.T) {
	plan := Allocate(2500, 2)
	if plan.FlightCapEUR != 1125 {
		t.Errorf("flight cap = %v, want 1125", plan.FlightCapEUR)
	}
	if plan.HotelCapEUR != 950 {
		t.Errorf("hotel cap = %v, want 950 (5%% trim)", plan.HotelCapEUR)
	}
	if plan.ActivitiesCapEUR != 412.5 {
		t.Errorf("activities cap = %v, want 412.5 (10%% raise)", plan.ActivitiesCapEUR)
	}
}

func TestServiceWithoutClient(t *testing.T) {
	svc := New(nil, "")
	plan := svc.Plan(context.Background(), trip.BudgetQuery{TotalBudgetEUR: 1000, Passengers: 1})
	if plan.FlightCapEUR != 450 {
		t.Errorf("flight cap = %v, want deterministic 450", plan.FlightCapEUR)
	}
}

func TestExecutorParsesQuery(t *testing.T) {
	exec := NewExecutor(New(nil, ""))
	store := a2a.NewTaskStore()
	updater := a2a.NewTaskUpdater(store, "t1", "c1")
	rc := &a2a.RequestContext{
		Message: a2a.NewTextMessage("m1", `{"total_budget_eur": 2000, "passengers": 1}`),
		TaskID:  "t1",
	}

	if err := exec.Execute(context.Background(), rc, updater); err != nil {
		t.Fatal(err)
	}
	task := updater.Task()
	if task.Status.State != a2a.TaskStateCompleted {
		t.Fatalf("state = %q", task.Status.State)
	}
	raw, ok := task.Artifact("budget_json")
	if !ok {
		t.Fatal("missing budget_json artifact")
	}
	plan, err := trip.UnwrapBudget(raw)
	if err != nil {
		t.Fatal(err)
	}
	if plan.FlightCapEUR != 900 {
		t.Errorf("flight cap = %v, want 900", plan.FlightCapEUR)
	}
}

func TestExecutorDefaultsOnGarbage(t *testing.T) {
	exec := NewExecutor(New(nil, ""))
	store := a2a.NewTaskStore()
	updater := a2a.NewTaskUpdater(store, "t1", "c1")
	rc := &a2a.RequestContext{Message: a2a.NewTextMessage("m1", "plan my budget please")}

	if err := exec.Execute(context.Background(), rc, updater); err != nil {
		t.Fatal(err)
	}
	raw, _ := updater.Task().Artifact("budget_json")
	plan, err := trip.UnwrapBudget(raw)
	if err != nil {
		t.Fatal(err)
	}
	if plan.FlightCapEUR != 1125 {
		t.Errorf("flight cap = %v, want default 2500 split", plan.FlightCapEUR)
	}
}
