package flights

import (
	"context"
	"sync"
	"testing"

	"github.com/tripmesh/tripmesh/a2a"
	"github.com/tripmesh/tripmesh/trip"
)

func query() trip.FlightQuery {
	return trip.FlightQuery{
		Origin:     "Berlin",
		Dest:       "Lisbon",
		StartDate:  "2025-11-10",
		EndDate:    "2025-11-14",
		Passengers: 2,
	}
}

func TestStubPair(t *testing.T) {
	got := Stub(query())
	if len(got) != 2 {
		t.Fatalf("expected outbound/inbound pair, got %d", len(got))
	}
	out, in := got[0], got[1]
	if out.Source != "Berlin" || out.Dest != "Lisbon" {
		t.Errorf("outbound %s -> %s", out.Source, out.Dest)
	}
	if in.Source != "Lisbon" || in.Dest != "Berlin" {
		t.Errorf("inbound %s -> %s", in.Source, in.Dest)
	}
	if out.DepartISO != "2025-11-10T09:40:00" {
		t.Errorf("outbound departs %s", out.DepartISO)
	}
	if in.DepartISO != "2025-11-14T18:05:00" {
		t.Errorf("inbound departs %s", in.DepartISO)
	}
	for _, f := range got {
		if err := trip.Validate(f); err != nil {
			t.Errorf("stub flight %s invalid: %v", f.FlightNo, err)
		}
	}
}

func TestSearchWithoutClient(t *testing.T) {
	svc := New(nil, "", nil)
	got := svc.Search(context.Background(), query())
	if len(got) != 2 {
		t.Fatalf("expected stub pair, got %d", len(got))
	}
	if got[0].FlightNo != "VY1885" || got[1].FlightNo != "U21834" {
		t.Errorf("flight numbers = %s, %s", got[0].FlightNo, got[1].FlightNo)
	}
}

func TestSearchConcurrent(t *testing.T) {
	svc := New(nil, "", nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := svc.Search(context.Background(), query()); len(got) != 2 {
				t.Errorf("concurrent search returned %d flights, want 2", len(got))
			}
		}()
	}
	wg.Wait()
}

func TestExecutorEmitsFlights(t *testing.T) {
	exec := NewExecutor(New(nil, "", nil))
	store := a2a.NewTaskStore()
	updater := a2a.NewTaskUpdater(store, "t1", "c1")
	rc := &a2a.RequestContext{Message: a2a.NewTextMessage("m1", query().String())}

	if err := exec.Execute(context.Background(), rc, updater); err != nil {
		t.Fatal(err)
	}
	raw, ok := updater.Task().Artifact("flights_json")
	if !ok {
		t.Fatal("missing flights_json artifact")
	}
	got, err := trip.UnwrapFlights(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 flights, got %d", len(got))
	}
}

func TestExecutorEmptyListOnBadQuery(t *testing.T) {
	exec := NewExecutor(New(nil, "", nil))
	store := a2a.NewTaskStore()
	updater := a2a.NewTaskUpdater(store, "t1", "c1")
	rc := &a2a.RequestContext{Message: a2a.NewTextMessage("m1", "find me some flights")}

	if err := exec.Execute(context.Background(), rc, updater); err != nil {
		t.Fatal(err)
	}
	task := updater.Task()
	if task.Status.State != a2a.TaskStateCompleted {
		t.Fatalf("state = %q, bad input must not fail the task", task.Status.State)
	}
	raw, _ := task.Artifact("flights_json")
	got, err := trip.UnwrapFlights(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d", len(got))
	}
}
