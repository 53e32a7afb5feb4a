package hotels

import (
	"context"
	"testing"

	"github.com/tripmesh/tripmesh/a2a"
	"github.com/tripmesh/tripmesh/trip"
)

func query() trip.HotelQuery {
	return trip.HotelQuery{
		City:     "Lisbon",
		Checkin:  "2025-11-10",
		Checkout: "2025-11-14",
	}
}

func TestStub(t *testing.T) {
	got := Stub(query())
	if len(got) != 3 {
		t.Fatalf("expected 3 sample hotels, got %d", len(got))
	}
	for _, h := range got {
		if h.CheckinISO != "2025-11-10T15:00:00" {
			t.Errorf("%s checkin = %s", h.Name, h.CheckinISO)
		}
		if err := trip.Validate(h); err != nil {
			t.Errorf("stub hotel %q invalid: %v", h.Name, err)
		}
	}
}

func TestStubFilters(t *testing.T) {
	q := query()
	q.MinRating = 4.5
	got := Stub(q)
	for _, h := range got {
		if h.Rating < 4.5 {
			t.Errorf("%s rating %v below minimum", h.Name, h.Rating)
		}
	}
	if len(got) != 2 {
		t.Errorf("expected 2 hotels at rating >= 4.5, got %d", len(got))
	}

	q = query()
	q.MaxTotalEUR = 500
	got = Stub(q)
	if len(got) != 1 || got[0].Name != "Lisbon Dreams Guesthouse" {
		t.Errorf("budget filter kept %d hotels", len(got))
	}
}

func TestExecutorEmitsHotels(t *testing.T) {
	exec := NewExecutor(New(nil, "", nil))
	store := a2a.NewTaskStore()
	updater := a2a.NewTaskUpdater(store, "t1", "c1")
	rc := &a2a.RequestContext{Message: a2a.NewTextMessage("m1", query().String())}

	if err := exec.Execute(context.Background(), rc, updater); err != nil {
		t.Fatal(err)
	}
	raw, ok := updater.Task().Artifact("hotels_json")
	if !ok {
		t.Fatal("missing hotels_json artifact")
	}
	got, err := trip.UnwrapHotels(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 hotels, got %d", len(got))
	}
}

func TestExecutorEmptyListOnBadQuery(t *testing.T) {
	exec := NewExecutor(New(nil, "", nil))
	store := a2a.NewTaskStore()
	updater := a2a.NewTaskUpdater(store, "t1", "c1")
	rc := &a2a.RequestContext{Message: a2a.NewTextMessage("m1", `{"city": "Lisbon"}`)}

	if err := exec.Execute(context.Background(), rc, updater); err != nil {
		t.Fatal(err)
	}
	raw, _ := updater.Task().Artifact("hotels_json")
	got, err := trip.UnwrapHotels(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d", len(got))
	}
}
