package host

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tripmesh/tripmesh/a2a"
	"github.com/tripmesh/tripmesh/planner"
	"github.com/tripmesh/tripmesh/service/activities"
	"github.com/tripmesh/tripmesh/service/budget"
	"github.com/tripmesh/tripmesh/service/flights"
	"github.com/tripmesh/tripmesh/service/hotels"
	"github.com/tripmesh/tripmesh/trip"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// startRemotes spins up the four specialist agents in deterministic mode.
func startRemotes(t *testing.T) map[string]*a2a.Client {
	t.Helper()
	servers := map[string]*a2a.Server{
		RemoteBudget:     a2a.NewServer(budget.Card(""), budget.NewExecutor(budget.New(nil, ""))),
		RemoteFlights:    a2a.NewServer(flights.Card(""), flights.NewExecutor(flights.New(nil, "", nil))),
		RemoteHotels:     a2a.NewServer(hotels.Card(""), hotels.NewExecutor(hotels.New(nil, "", nil))),
		RemoteActivities: a2a.NewServer(activities.Card(""), activities.NewExecutor(activities.New(nil, "", nil))),
	}
	remotes := make(map[string]*a2a.Client, len(servers))
	for name, srv := range servers {
		ts := httptest.NewServer(srv.Router())
		t.Cleanup(ts.Close)
		remotes[name] = a2a.NewClient(ts.URL)
	}
	return remotes
}

func newTestHost(t *testing.T) *Host {
	h := New(startRemotes(t), NewParser(nil, ""))
	h.InitRemotes(context.Background())
	return h
}

func runExecutor(t *testing.T, exec *Executor, store *a2a.TaskStore, contextID, text string) *a2a.Task {
	t.Helper()
	updater := a2a.NewTaskUpdater(store, "task-"+text[:min(8, len(text))], contextID)
	rc := &a2a.RequestContext{
		Message:   a2a.NewTextMessage("m1", text),
		ContextID: contextID,
	}
	if err := exec.Execute(context.Background(), rc, updater); err != nil {
		t.Fatal(err)
	}
	return updater.Task()
}

func TestPlanAndBookFlow(t *testing.T) {
	h := newTestHost(t)
	exec := NewExecutor(h)
	store := a2a.NewTaskStore()

	task := runExecutor(t, exec, store, "ctx-1",
		"Plan a trip from Berlin to Lisbon, walkable boutique hotel, no red-eye flights.")
	if task.Status.State != a2a.TaskStateCompleted {
		t.Fatalf("plan state = %q", task.Status.State)
	}
	raw, ok := task.Artifact("candidate_itineraries_json")
	if !ok {
		t.Fatal("missing candidate_itineraries_json artifact")
	}
	var cands []trip.Itinerary
	if err := json.Unmarshal([]byte(raw), &cands); err != nil {
		t.Fatal(err)
	}
	if len(cands) == 0 || len(cands) > 3 {
		t.Fatalf("candidate count = %d", len(cands))
	}
	for i := 1; i < len(cands); i++ {
		if cands[i-1].Score < cands[i].Score {
			t.Error("candidates not ranked by score")
		}
	}
	if task.Status.Message == nil || !strings.Contains(task.Status.Message.Text(), "Option 1:") {
		t.Error("expected a ranked options message")
	}

	booked := runExecutor(t, exec, store, "ctx-1", "please book option 1")
	if booked.Status.State != a2a.TaskStateCompleted {
		t.Fatalf("book state = %q", booked.Status.State)
	}
	confRaw, ok := booked.Artifact("booking_confirmation_json")
	if !ok {
		t.Fatal("missing booking_confirmation_json artifact")
	}
	var conf planner.Confirmation
	if err := json.Unmarshal([]byte(confRaw), &conf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(conf.FlightConfirm, "FL-") || !strings.HasPrefix(conf.HotelConfirm, "HT-") {
		t.Errorf("confirmations = %q, %q", conf.FlightConfirm, conf.HotelConfirm)
	}
	if conf.Itinerary.Summary != cands[0].Summary {
		t.Errorf("booked %q, want top candidate %q", conf.Itinerary.Summary, cands[0].Summary)
	}
	bookedCount := 0
	for _, d := range conf.Itinerary.Days {
		bookedCount += len(d.BookedActivities)
	}
	if conf.ActivitiesCount != bookedCount {
		t.Errorf("activities_count = %d, want %d", conf.ActivitiesCount, bookedCount)
	}
}

func TestBookWithoutCandidates(t *testing.T) {
	exec := NewExecutor(newTestHost(t))
	task := runExecutor(t, exec, a2a.NewTaskStore(), "ctx-fresh", "book option 2")
	if task.Status.State != a2a.TaskStateInputRequired {
		t.Fatalf("state = %q, want input_required", task.Status.State)
	}
}

func TestBookOutOfRange(t *testing.T) {
	exec := NewExecutor(newTestHost(t))
	store := a2a.NewTaskStore()
	runExecutor(t, exec, store, "ctx-2", "Trip to Lisbon please")

	task := runExecutor(t, exec, store, "ctx-2", "book option 9")
	if task.Status.State != a2a.TaskStateInputRequired {
		t.Fatalf("state = %q, want input_required", task.Status.State)
	}
	if task.Status.Message == nil || !strings.Contains(task.Status.Message.Text(), "Pick an option") {
		t.Error("expected guidance about the valid option range")
	}
}

func TestPlanOverTightBudgetAsksForInput(t *testing.T) {
	h := New(startRemotes(t), NewParser(nil, ""))
	exec := NewExecutor(h)

	// Heuristic parser defaults the budget, so force a tiny one directly.
	req := trip.TripRequest{
		Origin: "Berlin", Dest: "Lisbon",
		StartDate: "2025-11-10", EndDate: "2025-11-14",
		Passengers: 2, BudgetEUR: 100,
	}
	cands := h.Plan(context.Background(), "ctx-3", req)
	if len(cands) != 0 {
		t.Fatalf("expected no candidates under a €100 budget, got %d", len(cands))
	}

	task := runExecutor(t, exec, a2a.NewTaskStore(), "ctx-3", "book option 1")
	if task.Status.State != a2a.TaskStateInputRequired {
		t.Errorf("state = %q, want input_required", task.Status.State)
	}
}

func TestListAgents(t *testing.T) {
	exec := NewExecutor(newTestHost(t))
	task := runExecutor(t, exec, a2a.NewTaskStore(), "ctx-list", "which agents are available?")
	if task.Status.State != a2a.TaskStateCompleted {
		t.Fatalf("state = %q", task.Status.State)
	}
	raw, ok := task.Artifact("remote_agents_json")
	if !ok {
		t.Fatal("missing remote_agents_json artifact")
	}
	var cards map[string]a2a.AgentCard
	if err := json.Unmarshal([]byte(raw), &cards); err != nil {
		t.Fatal(err)
	}
	if len(cards) != 4 {
		t.Errorf("connected agents = %d, want 4", len(cards))
	}
	if cards[RemoteBudget].Name != "BudgetAgent" {
		t.Errorf("budget card = %q", cards[RemoteBudget].Name)
	}
	if task.Status.Message == nil || !strings.Contains(task.Status.Message.Text(), "FlightsAgent") {
		t.Error("expected the roster message to name the flights agent")
	}
}

func TestPlanConcurrentContexts(t *testing.T) {
	h := newTestHost(t)
	exec := NewExecutor(h)
	store := a2a.NewTaskStore()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		contextID := fmt.Sprintf("ctx-par-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			updater := a2a.NewTaskUpdater(store, "task-"+contextID, contextID)
			rc := &a2a.RequestContext{
				Message:   a2a.NewTextMessage("m1", "Trip to Lisbon, walkable please"),
				ContextID: contextID,
			}
			if err := exec.Execute(context.Background(), rc, updater); err != nil {
				t.Error(err)
				return
			}
			if state := updater.Task().Status.State; state != a2a.TaskStateCompleted {
				t.Errorf("context %s state = %q", contextID, state)
			}
		}()
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		contextID := fmt.Sprintf("ctx-par-%d", i)
		if len(h.Candidates(contextID)) == 0 {
			t.Errorf("context %s retained no candidates", contextID)
		}
	}
}

func TestHeuristicParse(t *testing.T) {
	p := NewParser(nil, "")
	req := p.Parse(context.Background(), "somewhere walkable, boutique if possible, avoid red-eye flights")
	if !req.Prefs.Walkable || !req.Prefs.Boutique || !req.Prefs.NoRedeye {
		t.Errorf("prefs = %+v", req.Prefs)
	}
	if req.Origin != "Berlin" || req.Dest != "Lisbon" {
		t.Errorf("route = %s -> %s, want defaults", req.Origin, req.Dest)
	}
	if req.Passengers != 2 || req.BudgetEUR != 2500 {
		t.Errorf("passengers = %d budget = %v, want defaults", req.Passengers, req.BudgetEUR)
	}
	if req.StartDate != "2025-11-10" || req.EndDate != "2025-11-14" {
		t.Errorf("dates = %s..%s, want defaults", req.StartDate, req.EndDate)
	}
}
