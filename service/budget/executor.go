package budget

import (
	"context"

	"github.com/tripmesh/tripmesh/a2a"
	"github.com/tripmesh/tripmesh/schema"
	"github.com/tripmesh/tripmesh/trip"
)

// Defaults when the inbound payload is unusable.
const (
	defaultBudgetEUR  = 2500
	defaultPassengers = 1
)

// Executor adapts the service to the agent protocol.
type Executor struct {
	service *Service
}

// NewExecutor wraps the service.
func NewExecutor(service *Service) *Executor {
	return &Executor{service: service}
}

// Execute parses the inbound budget query, tolerating free text around the
// JSON, and answers with a budget_json artifact.
func (e *Executor) Execute(ctx context.Context, rc *a2a.RequestContext, updater *a2a.TaskUpdater) error {
	updater.StartWork()

	var query trip.BudgetQuery
	if err := schema.DecodeLoose(rc.UserInput(), &query); err != nil || query.TotalBudgetEUR <= 0 {
		query = trip.BudgetQuery{TotalBudgetEUR: defaultBudgetEUR, Passengers: defaultPassengers}
	}

	plan := e.service.Plan(ctx, query)
	updater.AddArtifact("budget_json", a2a.TextPart(plan.String()))
	updater.Complete(nil)
	return nil
}

// Card describes the budget agent.
func Card(url string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:               "BudgetAgent",
		Description:        "Splits a total trip budget into flight, hotel and activity caps.",
		URL:                url,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []a2a.AgentSkill{
			{
				ID:          "allocate_budget",
				Name:        "Allocate budget",
				Description: "Returns per-category spending caps for a total budget and passenger count.",
				Tags:        []string{"budget", "travel"},
				Examples:    []string{`{"total_budget_eur": 2500, "passengers": 2}`},
			},
		},
	}
}
