package flights

import (
	"context"
	"encoding/json"

	"github.com/tripmesh/tripmesh/a2a"
	"github.com/tripmesh/tripmesh/schema"
	"github.com/tripmesh/tripmesh/trip"
)

// Executor adapts the service to the agent protocol.
type Executor struct {
	service *Service
}

// NewExecutor wraps the service.
func NewExecutor(service *Service) *Executor {
	return &Executor{service: service}
}

// Execute answers with a flights_json artifact. Unusable queries get an
// empty list rather than an error payload.
func (e *Executor) Execute(ctx context.Context, rc *a2a.RequestContext, updater *a2a.TaskUpdater) error {
	updater.StartWork()

	var query trip.FlightQuery
	if err := schema.DecodeLoose(rc.UserInput(), &query); err != nil || trip.Validate(query) != nil {
		updater.AddArtifact("flights_json", a2a.TextPart(`{"flights": []}`))
		updater.Complete(nil)
		return nil
	}

	list := trip.FlightList{Flights: e.service.Search(ctx, query)}
	if list.Flights == nil {
		list.Flights = []trip.Flight{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	updater.AddArtifact("flights_json", a2a.TextPart(string(raw)))
	updater.Complete(nil)
	return nil
}

// Card describes the flights agent.
func Card(url string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:               "FlightsAgent",
		Description:        "Searches round-trip flight options between two cities.",
		URL:                url,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []a2a.AgentSkill{
			{
				ID:          "search_flights",
				Name:        "Search flights",
				Description: "Returns flight options for an origin, destination and date pair.",
				Tags:        []string{"flights", "travel"},
				Examples:    []string{`{"origin": "Berlin", "dest": "Lisbon", "start_date": "2025-11-10", "end_date": "2025-11-14"}`},
			},
		},
	}
}
