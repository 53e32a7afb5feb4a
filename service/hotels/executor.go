package hotels

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

// Execute answers with a hotels_json artifact. Unusable queries get an
// empty list rather than an error payload.
func (e *Executor) Execute(ctx context.Context, rc *a2a.RequestContext, updater *a2a.TaskUpdater) error {
	updater.StartWork()

	var query trip.HotelQuery
	if err := schema.DecodeLoose(rc.UserInput(), &query); err != nil || trip.Validate(query) != nil {
		updater.AddArtifact("hotels_json", a2a.TextPart(`{"hotels": []}`))
		updater.Complete(nil)
		return nil
	}

	list := trip.HotelList{Hotels: e.service.Search(ctx, query)}
	if list.Hotels == nil {
		list.Hotels = []trip.Hotel{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	updater.AddArtifact("hotels_json", a2a.TextPart(string(raw)))
	updater.Complete(nil)
	return nil
}

// Card describes the hotels agent.
func Card(url string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:               "HotelsAgent",
		Description:        "Searches hotel options for a city stay.",
		URL:                url,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []a2a.AgentSkill{
			{
				ID:          "search_hotels",
				Name:        "Search hotels",
				Description: "Returns hotel options for a city and date range.",
				Tags:        []string{"hotels", "travel"},
				Examples:    []string{`{"city": "Lisbon", "checkin": "2025-11-10", "checkout": "2025-11-14"}`},
			},
		},
	}
}
