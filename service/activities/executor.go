package activities

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

// Execute answers with an activities_json artifact. Unusable queries get
// an empty list rather than an error payload.
func (e *Executor) Execute(ctx context.Context, rc *a2a.RequestContext, updater *a2a.TaskUpdater) error {
	updater.StartWork()

	var query trip.ActivityQuery
	if err := schema.DecodeLoose(rc.UserInput(), &query); err != nil || trip.Validate(query) != nil {
		updater.AddArtifact("activities_json", a2a.TextPart(`{"items": []}`))
		updater.Complete(nil)
		return nil
	}

	list := trip.ActivityList{Items: e.service.Search(ctx, query)}
	if list.Items == nil {
		list.Items = []trip.Activity{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	updater.AddArtifact("activities_json", a2a.TextPart(string(raw)))
	updater.Complete(nil)
	return nil
}

// Card describes the activities agent.
func Card(url string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:               "ActivitiesAgent",
		Description:        "Searches bookable activities and tours for a city trip.",
		URL:                url,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []a2a.AgentSkill{
			{
				ID:          "search_activities",
				Name:        "Search activities",
				Description: "Returns activity options for a city and date range.",
				Tags:        []string{"activities", "travel"},
				Examples:    []string{`{"city": "Lisbon", "date_from": "2025-11-10", "date_to": "2025-11-14", "categories": ["food tour"]}`},
			},
		},
	}
}
