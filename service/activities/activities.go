// Package activities implements the activities search agent.
package activities

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bububa/instructor-go/pkg/instructor"

	"github.com/tripmesh/tripmesh/agents"
	"github.com/tripmesh/tripmesh/components"
	"github.com/tripmesh/tripmesh/components/systemprompt/cot"
	"github.com/tripmesh/tripmesh/service/research"
	"github.com/tripmesh/tripmesh/trip"
)

// Service answers activity queries: model-backed when a client is
// configured, deterministic sample data otherwise.
type Service struct {
	client     instructor.Instructor
	model      string
	researcher *research.Researcher
	live       bool
}

// New builds the service. A nil client keeps it serving sample data.
func New(clt instructor.Instructor, model string, researcher *research.Researcher) *Service {
	return &Service{client: clt, model: model, researcher: researcher, live: clt != nil}
}

// newAgent builds a fresh agent per request; prompt context providers and
// chat memory are never shared between concurrent queries.
func (s *Service) newAgent() *agents.Agent[trip.ActivityQuery, trip.ActivityList] {
	return agents.NewAgent[trip.ActivityQuery, trip.ActivityList](
		agents.WithClient(s.client),
		agents.WithModel(s.model),
		agents.WithTemperature(0.3),
		agents.WithMaxTokens(2048),
		agents.WithName("ActivitiesAgent"),
		agents.WithSystemPromptGenerator(cot.New(
			cot.WithBackground([]string{
				"You are an activities and tours assistant.",
				"You find bookable activities for a city trip, spread over the requested dates.",
			}),
			cot.WithSteps([]string{
				"Propose two to three activities per trip day across morning, afternoon and evening start times.",
				"Stay within the requested categories, minimum rating and maximum price when given.",
				"Use realistic titles, local start times and EUR prices per person.",
			}),
			cot.WithOutputInstructs([]string{
				"Respond with a JSON object {\"items\": [...]}.",
				"Each item needs title, date_iso, start_local, price_eur, category and rating.",
				"Dates are YYYY-MM-DD, start times HH:MM local.",
				"Output no text outside the JSON object.",
			}),
		)),
	)
}

// Search returns activity options for the query. Failures degrade to the
// deterministic sample set, invalid records are dropped.
func (s *Service) Search(ctx context.Context, query trip.ActivityQuery) []trip.Activity {
	if !s.live {
		return Stub(query)
	}

	agent := s.newAgent()
	if notes := s.researcher.Gather(ctx,
		fmt.Sprintf("things to do in %s %s", query.City, strings.Join(query.Categories, " ")),
	); !notes.Empty() {
		agent.RegisterSystemPromptContextProvider(notes)
	}

	var (
		list    trip.ActivityList
		apiResp components.ApiResponse
	)
	if err := agent.Run(ctx, &query, &list, &apiResp); err != nil {
		log.Printf("[activities] model call failed, serving sample data: %v", err)
		return Stub(query)
	}

	valid := make([]trip.Activity, 0, len(list.Items))
	for _, a := range list.Items {
		if err := trip.Validate(a); err != nil {
			log.Printf("[activities] dropping invalid activity %q: %v", a.Title, err)
			continue
		}
		valid = append(valid, a)
	}
	return valid
}

// Sample catalog rotated across the trip days.
var catalog = []trip.Activity{
	{Title: "Old town food tour", StartLocal: "10:00", PriceEUR: 55, Category: "food tour", Rating: 4.8},
	{Title: "Historic center walking tour", StartLocal: "09:30", PriceEUR: 25, Category: "walking tour", Rating: 4.6},
	{Title: "National museum visit", StartLocal: "14:30", PriceEUR: 12, Category: "museum", Rating: 4.6},
	{Title: "Sunset viewpoint walk", StartLocal: "17:30", PriceEUR: 0, Category: "viewpoint", Rating: 4.7},
	{Title: "Riverside market tasting", StartLocal: "13:00", PriceEUR: 38, Category: "food tour", Rating: 4.5},
	{Title: "Evening fado concert", StartLocal: "20:00", PriceEUR: 45, Category: "viewpoint", Rating: 4.7},
}

// Stub spreads sample activities over the requested dates, honoring the
// category, rating and price filters.
func Stub(query trip.ActivityQuery) []trip.Activity {
	from, err := time.Parse(trip.DateLayout, query.DateFrom)
	if err != nil {
		return nil
	}
	to, err := time.Parse(trip.DateLayout, query.DateTo)
	if err != nil {
		return nil
	}

	wanted := make(map[string]struct{}, len(query.Categories))
	for _, c := range query.Categories {
		wanted[strings.ToLower(c)] = struct{}{}
	}

	var out []trip.Activity
	idx := 0
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		for n := 0; n < 3; n++ {
			a := catalog[idx%len(catalog)]
			idx++
			if len(wanted) > 0 {
				if _, ok := wanted[a.Category]; !ok {
					continue
				}
			}
			if query.MinRating > 0 && a.Rating < query.MinRating {
				continue
			}
			if query.MaxPriceEUR > 0 && a.PriceEUR > query.MaxPriceEUR {
				continue
			}
			a.DateISO = cur.Format(trip.DateLayout)
			out = append(out, a)
		}
	}
	return out
}
