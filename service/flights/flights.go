// Package flights implements the flight search agent.
package flights

import (
	"context"
	"fmt"
	"log"

	"github.com/bububa/instructor-go/pkg/instructor"

	"github.com/tripmesh/tripmesh/agents"
	"github.com/tripmesh/tripmesh/components"
	"github.com/tripmesh/tripmesh/components/systemprompt/cot"
	"github.com/tripmesh/tripmesh/service/research"
	"github.com/tripmesh/tripmesh/trip"
)

// Service answers flight queries: model-backed when a client is
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
func (s *Service) newAgent() *agents.Agent[trip.FlightQuery, trip.FlightList] {
	return agents.NewAgent[trip.FlightQuery, trip.FlightList](
		agents.WithClient(s.client),
		agents.WithModel(s.model),
		agents.WithTemperature(0.3),
		agents.WithMaxTokens(2048),
		agents.WithName("FlightsAgent"),
		agents.WithSystemPromptGenerator(cot.New(
			cot.WithBackground([]string{
				"You are a flight search assistant.",
				"You find realistic round-trip flight options between two European cities.",
			}),
			cot.WithSteps([]string{
				"Propose two to four options per direction on the requested dates.",
				"Respect the passenger preferences: no red-eye flights and earliest departure times when given.",
				"Use realistic airlines, flight numbers, durations and EUR prices for the route.",
			}),
			cot.WithOutputInstructs([]string{
				"Respond with a JSON object {\"flights\": [...]}.",
				"Each flight needs source, dest, depart_iso, arrive_iso, airline, flight_no, duration_min and price_eur.",
				"Use ISO 8601 local times without timezone suffixes.",
				"Output no text outside the JSON object.",
			}),
		)),
	)
}

// Search returns flight options for the query. Failures degrade to the
// deterministic sample pair, invalid records are dropped.
func (s *Service) Search(ctx context.Context, query trip.FlightQuery) []trip.Flight {
	if !s.live {
		return Stub(query)
	}

	agent := s.newAgent()
	if notes := s.researcher.Gather(ctx,
		fmt.Sprintf("flights %s to %s %s", query.Origin, query.Dest, query.StartDate),
		fmt.Sprintf("flights %s to %s %s", query.Dest, query.Origin, query.EndDate),
	); !notes.Empty() {
		agent.RegisterSystemPromptContextProvider(notes)
	}

	var (
		list    trip.FlightList
		apiResp components.ApiResponse
	)
	if err := agent.Run(ctx, &query, &list, &apiResp); err != nil {
		log.Printf("[flights] model call failed, serving sample data: %v", err)
		return Stub(query)
	}

	valid := make([]trip.Flight, 0, len(list.Flights))
	for _, f := range list.Flights {
		if err := trip.Validate(f); err != nil {
			log.Printf("[flights] dropping invalid flight %s %s: %v", f.Airline, f.FlightNo, err)
			continue
		}
		valid = append(valid, f)
	}
	return valid
}

// Stub returns the fixed sample pair used when no model key is configured.
func Stub(query trip.FlightQuery) []trip.Flight {
	return []trip.Flight{
		{
			Source:      query.Origin,
			Dest:        query.Dest,
			DepartISO:   query.StartDate + "T09:40:00",
			ArriveISO:   query.StartDate + "T11:55:00",
			Airline:     "Vueling",
			FlightNo:    "VY1885",
			DurationMin: 195,
			PriceEUR:    129,
			Cabin:       "Economy",
		},
		{
			Source:      query.Dest,
			Dest:        query.Origin,
			DepartISO:   query.EndDate + "T18:05:00",
			ArriveISO:   query.EndDate + "T22:10:00",
			Airline:     "easyJet",
			FlightNo:    "U21834",
			DurationMin: 185,
			PriceEUR:    114,
			Cabin:       "Economy",
		},
	}
}
