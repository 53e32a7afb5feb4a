// Package hotels implements the hotel search agent.
package hotels

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

// Service answers hotel queries: model-backed when a client is configured,
// deterministic sample data otherwise.
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
func (s *Service) newAgent() *agents.Agent[trip.HotelQuery, trip.HotelList] {
	return agents.NewAgent[trip.HotelQuery, trip.HotelList](
		agents.WithClient(s.client),
		agents.WithModel(s.model),
		agents.WithTemperature(0.3),
		agents.WithMaxTokens(2048),
		agents.WithName("HotelsAgent"),
		agents.WithSystemPromptGenerator(cot.New(
			cot.WithBackground([]string{
				"You are a hotel search assistant.",
				"You find realistic hotel options for a city stay.",
			}),
			cot.WithSteps([]string{
				"Propose two to four hotels for the stay dates.",
				"Respect the minimum rating, preferred style, walkability and total budget when given.",
				"Use realistic names, districts, guest ratings and total EUR prices for the city.",
			}),
			cot.WithOutputInstructs([]string{
				"Respond with a JSON object {\"hotels\": [...]}.",
				"Each hotel needs name, address, checkin_iso, checkout_iso, rating and price_total_eur.",
				"Use ISO 8601 local times without timezone suffixes.",
				"Output no text outside the JSON object.",
			}),
		)),
	)
}

// Search returns hotel options for the query. Failures degrade to the
// deterministic sample set, invalid records are dropped.
func (s *Service) Search(ctx context.Context, query trip.HotelQuery) []trip.Hotel {
	if !s.live {
		return Stub(query)
	}

	agent := s.newAgent()
	style := query.Style
	if style == "" {
		style = "well reviewed"
	}
	if notes := s.researcher.Gather(ctx,
		fmt.Sprintf("%s hotels %s %s to %s", style, query.City, query.Checkin, query.Checkout),
	); !notes.Empty() {
		agent.RegisterSystemPromptContextProvider(notes)
	}

	var (
		list    trip.HotelList
		apiResp components.ApiResponse
	)
	if err := agent.Run(ctx, &query, &list, &apiResp); err != nil {
		log.Printf("[hotels] model call failed, serving sample data: %v", err)
		return Stub(query)
	}

	valid := make([]trip.Hotel, 0, len(list.Hotels))
	for _, h := range list.Hotels {
		if err := trip.Validate(h); err != nil {
			log.Printf("[hotels] dropping invalid hotel %q: %v", h.Name, err)
			continue
		}
		valid = append(valid, h)
	}
	return valid
}

// Stub returns fixed sample hotels used when no model key is configured.
func Stub(query trip.HotelQuery) []trip.Hotel {
	checkin := query.Checkin + "T15:00:00"
	checkout := query.Checkout + "T11:00:00"
	hotels := []trip.Hotel{
		{
			Name:          "Casa Balthazar",
			Address:       "Rua do Duque 26, " + query.City,
			CheckinISO:    checkin,
			CheckoutISO:   checkout,
			Rating:        4.7,
			PriceTotalEUR: 640,
			District:      "Chiado",
		},
		{
			Name:          "Hotel da Baixa",
			Address:       "Rua da Prata 231, " + query.City,
			CheckinISO:    checkin,
			CheckoutISO:   checkout,
			Rating:        4.6,
			PriceTotalEUR: 720,
			District:      "Baixa",
		},
		{
			Name:          "Lisbon Dreams Guesthouse",
			Address:       "Rua Rodrigo da Fonseca 29, " + query.City,
			CheckinISO:    checkin,
			CheckoutISO:   checkout,
			Rating:        4.3,
			PriceTotalEUR: 420,
			District:      "Amoreiras",
		},
	}

	filtered := hotels[:0]
	for _, h := range hotels {
		if query.MinRating > 0 && h.Rating < query.MinRating {
			continue
		}
		if query.MaxTotalEUR > 0 && h.PriceTotalEUR > query.MaxTotalEUR {
			continue
		}
		filtered = append(filtered, h)
	}
	return filtered
}
