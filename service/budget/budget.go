// Package budget implements the budget policy agent: it splits a total
// trip budget into per-category caps.
package budget

import (
	"context"
	"log"
	"math"

	"github.com/bububa/instructor-go/pkg/instructor"

	"github.com/tripmesh/tripmesh/agents"
	"github.com/tripmesh/tripmesh/components"
	"github.com/tripmesh/tripmesh/components/systemprompt/cot"
	"github.com/tripmesh/tripmesh/trip"
)

// Baseline split of the total budget.
const (
	flightShare     = 0.45
	hotelShare      = 0.40
	activitiesShare = 0.15
)

// Allocate splits the budget 45% flights / 40% hotel / 15% activities.
// Groups of two or more get 10% more activities headroom and trade 5%
// off the hotel cap.
func Allocate(totalEUR float64, passengers int) trip.BudgetPlan {
	if totalEUR <= 0 {
		totalEUR = 0
	}
	flightCap := totalEUR * flightShare
	hotelCap := totalEUR * hotelShare
	activitiesCap := totalEUR * activitiesShare
	notes := "Solo split: 45% flights, 40% hotel, 15% activities."
	if passengers >= 2 {
		activitiesCap *= 1.10
		hotelCap *= 0.95
		notes = "Group split: activities raised 10%, hotel trimmed 5%."
	}
	return trip.BudgetPlan{
		FlightCapEUR:     round2(flightCap),
		HotelCapEUR:      round2(hotelCap),
		ActivitiesCapEUR: round2(activitiesCap),
		Notes:            notes,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Service answers budget queries, via the model when one is configured and
// by the deterministic split otherwise.
type Service struct {
	client instructor.Instructor
	model  string
	live   bool
}

// New builds the service. A nil client keeps it in deterministic mode.
func New(clt instructor.Instructor, model string) *Service {
	return &Service{client: clt, model: model, live: clt != nil}
}

// newAgent builds a fresh agent per request so concurrent queries never
// share chat memory.
func (s *Service) newAgent() *agents.Agent[trip.BudgetQuery, trip.BudgetPlan] {
	return agents.NewAgent[trip.BudgetQuery, trip.BudgetPlan](
		agents.WithClient(s.client),
		agents.WithModel(s.model),
		agents.WithTemperature(0.2),
		agents.WithMaxTokens(1024),
		agents.WithName("BudgetAgent"),
		agents.WithSystemPromptGenerator(cot.New(
			cot.WithBackground([]string{
				"You are a travel budget policy assistant.",
				"You split a total trip budget in EUR into caps for flights, hotel and activities.",
			}),
			cot.WithSteps([]string{
				"Start from 45% flights, 40% hotel, 15% activities.",
				"For two or more passengers, raise the activities cap by 10% and trim the hotel cap by 5%.",
				"Round every cap to whole cents.",
			}),
			cot.WithOutputInstructs([]string{
				"Respond with a single JSON object with keys flight_cap_eur, hotel_cap_eur, activities_cap_eur and notes.",
				"Output no text outside the JSON object.",
			}),
		)),
	)
}

// Plan produces the budget caps for a query.
func (s *Service) Plan(ctx context.Context, query trip.BudgetQuery) trip.BudgetPlan {
	if query.Passengers < 1 {
		query.Passengers = 1
	}
	if !s.live {
		return Allocate(query.TotalBudgetEUR, query.Passengers)
	}
	var (
		plan    trip.BudgetPlan
		apiResp components.ApiResponse
	)
	if err := s.newAgent().Run(ctx, &query, &plan, &apiResp); err != nil {
		log.Printf("[budget] model call failed, using deterministic split: %v", err)
		return Allocate(query.TotalBudgetEUR, query.Passengers)
	}
	if plan.FlightCapEUR <= 0 && plan.HotelCapEUR <= 0 {
		return Allocate(query.TotalBudgetEUR, query.Passengers)
	}
	return plan
}
