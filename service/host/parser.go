package host

import (
	"context"
	"log"
	"strings"

	"github.com/bububa/instructor-go/pkg/instructor"

	"github.com/tripmesh/tripmesh/agents"
	"github.com/tripmesh/tripmesh/components"
	"github.com/tripmesh/tripmesh/components/systemprompt/simple"
	"github.com/tripmesh/tripmesh/schema"
	"github.com/tripmesh/tripmesh/trip"
)

// Defaults applied when the request leaves trip details unspecified.
const (
	defaultOrigin     = "Berlin"
	defaultDest       = "Lisbon"
	defaultStartDate  = "2025-11-10"
	defaultEndDate    = "2025-11-14"
	defaultPassengers = 2
	defaultBudgetEUR  = 2500
)

const parserPrompt = `You extract structured trip requests from free text.
Fill origin, dest, start_date (YYYY-MM-DD), end_date, passengers, budget_eur
(normalize any currency to EUR) and the prefs flags walkable, boutique,
no_redeye, depart_after, return_after. Leave out anything the text does not
state. Respond with a single JSON object and no surrounding text.`

// Parser turns a free-text trip request into a TripRequest, via the model
// when a client is configured and by keyword heuristics otherwise.
type Parser struct {
	client instructor.Instructor
	model  string
	live   bool
}

// NewParser builds the parser. A nil client keeps it heuristic-only.
func NewParser(clt instructor.Instructor, model string) *Parser {
	return &Parser{client: clt, model: model, live: clt != nil}
}

// newAgent builds a fresh agent per request so concurrent parses never
// share chat memory.
func (p *Parser) newAgent() *agents.Agent[schema.Input, trip.TripRequest] {
	return agents.NewAgent[schema.Input, trip.TripRequest](
		agents.WithClient(p.client),
		agents.WithModel(p.model),
		agents.WithTemperature(0),
		agents.WithMaxTokens(1024),
		agents.WithName("TripRequestParser"),
		agents.WithSystemPromptGenerator(simple.New(parserPrompt)),
	)
}

// Parse extracts the trip request and fills defaults for anything missing.
func (p *Parser) Parse(ctx context.Context, text string) trip.TripRequest {
	var req trip.TripRequest
	if p.live {
		var apiResp components.ApiResponse
		input := schema.NewInput(text)
		if err := p.newAgent().Run(ctx, input, &req, &apiResp); err != nil {
			log.Printf("[host] request parse failed, using heuristics: %v", err)
			req = heuristicParse(text)
		}
	} else {
		req = heuristicParse(text)
	}
	return fillDefaults(req)
}

// heuristicParse scans for preference keywords; trip details fall back to
// the defaults.
func heuristicParse(text string) trip.TripRequest {
	lower := strings.ToLower(text)
	var req trip.TripRequest
	if strings.Contains(lower, "walkable") {
		req.Prefs.Walkable = true
	}
	if strings.Contains(lower, "boutique") {
		req.Prefs.Boutique = true
	}
	if strings.Contains(lower, "red-eye") || strings.Contains(lower, "redeye") || strings.Contains(lower, "red eye") {
		req.Prefs.NoRedeye = true
	}
	return req
}

func fillDefaults(req trip.TripRequest) trip.TripRequest {
	if req.Origin == "" {
		req.Origin = defaultOrigin
	}
	if req.Dest == "" {
		req.Dest = defaultDest
	}
	if req.StartDate == "" {
		req.StartDate = defaultStartDate
	}
	if req.EndDate == "" {
		req.EndDate = defaultEndDate
	}
	if req.Passengers < 1 {
		req.Passengers = defaultPassengers
	}
	if req.BudgetEUR <= 0 {
		req.BudgetEUR = defaultBudgetEUR
	}
	return req
}
