// Package host implements the coordinating agent: it parses a free-text
// trip request, fans it out to the specialist agents, merges their answers
// into ranked itinerary candidates and simulates booking.
package host

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/tripmesh/tripmesh/a2a"
	"github.com/tripmesh/tripmesh/planner"
	"github.com/tripmesh/tripmesh/service/budget"
	"github.com/tripmesh/tripmesh/trip"
)

// Remote agent names the host talks to.
const (
	RemoteBudget     = "budget"
	RemoteFlights    = "flights"
	RemoteHotels     = "hotels"
	RemoteActivities = "activities"
)

// Host constraints applied to the fan-out queries.
const (
	hotelBudgetShare  = 0.60
	activityMinRating = 4.5
	activityMaxEUR    = 140
	remoteCallTimeout = 90 * time.Second
)

var activityCategories = []string{"food tour", "walking tour", "museum", "viewpoint"}

// Host coordinates the remote agents and retains candidate itineraries per
// conversation context.
type Host struct {
	remotes map[string]*a2a.Client
	parser  *Parser

	mu         sync.Mutex
	candidates map[string][]trip.Itinerary
	cards      map[string]a2a.AgentCard
}

// New builds a host over the remote agent clients.
func New(remotes map[string]*a2a.Client, parser *Parser) *Host {
	return &Host{
		remotes:    remotes,
		parser:     parser,
		candidates: make(map[string][]trip.Itinerary),
		cards:      make(map[string]a2a.AgentCard),
	}
}

// NewFromURLs builds a host from agent base URLs, as loaded from config.
func NewFromURLs(urls map[string]string, parser *Parser) *Host {
	remotes := make(map[string]*a2a.Client, len(urls))
	for name, url := range urls {
		remotes[name] = a2a.NewClient(url)
	}
	return New(remotes, parser)
}

// InitRemotes resolves every remote agent card, logging what it found.
// Unreachable agents are logged and tolerated; their calls degrade later.
func (h *Host) InitRemotes(ctx context.Context) {
	for name, client := range h.remotes {
		card, err := client.ResolveCard(ctx)
		if err != nil {
			log.Printf("[host] remote %s unreachable: %v", name, err)
			continue
		}
		h.mu.Lock()
		h.cards[name] = *card
		h.mu.Unlock()
		log.Printf("[host] remote %s ready: %s (%s)", name, card.Name, card.Description)
	}
}

// ConnectedAgents returns the resolved cards of the reachable remotes.
func (h *Host) ConnectedAgents() map[string]a2a.AgentCard {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[string]a2a.AgentCard, len(h.cards))
	for name, card := range h.cards {
		out[name] = card
	}
	return out
}

// Candidates returns the retained candidates for a conversation context.
func (h *Host) Candidates(contextID string) []trip.Itinerary {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.candidates[contextID]
}

func (h *Host) setCandidates(contextID string, cands []trip.Itinerary) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.candidates[contextID] = cands
}

// sendTask sends text to a named remote and returns the task's text payload.
func (h *Host) sendTask(ctx context.Context, remote, contextID, text string) (string, error) {
	client, ok := h.remotes[remote]
	if !ok {
		return "", fmt.Errorf("no remote agent %q configured", remote)
	}
	callCtx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
	defer cancel()
	payload, _, err := client.SendText(callCtx, contextID, text)
	if err != nil {
		return "", fmt.Errorf("remote %s: %w", remote, err)
	}
	return payload, nil
}

// Plan runs the whole pipeline for a parsed request: budget first, then the
// three search agents concurrently, then candidate composition.
func (h *Host) Plan(ctx context.Context, contextID string, req trip.TripRequest) []trip.Itinerary {
	plan := h.fetchBudget(ctx, contextID, req)

	var (
		wg      sync.WaitGroup
		flights []trip.Flight
		hotels  []trip.Hotel
		acts    []trip.Activity
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		flights = h.fetchFlights(ctx, contextID, req)
	}()
	go func() {
		defer wg.Done()
		hotels = h.fetchHotels(ctx, contextID, req)
	}()
	go func() {
		defer wg.Done()
		acts = h.fetchActivities(ctx, contextID, req)
	}()
	wg.Wait()

	log.Printf("[host] context=%s gathered flights=%d hotels=%d activities=%d",
		contextID, len(flights), len(hotels), len(acts))

	cands := planner.Compose(planner.Request{
		Origin:    req.Origin,
		Dest:      req.Dest,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		BudgetEUR: req.BudgetEUR,
		Prefs:     req.Prefs,
	}, plan, flights, hotels, acts)

	h.setCandidates(contextID, cands)
	return cands
}

func (h *Host) fetchBudget(ctx context.Context, contextID string, req trip.TripRequest) trip.BudgetPlan {
	query := trip.BudgetQuery{TotalBudgetEUR: req.BudgetEUR, Passengers: req.Passengers}
	payload, err := h.sendTask(ctx, RemoteBudget, contextID, query.String())
	if err != nil {
		log.Printf("[host] budget agent failed, splitting locally: %v", err)
		return budget.Allocate(req.BudgetEUR, req.Passengers)
	}
	plan, err := trip.UnwrapBudget(payload)
	if err != nil || (plan.FlightCapEUR <= 0 && plan.HotelCapEUR <= 0) {
		log.Printf("[host] unusable budget reply, splitting locally: %v", err)
		return budget.Allocate(req.BudgetEUR, req.Passengers)
	}
	return *plan
}

func (h *Host) fetchFlights(ctx context.Context, contextID string, req trip.TripRequest) []trip.Flight {
	query := trip.FlightQuery{
		Origin:      req.Origin,
		Dest:        req.Dest,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Passengers:  req.Passengers,
		NoRedeye:    req.Prefs.NoRedeye,
		DepartAfter: req.Prefs.DepartAfter,
		ReturnAfter: req.Prefs.ReturnAfter,
	}
	payload, err := h.sendTask(ctx, RemoteFlights, contextID, query.String())
	if err != nil {
		log.Printf("[host] flights agent failed: %v", err)
		return nil
	}
	flights, err := trip.UnwrapFlights(payload)
	if err != nil {
		log.Printf("[host] unusable flights reply: %v", err)
		return nil
	}
	return flights
}

func (h *Host) fetchHotels(ctx context.Context, contextID string, req trip.TripRequest) []trip.Hotel {
	style := "any"
	if req.Prefs.Boutique {
		style = "boutique"
	}
	query := trip.HotelQuery{
		City:        req.Dest,
		Checkin:     req.StartDate,
		Checkout:    req.EndDate,
		Style:       style,
		Walkable:    req.Prefs.Walkable,
		MaxTotalEUR: req.BudgetEUR * hotelBudgetShare,
	}
	payload, err := h.sendTask(ctx, RemoteHotels, contextID, query.String())
	if err != nil {
		log.Printf("[host] hotels agent failed: %v", err)
		return nil
	}
	hotels, err := trip.UnwrapHotels(payload)
	if err != nil {
		log.Printf("[host] unusable hotels reply: %v", err)
		return nil
	}
	return hotels
}

func (h *Host) fetchActivities(ctx context.Context, contextID string, req trip.TripRequest) []trip.Activity {
	query := trip.ActivityQuery{
		City:        req.Dest,
		DateFrom:    req.StartDate,
		DateTo:      req.EndDate,
		Categories:  activityCategories,
		MinRating:   activityMinRating,
		MaxPriceEUR: activityMaxEUR,
	}
	payload, err := h.sendTask(ctx, RemoteActivities, contextID, query.String())
	if err != nil {
		log.Printf("[host] activities agent failed: %v", err)
		return nil
	}
	acts, err := trip.UnwrapActivities(payload)
	if err != nil {
		log.Printf("[host] unusable activities reply: %v", err)
		return nil
	}
	return acts
}
