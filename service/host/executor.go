package host

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tripmesh/tripmesh/a2a"
	"github.com/tripmesh/tripmesh/planner"
)

var (
	bookOptionRe = regexp.MustCompile(`(?i)book option (\d+)`)
	listAgentsRe = regexp.MustCompile(`(?i)\b(?:list|which) agents\b`)
)

// Executor adapts the host to the agent protocol.
type Executor struct {
	host *Host
}

// NewExecutor wraps the host.
func NewExecutor(host *Host) *Executor {
	return &Executor{host: host}
}

// Execute routes booking commands to the retained candidates and anything
// else through the full planning pipeline.
func (e *Executor) Execute(ctx context.Context, rc *a2a.RequestContext, updater *a2a.TaskUpdater) error {
	updater.StartWork()

	input := rc.UserInput()
	if m := bookOptionRe.FindStringSubmatch(input); m != nil {
		idx, _ := strconv.Atoi(m[1])
		return e.book(rc, updater, idx)
	}
	if listAgentsRe.MatchString(input) {
		return e.listAgents(updater)
	}
	return e.plan(ctx, rc, updater, input)
}

func (e *Executor) listAgents(updater *a2a.TaskUpdater) error {
	cards := e.host.ConnectedAgents()
	if len(cards) == 0 {
		msg := a2a.AgentMessage(updater.Task(), "No remote agents connected.")
		updater.Complete(&msg)
		return nil
	}

	raw, err := json.Marshal(cards)
	if err != nil {
		return err
	}
	updater.AddArtifact("remote_agents_json", a2a.TextPart(string(raw)))

	names := make([]string, 0, len(cards))
	for name := range cards {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Connected to %d agents:\n", len(names))
	for _, name := range names {
		card := cards[name]
		fmt.Fprintf(&sb, "- %s: %s — %s\n", name, card.Name, card.Description)
	}
	msg := a2a.AgentMessage(updater.Task(), strings.TrimSpace(sb.String()))
	updater.Complete(&msg)
	return nil
}

func (e *Executor) book(rc *a2a.RequestContext, updater *a2a.TaskUpdater, idx int) error {
	cands := e.host.Candidates(rc.ContextID)
	if len(cands) == 0 {
		msg := a2a.AgentMessage(updater.Task(), "No itinerary candidates yet. Describe your trip first, then book an option.")
		updater.UpdateStatus(a2a.TaskStateInputRequired, &msg)
		return nil
	}

	conf, err := planner.Book(cands, idx)
	if err != nil {
		msg := a2a.AgentMessage(updater.Task(), fmt.Sprintf("Cannot book: %v. Pick an option between 1 and %d.", err, len(cands)))
		updater.UpdateStatus(a2a.TaskStateInputRequired, &msg)
		return nil
	}

	raw, err := json.Marshal(conf)
	if err != nil {
		return err
	}
	updater.AddArtifact("booking_confirmation_json", a2a.TextPart(string(raw)))

	text := fmt.Sprintf("Booked option %d: %s\nFlight confirmation %s, hotel confirmation %s, %d activities reserved. Total €%.2f.",
		conf.OptionIndex, conf.Itinerary.Summary, conf.FlightConfirm, conf.HotelConfirm, conf.ActivitiesCount, conf.Itinerary.TotalEUR)
	msg := a2a.AgentMessage(updater.Task(), text)
	updater.Complete(&msg)
	return nil
}

func (e *Executor) plan(ctx context.Context, rc *a2a.RequestContext, updater *a2a.TaskUpdater, input string) error {
	req := e.host.parser.Parse(ctx, input)
	cands := e.host.Plan(ctx, rc.ContextID, req)

	if len(cands) == 0 {
		msg := a2a.AgentMessage(updater.Task(),
			"No viable itinerary fit the dates and budget. Loosen the budget or shift the dates and try again.")
		updater.UpdateStatus(a2a.TaskStateInputRequired, &msg)
		return nil
	}

	raw, err := json.Marshal(cands)
	if err != nil {
		return err
	}
	updater.AddArtifact("candidate_itineraries_json", a2a.TextPart(string(raw)))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d itinerary options:\n", len(cands))
	for i, c := range cands {
		fmt.Fprintf(&sb, "Option %d: %s — total €%.2f (score %.1f)\n", i+1, c.Summary, c.TotalEUR, c.Score)
	}
	sb.WriteString("Reply \"book option N\" to book one.")
	msg := a2a.AgentMessage(updater.Task(), sb.String())
	updater.Complete(&msg)
	return nil
}

// Card describes the host agent.
func Card(url string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:               "TripPlannerHost",
		Description:        "Coordinates budget, flight, hotel and activity agents into ranked trip itineraries.",
		URL:                url,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []a2a.AgentSkill{
			{
				ID:          "plan_trip",
				Name:        "Plan a trip",
				Description: "Turns a free-text trip request into ranked itinerary candidates.",
				Tags:        []string{"travel", "planning"},
				Examples:    []string{"Plan a trip from Berlin to Lisbon, Nov 10-14, 2 people, €2500, walkable boutique hotel, no red-eye flights."},
			},
			{
				ID:          "book_option",
				Name:        "Book an option",
				Description: "Books one of the previously proposed itinerary candidates.",
				Tags:        []string{"travel", "booking"},
				Examples:    []string{"book option 1"},
			},
		},
	}
}
