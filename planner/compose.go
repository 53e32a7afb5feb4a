package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tripmesh/tripmesh/trip"
)

// Compose cross-products the flight, hotel and activity options into
// itinerary candidates, prices and scores each, and returns the top three
// by score (ties broken by total price).
func Compose(req Request, budget trip.BudgetPlan, flights []trip.Flight, hotels []trip.Hotel, acts []trip.Activity) []trip.Itinerary {
	var outs, ins []trip.Flight
	for _, f := range flights {
		switch {
		case strings.EqualFold(f.Source, req.Origin):
			outs = append(outs, f)
		case strings.EqualFold(f.Dest, req.Origin):
			ins = append(ins, f)
		}
	}

	days := dayCount(acts)
	perDayBudget := budget.ActivitiesCapEUR / float64(days)

	budgetCap := req.BudgetEUR
	if budgetCap <= 0 {
		budgetCap = 9e9
	}

	var candidates []trip.Itinerary
	for _, out := range outs {
		for _, in := range ins {
			for _, hotel := range hotels {
				if !AlignWindows(out, in, hotel) {
					continue
				}
				itinDays := ChooseActivities(acts, req.StartDate, req.EndDate, perDayBudget)
				var actsCost float64
				var booked []trip.Activity
				for _, d := range itinDays {
					for _, a := range d.BookedActivities {
						actsCost += a.PriceEUR
						booked = append(booked, a)
					}
				}
				total := out.PriceEUR + in.PriceEUR + hotel.PriceTotalEUR + actsCost
				if total > budgetCap {
					continue
				}
				candidates = append(candidates, trip.Itinerary{
					Summary:  fmt.Sprintf("%s → %s %s–%s, %s", req.Origin, req.Dest, req.StartDate, req.EndDate, hotel.Name),
					Outbound: out,
					Inbound:  in,
					Hotel:    hotel,
					Days:     itinDays,
					PriceBreakdownEUR: map[string]float64{
						"outbound":   out.PriceEUR,
						"inbound":    in.PriceEUR,
						"hotel":      hotel.PriceTotalEUR,
						"activities": actsCost,
					},
					TotalEUR: total,
					Score:    Score(total, req, hotel, booked),
					HoldLinks: map[string]string{
						"flights": out.Link,
						"hotel":   hotel.Link,
					},
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].TotalEUR < candidates[j].TotalEUR
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	return candidates
}

// dayCount estimates how many trip days the activity pool spreads over,
// assuming roughly three options per day.
func dayCount(acts []trip.Activity) int {
	d := len(acts) / 3
	if d < 1 {
		d = 1
	}
	return d
}
