// Package planner merges agent responses into ranked itinerary candidates
// and simulates booking them.
package planner

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tripmesh/tripmesh/trip"
)

// Request carries the trip constraints the candidates are built against.
type Request struct {
	Origin    string
	Dest      string
	StartDate string
	EndDate   string
	BudgetEUR float64
	Prefs     trip.Prefs
}

// AlignWindows reports whether the flight pair brackets the hotel stay:
// arrival on or before check-in day, return departure on or after check-out day.
func AlignWindows(outbound, inbound trip.Flight, hotel trip.Hotel) bool {
	arr, err := outbound.Arrive()
	if err != nil {
		return false
	}
	checkin, err := hotel.Checkin()
	if err != nil {
		return false
	}
	checkout, err := hotel.Checkout()
	if err != nil {
		return false
	}
	dep, err := inbound.Depart()
	if err != nil {
		return false
	}
	return !dayOf(arr).After(dayOf(checkin)) && !dayOf(dep).Before(dayOf(checkout))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ChooseActivities fills each trip day with up to two activities, one per
// time slot, staying under the per-day budget. Higher-rated and cheaper
// activities win.
func ChooseActivities(acts []trip.Activity, startDate, endDate string, perDayBudget float64) []trip.ItineraryDay {
	start, err := time.Parse(trip.DateLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(trip.DateLayout, endDate)
	if err != nil {
		return nil
	}
	byDate := make(map[string][]trip.Activity)
	for _, a := range acts {
		key := a.DateKey()
		if key == "" {
			continue
		}
		byDate[key] = append(byDate[key], a)
	}
	var days []trip.ItineraryDay
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		key := cur.Format(trip.DateLayout)
		cand := make([]trip.Activity, len(byDate[key]))
		copy(cand, byDate[key])
		sort.SliceStable(cand, func(i, j int) bool {
			if cand[i].Rating != cand[j].Rating {
				return cand[i].Rating > cand[j].Rating
			}
			return cand[i].PriceEUR < cand[j].PriceEUR
		})
		day := trip.ItineraryDay{
			DateISO:          key,
			BookedActivities: make([]trip.Activity, 0, 2),
		}
		var spent float64
		for _, act := range cand {
			if spent+act.PriceEUR > perDayBudget {
				continue
			}
			slot := slotFor(act.StartLocal)
			switch slot {
			case "morning":
				if day.Morning != "" {
					continue
				}
				day.Morning = act.Title
			case "afternoon":
				if day.Afternoon != "" {
					continue
				}
				day.Afternoon = act.Title
			case "evening":
				if day.Evening != "" {
					continue
				}
				day.Evening = act.Title
			}
			day.BookedActivities = append(day.BookedActivities, act)
			spent += act.PriceEUR
			if len(day.BookedActivities) >= 2 {
				break
			}
		}
		days = append(days, day)
	}
	return days
}

// slotFor buckets a local HH:MM start time into morning/afternoon/evening.
func slotFor(startLocal string) string {
	h := 0
	if idx := strings.IndexByte(startLocal, ':'); idx > 0 {
		if v, err := strconv.Atoi(startLocal[:idx]); err == nil {
			h = v
		}
	}
	switch {
	case h < 12:
		return "morning"
	case h < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// Score rates a candidate: cheaper trips, better hotels, better activities
// and matched preferences (walkable, boutique) all push the score up.
func Score(total float64, req Request, hotel trip.Hotel, activities []trip.Activity) float64 {
	score := 10000 / (total + 1)
	if score < 0 {
		score = 0
	}
	score += hotel.Rating * 50
	if len(activities) > 0 {
		var sum float64
		for _, a := range activities {
			sum += a.Rating
		}
		score += sum / float64(len(activities)) * 25
	}
	if req.Prefs.Walkable {
		score += 100
	}
	if req.Prefs.Boutique && hotel.Rating >= 4.0 {
		score += 50
	}
	return score
}
