package planner

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/tripmesh/tripmesh/trip"
)

// Confirmation holds the simulated booking references for one itinerary.
type Confirmation struct {
	OptionIndex     int            `json:"option_index"`
	FlightConfirm   string         `json:"flight_confirmation"`
	HotelConfirm    string         `json:"hotel_confirmation"`
	ActivitiesCount int            `json:"activities_count"`
	Itinerary       trip.Itinerary `json:"itinerary"`
}

// Book simulates booking the idx-th itinerary (1-based) from the ranked
// candidates and returns generated confirmation codes.
func Book(candidates []trip.Itinerary, idx int) (*Confirmation, error) {
	if idx < 1 || idx > len(candidates) {
		return nil, fmt.Errorf("option %d out of range, have %d candidates", idx, len(candidates))
	}
	itinerary := candidates[idx-1]
	booked := 0
	for _, d := range itinerary.Days {
		booked += len(d.BookedActivities)
	}
	return &Confirmation{
		OptionIndex:     idx,
		FlightConfirm:   "FL-" + refCode(),
		HotelConfirm:    "HT-" + refCode(),
		ActivitiesCount: booked,
		Itinerary:       itinerary,
	}, nil
}

func refCode() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
