package trip

import (
	"encoding/json"

	"github.com/tripmesh/tripmesh/schema"
)

// Agents answer with either a wrapper object ({"flights": [...]}) or a bare
// array, sometimes inside prose or code fences. The Unwrap helpers accept all
// of those shapes.

// UnwrapFlights extracts a flight list from an agent reply.
func UnwrapFlights(s string) ([]Flight, error) {
	bs, err := schema.ExtractJSON(s)
	if err != nil {
		return nil, err
	}
	var wrapper FlightList
	if err := json.Unmarshal(bs, &wrapper); err == nil && wrapper.Flights != nil {
		return wrapper.Flights, nil
	}
	var list []Flight
	if err := json.Unmarshal(bs, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UnwrapHotels extracts a hotel list from an agent reply.
func UnwrapHotels(s string) ([]Hotel, error) {
	bs, err := schema.ExtractJSON(s)
	if err != nil {
		return nil, err
	}
	var wrapper HotelList
	if err := json.Unmarshal(bs, &wrapper); err == nil && wrapper.Hotels != nil {
		return wrapper.Hotels, nil
	}
	var list []Hotel
	if err := json.Unmarshal(bs, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UnwrapActivities extracts an activity list from an agent reply.
func UnwrapActivities(s string) ([]Activity, error) {
	bs, err := schema.ExtractJSON(s)
	if err != nil {
		return nil, err
	}
	var wrapper ActivityList
	if err := json.Unmarshal(bs, &wrapper); err == nil && wrapper.Items != nil {
		return wrapper.Items, nil
	}
	var list []Activity
	if err := json.Unmarshal(bs, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UnwrapBudget extracts a budget plan from an agent reply.
func UnwrapBudget(s string) (*BudgetPlan, error) {
	var plan BudgetPlan
	if err := schema.DecodeLoose(s, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
