package trip

import "encoding/json"

// FlightQuery is the task payload the host sends to the flights agent.
type FlightQuery struct {
	Origin      string `json:"origin" jsonschema:"title=origin,description=Departure city." validate:"required"`
	Dest        string `json:"dest" jsonschema:"title=dest,description=Destination city." validate:"required"`
	StartDate   string `json:"start_date" jsonschema:"title=start_date,description=Outbound date (YYYY-MM-DD)." validate:"required"`
	EndDate     string `json:"end_date" jsonschema:"title=end_date,description=Return date (YYYY-MM-DD)." validate:"required"`
	Passengers  int    `json:"passengers,omitempty" jsonschema:"title=passengers,description=Number of travellers,default=1"`
	NoRedeye    bool   `json:"no_redeye,omitempty" jsonschema:"title=no_redeye,description=Avoid overnight flights."`
	DepartAfter string `json:"depart_after,omitempty" jsonschema:"title=depart_after,description=Earliest outbound departure (HH:MM)."`
	ReturnAfter string `json:"return_after,omitempty" jsonschema:"title=return_after,description=Earliest return departure (HH:MM)."`
}

func (s FlightQuery) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// FlightList wraps the flights agent response.
type FlightList struct {
	Flights []Flight `json:"flights" jsonschema:"title=flights,description=List of flight options."`
}

func (s FlightList) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// HotelQuery is the task payload the host sends to the hotels agent.
type HotelQuery struct {
	City        string  `json:"city" jsonschema:"title=city,description=Destination city." validate:"required"`
	Checkin     string  `json:"checkin" jsonschema:"title=checkin,description=Check-in date (YYYY-MM-DD)." validate:"required"`
	Checkout    string  `json:"checkout" jsonschema:"title=checkout,description=Check-out date (YYYY-MM-DD)." validate:"required"`
	MinRating   float64 `json:"min_rating,omitempty" jsonschema:"title=min_rating,description=Minimum guest rating."`
	Style       string  `json:"style,omitempty" jsonschema:"title=style,description=Preferred hotel style,default=any"`
	Walkable    bool    `json:"walkable,omitempty" jsonschema:"title=walkable,description=Walkable area required."`
	MaxTotalEUR float64 `json:"max_total_eur,omitempty" jsonschema:"title=max_total_eur,description=Maximum total stay budget in EUR."`
}

func (s HotelQuery) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// HotelList wraps the hotels agent response.
type HotelList struct {
	Hotels []Hotel `json:"hotels" jsonschema:"title=hotels,description=List of hotel options."`
}

func (s HotelList) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// ActivityQuery is the task payload the host sends to the activities agent.
type ActivityQuery struct {
	City        string   `json:"city" jsonschema:"title=city,description=Destination city." validate:"required"`
	DateFrom    string   `json:"date_from" jsonschema:"title=date_from,description=First activity date (YYYY-MM-DD)." validate:"required"`
	DateTo      string   `json:"date_to" jsonschema:"title=date_to,description=Last activity date (YYYY-MM-DD)." validate:"required"`
	Categories  []string `json:"categories,omitempty" jsonschema:"title=categories,description=Preferred activity categories."`
	MinRating   float64  `json:"min_rating,omitempty" jsonschema:"title=min_rating,description=Minimum user rating."`
	MaxPriceEUR float64  `json:"max_price_eur,omitempty" jsonschema:"title=max_price_eur,description=Maximum price per activity in EUR."`
}

func (s ActivityQuery) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// ActivityList wraps the activities agent response.
type ActivityList struct {
	Items []Activity `json:"items" jsonschema:"title=items,description=List of activity options."`
}

func (s ActivityList) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// BudgetQuery is the task payload the host sends to the budget agent.
type BudgetQuery struct {
	TotalBudgetEUR float64 `json:"total_budget_eur" jsonschema:"title=total_budget_eur,description=Total trip budget in EUR." validate:"required,gt=0"`
	Passengers     int     `json:"passengers,omitempty" jsonschema:"title=passengers,description=Number of travellers,default=1"`
}

func (s BudgetQuery) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}
