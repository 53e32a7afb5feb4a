// Package trip defines the structured records exchanged between the
// coordinating host and the specialist agent services.
package trip

import (
	"encoding/json"
	"time"
)

// ISOTimeLayout is the wire layout for local date-times.
const ISOTimeLayout = "2006-01-02T15:04:05"

// DateLayout is the wire layout for bare dates.
const DateLayout = "2006-01-02"

// Flight is a single flight option as reported by the flights agent.
type Flight struct {
	Source      string  `json:"source" jsonschema:"title=source,description=Departure city or airport code." validate:"required"`
	Dest        string  `json:"dest" jsonschema:"title=dest,description=Arrival city or airport code." validate:"required"`
	DepartISO   string  `json:"depart_iso" jsonschema:"title=depart_iso,description=Local departure time in ISO 8601 format." validate:"required"`
	ArriveISO   string  `json:"arrive_iso" jsonschema:"title=arrive_iso,description=Local arrival time in ISO 8601 format." validate:"required"`
	Airline     string  `json:"airline" jsonschema:"title=airline,description=Operating airline name." validate:"required"`
	FlightNo    string  `json:"flight_no,omitempty" jsonschema:"title=flight_no,description=Flight number."`
	DurationMin int     `json:"duration_min" jsonschema:"title=duration_min,description=Flight duration in minutes."`
	PriceEUR    float64 `json:"price_eur" jsonschema:"title=price_eur,description=Total price in EUR." validate:"gte=0"`
	Cabin       string  `json:"cabin,omitempty" jsonschema:"title=cabin,description=Cabin class,default=Economy"`
	Link        string  `json:"link,omitempty" jsonschema:"title=link,description=Booking link."`
	SourceSite  string  `json:"source_site,omitempty" jsonschema:"title=source_site,description=Site the offer was found on."`
}

// Depart parses the local departure time.
func (f Flight) Depart() (time.Time, error) {
	return time.Parse(ISOTimeLayout, f.DepartISO)
}

// Arrive parses the local arrival time.
func (f Flight) Arrive() (time.Time, error) {
	return time.Parse(ISOTimeLayout, f.ArriveISO)
}

// Hotel is a single hotel option as reported by the hotels agent.
type Hotel struct {
	Name          string  `json:"name" jsonschema:"title=name,description=Hotel name." validate:"required"`
	Address       string  `json:"address" jsonschema:"title=address,description=Street address." validate:"required"`
	CheckinISO    string  `json:"checkin_iso" jsonschema:"title=checkin_iso,description=Local check-in time in ISO 8601 format." validate:"required"`
	CheckoutISO   string  `json:"checkout_iso" jsonschema:"title=checkout_iso,description=Local check-out time in ISO 8601 format." validate:"required"`
	Rating        float64 `json:"rating" jsonschema:"title=rating,description=Guest rating from 0 to 5." validate:"gte=0,lte=5"`
	PriceTotalEUR float64 `json:"price_total_eur" jsonschema:"title=price_total_eur,description=Total stay price in EUR." validate:"gte=0"`
	District      string  `json:"district,omitempty" jsonschema:"title=district,description=Neighborhood or district."`
	Link          string  `json:"link,omitempty" jsonschema:"title=link,description=Booking link."`
	SourceSite    string  `json:"source_site,omitempty" jsonschema:"title=source_site,description=Site the offer was found on."`
}

// Checkin parses the local check-in time.
func (h Hotel) Checkin() (time.Time, error) {
	return time.Parse(ISOTimeLayout, h.CheckinISO)
}

// Checkout parses the local check-out time.
func (h Hotel) Checkout() (time.Time, error) {
	return time.Parse(ISOTimeLayout, h.CheckoutISO)
}

// Activity is a bookable activity or tour option.
type Activity struct {
	Title        string  `json:"title" jsonschema:"title=title,description=Activity title." validate:"required"`
	DateISO      string  `json:"date_iso" jsonschema:"title=date_iso,description=Activity date (YYYY-MM-DD or ISO 8601)." validate:"required"`
	StartLocal   string  `json:"start_local" jsonschema:"title=start_local,description=Local start time (HH:MM)." validate:"required"`
	EndLocal     string  `json:"end_local" jsonschema:"title=end_local,description=Local end time (HH:MM)."`
	PriceEUR     float64 `json:"price_eur" jsonschema:"title=price_eur,description=Price per person in EUR." validate:"gte=0"`
	Category     string  `json:"category" jsonschema:"title=category,description=Activity category."`
	Rating       float64 `json:"rating" jsonschema:"title=rating,description=User rating from 0 to 5." validate:"gte=0,lte=5"`
	Link         string  `json:"link,omitempty" jsonschema:"title=link,description=Booking link."`
	SourceSite   string  `json:"source_site,omitempty" jsonschema:"title=source_site,description=Site the offer was found on."`
	LocationHint string  `json:"location_hint,omitempty" jsonschema:"title=location_hint,description=Hint about the meeting point or area."`
}

// Date returns the activity date truncated to a calendar day.
// Accepts either a bare date or a full ISO timestamp.
func (a Activity) Date() (time.Time, error) {
	if t, err := time.Parse(DateLayout, a.DateISO); err == nil {
		return t, nil
	}
	t, err := time.Parse(ISOTimeLayout, a.DateISO)
	if err != nil {
		return time.Time{}, err
	}
	return t.Truncate(24 * time.Hour), nil
}

// DateKey returns the activity date in YYYY-MM-DD form, empty on parse failure.
func (a Activity) DateKey() string {
	t, err := a.Date()
	if err != nil {
		return ""
	}
	return t.Format(DateLayout)
}

// BudgetPlan allocates per-category spending caps for a trip.
type BudgetPlan struct {
	FlightCapEUR     float64 `json:"flight_cap_eur" jsonschema:"title=flight_cap_eur,description=Cap for flights in EUR." validate:"gte=0"`
	HotelCapEUR      float64 `json:"hotel_cap_eur" jsonschema:"title=hotel_cap_eur,description=Cap for hotel in EUR." validate:"gte=0"`
	ActivitiesCapEUR float64 `json:"activities_cap_eur" jsonschema:"title=activities_cap_eur,description=Cap for activities in EUR." validate:"gte=0"`
	Notes            string  `json:"notes,omitempty" jsonschema:"title=notes,description=Optional notes."`
}

func (s BudgetPlan) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// ItineraryDay is one planned day with up to one activity per time slot.
type ItineraryDay struct {
	DateISO          string     `json:"date_iso"`
	Morning          string     `json:"morning,omitempty"`
	Afternoon        string     `json:"afternoon,omitempty"`
	Evening          string     `json:"evening,omitempty"`
	BookedActivities []Activity `json:"booked_activities"`
}

// Itinerary is a ranked end-to-end trip candidate.
type Itinerary struct {
	Summary           string             `json:"summary"`
	Outbound          Flight             `json:"outbound"`
	Inbound           Flight             `json:"inbound"`
	Hotel             Hotel              `json:"hotel"`
	Days              []ItineraryDay     `json:"days"`
	PriceBreakdownEUR map[string]float64 `json:"price_breakdown_eur"`
	TotalEUR          float64            `json:"total_eur"`
	Score             float64            `json:"score"`
	HoldLinks         map[string]string  `json:"hold_links"`
}

func (s Itinerary) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Prefs are soft preferences attached to a trip request.
type Prefs struct {
	Walkable    bool   `json:"walkable,omitempty" jsonschema:"title=walkable,description=Prefer walkable areas."`
	Boutique    bool   `json:"boutique,omitempty" jsonschema:"title=boutique,description=Prefer boutique hotels."`
	NoRedeye    bool   `json:"no_redeye,omitempty" jsonschema:"title=no_redeye,description=Avoid overnight flights."`
	DepartAfter string `json:"depart_after,omitempty" jsonschema:"title=depart_after,description=Earliest acceptable outbound departure (HH:MM)."`
	ReturnAfter string `json:"return_after,omitempty" jsonschema:"title=return_after,description=Earliest acceptable return departure (HH:MM)."`
}

// TripRequest is the structured parse of a free-text trip request.
type TripRequest struct {
	Origin     string  `json:"origin,omitempty" jsonschema:"title=origin,description=Departure city e.g. Berlin."`
	Dest       string  `json:"dest,omitempty" jsonschema:"title=dest,description=Destination city e.g. Lisbon."`
	StartDate  string  `json:"start_date,omitempty" jsonschema:"title=start_date,description=Trip start date (YYYY-MM-DD)."`
	EndDate    string  `json:"end_date,omitempty" jsonschema:"title=end_date,description=Trip end date (YYYY-MM-DD)."`
	Passengers int     `json:"passengers,omitempty" jsonschema:"title=passengers,description=Number of travellers,default=1"`
	BudgetEUR  float64 `json:"budget_eur,omitempty" jsonschema:"title=budget_eur,description=Total trip budget normalized to EUR."`
	Prefs      Prefs   `json:"prefs,omitempty" jsonschema:"title=prefs,description=Soft preferences extracted from the request."`
}

func (s TripRequest) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}
