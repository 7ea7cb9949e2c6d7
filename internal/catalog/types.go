package catalog

// Activity type vocabulary.
const (
	TypeSightseeing   = "sightseeing"
	TypeCultural      = "cultural"
	TypeFood          = "food"
	TypeAdventure     = "adventure"
	TypeRelaxation    = "relaxation"
	TypeShopping      = "shopping"
	TypeNature        = "nature"
	TypeEntertainment = "entertainment"
	TypeArt           = "art"
)

// Best-time slots for activities.
const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
	TimeFullDay   = "full_day"
)

// Destination is a static catalog entry for a city.
type Destination struct {
	Name         string   `json:"name" yaml:"name"`
	Country      string   `json:"country" yaml:"country"`
	Description  string   `json:"description" yaml:"description"`
	BestSeason   []string `json:"best_season" yaml:"best_season"`
	Attractions  []string `json:"attractions" yaml:"attractions"`
	AvgDailyCost float64  `json:"avg_daily_cost" yaml:"avg_daily_cost"`
	Currency     string   `json:"currency" yaml:"currency"`
	Language     string   `json:"language" yaml:"language"`
	Timezone     string   `json:"timezone" yaml:"timezone"`
	VisaRequired bool     `json:"visa_required" yaml:"visa_required"`
	SafetyRating float64  `json:"safety_rating" yaml:"safety_rating"`
}

// Accommodation is a lodging option at a destination.
type Accommodation struct {
	Name             string   `json:"name" yaml:"name"`
	Type             string   `json:"type" yaml:"type"`
	PricePerNight    float64  `json:"price_per_night" yaml:"price_per_night"`
	Rating           float64  `json:"rating" yaml:"rating"`
	Amenities        []string `json:"amenities" yaml:"amenities"`
	Location         string   `json:"location" yaml:"location"`
	DistanceToCenter float64  `json:"distance_to_center" yaml:"distance_to_center"`
}

// Activity is a bookable or free activity at a destination.
type Activity struct {
	Name            string  `json:"name" yaml:"name"`
	Type            string  `json:"type" yaml:"type"`
	DurationHours   float64 `json:"duration_hours" yaml:"duration_hours"`
	Price           float64 `json:"price" yaml:"price"`
	Description     string  `json:"description" yaml:"description"`
	BestTime        string  `json:"best_time" yaml:"best_time"`
	BookingRequired bool    `json:"booking_required" yaml:"booking_required"`
}

// DestinationSummary is the shape returned by destination search.
type DestinationSummary struct {
	Name           string   `json:"name"`
	Country        string   `json:"country"`
	Description    string   `json:"description"`
	BestSeason     []string `json:"best_season"`
	AvgDailyCost   float64  `json:"avg_daily_cost_usd"`
	SafetyRating   float64  `json:"safety_rating"`
	TopAttractions []string `json:"top_attractions"`
}
