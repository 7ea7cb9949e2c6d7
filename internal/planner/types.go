package planner

// Preferences is a fully-resolved projection of a conversation context.
// Every field holds a concrete value; construct via assistant.Context.ToPreferences.
type Preferences struct {
	Destination       string   `json:"destination"`
	StartDate         string   `json:"start_date"`
	DurationDays      int      `json:"duration_days"`
	BudgetLevel       string   `json:"budget_level"`
	Travelers         int      `json:"travelers"`
	Interests         []string `json:"interests"`
	Pace              string   `json:"pace"`
	AccommodationType string   `json:"accommodation_type"`
}

// ScheduledActivity is a single timed entry in a day plan.
type ScheduledActivity struct {
	Time          string  `json:"time"`
	Activity      string  `json:"activity"`
	DurationHours float64 `json:"duration_hours"`
	Location      string  `json:"location"`
	CostEstimate  float64 `json:"cost_estimate"`
	Notes         string  `json:"notes,omitempty"`
}

// DayItinerary is one day of a trip.
type DayItinerary struct {
	DayNumber          int                 `json:"day_number"`
	Date               string              `json:"date"`
	Theme              string              `json:"theme"`
	Activities         []ScheduledActivity `json:"activities"`
	Meals              map[string]string   `json:"meals"`
	EstimatedDailyCost float64             `json:"estimated_daily_cost"`
}

// AccommodationDetails describes the recommended lodging for a trip.
type AccommodationDetails struct {
	Type                 string  `json:"type"`
	Description          string  `json:"description"`
	RecommendedArea      string  `json:"recommended_area"`
	CheckIn              string  `json:"check_in"`
	CheckOut             string  `json:"check_out"`
	EstimatedNightlyRate float64 `json:"estimated_nightly_rate"`
}

// TravelItinerary is a complete generated trip plan.
type TravelItinerary struct {
	Destination   string               `json:"destination"`
	TripName      string               `json:"trip_name"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	Travelers     int                  `json:"travelers"`
	TotalDays     int                  `json:"total_days"`
	Days          []DayItinerary       `json:"itinerary"`
	Accommodation AccommodationDetails `json:"accommodation"`
	TotalBudget   float64              `json:"total_budget"`
	PackingList   []string             `json:"packing_list"`
	ImportantTips []string             `json:"important_tips"`
}

// BudgetCategories is the per-category cost breakdown.
type BudgetCategories struct {
	Accommodation       float64 `json:"accommodation"`
	FoodAndDining       float64 `json:"food_and_dining"`
	ActivitiesAndTours  float64 `json:"activities_and_tours"`
	LocalTransportation float64 `json:"local_transportation"`
	Miscellaneous       float64 `json:"miscellaneous"`
	EstimatedFlights    float64 `json:"estimated_flights"`
}

// BudgetBreakdown is the budget calculator output.
type BudgetBreakdown struct {
	Destination            string           `json:"destination"`
	Days                   int              `json:"days"`
	Travelers              int              `json:"travelers"`
	Breakdown              BudgetCategories `json:"breakdown"`
	SubtotalWithoutFlights float64          `json:"subtotal_without_flights"`
	TotalEstimate          float64          `json:"total_estimate"`
	DailyAverage           float64          `json:"daily_average"`
	Currency               string           `json:"currency"`
	Tips                   []string         `json:"tips"`
}
