package planner

import (
	"math"
	"math/rand"
)

// FallbackDailyCost is used when the destination is not in the catalog.
const FallbackDailyCost = 100.0

// tierMultipliers scale the accommodation share of the daily cost.
var tierMultipliers = map[string]float64{
	"budget":   0.5,
	"moderate": 1.0,
	"luxury":   2.5,
}

// FlightEstimator supplies the flight-cost term of a budget estimate. It is
// an interface so tests can pin the otherwise random production value.
type FlightEstimator interface {
	EstimateFlights(travelers int) float64
}

// RandomFlightEstimator draws a uniform estimate between 400 and 1200 USD
// per traveler.
type RandomFlightEstimator struct {
	rng *rand.Rand
}

// NewRandomFlightEstimator creates an estimator seeded from the given source.
func NewRandomFlightEstimator(seed int64) *RandomFlightEstimator {
	return &RandomFlightEstimator{rng: rand.New(rand.NewSource(seed))}
}

func (e *RandomFlightEstimator) EstimateFlights(travelers int) float64 {
	return (400 + e.rng.Float64()*800) * float64(travelers)
}

// FixedFlightEstimator returns a constant total, for deterministic tests.
type FixedFlightEstimator struct {
	Amount float64
}

func (e FixedFlightEstimator) EstimateFlights(travelers int) float64 {
	return e.Amount
}

// CalculateBudget produces a cost breakdown for a trip. The base daily cost
// is split 40/25/20/10/5 across accommodation, food, activities, local
// transport, and miscellaneous; the accommodation share is scaled by the
// budget tier. Each category is multiplied by days and travelers. The flight
// term comes from the estimator and is excluded from the daily average.
func CalculateBudget(destination string, baseDaily float64, days int, tier string, travelers int, flights FlightEstimator) BudgetBreakdown {
	if baseDaily <= 0 {
		baseDaily = FallbackDailyCost
	}

	mult, ok := tierMultipliers[tier]
	if !ok {
		mult = 1.0
	}

	accommodation := baseDaily * 0.4 * mult * float64(days)
	food := baseDaily * 0.25 * float64(days)
	activities := baseDaily * 0.2 * float64(days)
	transport := baseDaily * 0.1 * float64(days)
	misc := baseDaily * 0.05 * float64(days)

	n := float64(travelers)
	subtotal := (accommodation + food + activities + transport + misc) * n

	flightEstimate := flights.EstimateFlights(travelers)

	return BudgetBreakdown{
		Destination: destination,
		Days:        days,
		Travelers:   travelers,
		Breakdown: BudgetCategories{
			Accommodation:       round2(accommodation * n),
			FoodAndDining:       round2(food * n),
			ActivitiesAndTours:  round2(activities * n),
			LocalTransportation: round2(transport * n),
			Miscellaneous:       round2(misc * n),
			EstimatedFlights:    round2(flightEstimate),
		},
		SubtotalWithoutFlights: round2(subtotal),
		TotalEstimate:          round2(subtotal + flightEstimate),
		DailyAverage:           round2(subtotal / float64(days) / n),
		Currency:               "USD",
		Tips:                   BudgetTips(tier),
	}
}

var budgetTips = map[string][]string{
	"budget": {
		"Stay in hostels or budget hotels",
		"Eat at local restaurants and street food stalls",
		"Use public transportation",
		"Book activities in advance for discounts",
		"Travel during shoulder season",
	},
	"moderate": {
		"Mix mid-range hotels with boutique options",
		"Balance fine dining with local eateries",
		"Consider day passes for transportation",
		"Book popular attractions ahead",
	},
	"luxury": {
		"Consider package deals at luxury hotels",
		"Book private tours for personalized experiences",
		"Reserve top restaurants in advance",
		"Consider travel insurance for peace of mind",
	},
}

// BudgetTips returns money advice for a tier, defaulting to moderate.
func BudgetTips(tier string) []string {
	if tips, ok := budgetTips[tier]; ok {
		return tips
	}
	return budgetTips["moderate"]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
