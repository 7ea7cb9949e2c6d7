package planner

import "testing"

func TestCalculateBudgetKnownValues(t *testing.T) {
	b := CalculateBudget("Tokyo", 150.0, 3, "moderate", 2, FixedFlightEstimator{Amount: 0})

	want := BudgetCategories{
		Accommodation:       360.0,
		FoodAndDining:       225.0,
		ActivitiesAndTours:  180.0,
		LocalTransportation: 90.0,
		Miscellaneous:       45.0,
		EstimatedFlights:    0,
	}
	if b.Breakdown != want {
		t.Errorf("breakdown mismatch:\n got %+v\nwant %+v", b.Breakdown, want)
	}
	if b.SubtotalWithoutFlights != 900.0 {
		t.Errorf("expected subtotal 900, got %v", b.SubtotalWithoutFlights)
	}
	if b.DailyAverage != 150.0 {
		t.Errorf("expected daily average 150, got %v", b.DailyAverage)
	}
	if b.Currency != "USD" {
		t.Errorf("expected USD, got %q", b.Currency)
	}
}

func TestCalculateBudgetTierMultipliers(t *testing.T) {
	base := CalculateBudget("x", 100.0, 1, "moderate", 1, FixedFlightEstimator{})
	budget := CalculateBudget("x", 100.0, 1, "budget", 1, FixedFlightEstimator{})
	luxury := CalculateBudget("x", 100.0, 1, "luxury", 1, FixedFlightEstimator{})

	if budget.Breakdown.Accommodation != base.Breakdown.Accommodation*0.5 {
		t.Errorf("budget tier accommodation: got %v", budget.Breakdown.Accommodation)
	}
	if luxury.Breakdown.Accommodation != base.Breakdown.Accommodation*2.5 {
		t.Errorf("luxury tier accommodation: got %v", luxury.Breakdown.Accommodation)
	}
	// Non-accommodation categories are tier-independent.
	if budget.Breakdown.FoodAndDining != base.Breakdown.FoodAndDining {
		t.Error("food should not vary by tier")
	}
}

func TestCalculateBudgetMonotonic(t *testing.T) {
	est := FixedFlightEstimator{}

	prev := 0.0
	for days := 1; days <= 10; days++ {
		b := CalculateBudget("x", 120.0, days, "moderate", 2, est)
		if b.SubtotalWithoutFlights < prev {
			t.Fatalf("subtotal decreased at days=%d: %v < %v", days, b.SubtotalWithoutFlights, prev)
		}
		prev = b.SubtotalWithoutFlights
	}

	prev = 0.0
	for travelers := 1; travelers <= 6; travelers++ {
		b := CalculateBudget("x", 120.0, 4, "luxury", travelers, est)
		if b.SubtotalWithoutFlights < prev {
			t.Fatalf("subtotal decreased at travelers=%d: %v < %v", travelers, b.SubtotalWithoutFlights, prev)
		}
		prev = b.SubtotalWithoutFlights
	}
}

func TestCalculateBudgetFallbackBaseCost(t *testing.T) {
	b := CalculateBudget("Atlantis", 0, 2, "moderate", 1, FixedFlightEstimator{})
	// Fallback base of 100/day: 100 * 0.4 * 2 = 80 accommodation.
	if b.Breakdown.Accommodation != 80.0 {
		t.Errorf("expected fallback accommodation 80, got %v", b.Breakdown.Accommodation)
	}
}

func TestRandomFlightEstimatorRange(t *testing.T) {
	est := NewRandomFlightEstimator(1)
	for i := 0; i < 100; i++ {
		got := est.EstimateFlights(2)
		if got < 800 || got > 2400 {
			t.Fatalf("flight estimate out of range for 2 travelers: %v", got)
		}
	}
}

func TestBudgetTipsUnknownTierDefaultsToModerate(t *testing.T) {
	if got := BudgetTips("extravagant"); len(got) != len(budgetTips["moderate"]) {
		t.Errorf("expected moderate tips for unknown tier, got %v", got)
	}
}
