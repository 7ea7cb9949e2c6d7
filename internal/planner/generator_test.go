package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/wanderplan/wanderplan/internal/catalog"
)

func testPreferences() Preferences {
	return Preferences{
		Destination:       "Tokyo",
		StartDate:         "2026-10-01",
		DurationDays:      5,
		BudgetLevel:       "moderate",
		Travelers:         2,
		Interests:         []string{"cultural", "food"},
		Pace:              "moderate",
		AccommodationType: "hotel",
	}
}

func tokyoActivities(t *testing.T) []catalog.Activity {
	t.Helper()
	return catalog.New().Activities("tokyo")
}

func TestGenerateDayCountAndDates(t *testing.T) {
	for _, days := range []int{1, 3, 7, 14} {
		prefs := testPreferences()
		prefs.DurationDays = days

		it := Generate(prefs, tokyoActivities(t))

		if it.TotalDays != days || len(it.Days) != days {
			t.Fatalf("days=%d: got TotalDays=%d len=%d", days, it.TotalDays, len(it.Days))
		}

		start, _ := time.Parse("2006-01-02", prefs.StartDate)
		for i, day := range it.Days {
			if day.DayNumber != i+1 {
				t.Errorf("day %d has number %d", i, day.DayNumber)
			}
			wantDate := start.AddDate(0, 0, i).Format("2006-01-02")
			if day.Date != wantDate {
				t.Errorf("day %d: date %q, want %q", i+1, day.Date, wantDate)
			}
		}

		wantEnd := start.AddDate(0, 0, days-1).Format("2006-01-02")
		if it.EndDate != wantEnd {
			t.Errorf("end date %q, want %q", it.EndDate, wantEnd)
		}
	}
}

func TestGenerateNoActivityAtOrPastNine(t *testing.T) {
	prefs := testPreferences()
	prefs.Pace = "packed"
	prefs.DurationDays = 8

	it := Generate(prefs, tokyoActivities(t))

	for _, day := range it.Days {
		for _, act := range day.Activities {
			if act.Time >= "21:00" {
				t.Errorf("day %d: activity %q starts at %s", day.DayNumber, act.Activity, act.Time)
			}
		}
	}
}

func TestGenerateCutoffIncludesGap(t *testing.T) {
	// Two 5.5h activities fill 09:00-20:30; the half-hour gap pushes a
	// third to exactly 21:00, which must not be scheduled.
	acts := []catalog.Activity{
		{Name: "Full Day Excursion", Type: catalog.TypeSightseeing, DurationHours: 5.5, Price: 80},
		{Name: "Afternoon Trek", Type: catalog.TypeSightseeing, DurationHours: 5.5, Price: 60},
		{Name: "Evening Stroll", Type: catalog.TypeSightseeing, DurationHours: 1, Price: 0},
	}

	prefs := testPreferences()
	prefs.Pace = "packed"
	prefs.DurationDays = 1

	it := Generate(prefs, acts)

	day := it.Days[0]
	if len(day.Activities) != 2 {
		t.Fatalf("expected 2 scheduled activities, got %d: %+v", len(day.Activities), day.Activities)
	}
	for _, act := range day.Activities {
		if act.Time >= "21:00" {
			t.Errorf("activity %q starts at %s", act.Activity, act.Time)
		}
	}
}

func TestGeneratePaceLimits(t *testing.T) {
	tests := []struct {
		pace string
		max  int
	}{
		{"relaxed", 3},
		{"moderate", 4},
		{"packed", 6},
	}

	for _, tt := range tests {
		t.Run(tt.pace, func(t *testing.T) {
			prefs := testPreferences()
			prefs.Pace = tt.pace

			it := Generate(prefs, tokyoActivities(t))
			for _, day := range it.Days {
				if len(day.Activities) > tt.max {
					t.Errorf("day %d has %d activities, pace %s allows %d",
						day.DayNumber, len(day.Activities), tt.pace, tt.max)
				}
			}
		})
	}
}

func TestGenerateActivitiesOrderedWithGaps(t *testing.T) {
	it := Generate(testPreferences(), tokyoActivities(t))

	for _, day := range it.Days {
		for i := 1; i < len(day.Activities); i++ {
			if day.Activities[i].Time < day.Activities[i-1].Time {
				t.Errorf("day %d: activities out of order: %s before %s",
					day.DayNumber, day.Activities[i-1].Time, day.Activities[i].Time)
			}
		}
	}
}

func TestGenerateNoDuplicateActivitiesInDay(t *testing.T) {
	it := Generate(testPreferences(), tokyoActivities(t))

	for _, day := range it.Days {
		seen := map[string]bool{}
		for _, act := range day.Activities {
			if seen[act.Activity] {
				t.Errorf("day %d schedules %q twice", day.DayNumber, act.Activity)
			}
			seen[act.Activity] = true
		}
	}
}

func TestGenerateThemeRotation(t *testing.T) {
	prefs := testPreferences()
	prefs.Interests = []string{"food"}
	prefs.DurationDays = 3

	it := Generate(prefs, tokyoActivities(t))

	// Food interest promotes the food theme to day one.
	if it.Days[0].Theme != ThemeFood {
		t.Errorf("expected day 1 theme %q, got %q", ThemeFood, it.Days[0].Theme)
	}
}

func TestGenerateEmptyActivities(t *testing.T) {
	prefs := testPreferences()
	prefs.DurationDays = 3

	it := Generate(prefs, nil)

	if len(it.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(it.Days))
	}
	for _, day := range it.Days {
		if len(day.Activities) != 0 {
			t.Errorf("expected no scheduled activities, got %d", len(day.Activities))
		}
		// Flat food cost still applies.
		if day.EstimatedDailyCost != 50.0 {
			t.Errorf("expected daily cost 50, got %v", day.EstimatedDailyCost)
		}
	}
}

func TestGenerateSingleDayNoAccommodationCost(t *testing.T) {
	prefs := testPreferences()
	prefs.DurationDays = 1
	prefs.Travelers = 1

	it := Generate(prefs, nil)

	// One day, no activities: total budget is the flat food cost only.
	if it.TotalBudget != 50.0 {
		t.Errorf("expected total budget 50 for a day trip, got %v", it.TotalBudget)
	}
}

func TestGenerateUnparsableStartDateFallsBack(t *testing.T) {
	prefs := testPreferences()
	prefs.StartDate = "sometime soon"

	it := Generate(prefs, tokyoActivities(t))

	start, err := time.Parse("2006-01-02", it.StartDate)
	if err != nil {
		t.Fatalf("start date not a valid date: %q", it.StartDate)
	}
	// Fallback is ~30 days out.
	days := time.Until(start).Hours() / 24
	if days < 28 || days > 31 {
		t.Errorf("expected fallback start ~30 days out, got %.1f days", days)
	}
}

func TestGeneratePackingListDeduplicated(t *testing.T) {
	prefs := testPreferences()
	prefs.Interests = []string{"food", "food", "adventure"}

	it := Generate(prefs, tokyoActivities(t))

	seen := map[string]bool{}
	for _, item := range it.PackingList {
		if seen[item] {
			t.Errorf("duplicate packing item %q", item)
		}
		seen[item] = true
	}
	if !seen["Water bottle"] {
		t.Error("expected adventure packing item")
	}
}

func TestGenerateTipsCappedAtTen(t *testing.T) {
	it := Generate(testPreferences(), tokyoActivities(t))

	if len(it.ImportantTips) > 10 {
		t.Errorf("expected at most 10 tips, got %d", len(it.ImportantTips))
	}
	seen := map[string]bool{}
	for _, tip := range it.ImportantTips {
		if seen[tip] {
			t.Errorf("duplicate tip %q", tip)
		}
		seen[tip] = true
	}
}

func TestGenerateTripName(t *testing.T) {
	it := Generate(testPreferences(), tokyoActivities(t))
	if !strings.Contains(it.TripName, "Tokyo") || !strings.Contains(it.TripName, "5-Day") {
		t.Errorf("unexpected trip name %q", it.TripName)
	}
}

func TestGenerateMealsFallback(t *testing.T) {
	prefs := testPreferences()
	prefs.Destination = "Atlantis"

	it := Generate(prefs, nil)

	meals := it.Days[0].Meals
	for _, slot := range []string{"breakfast", "lunch", "dinner"} {
		if meals[slot] == "" {
			t.Errorf("missing %s suggestion", slot)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	prefs := testPreferences()
	acts := tokyoActivities(t)

	a := Generate(prefs, acts)
	b := Generate(prefs, acts)

	if a.TotalBudget != b.TotalBudget || len(a.Days) != len(b.Days) {
		t.Fatal("generation not deterministic")
	}
	for i := range a.Days {
		if len(a.Days[i].Activities) != len(b.Days[i].Activities) {
			t.Fatalf("day %d differs between runs", i+1)
		}
		for j := range a.Days[i].Activities {
			if a.Days[i].Activities[j] != b.Days[i].Activities[j] {
				t.Fatalf("day %d activity %d differs", i+1, j)
			}
		}
	}
}
