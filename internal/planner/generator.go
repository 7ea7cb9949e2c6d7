package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/wanderplan/wanderplan/internal/catalog"
)

const (
	dateLayout = "2006-01-02"

	scheduleStartHour = 9.0
	scheduleEndHour   = 21.0
	activityGapHours  = 0.5
)

// Generate synthesizes a complete day-by-day itinerary from resolved
// preferences and the destination's candidate activities. The output is
// deterministic for a fixed activity ordering.
func Generate(prefs Preferences, activities []catalog.Activity) TravelItinerary {
	start, err := time.Parse(dateLayout, prefs.StartDate)
	if err != nil {
		// Unparsable dates never fail generation; plan a month out.
		start = time.Now().AddDate(0, 0, 30)
	}
	end := start.AddDate(0, 0, prefs.DurationDays-1)

	themes := dayThemes(prefs.Interests, prefs.DurationDays)
	groups := groupActivities(activities)

	days := make([]DayItinerary, 0, prefs.DurationDays)
	for day := 1; day <= prefs.DurationDays; day++ {
		date := start.AddDate(0, 0, day-1)
		days = append(days, generateDay(day, date, themes[(day-1)%len(themes)], groups, prefs))
	}

	accommodationCost := estimateAccommodation(prefs)
	totalBudget := lo.SumBy(days, func(d DayItinerary) float64 { return d.EstimatedDailyCost })
	totalBudget += accommodationCost

	return TravelItinerary{
		Destination:   prefs.Destination,
		TripName:      fmt.Sprintf("%s %d-Day Adventure", prefs.Destination, prefs.DurationDays),
		StartDate:     start.Format(dateLayout),
		EndDate:       end.Format(dateLayout),
		Travelers:     prefs.Travelers,
		TotalDays:     prefs.DurationDays,
		Days:          days,
		Accommodation: accommodationDetails(prefs, accommodationCost),
		TotalBudget:   round2(totalBudget * float64(prefs.Travelers)),
		PackingList:   packingList(prefs.Interests),
		ImportantTips: importantTips(prefs.Destination),
	}
}

// activityGroups keeps activities bucketed by type while preserving the
// first-seen order of both the types and their members.
type activityGroups struct {
	order  []string
	byType map[string][]catalog.Activity
}

func groupActivities(activities []catalog.Activity) activityGroups {
	groups := activityGroups{byType: make(map[string][]catalog.Activity)}
	for _, act := range activities {
		typ := act.Type
		if typ == "" {
			typ = catalog.TypeSightseeing
		}
		if _, seen := groups.byType[typ]; !seen {
			groups.order = append(groups.order, typ)
		}
		groups.byType[typ] = append(groups.byType[typ], act)
	}
	return groups
}

// dayThemes builds the theme rotation: themes promoted by the traveler's
// interests first, then the rest of the catalog for variety, truncated to
// the trip length.
func dayThemes(interests []string, durationDays int) []string {
	var themes []string
	for _, interest := range interests {
		themes = append(themes, interestThemes[normalizeTag(interest)]...)
	}
	for _, theme := range allThemes {
		if !lo.Contains(themes, theme) {
			themes = append(themes, theme)
		}
	}
	if len(themes) == 0 {
		return allThemes
	}
	if durationDays > 0 && len(themes) > durationDays {
		themes = themes[:durationDays]
	}
	return themes
}

func generateDay(dayNumber int, date time.Time, theme string, groups activityGroups, prefs Preferences) DayItinerary {
	selected := selectDayActivities(theme, groups, prefs)

	dailyCost := lo.SumBy(selected, func(a ScheduledActivity) float64 { return a.CostEstimate })
	dailyCost += foodCost(prefs.BudgetLevel)

	return DayItinerary{
		DayNumber:          dayNumber,
		Date:               date.Format(dateLayout),
		Theme:              theme,
		Activities:         selected,
		Meals:              recommendMeals(prefs.Destination),
		EstimatedDailyCost: round2(dailyCost),
	}
}

// selectDayActivities fills a day's schedule: candidates of the theme's
// preferred types first, then up to two of every other type for variety,
// deduplicated by name, scheduled from 09:00 with half-hour gaps until the
// pace cap or the 21:00 cutoff is reached.
func selectDayActivities(theme string, groups activityGroups, prefs Preferences) []ScheduledActivity {
	preferredTypes, ok := themeTypes[theme]
	if !ok {
		preferredTypes = []string{catalog.TypeSightseeing, catalog.TypeCultural}
	}

	var candidates []catalog.Activity
	for _, typ := range preferredTypes {
		candidates = append(candidates, groups.byType[typ]...)
	}
	for _, typ := range groups.order {
		if lo.Contains(preferredTypes, typ) {
			continue
		}
		acts := groups.byType[typ]
		candidates = append(candidates, acts[:min(2, len(acts))]...)
	}

	candidates = lo.UniqBy(candidates, func(a catalog.Activity) string { return a.Name })

	maxActivities, ok := maxActivitiesPerDay[prefs.Pace]
	if !ok {
		maxActivities = maxActivitiesPerDay["moderate"]
	}

	var selected []ScheduledActivity
	clock := scheduleStartHour
	for _, act := range candidates {
		if len(selected) >= maxActivities {
			break
		}

		// The gap counts toward the start time; nothing starts at or
		// after the 21:00 cutoff.
		start := clock
		if len(selected) > 0 {
			start += activityGapHours
		}
		if start >= scheduleEndHour {
			break
		}

		duration := act.DurationHours
		if duration <= 0 {
			duration = 2.0
		}

		selected = append(selected, ScheduledActivity{
			Time:          clockString(start),
			Activity:      act.Name,
			DurationHours: duration,
			Location:      prefs.Destination,
			CostEstimate:  act.Price,
			Notes:         act.BestTime,
		})

		clock = start + duration
	}

	return selected
}

func clockString(hour float64) string {
	h := int(hour)
	m := int(math.Round(math.Mod(hour, 1) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

func foodCost(tier string) float64 {
	if cost, ok := dailyFoodCost[tier]; ok {
		return cost
	}
	return dailyFoodCost["moderate"]
}

// estimateAccommodation prices the trip's lodging: nightly rate by type,
// scaled by budget tier, for duration−1 nights (no overnight on a day trip).
func estimateAccommodation(prefs Preferences) float64 {
	rate, ok := nightlyRates[prefs.AccommodationType]
	if !ok {
		rate = nightlyRates["hotel"]
	}
	if mult, ok := lodgingTierMultipliers[prefs.BudgetLevel]; ok {
		rate *= mult
	}

	nights := prefs.DurationDays - 1
	if nights < 0 {
		nights = 0
	}
	return rate * float64(nights)
}

func accommodationDetails(prefs Preferences, totalCost float64) AccommodationDetails {
	desc, ok := accommodationDescriptions[prefs.AccommodationType]
	if !ok {
		desc = "Comfortable accommodation"
	}

	nights := max(1, prefs.DurationDays-1)
	return AccommodationDetails{
		Type:                 prefs.AccommodationType,
		Description:          desc,
		RecommendedArea:      fmt.Sprintf("Central %s", prefs.Destination),
		CheckIn:              "15:00",
		CheckOut:             "11:00",
		EstimatedNightlyRate: round2(totalCost / float64(nights)),
	}
}

func recommendMeals(destination string) map[string]string {
	if meals, ok := mealRecommendations[catalog.NormalizeKey(destination)]; ok {
		return meals
	}
	return defaultMeals
}

func packingList(interests []string) []string {
	items := append([]string(nil), packingEssentials...)
	for _, interest := range interests {
		items = append(items, interestPackingItems[normalizeTag(interest)]...)
	}
	return lo.Uniq(items)
}

func importantTips(destination string) []string {
	tips := append([]string(nil), generalTips...)
	tips = append(tips, destinationTips[catalog.NormalizeKey(destination)]...)
	if len(tips) > 10 {
		tips = tips[:10]
	}
	return tips
}

func normalizeTag(tag string) string {
	return catalog.NormalizeKey(tag)
}
