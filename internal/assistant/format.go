package assistant

import (
	"fmt"
	"strings"

	"github.com/wanderplan/wanderplan/internal/catalog"
	"github.com/wanderplan/wanderplan/internal/planner"
	"github.com/wanderplan/wanderplan/internal/weather"
)

const welcomeMessage = "Hello! I'm your travel planning assistant. I can help you:\n\n" +
	"- **Find destinations** that match your interests\n" +
	"- **Search accommodations** that fit your budget\n" +
	"- **Discover activities** and must-see attractions\n" +
	"- **Create detailed itineraries** for your trip\n" +
	"- **Calculate budgets** and find money-saving tips\n\n" +
	"Where would you like to travel? Or would you like me to recommend some destinations?"

func formatMissingInfo(missing []string) string {
	var b strings.Builder
	b.WriteString("I need a bit more information to create your itinerary. Could you tell me:\n")
	for _, item := range missing {
		fmt.Fprintf(&b, "- Your %s\n", item)
	}
	return b.String()
}

func formatItinerary(it planner.TravelItinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", it.TripName)
	fmt.Fprintf(&b, "**Dates:** %s to %s\n", it.StartDate, it.EndDate)
	fmt.Fprintf(&b, "**Travelers:** %d\n", it.Travelers)
	fmt.Fprintf(&b, "**Estimated Total Budget:** $%.2f\n\n", it.TotalBudget)
	b.WriteString("---\n\n")

	for _, day := range it.Days {
		fmt.Fprintf(&b, "## Day %d: %s\n", day.DayNumber, day.Theme)
		fmt.Fprintf(&b, "*%s*\n\n", day.Date)

		for _, act := range day.Activities {
			fmt.Fprintf(&b, "**%s** - %s\n", act.Time, act.Activity)
			fmt.Fprintf(&b, "   %s", act.Location)
			if act.CostEstimate > 0 {
				fmt.Fprintf(&b, " | $%.0f", act.CostEstimate)
			}
			fmt.Fprintf(&b, " | %gh\n", act.DurationHours)
			if act.Notes != "" {
				fmt.Fprintf(&b, "   Best time: %s\n", act.Notes)
			}
		}

		b.WriteString("\n**Meals:**\n")
		for _, slot := range []string{"breakfast", "lunch", "dinner"} {
			if suggestion, ok := day.Meals[slot]; ok {
				fmt.Fprintf(&b, "- %s: %s\n", title(slot), suggestion)
			}
		}

		fmt.Fprintf(&b, "\n**Estimated day cost:** $%.2f\n\n", day.EstimatedDailyCost)
		b.WriteString("---\n\n")
	}

	acc := it.Accommodation
	b.WriteString("## Accommodation\n")
	fmt.Fprintf(&b, "**Type:** %s\n", title(acc.Type))
	fmt.Fprintf(&b, "**Area:** %s\n", acc.RecommendedArea)
	fmt.Fprintf(&b, "**Check-in/out:** %s / %s\n\n", acc.CheckIn, acc.CheckOut)

	b.WriteString("## Packing List\n")
	for _, item := range it.PackingList {
		fmt.Fprintf(&b, "- %s\n", item)
	}

	b.WriteString("\n## Important Tips\n")
	for _, tip := range it.ImportantTips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}

	return b.String()
}

func formatDestinations(results []catalog.DestinationSummary) string {
	var b strings.Builder
	b.WriteString("Based on your preferences, here are some great destination options:\n\n")

	for i, dest := range results {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "**%d. %s, %s**\n", i+1, dest.Name, dest.Country)
		fmt.Fprintf(&b, "   %s\n", dest.Description)
		fmt.Fprintf(&b, "   - Best seasons: %s\n", strings.Join(dest.BestSeason, ", "))
		fmt.Fprintf(&b, "   - Average daily cost: $%.0f\n", dest.AvgDailyCost)
		fmt.Fprintf(&b, "   - Top attractions: %s\n\n", strings.Join(dest.TopAttractions, ", "))
	}

	b.WriteString("Would you like more details about any of these destinations? ")
	b.WriteString("Or let me know your preferred destination to continue planning!")
	return b.String()
}

func formatAccommodations(destination string, options []catalog.Accommodation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are accommodation options in %s:\n\n", destination)

	for _, acc := range options {
		fmt.Fprintf(&b, "**%s** (%s)\n", acc.Name, title(acc.Type))
		fmt.Fprintf(&b, "   - $%.0f/night | Rating: %.1f/5\n", acc.PricePerNight, acc.Rating)
		fmt.Fprintf(&b, "   - Location: %s (%.1fkm from center)\n", acc.Location, acc.DistanceToCenter)
		amenities := acc.Amenities
		if len(amenities) > 4 {
			amenities = amenities[:4]
		}
		fmt.Fprintf(&b, "   - Amenities: %s\n\n", strings.Join(amenities, ", "))
	}

	b.WriteString("Would you like me to find different options or continue planning your trip?")
	return b.String()
}

func formatActivities(destination string, options []catalog.Activity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are recommended activities in %s:\n\n", destination)

	for i, act := range options {
		if i == 6 {
			break
		}
		fmt.Fprintf(&b, "**%s** (%s)\n", act.Name, title(act.Type))
		fmt.Fprintf(&b, "   %s\n", act.Description)
		fmt.Fprintf(&b, "   - Duration: %g hours | Cost: $%.0f\n", act.DurationHours, act.Price)
		fmt.Fprintf(&b, "   - Best time: %s\n\n", act.BestTime)
	}

	b.WriteString("I can include any of these in your itinerary. What catches your interest?")
	return b.String()
}

func formatBudget(budget planner.BudgetBreakdown) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's a budget estimate for your %d-day trip to %s:\n\n",
		budget.Days, budget.Destination)
	fmt.Fprintf(&b, "**Total Estimated Budget: $%.2f**\n", budget.TotalEstimate)
	fmt.Fprintf(&b, "(For %d traveler(s))\n\n", budget.Travelers)

	b.WriteString("**Breakdown:**\n")
	fmt.Fprintf(&b, "- Accommodation: $%.2f\n", budget.Breakdown.Accommodation)
	fmt.Fprintf(&b, "- Food And Dining: $%.2f\n", budget.Breakdown.FoodAndDining)
	fmt.Fprintf(&b, "- Activities And Tours: $%.2f\n", budget.Breakdown.ActivitiesAndTours)
	fmt.Fprintf(&b, "- Local Transportation: $%.2f\n", budget.Breakdown.LocalTransportation)
	fmt.Fprintf(&b, "- Miscellaneous: $%.2f\n", budget.Breakdown.Miscellaneous)
	fmt.Fprintf(&b, "- Estimated Flights: $%.2f\n", budget.Breakdown.EstimatedFlights)

	fmt.Fprintf(&b, "\n**Daily Average:** $%.2f per person\n\n", budget.DailyAverage)

	b.WriteString("**Money-saving tips:**\n")
	tips := budget.Tips
	if len(tips) > 3 {
		tips = tips[:3]
	}
	for _, tip := range tips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}
	return b.String()
}

func formatForecast(f weather.Forecast) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weather forecast for %s:\n\n", f.Destination)
	fmt.Fprintf(&b, "**Date:** %s\n", f.Date)
	fmt.Fprintf(&b, "**Condition:** %s\n", f.Condition)
	fmt.Fprintf(&b, "**Temperature:** %d°C - %d°C\n", f.LowTempC, f.HighTempC)
	fmt.Fprintf(&b, "**Humidity:** %d%%\n", f.Humidity)
	fmt.Fprintf(&b, "**Chance of rain:** %d%%\n\n", f.RainChance)
	fmt.Fprintf(&b, "**Packing tip:** %s", f.Recommendation)
	return b.String()
}

func formatStatus(c *Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I'm helping you plan a trip to **%s**.\n\n", c.Destination)

	if c.DurationDays > 0 {
		fmt.Fprintf(&b, "- Duration: %d days\n", c.DurationDays)
	}
	if c.BudgetLevel != "" {
		fmt.Fprintf(&b, "- Budget: %s\n", title(c.BudgetLevel))
	}
	if c.Travelers > 0 {
		fmt.Fprintf(&b, "- Travelers: %d\n", c.Travelers)
	}
	if len(c.Interests) > 0 {
		fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(c.Interests, ", "))
	}

	b.WriteString("\nWhat would you like to do next?\n")
	b.WriteString("- Search for accommodations\n")
	b.WriteString("- Find activities and attractions\n")
	b.WriteString("- Check weather forecast\n")
	b.WriteString("- Calculate budget\n")
	b.WriteString("- Generate complete itinerary")
	return b.String()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
