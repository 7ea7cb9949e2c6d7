package catalog

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// budgetRanges maps a budget tier to the daily-cost band it matches.
var budgetRanges = map[string][2]float64{
	"budget":   {0, 80},
	"moderate": {80, 160},
	"luxury":   {160, 1000},
}

// SearchDestinations scores every destination against the query, budget tier,
// and season, returning up to five matches sorted by descending score.
// Scoring: +10 name/country substring, +5 description, +3 per attraction,
// +5 budget-band match, +5 season match. If nothing scores above zero the
// first five catalog entries are returned as popular picks.
func (c *Catalog) SearchDestinations(query, budget, season string) []DestinationSummary {
	queryLower := strings.ToLower(query)

	type scored struct {
		score int
		dest  Destination
	}
	var results []scored

	for _, key := range c.keys {
		dest := c.destinations[key]
		score := 0

		if queryLower != "" {
			if strings.Contains(strings.ToLower(dest.Name), queryLower) ||
				strings.Contains(strings.ToLower(dest.Country), queryLower) {
				score += 10
			}
			if strings.Contains(strings.ToLower(dest.Description), queryLower) {
				score += 5
			}
			for _, attraction := range dest.Attractions {
				if strings.Contains(strings.ToLower(attraction), queryLower) {
					score += 3
				}
			}
		}

		if band, ok := budgetRanges[budget]; ok {
			if dest.AvgDailyCost >= band[0] && dest.AvgDailyCost <= band[1] {
				score += 5
			}
		}

		if season != "" {
			if lo.Contains(dest.BestSeason, strings.ToLower(season)) {
				score += 5
			}
		}

		if score > 0 {
			results = append(results, scored{score, dest})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })

	if len(results) == 0 {
		for _, key := range c.keys[:min(5, len(c.keys))] {
			results = append(results, scored{5, c.destinations[key]})
		}
	}
	if len(results) > 5 {
		results = results[:5]
	}

	return lo.Map(results, func(s scored, _ int) DestinationSummary {
		return summarize(s.dest)
	})
}

func summarize(d Destination) DestinationSummary {
	return DestinationSummary{
		Name:           d.Name,
		Country:        d.Country,
		Description:    d.Description,
		BestSeason:     d.BestSeason,
		AvgDailyCost:   d.AvgDailyCost,
		SafetyRating:   d.SafetyRating,
		TopAttractions: d.Attractions[:min(3, len(d.Attractions))],
	}
}
