package planner

import "sort"

// OptimizeRoute orders each day's activities by start time. True geographic
// routing would need geocoding; chronological order stands in for it.
func OptimizeRoute(itinerary *TravelItinerary) {
	for i := range itinerary.Days {
		day := &itinerary.Days[i]
		sort.SliceStable(day.Activities, func(a, b int) bool {
			return day.Activities[a].Time < day.Activities[b].Time
		})
	}
}

// BalanceDays trims overloaded days: any day whose total activity hours
// exceed 1.5x the trip average and that has more than two activities loses
// its single longest activity. One pass only; a day can still be above the
// threshold afterwards and would be trimmed again on a later call.
func BalanceDays(itinerary *TravelItinerary) {
	if len(itinerary.Days) == 0 {
		return
	}

	loads := make([]float64, len(itinerary.Days))
	var total float64
	for i, day := range itinerary.Days {
		for _, act := range day.Activities {
			loads[i] += act.DurationHours
		}
		total += loads[i]
	}
	avg := total / float64(len(itinerary.Days))

	for i := range itinerary.Days {
		day := &itinerary.Days[i]
		if loads[i] <= avg*1.5 || len(day.Activities) <= 2 {
			continue
		}

		longest := 0
		for j, act := range day.Activities {
			if act.DurationHours > day.Activities[longest].DurationHours {
				longest = j
			}
		}
		day.Activities = append(day.Activities[:longest], day.Activities[longest+1:]...)
	}
}
