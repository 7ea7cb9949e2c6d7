package catalog

import (
	"fmt"
	"strings"
)

// Catalog holds the static destination, accommodation, and activity tables.
// Read-only after construction; safe for concurrent use.
type Catalog struct {
	keys           []string
	destinations   map[string]Destination
	accommodations map[string][]Accommodation
	activities     map[string][]Activity
}

// New builds a Catalog from the built-in tables.
func New() *Catalog {
	c := &Catalog{
		keys:           make([]string, len(builtinKeys)),
		destinations:   make(map[string]Destination, len(builtinDestinations)),
		accommodations: make(map[string][]Accommodation, len(builtinAccommodations)),
		activities:     make(map[string][]Activity, len(builtinActivities)),
	}
	copy(c.keys, builtinKeys)
	for k, d := range builtinDestinations {
		c.destinations[k] = d
	}
	for k, a := range builtinAccommodations {
		c.accommodations[k] = append([]Accommodation(nil), a...)
	}
	for k, a := range builtinActivities {
		c.activities[k] = append([]Activity(nil), a...)
	}
	return c
}

// NormalizeKey converts a destination display name to its catalog key:
// lowercase with spaces replaced by underscores.
func NormalizeKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Keys returns the catalog keys in declared order.
func (c *Catalog) Keys() []string {
	return c.keys
}

// Destination looks up a destination by name or key.
func (c *Catalog) Destination(name string) (Destination, bool) {
	d, ok := c.destinations[NormalizeKey(name)]
	return d, ok
}

// Destinations returns all destinations in declared order.
func (c *Catalog) Destinations() []Destination {
	out := make([]Destination, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.destinations[k])
	}
	return out
}

// Accommodations returns the lodging options for a destination. Unknown
// destinations get a synthetic generic set so every name is servable.
func (c *Catalog) Accommodations(name string) []Accommodation {
	if accs, ok := c.accommodations[NormalizeKey(name)]; ok {
		return accs
	}
	return syntheticAccommodations(displayName(name))
}

// Activities returns the activities for a destination, falling back to a
// synthetic generic set for unknown destinations.
func (c *Catalog) Activities(name string) []Activity {
	if acts, ok := c.activities[NormalizeKey(name)]; ok {
		return acts
	}
	return syntheticActivities(displayName(name))
}

// FindAccommodations filters a destination's lodging by type and price.
// An empty filter result falls back to the first three options.
func (c *Catalog) FindAccommodations(destination, accType string, maxPrice float64) []Accommodation {
	all := c.Accommodations(destination)

	var results []Accommodation
	for _, acc := range all {
		if accType != "" && acc.Type != accType {
			continue
		}
		if maxPrice > 0 && acc.PricePerNight > maxPrice {
			continue
		}
		results = append(results, acc)
	}

	if len(results) == 0 {
		results = all[:min(3, len(all))]
	}
	if len(results) > 5 {
		results = results[:5]
	}
	return results
}

// FindActivities filters a destination's activities by type and duration.
// An empty filter result falls back to the first five options.
func (c *Catalog) FindActivities(destination, actType string, maxDuration float64) []Activity {
	all := c.Activities(destination)

	var results []Activity
	for _, act := range all {
		if actType != "" && act.Type != actType {
			continue
		}
		if maxDuration > 0 && act.DurationHours > maxDuration {
			continue
		}
		results = append(results, act)
	}

	if len(results) == 0 {
		results = all[:min(5, len(all))]
	}
	if len(results) > 8 {
		results = results[:8]
	}
	return results
}

func syntheticAccommodations(destination string) []Accommodation {
	return []Accommodation{
		{Name: fmt.Sprintf("%s Grand Hotel", destination), Type: "hotel", PricePerNight: 180.0, Rating: 4.5, Amenities: []string{"wifi", "pool", "restaurant"}, Location: "City Center", DistanceToCenter: 0.5},
		{Name: fmt.Sprintf("%s Budget Inn", destination), Type: "hotel", PricePerNight: 80.0, Rating: 4.0, Amenities: []string{"wifi", "breakfast"}, Location: "Downtown", DistanceToCenter: 1.0},
		{Name: fmt.Sprintf("%s Backpackers", destination), Type: "hostel", PricePerNight: 30.0, Rating: 4.2, Amenities: []string{"wifi", "kitchen", "lounge"}, Location: "Tourist Area", DistanceToCenter: 0.8},
		{Name: fmt.Sprintf("%s Luxury Resort", destination), Type: "resort", PricePerNight: 350.0, Rating: 4.8, Amenities: []string{"spa", "pool", "gym", "restaurant", "bar"}, Location: "Beachfront", DistanceToCenter: 2.0},
		{Name: fmt.Sprintf("%s City Apartment", destination), Type: "apartment", PricePerNight: 120.0, Rating: 4.3, Amenities: []string{"kitchen", "wifi", "laundry"}, Location: "Residential", DistanceToCenter: 1.5},
	}
}

func syntheticActivities(destination string) []Activity {
	return []Activity{
		{Name: fmt.Sprintf("%s City Tour", destination), Type: TypeSightseeing, DurationHours: 4.0, Price: 40.0, Description: fmt.Sprintf("Comprehensive tour of %s's highlights", destination), BestTime: TimeMorning, BookingRequired: true},
		{Name: fmt.Sprintf("%s Food Tour", destination), Type: TypeFood, DurationHours: 3.0, Price: 60.0, Description: "Sample local cuisine and street food", BestTime: TimeAfternoon, BookingRequired: true},
		{Name: fmt.Sprintf("Historical %s Walk", destination), Type: TypeCultural, DurationHours: 2.5, Price: 25.0, Description: "Explore historic sites and monuments", BestTime: TimeMorning, BookingRequired: false},
		{Name: fmt.Sprintf("%s Museum Visit", destination), Type: TypeCultural, DurationHours: 3.0, Price: 15.0, Description: "Visit the main museum and art galleries", BestTime: TimeAfternoon, BookingRequired: false},
		{Name: "Local Market Experience", Type: TypeFood, DurationHours: 2.0, Price: 0.0, Description: "Browse local markets and taste authentic food", BestTime: TimeMorning, BookingRequired: false},
	}
}

// displayName keeps a usable title for synthetic entries when the caller
// passed a normalized key rather than a display name.
func displayName(name string) string {
	return strings.TrimSpace(name)
}
