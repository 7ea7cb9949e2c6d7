package weather

import (
	"math/rand"
	"time"

	"github.com/wanderplan/wanderplan/internal/catalog"
)

const dateLayout = "2006-01-02"

// Forecast is a synthesized weather outlook for a destination on a date.
// Temperatures come from a per-city climate table with a small jitter, so
// repeated calls for the same date vary the way a real forecast would.
type Forecast struct {
	Destination    string `json:"destination"`
	Date           string `json:"date"`
	Season         string `json:"season"`
	HighTempC      int    `json:"high_temp_c"`
	LowTempC       int    `json:"low_temp_c"`
	Condition      string `json:"condition"`
	Humidity       int    `json:"humidity"`
	RainChance     int    `json:"rain_chance"`
	Recommendation string `json:"recommendation"`
}

type tempRange struct {
	low, high int
}

var climateData = map[string]map[string]tempRange{
	"tokyo": {
		"winter": {5, 12}, "spring": {12, 22}, "summer": {25, 32}, "autumn": {15, 25},
	},
	"paris": {
		"winter": {3, 8}, "spring": {10, 18}, "summer": {18, 28}, "autumn": {10, 18},
	},
	"seoul": {
		"winter": {-5, 5}, "spring": {10, 20}, "summer": {23, 32}, "autumn": {10, 22},
	},
	"bangkok": {
		"winter": {25, 32}, "spring": {28, 35}, "summer": {27, 33}, "autumn": {26, 32},
	},
	"new_york": {
		"winter": {-2, 6}, "spring": {10, 20}, "summer": {22, 30}, "autumn": {12, 22},
	},
}

var defaultClimate = map[string]tempRange{
	"winter": {5, 15}, "spring": {15, 25}, "summer": {25, 35}, "autumn": {15, 25},
}

var conditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Light Rain", "Clear"}

var packingAdvice = map[string]string{
	"winter": "Pack warm layers, a good coat, and waterproof boots. Don't forget gloves and a scarf.",
	"spring": "Bring layers as temperatures vary. A light jacket and umbrella are essential.",
	"summer": "Pack light, breathable clothing. Sunscreen and sunglasses are must-haves.",
	"autumn": "Layer clothing for changing temperatures. A rain jacket is recommended.",
}

// Service produces forecasts. The rand source is injected so tests can pin it.
type Service struct {
	rng *rand.Rand
}

func New() *Service {
	return &Service{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func NewWithSource(src rand.Source) *Service {
	return &Service{rng: rand.New(src)}
}

// Forecast builds an outlook for the given destination and date. An
// unparsable date falls back to a week out.
func (s *Service) Forecast(destination, date string) Forecast {
	when, err := time.Parse(dateLayout, date)
	if err != nil {
		when = time.Now().AddDate(0, 0, 7)
		date = when.Format(dateLayout)
	}

	season := seasonOf(when.Month())
	climate, ok := climateData[catalog.NormalizeKey(destination)]
	if !ok {
		climate = defaultClimate
	}
	temps := climate[season]

	return Forecast{
		Destination:    destination,
		Date:           date,
		Season:         season,
		HighTempC:      temps.high + s.rng.Intn(7) - 3,
		LowTempC:       temps.low + s.rng.Intn(5) - 2,
		Condition:      conditions[s.rng.Intn(len(conditions))],
		Humidity:       40 + s.rng.Intn(41),
		RainChance:     s.rng.Intn(51),
		Recommendation: packingRecommendation(season),
	}
}

func seasonOf(month time.Month) string {
	switch month {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}

func packingRecommendation(season string) string {
	if advice, ok := packingAdvice[season]; ok {
		return advice
	}
	return "Pack versatile clothing for variable weather."
}
