package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tokyo", "tokyo"},
		{"New York City", "new_york_city"},
		{"  Paris ", "paris"},
		{"new_york", "new_york"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDestinationLookup(t *testing.T) {
	c := New()

	dest, ok := c.Destination("Tokyo")
	if !ok {
		t.Fatal("expected tokyo to exist")
	}
	if dest.Country != "Japan" {
		t.Errorf("expected Japan, got %q", dest.Country)
	}

	if _, ok := c.Destination("Atlantis"); ok {
		t.Error("did not expect atlantis in the catalog")
	}
}

func TestKeysOrderStable(t *testing.T) {
	c := New()
	keys := c.Keys()
	if len(keys) != 12 {
		t.Fatalf("expected 12 built-in destinations, got %d", len(keys))
	}
	if keys[0] != "tokyo" || keys[1] != "paris" {
		t.Errorf("unexpected key order: %v", keys[:2])
	}
}

func TestUnknownDestinationSyntheticActivities(t *testing.T) {
	c := New()

	acts := c.FindActivities("Atlantis", "", 0)
	if len(acts) != 5 {
		t.Fatalf("expected exactly 5 synthetic activities, got %d", len(acts))
	}
	allowed := map[string]bool{TypeSightseeing: true, TypeFood: true, TypeCultural: true}
	for _, act := range acts {
		if !allowed[act.Type] {
			t.Errorf("synthetic activity %q has unexpected type %q", act.Name, act.Type)
		}
	}
}

func TestFindActivitiesFilters(t *testing.T) {
	c := New()

	food := c.FindActivities("tokyo", TypeFood, 0)
	for _, act := range food {
		if act.Type != TypeFood {
			t.Errorf("expected only food activities, got %q", act.Type)
		}
	}

	short := c.FindActivities("tokyo", "", 2.0)
	for _, act := range short {
		if act.DurationHours > 2.0 {
			t.Errorf("activity %q exceeds max duration: %v", act.Name, act.DurationHours)
		}
	}
}

func TestFindActivitiesEmptyFilterFallsBack(t *testing.T) {
	c := New()

	// No tokyo activity is of type nature; the filter should fall back
	// rather than return nothing.
	acts := c.FindActivities("tokyo", TypeNature, 0)
	if len(acts) == 0 {
		t.Fatal("expected fallback results for an unmatched filter")
	}
}

func TestFindAccommodationsFilters(t *testing.T) {
	c := New()

	cheap := c.FindAccommodations("paris", "", 100)
	for _, acc := range cheap {
		if acc.PricePerNight > 100 {
			t.Errorf("accommodation %q exceeds max price: %v", acc.Name, acc.PricePerNight)
		}
	}

	hostels := c.FindAccommodations("seoul", "hostel", 0)
	for _, acc := range hostels {
		if acc.Type != "hostel" {
			t.Errorf("expected only hostels, got %q", acc.Type)
		}
	}
}

func TestSearchDestinationsScoring(t *testing.T) {
	c := New()

	results := c.SearchDestinations("japan", "", "")
	if len(results) == 0 {
		t.Fatal("expected results for japan")
	}
	if results[0].Name != "Tokyo" {
		t.Errorf("expected Tokyo first, got %q", results[0].Name)
	}

	// Unmatched query falls back to the first five catalog entries.
	fallback := c.SearchDestinations("xyzzy", "", "")
	if len(fallback) != 5 {
		t.Fatalf("expected 5 fallback results, got %d", len(fallback))
	}
	if fallback[0].Name != "Tokyo" {
		t.Errorf("expected fallback to start with Tokyo, got %q", fallback[0].Name)
	}
}

func TestSearchDestinationsBudgetAndSeason(t *testing.T) {
	c := New()

	results := c.SearchDestinations("", "budget", "winter")
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	// Bangkok (60/day, winter) matches both filters and should rank first.
	if results[0].Name != "Bangkok" {
		t.Errorf("expected Bangkok first, got %q", results[0].Name)
	}
	if len(results[0].TopAttractions) != 3 {
		t.Errorf("expected 3 top attractions, got %d", len(results[0].TopAttractions))
	}
}

func TestSearchDestinationsEmptyQueryFiltersByBudget(t *testing.T) {
	c := New()

	// An empty query scores nothing on text; only band matches rank, so
	// a budget-only search returns in-band destinations rather than the
	// whole catalog.
	results := c.SearchDestinations("", "luxury", "")
	if len(results) != 5 {
		t.Fatalf("expected 5 capped luxury results, got %d", len(results))
	}
	for _, dest := range results {
		if dest.AvgDailyCost < 160 {
			t.Errorf("%s (%v/day) is below the luxury band", dest.Name, dest.AvgDailyCost)
		}
	}

	budget := c.SearchDestinations("", "budget", "")
	if len(budget) != 2 {
		t.Fatalf("expected 2 budget-band results, got %d", len(budget))
	}
	for _, dest := range budget {
		if dest.AvgDailyCost > 80 {
			t.Errorf("%s (%v/day) is above the budget band", dest.Name, dest.AvgDailyCost)
		}
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yml")
	data := []byte(`destinations:
  kyoto:
    name: Kyoto
    country: Japan
    description: Former imperial capital with classical temples and gardens.
    best_season: [spring, autumn]
    attractions: [Fushimi Inari, Kinkaku-ji]
    avg_daily_cost: 120
    currency: JPY
    language: Japanese
    timezone: Asia/Tokyo
    visa_required: false
    safety_rating: 4.8
activities:
  kyoto:
    - name: Fushimi Inari Hike
      type: cultural
      duration_hours: 3
      price: 0
      description: Thousands of vermilion torii gates
      best_time: morning
      booking_required: false
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := New()
	if err := c.LoadOverlay(path); err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}

	dest, ok := c.Destination("Kyoto")
	if !ok {
		t.Fatal("expected kyoto after overlay")
	}
	if dest.AvgDailyCost != 120 {
		t.Errorf("expected daily cost 120, got %v", dest.AvgDailyCost)
	}

	keys := c.Keys()
	if keys[len(keys)-1] != "kyoto" {
		t.Errorf("expected kyoto appended last, got %q", keys[len(keys)-1])
	}

	acts := c.Activities("kyoto")
	if len(acts) != 1 || acts[0].Name != "Fushimi Inari Hike" {
		t.Errorf("unexpected overlay activities: %+v", acts)
	}
}

func setupRouter(t *testing.T) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, New())
	return r
}

func TestRoutes_ListDestinations(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest("GET", "/api/destinations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Destinations []destinationListing `json:"destinations"`
		Count        int                  `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Count != 12 || len(body.Destinations) != 12 {
		t.Errorf("expected 12 destinations, got count=%d len=%d", body.Count, len(body.Destinations))
	}
	if body.Destinations[0].ID != "tokyo" {
		t.Errorf("expected tokyo first, got %q", body.Destinations[0].ID)
	}
}

func TestRoutes_SearchActivitiesRequiresDestination(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest("GET", "/api/activities/search", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRoutes_SearchAccommodationsRequiresDestination(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest("GET", "/api/accommodations/search?type=hotel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRoutes_SearchActivities(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest("GET", "/api/activities/search?destination=tokyo&type=food", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Activities []Activity `json:"activities"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Activities) == 0 {
		t.Fatal("expected activities")
	}
	for _, act := range body.Activities {
		if act.Type != TypeFood {
			t.Errorf("expected food activities only, got %q", act.Type)
		}
	}
}
