package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the catalog read endpoints.
func RegisterRoutes(r chi.Router, c *Catalog) {
	r.Get("/api/destinations", handleListDestinations(c))
	r.Get("/api/destinations/search", handleSearchDestinations(c))
	r.Get("/api/accommodations/search", handleSearchAccommodations(c))
	r.Get("/api/activities/search", handleSearchActivities(c))
}

type destinationListing struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	Description  string   `json:"description"`
	BestSeason   []string `json:"best_season"`
	AvgDailyCost float64  `json:"avg_daily_cost"`
	SafetyRating float64  `json:"safety_rating"`
}

func handleListDestinations(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings := make([]destinationListing, 0, len(c.Keys()))
		for _, key := range c.Keys() {
			dest, _ := c.Destination(key)
			listings = append(listings, destinationListing{
				ID:           key,
				Name:         dest.Name,
				Country:      dest.Country,
				Description:  dest.Description,
				BestSeason:   dest.BestSeason,
				AvgDailyCost: dest.AvgDailyCost,
				SafetyRating: dest.SafetyRating,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"destinations": listings,
			"count":        len(listings),
		})
	}
}

func handleSearchDestinations(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		budget := r.URL.Query().Get("budget")
		season := r.URL.Query().Get("season")

		results := c.SearchDestinations(query, budget, season)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"results": results,
			"query":   query,
		})
	}
}

func handleSearchAccommodations(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destination := r.URL.Query().Get("destination")
		if destination == "" {
			http.Error(w, `{"error":"destination is required"}`, http.StatusBadRequest)
			return
		}

		accType := r.URL.Query().Get("type")
		maxPrice := parseFloatParam(r, "max_price")

		results := c.FindAccommodations(destination, accType, maxPrice)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"accommodations": results,
			"destination":    destination,
		})
	}
}

func handleSearchActivities(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destination := r.URL.Query().Get("destination")
		if destination == "" {
			http.Error(w, `{"error":"destination is required"}`, http.StatusBadRequest)
			return
		}

		actType := r.URL.Query().Get("type")
		maxDuration := parseFloatParam(r, "max_duration")

		results := c.FindActivities(destination, actType, maxDuration)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"activities":  results,
			"destination": destination,
		})
	}
}

func parseFloatParam(r *http.Request, name string) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
