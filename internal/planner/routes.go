package planner

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderplan/wanderplan/internal/catalog"
)

// RegisterRoutes mounts the budget endpoint.
func RegisterRoutes(r chi.Router, c *catalog.Catalog, flights FlightEstimator) {
	r.Post("/api/budget/calculate", handleCalculateBudget(c, flights))
}

type budgetRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	BudgetLevel string `json:"budget_level"`
	Travelers   int    `json:"travelers"`
}

func handleCalculateBudget(c *catalog.Catalog, flights FlightEstimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Destination == "" {
			http.Error(w, `{"error":"destination is required"}`, http.StatusBadRequest)
			return
		}
		if req.Days <= 0 {
			req.Days = 5
		}
		if req.BudgetLevel == "" {
			req.BudgetLevel = "moderate"
		}
		if req.Travelers <= 0 {
			req.Travelers = 1
		}

		var baseDaily float64
		if dest, ok := c.Destination(catalog.NormalizeKey(req.Destination)); ok {
			baseDaily = dest.AvgDailyCost
		}

		breakdown := CalculateBudget(req.Destination, baseDaily, req.Days, req.BudgetLevel, req.Travelers, flights)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(breakdown)
	}
}
