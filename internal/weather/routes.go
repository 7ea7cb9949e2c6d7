package weather

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the forecast endpoint.
func RegisterRoutes(r chi.Router, s *Service) {
	r.Get("/api/weather", handleForecast(s))
}

func handleForecast(s *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destination := r.URL.Query().Get("destination")
		if destination == "" {
			http.Error(w, `{"error":"destination is required"}`, http.StatusBadRequest)
			return
		}
		date := r.URL.Query().Get("date")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(s.Forecast(destination, date))
	}
}
