package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/medivoice/medivoice-api/health"
	"github.com/medivoice/medivoice-api/interfaces"
)

// HealthResponse defines the health payload with stable JSON ordering.
type HealthResponse struct {
	Status        string                 `json:"status"`
	LastUpdate    string                 `json:"last_update"`
	DataAgeHours  float64                `json:"data_age_hours"`
	UptimeSeconds float64                `json:"uptime_seconds"`
	Data          map[string]interface{} `json:"data"`
	System        map[string]interface{} `json:"system"`
}

// HealthCheck reports service health, data counts and memory usage.
func HealthCheck(dataStore interfaces.DataStore) http.HandlerFunc {
	checker := health.NewChecker(dataStore)

	return func(w http.ResponseWriter, r *http.Request) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		lastUpdate := dataStore.GetLastUpdated()
		status, httpStatus := checker.Evaluate()

		response := HealthResponse{
			Status:        status,
			LastUpdate:    lastUpdate.Format(time.RFC3339),
			DataAgeHours:  time.Since(lastUpdate).Hours(),
			UptimeSeconds: time.Since(dataStore.GetServerStartTime()).Seconds(),
			Data: map[string]interface{}{
				"api_version":  "1.0",
				"medicines":    dataStore.GetCatalog().Len(),
				"interactions": dataStore.GetInteractions().Rows(),
				"brands":       dataStore.GetBrands().Rows(),
				"is_updating":  dataStore.IsUpdating(),
				"next_update":  checker.NextUpdate().Format(time.RFC3339),
			},
			System: map[string]interface{}{
				"goroutines": runtime.NumGoroutine(),
				"memory": map[string]interface{}{
					"alloc_mb":       int(m.Alloc / 1024 / 1024),
					"total_alloc_mb": int(m.TotalAlloc / 1024 / 1024),
					"sys_mb":         int(m.Sys / 1024 / 1024),
					"num_gc":         m.NumGC,
				},
			},
		}

		RespondWithJSON(w, r, httpStatus, response)
	}
}
