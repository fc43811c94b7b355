// handlers/dashboard_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/canreg/aircraftdash/config"
	"github.com/canreg/aircraftdash/models"
	"github.com/canreg/aircraftdash/registry"
	"github.com/canreg/aircraftdash/services"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Handler ERROR: Marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("Handler API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// decodeRequest reads an optional DashboardRequest body. An empty body is
// valid and means "no filters touched", so the default spec applies.
func decodeRequest(r *http.Request) (models.DashboardRequest, error) {
	var req models.DashboardRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// HealthHandler reports liveness and whether the dataset cache is populated.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": len(registry.Get().Records),
	})
}

// FilterOptionsHandler returns the distinct values and observed bounds the
// frontend needs to build its filter controls.
// GET /api/filters/options
func FilterOptionsHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, services.Options(registry.Get()))
}

// DashboardHandler runs one filter-and-aggregate pass and returns the chart
// payloads for every enabled, non-empty chart.
// POST /api/dashboard with an optional JSON DashboardRequest body.
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	ds := registry.Get()
	spec := services.SpecFromRequest(ds, req)
	respondWithJSON(w, http.StatusOK, services.BuildDashboard(ds, spec))
}

// RecordsHandler returns the raw filtered table for the drill-down viewer.
// POST /api/records with an optional JSON DashboardRequest body.
func RecordsHandler(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	ds := registry.Get()
	spec := services.SpecFromRequest(ds, req)
	limit := config.AppConfig.Dashboard.TableRowLimit
	respondWithJSON(w, http.StatusOK, services.FilteredTable(ds, spec, limit))
}
