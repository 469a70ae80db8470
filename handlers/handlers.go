// Package handlers provides the HTTP request handlers for the
// MediVoice API: the voice query endpoint, catalog browsing and
// search, interaction and brand lookups, the speech/LLM adapter
// endpoints and the health check.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/medivoice/medivoice-api/interfaces"
	"github.com/medivoice/medivoice-api/logging"
	"github.com/medivoice/medivoice-api/medicines/entities"
	"github.com/medivoice/medivoice-api/metrics"
	"github.com/medivoice/medivoice-api/search"
	"github.com/medivoice/medivoice-api/validation"
)

// queryRequest is the body accepted by POST /query.
type queryRequest struct {
	Text string `json:"text"`
}

// queryResponse is the body returned by POST /query.
type queryResponse struct {
	Reply string `json:"reply"`
}

// Query answers a voice or typed utterance from the local catalog.
// Empty text is a client error; an unmatched medicine is a normal
// reply, not an error.
func Query(dataStore interfaces.DataStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if err := validation.ValidateQueryText(req.Text); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		reply, err := search.Answer(req.Text, dataStore.GetCatalog())
		if err != nil {
			if errors.Is(err, search.ErrEmptyInput) {
				metrics.QueriesTotal.WithLabelValues("empty").Inc()
				RespondWithError(w, http.StatusBadRequest, "No text provided")
				return
			}
			logging.Error("Query handling failed", "error", err)
			RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		switch reply {
		case search.NotFoundReply:
			metrics.QueriesTotal.WithLabelValues("not_found").Inc()
		case search.TriggerReply:
			metrics.QueriesTotal.WithLabelValues("trigger").Inc()
		default:
			metrics.QueriesTotal.WithLabelValues("answered").Inc()
		}

		RespondWithJSON(w, r, http.StatusOK, queryResponse{Reply: reply})
	}
}

// ServeAllMedicines returns the whole catalog, optionally filtered by
// the class query parameter.
func ServeAllMedicines(dataStore interfaces.DataStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := dataStore.GetCatalog()

		if class := r.URL.Query().Get("class"); class != "" {
			RespondWithJSON(w, r, http.StatusOK, search.MedicinesByClass(class, catalog))
			return
		}

		RespondWithJSON(w, r, http.StatusOK, catalog.All())
	}
}

// ServePagedMedicines returns one catalog page of 10 records.
func ServePagedMedicines(dataStore interfaces.DataStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageNumber := chi.URLParam(r, "pageNumber")
		page, err := strconv.Atoi(pageNumber)
		if err != nil || page < 1 {
			logging.Warn("Unusual user input", "pageNumber", pageNumber)
			RespondWithError(w, http.StatusBadRequest, "Invalid page number")
			return
		}

		all := dataStore.GetCatalog().All()
		pageSize := 10
		start := (page - 1) * pageSize
		end := start + pageSize

		if start >= len(all) {
			RespondWithError(w, http.StatusNotFound, "Page not found")
			return
		}

		if end > len(all) {
			end = len(all)
		}

		totalItems := len(all)
		response := map[string]interface{}{
			"data":       all[start:end],
			"page":       page,
			"pageSize":   pageSize,
			"totalItems": totalItems,
			"maxPage":    (totalItems + pageSize - 1) / pageSize,
		}

		RespondWithJSON(w, r, http.StatusOK, response)
	}
}

// FindMedicine searches the catalog by name, generic name or brand.
func FindMedicine(dataStore interfaces.DataStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if err := validation.ValidateMedicineName(name); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		results := search.SearchAll(name, dataStore.GetCatalog())
		if len(results) == 0 {
			RespondWithError(w, http.StatusNotFound, "No medicines found")
			return
		}

		RespondWithJSON(w, r, http.StatusOK, results)
	}
}

// CheckInteraction looks up the interaction between two medicines.
func CheckInteraction(dataStore interfaces.DataStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		med1 := chi.URLParam(r, "med1")
		med2 := chi.URLParam(r, "med2")

		if err := validation.ValidateMedicineName(med1); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validation.ValidateMedicineName(med2); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		interaction := search.CheckInteraction(med1, med2, dataStore.GetInteractions())
		if interaction == nil {
			RespondWithError(w, http.StatusNotFound, "No known interaction")
			return
		}

		RespondWithJSON(w, r, http.StatusOK, interaction)
	}
}

// GetBrands returns the brand entries for a medicine. An unmatched
// medicine or one without brands yields an empty list, not an error.
func GetBrands(dataStore interfaces.DataStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medicine := chi.URLParam(r, "medicine")
		if err := validation.ValidateMedicineName(medicine); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		brands := search.GetBrands(medicine, dataStore.GetCatalog(), dataStore.GetBrands())
		if brands == nil {
			brands = []entities.Brand{}
		}

		RespondWithJSON(w, r, http.StatusOK, brands)
	}
}
