package handlers

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/medivoice/medivoice-api/logging"
)

// Minimum response size to consider compression (1KB)
const compressionThreshold = 1024

// RespondWithJSON writes a JSON response, gzip-compressed when the
// client accepts it and the payload is large enough.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err, "payload_type", fmt.Sprintf("%T", payload))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))

	acceptsGzip := r != nil &&
		strings.Contains(strings.ToLower(r.Header.Get("Accept-Encoding")), "gzip")

	if len(data) >= compressionThreshold && acceptsGzip {
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(code)
		gz := gzip.NewWriter(w)
		defer func() {
			if err := gz.Close(); err != nil {
				logging.Warn("Failed to flush gzip writer", "error", err)
			}
		}()
		if _, err := gz.Write(data); err != nil {
			logging.Error("Failed to write compressed response", "error", err)
		}
		return
	}

	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		logging.Error("Failed to write response", "error", err)
	}
}

// RespondWithError writes a JSON error body. Error responses are small
// and never compressed.
func RespondWithError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	jsonResponse, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonResponse); err != nil {
		logging.Error("Failed to write error response", "error", err)
	}
}
