package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	httperrors "phillymounting/internal/errors"
)

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps service errors to their HTTP status. Anything that is not
// an HTTPError is treated as an internal failure and kept opaque.
func writeError(w http.ResponseWriter, err error) {
	var httpErr *httperrors.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusInternalServerError {
			log.Printf("internal error: %v", httpErr.Unwrap())
		}
		writeJSON(w, httpErr.Code, map[string]string{"error": httpErr.Message})
		return
	}
	log.Printf("internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
