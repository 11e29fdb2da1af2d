package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"oakline/internal/services"
)

// errorResponse is the JSON error body. The message field is what API
// clients surface to users, so it must always be populated.
type errorResponse struct {
	Message string `json:"message"`
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Printf("[HTTP] Failed to encode response: %v", err)
		}
	}
}

// respondError maps a service error to its transport status and a JSON
// error body. Unknown errors become opaque 500s.
func respondError(w http.ResponseWriter, err error) {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		respondJSON(w, svcErr.HTTPStatus(), errorResponse{Message: svcErr.Message})
		return
	}
	log.Printf("[HTTP] Internal error: %v", err)
	respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
}

// decodeBody decodes the request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return services.NewBadRequestError("invalid JSON body")
	}
	return nil
}
