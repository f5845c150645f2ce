package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// MessageResponse is the body of single-message responses (404, 403, 401, 500).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorsResponse is the body of 400 responses, one message per violated constraint.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// RespondJSON sends a JSON response with the given status code.
// Logs encoding errors to avoid silent failures.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// RespondMessage sends {"message": ...} with the given status code.
func RespondMessage(w http.ResponseWriter, message string, statusCode int) {
	RespondJSON(w, MessageResponse{Message: message}, statusCode)
}

// RespondErrors sends {"errors": [...]} with status 400.
func RespondErrors(w http.ResponseWriter, messages []string) {
	if messages == nil {
		messages = []string{}
	}
	RespondJSON(w, ErrorsResponse{Errors: messages}, http.StatusBadRequest)
}

// RespondCreated sends 201 with an empty body and a Location header.
func RespondCreated(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}

// RespondNoContent sends 204 with an empty body.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
