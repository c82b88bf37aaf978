package httpapi

import (
	"encoding/json"
	"net/http"
)

// Meta contains response metadata
type Meta struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Response is the standard API response structure
type Response struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondSuccess(w http.ResponseWriter, message string, data any) {
	respondJSON(w, http.StatusOK, Response{
		Meta: Meta{Success: true, Message: message},
		Data: data,
	})
}

// respondError sends an error response with data: null
func respondError(w http.ResponseWriter, status int, message string, details map[string]string) {
	respondJSON(w, status, Response{
		Meta: Meta{Success: false, Message: message, Details: details},
	})
}
