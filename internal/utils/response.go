package utils

import (
	"encoding/json"
	"net/http"

	"AI-TRAVEL-PLANNER_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a standard error body with the given status
func WriteErrorResponse(w http.ResponseWriter, status int, errLabel, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{
		Error:   errLabel,
		Message: message,
	})
}
