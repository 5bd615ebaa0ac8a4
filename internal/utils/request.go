package utils

import (
	"encoding/json"
	"net/http"
)

// DecodeJSONRequest decodes the request body into dst. On failure it writes a
// 400 error response and returns the error; callers should just return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", "Request body must be valid JSON")
		return err
	}
	return nil
}
