// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize request decoding and response formatting across handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<message>"}. Client errors echo the
// error and log at warn; server errors log the cause and respond with the
// status text only, so storage details never reach the browser.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
		msg = strings.ToLower(http.StatusText(status))
	} else {
		logger.Warn("handler error", "error", err, "status", status)
	}

	RespondJSON(w, status, map[string]string{"error": msg})
}

// DecodeJSON decodes a single JSON object from the request body into v.
// It returns the status code to respond with when decoding fails.
func DecodeJSON(r *http.Request, v any) (int, error) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return http.StatusBadRequest, fmt.Errorf("decode request: %w", err)
	}
	return http.StatusOK, nil
}
