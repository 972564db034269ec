package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is the media type of every body the service writes.
const ContentTypeJSON = "application/json"

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// The body is marshaled before any header is sent, so a marshaling failure
// still produces a clean 500 response. A nil slice is written as [] to keep
// collection endpoints from returning null.
//
// Returns the number of body bytes written and a non-nil error if
// marshaling or writing failed.
//
// Example usage:
//
//	WriteJSON(w, models.HealthResponse{Status: "OK"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}
	if string(jsonData) == "null" && isNilSlice(data) {
		jsonData = []byte("[]")
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
