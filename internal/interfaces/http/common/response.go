package common

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the uniform response body of every submission endpoint.
type Envelope struct {
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
	Analysis string `json:"analysis,omitempty"`
}

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *log.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Printf("JSON-encoding mislukt: %v", err)
	}
}

// WriteOK writes the 200 success envelope.
func WriteOK(logger *log.Logger, w http.ResponseWriter) {
	WriteJSON(logger, w, http.StatusOK, Envelope{OK: true})
}

// WriteError writes an error envelope with the given status and message.
func WriteError(logger *log.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, Envelope{OK: false, Error: message})
}
