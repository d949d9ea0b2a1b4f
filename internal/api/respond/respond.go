package respond

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// OK writes a 200 response with data wrapped in the standard envelope.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, envelope{Data: data})
}

// Created writes a 201 response with data wrapped in the standard envelope.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, envelope{Data: data})
}

// Fail writes an error response with the given status.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, envelope{Error: err.Error()})
}

// JSON writes an arbitrary payload with the given status.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(payload)
}
