package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Problem describes a failed request independent of the response style.
type Problem struct {
	Status  int
	Title   string   // short label, e.g. "Item not found"
	Message string   // human-readable explanation
	Details []string // per-field messages, validation failures only
	// AvailableRoutes is attached to unknown-route failures.
	AvailableRoutes []string
}

// Envelope is the {success, ...} body written when Responder.Enveloped is set.
type Envelope struct {
	Success         bool     `json:"success"`
	Count           *int     `json:"count,omitempty"`
	Message         string   `json:"message,omitempty"`
	Data            any      `json:"data,omitempty"`
	Error           string   `json:"error,omitempty"`
	Details         []string `json:"details,omitempty"`
	AvailableRoutes []string `json:"availableRoutes,omitempty"`
}

// PlainError is the failure body written when Responder.Enveloped is false.
type PlainError struct {
	Message         string   `json:"message"`
	Details         []string `json:"details,omitempty"`
	AvailableRoutes []string `json:"availableRoutes,omitempty"`
}

// Responder writes success and failure bodies in one of two styles:
// enveloped ({success, count, message, data}) or plain (bare payload, {message} errors).
type Responder struct {
	Enveloped bool
}

// OK writes a single-resource success. message is dropped in plain style.
func (rs Responder) OK(w http.ResponseWriter, status int, message string, data any) {
	if !rs.Enveloped {
		JSON(w, status, data)
		return
	}
	JSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// List writes a collection success. data must marshal to a JSON array.
func (rs Responder) List(w http.ResponseWriter, data any, count int) {
	if !rs.Enveloped {
		JSON(w, http.StatusOK, data)
		return
	}
	JSON(w, http.StatusOK, Envelope{Success: true, Count: &count, Data: data})
}

// Fail writes p using the configured style.
func (rs Responder) Fail(w http.ResponseWriter, p Problem) {
	if !rs.Enveloped {
		JSON(w, p.Status, PlainError{Message: p.Title, Details: p.Details, AvailableRoutes: p.AvailableRoutes})
		return
	}
	JSON(w, p.Status, Envelope{
		Success:         false,
		Error:           p.Title,
		Message:         p.Message,
		Details:         p.Details,
		AvailableRoutes: p.AvailableRoutes,
	})
}
