// Package middleware holds the HTTP middleware shared by every route and the
// JSON envelope all responses are written in.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(handler) results in mw1(mw2(handler)), so mw1 runs first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// FieldError is one entry of Envelope.Errors.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Envelope is the body of every API response.
type Envelope struct {
	Code    domain.Status `json:"code"`
	Message string        `json:"message"`
	Data    any           `json:"data,omitempty"`
	Errors  []FieldError  `json:"errors,omitempty"`
}

// WriteEnvelope writes env as JSON with the given HTTP status.
func WriteEnvelope(w http.ResponseWriter, httpStatus int, env Envelope) {
	if env.Message == "" {
		env.Message = env.Code.String()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(env)
}
