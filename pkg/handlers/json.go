// JSON response helpers and the mapping from internal failures to HTTP
// status codes. The mapping implements the error taxonomy: client input
// problems are 400, upstream credential rejection 401, upstream throttling
// 429, generation and schema failures 500, anything else a generic 500.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	libspotify "github.com/zmb3/spotify"

	"Vibe-Card-Go/pkg/experience"
	"Vibe-Card-Go/pkg/music"
	"Vibe-Card-Go/pkg/openai"
	"Vibe-Card-Go/pkg/spotify"
)

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// respondJSON writes v as the JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("encode response")
	}
}

// respondJSONError writes a JSON error body with the given status.
func respondJSONError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// respondJSONErrorDetails writes a JSON error body carrying a
// machine-readable details string alongside the message.
func respondJSONErrorDetails(w http.ResponseWriter, status int, msg, details string) {
	respondJSON(w, status, errorResponse{Error: msg, Details: details})
}

// statusFor classifies an error from the assembly or catalog flow into a
// status code and user-facing message.
func statusFor(err error) (int, string) {
	var verr *experience.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Msg
	}
	var aerr *spotify.AuthError
	if errors.As(err, &aerr) {
		return http.StatusUnauthorized, "catalog authentication failed"
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return http.StatusUnauthorized, "completion provider rejected credentials"
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests, "completion provider is rate limited, try again shortly"
		default:
			return http.StatusInternalServerError, "content generation failed"
		}
	}
	var serr libspotify.Error
	if errors.As(err, &serr) {
		switch serr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return http.StatusUnauthorized, "catalog authentication failed"
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests, "catalog is rate limited, try again shortly"
		default:
			return http.StatusInternalServerError, "catalog request failed"
		}
	}
	var schemaErr *experience.SchemaError
	if errors.As(err, &schemaErr) {
		return http.StatusInternalServerError, schemaErr.Error()
	}
	var genErr *experience.GenerationError
	if errors.As(err, &genErr) {
		return http.StatusInternalServerError, genErr.Reason
	}
	if errors.Is(err, music.ErrNoMatch) {
		return http.StatusNotFound, "no playlist found for that mood"
	}
	if errors.Is(err, openai.ErrNoContent) {
		return http.StatusInternalServerError, "content generation failed"
	}
	return http.StatusInternalServerError, "internal error"
}
