// Package music defines generic interfaces and data structures for
// interacting with playlist catalog providers. Implementations can wrap
// Spotify, YouTube or any other service. By depending on this package the
// rest of the application can remain agnostic about the underlying platform.
package music

import (
	"context"
	"errors"
)

// ErrNoMatch indicates a search completed normally but nothing in the
// catalog matched the query. Callers treat this as a normal branch, not a
// failure: the experience flow keeps its generated playlist section and the
// playlist endpoint responds 404.
var ErrNoMatch = errors.New("no playlists found")

// Match describes a playlist found in a provider's catalog. Only the
// metadata needed to enrich a generated playlist section is carried.
type Match struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	Images      []string `json:"images,omitempty"`
	Owner       string   `json:"owner,omitempty"`
}

// Service exposes playlist search. Additional capabilities can be added by
// concrete providers.
type Service interface {
	// SearchPlaylist returns the top playlist matching the query string.
	// The context is used for cancellation and timeout propagation.
	// ErrNoMatch is returned when the result set is empty; any other error
	// means the provider call itself failed.
	SearchPlaylist(ctx context.Context, query string) (Match, error)
}
