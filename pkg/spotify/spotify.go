// Package spotify wraps the official Spotify client library providing the
// catalog access used by the web application. It performs authentication
// using the client credentials flow and exposes the minimal playlist search
// interface required by the rest of the application.
//
// A token is acquired fresh for each search so the client holds no state
// between requests. The wrapped library does not accept a context, so
// cancellation is checked explicitly before each call.
package spotify

import (
	"context"
	"errors"
	"time"

	libspotify "github.com/zmb3/spotify"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"Vibe-Card-Go/pkg/music"
)

// tokenTimeout bounds the client credentials exchange.
const tokenTimeout = 5 * time.Second

// searchLimit is the number of results requested per query. Only the first
// is used but a small page keeps the request cheap.
const searchLimit = 5

// AuthError reports a failed credential exchange with the catalog provider.
// Handlers map it to a 401 response.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return "spotify auth: " + e.Err.Error() }

func (e *AuthError) Unwrap() error { return e.Err }

// TokenSource obtains short-lived application tokens using the client
// credentials flow. Credentials come from the Spotify developer dashboard.
type TokenSource struct {
	config clientcredentials.Config
}

// NewTokenSource returns a TokenSource for the supplied credentials. No
// network call is made until Token is invoked.
func NewTokenSource(clientID, clientSecret string) *TokenSource {
	return &TokenSource{config: clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     libspotify.TokenURL,
	}}
}

// Token performs the client credentials exchange and returns a bearer token
// for catalog requests. The exchange is bounded by a 5 second timeout.
// Missing or rejected credentials produce an *AuthError.
func (ts *TokenSource) Token(ctx context.Context) (*oauth2.Token, error) {
	if ts.config.ClientID == "" || ts.config.ClientSecret == "" {
		return nil, &AuthError{Err: errors.New("credentials not configured")}
	}
	ctx, cancel := context.WithTimeout(ctx, tokenTimeout)
	defer cancel()
	tok, err := ts.config.Token(ctx)
	if err != nil {
		return nil, &AuthError{Err: err}
	}
	return tok, nil
}

// searcher defines the subset of the spotify.Client used by this package.
// It allows the concrete client to be replaced in tests.
type searcher interface {
	SearchOpt(query string, t libspotify.SearchType, opt *libspotify.Options) (*libspotify.SearchResult, error)
}

// Client implements music.Service against the Spotify catalog. A fresh token
// is acquired per search via Tokens.
type Client struct {
	Tokens *TokenSource

	// newClient builds the underlying API client for a token. Tests swap
	// this to avoid network calls.
	newClient func(tok *oauth2.Token) searcher
}

// Compile-time interface check ensuring Client satisfies the generic
// music.Service interface used by the rest of the application.
var _ music.Service = (*Client)(nil)

// New returns a Client authenticating with the supplied credentials.
func New(clientID, clientSecret string) *Client {
	return &Client{
		Tokens: NewTokenSource(clientID, clientSecret),
		newClient: func(tok *oauth2.Token) searcher {
			c := libspotify.Authenticator{}.NewClient(tok)
			return &c
		},
	}
}

// SearchPlaylist implements music.Service by querying the Spotify search
// endpoint for playlists. The top result is returned; music.ErrNoMatch
// signals an empty result set. The underlying client does not accept a
// context, so the provided one is checked for cancellation before the call.
func (c *Client) SearchPlaylist(ctx context.Context, query string) (music.Match, error) {
	tok, err := c.Tokens.Token(ctx)
	if err != nil {
		return music.Match{}, err
	}
	if err := ctx.Err(); err != nil {
		return music.Match{}, err
	}
	limit := searchLimit
	results, err := c.newClient(tok).SearchOpt(query, libspotify.SearchTypePlaylist, &libspotify.Options{Limit: &limit})
	if err != nil {
		return music.Match{}, err
	}
	if results.Playlists == nil || len(results.Playlists.Playlists) == 0 {
		return music.Match{}, music.ErrNoMatch
	}
	p := results.Playlists.Playlists[0]
	match := music.Match{
		ID:    string(p.ID),
		Name:  p.Name,
		URL:   p.ExternalURLs["spotify"],
		Owner: p.Owner.DisplayName,
	}
	for _, img := range p.Images {
		match.Images = append(match.Images, img.URL)
	}
	return match, nil
}
