// Package youtube implements the music.Service interface using the YouTube
// Data API. Only playlist search is supported. An API key must be provided
// when constructing the client; no token exchange is needed.
//
// Network calls are performed using the provided http.Client allowing
// callers to substitute a test client.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Vibe-Card-Go/pkg/music"
)

// Client provides access to the YouTube Data API.
type Client struct {
	Key  string
	HTTP *http.Client
}

// ensure Client implements the music.Service interface.
var _ music.Service = (*Client)(nil)

// SearchPlaylist queries the YouTube search API for playlists and converts
// the top result into a music.Match. music.ErrNoMatch is returned when the
// result set is empty.
func (c *Client) SearchPlaylist(ctx context.Context, q string) (music.Match, error) {
	if c.Key == "" {
		return music.Match{}, fmt.Errorf("api key required")
	}
	if c.HTTP == nil {
		c.HTTP = &http.Client{Timeout: 10 * time.Second}
	}
	u := "https://www.googleapis.com/youtube/v3/search"
	params := url.Values{
		"part":       {"snippet"},
		"type":       {"playlist"},
		"maxResults": {"5"},
		"q":          {q},
		"key":        {c.Key},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+params.Encode(), nil)
	if err != nil {
		return music.Match{}, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return music.Match{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return music.Match{}, fmt.Errorf("youtube search error: %s", resp.Status)
	}
	var body struct {
		Items []struct {
			ID struct {
				PlaylistID string `json:"playlistId"`
			} `json:"id"`
			Snippet struct {
				Title        string `json:"title"`
				Description  string `json:"description"`
				ChannelTitle string `json:"channelTitle"`
				Thumbnails   struct {
					Default struct {
						URL string `json:"url"`
					} `json:"default"`
				} `json:"thumbnails"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return music.Match{}, err
	}
	if len(body.Items) == 0 {
		return music.Match{}, music.ErrNoMatch
	}
	item := body.Items[0]
	match := music.Match{
		ID:          item.ID.PlaylistID,
		Name:        item.Snippet.Title,
		Description: item.Snippet.Description,
		URL:         "https://www.youtube.com/playlist?list=" + item.ID.PlaylistID,
		Owner:       item.Snippet.ChannelTitle,
	}
	if item.Snippet.Thumbnails.Default.URL != "" {
		match.Images = []string{item.Snippet.Thumbnails.Default.URL}
	}
	return match, nil
}
