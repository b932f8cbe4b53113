package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"Vibe-Card-Go/pkg/db"
	"Vibe-Card-Go/pkg/experience"
	"Vibe-Card-Go/pkg/handlers"
	"Vibe-Card-Go/pkg/music"
)

// moodEcho generates a payload whose mood is recoverable from the user
// prompt, so history ordering can be asserted.
type moodEcho struct{}

func (moodEcho) Generate(ctx context.Context, system, user string, maxTokens int) (string, error) {
	mood := strings.TrimPrefix(strings.SplitN(user, "\n", 2)[0], "Mood: ")
	return strings.Replace(validPayload, "Rainy Day Indie", mood, 1), nil
}

func newHistoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	database, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { database.Close() })
	cat := &fakeCatalog{err: music.ErrNoMatch}
	app := &handlers.Application{
		Experiences: &experience.Assembler{Generator: moodEcho{}, Catalog: cat},
		Catalog:     cat,
		Generator:   moodEcho{},
		DB:          database,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/experience", app.ExperienceJSON)
	mux.HandleFunc("/api/history", app.HistoryJSON)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestHistoryCapAcrossRequests runs eleven successful generations from one
// client and verifies exactly the ten most recent are retained, newest
// first.
func TestHistoryCapAcrossRequests(t *testing.T) {
	srv := newHistoryServer(t)
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	client := &http.Client{Jar: jar}

	for i := 0; i < 11; i++ {
		resp, err := client.Get(srv.URL + fmt.Sprintf("/api/experience?mood=mood-%d", i))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("generation %d failed with %d", i, resp.StatusCode)
		}
	}

	resp, err := client.Get(srv.URL + "/api/history")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var entries []db.HistoryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(entries))
	}
	if entries[0].Mood != "mood-10" {
		t.Errorf("newest = %q", entries[0].Mood)
	}
	if entries[9].Mood != "mood-1" {
		t.Errorf("oldest retained = %q; mood-0 should be evicted", entries[9].Mood)
	}
	// Snapshots carry the full experience as returned.
	var exp experience.Experience
	if err := json.Unmarshal(entries[0].Experience, &exp); err != nil {
		t.Fatal(err)
	}
	if exp.Playlist.Name != "mood-10" {
		t.Errorf("snapshot playlist = %q", exp.Playlist.Name)
	}
}

// TestHistoryEmptyWithoutCookie: a fresh client has no history and gets an
// empty list, not an error.
func TestHistoryEmptyWithoutCookie(t *testing.T) {
	srv := newHistoryServer(t)
	resp, err := http.Get(srv.URL + "/api/history")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	var entries []db.HistoryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty history, got %d", len(entries))
	}
}
