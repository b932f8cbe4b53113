// Package handlers contains the HTTP handlers that respond to web requests.
// All API responses are JSON; error bodies carry a short user-facing message
// plus an optional machine-readable details field.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"Vibe-Card-Go/pkg/db"
	"Vibe-Card-Go/pkg/experience"
	"Vibe-Card-Go/pkg/music"
)

var log = logrus.StandardLogger()

// Application holds the dependencies used by the HTTP handlers.
type Application struct {
	Experiences *experience.Assembler
	Catalog     music.Service
	Generator   experience.Generator
	DB          *db.DB
}

// Home serves a minimal page with a form posting to the experience endpoint.
// The real frontend lives elsewhere; this keeps the server usable on its own.
func (app *Application) Home(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, `
		<h1>Vibe Cards</h1>
		<form action="/api/experience" method="get">
			<input type="text" name="mood" placeholder="How are you feeling?">
			<label><input type="checkbox" name="longMode" value="true"> long mode</label>
			<button type="submit">Generate</button>
		</form>
	`)
}

// playlistResponse is the body of a successful catalog-only lookup.
type playlistResponse struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	URL             string `json:"url"`
	MoodDescription string `json:"moodDescription,omitempty"`
}

// PlaylistJSON handles the catalog-only lookup. The mood is expanded into
// the ordered fallback queries; the first match wins and is decorated with a
// short generated mood description. No match at all is a 404.
func (app *Application) PlaylistJSON(w http.ResponseWriter, r *http.Request) {
	mood := strings.TrimSpace(r.URL.Query().Get("mood"))
	if mood == "" {
		respondJSONError(w, http.StatusBadRequest, "mood query parameter is required")
		return
	}
	match, err := music.FirstMatch(r.Context(), app.Catalog, music.FallbackQueries(mood), log)
	if err != nil {
		status, msg := statusFor(err)
		respondJSONError(w, status, msg)
		return
	}
	resp := playlistResponse{
		Name:        match.Name,
		Description: match.Description,
		URL:         match.URL,
	}
	// The blurb is decoration; a generation failure should not cost the
	// caller their match.
	if app.Generator != nil {
		system, user, maxTokens := experience.DescriptionPrompt(mood)
		if text, err := app.Generator.Generate(r.Context(), system, user, maxTokens); err == nil {
			resp.MoodDescription = strings.TrimSpace(text)
		} else {
			log.WithError(err).WithField("mood", mood).Warn("mood description failed")
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// ExperienceJSON handles the main generation endpoint. Input is validated
// before any outbound call; the assembler drives the rest. Successful
// results are archived to the requesting client's history best-effort.
func (app *Application) ExperienceJSON(w http.ResponseWriter, r *http.Request) {
	mood := strings.TrimSpace(r.URL.Query().Get("mood"))
	if mood == "" {
		respondJSONError(w, http.StatusBadRequest, "mood query parameter is required")
		return
	}
	var ingredients []string
	if raw := r.URL.Query().Get("ingredients"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
			respondJSONError(w, http.StatusBadRequest, "ingredients must be a JSON array of strings")
			return
		}
	}
	longMode, _ := strconv.ParseBool(r.URL.Query().Get("longMode"))

	exp, err := app.Experiences.Build(r.Context(), experience.Request{
		Mood:        mood,
		Ingredients: ingredients,
		LongMode:    longMode,
	})
	if err != nil {
		status, msg := statusFor(err)
		var schemaErr *experience.SchemaError
		if errors.As(err, &schemaErr) {
			respondJSONErrorDetails(w, status, msg, schemaErr.Section)
			return
		}
		respondJSONError(w, status, msg)
		return
	}
	app.archive(w, r, mood, exp)
	respondJSON(w, http.StatusOK, exp)
}
