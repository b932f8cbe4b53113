// History endpoints and the best-effort archiving of generated experiences.
// History rows are scoped to an anonymous client cookie; this is not an
// authentication mechanism, it only keeps one browser's log separate from
// another's.
package handlers

import (
	"net/http"

	"Vibe-Card-Go/pkg/db"
)

// clientCookie names the cookie carrying the anonymous history scope.
const clientCookie = "vibe_client"

// archive stores a generated experience in the client's history. Failures
// are logged and swallowed: history is a convenience, not part of the
// response contract. Must run before the response body is written because it
// may set the client cookie.
func (app *Application) archive(w http.ResponseWriter, r *http.Request, mood string, experience any) {
	if app.DB == nil {
		return
	}
	clientID := ""
	if c, err := r.Cookie(clientCookie); err == nil && c.Value != "" {
		clientID = c.Value
	}
	if clientID == "" {
		id, err := db.NewClientID()
		if err != nil {
			log.WithError(err).Warn("client id generation failed")
			return
		}
		clientID = id
		http.SetCookie(w, &http.Cookie{
			Name:     clientCookie,
			Value:    clientID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	if err := app.DB.AddHistory(r.Context(), clientID, mood, experience); err != nil {
		log.WithError(err).Warn("archive experience failed")
	}
}

// HistoryJSON returns the requesting client's archived experiences, newest
// first, capped at the ten most recent. Clients without a cookie simply have
// no history yet.
func (app *Application) HistoryJSON(w http.ResponseWriter, r *http.Request) {
	entries := []db.HistoryEntry{}
	c, err := r.Cookie(clientCookie)
	if err != nil || c.Value == "" || app.DB == nil {
		respondJSON(w, http.StatusOK, entries)
		return
	}
	stored, err := app.DB.ListHistory(r.Context(), c.Value)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if stored != nil {
		entries = stored
	}
	respondJSON(w, http.StatusOK, entries)
}
