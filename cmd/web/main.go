// Command web initializes the vibe card application and starts the HTTP
// server. Configuration is provided via environment variables (a local .env
// file is honoured) for the catalog and completion provider credentials and
// the database location. The server serves a JSON API plus a Prometheus
// metrics endpoint.
package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"Vibe-Card-Go/pkg/db"
	"Vibe-Card-Go/pkg/experience"
	"Vibe-Card-Go/pkg/handlers"
	"Vibe-Card-Go/pkg/music"
	"Vibe-Card-Go/pkg/openai"
	"Vibe-Card-Go/pkg/spotify"
	"Vibe-Card-Go/pkg/youtube"
)

// main configures application dependencies and starts the HTTP server.
func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// A .env file is a development convenience; in production the
	// variables come from the environment directly.
	_ = godotenv.Load()

	// All three credentials are required. Refusing to start beats serving
	// traffic that can only fail.
	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	apiKey := os.Getenv("OPENAI_API_KEY")
	if clientID == "" || clientSecret == "" {
		log.Fatal("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must be set")
	}
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY must be set")
	}

	generator := &openai.Client{
		APIKey: apiKey,
		Model:  os.Getenv("OPENAI_MODEL"),
	}

	// The Spotify catalog is the default; MUSIC_SERVICE=youtube switches
	// the provider without touching the rest of the wiring.
	var catalog music.Service = spotify.New(clientID, clientSecret)
	if os.Getenv("MUSIC_SERVICE") == "youtube" {
		catalog = &youtube.Client{Key: os.Getenv("YOUTUBE_API_KEY")}
	}

	// DATABASE_PATH allows the SQLite file to be customised. It defaults
	// to a file named vibecard.db in the working directory.
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "vibecard.db"
	}
	database, err := db.New(dbPath)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}
	defer database.Close()

	app := &handlers.Application{
		Experiences: &experience.Assembler{Generator: generator, Catalog: catalog, Log: log},
		Catalog:     catalog,
		Generator:   generator,
		DB:          database,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", app.Home)
	mux.HandleFunc("/api/playlist", app.PlaylistJSON)
	mux.HandleFunc("/api/experience", app.ExperienceJSON)
	mux.HandleFunc("/api/history", app.HistoryJSON)
	mux.Handle("/metrics", promhttp.Handler())

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":4000"
	}
	log.WithField("addr", addr).Info("starting server")
	if err := http.ListenAndServe(addr, handlers.SecurityHeaders(handlers.Metrics(mux))); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
