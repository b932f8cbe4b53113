package experience

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"Vibe-Card-Go/pkg/music"
)

// searchTimeout bounds the catalog lookup during enrichment so a slow
// catalog never holds up an otherwise finished experience.
const searchTimeout = 10 * time.Second

// Generator produces raw text from a system/user prompt pair. Implemented by
// the openai client; replaced by fakes in tests.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// Request carries the validated client input for one experience.
type Request struct {
	Mood        string
	Ingredients []string
	LongMode    bool
}

// Assembler orchestrates content generation and catalog enrichment. The
// generation path is the hard gate: any failure there aborts the request.
// Enrichment is best effort and its failures are logged and swallowed so a
// down or rate-limited catalog never blocks the primary experience.
type Assembler struct {
	Generator Generator
	Catalog   music.Service
	Log       logrus.FieldLogger
}

// Build runs the full flow: validate input, generate content, parse and
// validate the model output, then enrich the playlist section from the
// catalog. Generation is issued before the catalog call because it dominates
// latency and does not depend on the catalog result.
func (a *Assembler) Build(ctx context.Context, req Request) (*Experience, error) {
	mood := strings.TrimSpace(req.Mood)
	if mood == "" {
		return nil, &ValidationError{Msg: "mood must not be empty"}
	}

	system, user, maxTokens := BuildPrompt(mood, req.Ingredients, req.LongMode)
	raw, err := a.Generator.Generate(ctx, system, user, maxTokens)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	exp, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	a.enrichPlaylist(ctx, mood, exp)
	return exp, nil
}

// enrichPlaylist overwrites the generated playlist section with a real
// catalog match when one exists. A single query is issued; no match and any
// provider failure both leave the generated section untouched.
func (a *Assembler) enrichPlaylist(ctx context.Context, mood string, exp *Experience) {
	if a.Catalog == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()
	match, err := a.Catalog.SearchPlaylist(ctx, mood+" playlist")
	if err != nil {
		if !errors.Is(err, music.ErrNoMatch) {
			a.logger().WithError(err).WithField("mood", mood).Warn("playlist enrichment failed")
		}
		return
	}
	exp.Playlist.Name = match.Name
	if match.Description != "" {
		exp.Playlist.Description = match.Description
	}
	if match.URL != "" {
		u := match.URL
		exp.Playlist.URL = &u
	}
	if len(match.Images) > 0 {
		exp.Playlist.Images = match.Images
	}
	if match.Owner != "" {
		exp.Playlist.Owner = match.Owner
	}
}

func (a *Assembler) logger() logrus.FieldLogger {
	if a.Log != nil {
		return a.Log
	}
	return logrus.StandardLogger()
}
