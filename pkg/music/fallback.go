// Package music provides interfaces for interacting with catalog services.
// This file implements the ordered fallback search used when a single query
// may be too literal to match anything: several query variants are attempted
// and the first one (in list order) that matches wins.
package music

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FallbackQueries returns the ordered query variants tried for a mood. The
// plain mood comes first, followed by progressively looser rewordings, each
// suffixed with the playlist keyword so the catalog search stays on topic.
func FallbackQueries(mood string) []string {
	mood = strings.TrimSpace(mood)
	return []string{
		mood + " playlist",
		mood + " vibe playlist",
		mood + " " + mood + " playlist",
		mood + " feel playlist",
	}
}

// FirstMatch runs every query against svc and returns the match from the
// earliest query in list order that produced one. Queries run concurrently as
// a latency optimization; the tie-break is list position, never completion
// order. A query that errors is logged and skipped rather than aborting the
// search. ErrNoMatch is returned when at least one query completed cleanly
// with no result; if every query failed outright the first failure is
// returned so callers can distinguish a broken provider (for example
// rejected credentials) from an empty catalog.
func FirstMatch(ctx context.Context, svc Service, queries []string, log logrus.FieldLogger) (Match, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	type result struct {
		match Match
		err   error
	}
	results := make([]result, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		i, q := i, q
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := svc.SearchPlaylist(ctx, q)
			results[i] = result{match: m, err: err}
		}()
	}
	wg.Wait()
	var firstErr error
	cleanMiss := false
	for i, r := range results {
		if r.err == nil {
			return r.match, nil
		}
		if errors.Is(r.err, ErrNoMatch) {
			cleanMiss = true
			continue
		}
		log.WithError(r.err).WithField("query", queries[i]).Warn("catalog query failed")
		if firstErr == nil {
			firstErr = r.err
		}
	}
	if !cleanMiss && firstErr != nil {
		return Match{}, firstErr
	}
	return Match{}, ErrNoMatch
}
