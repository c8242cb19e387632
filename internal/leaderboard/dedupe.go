// Package leaderboard implements the ranking, filtering and sorting
// pipeline behind the player leaderboard. Everything here is a pure
// transformation over PlayerSummary slices: no I/O, no persistence.
//
// The upstream aggregation can hand us the same player more than once
// (a season row and a game row, or repeated fetches), so every entry
// point dedupes before doing anything else.
package leaderboard

import "github.com/maxviazov/football-stats-service/internal/model"

// DedupeByID collapses rows sharing an ID to the first occurrence,
// preserving the relative order of first occurrences. Rows without an
// ID are dropped. Idempotent.
func DedupeByID(players []model.PlayerSummary) []model.PlayerSummary {
	seen := make(map[int64]struct{}, len(players))
	out := make([]model.PlayerSummary, 0, len(players))
	for _, p := range players {
		if p.ID == 0 {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// DedupeByName keeps the first row per display name. The visible table
// and the CSV export both show one line per player name regardless of
// how many stat rows back it.
func DedupeByName(players []model.PlayerSummary) []model.PlayerSummary {
	seen := make(map[string]struct{}, len(players))
	out := make([]model.PlayerSummary, 0, len(players))
	for _, p := range players {
		name := p.DisplayName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, p)
	}
	return out
}
