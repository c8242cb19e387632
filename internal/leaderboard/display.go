package leaderboard

import (
	"sort"

	"github.com/maxviazov/football-stats-service/internal/model"
)

// DisplayRanks densely renumbers the currently visible rows by their
// stored rank so the on-screen rank column reads 1..N even after
// filtering removed rows. The returned map is keyed by player ID.
//
// The stored rank (computed over the full unfiltered set) is left
// untouched; only this remapping changes as the visible set changes.
// Callers pass FieldSeasonRank or FieldGameRank; visible should already
// be deduplicated by name.
func DisplayRanks(visible []model.PlayerSummary, field string) map[int64]int {
	byRank := make([]model.PlayerSummary, len(visible))
	copy(byRank, visible)

	rankOf := func(p model.PlayerSummary) int {
		if field == FieldGameRank {
			return rankOrMissing(p.GameRank)
		}
		return rankOrMissing(p.SeasonRank)
	}
	sort.SliceStable(byRank, func(a, b int) bool {
		return rankOf(byRank[a]) < rankOf(byRank[b])
	})

	out := make(map[int64]int, len(byRank))
	for i, p := range byRank {
		out[p.ID] = i + 1
	}
	return out
}
