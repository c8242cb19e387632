package leaderboard

import (
	"sort"

	"github.com/maxviazov/football-stats-service/internal/model"
)

// SeasonScore is the weighted composite used for season ranking:
// touchdowns count 6, yards 0.1, tackles 0.5.
func SeasonScore(p model.PlayerSummary) float64 {
	return float64(p.Touchdowns)*6 + float64(p.Yards)*0.1 + float64(p.Tackles)*0.5
}

// EnsureRanks returns a deduplicated copy of players with SeasonRank and
// GameRank populated. If every row already carries both ranks the input
// passes through untouched; any gap triggers a full recompute of both
// rankings over the whole collection — partial assignment is not a
// supported state.
//
// Season rank orders by SeasonScore descending, game rank by touchdowns
// descending with yards as the only tie-break. Both sorts are stable, so
// remaining ties keep their input order; no further tie-break exists.
// Ranks are 1-based and contiguous by sorted position: equal scores
// still receive distinct consecutive ranks.
func EnsureRanks(players []model.PlayerSummary) []model.PlayerSummary {
	unique := DedupeByID(players)

	needs := false
	for _, p := range unique {
		if p.SeasonRank == 0 || p.GameRank == 0 {
			needs = true
			break
		}
	}
	if !needs {
		return unique
	}

	ranked := make([]model.PlayerSummary, len(unique))
	copy(ranked, unique)

	// Rank via an index permutation so the output keeps input order.
	idx := make([]int, len(ranked))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return SeasonScore(ranked[idx[a]]) > SeasonScore(ranked[idx[b]])
	})
	for pos, i := range idx {
		ranked[i].SeasonRank = pos + 1
	}

	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		pa, pb := ranked[idx[a]], ranked[idx[b]]
		if pa.Touchdowns != pb.Touchdowns {
			return pa.Touchdowns > pb.Touchdowns
		}
		return pa.Yards > pb.Yards
	})
	for pos, i := range idx {
		ranked[i].GameRank = pos + 1
	}

	return ranked
}
