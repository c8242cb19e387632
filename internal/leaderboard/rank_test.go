package leaderboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/football-stats-service/internal/leaderboard"
	"github.com/maxviazov/football-stats-service/internal/model"
)

func player(id int64, name string, td, yd, tk int) model.PlayerSummary {
	return model.PlayerSummary{
		ID: id, PlayerName: name, Position: model.PositionUnknown,
		Touchdowns: td, Yards: yd, Tackles: tk, GamesPlayed: 1,
	}
}

func TestDedupeByID(t *testing.T) {
	in := []model.PlayerSummary{
		player(1, "A", 1, 0, 0),
		player(2, "B", 2, 0, 0),
		player(1, "A dup", 9, 9, 9),
		player(3, "C", 3, 0, 0),
		{PlayerName: "no id"},
	}

	once := leaderboard.DedupeByID(in)
	twice := leaderboard.DedupeByID(once)

	require.Len(t, once, 3)
	assert.Equal(t, once, twice, "dedupe must be idempotent")
	// First occurrence wins and input order is preserved.
	assert.Equal(t, []int64{1, 2, 3}, ids(once))
	assert.Equal(t, "A", once[0].PlayerName)
}

func TestEnsureRanks_CompositeScoreOrdering(t *testing.T) {
	// A: 10*6 + 100*0.1 + 5*0.5 = 72.5, B: 5*6 + 900*0.1 + 2*0.5 = 121.
	a := player(1, "A", 10, 100, 5)
	b := player(2, "B", 5, 900, 2)

	ranked := leaderboard.EnsureRanks([]model.PlayerSummary{a, b})
	require.Len(t, ranked, 2)

	assert.Equal(t, 2, ranked[0].SeasonRank, "A has the lower composite score")
	assert.Equal(t, 1, ranked[1].SeasonRank)
	// Game rank goes by touchdowns: A(10) ahead of B(5).
	assert.Equal(t, 1, ranked[0].GameRank)
	assert.Equal(t, 2, ranked[1].GameRank)
}

func TestEnsureRanks_ContiguousPermutation(t *testing.T) {
	in := []model.PlayerSummary{
		player(1, "A", 3, 250, 12),
		player(2, "B", 3, 250, 12), // exact tie with A
		player(3, "C", 0, 0, 0),
		player(4, "D", 7, 1200, 1),
		player(5, "E", 7, 900, 40),
	}

	ranked := leaderboard.EnsureRanks(in)

	seenSeason := map[int]bool{}
	seenGame := map[int]bool{}
	for _, p := range ranked {
		seenSeason[p.SeasonRank] = true
		seenGame[p.GameRank] = true
	}
	for want := 1; want <= len(ranked); want++ {
		assert.True(t, seenSeason[want], "season rank %d missing", want)
		assert.True(t, seenGame[want], "game rank %d missing", want)
	}
}

func TestEnsureRanks_TiesKeepInputOrder(t *testing.T) {
	// Identical stats: stable sort must leave input order as the only
	// tie-break — no hidden secondary key.
	in := []model.PlayerSummary{
		player(10, "First", 4, 400, 10),
		player(20, "Second", 4, 400, 10),
		player(30, "Third", 4, 400, 10),
	}

	ranked := leaderboard.EnsureRanks(in)

	require.Equal(t, []int64{10, 20, 30}, ids(ranked))
	assert.Equal(t, 1, ranked[0].SeasonRank)
	assert.Equal(t, 2, ranked[1].SeasonRank)
	assert.Equal(t, 3, ranked[2].SeasonRank)
	assert.Equal(t, 1, ranked[0].GameRank)
	assert.Equal(t, 2, ranked[1].GameRank)
	assert.Equal(t, 3, ranked[2].GameRank)
}

func TestEnsureRanks_GameRankYardsTieBreak(t *testing.T) {
	in := []model.PlayerSummary{
		player(1, "FewYards", 6, 100, 0),
		player(2, "ManyYards", 6, 800, 0),
	}

	ranked := leaderboard.EnsureRanks(in)

	assert.Equal(t, 2, ranked[0].GameRank)
	assert.Equal(t, 1, ranked[1].GameRank, "same touchdowns, more yards ranks first")
}

func TestEnsureRanks_GapTriggersFullRecompute(t *testing.T) {
	a := player(1, "A", 10, 0, 0)
	a.SeasonRank, a.GameRank = 5, 5 // stale ranks from a previous collection
	b := player(2, "B", 1, 0, 0)    // unranked: forces recompute of everyone

	ranked := leaderboard.EnsureRanks([]model.PlayerSummary{a, b})

	assert.Equal(t, 1, ranked[0].SeasonRank, "stale rank must be recomputed")
	assert.Equal(t, 2, ranked[1].SeasonRank)
}

func TestEnsureRanks_FullyRankedPassesThrough(t *testing.T) {
	a := player(1, "A", 1, 0, 0)
	a.SeasonRank, a.GameRank = 2, 2
	b := player(2, "B", 9, 0, 0)
	b.SeasonRank, b.GameRank = 1, 1

	ranked := leaderboard.EnsureRanks([]model.PlayerSummary{a, b})

	// Already-complete ranks are respected even if stats changed since.
	assert.Equal(t, 2, ranked[0].SeasonRank)
	assert.Equal(t, 1, ranked[1].SeasonRank)
}

func ids(players []model.PlayerSummary) []int64 {
	out := make([]int64, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}
