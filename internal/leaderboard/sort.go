package leaderboard

import (
	"sort"
	"strings"

	"github.com/maxviazov/football-stats-service/internal/model"
)

// Sortable fields. The string values double as the wire/table column
// identifiers the dashboard uses.
const (
	FieldName        = "player_name"
	FieldLastName    = "lastName"
	FieldTouchdowns  = "touchdowns"
	FieldYards       = "yards"
	FieldTackles     = "tackles"
	FieldGamesPlayed = "games_played"
	FieldSeasonRank  = "seasonRank"
	FieldGameRank    = "gameRank"
	FieldEfficiency  = "efficiency"
)

// missingRank sorts unranked rows after every ranked one.
const missingRank = 999

// SortState is the current sort selection of the table.
type SortState struct {
	Field     string
	Ascending bool
}

// DefaultSort is the table's initial ordering.
func DefaultSort() SortState {
	return SortState{Field: FieldSeasonRank, Ascending: true}
}

// Toggle returns the sort state after the user selects field: selecting
// the current field flips direction, selecting a new one resets to
// ascending for rank fields and descending for everything else.
func (s SortState) Toggle(field string) SortState {
	if field == s.Field {
		return SortState{Field: s.Field, Ascending: !s.Ascending}
	}
	isRank := field == FieldSeasonRank || field == FieldGameRank
	return SortState{Field: field, Ascending: isRank}
}

// Sort orders a deduplicated player collection by the selected field and
// direction, returning a new slice. Name fields compare case-insensitively;
// unknown fields are treated as numeric with value 0, which leaves the
// input order intact under a stable sort.
func Sort(players []model.PlayerSummary, state SortState) []model.PlayerSummary {
	out := DedupeByID(players)

	switch state.Field {
	case FieldName, FieldLastName:
		key := func(p model.PlayerSummary) string {
			name := strings.ToLower(p.DisplayName())
			if state.Field == FieldName {
				return name
			}
			// Last name is everything after the first space; players
			// with a single name sort before everyone.
			if _, last, ok := strings.Cut(name, " "); ok {
				return last
			}
			return ""
		}
		sort.SliceStable(out, func(a, b int) bool {
			if state.Ascending {
				return key(out[a]) < key(out[b])
			}
			return key(out[a]) > key(out[b])
		})
	default:
		sort.SliceStable(out, func(a, b int) bool {
			va, vb := numericValue(out[a], state.Field), numericValue(out[b], state.Field)
			if state.Ascending {
				return va < vb
			}
			return va > vb
		})
	}
	return out
}

func numericValue(p model.PlayerSummary, field string) float64 {
	switch field {
	case FieldTouchdowns:
		return float64(p.Touchdowns)
	case FieldYards:
		return float64(p.Yards)
	case FieldTackles:
		return float64(p.Tackles)
	case FieldGamesPlayed:
		return float64(p.GamesPlayed)
	case FieldSeasonRank:
		return float64(rankOrMissing(p.SeasonRank))
	case FieldGameRank:
		return float64(rankOrMissing(p.GameRank))
	case FieldEfficiency:
		games := p.GamesPlayed
		if games < 1 {
			games = 1
		}
		return float64(p.Touchdowns) / float64(games)
	default:
		return 0
	}
}

func rankOrMissing(rank int) int {
	if rank == 0 {
		return missingRank
	}
	return rank
}
