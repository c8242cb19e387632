package leaderboard

import (
	"fmt"
	"strings"

	"github.com/maxviazov/football-stats-service/internal/model"
)

// Filters is the composable predicate applied to a player collection.
// Zero values mean "no constraint": an empty Filters passes every row.
type Filters struct {
	Position      string
	MinTouchdowns int
	MinYards      int
	MinTackles    int
	SearchName    string
}

// Active reports whether any criterion is set.
func (f Filters) Active() bool {
	return f.Position != "" || f.MinTouchdowns > 0 || f.MinYards > 0 ||
		f.MinTackles > 0 || f.SearchName != ""
}

// Apply returns the subsequence of players satisfying every set
// criterion. Position matching uses InferPosition so rows edited through
// the CRUD surface filter the same way seeded rows do. Rank fields are
// never touched: filtering operates on whatever ranks are attached.
func (f Filters) Apply(players []model.PlayerSummary) []model.PlayerSummary {
	out := make([]model.PlayerSummary, 0, len(players))
	search := strings.ToLower(f.SearchName)
	for _, p := range players {
		if f.Position != "" && InferPosition(p) != f.Position {
			continue
		}
		if p.Touchdowns < f.MinTouchdowns {
			continue
		}
		if p.Yards < f.MinYards {
			continue
		}
		if p.Tackles < f.MinTackles {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.DisplayName()), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Summary renders the human-readable active-filter line shown above the
// table, e.g. `Position: WR • Min TD: 5 (3 players)`. Empty when no
// filter is active.
func (f Filters) Summary(matched int) string {
	var parts []string
	if f.Position != "" {
		parts = append(parts, "Position: "+f.Position)
	}
	if f.MinTouchdowns > 0 {
		parts = append(parts, fmt.Sprintf("Min TD: %d", f.MinTouchdowns))
	}
	if f.MinYards > 0 {
		parts = append(parts, fmt.Sprintf("Min YD: %d", f.MinYards))
	}
	if f.MinTackles > 0 {
		parts = append(parts, fmt.Sprintf("Min TKL: %d", f.MinTackles))
	}
	if f.SearchName != "" {
		parts = append(parts, fmt.Sprintf("Search: %q", f.SearchName))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("%s (%d players)", strings.Join(parts, " • "), matched)
}
