package leaderboard

import (
	"strings"

	"github.com/maxviazov/football-stats-service/internal/model"
)

// fallbackPositions is the table the deterministic hash fallback indexes
// into. Order matters: changing it changes every hashed assignment.
var fallbackPositions = [...]string{"QB", "RB", "WR", "TE", "OL", "DL", "LB", "DB"}

// knownNames maps name fragments to positions for rows the store never
// learned a position for. Checked before the stat heuristics.
var knownNames = []struct {
	fragment string
	position string
}{
	{"kittle", "TE"},
	{"samuel", "WR"},
	{"aiyuk", "WR"},
	{"purdy", "QB"},
	{"mccaffrey", "RB"},
	{"bosa", "DE"},
	{"warner", "LB"},
}

// InferPosition returns the row's position, inferring one when the store
// only has the N/A placeholder. Inference is a pure function of
// (name, touchdowns, yards, tackles): first a case-insensitive name
// lookup, then stat heuristics, and as a last resort a deterministic
// hash of the lowercased name into fallbackPositions.
//
// The hash fallback exists so repeated renders agree with each other
// within a process; it is not a contract with external consumers.
func InferPosition(p model.PlayerSummary) string {
	if p.Position != "" && p.Position != model.PositionUnknown {
		return p.Position
	}

	name := strings.ToLower(p.PlayerName)
	for _, k := range knownNames {
		if strings.Contains(name, k.fragment) {
			return k.position
		}
	}

	switch {
	case p.Tackles > 80:
		return "LB"
	case p.Tackles > 30:
		return "DB"
	case p.Touchdowns > 5 && p.Yards > 700:
		return "WR"
	case p.Touchdowns > 5:
		return "RB"
	case p.Yards > 1000:
		return "QB"
	case p.Yards > 500:
		return "WR"
	}

	i := int(hashName(name)) % len(fallbackPositions)
	if i < 0 {
		i += len(fallbackPositions)
	}
	return fallbackPositions[i]
}

// hashName is a 31-based string hash over 32-bit signed arithmetic,
// kept bit-compatible with the dashboard it replaced so hashed fallback
// positions survive the port.
func hashName(s string) int32 {
	var h int32
	for _, c := range s {
		h = h*31 + int32(c)
	}
	return h
}
