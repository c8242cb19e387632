package dashboard

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/maxviazov/football-stats-service/internal/leaderboard"
	"github.com/maxviazov/football-stats-service/internal/model"
)

var csvHeader = []string{
	"ID", "Name", "Position", "Touchdowns", "Yards", "Tackles",
	"Games Played", "Season Rank", "Game Rank",
}

// ExportCSV writes the currently visible rows as CSV, one line per
// deduplicated player, positions inferred the same way the table shows
// them.
func (v *View) ExportCSV(w io.Writer) error {
	rows := v.Rows()

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range rows {
		rec := []string{
			strconv.FormatInt(p.ID, 10),
			p.DisplayName(),
			leaderboard.InferPosition(p),
			strconv.Itoa(p.Touchdowns),
			strconv.Itoa(p.Yards),
			strconv.Itoa(p.Tackles),
			strconv.Itoa(p.GamesPlayed),
			rankCell(p.SeasonRank),
			rankCell(p.GameRank),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// rankCell renders a rank for the CSV: zero means "not yet ranked" and
// exports as an empty cell.
func rankCell(rank int) string {
	if rank == 0 {
		return ""
	}
	return strconv.Itoa(rank)
}

// Filename names the export after the current date and view context:
// the selected game's opponent when one is chosen, and a -filtered
// marker when filters are active.
func (v *View) Filename(now time.Time) string {
	var b strings.Builder
	b.WriteString("player-stats-")
	b.WriteString(now.Format(model.DateLayout))
	if g := v.SelectedGame(); g != nil {
		b.WriteString("-vs-")
		b.WriteString(slug(g.Opponent))
	}
	if v.Filters().Active() {
		b.WriteString("-filtered")
	}
	b.WriteString(".csv")
	return b.String()
}

// slug lowercases and strips the opponent name down to a-z0-9 and dashes.
func slug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
