// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for all game dates.
const DateLayout = "2006-01-02"

// Date is a calendar date that always serializes as YYYY-MM-DD.
// The original wire API never carries time-of-day, so neither do we.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Game represents one recorded match with its final score.
type Game struct {
	ID            int64  `json:"id"`
	Date          Date   `json:"game_date"`
	Opponent      string `json:"opponent"`
	Venue         string `json:"venue"`
	TeamScore     int    `json:"team_score"`
	OpponentScore int    `json:"opponent_score"`
}

// PlayerGameStat represents one player's recorded performance in one game.
// It cannot outlive its game; deleting the game removes these rows.
type PlayerGameStat struct {
	ID         int64  `json:"id"`
	GameID     int64  `json:"game_id"`
	PlayerName string `json:"player_name"`
	Touchdowns int    `json:"touchdowns"`
	Yards      int    `json:"yards"`
	Tackles    int    `json:"tackles"`
}

// PositionUnknown is the placeholder position carried by rows that have
// not been through position inference.
const PositionUnknown = "N/A"

// PlayerSummary is the aggregated, display-ready view the leaderboard
// operates on. For season views it sums a player's stat rows across
// games; for a single game it wraps that game's rows with GamesPlayed=1.
// SeasonRank and GameRank are transient: zero means "not yet ranked"
// and they are never persisted.
type PlayerSummary struct {
	ID          int64  `json:"id"`
	PlayerName  string `json:"player_name"`
	Position    string `json:"position"`
	Touchdowns  int    `json:"touchdowns"`
	Yards       int    `json:"yards"`
	Tackles     int    `json:"tackles"`
	GamesPlayed int    `json:"games_played"`
	SeasonRank  int    `json:"seasonRank,omitempty"`
	GameRank    int    `json:"gameRank,omitempty"`
}

// DisplayName returns the player's name, or a stable placeholder when
// the stored name is blank or an upstream error string leaked into it.
func (p PlayerSummary) DisplayName() string {
	name := strings.TrimSpace(p.PlayerName)
	if name != "" && !strings.Contains(name, "error:") {
		return name
	}
	return fmt.Sprintf("Player %d", p.ID)
}

// SeedReport describes the outcome of a seeding run.
type SeedReport struct {
	Skipped      bool   `json:"skipped"`
	GamesAdded   int    `json:"games_added"`
	PlayersAdded int    `json:"players_added"`
	Message      string `json:"message"`
}

// SchemaReport is the connectivity/schema diagnostic returned by the
// admin test endpoint.
type SchemaReport struct {
	DatabaseConnection string         `json:"database_connection"`
	Tables             string         `json:"tables"`
	Records            map[string]int `json:"records,omitempty"`
}
