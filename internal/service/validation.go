package service

import (
	"strings"
	"unicode/utf8"

	"github.com/maxviazov/football-stats-service/internal/model"
)

const maxNameLen = 100

func validateGame(g model.Game) []FieldError {
	var ferrs []FieldError
	if g.Date.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "game_date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if strings.TrimSpace(g.Opponent) == "" {
		ferrs = append(ferrs, FieldError{Field: "opponent", Message: "must not be empty"})
	}
	if utf8.RuneCountInString(g.Opponent) > maxNameLen {
		ferrs = append(ferrs, FieldError{Field: "opponent", Message: "too long"})
	}
	if utf8.RuneCountInString(g.Venue) > maxNameLen {
		ferrs = append(ferrs, FieldError{Field: "venue", Message: "too long"})
	}
	if g.TeamScore < 0 {
		ferrs = append(ferrs, FieldError{Field: "team_score", Message: "must be >= 0"})
	}
	if g.OpponentScore < 0 {
		ferrs = append(ferrs, FieldError{Field: "opponent_score", Message: "must be >= 0"})
	}
	return ferrs
}

func validateStat(s model.PlayerGameStat) []FieldError {
	var ferrs []FieldError
	if s.GameID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "game_id", Message: "must be > 0"})
	}
	if strings.TrimSpace(s.PlayerName) == "" {
		ferrs = append(ferrs, FieldError{Field: "player_name", Message: "must not be empty"})
	}
	if utf8.RuneCountInString(s.PlayerName) > maxNameLen {
		ferrs = append(ferrs, FieldError{Field: "player_name", Message: "too long"})
	}
	if s.Touchdowns < 0 {
		ferrs = append(ferrs, FieldError{Field: "touchdowns", Message: "must be >= 0"})
	}
	if s.Yards < 0 {
		ferrs = append(ferrs, FieldError{Field: "yards", Message: "must be >= 0"})
	}
	if s.Tackles < 0 {
		ferrs = append(ferrs, FieldError{Field: "tackles", Message: "must be >= 0"})
	}
	return ferrs
}
