// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/football-stats-service/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrUpstream marks failures of the external stat generator (maps to HTTP 502).
var ErrUpstream = errors.New("upstream data source unavailable")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// GameService defines game-oriented use cases.
type GameService interface {
	CreateGame(ctx context.Context, g model.Game) (model.Game, error)
	GetGame(ctx context.Context, id int64) (model.Game, error)
	ListGames(ctx context.Context) ([]model.Game, error)
	UpdateGame(ctx context.Context, g model.Game) error
	// DeleteGame removes the game and, in the same transaction, every
	// player stat row recorded for it.
	DeleteGame(ctx context.Context, id int64) error
}

// PlayerService defines player-stat use cases.
type PlayerService interface {
	CreateStat(ctx context.Context, s model.PlayerGameStat) (model.PlayerGameStat, error)
	GetSummary(ctx context.Context, id int64) (model.PlayerSummary, error)
	// ListSeason returns season-aggregated summaries, one per player name.
	ListSeason(ctx context.Context) ([]model.PlayerSummary, error)
	// ListByGame returns one game's rows, ranked and roughly classified.
	ListByGame(ctx context.Context, gameID int64) ([]model.PlayerSummary, error)
	UpdateStat(ctx context.Context, s model.PlayerGameStat) error
	DeleteStat(ctx context.Context, id int64) error
}

// SeedService defines the dataset bootstrap and maintenance use cases.
type SeedService interface {
	// Init populates an empty database from the external generator and
	// is a no-op when data already exists.
	Init(ctx context.Context) (model.SeedReport, error)
	// Regenerate wipes both tables and reimports a fresh dataset.
	Regenerate(ctx context.Context) (model.SeedReport, error)
	// SchemaTest reports connectivity, schema completeness and row counts.
	SchemaTest(ctx context.Context) (model.SchemaReport, error)
}
