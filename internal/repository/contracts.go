package repository

import (
	"context"

	"github.com/maxviazov/football-stats-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// Game deletion and database seeding are the only multi-statement
// transactions in this service; both go through here.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// GameRepository declares persistence operations for games.
// Implementations return domain models and surface the domain errors
// from errors.go rather than driver codes.
type GameRepository interface {
	Create(ctx context.Context, g model.Game) (model.Game, error)
	GetByID(ctx context.Context, id int64) (model.Game, error)
	// List returns every game ordered by date descending, newest first.
	// The dataset is small by design; there is no pagination.
	List(ctx context.Context) ([]model.Game, error)
	Update(ctx context.Context, g model.Game) error
	// Delete removes only the game row. Callers own the cascade: player
	// rows must be deleted in the same transaction first.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// PlayerRepository declares persistence operations for player stat rows
// and the aggregated views derived from them.
type PlayerRepository interface {
	Create(ctx context.Context, s model.PlayerGameStat) (model.PlayerGameStat, error)
	// GetSummary aggregates the stat rows of the player owning row id,
	// grouped by player name.
	GetSummary(ctx context.Context, id int64) (model.PlayerSummary, error)
	// ListSummaries aggregates all stat rows by player name: summed
	// stats plus a distinct-game count.
	ListSummaries(ctx context.Context) ([]model.PlayerSummary, error)
	// ListByGame returns the raw per-game rows for one game, each with
	// GamesPlayed fixed at 1.
	ListByGame(ctx context.Context, gameID int64) ([]model.PlayerSummary, error)
	Update(ctx context.Context, s model.PlayerGameStat) error
	Delete(ctx context.Context, id int64) error
	DeleteByGame(ctx context.Context, gameID int64) (int64, error)
	Count(ctx context.Context) (int, error)
}

// AdminRepository declares the maintenance operations behind seeding and
// the schema diagnostic endpoint.
type AdminRepository interface {
	// MissingTables reports which of the required tables are absent.
	MissingTables(ctx context.Context) ([]string, error)
	// TruncateAll empties both tables and resets identity counters.
	TruncateAll(ctx context.Context) error
}
