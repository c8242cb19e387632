package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/football-stats-service/internal/model"
	"github.com/maxviazov/football-stats-service/internal/repository"
)

type playerRepository struct{ pool *pgxpool.Pool }

func NewPlayerRepository(pool *pgxpool.Pool) repository.PlayerRepository {
	return &playerRepository{pool: pool}
}

func (r *playerRepository) Create(ctx context.Context, s model.PlayerGameStat) (model.PlayerGameStat, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.PlayerGameStat{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO players (game_id, player_name, touchdowns, yards, tackles)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, game_id, player_name, touchdowns, yards, tackles`,
		s.GameID, s.PlayerName, s.Touchdowns, s.Yards, s.Tackles,
	)
	var out model.PlayerGameStat
	if err := row.Scan(&out.ID, &out.GameID, &out.PlayerName, &out.Touchdowns, &out.Yards, &out.Tackles); err != nil {
		return model.PlayerGameStat{}, repository.MapPgError(err)
	}
	return out, nil
}

// GetSummary resolves the row id to its player name and aggregates every
// stat row carried by that name, so a summary fetched by any of the
// player's row ids describes the whole season.
func (r *playerRepository) GetSummary(ctx context.Context, id int64) (model.PlayerSummary, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.PlayerSummary{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT MIN(p.id), p.player_name,
		        COALESCE(SUM(p.touchdowns), 0),
		        COALESCE(SUM(p.yards), 0),
		        COALESCE(SUM(p.tackles), 0),
		        COUNT(DISTINCT p.game_id)
		 FROM players p
		 WHERE p.player_name = (SELECT player_name FROM players WHERE id = $1)
		 GROUP BY p.player_name`, id,
	)
	out, err := scanSummary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.PlayerSummary{}, repository.ErrNotFound
	}
	return out, err
}

func (r *playerRepository) ListSummaries(ctx context.Context) ([]model.PlayerSummary, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT MIN(p.id) AS id, p.player_name,
		        COALESCE(SUM(p.touchdowns), 0),
		        COALESCE(SUM(p.yards), 0),
		        COALESCE(SUM(p.tackles), 0),
		        COUNT(DISTINCT p.game_id)
		 FROM players p
		 GROUP BY p.player_name
		 ORDER BY id`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	res := make([]model.PlayerSummary, 0, 32)
	for rows.Next() {
		it, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, it)
	}
	return res, rows.Err()
}

// ListByGame returns the raw rows of one game as summaries with
// GamesPlayed pinned to 1; position inference happens in the service.
func (r *playerRepository) ListByGame(ctx context.Context, gameID int64) ([]model.PlayerSummary, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT p.id, p.player_name, p.touchdowns, p.yards, p.tackles, 1
		 FROM players p
		 WHERE p.game_id = $1
		 ORDER BY p.id`, gameID,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	res := make([]model.PlayerSummary, 0, 16)
	for rows.Next() {
		it, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, it)
	}
	return res, rows.Err()
}

func (r *playerRepository) Update(ctx context.Context, s model.PlayerGameStat) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx,
		`UPDATE players
		 SET game_id = $1, player_name = $2, touchdowns = $3, yards = $4, tackles = $5
		 WHERE id = $6`,
		s.GameID, s.PlayerName, s.Touchdowns, s.Yards, s.Tackles, s.ID,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *playerRepository) Delete(ctx context.Context, id int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *playerRepository) DeleteByGame(ctx context.Context, gameID int64) (int64, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM players WHERE game_id = $1`, gameID)
	if err != nil {
		return 0, repository.MapPgError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *playerRepository) Count(ctx context.Context) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	exec := getQ(ctx, r.pool)
	var n int
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM players`).Scan(&n); err != nil {
		return 0, repository.MapPgError(err)
	}
	return n, nil
}

func scanSummary(row pgx.Row) (model.PlayerSummary, error) {
	var out model.PlayerSummary
	if err := row.Scan(&out.ID, &out.PlayerName, &out.Touchdowns, &out.Yards, &out.Tackles, &out.GamesPlayed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PlayerSummary{}, err
		}
		return model.PlayerSummary{}, repository.MapPgError(err)
	}
	// Positions are never persisted; rows leave storage unclassified.
	out.Position = model.PositionUnknown
	return out, nil
}

var _ repository.PlayerRepository = (*playerRepository)(nil)
