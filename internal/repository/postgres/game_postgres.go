package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/football-stats-service/internal/model"
	"github.com/maxviazov/football-stats-service/internal/repository"
)

type gameRepository struct{ pool *pgxpool.Pool }

func NewGameRepository(pool *pgxpool.Pool) repository.GameRepository {
	return &gameRepository{pool: pool}
}

func (r *gameRepository) Create(ctx context.Context, g model.Game) (model.Game, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Game{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO games (game_date, opponent, venue, team_score, opponent_score)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, game_date, opponent, venue, team_score, opponent_score`,
		g.Date.Time, g.Opponent, g.Venue, g.TeamScore, g.OpponentScore,
	)
	return scanGame(row)
}

func (r *gameRepository) GetByID(ctx context.Context, id int64) (model.Game, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Game{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, game_date, opponent, venue, team_score, opponent_score
		 FROM games WHERE id = $1`, id,
	)
	out, err := scanGame(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Game{}, repository.ErrNotFound
	}
	return out, err
}

func (r *gameRepository) List(ctx context.Context) ([]model.Game, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, game_date, opponent, venue, team_score, opponent_score
		 FROM games
		 ORDER BY game_date DESC, id DESC`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	res := make([]model.Game, 0, 16)
	for rows.Next() {
		it, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, it)
	}
	return res, rows.Err()
}

func (r *gameRepository) Update(ctx context.Context, g model.Game) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx,
		`UPDATE games
		 SET game_date = $1, opponent = $2, venue = $3, team_score = $4, opponent_score = $5
		 WHERE id = $6`,
		g.Date.Time, g.Opponent, g.Venue, g.TeamScore, g.OpponentScore, g.ID,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	// Postgres counts matched rows, so zero can only mean the id is absent.
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gameRepository) Delete(ctx context.Context, id int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gameRepository) Count(ctx context.Context) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	exec := getQ(ctx, r.pool)
	var n int
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM games`).Scan(&n); err != nil {
		return 0, repository.MapPgError(err)
	}
	return n, nil
}

func scanGame(row pgx.Row) (model.Game, error) {
	var out model.Game
	var date time.Time
	if err := row.Scan(&out.ID, &date, &out.Opponent, &out.Venue, &out.TeamScore, &out.OpponentScore); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Game{}, err
		}
		return model.Game{}, repository.MapPgError(err)
	}
	out.Date = model.NewDate(date)
	return out, nil
}

var _ repository.GameRepository = (*gameRepository)(nil)
