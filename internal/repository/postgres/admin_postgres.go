package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/football-stats-service/internal/repository"
)

type adminRepository struct{ pool *pgxpool.Pool }

func NewAdminRepository(pool *pgxpool.Pool) repository.AdminRepository {
	return &adminRepository{pool: pool}
}

// MissingTables reports which of the expected tables are absent from the
// public schema. An empty slice means the schema is ready to serve.
func (r *adminRepository) MissingTables(ctx context.Context) ([]string, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)

	expected := []string{"games", "players"}
	rows, err := exec.Query(ctx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = 'public' AND table_name = ANY($1)`, expected,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	present := make(map[string]bool, len(expected))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, repository.MapPgError(err)
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}

	missing := make([]string, 0, len(expected))
	for _, name := range expected {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

// TruncateAll wipes both tables and resets their sequences so a reseed
// starts from id 1, matching a freshly migrated database.
func (r *adminRepository) TruncateAll(ctx context.Context) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	if _, err := exec.Exec(ctx, `TRUNCATE players, games RESTART IDENTITY CASCADE`); err != nil {
		return repository.MapPgError(err)
	}
	return nil
}

var _ repository.AdminRepository = (*adminRepository)(nil)
