package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/football-stats-service/internal/repository"
)

type pinger struct{ pool *pgxpool.Pool }

// NewPinger exposes pool liveness to the readiness probe without handing
// the handler layer the whole pool.
func NewPinger(pool *pgxpool.Pool) repository.Pinger {
	return &pinger{pool: pool}
}

func (p *pinger) Ping(ctx context.Context) error {
	if err := ensurePool(p.pool); err != nil {
		return err
	}
	return p.pool.Ping(ctx)
}

var _ repository.Pinger = (*pinger)(nil)
