package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/maxviazov/football-stats-service/internal/mockaroo"
	"github.com/maxviazov/football-stats-service/internal/model"
	"github.com/maxviazov/football-stats-service/internal/repository"
)

type seedService struct {
	source  mockaroo.Source
	games   repository.GameRepository
	players repository.PlayerRepository
	admin   repository.AdminRepository
	pinger  repository.Pinger
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewSeedService(
	source mockaroo.Source,
	games repository.GameRepository,
	players repository.PlayerRepository,
	admin repository.AdminRepository,
	pinger repository.Pinger,
	tx repository.TxManager,
	logger zerolog.Logger,
) SeedService {
	l := logger.With().Str("module", "service").Str("component", "seed").Logger()
	return &seedService{source: source, games: games, players: players, admin: admin, pinger: pinger, tx: tx, log: l}
}

func (s *seedService) Init(ctx context.Context) (model.SeedReport, error) {
	n, err := s.games.Count(ctx)
	if err != nil {
		return model.SeedReport{}, err
	}
	if n > 0 {
		s.log.Info().Int("games", n).Msg("seed skipped, data already present")
		return model.SeedReport{Skipped: true, Message: "Database already contains data"}, nil
	}
	return s.importDataset(ctx, false)
}

func (s *seedService) Regenerate(ctx context.Context) (model.SeedReport, error) {
	return s.importDataset(ctx, true)
}

// importDataset fetches both generated datasets concurrently, then loads
// them in a single transaction. When wipe is set the tables are emptied
// first, inside the same transaction, so a failed import never leaves
// the database half-rebuilt.
func (s *seedService) importDataset(ctx context.Context, wipe bool) (model.SeedReport, error) {
	var (
		gameRecs   []mockaroo.GameRecord
		playerRecs []mockaroo.PlayerRecord
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		recs, err := s.source.FetchGames(ctx)
		if err != nil {
			return fmt.Errorf("%w: games: %v", ErrUpstream, err)
		}
		gameRecs = recs
		return nil
	})
	p.Go(func(ctx context.Context) error {
		recs, err := s.source.FetchPlayers(ctx)
		if err != nil {
			return fmt.Errorf("%w: players: %v", ErrUpstream, err)
		}
		playerRecs = recs
		return nil
	})
	if err := p.Wait(); err != nil {
		s.log.Error().Err(err).Msg("dataset fetch failed")
		return model.SeedReport{}, err
	}

	var report model.SeedReport
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if wipe {
			if err := s.admin.TruncateAll(ctx); err != nil {
				return err
			}
		}
		// The generator's player batch carries no game affinity, so the
		// same batch seeds every game.
		for _, gr := range gameRecs {
			game, err := s.games.Create(ctx, gr.Game())
			if err != nil {
				return err
			}
			report.GamesAdded++
			for _, pr := range playerRecs {
				name := strings.TrimSpace(pr.PlayerName)
				if name == "" {
					continue
				}
				_, err := s.players.Create(ctx, model.PlayerGameStat{
					GameID:     game.ID,
					PlayerName: name,
					Touchdowns: int(pr.Touchdowns),
					Yards:      int(pr.Yards),
					Tackles:    int(pr.Tackles),
				})
				if err != nil {
					return err
				}
				report.PlayersAdded++
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Msg("dataset import failed")
		return model.SeedReport{}, err
	}

	report.Message = fmt.Sprintf("Imported %d games and %d player stat lines", report.GamesAdded, report.PlayersAdded)
	s.log.Info().Int("games", report.GamesAdded).Int("players", report.PlayersAdded).Bool("wiped", wipe).Msg("dataset imported")
	return report, nil
}

func (s *seedService) SchemaTest(ctx context.Context) (model.SchemaReport, error) {
	report := model.SchemaReport{DatabaseConnection: "OK", Tables: "OK"}

	if err := s.pinger.Ping(ctx); err != nil {
		report.DatabaseConnection = "Failed: " + err.Error()
		return report, nil
	}

	missing, err := s.admin.MissingTables(ctx)
	if err != nil {
		return model.SchemaReport{}, err
	}
	if len(missing) > 0 {
		report.Tables = "Missing: " + strings.Join(missing, ", ")
		return report, nil
	}

	gameCount, err := s.games.Count(ctx)
	if err != nil {
		return model.SchemaReport{}, err
	}
	playerCount, err := s.players.Count(ctx)
	if err != nil {
		return model.SchemaReport{}, err
	}
	report.Records = map[string]int{"games": gameCount, "players": playerCount}
	return report, nil
}

var _ SeedService = (*seedService)(nil)
