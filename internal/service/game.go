package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxviazov/football-stats-service/internal/model"
	"github.com/maxviazov/football-stats-service/internal/repository"
)

type gameService struct {
	games   repository.GameRepository
	players repository.PlayerRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewGameService(games repository.GameRepository, players repository.PlayerRepository, tx repository.TxManager, logger zerolog.Logger) GameService {
	l := logger.With().Str("module", "service").Str("component", "game").Logger()
	return &gameService{games: games, players: players, tx: tx, log: l}
}

func (s *gameService) CreateGame(ctx context.Context, g model.Game) (model.Game, error) {
	g.Opponent = strings.TrimSpace(g.Opponent)
	g.Venue = strings.TrimSpace(g.Venue)
	if g.Venue == "" {
		g.Venue = "Home"
	}
	if err := newInvalidInput(validateGame(g)); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("game validation failed")
		return model.Game{}, err
	}
	created, err := s.games.Create(ctx, g)
	if err != nil {
		s.log.Error().Err(err).Str("opponent", g.Opponent).Msg("create game failed")
		return model.Game{}, err
	}
	return created, nil
}

func (s *gameService) GetGame(ctx context.Context, id int64) (model.Game, error) {
	if id <= 0 {
		return model.Game{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.games.GetByID(ctx, id)
}

func (s *gameService) ListGames(ctx context.Context) ([]model.Game, error) {
	res, err := s.games.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list games failed")
		return nil, err
	}
	return res, nil
}

func (s *gameService) UpdateGame(ctx context.Context, g model.Game) error {
	if g.ID <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	g.Opponent = strings.TrimSpace(g.Opponent)
	g.Venue = strings.TrimSpace(g.Venue)
	if err := newInvalidInput(validateGame(g)); err != nil {
		return err
	}
	if err := s.games.Update(ctx, g); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Int64("id", g.ID).Msg("update game failed")
		}
		return err
	}
	return nil
}

// DeleteGame removes the player rows first so the game row never goes
// away while stats still reference it, all within one transaction.
func (s *gameService) DeleteGame(ctx context.Context, id int64) error {
	if id <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		removed, err := s.players.DeleteByGame(ctx, id)
		if err != nil {
			return err
		}
		if err := s.games.Delete(ctx, id); err != nil {
			return err
		}
		s.log.Info().Int64("game_id", id).Int64("stats_removed", removed).Msg("game deleted")
		return nil
	})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.log.Error().Err(err).Int64("id", id).Msg("delete game failed")
	}
	return err
}

var _ GameService = (*gameService)(nil)
