package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxviazov/football-stats-service/internal/leaderboard"
	"github.com/maxviazov/football-stats-service/internal/model"
	"github.com/maxviazov/football-stats-service/internal/repository"
)

type playerService struct {
	players repository.PlayerRepository
	games   repository.GameRepository
	log     zerolog.Logger
}

func NewPlayerService(players repository.PlayerRepository, games repository.GameRepository, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{players: players, games: games, log: l}
}

func (s *playerService) CreateStat(ctx context.Context, st model.PlayerGameStat) (model.PlayerGameStat, error) {
	st.PlayerName = strings.TrimSpace(st.PlayerName)
	if err := newInvalidInput(validateStat(st)); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("stat validation failed")
		return model.PlayerGameStat{}, err
	}
	if _, err := s.games.GetByID(ctx, st.GameID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.PlayerGameStat{}, newInvalidInput([]FieldError{{Field: "game_id", Message: "game does not exist"}})
		}
		return model.PlayerGameStat{}, err
	}
	created, err := s.players.Create(ctx, st)
	if err != nil {
		s.log.Error().Err(err).Str("player", st.PlayerName).Msg("create stat failed")
		return model.PlayerGameStat{}, err
	}
	return created, nil
}

func (s *playerService) GetSummary(ctx context.Context, id int64) (model.PlayerSummary, error) {
	if id <= 0 {
		return model.PlayerSummary{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.players.GetSummary(ctx, id)
}

func (s *playerService) ListSeason(ctx context.Context) ([]model.PlayerSummary, error) {
	res, err := s.players.ListSummaries(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list season summaries failed")
		return nil, err
	}
	return res, nil
}

// ListByGame serves one game's rows, ranked against each other and given
// a coarse stat-based position. The verdict here is deliberately rougher
// than the leaderboard's own classifier: a single game rarely carries
// enough volume, so only extreme lines get a label.
func (s *playerService) ListByGame(ctx context.Context, gameID int64) ([]model.PlayerSummary, error) {
	if gameID <= 0 {
		return nil, newInvalidInput([]FieldError{{Field: "gameId", Message: "must be > 0"}})
	}
	if _, err := s.games.GetByID(ctx, gameID); err != nil {
		return nil, err
	}
	rows, err := s.players.ListByGame(ctx, gameID)
	if err != nil {
		s.log.Error().Err(err).Int64("game_id", gameID).Msg("list game stats failed")
		return nil, err
	}
	rows = leaderboard.EnsureRanks(rows)
	for i := range rows {
		rows[i].Position = genericPosition(rows[i])
	}
	return rows, nil
}

func genericPosition(p model.PlayerSummary) string {
	switch {
	case p.Touchdowns > 20:
		return "QB"
	case p.Touchdowns >= 5 && p.Yards > 500:
		return "WR"
	case p.Tackles > 50:
		return "LB"
	default:
		return model.PositionUnknown
	}
}

func (s *playerService) UpdateStat(ctx context.Context, st model.PlayerGameStat) error {
	if st.ID <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	st.PlayerName = strings.TrimSpace(st.PlayerName)
	if err := newInvalidInput(validateStat(st)); err != nil {
		return err
	}
	if err := s.players.Update(ctx, st); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Int64("id", st.ID).Msg("update stat failed")
		}
		return err
	}
	return nil
}

func (s *playerService) DeleteStat(ctx context.Context, id int64) error {
	if id <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if err := s.players.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Int64("id", id).Msg("delete stat failed")
		}
		return err
	}
	return nil
}

var _ PlayerService = (*playerService)(nil)
