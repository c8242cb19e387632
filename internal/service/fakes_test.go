package service_test

import (
	"context"
	"errors"

	"github.com/maxviazov/football-stats-service/internal/model"
	"github.com/maxviazov/football-stats-service/internal/repository"
)

// fakeStore is an in-memory stand-in for both repositories. The tx
// manager snapshots it so a failed transaction rolls everything back,
// which lets tests assert atomicity without a database.
type fakeStore struct {
	nextGameID   int64
	nextPlayerID int64
	games        map[int64]model.Game
	players      map[int64]model.PlayerGameStat

	failGameDelete bool
	truncated      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextGameID:   1,
		nextPlayerID: 1,
		games:        map[int64]model.Game{},
		players:      map[int64]model.PlayerGameStat{},
	}
}

func (f *fakeStore) snapshot() *fakeStore {
	cp := &fakeStore{
		nextGameID:     f.nextGameID,
		nextPlayerID:   f.nextPlayerID,
		games:          make(map[int64]model.Game, len(f.games)),
		players:        make(map[int64]model.PlayerGameStat, len(f.players)),
		failGameDelete: f.failGameDelete,
		truncated:      f.truncated,
	}
	for k, v := range f.games {
		cp.games[k] = v
	}
	for k, v := range f.players {
		cp.players[k] = v
	}
	return cp
}

func (f *fakeStore) restore(snap *fakeStore) {
	f.nextGameID = snap.nextGameID
	f.nextPlayerID = snap.nextPlayerID
	f.games = snap.games
	f.players = snap.players
	f.truncated = snap.truncated
}

type fakeGameRepo struct{ s *fakeStore }

func (f *fakeGameRepo) Create(_ context.Context, g model.Game) (model.Game, error) {
	g.ID = f.s.nextGameID
	f.s.nextGameID++
	f.s.games[g.ID] = g
	return g, nil
}

func (f *fakeGameRepo) GetByID(_ context.Context, id int64) (model.Game, error) {
	g, ok := f.s.games[id]
	if !ok {
		return model.Game{}, repository.ErrNotFound
	}
	return g, nil
}

func (f *fakeGameRepo) List(_ context.Context) ([]model.Game, error) {
	out := make([]model.Game, 0, len(f.s.games))
	for _, g := range f.s.games {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGameRepo) Update(_ context.Context, g model.Game) error {
	if _, ok := f.s.games[g.ID]; !ok {
		return repository.ErrNotFound
	}
	f.s.games[g.ID] = g
	return nil
}

func (f *fakeGameRepo) Delete(_ context.Context, id int64) error {
	if f.s.failGameDelete {
		return errors.New("forced delete failure")
	}
	if _, ok := f.s.games[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.games, id)
	return nil
}

func (f *fakeGameRepo) Count(_ context.Context) (int, error) { return len(f.s.games), nil }

var _ repository.GameRepository = (*fakeGameRepo)(nil)

type fakePlayerRepo struct{ s *fakeStore }

func (f *fakePlayerRepo) Create(_ context.Context, st model.PlayerGameStat) (model.PlayerGameStat, error) {
	if _, ok := f.s.games[st.GameID]; !ok {
		return model.PlayerGameStat{}, repository.ErrConflict
	}
	st.ID = f.s.nextPlayerID
	f.s.nextPlayerID++
	f.s.players[st.ID] = st
	return st, nil
}

func (f *fakePlayerRepo) GetSummary(_ context.Context, id int64) (model.PlayerSummary, error) {
	row, ok := f.s.players[id]
	if !ok {
		return model.PlayerSummary{}, repository.ErrNotFound
	}
	sums, _ := f.aggregate()
	for _, s := range sums {
		if s.PlayerName == row.PlayerName {
			return s, nil
		}
	}
	return model.PlayerSummary{}, repository.ErrNotFound
}

func (f *fakePlayerRepo) ListSummaries(_ context.Context) ([]model.PlayerSummary, error) {
	sums, _ := f.aggregate()
	return sums, nil
}

func (f *fakePlayerRepo) aggregate() ([]model.PlayerSummary, error) {
	byName := map[string]*model.PlayerSummary{}
	gamesSeen := map[string]map[int64]bool{}
	var order []string
	for id := int64(1); id < f.s.nextPlayerID; id++ {
		row, ok := f.s.players[id]
		if !ok {
			continue
		}
		agg, ok := byName[row.PlayerName]
		if !ok {
			agg = &model.PlayerSummary{ID: row.ID, PlayerName: row.PlayerName, Position: model.PositionUnknown}
			byName[row.PlayerName] = agg
			gamesSeen[row.PlayerName] = map[int64]bool{}
			order = append(order, row.PlayerName)
		}
		agg.Touchdowns += row.Touchdowns
		agg.Yards += row.Yards
		agg.Tackles += row.Tackles
		gamesSeen[row.PlayerName][row.GameID] = true
	}
	out := make([]model.PlayerSummary, 0, len(order))
	for _, name := range order {
		s := byName[name]
		s.GamesPlayed = len(gamesSeen[name])
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakePlayerRepo) ListByGame(_ context.Context, gameID int64) ([]model.PlayerSummary, error) {
	var out []model.PlayerSummary
	for id := int64(1); id < f.s.nextPlayerID; id++ {
		row, ok := f.s.players[id]
		if !ok || row.GameID != gameID {
			continue
		}
		out = append(out, model.PlayerSummary{
			ID:          row.ID,
			PlayerName:  row.PlayerName,
			Position:    model.PositionUnknown,
			Touchdowns:  row.Touchdowns,
			Yards:       row.Yards,
			Tackles:     row.Tackles,
			GamesPlayed: 1,
		})
	}
	return out, nil
}

func (f *fakePlayerRepo) Update(_ context.Context, st model.PlayerGameStat) error {
	if _, ok := f.s.players[st.ID]; !ok {
		return repository.ErrNotFound
	}
	f.s.players[st.ID] = st
	return nil
}

func (f *fakePlayerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.s.players[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.players, id)
	return nil
}

func (f *fakePlayerRepo) DeleteByGame(_ context.Context, gameID int64) (int64, error) {
	var n int64
	for id, row := range f.s.players {
		if row.GameID == gameID {
			delete(f.s.players, id)
			n++
		}
	}
	return n, nil
}

func (f *fakePlayerRepo) Count(_ context.Context) (int, error) { return len(f.s.players), nil }

var _ repository.PlayerRepository = (*fakePlayerRepo)(nil)

type fakeAdminRepo struct{ s *fakeStore }

func (f *fakeAdminRepo) MissingTables(_ context.Context) ([]string, error) { return nil, nil }

func (f *fakeAdminRepo) TruncateAll(_ context.Context) error {
	f.s.games = map[int64]model.Game{}
	f.s.players = map[int64]model.PlayerGameStat{}
	f.s.nextGameID = 1
	f.s.nextPlayerID = 1
	f.s.truncated++
	return nil
}

var _ repository.AdminRepository = (*fakeAdminRepo)(nil)

type fakePinger struct{ err error }

func (f *fakePinger) Ping(_ context.Context) error { return f.err }

// fakeTx snapshots the store before running fn and restores it on error.
type fakeTx struct{ s *fakeStore }

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	snap := f.s.snapshot()
	if err := fn(ctx); err != nil {
		f.s.restore(snap)
		return err
	}
	return nil
}

var _ repository.TxManager = (*fakeTx)(nil)
