package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/maxviazov/football-stats-service/internal/leaderboard"
	"github.com/maxviazov/football-stats-service/internal/model"
)

// API is the slice of the stats API the view consumes.
type API interface {
	Games(ctx context.Context) ([]model.Game, error)
	SeasonPlayers(ctx context.Context) ([]model.PlayerSummary, error)
	GamePlayers(ctx context.Context, gameID int64) ([]model.PlayerSummary, error)
}

// View owns the dashboard's visible state: the loaded player rows, the
// active filters and sort order, and the currently selected game.
//
// Loads may run concurrently; each one takes a monotonically increasing
// request token and a settled response is dropped when a newer request
// has been issued since. The view therefore always reflects the latest
// request, never the slowest.
type View struct {
	mu sync.Mutex

	api API
	log zerolog.Logger

	token    uint64
	rows     []model.PlayerSummary
	selected *model.Game
	filters  leaderboard.Filters
	sort     leaderboard.SortState

	// OnStatus, when set, receives a human-readable line describing the
	// current result set after every load or filter change.
	OnStatus func(status string)
}

// NewView builds a view over the given API with default sort order.
func NewView(api API, logger zerolog.Logger) *View {
	return &View{
		api:  api,
		log:  logger.With().Str("module", "dashboard").Str("component", "view").Logger(),
		sort: leaderboard.DefaultSort(),
	}
}

// LoadSeason fetches season-aggregated rows and makes them current.
func (v *View) LoadSeason(ctx context.Context) error {
	v.mu.Lock()
	v.token++
	token := v.token
	v.mu.Unlock()

	rows, err := v.api.SeasonPlayers(ctx)
	if err != nil {
		v.log.Error().Err(err).Msg("season load failed")
		return err
	}
	v.apply(token, rows, nil)
	return nil
}

// LoadGame fetches one game's rows. When the per-game fetch fails the
// view falls back to season rows rather than going blank.
func (v *View) LoadGame(ctx context.Context, game model.Game) error {
	v.mu.Lock()
	v.token++
	token := v.token
	v.mu.Unlock()

	rows, err := v.api.GamePlayers(ctx, game.ID)
	if err != nil {
		v.log.Warn().Err(err).Int64("game_id", game.ID).Msg("game load failed, falling back to season")
		season, serr := v.api.SeasonPlayers(ctx)
		if serr != nil {
			return serr
		}
		v.apply(token, season, nil)
		return nil
	}
	v.apply(token, rows, &game)
	return nil
}

// apply installs a settled response unless a newer request exists.
func (v *View) apply(token uint64, rows []model.PlayerSummary, game *model.Game) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if token != v.token {
		v.log.Debug().Uint64("token", token).Uint64("current", v.token).Msg("dropping stale response")
		return
	}
	v.rows = leaderboard.EnsureRanks(rows)
	v.selected = game
	v.emitStatusLocked()
}

// SetFilters replaces the active filters and re-announces the result set.
func (v *View) SetFilters(f leaderboard.Filters) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters = f
	v.emitStatusLocked()
}

// Filters returns the active filter set.
func (v *View) Filters() leaderboard.Filters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

// ToggleSort flips or switches the sort order for the given field.
func (v *View) ToggleSort(field string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sort = v.sort.Toggle(field)
}

// Sort returns the active sort state.
func (v *View) Sort() leaderboard.SortState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sort
}

// SelectedGame returns the game the rows belong to, or nil for season view.
func (v *View) SelectedGame() *model.Game {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected == nil {
		return nil
	}
	g := *v.selected
	return &g
}

// Rows returns the visible rows: filtered, sorted and deduplicated by
// display name. The stored season and game ranks are untouched; use
// DisplayRanks for a dense renumbering of what is visible.
func (v *View) Rows() []model.PlayerSummary {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visibleLocked()
}

// DisplayRanks returns visible-set ranks for the given rank field.
func (v *View) DisplayRanks(field string) map[int64]int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return leaderboard.DisplayRanks(v.visibleLocked(), field)
}

func (v *View) visibleLocked() []model.PlayerSummary {
	rows := v.filters.Apply(v.rows)
	rows = leaderboard.Sort(rows, v.sort)
	return leaderboard.DedupeByName(rows)
}

func (v *View) emitStatusLocked() {
	if v.OnStatus == nil {
		return
	}
	visible := v.visibleLocked()
	if v.filters.Active() {
		v.OnStatus(v.filters.Summary(len(visible)))
		return
	}
	v.OnStatus(fmt.Sprintf("Showing all %d players", len(visible)))
}
