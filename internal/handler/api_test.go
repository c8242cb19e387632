package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/football-stats-service/internal/handler"
	"github.com/maxviazov/football-stats-service/internal/model"
	"github.com/maxviazov/football-stats-service/internal/repository"
	"github.com/maxviazov/football-stats-service/internal/service"
)

// stubPingerNoop satisfies handler.Pinger (health endpoints not focus here).
type stubPingerNoop struct{ err error }

func (s stubPingerNoop) Ping(ctx context.Context) error { return s.err }

type stubGameService struct {
	game    model.Game
	games   []model.Game
	err     error
	deleted []int64
}

func (s *stubGameService) CreateGame(_ context.Context, g model.Game) (model.Game, error) {
	return s.game, s.err
}
func (s *stubGameService) GetGame(_ context.Context, id int64) (model.Game, error) {
	return s.game, s.err
}
func (s *stubGameService) ListGames(_ context.Context) ([]model.Game, error) {
	return s.games, s.err
}
func (s *stubGameService) UpdateGame(_ context.Context, g model.Game) error { return s.err }
func (s *stubGameService) DeleteGame(_ context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

var _ service.GameService = (*stubGameService)(nil)

type stubPlayerService struct {
	stat      model.PlayerGameStat
	summary   model.PlayerSummary
	summaries []model.PlayerSummary
	err       error
}

func (s *stubPlayerService) CreateStat(_ context.Context, st model.PlayerGameStat) (model.PlayerGameStat, error) {
	return s.stat, s.err
}
func (s *stubPlayerService) GetSummary(_ context.Context, id int64) (model.PlayerSummary, error) {
	return s.summary, s.err
}
func (s *stubPlayerService) ListSeason(_ context.Context) ([]model.PlayerSummary, error) {
	return s.summaries, s.err
}
func (s *stubPlayerService) ListByGame(_ context.Context, gameID int64) ([]model.PlayerSummary, error) {
	return s.summaries, s.err
}
func (s *stubPlayerService) UpdateStat(_ context.Context, st model.PlayerGameStat) error {
	return s.err
}
func (s *stubPlayerService) DeleteStat(_ context.Context, id int64) error { return s.err }

var _ service.PlayerService = (*stubPlayerService)(nil)

type stubSeedService struct {
	report model.SeedReport
	schema model.SchemaReport
	err    error
}

func (s *stubSeedService) Init(_ context.Context) (model.SeedReport, error) {
	return s.report, s.err
}
func (s *stubSeedService) Regenerate(_ context.Context) (model.SeedReport, error) {
	return s.report, s.err
}
func (s *stubSeedService) SchemaTest(_ context.Context) (model.SchemaReport, error) {
	return s.schema, s.err
}

var _ service.SeedService = (*stubSeedService)(nil)

func newRouter(gs service.GameService, ps service.PlayerService, ss service.SeedService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if gs == nil {
		gs = &stubGameService{}
	}
	if ps == nil {
		ps = &stubPlayerService{}
	}
	if ss == nil {
		ss = &stubSeedService{}
	}
	handler.Register(r, stubPingerNoop{}, gs, ps, ss)
	return r
}

func TestAPI_GetGamesList(t *testing.T) {
	stub := &stubGameService{games: []model.Game{{ID: 1, Opponent: "Rams"}}}
	r := newRouter(stub, nil, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api?table=games", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got []model.Game
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Opponent != "Rams" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestAPI_GetGameByID_NotFound(t *testing.T) {
	stub := &stubGameService{err: repository.ErrNotFound}
	r := newRouter(stub, nil, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api?table=games&id=42", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := payload["error"].(string); !ok {
		t.Fatalf("expected error envelope, got %s", w.Body.String())
	}
}

func TestAPI_UnknownTable(t *testing.T) {
	r := newRouter(nil, nil, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api?table=teams", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAPI_PostGame_Created(t *testing.T) {
	stub := &stubGameService{game: model.Game{ID: 7, Opponent: "Rams"}}
	r := newRouter(stub, nil, nil)
	body, _ := json.Marshal(map[string]any{"game_date": "2025-09-14", "opponent": "Rams"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api?table=games", bytes.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.ID != 7 {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
}

func TestAPI_PostPlayer_ValidationError(t *testing.T) {
	stub := &stubPlayerService{err: service.ErrInvalidInput}
	r := newRouter(nil, stub, nil)
	body, _ := json.Marshal(map[string]any{"player_name": ""})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api?table=players", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAPI_PutRequiresID(t *testing.T) {
	r := newRouter(nil, nil, nil)
	body, _ := json.Marshal(map[string]any{"opponent": "Rams"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api?table=games", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAPI_DeleteGame(t *testing.T) {
	stub := &stubGameService{}
	r := newRouter(stub, nil, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api?table=games&id=7", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(stub.deleted) != 1 || stub.deleted[0] != 7 {
		t.Fatalf("expected delete of id 7, got %v", stub.deleted)
	}
}

func TestAPI_GamePlayersRequiresGameID(t *testing.T) {
	r := newRouter(nil, nil, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api?table=gameplayers", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAPI_InitUpstreamFailure(t *testing.T) {
	stub := &stubSeedService{err: service.ErrUpstream}
	r := newRouter(nil, nil, stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api?table=init", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestAPI_CORSPreflight(t *testing.T) {
	r := newRouter(nil, nil, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api?table=games", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected open CORS, got %q", got)
	}
}

func TestHealth_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, stubPingerNoop{err: errors.New("db down")}, &stubGameService{}, &stubPlayerService{}, &stubSeedService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
