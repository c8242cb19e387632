package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/football-stats-service/internal/model"
	"github.com/maxviazov/football-stats-service/internal/service"
	"github.com/maxviazov/football-stats-service/pkg/response"
)

// APIHandler serves every route of the table-dispatched API.
type APIHandler struct {
	games   service.GameService
	players service.PlayerService
	seed    service.SeedService
}

func NewAPIHandler(games service.GameService, players service.PlayerService, seed service.SeedService) *APIHandler {
	return &APIHandler{games: games, players: players, seed: seed}
}

// Get dispatches read and admin operations on the "table" parameter.
func (h *APIHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	switch c.Query("table") {
	case "games":
		if id, ok := queryID(c, "id"); ok {
			game, err := h.games.GetGame(ctx, id)
			if err != nil {
				response.WriteError(c, err)
				return
			}
			response.WriteData(c, http.StatusOK, game)
			return
		}
		games, err := h.games.ListGames(ctx)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteData(c, http.StatusOK, games)

	case "players":
		if id, ok := queryID(c, "id"); ok {
			p, err := h.players.GetSummary(ctx, id)
			if err != nil {
				response.WriteError(c, err)
				return
			}
			response.WriteData(c, http.StatusOK, p)
			return
		}
		players, err := h.players.ListSeason(ctx)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteData(c, http.StatusOK, players)

	case "gameplayers":
		gameID, ok := queryID(c, "gameId")
		if !ok {
			c.JSON(http.StatusBadRequest, response.ErrorPayload{Error: "Missing or invalid gameId parameter"})
			return
		}
		rows, err := h.players.ListByGame(ctx, gameID)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteData(c, http.StatusOK, rows)

	case "init":
		report, err := h.seed.Init(ctx)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteData(c, http.StatusOK, report)

	case "regenerate":
		report, err := h.seed.Regenerate(ctx)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteData(c, http.StatusOK, report)

	case "test":
		report, err := h.seed.SchemaTest(ctx)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteData(c, http.StatusOK, report)

	default:
		c.JSON(http.StatusBadRequest, response.ErrorPayload{Error: "Unknown table"})
	}
}

// Post creates a game or a player stat row from the JSON body.
func (h *APIHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()
	switch c.Query("table") {
	case "games":
		var g model.Game
		if err := c.ShouldBindJSON(&g); err != nil {
			response.WriteError(c, service.ErrInvalidInput)
			return
		}
		created, err := h.games.CreateGame(ctx, g)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteCreated(c, created.ID, "Game created successfully")

	case "players":
		var s model.PlayerGameStat
		if err := c.ShouldBindJSON(&s); err != nil {
			response.WriteError(c, service.ErrInvalidInput)
			return
		}
		created, err := h.players.CreateStat(ctx, s)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteCreated(c, created.ID, "Player stat created successfully")

	default:
		c.JSON(http.StatusBadRequest, response.ErrorPayload{Error: "Unknown table"})
	}
}

// Put updates the record addressed by the id parameter.
func (h *APIHandler) Put(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := queryID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorPayload{Error: "Missing or invalid id parameter"})
		return
	}
	switch c.Query("table") {
	case "games":
		var g model.Game
		if err := c.ShouldBindJSON(&g); err != nil {
			response.WriteError(c, service.ErrInvalidInput)
			return
		}
		g.ID = id
		if err := h.games.UpdateGame(ctx, g); err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteMutation(c, "Game updated successfully")

	case "players":
		var s model.PlayerGameStat
		if err := c.ShouldBindJSON(&s); err != nil {
			response.WriteError(c, service.ErrInvalidInput)
			return
		}
		s.ID = id
		if err := h.players.UpdateStat(ctx, s); err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteMutation(c, "Player stat updated successfully")

	default:
		c.JSON(http.StatusBadRequest, response.ErrorPayload{Error: "Unknown table"})
	}
}

// Delete removes the record addressed by the id parameter. Deleting a
// game also removes its player stat rows.
func (h *APIHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := queryID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorPayload{Error: "Missing or invalid id parameter"})
		return
	}
	switch c.Query("table") {
	case "games":
		if err := h.games.DeleteGame(ctx, id); err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteMutation(c, "Game and its player stats deleted successfully")

	case "players":
		if err := h.players.DeleteStat(ctx, id); err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteMutation(c, "Player stat deleted successfully")

	default:
		c.JSON(http.StatusBadRequest, response.ErrorPayload{Error: "Unknown table"})
	}
}

func queryID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
