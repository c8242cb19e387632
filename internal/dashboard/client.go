// Package dashboard is a headless client of the stats API: it fetches
// season or per-game data, runs the leaderboard pipeline over it, tracks
// filter and sort state, and exports the visible rows as CSV.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/football-stats-service/internal/model"
)

// Client is a typed HTTP client for the table-dispatched stats API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
}

// NewClient builds a client against the API base URL (the URL serving
// the /api endpoint, without the path).
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	l := logger.With().Str("module", "dashboard").Str("component", "client").Logger()
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        l,
	}
}

// Games fetches the full schedule, newest first.
func (c *Client) Games(ctx context.Context) ([]model.Game, error) {
	var out []model.Game
	if err := c.get(ctx, "table=games", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SeasonPlayers fetches season-aggregated player summaries.
func (c *Client) SeasonPlayers(ctx context.Context) ([]model.PlayerSummary, error) {
	var out []model.PlayerSummary
	if err := c.get(ctx, "table=players", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GamePlayers fetches the per-game rows for one game.
func (c *Client) GamePlayers(ctx context.Context, gameID int64) ([]model.PlayerSummary, error) {
	var out []model.PlayerSummary
	if err := c.get(ctx, fmt.Sprintf("table=gameplayers&gameId=%d", gameID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// errorPayload mirrors the API's error envelope.
type errorPayload struct {
	Error string `json:"error"`
}

func (c *Client) get(ctx context.Context, query string, dst any) error {
	url := c.baseURL + "/api?" + query

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", query, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", query, err)
	}

	// The API reports failures both as non-2xx statuses and as {"error"}
	// payloads; surface whichever carries more detail.
	if resp.StatusCode != http.StatusOK {
		var ep errorPayload
		if json.Unmarshal(body, &ep) == nil && ep.Error != "" {
			return fmt.Errorf("api error (%d): %s", resp.StatusCode, ep.Error)
		}
		return fmt.Errorf("api error: unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var ep errorPayload
		if json.Unmarshal(body, &ep) == nil && ep.Error != "" {
			return fmt.Errorf("api error: %s", ep.Error)
		}
		return fmt.Errorf("decode %s: %w", query, err)
	}
	return nil
}
