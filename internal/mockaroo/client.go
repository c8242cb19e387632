// Package mockaroo fetches generated seed datasets from the Mockaroo
// mock-data API. The generator's schemas are loosely typed, so record
// fields tolerate numbers arriving as strings and fill sane defaults.
package mockaroo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/football-stats-service/internal/model"
)

// Source fetches the two generated datasets the seeder imports.
type Source interface {
	FetchGames(ctx context.Context) ([]GameRecord, error)
	FetchPlayers(ctx context.Context) ([]PlayerRecord, error)
}

// FlexInt decodes JSON numbers, numeric strings, nulls and junk alike,
// collapsing anything unparseable to zero the way the importer expects.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(int(v))
	return nil
}

// GameRecord is one generated game row.
type GameRecord struct {
	Date          string  `json:"game_date"`
	Opponent      string  `json:"opponent"`
	Venue         string  `json:"venue"`
	TeamScore     FlexInt `json:"team_score"`
	OpponentScore FlexInt `json:"opponent_score"`
}

// PlayerRecord is one generated player stat line.
type PlayerRecord struct {
	PlayerName string  `json:"player_name"`
	Touchdowns FlexInt `json:"touchdowns"`
	Yards      FlexInt `json:"yards"`
	Tackles    FlexInt `json:"tackles"`
}

// Game converts the raw record to a domain game, defaulting the venue
// and tolerating an unparseable date by falling back to today.
func (r GameRecord) Game() model.Game {
	venue := strings.TrimSpace(r.Venue)
	if venue == "" {
		venue = "Home"
	}
	date, err := model.ParseDate(r.Date)
	if err != nil {
		date = model.NewDate(time.Now().UTC())
	}
	return model.Game{
		Date:          date,
		Opponent:      strings.TrimSpace(r.Opponent),
		Venue:         venue,
		TeamScore:     int(r.TeamScore),
		OpponentScore: int(r.OpponentScore),
	}
}

// Client talks to a Mockaroo custom-schema endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        zerolog.Logger
}

// NewClient builds a client for the given base URL and API key.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	l := logger.With().Str("module", "mockaroo").Logger()
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		log:        l,
	}
}

var _ Source = (*Client)(nil)

// FetchGames retrieves the generated game schedule.
func (c *Client) FetchGames(ctx context.Context) ([]GameRecord, error) {
	var out []GameRecord
	if err := c.fetch(ctx, "gamedata.json", &out); err != nil {
		return nil, err
	}
	c.log.Info().Int("count", len(out)).Msg("fetched game records")
	return out, nil
}

// FetchPlayers retrieves the generated player stat lines.
func (c *Client) FetchPlayers(ctx context.Context) ([]PlayerRecord, error) {
	var out []PlayerRecord
	if err := c.fetch(ctx, "playerdata.json", &out); err != nil {
		return nil, err
	}
	c.log.Info().Int("count", len(out)).Msg("fetched player records")
	return out, nil
}

func (c *Client) fetch(ctx context.Context, schema string, dst any) error {
	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, schema, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", schema, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", schema, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Error().Int("status", resp.StatusCode).Str("schema", schema).
			Str("body", string(body)).Msg("generator returned non-OK status")
		return fmt.Errorf("fetch %s: unexpected status %d", schema, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", schema, err)
	}
	return nil
}
