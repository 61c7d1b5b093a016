package highscore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a Service that talks to a remote high-score API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL (scheme and host,
// e.g. "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit implements Service.
func (c *Client) Submit(ctx context.Context, player string, score int) (Entry, error) {
	body, err := json.Marshal(addRequest{Player: player, Score: &score})
	if err != nil {
		return Entry{}, fmt.Errorf("highscore: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+AddPath, bytes.NewReader(body))
	if err != nil {
		return Entry{}, fmt.Errorf("highscore: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp addResponse
	if err := c.do(req, &resp); err != nil {
		return Entry{}, err
	}
	return Entry{ID: resp.ID, Player: resp.Player, Score: resp.Score}, nil
}

// Top implements Service.
func (c *Client) Top(ctx context.Context, limit int) ([]Entry, error) {
	u := c.baseURL + TopPath
	if limit > 0 {
		u += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("highscore: build request: %w", err)
	}

	var resp topResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	entries := make([]Entry, len(resp.Highscores))
	for i, h := range resp.Highscores {
		entries[i] = Entry{Player: h.Player, Score: h.Score, Date: h.Date}
	}
	return entries, nil
}

func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("highscore: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		if res.StatusCode == http.StatusBadRequest && apiErr.Error == "invalid payload" {
			return ErrInvalidScore
		}
		return fmt.Errorf("highscore: %s %s: status %d: %s", req.Method, req.URL.Path, res.StatusCode, apiErr.Error)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("highscore: decode response: %w", err)
	}
	return nil
}
