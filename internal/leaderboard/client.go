package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const topLimit = 10

// Client talks to a scoreboard service over HTTP.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Top fetches the board, best completion time first. The server already
// limits the response, but the slice is capped here as well so a
// misbehaving server can't flood the terminal.
func (c *Client) Top(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building leaderboard request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching leaderboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching leaderboard: unexpected status %s", resp.Status)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding leaderboard: %w", err)
	}

	if len(entries) > topLimit {
		entries = entries[:topLimit]
	}
	return entries, nil
}

// Submit posts a finished run. The returned entry carries the
// server-assigned id and completion timestamp.
func (c *Client) Submit(ctx context.Context, entry Entry) (*Entry, error) {
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("validating entry: %w", err)
	}

	body, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("encoding entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submitting entry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("submitting entry: unexpected status %s: %s", resp.Status, msg)
	}

	var saved Entry
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return nil, fmt.Errorf("decoding submit response: %w", err)
	}
	return &saved, nil
}
