package command

import (
	"fmt"
	"net/url"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-hacknet/internal/leaderboard"
)

// LeaderboardConfig points the game at a scoreboard service. An empty
// url runs the terminal without a leaderboard.
type LeaderboardConfig struct {
	Url string `json:"url"`
}

func (c *LeaderboardConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Url != "" {
		if _, err := url.ParseRequestURI(c.Url); err != nil {
			el.Add(fmt.Errorf("parsing url: %w", err))
		}
	}

	return el.Err()
}

func (c *LeaderboardConfig) BuildClient() *leaderboard.Client {
	if c.Url == "" {
		return nil
	}
	return leaderboard.NewClient(c.Url)
}
