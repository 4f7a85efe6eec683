package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string            `json:"tick_interval"`
	Listeners    []ListenerConfig  `json:"listeners"`
	World        WorldConfig       `json:"world"`
	Nats         NatsConfig        `json:"nats"`
	Leaderboard  LeaderboardConfig `json:"leaderboard"`
	Sessions     SessionsConfig    `json:"sessions"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d < time.Second {
		el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
	}

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}
	for i, l := range c.Listeners {
		err := l.Validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.World.Validate())
	el.Add(c.Nats.Validate())
	el.Add(c.Leaderboard.Validate())
	el.Add(c.Sessions.Validate())

	return el.Err()
}
