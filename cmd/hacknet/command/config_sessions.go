package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// SessionsConfig controls session persistence and idle reaping. An
// empty snapshot_dir disables persistence; a zero idle_limit disables
// reaping.
type SessionsConfig struct {
	SnapshotDir string `json:"snapshot_dir,omitempty"`
	IdleLimit   string `json:"idle_limit,omitempty"`
}

func (c *SessionsConfig) Validate() error {
	el := errors.NewErrorList()

	if c.IdleLimit != "" {
		_, err := time.ParseDuration(c.IdleLimit)
		if err != nil {
			el.Add(fmt.Errorf("parsing idle_limit: %w", err))
		}
	}

	return el.Err()
}

// ParseIdleLimit reports the configured idle limit and whether one was
// set at all. An explicit "0" is set, and means reaping is off; an
// empty idle_limit leaves the manager's default in place.
func (c *SessionsConfig) ParseIdleLimit() (time.Duration, bool, error) {
	if c.IdleLimit == "" {
		return 0, false, nil
	}
	d, err := time.ParseDuration(c.IdleLimit)
	return d, true, err
}
