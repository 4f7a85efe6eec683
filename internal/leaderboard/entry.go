// Package leaderboard records finished runs and serves the top-ten
// board, both as an HTTP service and as the client the game talks to.
package leaderboard

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Entry is one finished run. CompletionTime and CompletedAt are unix
// milliseconds; CompletedAt is assigned by the server on submission.
type Entry struct {
	Id             string `json:"id,omitempty"`
	Username       string `json:"username"`
	CompletionTime int64  `json:"completionTime"`
	CommandCount   int    `json:"commandCount"`
	CompletedAt    int64  `json:"completedAt,omitempty"`
}

func (e *Entry) Validate() error {
	el := errors.NewErrorList()

	if strings.TrimSpace(e.Username) == "" {
		el.Add(fmt.Errorf("username is required"))
	}
	if e.CompletionTime < 0 {
		el.Add(fmt.Errorf("completionTime must not be negative"))
	}
	if e.CommandCount < 0 {
		el.Add(fmt.Errorf("commandCount must not be negative"))
	}

	return el.Err()
}
