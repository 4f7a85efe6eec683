package game

import (
	"context"
	"fmt"

	"github.com/pixil98/go-hacknet/internal/world"
)

func (i *Interpreter) handleConnect(_ context.Context, _ string, args []string) (Result, error) {
	if len(args) == 0 || args[0] == "" {
		return Result{}, NewUserError("ERROR: Please specify an IP address")
	}

	addr := args[0]
	host := i.world.HostByAddress(addr)
	if host == nil {
		return Result{}, NewUserError(fmt.Sprintf("ERROR: Cannot connect to %s - Server not found", addr))
	}
	if !host.Reachable() {
		return Result{}, NewUserError(fmt.Sprintf("ERROR: %s is currently offline", host.DisplayName))
	}

	i.append(Line{Text: fmt.Sprintf("Connecting to %s...", addr), Style: StyleInfo})

	i.later(connectDelay, func() {
		i.append(Line{Text: fmt.Sprintf("SUCCESS: Connected to %s", host.DisplayName), Style: StyleBanner})
		i.state.CurrentServer = host.Server
		i.state.CurrentPath = world.Home
		i.state.Prompt = PromptFor(i.state.Username, host.Server)
		i.persist()
	})

	return Result{OK: true}, nil
}
