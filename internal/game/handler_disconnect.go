package game

import (
	"context"

	"github.com/pixil98/go-hacknet/internal/world"
)

func (i *Interpreter) handleDisconnect(_ context.Context, _ string, _ []string) (Result, error) {
	if i.state.CurrentServer == world.LocalServer {
		return Result{}, NewUserError("ERROR: Already on local terminal")
	}

	i.append(Line{Text: "Disconnecting from remote server...", Style: StyleInfo})

	i.later(disconnectDelay, func() {
		i.append(Line{Text: "Connection terminated.", Style: StyleSuccess})
		i.append(Line{Text: "Returned to local terminal.", Style: StyleSuccess})
		i.state.CurrentServer = world.LocalServer
		i.state.CurrentPath = world.Home
		i.state.Prompt = PromptFor(i.state.Username, world.LocalServer)
		i.persist()
	})

	return Result{OK: true}, nil
}
