// Package listener accepts terminal connections over telnet and ssh and
// hands them to the player manager.
package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-hacknet/internal/player"
)

type ConnectionManager struct {
	pm *player.Manager
}

func NewConnectionManager(pm *player.Manager) *ConnectionManager {
	return &ConnectionManager{
		pm: pm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.pm.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "terminal session", "error", err)
	}
}
