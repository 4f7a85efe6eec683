// Package player hosts connected terminals: the login gate, the session
// loop that bridges a network connection to an interpreter, and the
// manager that tracks and reaps sessions.
package player

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pixil98/go-hacknet/internal/game"
	"github.com/pixil98/go-hacknet/internal/storage"
	"github.com/pixil98/go-hacknet/internal/world"
)

const DefaultIdleLimit = 30 * time.Minute

// Broker is the messaging fabric sessions broadcast over.
type Broker interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	world     *world.World
	board     game.Scoreboard
	broker    Broker
	snapDir   string
	idleLimit time.Duration
}

type ManagerOpt func(*Manager)

func WithScoreboard(b game.Scoreboard) ManagerOpt {
	return func(m *Manager) { m.board = b }
}

func WithBroker(b Broker) ManagerOpt {
	return func(m *Manager) { m.broker = b }
}

// WithSnapshotDir enables per-alias session persistence under dir.
func WithSnapshotDir(dir string) ManagerOpt {
	return func(m *Manager) { m.snapDir = dir }
}

// WithIdleLimit sets how long a session may sit silent before the
// manager disconnects it. Zero disables reaping.
func WithIdleLimit(d time.Duration) ManagerOpt {
	return func(m *Manager) { m.idleLimit = d }
}

func NewManager(w *world.World, opts ...ManagerOpt) *Manager {
	m := &Manager{
		sessions:  map[string]*Session{},
		world:     w,
		idleLimit: DefaultIdleLimit,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		s.close()
	}

	return nil
}

// Tick disconnects sessions that have been silent past the idle limit.
func (m *Manager) Tick(_ context.Context) error {
	if m.idleLimit <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.idleFor() > m.idleLimit {
			s.close()
		}
	}

	return nil
}

// RunSession owns one connection from login to disconnect.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	flow := &loginFlow{board: m.board}
	alias, err := flow.Run(ctx, conn)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	opts := []game.Option{}
	if m.board != nil {
		opts = append(opts, game.WithScoreboard(m.board))
	}
	if m.broker != nil {
		opts = append(opts, game.WithPublisher(m.broker))
	}
	if m.snapDir != "" {
		path := filepath.Join(m.snapDir, strings.ToLower(alias)+".json")
		opts = append(opts, game.WithSnapshots(storage.NewSnapshotStore[*game.State](path)))
	}

	interp := game.NewInterpreter(m.world, opts...)
	s := newSession(conn, interp, m.world, m.broker, alias)

	m.mu.Lock()
	m.sessions[s.Id()] = s
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.sessions, s.Id())
		m.mu.Unlock()
	}()

	return s.Play(ctx)
}
