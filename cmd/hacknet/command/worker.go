package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-hacknet/internal/driver"
	"github.com/pixil98/go-hacknet/internal/listener"
	"github.com/pixil98/go-hacknet/internal/player"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the world dataset
	w, err := cfg.World.BuildWorld()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	// Embedded message broker for cross-session broadcasts
	nats, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("building nats server: %w", err)
	}

	// Assemble the player manager
	pmOpts := []player.ManagerOpt{
		player.WithBroker(nats),
	}
	if board := cfg.Leaderboard.BuildClient(); board != nil {
		pmOpts = append(pmOpts, player.WithScoreboard(board))
	}
	if cfg.Sessions.SnapshotDir != "" {
		pmOpts = append(pmOpts, player.WithSnapshotDir(cfg.Sessions.SnapshotDir))
	}
	idleLimit, idleSet, err := cfg.Sessions.ParseIdleLimit()
	if err != nil {
		return nil, fmt.Errorf("parsing idle_limit: %w", err)
	}
	if idleSet {
		pmOpts = append(pmOpts, player.WithIdleLimit(idleLimit))
	}
	pm := player.NewManager(w, pmOpts...)

	// Create listeners
	cm := listener.NewConnectionManager(pm)
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Housekeeping loop
	tick, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}
	drv := driver.NewGameDriver([]driver.Manager{pm}, driver.WithTickLength(tick))

	return service.WorkerList{
		"nats":      nats,
		"players":   pm,
		"driver":    drv,
		"listeners": &listeners,
	}, nil
}
