package command

import (
	"fmt"

	"github.com/pixil98/go-hacknet/internal/leaderboard"
	"github.com/pixil98/go-hacknet/internal/storage"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	store, err := storage.NewFileStore[*leaderboard.Entry](cfg.Entries.Path)
	if err != nil {
		return nil, fmt.Errorf("creating entry store: %w", err)
	}

	return service.WorkerList{
		"http": leaderboard.NewService(cfg.Listen, store),
	}, nil
}
