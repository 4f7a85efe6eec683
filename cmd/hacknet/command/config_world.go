package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-hacknet/internal/storage"
	"github.com/pixil98/go-hacknet/internal/world"
)

type WorldConfig struct {
	Servers  AssetConfig[*world.Server]  `json:"servers"`
	Hosts    AssetConfig[*world.Host]    `json:"hosts"`
	Triggers AssetConfig[*world.Trigger] `json:"triggers"`
	Missions AssetConfig[*world.Mission] `json:"missions"`
	Mission  string                      `json:"mission"`
}

func (c *WorldConfig) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Servers.Validate("servers"))
	el.Add(c.Hosts.Validate("hosts"))
	el.Add(c.Triggers.Validate("triggers"))
	el.Add(c.Missions.Validate("missions"))

	if c.Mission == "" {
		el.Add(fmt.Errorf("mission is required"))
	}

	return el.Err()
}

func (c *WorldConfig) BuildWorld() (*world.World, error) {
	servers, err := c.Servers.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating server store: %w", err)
	}
	hosts, err := c.Hosts.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating host store: %w", err)
	}
	triggers, err := c.Triggers.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating trigger store: %w", err)
	}
	missions, err := c.Missions.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating mission store: %w", err)
	}

	mission := missions.Get(storage.Identifier(c.Mission))
	if mission == nil {
		return nil, fmt.Errorf("mission %q not found", c.Mission)
	}

	w, err := world.New(servers.GetAll(), hosts.GetAll(), triggers.GetAll(), mission)
	if err != nil {
		return nil, fmt.Errorf("assembling world: %w", err)
	}

	return w, nil
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
