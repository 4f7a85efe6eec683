package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
)

type Config struct {
	Listen  string        `json:"listen"`
	Entries EntriesConfig `json:"entries"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.Listen == "" {
		el.Add(fmt.Errorf("listen address is required"))
	}

	el.Add(c.Entries.Validate())

	return el.Err()
}

type EntriesConfig struct {
	Path string `json:"path"`
}

func (c *EntriesConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("entries: path is required")
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("entries: invalid path %q: %w", c.Path, err)
	}

	return nil
}
