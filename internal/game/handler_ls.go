package game

import (
	"context"
	"fmt"
	"strings"
)

func (i *Interpreter) handleLs(_ context.Context, _ string, _ []string) (Result, error) {
	srv := i.world.Server(i.state.CurrentServer)
	if srv == nil {
		return Result{}, NewUserError("ERROR: Not connected to any server")
	}

	node, ok := srv.Files[i.state.CurrentPath]
	if !ok || !node.IsDir() {
		return Result{}, NewUserError("ERROR: Current path is not a directory")
	}

	i.append(Line{Text: fmt.Sprintf("Contents of %s:", i.state.CurrentPath)})
	for _, entry := range node.Entries() {
		if strings.HasSuffix(entry, "/") {
			i.append(Line{Text: "drwxr-xr-x  " + entry, Style: StyleAccent})
			continue
		}
		i.append(Line{Text: "-rwxr-xr-x  " + entry, Style: StyleSuccess})
	}

	return Result{OK: true}, nil
}
