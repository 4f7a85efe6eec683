package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-hacknet/internal/world"
)

func (i *Interpreter) handleCat(_ context.Context, _ string, args []string) (Result, error) {
	if len(args) == 0 || args[0] == "" {
		return Result{}, NewUserError("ERROR: Please specify a filename")
	}

	srv := i.world.Server(i.state.CurrentServer)
	if srv == nil {
		return Result{}, NewUserError("ERROR: Not connected to any server")
	}

	name := args[0]
	path := name
	if !strings.HasPrefix(name, "/") {
		path = world.ChildFile(i.state.CurrentPath, name)
	}

	node, ok := srv.Files[path]
	if !ok || node.IsDir() {
		return Result{}, NewUserError(fmt.Sprintf("ERROR: File '%s' not found", name))
	}

	i.append(Line{Text: fmt.Sprintf("── %s ──", name), Style: StyleInfo})
	for _, line := range strings.Split(node.Content(), "\n") {
		i.append(Line{Text: line})
	}
	i.append(Line{Text: "── END ──", Style: StyleInfo})

	// Reading the same file twice never re-announces a fragment.
	for _, token := range world.ScanFragments(node.Content()) {
		if i.state.AddKey(token) {
			i.append(Line{Text: fmt.Sprintf("[KEY FRAGMENT FOUND: %s]", token), Style: StyleBanner})
			i.persist()
		}
	}

	return Result{OK: true}, nil
}
