package game

import (
	"context"
	"fmt"

	"github.com/pixil98/go-hacknet/internal/world"
)

func (i *Interpreter) handleCd(_ context.Context, _ string, args []string) (Result, error) {
	if len(args) == 0 || args[0] == "" || args[0] == world.Home {
		i.state.CurrentPath = world.Home
		i.persist()
		i.append(Line{Text: "Changed to home directory"})
		return Result{OK: true}, nil
	}

	dir := args[0]

	if dir == ".." {
		if i.state.CurrentPath == world.Home {
			i.append(Line{Text: "Already at home directory"})
			return Result{OK: true}, nil
		}
		parent := world.Parent(i.state.CurrentPath)
		i.state.CurrentPath = parent
		i.persist()
		if parent == world.Home {
			i.append(Line{Text: "Changed to home directory"})
		} else {
			i.append(Line{Text: fmt.Sprintf("Changed directory to %s", parent)})
		}
		return Result{OK: true}, nil
	}

	srv := i.world.Server(i.state.CurrentServer)
	if srv == nil {
		return Result{}, NewUserError("ERROR: Not connected to any server")
	}

	newPath := world.ChildDir(i.state.CurrentPath, dir)
	if node, ok := srv.Files[newPath]; ok && node.IsDir() {
		i.state.CurrentPath = newPath
		i.persist()
		i.append(Line{Text: fmt.Sprintf("Changed directory to %s", newPath)})
		return Result{OK: true}, nil
	}

	return Result{}, NewUserError(fmt.Sprintf("ERROR: Directory '%s' not found", dir))
}
