package game

import (
	"context"
	"strings"
)

func (i *Interpreter) handleSudo(_ context.Context, _ string, args []string) (Result, error) {
	if len(args) == 0 || args[0] == "" {
		return Result{}, NewUserError("ERROR: Please specify a command to run with sudo")
	}

	if t := i.world.Trigger("sudo " + strings.Join(args, " ")); t != nil {
		return i.fireTrigger(t), nil
	}

	return Result{}, NewUserError(
		"ERROR: sudo password required",
		"Hint: The password might be hidden in the server files...",
	)
}
