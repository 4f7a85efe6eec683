package game

import (
	"context"
	"fmt"
	"time"

	"github.com/pixil98/go-hacknet/internal/world"
)

// fireTrigger plays a trigger's scripted lines and reports its effect.
// Lines carrying a delay are scheduled; the rest print immediately.
func (i *Interpreter) fireTrigger(t *world.Trigger) Result {
	for _, line := range t.Lines {
		line := line
		if line.DelayMs > 0 {
			i.later(time.Duration(line.DelayMs)*time.Millisecond, func() {
				i.append(Line{Text: line.Text, Style: Style(line.Style)})
			})
			continue
		}
		i.append(Line{Text: line.Text, Style: Style(line.Style)})
	}

	return Result{OK: true, Effect: Effect(t.Effect), Message: t.Message}
}

func (i *Interpreter) triggerVerb(phrase string) (Result, error) {
	t := i.world.Trigger(phrase)
	if t == nil {
		return Result{}, NewUserError(fmt.Sprintf("ERROR: Unknown command '%s'. Type 'help' for available commands.", phrase))
	}
	return i.fireTrigger(t), nil
}

func (i *Interpreter) handleNeo(_ context.Context, _ string, _ []string) (Result, error) {
	return i.triggerVerb("neo")
}

func (i *Interpreter) handleRickroll(_ context.Context, _ string, _ []string) (Result, error) {
	return i.triggerVerb("rickroll")
}

func (i *Interpreter) handleBackdoor(_ context.Context, _ string, _ []string) (Result, error) {
	return i.triggerVerb("backdoor")
}

func (i *Interpreter) handleOpen(_ context.Context, _ string, args []string) (Result, error) {
	if len(args) > 0 && args[0] != "" {
		if t := i.world.Trigger("open " + args[0]); t != nil {
			return i.fireTrigger(t), nil
		}
	}
	return Result{}, NewUserError("ERROR: Unknown file or application")
}

// The full phrase is the trigger key, so "why am i here" works while
// any other "why ..." falls through.
func (i *Interpreter) handleWhy(_ context.Context, cmd string, _ []string) (Result, error) {
	if t := i.world.Trigger(cmd); t != nil {
		return i.fireTrigger(t), nil
	}
	return Result{}, NewUserError("ERROR: Unknown command")
}
