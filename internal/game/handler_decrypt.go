package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-hacknet/internal/leaderboard"
)

func (i *Interpreter) handleDecrypt(_ context.Context, _ string, args []string) (Result, error) {
	if len(args) == 0 || args[0] == "" {
		return Result{}, NewUserError("ERROR: Please specify a file to decrypt")
	}

	mission := i.world.Mission()
	name := args[0]
	if !mission.Matches(name) {
		return Result{}, NewUserError(fmt.Sprintf("ERROR: Cannot decrypt '%s' - File not found or not encrypted", name))
	}

	if i.state.IsWin {
		i.append(Line{Text: "You have already completed the mission! Reset the game to play again.", Style: StyleInfo})
		return Result{OK: false}, nil
	}

	required := i.world.RequiredFragments()
	if len(i.state.KeysFound) < required {
		hints := []string(nil)
		if mission.Hint != "" {
			hints = append(hints, mission.Hint)
		}
		return Result{}, NewUserError(
			fmt.Sprintf("ERROR: Insufficient key fragments. Found %d/%d", len(i.state.KeysFound), required),
			hints...,
		)
	}

	i.append(Line{
		Text:  fmt.Sprintf("DECRYPTING %s...", strings.ToUpper(strings.TrimSuffix(mission.Artifact, ".enc"))),
		Style: StyleInfo,
	})
	i.append(Line{Text: "Using key fragments: " + strings.Join(i.state.KeysFound, ", "), Style: StyleSuccess})

	i.pendingDecrypt = i.gen

	return Result{OK: true, Effect: EffectDecrypt, Message: "Starting decryption process..."}, nil
}

// CompleteDecryption lands the win once the decryption animation has
// played out. It is a no-op if no decrypt is pending, if the mission is
// already won, or if the session was reset since the decrypt started.
func (i *Interpreter) CompleteDecryption(ctx context.Context) Result {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.pendingDecrypt != i.gen || i.state.IsWin {
		return Result{OK: false}
	}
	i.pendingDecrypt = -1

	elapsed := i.clock().Sub(i.state.SessionStart).Milliseconds()

	i.append(Line{})
	i.append(Line{Text: "DECRYPTION COMPLETE!", Style: StyleBanner})
	i.append(Line{})

	for _, line := range i.world.Mission().WinMessage {
		style := StylePlain
		if strings.Contains(line, "█") {
			style = StyleBanner
		}
		i.append(Line{Text: line, Style: style})
	}

	i.state.IsWin = true
	i.state.CompletionMs = elapsed
	i.persist()

	i.submitScore(ctx)
	i.announceWin()

	return Result{OK: true, Effect: EffectWin}
}

// submitScore posts the finished run to the leaderboard. Anonymous runs
// are not recorded, and a failed submission only costs a warning line.
func (i *Interpreter) submitScore(ctx context.Context) {
	if i.board == nil || i.state.Username == "" {
		return
	}

	entry := leaderboard.Entry{
		Id:             uuid.NewString(),
		Username:       i.state.Username,
		CompletionTime: i.state.CompletionMs,
		CommandCount:   i.state.CommandCount,
	}

	if _, err := i.board.Submit(ctx, entry); err != nil {
		slog.Warn("could not save score to leaderboard", "session", i.session, "error", err)
		i.append(Line{Text: "Warning: Could not save score to leaderboard", Style: StyleInfo})
		return
	}

	i.append(Line{Text: "Score saved to global leaderboard!", Style: StyleBanner})
}

func (i *Interpreter) announceWin() {
	if i.pub == nil {
		return
	}

	who := i.state.Username
	if who == "" {
		who = "an anonymous hacker"
	}
	artifact := strings.ToUpper(strings.TrimSuffix(i.world.Mission().Artifact, ".enc"))
	msg := fmt.Sprintf("*** %s decrypted %s in %s ***", who, artifact, formatClock(i.state.CompletionMs))

	if err := i.pub.Publish(BroadcastSubject, []byte(msg)); err != nil {
		slog.Warn("could not broadcast win", "session", i.session, "error", err)
	}
}
