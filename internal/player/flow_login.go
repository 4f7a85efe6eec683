package player

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pixil98/go-hacknet/internal"
	"github.com/pixil98/go-hacknet/internal/game"
)

// loginFlow gates the terminal behind an alias. The player may view the
// leaderboard before identifying themselves; anything else has to be a
// valid handle.
type loginFlow struct {
	board game.Scoreboard
}

func (f *loginFlow) Run(ctx context.Context, rw io.ReadWriter) (string, error) {
	rw.Write([]byte("ACCESS TERMINAL\n"))
	rw.Write([]byte("IDENTITY VERIFICATION REQUIRED\n"))
	rw.Write([]byte("Enter your hacker alias to access the network\n"))
	rw.Write([]byte("Type 'leaderboard' to view top scores\n\n"))

	// The leaderboard keyword is handled inside the validator so the whole
	// login shares one buffered reader.
	return internal.Prompt(rw, "USERNAME: ",
		internal.WithValidator(func(str string) (bool, string) {
			if strings.EqualFold(str, "leaderboard") {
				f.showBoard(ctx, rw)
				return false, ""
			}
			if str == "" {
				return false, "Alias must not be empty.\n"
			}
			if len(str) > game.MaxUsernameLen {
				return false, fmt.Sprintf("Alias must be at most %d characters.\n", game.MaxUsernameLen)
			}
			for _, r := range str {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
					return false, "Alias may only contain letters, digits, dashes, and underscores.\n"
				}
			}
			return true, ""
		}))
}

func (f *loginFlow) showBoard(ctx context.Context, rw io.ReadWriter) {
	if f.board == nil {
		rw.Write([]byte("ERROR: Failed to load leaderboard\n\n"))
		return
	}

	entries, err := f.board.Top(ctx)
	if err != nil {
		rw.Write([]byte("ERROR: Failed to load leaderboard\n\n"))
		return
	}

	rw.Write([]byte("HALL OF FAME - TOP HACKERS\n"))
	if len(entries) == 0 {
		rw.Write([]byte("No records found. Complete the mission to be the first!\n\n"))
		return
	}

	for idx, entry := range entries {
		name := entry.Username
		if len(name) > game.MaxUsernameLen {
			name = name[:game.MaxUsernameLen]
		}
		secs := entry.CompletionTime / 1000
		fmt.Fprintf(rw, "#%02d   | %-15s | %02d:%02d   | %3d\n",
			idx+1, name, secs/60, secs%60, entry.CommandCount)
	}
	rw.Write([]byte("\n"))
}
