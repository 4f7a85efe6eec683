package game

import (
	"context"
	"log/slog"
)

const boardLimit = 10

func (i *Interpreter) handleLeaderboard(ctx context.Context, _ string, _ []string) (Result, error) {
	i.append(Line{Text: "Loading leaderboard...", Style: StyleInfo})

	if i.board == nil {
		i.append(Line{Text: "ERROR: Failed to load leaderboard", Style: StyleError})
		return Result{OK: true}, nil
	}

	entries, err := i.board.Top(ctx)
	if err != nil {
		// A dead scoreboard shouldn't end the run
		slog.Warn("could not load leaderboard", "session", i.session, "error", err)
		i.append(Line{Text: "ERROR: Failed to load leaderboard", Style: StyleError})
		return Result{OK: true}, nil
	}

	sep := separator("═", 39)
	i.append(Line{Text: sep, Style: StyleSuccess})
	i.append(Line{Text: "HALL OF FAME - TOP HACKERS", Style: StyleBanner})
	i.append(Line{Text: sep, Style: StyleSuccess})

	if len(entries) == 0 {
		i.append(Line{Text: "No records found. Complete the mission to be the first!", Style: StyleError})
	} else {
		i.append(Line{Text: "RANK | USERNAME        | TIME     | COMMANDS"})
		i.append(Line{Text: separator("─", 46)})

		if len(entries) > boardLimit {
			entries = entries[:boardLimit]
		}
		for idx, entry := range entries {
			style := StyleSuccess
			if idx == 0 {
				style = StyleBanner
			}
			row := renderTemplate(boardRowTmpl, struct {
				Rank     int
				Username string
				Time     string
				Commands int
			}{idx + 1, entry.Username, formatClock(entry.CompletionTime), entry.CommandCount})
			i.append(Line{Text: row, Style: style})
		}
	}

	i.append(Line{Text: sep, Style: StyleSuccess})

	return Result{OK: true}, nil
}
