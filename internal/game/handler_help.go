package game

import "context"

var helpEntries = []string{
	"help        - Show this help message",
	"scan        - Scan for available servers",
	"connect <ip> - Connect to a server",
	"ls          - List files in current directory",
	"cd <dir>    - Change directory",
	"cat <file>  - Display file contents",
	"decrypt <file> - Decrypt encrypted files",
	"sudo <cmd>  - Execute command as administrator",
	"clear       - Clear terminal (try asking nicely)",
	"eject       - Eject CD tray",
	"leaderboard - View top hacker scores",
	"disconnect  - Return to local terminal",
}

func (i *Interpreter) handleHelp(_ context.Context, _ string, _ []string) (Result, error) {
	sep := separator("═", 39)

	i.append(Line{Text: sep, Style: StyleSuccess})
	i.append(Line{Text: "AVAILABLE COMMANDS:", Style: StyleBanner})
	i.append(Line{Text: sep, Style: StyleSuccess})

	for _, entry := range helpEntries {
		i.append(Line{Text: entry})
	}

	i.append(Line{Text: separator("─", 39)})
	i.append(Line{Text: "EASTER EGGS: neo, rickroll, open ai, why am i here", Style: StyleAccent})
	i.append(Line{Text: sep, Style: StyleSuccess})

	return Result{OK: true}, nil
}
