package game

import "context"

func (i *Interpreter) handleEject(_ context.Context, _ string, _ []string) (Result, error) {
	i.append(Line{Text: "Ejecting CD tray...", Style: StyleInfo})

	i.later(ejectDelay, func() {
		i.append(Line{Text: "ERROR: No CD found in drive", Style: StyleError})
		i.append(Line{Text: "░░░░░░░░░░░░░░░░░░░░░░░░░░░", Style: StyleSuccess})
		i.append(Line{Text: "░    CD TRAY OPEN     ░", Style: StyleSuccess})
		i.append(Line{Text: "░░░░░░░░░░░░░░░░░░░░░░░░░░░", Style: StyleSuccess})
	})

	return Result{OK: true}, nil
}
