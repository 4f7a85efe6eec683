package game

import (
	"context"

	"github.com/pixil98/go-hacknet/internal/world"
)

func (i *Interpreter) handleScan(_ context.Context, _ string, _ []string) (Result, error) {
	i.append(Line{Text: "Scanning network for available servers...", Style: StyleInfo})

	i.later(scanDelay, func() {
		i.append(Line{Text: "SCAN RESULTS:"})
		for _, host := range i.world.Hosts() {
			style := StyleSuccess
			if !host.Reachable() {
				style = StyleError
			}
			row := renderTemplate(scanRowTmpl, struct {
				Address string
				Name    string
				Status  world.HostStatus
			}{host.Address, host.DisplayName, host.Status})
			i.append(Line{Text: row, Style: style})
		}
		i.append(Line{Text: `Use "connect <ip>" to establish connection`})
	})

	return Result{OK: true}, nil
}
