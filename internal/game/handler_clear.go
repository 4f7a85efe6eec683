package game

import "context"

// The polite phrasing short-circuits in Submit before the handler table
// is consulted. Reaching this handler means the player asked rudely.
func (i *Interpreter) handleClear(_ context.Context, _ string, _ []string) (Result, error) {
	return Result{}, NewUserError("ERROR: Permission denied. Maybe try asking nicely?")
}
