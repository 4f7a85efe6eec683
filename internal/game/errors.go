package game

// UserError represents a failure that should be shown to the player as a
// terminal error line. These are not system faults - just bad input or an
// unmet precondition. Hints are printed as plain lines after the error.
type UserError struct {
	Message string
	Hints   []string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a player-facing error.
func NewUserError(msg string, hints ...string) *UserError {
	return &UserError{Message: msg, Hints: hints}
}
