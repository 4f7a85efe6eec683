package display

import "github.com/muesli/reflow/wordwrap"

const DefaultWidth = 80

// ClearScreen wipes the terminal and homes the cursor.
const ClearScreen = "\x1b[2J\x1b[H"

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}
