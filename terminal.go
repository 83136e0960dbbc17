package termdraw

import (
	"fmt"

	"golang.org/x/term"
)

// Control sequences emitted by the session.
const (
	seqCSI        = "\x1b["
	seqCursorHide = "\x1b[?25l"
	seqCursorShow = "\x1b[?25h"
	seqClear      = "\x1b[2J"
	seqReset      = "\x1b[0m"
)

// terminalSize returns the current dimensions of the terminal on fd.
func terminalSize(fd int) (rows, cols int, err error) {
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: window size: %w", ErrIO, err)
	}
	return rows, cols, nil
}

// isTerminal reports whether fd refers to a terminal.
func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
