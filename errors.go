package termdraw

import "errors"

// Error kinds returned by Session operations. Callers match them with
// errors.Is; the underlying OS error, when there is one, is wrapped as well.
var (
	ErrTerminal             = errors.New("termdraw: terminal settings")
	ErrIO                   = errors.New("termdraw: i/o")
	ErrOutOfMemory          = errors.New("termdraw: output buffer exhausted")
	ErrBounds               = errors.New("termdraw: position out of bounds")
	ErrUnsupportedCharacter = errors.New("termdraw: only ASCII characters are supported")
	ErrDestroyed            = errors.New("termdraw: session destroyed")
)
