package termdraw

import "fmt"

// Unknown is the cached cursor coordinate before the first successful Move.
const Unknown = -1

// Move queues a cursor move to (row, col), both 1-based. Moving to the
// cached position emits nothing. The target is checked against the live
// terminal size.
func (s *Session) Move(row, col int) error {
	if err := s.alive(); err != nil {
		return err
	}
	if row < 1 || col < 1 {
		return fmt.Errorf("%w: (%d, %d) is not 1-based", ErrBounds, row, col)
	}
	if row == s.row && col == s.col {
		return nil
	}

	rows, cols, err := s.size()
	if err != nil {
		return err
	}
	if row > rows || col > cols {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrBounds, row, col, rows, cols)
	}

	// ESC[{row};{col}H
	mark := s.buf.checkpoint()
	if err := s.writeCursorPos(row, col); err != nil {
		s.buf.rollback(mark)
		return err
	}
	s.row, s.col = row, col
	return nil
}

func (s *Session) writeCursorPos(row, col int) error {
	if err := s.buf.appendString(seqCSI); err != nil {
		return err
	}
	if err := s.buf.appendUint(uint64(row)); err != nil {
		return err
	}
	if err := s.buf.appendString(";"); err != nil {
		return err
	}
	if err := s.buf.appendUint(uint64(col)); err != nil {
		return err
	}
	return s.buf.appendString("H")
}

// HideCursor queues the cursor hide sequence.
func (s *Session) HideCursor() error {
	if err := s.alive(); err != nil {
		return err
	}
	return s.buf.appendString(seqCursorHide)
}

// ShowCursor queues the cursor show sequence.
func (s *Session) ShowCursor() error {
	if err := s.alive(); err != nil {
		return err
	}
	return s.buf.appendString(seqCursorShow)
}

// Row returns the cached cursor row, or Unknown.
func (s *Session) Row() int {
	return s.row
}

// Col returns the cached cursor column, or Unknown.
func (s *Session) Col() int {
	return s.col
}

// Clear queues an erase of the whole screen. The cursor cache is
// invalidated so the next Move is always emitted.
func (s *Session) Clear() error {
	if err := s.alive(); err != nil {
		return err
	}
	if err := s.buf.appendString(seqClear); err != nil {
		return err
	}
	s.ForgetCursor()
	return nil
}

// ForgetCursor drops the cached position. Characters advance the terminal
// cursor without updating the cache, so a Move back to the last target
// after writing text needs this first.
func (s *Session) ForgetCursor() {
	s.row, s.col = Unknown, Unknown
}
