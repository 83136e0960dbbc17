package termdraw

import (
	"errors"
	"testing"
)

func TestMoveEmitsPosition(t *testing.T) {
	s, _ := testSession(t, 24, 80)
	if err := s.Move(3, 7); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if string(s.buf.data) != "\x1b[3;7H" {
		t.Errorf("expected ESC[3;7H, got %q", s.buf.data)
	}
}

func TestMoveElidesRepeat(t *testing.T) {
	s, _ := testSession(t, 24, 80)
	queries := 0
	s.size = func() (int, int, error) {
		queries++
		return 24, 80, nil
	}

	s.Move(12, 40)
	s.Move(12, 40)

	if string(s.buf.data) != "\x1b[12;40H" {
		t.Errorf("expected a single sequence, got %q", s.buf.data)
	}
	if queries != 1 {
		t.Errorf("repeated move should not query the size, got %d queries", queries)
	}
	if s.Row() != 12 || s.Col() != 40 {
		t.Errorf("expected cursor (12, 40), got (%d, %d)", s.Row(), s.Col())
	}
}

func TestMoveCorners(t *testing.T) {
	s, _ := testSession(t, 24, 80)
	if err := s.Move(1, 1); err != nil {
		t.Errorf("Move(1, 1): %v", err)
	}
	if err := s.Move(24, 80); err != nil {
		t.Errorf("Move(24, 80): %v", err)
	}
	if string(s.buf.data) != "\x1b[1;1H\x1b[24;80H" {
		t.Errorf("unexpected output %q", s.buf.data)
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	s, _ := testSession(t, 24, 80)
	s.Move(2, 2)
	before := string(s.buf.data)

	for _, p := range [][2]int{{25, 1}, {1, 81}, {100, 100}, {0, 5}, {5, 0}, {-1, -1}} {
		err := s.Move(p[0], p[1])
		if !errors.Is(err, ErrBounds) {
			t.Errorf("Move(%d, %d): expected ErrBounds, got %v", p[0], p[1], err)
		}
	}
	if s.Row() != 2 || s.Col() != 2 {
		t.Errorf("cache changed to (%d, %d)", s.Row(), s.Col())
	}
	if string(s.buf.data) != before {
		t.Errorf("buffer changed to %q", s.buf.data)
	}
}

func TestMoveBeforeAnyMoveRejectsUnknown(t *testing.T) {
	s, _ := testSession(t, 24, 80)
	if err := s.Move(Unknown, Unknown); !errors.Is(err, ErrBounds) {
		t.Errorf("expected ErrBounds, got %v", err)
	}
}

func TestMoveSizeQueryFails(t *testing.T) {
	s, _ := testSession(t, 24, 80)
	s.size = func() (int, int, error) {
		return 0, 0, ErrIO
	}
	if err := s.Move(1, 1); !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if s.Row() != Unknown || s.Pending() != 0 {
		t.Error("failed move changed the session")
	}
}

func TestMoveOutOfMemoryRollsBack(t *testing.T) {
	s, _ := testSession(t, 24, 80)
	s.buf = newOutputBuffer(8, 8)
	s.AddString("abcd")

	err := s.Move(5, 10)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if string(s.buf.data) != "abcd" {
		t.Errorf("expected 'abcd', got %q", s.buf.data)
	}
	if s.Row() != Unknown || s.Col() != Unknown {
		t.Errorf("cache changed to (%d, %d)", s.Row(), s.Col())
	}
}

func TestHideShowCursor(t *testing.T) {
	s, _ := testSession(t, 24, 80)
	s.HideCursor()
	s.HideCursor()
	s.ShowCursor()
	if string(s.buf.data) != "\x1b[?25l\x1b[?25l\x1b[?25h" {
		t.Errorf("unexpected output %q", s.buf.data)
	}
}

func TestClearInvalidatesCursor(t *testing.T) {
	s, _ := testSession(t, 24, 80)
	s.Move(4, 4)
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Row() != Unknown || s.Col() != Unknown {
		t.Errorf("expected unknown cursor after Clear, got (%d, %d)", s.Row(), s.Col())
	}
	s.Move(4, 4)
	if string(s.buf.data) != "\x1b[4;4H\x1b[2J\x1b[4;4H" {
		t.Errorf("unexpected output %q", s.buf.data)
	}
}

func TestForgetCursor(t *testing.T) {
	s, _ := testSession(t, 24, 80)
	s.Move(24, 1)
	s.AddString("status")
	s.ForgetCursor()
	s.Move(24, 1)
	if string(s.buf.data) != "\x1b[24;1Hstatus\x1b[24;1H" {
		t.Errorf("unexpected output %q", s.buf.data)
	}
}
