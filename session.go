package termdraw

import (
	"fmt"
	"io"
	"os"
)

// setTerminal installs terminal settings; replaced in tests.
var setTerminal = applySettings

// Config controls how a Session is set up.
type Config struct {
	// In is the terminal whose settings are captured and read from.
	// Defaults to os.Stdin.
	In *os.File
	// Out receives flushed output and answers window size queries.
	// Defaults to os.Stdout.
	Out *os.File

	// RawMode switches the input terminal into raw mode.
	RawMode bool
	// StrictRaw additionally disables CR to NL translation on input.
	// Without it ICRNL is left as it was captured.
	StrictRaw bool

	// InitialCapacity is the starting size of the output buffer. Defaults to 1024.
	InitialCapacity int
	// MaxCapacity bounds output buffer growth. Defaults to 1 GiB.
	MaxCapacity int
}

func (c Config) withDefaults() Config {
	if c.In == nil {
		c.In = os.Stdin
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = defaultInitialCapacity
	}
	if c.MaxCapacity <= 0 {
		c.MaxCapacity = defaultMaxCapacity
	}
	if c.MaxCapacity < c.InitialCapacity {
		c.MaxCapacity = c.InitialCapacity
	}
	return c
}

// Session owns one terminal for drawing: the settings captured at start,
// the pending output and the cached cursor position.
// A Session is single use and must not be shared between goroutines.
type Session struct {
	in   *os.File
	r    io.Reader
	w    io.Writer
	size func() (rows, cols int, err error) // live size of the output terminal

	original  *terminalSettings
	buf       *outputBuffer
	row, col  int
	destroyed bool
}

// New captures the settings of cfg.In and, if cfg.RawMode is set, switches
// it into raw mode. The returned session must be released with Destroy.
func New(cfg Config) (*Session, error) {
	s := newSession(cfg)

	fd := s.in.Fd()
	if !isTerminal(int(fd)) {
		return nil, fmt.Errorf("%w: %s is not a terminal", ErrTerminal, s.in.Name())
	}
	original, err := captureSettings(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: capture: %w", ErrTerminal, err)
	}
	s.original = original

	if cfg.RawMode {
		if err := setTerminal(fd, original.rawSettings(cfg.StrictRaw)); err != nil {
			s.Destroy()
			return nil, fmt.Errorf("%w: enable raw mode: %w", ErrTerminal, err)
		}
	}
	return s, nil
}

// newSession builds a session without touching the terminal.
func newSession(cfg Config) *Session {
	cfg = cfg.withDefaults()
	outFd := int(cfg.Out.Fd())
	return &Session{
		in: cfg.In,
		r:  cfg.In,
		w:  outputWriter(cfg.Out),
		size: func() (int, int, error) {
			return terminalSize(outFd)
		},
		buf: newOutputBuffer(cfg.InitialCapacity, cfg.MaxCapacity),
		row: Unknown,
		col: Unknown,
	}
}

// Destroy restores the captured terminal settings and releases the output
// buffer. Pending output is dropped. Restoration is best effort; Destroy is
// safe to call more than once and on a nil session.
func (s *Session) Destroy() {
	if s == nil || s.destroyed {
		return
	}
	s.destroyed = true
	if s.original != nil {
		_ = setTerminal(s.in.Fd(), s.original)
	}
	s.buf.release()
}

func (s *Session) alive() error {
	if s.destroyed {
		return ErrDestroyed
	}
	return nil
}

// Display writes all pending output to the terminal in one write.
func (s *Session) Display() error {
	if err := s.alive(); err != nil {
		return err
	}
	return s.buf.flush(s.w)
}

// Pending returns the number of bytes waiting for Display.
func (s *Session) Pending() int {
	return s.buf.used()
}

// Capacity returns the current size of the output buffer.
func (s *Session) Capacity() int {
	return s.buf.capacity()
}

// AddRune queues an ASCII character.
func (s *Session) AddRune(r rune) error {
	if err := s.alive(); err != nil {
		return err
	}
	if r < 0 || r > 127 {
		return fmt.Errorf("%w: %U", ErrUnsupportedCharacter, r)
	}
	return s.buf.append([]byte{byte(r)})
}

// AddString queues every character of str, or none of them if any is not
// ASCII.
func (s *Session) AddString(str string) error {
	if err := s.alive(); err != nil {
		return err
	}
	for i, r := range str {
		if r > 127 {
			return fmt.Errorf("%w: %U at offset %d", ErrUnsupportedCharacter, r, i)
		}
	}
	return s.buf.appendString(str)
}

// Height returns the number of rows of the output terminal.
func (s *Session) Height() (int, error) {
	if err := s.alive(); err != nil {
		return 0, err
	}
	rows, _, err := s.size()
	return rows, err
}

// Width returns the number of columns of the output terminal.
func (s *Session) Width() (int, error) {
	if err := s.alive(); err != nil {
		return 0, err
	}
	_, cols, err := s.size()
	return cols, err
}

// ReadChar blocks until one byte of input is available.
func (s *Session) ReadChar() (byte, error) {
	if err := s.alive(); err != nil {
		return 0, err
	}
	var b [1]byte
	n, err := s.r.Read(b[:])
	if n != 1 {
		if err == nil {
			err = io.ErrNoProgress
		}
		return 0, fmt.Errorf("%w: read: %w", ErrIO, err)
	}
	return b[0], nil
}
