//go:build linux || darwin

package termdraw

import (
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// terminalSettings is a snapshot of a terminal's line discipline.
type terminalSettings struct {
	attr unix.Termios
}

// captureSettings reads the current settings of fd.
func captureSettings(fd uintptr) (*terminalSettings, error) {
	var s terminalSettings
	if err := termios.Tcgetattr(fd, &s.attr); err != nil {
		return nil, err
	}
	return &s, nil
}

// applySettings installs s on fd, discarding unread input first.
func applySettings(fd uintptr, s *terminalSettings) error {
	attr := s.attr
	return termios.Tcsetattr(fd, termios.TCSAFLUSH, &attr)
}

// rawSettings derives raw mode from the captured settings. Input flag
// handling keeps ICRNL as captured unless strict is set.
func (s *terminalSettings) rawSettings(strict bool) *terminalSettings {
	raw := *s
	raw.attr.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.attr.Iflag &^= unix.IXON
	if strict {
		raw.attr.Iflag &^= unix.ICRNL
	}
	raw.attr.Oflag &^= unix.OPOST
	raw.attr.Cc[unix.VMIN] = 1
	raw.attr.Cc[unix.VTIME] = 0
	return &raw
}

// fdWriter writes to a file descriptor with exactly one write(2) per call,
// so a short write surfaces to the caller instead of being retried.
type fdWriter int

func (w fdWriter) Write(p []byte) (int, error) {
	n, err := unix.Write(int(w), p)
	if n < 0 {
		n = 0
	}
	return n, err
}

func outputWriter(f *os.File) io.Writer {
	return fdWriter(f.Fd())
}
