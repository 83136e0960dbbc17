//go:build !linux && !darwin

package termdraw

import (
	"errors"
	"io"
	"os"
)

var errUnsupportedPlatform = errors.New("terminal settings not supported on this platform")

type terminalSettings struct{}

func captureSettings(fd uintptr) (*terminalSettings, error) {
	return nil, errUnsupportedPlatform
}

func applySettings(fd uintptr, s *terminalSettings) error {
	return errUnsupportedPlatform
}

func (s *terminalSettings) rawSettings(strict bool) *terminalSettings {
	return s
}

func outputWriter(f *os.File) io.Writer {
	return f
}
