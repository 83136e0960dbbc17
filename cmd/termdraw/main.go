package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"termdraw"
)

const usage = `Usage: termdraw [options]

Draws the SGR palette and echoes key codes until q is pressed.

Options:
  -cooked         Leave the terminal in cooked mode
  -strict         Also disable CR to NL translation in raw mode
  -log file       Append log output to file
  --help          Show this help message`

var palette = []struct {
	label string
	attr  termdraw.Attr
}{
	{"black", termdraw.FgBlack | termdraw.BgWhite},
	{"red", termdraw.FgRed},
	{"green", termdraw.FgGreen},
	{"yellow", termdraw.FgYellow},
	{"blue", termdraw.FgBlue},
	{"magenta", termdraw.FgMagenta},
	{"cyan", termdraw.FgCyan},
	{"white", termdraw.FgWhite},
	{"bright", termdraw.FgBrightYellow | termdraw.BgBlue},
	{"bold", termdraw.AttrBold},
	{"dim", termdraw.AttrDim},
	{"italic", termdraw.AttrItalic},
	{"underline", termdraw.AttrUnderline},
	{"reverse", termdraw.AttrReverse},
	{"strike", termdraw.AttrStrikethrough},
}

func main() {
	os.Exit(realMain())
}

// realMain returns the exit status so deferred cleanup runs before os.Exit.
func realMain() int {
	cooked := flag.Bool("cooked", false, "")
	strict := flag.Bool("strict", false, "")
	logPath := flag.String("log", "", "")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
	}
	flag.Parse()

	log.SetPrefix("termdraw: ")
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "termdraw: open log: %v\n", err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
	}

	s, err := termdraw.New(termdraw.Config{RawMode: !*cooked, StrictRaw: *strict})
	if err != nil {
		log.Printf("start session: %v", err)
		fmt.Fprintf(os.Stderr, "termdraw: %v\n", err)
		return 1
	}
	log.Printf("session started: raw=%t strict=%t", !*cooked, *strict)

	err = run(s)
	s.Destroy()
	if err != nil {
		log.Printf("session failed: %v", err)
		fmt.Fprintf(os.Stderr, "termdraw: %v\n", err)
		return 1
	}
	log.Printf("session ended")
	return 0
}

// run draws the palette and handles keys until q or Ctrl+c.
func run(s *termdraw.Session) error {
	rows, err := s.Height()
	if err != nil {
		return err
	}
	cols, err := s.Width()
	if err != nil {
		return err
	}
	log.Printf("terminal size %dx%d", rows, cols)

	if err := drawPalette(s); err != nil {
		return err
	}
	if err := drawStatus(s, rows, "press a key, q to quit"); err != nil {
		return err
	}
	if err := s.Display(); err != nil {
		return err
	}

	for {
		c, err := s.ReadChar()
		if err != nil {
			return err
		}
		if c == 'q' || c == 0x03 {
			break
		}
		log.Printf("key 0x%02x", c)
		if err := drawStatus(s, rows, fmt.Sprintf("key 0x%02x", c)); err != nil {
			return err
		}
		if err := s.Display(); err != nil {
			return err
		}
	}

	if err := s.Reset(); err != nil {
		return err
	}
	if err := s.Clear(); err != nil {
		return err
	}
	if err := s.Move(1, 1); err != nil {
		return err
	}
	if err := s.ShowCursor(); err != nil {
		return err
	}
	return s.Display()
}

// drawPalette writes one labelled line per palette entry, as far as the
// terminal is tall.
func drawPalette(s *termdraw.Session) error {
	if err := s.HideCursor(); err != nil {
		return err
	}
	if err := s.Clear(); err != nil {
		return err
	}
	for i, p := range palette {
		err := s.Move(i+1, 2)
		if errors.Is(err, termdraw.ErrBounds) {
			log.Printf("palette truncated at %d of %d lines", i, len(palette))
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.Set(p.attr); err != nil {
			return err
		}
		if err := s.AddString(p.label); err != nil {
			return err
		}
		if err := s.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// drawStatus replaces the bottom line with msg.
func drawStatus(s *termdraw.Session, row int, msg string) error {
	s.ForgetCursor()
	if err := s.Move(row, 1); err != nil {
		return err
	}
	if err := s.Set(termdraw.AttrReverse); err != nil {
		return err
	}
	if err := s.AddString(fmt.Sprintf("%-30s", msg)); err != nil {
		return err
	}
	return s.Reset()
}
