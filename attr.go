package termdraw

import (
	"strconv"
	"strings"
)

// Attr is a set of text attributes. Each flag maps to one SGR parameter.
type Attr uint64

// Attribute flags, in the order Set emits them.
const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrInvisible
	AttrStrikethrough

	FgDefault
	FgBlack
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
	FgBrightBlack
	FgBrightRed
	FgBrightGreen
	FgBrightYellow
	FgBrightBlue
	FgBrightMagenta
	FgBrightCyan
	FgBrightWhite

	BgDefault
	BgBlack
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
	BgBrightBlack
	BgBrightRed
	BgBrightGreen
	BgBrightYellow
	BgBrightBlue
	BgBrightMagenta
	BgBrightCyan
	BgBrightWhite
)

// sgrTable is the emission order used by Set: styles, then foreground,
// then background, each channel default first, standard before bright.
var sgrTable = [...]struct {
	attr Attr
	code uint8
	name string
}{
	{AttrBold, 1, "bold"},
	{AttrDim, 2, "dim"},
	{AttrItalic, 3, "italic"},
	{AttrUnderline, 4, "underline"},
	{AttrBlink, 5, "blink"},
	{AttrReverse, 7, "reverse"},
	{AttrInvisible, 8, "invisible"},
	{AttrStrikethrough, 9, "strikethrough"},

	{FgDefault, 39, "fg-default"},
	{FgBlack, 30, "fg-black"},
	{FgRed, 31, "fg-red"},
	{FgGreen, 32, "fg-green"},
	{FgYellow, 33, "fg-yellow"},
	{FgBlue, 34, "fg-blue"},
	{FgMagenta, 35, "fg-magenta"},
	{FgCyan, 36, "fg-cyan"},
	{FgWhite, 37, "fg-white"},
	{FgBrightBlack, 90, "fg-bright-black"},
	{FgBrightRed, 91, "fg-bright-red"},
	{FgBrightGreen, 92, "fg-bright-green"},
	{FgBrightYellow, 93, "fg-bright-yellow"},
	{FgBrightBlue, 94, "fg-bright-blue"},
	{FgBrightMagenta, 95, "fg-bright-magenta"},
	{FgBrightCyan, 96, "fg-bright-cyan"},
	{FgBrightWhite, 97, "fg-bright-white"},

	{BgDefault, 49, "bg-default"},
	{BgBlack, 40, "bg-black"},
	{BgRed, 41, "bg-red"},
	{BgGreen, 42, "bg-green"},
	{BgYellow, 43, "bg-yellow"},
	{BgBlue, 44, "bg-blue"},
	{BgMagenta, 45, "bg-magenta"},
	{BgCyan, 46, "bg-cyan"},
	{BgWhite, 47, "bg-white"},
	{BgBrightBlack, 100, "bg-bright-black"},
	{BgBrightRed, 101, "bg-bright-red"},
	{BgBrightGreen, 102, "bg-bright-green"},
	{BgBrightYellow, 103, "bg-bright-yellow"},
	{BgBrightBlue, 104, "bg-bright-blue"},
	{BgBrightMagenta, 105, "bg-bright-magenta"},
	{BgBrightCyan, 106, "bg-bright-cyan"},
	{BgBrightWhite, 107, "bg-bright-white"},
}

// String returns the flag names joined by "|".
func (a Attr) String() string {
	if a == 0 {
		return "none"
	}
	var sb strings.Builder
	for _, e := range sgrTable {
		if a&e.attr == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(e.name)
		a &^= e.attr
	}
	if a != 0 {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString("0x")
		sb.WriteString(strconv.FormatUint(uint64(a), 16))
	}
	return sb.String()
}

// Set queues one SGR sequence per flag in a. Flags without an SGR
// mapping are ignored. Either every sequence is queued or none is.
func (s *Session) Set(a Attr) error {
	if err := s.alive(); err != nil {
		return err
	}
	mark := s.buf.checkpoint()
	for _, e := range sgrTable {
		if a&e.attr == 0 {
			continue
		}
		if err := s.writeSGR(uint64(e.code)); err != nil {
			s.buf.rollback(mark)
			return err
		}
	}
	return nil
}

// SetCode queues a single SGR sequence for code. The code is not checked.
func (s *Session) SetCode(code uint) error {
	if err := s.alive(); err != nil {
		return err
	}
	mark := s.buf.checkpoint()
	if err := s.writeSGR(uint64(code)); err != nil {
		s.buf.rollback(mark)
		return err
	}
	return nil
}

// Reset queues the sequence that clears every attribute.
func (s *Session) Reset() error {
	if err := s.alive(); err != nil {
		return err
	}
	return s.buf.appendString(seqReset)
}

// writeSGR appends ESC[<code>m.
func (s *Session) writeSGR(code uint64) error {
	if err := s.buf.appendString(seqCSI); err != nil {
		return err
	}
	if err := s.buf.appendUint(code); err != nil {
		return err
	}
	return s.buf.appendString("m")
}
