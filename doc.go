// Package termdraw is a small set of terminal drawing primitives.
//
// A Session captures the terminal settings at start, optionally switches
// the terminal into raw mode, and restores the captured settings on
// Destroy. Drawing calls (Move, Set, AddRune, ...) only append ANSI
// sequences and ASCII characters to an output buffer; Display writes the
// whole buffer to the terminal in a single write.
//
// The session remembers where it last moved the cursor and drops moves to
// the same position. Only ASCII output is supported.
package termdraw
