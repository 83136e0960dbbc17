package termdraw

import (
	"fmt"
	"io"
	"strconv"
)

const (
	defaultInitialCapacity = 1024
	defaultMaxCapacity     = 1 << 30
)

// outputBuffer accumulates pending terminal output until flush.
// Capacity starts at initial and only ever doubles.
type outputBuffer struct {
	data    []byte // len(data) is the pending region, cap(data) the capacity
	initial int
	limit   int
}

// newOutputBuffer creates a buffer with the given initial capacity and growth limit.
func newOutputBuffer(initial, limit int) *outputBuffer {
	return &outputBuffer{
		data:    make([]byte, 0, initial),
		initial: initial,
		limit:   limit,
	}
}

// used returns the number of pending bytes.
func (b *outputBuffer) used() int {
	return len(b.data)
}

// capacity returns the current storage size.
func (b *outputBuffer) capacity() int {
	return cap(b.data)
}

// grow makes room for n more bytes. Nothing is modified on failure.
func (b *outputBuffer) grow(n int) error {
	need := len(b.data) + n
	c := cap(b.data)
	if need <= c {
		return nil
	}
	if c == 0 {
		c = b.initial
	}
	for c < need {
		if c > b.limit/2 {
			return fmt.Errorf("%w: %d bytes pending, limit %d", ErrOutOfMemory, need, b.limit)
		}
		c *= 2
	}
	// append would pick its own growth factor, so copy into exact storage
	data := make([]byte, len(b.data), c)
	copy(data, b.data)
	b.data = data
	return nil
}

// append adds p to the pending region.
func (b *outputBuffer) append(p []byte) error {
	if err := b.grow(len(p)); err != nil {
		return err
	}
	b.data = append(b.data, p...)
	return nil
}

// appendString is append for string literals.
func (b *outputBuffer) appendString(s string) error {
	if err := b.grow(len(s)); err != nil {
		return err
	}
	b.data = append(b.data, s...)
	return nil
}

// appendUint adds the decimal form of n. Zero is written as "0".
func (b *outputBuffer) appendUint(n uint64) error {
	var digits [20]byte
	return b.append(strconv.AppendUint(digits[:0], n, 10))
}

// flush writes all pending bytes to w in a single Write call and empties
// the pending region. A short write leaves the pending region untouched.
func (b *outputBuffer) flush(w io.Writer) error {
	if len(b.data) == 0 {
		return nil
	}
	n, err := w.Write(b.data)
	if err != nil {
		return fmt.Errorf("%w: write: %w", ErrIO, err)
	}
	if n != len(b.data) {
		return fmt.Errorf("%w: wrote %d of %d bytes: %w", ErrIO, n, len(b.data), io.ErrShortWrite)
	}
	b.data = b.data[:0]
	return nil
}

// release drops the storage.
func (b *outputBuffer) release() {
	b.data = nil
}

// checkpoint and rollback let multi-part writes stay all-or-nothing.
func (b *outputBuffer) checkpoint() int {
	return len(b.data)
}

func (b *outputBuffer) rollback(mark int) {
	b.data = b.data[:mark]
}
