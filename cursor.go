// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

import "math"

// Cursor is an in-memory Read+Write+Seek endpoint over a contiguous byte
// region. The backing strategy is chosen at construction and never changes:
// NewCursor owns a growable region, NewFixedCursor borrows a fixed one.
//
// The position may exceed the current length: sparse seeks are legal,
// reads past the end yield end-of-stream rather than an error, and writes
// past the end of a growable region fill the gap with zero bytes.
type Cursor struct {
	data  []byte
	pos   int64
	fixed bool
}

// NewCursor returns a growable cursor that takes ownership of data.
// Passing nil starts from an empty region.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// NewFixedCursor returns a cursor over a borrowed fixed-capacity region.
// Reads and writes operate in place over buf; the region never grows.
func NewFixedCursor(buf []byte) *Cursor {
	return &Cursor{data: buf, fixed: true}
}

// Read transfers min(len(p), remaining) bytes from the current position
// and advances it. Zero remaining signals end-of-stream via (0, nil).
func (c *Cursor) Read(p []byte) (int, error) {
	if c.pos >= int64(len(c.data)) {
		return 0, nil
	}
	n := copy(p, c.data[c.pos:])
	c.pos += int64(n)
	return n, nil
}

// Write transfers bytes from p at the current position.
//
// A growable cursor extends its region as needed; a position beyond the
// current length first fills the gap with zero bytes. A fixed cursor
// writes up to its boundary and reports the actual count; once the
// boundary is reached, writing non-empty input is a KindWriteZero error.
func (c *Cursor) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c.fixed {
		if c.pos >= int64(len(c.data)) {
			return 0, NewError(KindWriteZero, "write past end of fixed-capacity region")
		}
		n := copy(c.data[c.pos:], p)
		c.pos += int64(n)
		return n, nil
	}
	const maxInt = int64(math.MaxInt)
	if c.pos > maxInt-int64(len(p)) {
		return 0, NewError(KindOutOfMemory, "region too large to grow")
	}
	end := c.pos + int64(len(p))
	if gap := c.pos - int64(len(c.data)); gap > 0 {
		c.data = append(c.data, make([]byte, gap)...)
	}
	if end > int64(len(c.data)) {
		c.data = append(c.data, make([]byte, end-int64(len(c.data)))...)
	}
	copy(c.data[c.pos:end], p)
	c.pos = end
	return len(p), nil
}

// Flush is the identity: a Cursor has no intermediate buffering.
func (c *Cursor) Flush() error { return nil }

// Seek computes the new absolute position from whence and the signed
// offset. A negative result is KindInvalidInput; there is no upper bound.
func (c *Cursor) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case SeekStart:
		pos = offset
	case SeekCurrent:
		pos = c.pos + offset
	case SeekEnd:
		pos = int64(len(c.data)) + offset
	default:
		return 0, NewError(KindInvalidInput, "invalid seek whence")
	}
	if pos < 0 {
		return 0, errNegativeSeek
	}
	c.pos = pos
	return pos, nil
}

// WriteTo drains the remaining bytes into w and advances the position
// past everything the sink accepted. It is the WriterTo fast path used by
// Copy. On a sink error the returned count and the position both reflect
// the delivered prefix, so a retry picks up exactly where the sink
// stopped and never re-sends bytes it already holds.
func (c *Cursor) WriteTo(w Writer) (int64, error) {
	if c.pos >= int64(len(c.data)) {
		return 0, nil
	}
	n, err := writeAll(w, c.data[c.pos:])
	c.pos += int64(n)
	return int64(n), err
}

// Bytes returns the underlying region. For a growable cursor this is the
// written length, not the position.
func (c *Cursor) Bytes() []byte { return c.data }

// Len returns the current length of the region.
func (c *Cursor) Len() int { return len(c.data) }

// Position returns the current absolute position.
func (c *Cursor) Position() int64 { return c.pos }

// SetPosition moves the cursor to an arbitrary absolute position, which
// may exceed the current length. A negative position is a programming
// error and panics.
func (c *Cursor) SetPosition(pos int64) {
	if pos < 0 {
		panic("pio: Cursor.SetPosition to a negative position")
	}
	c.pos = pos
}
