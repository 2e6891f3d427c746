// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

import (
	"bytes"
	"fmt"
	"iter"
)

// defaultBufSize is the buffer capacity used by NewBufReader and
// NewBufWriter.
const defaultBufSize = 8 * 1024

// BufReader wraps a Reader with an internal ReadBuf to amortize the cost
// of primitive reads, and adds delimiter-scanning operations.
//
// pos is the read cursor within the filled region; pos <= filled always
// holds. The absolute stream position visible to the caller is the
// source's position minus the unread count still sitting in the buffer.
// Position accounting starts at zero when the BufReader is constructed;
// if the source sits at a non-zero offset, a SeekStart seek resynchronizes
// it exactly.
type BufReader struct {
	src    Reader
	buf    *ReadBuf
	pos    int
	srcPos int64
}

// NewBufReader wraps src with the default buffer capacity.
func NewBufReader(src Reader) *BufReader {
	return NewBufReaderSize(src, defaultBufSize)
}

// NewBufReaderSize wraps src with a buffer of the given capacity.
// A capacity below 1 falls back to the default.
func NewBufReaderSize(src Reader, size int) *BufReader {
	if size < 1 {
		size = defaultBufSize
	}
	return &BufReader{src: src, buf: NewReadBuf(make([]byte, size))}
}

// FillBuf returns the unread slice of the internal buffer, reading from
// the source first if the buffer is exhausted.
//
// When a fill is needed it performs exactly one primitive read — it never
// loops for more, so a source that would block indefinitely is not masked
// behind a helper. KindInterrupted is the sole exception and is retried
// in place. An empty returned slice means the source reached
// end-of-stream.
//
// FillBuf pairs with Consume: bytes are not considered read until
// consumed, and the same slice is returned again until then.
func (b *BufReader) FillBuf() ([]byte, error) {
	if b.pos == b.buf.FilledLen() {
		b.buf.Clear()
		b.pos = 0
		for {
			err := ReadIntoBuf(b.src, b.buf)
			if err == nil {
				break
			}
			if IsInterrupted(err) {
				continue
			}
			return nil, err
		}
		b.srcPos += int64(b.buf.FilledLen())
	}
	return b.buf.Filled()[b.pos:], nil
}

// Consume marks n bytes of the slice returned by FillBuf as read. The
// precondition n <= len(unread) is a programming contract; violating it
// panics.
func (b *BufReader) Consume(n int) {
	if n < 0 || n > b.buf.FilledLen()-b.pos {
		panic(fmt.Sprintf("pio: BufReader.Consume(%d) exceeds unread count %d",
			n, b.buf.FilledLen()-b.pos))
	}
	b.pos += n
}

// Read implements the Reader primitive. Reads are served from the
// internal buffer; a read at least as large as the buffer capacity
// bypasses it entirely when the buffer is empty, avoiding a pointless
// copy.
func (b *BufReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.pos == b.buf.FilledLen() {
		if len(p) >= b.buf.Capacity() {
			n, err := b.src.Read(p)
			if n > 0 {
				b.srcPos += int64(n)
			}
			return n, err
		}
		if _, err := b.FillBuf(); err != nil {
			return 0, err
		}
	}
	n := copy(p, b.buf.Filled()[b.pos:])
	b.pos += n
	return n, nil
}

// ReadUntil reads up to and including the first occurrence of delim,
// appending to dst, and returns the extended slice plus the number of
// bytes appended.
//
// End-of-stream before the delimiter is not a failure: everything
// collected so far is returned with a nil error. Errors from the source
// surface with all bytes read so far already appended.
func (b *BufReader) ReadUntil(delim byte, dst []byte) ([]byte, int, error) {
	read := 0
	for {
		avail, err := b.FillBuf()
		if err != nil {
			return dst, read, err
		}
		if i := bytes.IndexByte(avail, delim); i >= 0 {
			dst = append(dst, avail[:i+1]...)
			b.Consume(i + 1)
			return dst, read + i + 1, nil
		}
		dst = append(dst, avail...)
		b.Consume(len(avail))
		read += len(avail)
		if len(avail) == 0 {
			return dst, read, nil
		}
	}
}

// ReadLine reads up to and including the next newline byte with ReadUntil
// semantics.
func (b *BufReader) ReadLine(dst []byte) ([]byte, int, error) {
	return b.ReadUntil('\n', dst)
}

// Bytes returns an iterator over the remaining bytes of the stream. An
// error from the source is yielded once, with a zero byte, and ends the
// sequence. Breaking out of the loop consumes exactly the bytes yielded,
// so the BufReader stays usable from that position.
func (b *BufReader) Bytes() iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		for {
			avail, err := b.FillBuf()
			if err != nil {
				yield(0, err)
				return
			}
			if len(avail) == 0 {
				return
			}
			for i, c := range avail {
				if !yield(c, nil) {
					b.Consume(i + 1)
					return
				}
			}
			b.Consume(len(avail))
		}
	}
}

// Split returns an iterator over the segments of the stream separated by
// delim. The delimiter is not included in the yielded segments, and a
// stream ending in the delimiter does not produce a final empty segment.
// Each yielded slice is freshly allocated and safe to retain.
func (b *BufReader) Split(delim byte) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			seg, n, err := b.ReadUntil(delim, nil)
			if err != nil {
				yield(nil, err)
				return
			}
			if n == 0 {
				return
			}
			if seg[len(seg)-1] == delim {
				seg = seg[:len(seg)-1]
			}
			if !yield(seg, nil) {
				return
			}
		}
	}
}

// Lines returns an iterator over the lines of the stream. Line
// terminators ("\n" or "\r\n") are stripped; a final line without one is
// still yielded.
func (b *BufReader) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for seg, err := range b.Split('\n') {
			if err != nil {
				yield("", err)
				return
			}
			if len(seg) > 0 && seg[len(seg)-1] == '\r' {
				seg = seg[:len(seg)-1]
			}
			if !yield(string(seg), nil) {
				return
			}
		}
	}
}

// Seek sets the position for the next read. When the target lies within
// the bytes already buffered, only the internal cursor moves and the
// source is not touched; otherwise the buffer is discarded and the seek
// is delegated to the source, adjusted by the unread count for
// SeekCurrent. Sources that do not implement Seeker make this a
// KindUnsupported error.
func (b *BufReader) Seek(offset int64, whence int) (int64, error) {
	s, ok := b.src.(Seeker)
	if !ok {
		return 0, NewError(KindUnsupported, "source does not support seeking")
	}
	filled := int64(b.buf.FilledLen())
	unread := filled - int64(b.pos)
	bufStart := b.srcPos - filled

	if whence == SeekStart || whence == SeekCurrent {
		target := offset
		if whence == SeekCurrent {
			target = b.srcPos - unread + offset
		}
		if target < 0 {
			return 0, errNegativeSeek
		}
		// target == srcPos parks the cursor exactly at the filled
		// boundary; the next FillBuf refills from there.
		if target >= bufStart && target <= b.srcPos {
			b.pos = int(target - bufStart)
			return target, nil
		}
	}

	b.buf.Clear()
	b.pos = 0
	if whence == SeekCurrent {
		offset -= unread
	}
	n, err := s.Seek(offset, whence)
	if err != nil {
		return 0, err
	}
	b.srcPos = n
	return n, nil
}

// Buffered returns the number of unread bytes currently held.
func (b *BufReader) Buffered() int { return b.buf.FilledLen() - b.pos }

// Capacity returns the internal buffer capacity.
func (b *BufReader) Capacity() int { return b.buf.Capacity() }

// Inner returns the wrapped source. Reading from it directly desynchronizes
// the BufReader's position accounting.
func (b *BufReader) Inner() Reader { return b.src }
