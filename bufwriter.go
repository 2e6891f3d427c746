// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

// BufWriter wraps a Writer with an internal buffer to reduce the number
// of primitive writes reaching the sink.
//
// Close performs a best-effort flush and deliberately discards its error:
// teardown has no return channel, and this is the only place in the
// package where an error is intentionally swallowed. Call Flush first
// when the outcome matters.
type BufWriter struct {
	sink   Writer
	buf    []byte // len is the buffered byte count, cap the capacity
	closed bool
}

// NewBufWriter wraps sink with the default buffer capacity.
func NewBufWriter(sink Writer) *BufWriter {
	return NewBufWriterSize(sink, defaultBufSize)
}

// NewBufWriterSize wraps sink with a buffer of the given capacity.
// A capacity below 1 falls back to the default.
func NewBufWriterSize(sink Writer, size int) *BufWriter {
	if size < 1 {
		size = defaultBufSize
	}
	return &BufWriter{sink: sink, buf: make([]byte, 0, size)}
}

// Write implements the Writer primitive. Data that fits is appended to
// the internal buffer; otherwise the buffer is flushed first, and input
// at least as large as the capacity is then handed to the sink directly,
// bypassing the buffer to avoid a pointless copy.
func (b *BufWriter) Write(p []byte) (int, error) {
	if len(b.buf)+len(p) > cap(b.buf) {
		if err := b.flushBuf(); err != nil {
			return 0, err
		}
		if len(p) >= cap(b.buf) {
			return b.sink.Write(p)
		}
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Flush drains the internal buffer into the sink and then flushes the
// sink itself.
//
// Partial sink writes are not errors: the loop continues from the
// unwritten remainder. KindInterrupted is retried in place; a
// zero-progress write is escalated to KindWriteZero. On a non-retryable
// error the written prefix is dropped from the buffer and the remainder
// is kept, so a later retry never writes the same bytes twice.
func (b *BufWriter) Flush() error {
	if err := b.flushBuf(); err != nil {
		return err
	}
	for {
		err := b.sink.Flush()
		if err == nil || !IsInterrupted(err) {
			return err
		}
	}
}

func (b *BufWriter) flushBuf() error {
	written := 0
	for written < len(b.buf) {
		n, err := b.sink.Write(b.buf[written:])
		if n > 0 {
			written += n
		}
		if err != nil {
			if IsInterrupted(err) {
				continue
			}
			b.discard(written)
			return err
		}
		if n == 0 {
			b.discard(written)
			return errWriteZero
		}
	}
	b.buf = b.buf[:0]
	return nil
}

// discard removes the successfully written prefix, keeping the remainder
// at the front of the buffer.
func (b *BufWriter) discard(written int) {
	if written == 0 {
		return
	}
	rest := copy(b.buf, b.buf[written:])
	b.buf = b.buf[:rest]
}

// Close flushes buffered bytes on a best-effort basis and releases the
// writer. A flush failure at this point is discarded — there is nobody
// left to report it to. Close is idempotent and always returns nil; the
// error return exists for composability with closer-shaped call sites.
func (b *BufWriter) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	_ = b.Flush()
	return nil
}

// Buffered returns the number of bytes currently held in the buffer.
func (b *BufWriter) Buffered() int { return len(b.buf) }

// Available returns how many more bytes fit before a flush is forced.
func (b *BufWriter) Available() int { return cap(b.buf) - len(b.buf) }

// Capacity returns the internal buffer capacity.
func (b *BufWriter) Capacity() int { return cap(b.buf) }

// Inner returns the wrapped sink. Writing to it directly interleaves
// arbitrarily with buffered bytes.
func (b *BufWriter) Inner() Writer { return b.sink }
