// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

// The contracts below are the whole boundary of this package: a concrete
// endpoint implements the primitive method(s) of a contract and gains every
// derived operation (ReadExact, ReadToEnd, WriteAll, Copy, ...) for free.

// Reader is the readable-source contract.
//
// Read pulls some bytes from the source into p and returns how many were
// transferred, with 0 <= n <= len(p). A return of (0, nil) with non-empty p
// unconditionally means end-of-stream — never "try again". Transferring
// fewer bytes than len(p) is not an error, even when more data remains.
//
// If Read returns an error, it must guarantee that no bytes were
// transferred by that call. An error of kind KindInterrupted is non-fatal;
// derived operations retry it transparently.
type Reader interface {
	Read(p []byte) (n int, err error)
}

// Writer is the writable-sink contract.
//
// Write pushes some bytes from p into the sink and returns how many were
// consumed, with 0 <= n <= len(p). A short write is not an error at this
// level; a return of 0 for non-empty p is escalated to KindWriteZero by
// WriteAll, not by the endpoint. If Write returns an error, no bytes were
// consumed by that call.
//
// Flush forces buffered state down to the true sink. It has no default:
// every writer defines what flush means for it; endpoints with no internal
// buffering implement it as the identity.
type Writer interface {
	Write(p []byte) (n int, err error)
	Flush() error
}

// Seeker is the seekable-stream contract.
//
// Seek sets the position for the next Read or Write relative to whence
// (SeekStart, SeekCurrent, SeekEnd) and returns the new absolute offset.
// Seeking to a negative resulting position is a KindInvalidInput error.
// Seeking past the current length is legal and does not itself fail:
// reads there yield end-of-stream, writes there (where supported) may
// produce a gap.
type Seeker interface {
	Seek(offset int64, whence int) (int64, error)
}

// Whence values for Seeker.Seek. The numeric values match the standard
// io package so positions translate across the interop boundary unchanged.
const (
	SeekStart   = 0 // relative to the origin of the stream
	SeekCurrent = 1 // relative to the current position
	SeekEnd     = 2 // relative to the end of the stream
)

// WriterTo is an optional fast path for Readers: Copy-like helpers call
// WriteTo instead of staging through an intermediate buffer.
type WriterTo interface {
	WriteTo(w Writer) (n int64, err error)
}

// ReaderFrom is an optional fast path for Writers: Copy-like helpers call
// ReadFrom instead of staging through an intermediate buffer.
type ReaderFrom interface {
	ReadFrom(r Reader) (n int64, err error)
}

// ReadWriter groups the Reader and Writer contracts.
type ReadWriter interface {
	Reader
	Writer
}

// ReadSeeker groups the Reader and Seeker contracts.
type ReadSeeker interface {
	Reader
	Seeker
}

// WriteSeeker groups the Writer and Seeker contracts.
type WriteSeeker interface {
	Writer
	Seeker
}

// ReadWriteSeeker groups all three contracts.
type ReadWriteSeeker interface {
	Reader
	Writer
	Seeker
}
