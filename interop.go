// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

import (
	"errors"
	"io"
)

// Bridges between this package's contracts and the standard io shapes, so
// standard-library-backed endpoints (files, sockets, compressors) can
// participate as collaborators. This is contract translation only —
// platform error code mapping stays outside this layer.

// maxConsecutiveEmptyReads bounds how many (0, nil) results a wrapped
// io.Reader may produce in a row. In standard io that result means "try
// again"; here it means end-of-stream, so a broken reader must be cut off
// rather than misreported as EOF.
const maxConsecutiveEmptyReads = 100

// WrapReader adapts a standard io.Reader to the Reader contract:
// io.EOF becomes the (0, nil) end-of-stream convention, and bytes
// delivered together with an error are handed out first, with the error
// deferred to the next call so that an error return always means no bytes
// were transferred.
func WrapReader(r io.Reader) Reader {
	return &ioReader{r: r}
}

type ioReader struct {
	r       io.Reader
	pending error
}

func (a *ioReader) Read(p []byte) (int, error) {
	if a.pending != nil {
		err := a.pending
		a.pending = nil
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := a.r.Read(p)
		if n > 0 {
			if err != nil && !errors.Is(err, io.EOF) {
				a.pending = convertIOError(err)
			}
			return n, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, nil
			}
			return 0, convertIOError(err)
		}
	}
	return 0, NewError(KindOther, "reader returned no data and no error")
}

// WrapWriter adapts a standard io.Writer to the Writer contract. Flush
// delegates to the wrapped value when it has a Flush method (compressors,
// bufio writers) and is the identity otherwise. As with WrapReader, an
// error accompanying partial progress is deferred so the count is never
// lost.
func WrapWriter(w io.Writer) Writer {
	return &ioWriter{w: w}
}

type ioWriter struct {
	w       io.Writer
	pending error
}

func (a *ioWriter) Write(p []byte) (int, error) {
	if a.pending != nil {
		err := a.pending
		a.pending = nil
		return 0, err
	}
	n, err := a.w.Write(p)
	if err != nil {
		if n > 0 {
			a.pending = convertIOError(err)
			return n, nil
		}
		return 0, convertIOError(err)
	}
	return n, nil
}

func (a *ioWriter) Flush() error {
	if f, ok := a.w.(interface{ Flush() error }); ok {
		return convertIOError(f.Flush())
	}
	return nil
}

// convertIOError carries err across the boundary: values already carrying
// an ErrorKind pass through unchanged, well-known io sentinels map to the
// matching kind, and everything else becomes KindOther with the original
// message.
func convertIOError(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return errUnexpectedEOF
	case errors.Is(err, io.ErrShortWrite):
		return errWriteZero
	case errors.Is(err, io.ErrClosedPipe):
		return NewError(KindBrokenPipe, err.Error())
	default:
		return NewError(KindOther, err.Error())
	}
}

// AsIOReader adapts a Reader to standard io.Reader semantics: the
// (0, nil) end-of-stream result becomes io.EOF.
func AsIOReader(r Reader) io.Reader {
	return stdReader{r: r}
}

type stdReader struct {
	r Reader
}

func (s stdReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if n == 0 && err == nil && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

// AsIOWriter adapts a Writer to a standard io.Writer. Flush is not part
// of the io.Writer shape; callers still hold the original Writer for
// that.
func AsIOWriter(w Writer) io.Writer {
	return stdWriter{w: w}
}

type stdWriter struct {
	w Writer
}

func (s stdWriter) Write(p []byte) (int, error) {
	return s.w.Write(p)
}
