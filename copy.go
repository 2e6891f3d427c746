// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

// Copy copies from src to dst until src reports end-of-stream or an error
// occurs, and returns the number of bytes written.
//
// A (0, nil) read stops the copy — in this package that is the
// unconditional end-of-stream signal, so there is no hidden spinning
// inside the helper. KindInterrupted from either side is retried in
// place; a partial write continues from the unwritten remainder; a
// zero-progress write is escalated to KindWriteZero. Any other error is
// surfaced unmodified with the count of bytes already written.
//
// If src implements WriterTo or dst implements ReaderFrom, the copy is
// delegated to that fast path and no staging buffer is allocated.
func Copy(dst Writer, src Reader) (written int64, err error) {
	return copyBuffer(dst, src, nil)
}

// CopyBuffer is like Copy but stages through buf if needed.
// If buf is nil, a stack buffer is used.
// If buf has zero length, CopyBuffer panics.
func CopyBuffer(dst Writer, src Reader, buf []byte) (written int64, err error) {
	if buf != nil && len(buf) == 0 {
		panic("empty buffer in CopyBuffer")
	}
	return copyBuffer(dst, src, buf)
}

// CopyN copies exactly n bytes (or until an error) from src to dst.
// On return, written == n if and only if err == nil; a source that ends
// early produces KindUnexpectedEOF.
func CopyN(dst Writer, src Reader, n int64) (written int64, err error) {
	if n <= 0 {
		return 0, nil
	}

	lr := limitedReader{R: src, N: n}

	if rf, ok := dst.(ReaderFrom); ok {
		written, err = rf.ReadFrom(&lr)
	} else {
		written, err = copyBuffer(dst, &lr, nil)
	}

	if written == n {
		return n, nil
	}
	if err == nil {
		return written, errUnexpectedEOF
	}
	return written, err
}

type limitedReader struct {
	R Reader
	N int64
}

func (l *limitedReader) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, nil
	}
	if int64(len(p)) > l.N {
		p = p[:l.N]
	}
	n, err = l.R.Read(p)
	if n > 0 {
		l.N -= int64(n)
	}
	return n, err
}

// Buffer is the default stack buffer used by Copy when none is supplied.
type Buffer [32 * 1024]byte

func copyBuffer(dst Writer, src Reader, buf []byte) (written int64, err error) {
	if wt, ok := src.(WriterTo); ok {
		return wt.WriteTo(dst)
	}
	if rf, ok := dst.(ReaderFrom); ok {
		return rf.ReadFrom(src)
	}

	var local Buffer
	if buf == nil {
		buf = local[:]
	}

	for {
		nr, er := src.Read(buf)
		if er != nil {
			if IsInterrupted(er) {
				continue
			}
			return written, er
		}
		if nr == 0 {
			return written, nil
		}

		off := 0
		for off < nr {
			nw, ew := dst.Write(buf[off:nr])
			if nw > 0 {
				written += int64(nw)
				off += nw
			}
			if ew != nil {
				if IsInterrupted(ew) {
					continue
				}
				return written, ew
			}
			if nw == 0 {
				return written, errWriteZero
			}
		}
	}
}
