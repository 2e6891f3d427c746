// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

import "unicode/utf8"

// Derived read operations. Each is implemented once against the Reader
// primitive so every endpoint gets them for free.

// ReadExact reads from r until buf is completely full.
//
// KindInterrupted results are retried in place. If the source reaches
// end-of-stream before buf is full, ReadExact returns KindUnexpectedEOF;
// the unwritten suffix of buf is then unspecified but never touched out of
// bounds. Any other error is surfaced immediately and unmodified.
func ReadExact(r Reader, buf []byte) error {
	for len(buf) > 0 {
		n, err := r.Read(buf)
		if err != nil {
			if IsInterrupted(err) {
				continue
			}
			return err
		}
		if n == 0 {
			break
		}
		buf = buf[n:]
	}
	if len(buf) > 0 {
		return errUnexpectedEOF
	}
	return nil
}

// ReadIntoBuf performs exactly one primitive read from r into rb's
// unfilled region and records the transferred bytes via AssumeFilled.
// It never loops; KindInterrupted is surfaced to the caller.
func ReadIntoBuf(r Reader, rb *ReadBuf) error {
	n, err := r.Read(rb.Unfilled())
	if err != nil {
		return err
	}
	rb.AssumeFilled(n)
	return nil
}

// ReadBufExact fills rb to capacity, retrying KindInterrupted and
// synthesizing KindUnexpectedEOF when the source ends first.
func ReadBufExact(r Reader, rb *ReadBuf) error {
	for rb.Remaining() > 0 {
		prev := rb.FilledLen()
		if err := ReadIntoBuf(r, rb); err != nil {
			if IsInterrupted(err) {
				continue
			}
			return err
		}
		if rb.FilledLen() == prev {
			return errUnexpectedEOF
		}
	}
	return nil
}

// ReadToEnd reads from r until end-of-stream, appending to dst, and
// returns the extended slice together with the number of bytes appended.
// dst may be nil.
//
// Growth never re-reads already-filled bytes: each iteration reads into
// the spare capacity through a ReadBuf view, and the initialized
// high-water mark left over from the previous iteration is carried
// forward so reused spare capacity is not redundantly prepared again.
func ReadToEnd(r Reader, dst []byte) ([]byte, int, error) {
	return readToEnd(r, dst, 0)
}

// ReadToEndSizeHint is ReadToEnd with an upstream length estimate: when
// hint exceeds the free capacity of dst, that much is reserved up front.
// The hint is purely an allocation optimization; observable output is
// identical to ReadToEnd for any hint value.
func ReadToEndSizeHint(r Reader, dst []byte, hint int) ([]byte, int, error) {
	return readToEnd(r, dst, hint)
}

func readToEnd(r Reader, dst []byte, hint int) ([]byte, int, error) {
	start := len(dst)
	if hint > 0 && cap(dst)-len(dst) < hint {
		grown := make([]byte, len(dst), len(dst)+hint)
		copy(grown, dst)
		dst = grown
	}

	// Bytes of spare capacity initialized (but not filled) by the
	// previous iteration.
	carry := 0
	for {
		if len(dst) == cap(dst) {
			// Let append pick the growth factor, then hand the new
			// spare capacity back unchanged.
			dst = append(dst, 0)[:len(dst)]
			carry = 0
		}
		rb := NewReadBuf(dst[len(dst):cap(dst)])
		rb.AssumeInit(carry)

		if err := ReadIntoBuf(r, rb); err != nil {
			if IsInterrupted(err) {
				continue
			}
			return dst, len(dst) - start, err
		}
		if rb.FilledLen() == 0 {
			return dst, len(dst) - start, nil
		}
		carry = rb.InitializedLen() - rb.FilledLen()
		dst = dst[:len(dst)+rb.FilledLen()]
	}
}

// ReadToString collects r to end-of-stream and returns the contents as a
// string. A stream that is not valid UTF-8 is a KindInvalidData error.
func ReadToString(r Reader) (string, error) {
	buf, _, err := ReadToEnd(r, nil)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", NewError(KindInvalidData, "stream did not contain valid UTF-8")
	}
	return string(buf), nil
}
