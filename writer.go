// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

// Derived write operations, implemented once against the Writer primitive.

// WriteAll writes buf to w in full.
//
// It loops the primitive until the whole buffer is consumed: a short write
// continues from the unwritten remainder, KindInterrupted is retried in
// place, and a write of 0 for a non-empty remainder is escalated to
// KindWriteZero. Any other error is surfaced immediately and unmodified.
// If buf is empty, the primitive is never called.
func WriteAll(w Writer, buf []byte) error {
	_, err := writeAll(w, buf)
	return err
}

// writeAll is WriteAll with the delivered byte count exposed, for callers
// that must account for partial progress when the sink fails midway.
func writeAll(w Writer, buf []byte) (int, error) {
	written := 0
	for written < len(buf) {
		n, err := w.Write(buf[written:])
		if n > 0 {
			written += n
		}
		if err != nil {
			if IsInterrupted(err) {
				continue
			}
			return written, err
		}
		if n == 0 {
			return written, errWriteZero
		}
	}
	return written, nil
}

// WriteString writes s to w in full with WriteAll semantics.
func WriteString(w Writer, s string) error {
	return WriteAll(w, []byte(s))
}
