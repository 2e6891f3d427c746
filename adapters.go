// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

// ChainReader returns a Reader that reads from first until its
// end-of-stream, then continues with second. The chain reports
// end-of-stream only when both sources are exhausted.
func ChainReader(first, second Reader) Reader {
	return &chainReader{first: first, second: second}
}

type chainReader struct {
	first, second Reader
	doneFirst     bool
}

func (c *chainReader) Read(p []byte) (int, error) {
	if !c.doneFirst {
		n, err := c.first.Read(p)
		if err != nil {
			return n, err
		}
		if n > 0 || len(p) == 0 {
			return n, nil
		}
		c.doneFirst = true
	}
	return c.second.Read(p)
}

// Take is a Reader adapter that yields at most a fixed number of bytes
// from the inner source, then reports end-of-stream. Read errors do not
// count against the limit.
type Take struct {
	inner Reader
	limit int64
}

// NewTake wraps r with a read limit of n bytes.
func NewTake(r Reader, n int64) *Take {
	return &Take{inner: r, limit: n}
}

// Read serves at most the remaining limit. At limit 0 it does not call
// into the inner source at all, because the source may still block.
func (t *Take) Read(p []byte) (int, error) {
	if t.limit <= 0 {
		return 0, nil
	}
	if int64(len(p)) > t.limit {
		p = p[:t.limit]
	}
	n, err := t.inner.Read(p)
	t.limit -= int64(n)
	return n, err
}

// Limit returns how many bytes may still be read before end-of-stream.
// The inner source may of course end earlier.
func (t *Take) Limit() int64 { return t.limit }

// SetLimit resets the remaining byte allowance. Previous reads and the
// previous limit do not matter.
func (t *Take) SetLimit(n int64) { t.limit = n }

// Inner returns the wrapped source.
func (t *Take) Inner() Reader { return t.inner }
