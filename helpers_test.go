// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio_test

import (
	"code.hybscloud.com/pio"
)

// Shared scripted endpoints for contract tests.

type scriptStep struct {
	b   []byte
	err error
}

// scriptedReader replays a fixed sequence of results. A step with data
// may be consumed across several calls when the caller's buffer is
// smaller than the step; an exhausted script reads as end-of-stream.
type scriptedReader struct {
	steps []scriptStep
	i     int
	reads int
}

func (s *scriptedReader) Read(p []byte) (int, error) {
	s.reads++
	for s.i < len(s.steps) {
		st := &s.steps[s.i]
		if st.err != nil {
			s.i++
			return 0, st.err
		}
		if len(st.b) == 0 {
			s.i++
			continue
		}
		n := copy(p, st.b)
		st.b = st.b[n:]
		if len(st.b) == 0 {
			s.i++
		}
		return n, nil
	}
	return 0, nil
}

// chunked yields data split into the given chunk sizes, cycling through
// sizes until the data runs out.
func chunked(data []byte, sizes ...int) *scriptedReader {
	var steps []scriptStep
	for i := 0; len(data) > 0; i++ {
		n := sizes[i%len(sizes)]
		if n > len(data) {
			n = len(data)
		}
		steps = append(steps, scriptStep{b: data[:n]})
		data = data[n:]
	}
	return &scriptedReader{steps: steps}
}

func interrupted() error { return pio.NewError(pio.KindInterrupted, "") }

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

// sliceSink is a Writer that records everything written. limit caps the
// bytes accepted per call; script injects per-call errors ahead of any
// transfer.
type sliceSink struct {
	data    []byte
	limit   int
	script  []error
	calls   int
	flushes int
}

func (w *sliceSink) Write(p []byte) (int, error) {
	w.calls++
	if len(w.script) > 0 {
		err := w.script[0]
		w.script = w.script[1:]
		if err != nil {
			return 0, err
		}
	}
	n := len(p)
	if w.limit > 0 && n > w.limit {
		n = w.limit
	}
	w.data = append(w.data, p[:n]...)
	return n, nil
}

func (w *sliceSink) Flush() error {
	w.flushes++
	return nil
}

// zeroWriter accepts nothing and reports no error, the condition WriteAll
// must escalate rather than loop on.
type zeroWriter struct{}

func (zeroWriter) Write([]byte) (int, error) { return 0, nil }

func (zeroWriter) Flush() error { return nil }

// countingRWS wraps a ReadWriteSeeker and counts primitive calls.
type countingRWS struct {
	inner pio.ReadWriteSeeker
	reads int
	seeks int
}

func (c *countingRWS) Read(p []byte) (int, error) {
	c.reads++
	return c.inner.Read(p)
}

func (c *countingRWS) Write(p []byte) (int, error) { return c.inner.Write(p) }

func (c *countingRWS) Flush() error { return c.inner.Flush() }

func (c *countingRWS) Seek(offset int64, whence int) (int64, error) {
	c.seeks++
	return c.inner.Seek(offset, whence)
}
