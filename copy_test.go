// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio_test

import (
	"bytes"
	"errors"
	"testing"

	"code.hybscloud.com/pio"
)

// plainReader strips any fast-path interfaces from a Reader.
type plainReader struct{ r pio.Reader }

func (p plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }

// plainWriter strips any fast-path interfaces from a Writer.
type plainWriter struct{ w pio.Writer }

func (p plainWriter) Write(b []byte) (int, error) { return p.w.Write(b) }

func (p plainWriter) Flush() error { return p.w.Flush() }

func TestCopy(t *testing.T) {
	data := bytes.Repeat([]byte("stream"), 1000)
	src := plainReader{chunked(data, 7, 1, 13, 64)}
	sink := &sliceSink{}

	n, err := pio.Copy(plainWriter{sink}, src)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if n != int64(len(data)) || !bytes.Equal(sink.data, data) {
		t.Fatalf("copied %d bytes, want %d", n, len(data))
	}
}

func TestCopyInterruptedSourceRetried(t *testing.T) {
	src := &scriptedReader{steps: []scriptStep{
		{b: []byte("ab")},
		{err: interrupted()},
		{b: []byte("cd")},
	}}
	sink := &sliceSink{}
	n, err := pio.Copy(plainWriter{sink}, plainReader{src})
	if err != nil || n != 4 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if string(sink.data) != "abcd" {
		t.Fatalf("data=%q", sink.data)
	}
}

func TestCopySourceError(t *testing.T) {
	boom := pio.NewError(pio.KindConnectionReset, "reset")
	src := &scriptedReader{steps: []scriptStep{
		{b: []byte("partial")},
		{err: boom},
	}}
	sink := &sliceSink{}
	n, err := pio.Copy(plainWriter{sink}, plainReader{src})
	if !errors.Is(err, boom) {
		t.Fatalf("want source error, got %v", err)
	}
	if n != 7 || string(sink.data) != "partial" {
		t.Fatalf("n=%d data=%q", n, sink.data)
	}
}

func TestCopyPartialWrites(t *testing.T) {
	sink := &sliceSink{limit: 3}
	n, err := pio.Copy(plainWriter{sink}, plainReader{chunked([]byte("0123456789"), 10)})
	if err != nil || n != 10 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if string(sink.data) != "0123456789" {
		t.Fatalf("data=%q", sink.data)
	}
}

func TestCopyZeroProgressWrite(t *testing.T) {
	n, err := pio.Copy(zeroWriter{}, plainReader{chunked([]byte("stuck"), 5)})
	if !pio.IsWriteZero(err) {
		t.Fatalf("want write zero, got %v", err)
	}
	if n != 0 {
		t.Fatalf("n=%d", n)
	}
}

func TestCopyWriterToFastPath(t *testing.T) {
	// Cursor implements WriterTo, so the staging loop is skipped and the
	// wrapped reader is never asked for bytes.
	c := pio.NewCursor([]byte("direct"))
	sink := &sliceSink{}
	n, err := pio.Copy(plainWriter{sink}, c)
	if err != nil || n != 6 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if string(sink.data) != "direct" {
		t.Fatalf("data=%q", sink.data)
	}
}

type recordingReaderFrom struct {
	sliceSink
	fromCalls int
}

func (r *recordingReaderFrom) ReadFrom(src pio.Reader) (int64, error) {
	r.fromCalls++
	return pio.Copy(plainWriter{&r.sliceSink}, plainReader{src})
}

func TestCopyReaderFromFastPath(t *testing.T) {
	dst := &recordingReaderFrom{}
	n, err := pio.Copy(dst, plainReader{chunked([]byte("handed off"), 4)})
	if err != nil || n != 10 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if dst.fromCalls != 1 {
		t.Fatalf("ReadFrom not used (%d calls)", dst.fromCalls)
	}
	if string(dst.data) != "handed off" {
		t.Fatalf("data=%q", dst.data)
	}
}

func TestCopyBufferPanicsOnEmptyBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("empty non-nil buffer must panic")
		}
	}()
	_, _ = pio.CopyBuffer(zeroWriter{}, plainReader{&scriptedReader{}}, []byte{})
}

func TestCopyBufferSmallBuffer(t *testing.T) {
	sink := &sliceSink{}
	n, err := pio.CopyBuffer(plainWriter{sink}, plainReader{chunked([]byte("tiny staging"), 64)}, make([]byte, 2))
	if err != nil || n != 12 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if string(sink.data) != "tiny staging" {
		t.Fatalf("data=%q", sink.data)
	}
}

func TestCopyN(t *testing.T) {
	sink := &sliceSink{}
	n, err := pio.CopyN(plainWriter{sink}, plainReader{chunked([]byte("0123456789"), 3)}, 6)
	if err != nil || n != 6 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if string(sink.data) != "012345" {
		t.Fatalf("data=%q", sink.data)
	}
}

func TestCopyNShortSource(t *testing.T) {
	sink := &sliceSink{}
	n, err := pio.CopyN(plainWriter{sink}, plainReader{chunked([]byte("abc"), 3)}, 10)
	if !pio.IsUnexpectedEOF(err) {
		t.Fatalf("want unexpected eof, got %v", err)
	}
	if n != 3 || string(sink.data) != "abc" {
		t.Fatalf("n=%d data=%q", n, sink.data)
	}
}

func TestCopyNNonPositive(t *testing.T) {
	src := &scriptedReader{steps: []scriptStep{{b: []byte("untouched")}}}
	n, err := pio.CopyN(zeroWriter{}, src, 0)
	if n != 0 || err != nil {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if src.reads != 0 {
		t.Fatalf("source must not be read")
	}
}
