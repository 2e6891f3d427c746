// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/pio"
)

func TestWriteAll(t *testing.T) {
	t.Run("ShortWritesLoop", func(t *testing.T) {
		sink := &sliceSink{limit: 3}
		if err := pio.WriteAll(sink, []byte("abcdefgh")); err != nil {
			t.Fatalf("unexpected err %v", err)
		}
		if string(sink.data) != "abcdefgh" {
			t.Fatalf("data=%q", sink.data)
		}
		if sink.calls != 3 {
			t.Fatalf("want 3 short writes, got %d", sink.calls)
		}
	})

	t.Run("ZeroWriteEscalates", func(t *testing.T) {
		err := pio.WriteAll(zeroWriter{}, []byte("data"))
		if !pio.IsWriteZero(err) {
			t.Fatalf("want write zero, got %v", err)
		}
	})

	t.Run("InterruptedRetried", func(t *testing.T) {
		sink := &sliceSink{script: []error{interrupted(), nil, interrupted(), nil}, limit: 2}
		if err := pio.WriteAll(sink, []byte("wxyz")); err != nil {
			t.Fatalf("unexpected err %v", err)
		}
		if string(sink.data) != "wxyz" {
			t.Fatalf("data=%q", sink.data)
		}
	})

	t.Run("ErrorSurfacesUnmodified", func(t *testing.T) {
		boom := pio.NewError(pio.KindBrokenPipe, "gone")
		sink := &sliceSink{script: []error{nil, boom}, limit: 2}
		err := pio.WriteAll(sink, []byte("abcd"))
		if !errors.Is(err, boom) {
			t.Fatalf("want endpoint error, got %v", err)
		}
		if string(sink.data) != "ab" {
			t.Fatalf("data=%q", sink.data)
		}
	})

	t.Run("EmptyInputNeverWrites", func(t *testing.T) {
		sink := &sliceSink{}
		if err := pio.WriteAll(sink, nil); err != nil {
			t.Fatalf("unexpected err %v", err)
		}
		if sink.calls != 0 {
			t.Fatalf("primitive called %d times for empty input", sink.calls)
		}
	})
}

func TestWriteString(t *testing.T) {
	sink := &sliceSink{limit: 1}
	if err := pio.WriteString(sink, "one"); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if string(sink.data) != "one" {
		t.Fatalf("data=%q", sink.data)
	}
}
