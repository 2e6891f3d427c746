// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

// TeeReader returns a Reader that writes to w what it reads from r.
//
// The side write goes through WriteAll, so KindInterrupted on the side
// sink never splits delivery and a short side write continues from the
// remainder. If the side write fails, the bytes already placed into p are
// handed out cleanly and the error is deferred to the next Read, keeping
// the "error means nothing transferred" contract intact for readers
// layered above the tee. The deferred error may therefore surface one
// read later than the failing sink call.
func TeeReader(r Reader, w Writer) Reader {
	return &teeReader{r: r, w: w}
}

type teeReader struct {
	r       Reader
	w       Writer
	pending error
}

func (t *teeReader) Read(p []byte) (n int, err error) {
	if t.pending != nil {
		err = t.pending
		t.pending = nil
		return 0, err
	}
	n, err = t.r.Read(p)
	if n > 0 {
		if werr := WriteAll(t.w, p[:n]); werr != nil {
			t.pending = werr
			return n, nil
		}
	}
	return n, err
}
