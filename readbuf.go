// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

import "fmt"

// ReadBuf is a fixed-capacity view over caller-supplied storage that tracks
// two counters: filled, the logically valid prefix currently holding
// meaningful data, and initialized, the prefix that has ever held a defined
// value. The invariant filled <= initialized <= capacity holds after every
// operation.
//
// The two counters decouple "how much real data is here" from "how much of
// this memory has ever been touched": Clear resets filled to 0 but retains
// the initialized high-water mark, so refilling reused storage never pays
// for redundant zeroing. The Go runtime zeroes allocations, which makes the
// safety half of the invariant trivially satisfied; the counter model is
// kept because the reuse semantics are what readers build on.
//
// A ReadBuf exclusively owns its counters but borrows the storage; the
// caller must not mutate the storage behind the view's back.
type ReadBuf struct {
	storage     []byte
	filled      int
	initialized int
}

// NewReadBuf returns a view over storage. The view's capacity is
// len(storage); both counters start at zero even though Go guarantees the
// memory is defined, mirroring a freshly obtained uninitialized region.
func NewReadBuf(storage []byte) *ReadBuf {
	return &ReadBuf{storage: storage}
}

// Capacity returns the total size of the underlying storage.
func (b *ReadBuf) Capacity() int { return len(b.storage) }

// FilledLen returns the length of the meaningful prefix.
func (b *ReadBuf) FilledLen() int { return b.filled }

// InitializedLen returns the high-water mark of storage that has ever held
// a defined value.
func (b *ReadBuf) InitializedLen() int { return b.initialized }

// Remaining returns how many more bytes fit before the view is full.
func (b *ReadBuf) Remaining() int { return len(b.storage) - b.filled }

// Filled returns the meaningful prefix.
func (b *ReadBuf) Filled() []byte { return b.storage[:b.filled] }

// Unfilled returns the region after the filled prefix, up to capacity.
// It is the destination a trusted primitive may populate; the portion up
// to the initialized mark may be reused without re-zeroing.
func (b *ReadBuf) Unfilled() []byte { return b.storage[b.filled:] }

// AssumeFilled records that n bytes were just written at the filled mark
// by a trusted primitive: filled advances by n and initialized rises to at
// least the new filled mark. It is the only operation that advances
// filled.
//
// The precondition filled+n <= capacity is a programming contract;
// violating it panics.
func (b *ReadBuf) AssumeFilled(n int) {
	if n < 0 || b.filled+n > len(b.storage) {
		panic(fmt.Sprintf("pio: ReadBuf.AssumeFilled(%d) exceeds capacity %d at filled %d",
			n, len(b.storage), b.filled))
	}
	b.filled += n
	if b.initialized < b.filled {
		b.initialized = b.filled
	}
	b.check()
}

// AssumeInit records that the first n bytes of storage are known to hold
// defined values, raising the initialized mark to at least n. It never
// lowers the mark. Callers use it to carry the high-water mark over to a
// new view of the same storage.
func (b *ReadBuf) AssumeInit(n int) {
	if n < 0 || n > len(b.storage) {
		panic(fmt.Sprintf("pio: ReadBuf.AssumeInit(%d) exceeds capacity %d", n, len(b.storage)))
	}
	if b.initialized < n {
		b.initialized = n
	}
	b.check()
}

// Clear resets filled to 0. The initialized mark is retained so a
// subsequent fill into the same storage need not touch the part already
// known-initialized.
func (b *ReadBuf) Clear() {
	b.filled = 0
	b.check()
}

func (b *ReadBuf) check() {
	if b.filled > b.initialized || b.initialized > len(b.storage) {
		panic(fmt.Sprintf("pio: ReadBuf invariant violated: filled=%d initialized=%d capacity=%d",
			b.filled, b.initialized, len(b.storage)))
	}
}
