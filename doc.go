// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

// Package pio is a portable, allocation-aware byte-stream I/O core: the
// Reader/Writer/Seeker contracts, a partially-initialized buffer view
// (ReadBuf), buffered adapters (BufReader, BufWriter), and an in-memory
// endpoint (Cursor). It is designed for environments without full runtime
// support, so the contracts carry their own error taxonomy instead of
// leaning on platform error values.
//
// Result semantics (deliberately not identical to the standard io package):
//   - Read returning (0, nil) with a non-empty buffer means end-of-stream.
//     It never means "try again".
//   - An error return from a primitive means no bytes were transferred by
//     that call.
//   - KindInterrupted is the one transient kind: derived operations
//     (ReadExact, WriteAll, FillBuf, Flush, Copy) retry the same primitive
//     in place, without advancing any cursor and without bound.
//   - KindUnexpectedEOF and KindWriteZero are synthesized by derived
//     operations when an endpoint's literal return value falls short of
//     what the operation promised; endpoints never produce them directly.
//
// Every concrete endpoint implements only the primitive per contract
// (Read, Write+Flush, Seek); the derived operations are free functions
// shared by all implementers. Standard-library endpoints participate
// through WrapReader/WrapWriter, which normalize io.EOF to the (0, nil)
// convention.
//
// This layer is strictly synchronous. Wrappers own their buffers
// exclusively and perform no locking; concurrent use of a single wrapper
// is undefined behavior by contract.
