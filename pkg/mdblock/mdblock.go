// Package mdblock provides the block-buffering core of a Merkle–Damgård
// hash. An Accumulator accepts arbitrary-length appends, hands each
// complete block to an injected transform, and on finishing applies the
// 0x80 marker plus big-endian bit-length padding. The buffering logic is
// independent of the concrete compression function.
package mdblock

import "encoding/binary"

// lengthSize is the size of the big-endian bit-count trailer.
const lengthSize = 8

// Transform consumes one complete block. The slice is reused and only
// valid for the duration of the call.
type Transform func(block []byte)

// Accumulator buffers input into transform-sized blocks. Finish is a
// terminal transition; the accumulator must be Reset before further
// updates. Not safe for concurrent use.
type Accumulator struct {
	transform Transform
	buf       []byte
	n         int
	total     uint64
	finished  bool
}

// New returns an Accumulator for the given block size and per-block
// transform. blockSize must exceed lengthSize so the length trailer can
// ever fit.
func New(blockSize int, transform Transform) *Accumulator {
	if blockSize <= lengthSize {
		panic("mdblock: block size too small for length trailer")
	}

	return &Accumulator{
		transform: transform,
		buf:       make([]byte, blockSize),
	}
}

// BlockSize returns the transform block size in bytes.
func (a *Accumulator) BlockSize() int {
	return len(a.buf)
}

// Update appends p to the running input, invoking the transform exactly
// once per complete block and carrying over any remainder. Update panics
// if called after Finish without an intervening Reset.
func (a *Accumulator) Update(p []byte) {
	if a.finished {
		panic("mdblock: update after finish")
	}

	a.total += uint64(len(p))

	if a.n > 0 {
		n := copy(a.buf[a.n:], p)
		a.n += n
		p = p[n:]

		if a.n == len(a.buf) {
			a.transform(a.buf)
			a.n = 0
		}
	}

	for len(p) >= len(a.buf) {
		a.transform(p[:len(a.buf)])
		p = p[len(a.buf):]
	}

	if len(p) > 0 {
		a.n = copy(a.buf, p)
	}
}

// Finish closes the stream: a single 1 bit (byte 0x80) is appended,
// followed by zero padding and the total input length in bits as a 64-bit
// big-endian integer. When fewer than lengthSize bytes remain after the
// marker, the padding spills into an additional block. Every remaining
// block, padding blocks included, passes through the transform.
func (a *Accumulator) Finish() {
	if a.finished {
		return
	}

	a.finished = true
	bits := a.total << 3

	a.buf[a.n] = 0x80
	a.n++

	if a.n > len(a.buf)-lengthSize {
		for i := a.n; i < len(a.buf); i++ {
			a.buf[i] = 0
		}

		a.transform(a.buf)
		a.n = 0
	}

	for i := a.n; i < len(a.buf)-lengthSize; i++ {
		a.buf[i] = 0
	}

	binary.BigEndian.PutUint64(a.buf[len(a.buf)-lengthSize:], bits)
	a.transform(a.buf)

	for i := range a.buf {
		a.buf[i] = 0
	}

	a.n = 0
}

// Reset clears all buffered state so the accumulator can be reused with
// the same transform.
func (a *Accumulator) Reset() {
	for i := range a.buf {
		a.buf[i] = 0
	}

	a.n = 0
	a.total = 0
	a.finished = false
}
