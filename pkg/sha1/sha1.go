// Package sha1 implements the SHA-1 hash function over an incremental
// block accumulator. Unlike the standard library, Finalize is terminal:
// reading the digest wipes the chaining state so no recoverable hash state
// remains in memory, and the Digest must be Reset before reuse.
//
// SHA-1 is retained for compatibility with the vault's keyed digests; it
// is not collision resistant.
package sha1

import (
	"encoding/binary"
	"math/bits"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/mdblock"
)

const (
	// Size is the length of a SHA-1 digest in bytes.
	Size = 20

	// BlockSize is the SHA-1 block size in bytes.
	BlockSize = 64
)

// Initialization constants from FIPS 180-1.
const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
	init4 = 0xc3d2e1f0
)

// Additive round constants, one per group of twenty rounds.
const (
	k0 = 0x5a827999
	k1 = 0x6ed9eba1
	k2 = 0x8f1bbcdc
	k3 = 0xca62c1d6
)

// Digest is an in-progress SHA-1 computation. Not safe for concurrent use.
type Digest struct {
	h   [5]uint32
	acc *mdblock.Accumulator
}

// New returns a Digest ready to accept input.
func New() *Digest {
	d := &Digest{}
	d.acc = mdblock.New(BlockSize, d.compress)
	d.h = [5]uint32{init0, init1, init2, init3, init4}

	return d
}

// Write absorbs more input. It never fails; the error return satisfies
// io.Writer.
func (d *Digest) Write(p []byte) (int, error) {
	d.acc.Update(p)

	return len(p), nil
}

// Finalize applies the length padding and returns the 20-byte big-endian
// digest. The chaining state is zeroed afterwards; the Digest must be
// Reset before it can be written to again.
func (d *Digest) Finalize() [Size]byte {
	d.acc.Finish()

	var out [Size]byte
	for i, v := range d.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}

	d.h = [5]uint32{}

	return out
}

// Reset re-initializes the Digest for a new computation.
func (d *Digest) Reset() {
	d.h = [5]uint32{init0, init1, init2, init3, init4}
	d.acc.Reset()
}

// Sum computes the SHA-1 digest of data in one shot.
func Sum(data []byte) [Size]byte {
	d := New()
	d.Write(data)

	return d.Finalize()
}

// compress is the SHA-1 compression function for a single 64-byte block:
// the 16 message words are expanded to 80, eighty rounds run in four
// groups with distinct mixing functions and constants, and the working
// registers are added back into the chaining state.
func (dig *Digest) compress(block []byte) {
	var w [80]uint32

	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}

	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4]

	for i := 0; i < 80; i++ {
		var f, k uint32

		switch {
		case i < 20:
			f = (b & c) | (^b & d)
			k = k0
		case i < 40:
			f = b ^ c ^ d
			k = k1
		case i < 60:
			f = (b & c) | (b & d) | (c & d)
			k = k2
		default:
			f = b ^ c ^ d
			k = k3
		}

		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		e = d
		d = c
		c = bits.RotateLeft32(b, 30)
		b = a
		a = t
	}

	dig.h[0] += a
	dig.h[1] += b
	dig.h[2] += c
	dig.h[3] += d
	dig.h[4] += e
}
