package ctr_test

import (
	"bytes"
	"crypto/aes"
	"testing"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/blockcipher"
	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/ctr"
)

var testKey = []byte("0123456789abcdef")

func newCipher(t *testing.T, iv []byte) *ctr.Cipher {
	t.Helper()

	block, err := blockcipher.NewAES(testKey)
	if err != nil {
		t.Fatalf("creating block cipher: %v", err)
	}

	c, err := ctr.New(block, iv)
	if err != nil {
		t.Fatalf("creating ctr cipher: %v", err)
	}

	return c
}

// advanceRef is the reference register increment: byte 0 steps modulo 256,
// and the carry ripples only while the incremented byte lands on 0x80.
func advanceRef(register []byte) {
	for i := range register {
		register[i]++
		if register[i] != 0x80 {
			break
		}
	}
}

// keystreamRef computes the expected keystream block for a register value.
func keystreamRef(t *testing.T, register []byte) []byte {
	t.Helper()

	block, err := aes.NewCipher(testKey)
	if err != nil {
		t.Fatalf("creating reference cipher: %v", err)
	}

	out := make([]byte, aes.BlockSize)
	block.Encrypt(out, register)

	return out
}

func TestKeystreamSequence(t *testing.T) {
	for _, tt := range []struct {
		name string
		iv   []byte
	}{
		{"zero", make([]byte, 16)},
		{"carry-boundary", append([]byte{0x7f}, make([]byte, 15)...)},
		{"wrap-no-carry", append([]byte{0xff}, make([]byte, 15)...)},
		{"double-carry", append([]byte{0x7f, 0x7f}, make([]byte, 14)...)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := newCipher(t, tt.iv)
			defer c.Destroy()

			register := append([]byte{}, tt.iv...)

			for i := 0; i < 8; i++ {
				got := make([]byte, 16)
				if err := c.Crypt(got, make([]byte, 16)); err != nil {
					t.Fatalf("block %d: %v", i, err)
				}

				if want := keystreamRef(t, register); !bytes.Equal(got, want) {
					t.Fatalf("block %d: keystream %x, want %x", i, got, want)
				}

				advanceRef(register)
			}
		})
	}
}

// A short chunk consumes a whole keystream block; the discarded tail must
// never leak into the next call.
func TestShortChunkDiscardsKeystream(t *testing.T) {
	iv := make([]byte, 16)
	c := newCipher(t, iv)
	defer c.Destroy()

	short := make([]byte, 5)
	if err := c.Crypt(short, short); err != nil {
		t.Fatalf("short chunk: %v", err)
	}

	register := make([]byte, 16)
	advanceRef(register)

	got := make([]byte, 16)
	if err := c.Crypt(got, make([]byte, 16)); err != nil {
		t.Fatalf("second chunk: %v", err)
	}

	if want := keystreamRef(t, register); !bytes.Equal(got, want) {
		t.Errorf("second block keystream %x, want %x", got, want)
	}
}

func TestCryptInverts(t *testing.T) {
	iv := []byte("fixed-register-0")
	plaintext := []byte("attack at dawn!") // 15 bytes, short final block

	enc := newCipher(t, iv)
	defer enc.Destroy()

	ciphertext := make([]byte, len(plaintext))
	if err := enc.Crypt(ciphertext, plaintext); err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	if bytes.Equal(ciphertext, plaintext) {
		t.Fatal("ciphertext equals plaintext")
	}

	dec := newCipher(t, iv)
	defer dec.Destroy()

	recovered := make([]byte, len(ciphertext))
	if err := dec.Crypt(recovered, ciphertext); err != nil {
		t.Fatalf("decrypting: %v", err)
	}

	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("recovered %q, want %q", recovered, plaintext)
	}
}

func TestChunkTooLarge(t *testing.T) {
	c := newCipher(t, make([]byte, 16))
	defer c.Destroy()

	buf := make([]byte, 17)
	if err := c.Crypt(buf, buf); err == nil {
		t.Error("oversized chunk did not fail")
	}
}

func TestRegisterLengthMismatch(t *testing.T) {
	block, err := blockcipher.NewAES(testKey)
	if err != nil {
		t.Fatalf("creating block cipher: %v", err)
	}
	defer block.Destroy()

	if _, err := ctr.New(block, make([]byte, 8)); err == nil {
		t.Error("short register did not fail")
	}
}
