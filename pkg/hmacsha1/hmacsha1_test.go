package hmacsha1_test

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/hmacsha1"
)

// Vector is a single test case from the YAML golden file. Key and data are
// hex-encoded.
type Vector struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
	Data string `yaml:"data"`
	Tag  string `yaml:"tag"`
}

func loadVectors(t *testing.T) []Vector {
	t.Helper()

	data, err := os.ReadFile("testdata/vectors.yml")
	if err != nil {
		t.Fatalf("reading vectors: %v", err)
	}

	var vectors []Vector
	if err := yaml.Unmarshal(data, &vectors); err != nil {
		t.Fatalf("parsing vectors: %v", err)
	}

	return vectors
}

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decoding %q: %v", s, err)
	}

	return b
}

func TestSumVectors(t *testing.T) {
	for _, v := range loadVectors(t) {
		t.Run(v.Name, func(t *testing.T) {
			tag := hmacsha1.Sum(mustDecodeHex(t, v.Key), mustDecodeHex(t, v.Data))

			if got := hex.EncodeToString(tag[:]); got != v.Tag {
				t.Errorf("Sum() = %s, want %s", got, v.Tag)
			}
		})
	}
}

// TestStreamingMatchesOneShot checks the split streaming entry point
// against the one-shot entry point for every split of the message.
func TestStreamingMatchesOneShot(t *testing.T) {
	key := []byte("streaming-key")
	message := []byte("what do ya want for nothing?")
	want := hmacsha1.Sum(key, message)

	for split := 0; split <= len(message); split++ {
		m := hmacsha1.New(key)
		m.Write(message[:split])
		m.Write(message[split:])

		if got := m.Finalize(); got != want {
			t.Errorf("split %d: tag %x, want %x", split, got, want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	key := []byte("same key")
	message := []byte("same message")

	if hmacsha1.Sum(key, message) != hmacsha1.Sum(key, message) {
		t.Error("identical inputs produced different tags")
	}
}

func TestSensitivity(t *testing.T) {
	key := []byte("some key material")
	message := []byte("some message")
	base := hmacsha1.Sum(key, message)

	key2 := append([]byte{}, key...)
	key2[0] ^= 1

	if hmacsha1.Sum(key2, message) == base {
		t.Error("changing one key byte left the tag unchanged")
	}

	message2 := append([]byte{}, message...)
	message2[len(message2)-1] ^= 1

	if hmacsha1.Sum(key, message2) == base {
		t.Error("changing one message byte left the tag unchanged")
	}
}

// Key bytes beyond the pad size are ignored; two keys sharing their first
// 64 bytes must produce the same tag.
func TestLongKeyTruncation(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = byte(i)
	}

	if hmacsha1.Sum(long, []byte("msg")) != hmacsha1.Sum(long[:64], []byte("msg")) {
		t.Error("key bytes beyond the pad size changed the tag")
	}
}
