package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"github.com/cloudflare/circl/xof"
	"golang.org/x/crypto/hkdf"
)

// seedKeySize is the length of the HKDF output that keys the XOF.
const seedKeySize = 64

// NewSeededReader returns a deterministic byte stream derived from seed.
// The same seed always yields the same stream, so keys generated from it
// are reproducible.
//
// HKDF output is capped at 255 hash blocks, which rejection sampling could
// in principle exhaust, so HKDF only normalizes the seed and SHAKE-256
// supplies the unbounded stream.
func NewSeededReader(seed []byte) (io.Reader, error) {
	material, err := expandSeed(seed, seedKeySize)
	if err != nil {
		return nil, err
	}

	stream := xof.SHAKE256.New()
	if _, err := stream.Write(material); err != nil {
		return nil, err
	}
	return stream, nil
}

// expandSeed stretches an arbitrary seed to length bytes with HKDF-SHA-512,
// bound to SeedContext. The salt is all zeros.
func expandSeed(seed []byte, length int) ([]byte, error) {
	salt := make([]byte, sha512.Size)
	reader := hkdf.New(sha512.New, seed, salt, []byte(SeedContext))

	out := make([]byte, length)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, fmt.Errorf("failed to expand seed: %w", err)
	}
	return out, nil
}
