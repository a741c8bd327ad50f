package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// SamplingPolicy selects how random key characters are drawn.
type SamplingPolicy int

const (
	// SampleUnique draws without replacement, so keys never repeat a
	// character and are capped at KeyAlphabetSize characters.
	SampleUnique SamplingPolicy = iota
	// SampleWithReplacement draws every character independently and has no
	// length cap.
	SampleWithReplacement
)

func (p SamplingPolicy) String() string {
	switch p {
	case SampleUnique:
		return "unique"
	case SampleWithReplacement:
		return "replacement"
	default:
		return fmt.Sprintf("SamplingPolicy(%d)", int(p))
	}
}

// GenerateKey returns a random key of n characters from KeyAlphabet.
// A nil r uses crypto/rand.
func GenerateKey(n int, policy SamplingPolicy, r io.Reader) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidKeyLength, n)
	}
	if r == nil {
		r = rand.Reader
	}

	switch policy {
	case SampleUnique:
		return sampleUnique(n, r)
	case SampleWithReplacement:
		return sampleWithReplacement(n, r)
	default:
		return "", fmt.Errorf("unknown sampling policy %v", policy)
	}
}

// sampleUnique runs a partial Fisher-Yates shuffle over the alphabet.
func sampleUnique(n int, r io.Reader) (string, error) {
	if n > KeyAlphabetSize {
		return "", &InsufficientAlphabetError{Requested: n, Available: KeyAlphabetSize}
	}

	pool := []byte(KeyAlphabet)
	for i := 0; i < n; i++ {
		j, err := uniformIndex(r, len(pool)-i)
		if err != nil {
			return "", err
		}
		pool[i], pool[i+j] = pool[i+j], pool[i]
	}
	return string(pool[:n]), nil
}

func sampleWithReplacement(n int, r io.Reader) (string, error) {
	key := make([]byte, n)
	for i := range key {
		j, err := uniformIndex(r, KeyAlphabetSize)
		if err != nil {
			return "", err
		}
		key[i] = KeyAlphabet[j]
	}
	return string(key), nil
}

// uniformIndex returns a uniform value in [0, n) for 0 < n <= ByteCeiling.
// Bytes at or above the largest multiple of n are rejected.
func uniformIndex(r io.Reader, n int) (int, error) {
	limit := ByteCeiling - ByteCeiling%n
	var buf [1]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, fmt.Errorf("failed to read random source: %w", err)
		}
		if int(buf[0]) < limit {
			return int(buf[0]) % n, nil
		}
	}
}
