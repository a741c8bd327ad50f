package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned when a zero-length key is used.
	ErrEmptyKey = errors.New("key must not be empty")

	// ErrMalformedCiphertext is returned when ciphertext text is not valid
	// padded base64url.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrInsufficientAlphabet is returned when more unique key characters are
	// requested than KeyAlphabet holds.
	ErrInsufficientAlphabet = errors.New("insufficient key alphabet")

	// ErrInvalidKeyLength is returned when a negative key length is requested.
	ErrInvalidKeyLength = errors.New("invalid key length")
)

// InsufficientAlphabetError reports a unique-sampling request that exceeds
// the alphabet.
type InsufficientAlphabetError struct {
	Requested int
	Available int
}

func (e *InsufficientAlphabetError) Error() string {
	return fmt.Sprintf("cannot sample %d unique characters from an alphabet of %d", e.Requested, e.Available)
}

// Is implements errors.Is for sentinel error matching.
func (e *InsufficientAlphabetError) Is(target error) bool {
	return target == ErrInsufficientAlphabet
}
