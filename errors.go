package strcrypto

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/strcrypto/strcrypto-go/internal/crypto"
	"github.com/strcrypto/strcrypto-go/internal/keyfile"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKey is returned when an empty key is supplied.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMalformedCiphertext is returned when ciphertext text is not valid
	// padded base64url.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrInvalidEncoding is returned when decrypted bytes are not valid UTF-8,
	// which usually means the key is wrong.
	ErrInvalidEncoding = errors.New("invalid text encoding")

	// ErrMissingField is returned when a key file lacks a "string : " or
	// "key : " line.
	ErrMissingField = errors.New("missing field")

	// ErrInsufficientAlphabet is returned when a unique random key longer than
	// the key alphabet is requested.
	ErrInsufficientAlphabet = errors.New("insufficient key alphabet")

	// ErrUnknownSaveMode is returned when a save mode string is not recognized.
	ErrUnknownSaveMode = errors.New("unknown save mode")

	// ErrUnsavableValue is returned when Save is given a ciphertext or key
	// that would not survive the line-based file format.
	ErrUnsavableValue = errors.New("unsavable value")
)

// StrCryptoError is implemented by all package errors.
type StrCryptoError interface {
	error
	StrCryptoError() // marker method
}

// InvalidKeyError reports an unusable key.
type InvalidKeyError struct {
	Reason string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key: %s", e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// StrCryptoError implements the StrCryptoError interface.
func (e *InvalidKeyError) StrCryptoError() {}

// MalformedCiphertextError reports ciphertext that could not be decoded.
type MalformedCiphertextError struct {
	Err error
}

func (e *MalformedCiphertextError) Error() string {
	return fmt.Sprintf("malformed ciphertext: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *MalformedCiphertextError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *MalformedCiphertextError) Is(target error) bool {
	return target == ErrMalformedCiphertext
}

// StrCryptoError implements the StrCryptoError interface.
func (e *MalformedCiphertextError) StrCryptoError() {}

// InvalidEncodingError reports decrypted bytes that are not valid UTF-8.
type InvalidEncodingError struct {
	Encoding string
	Offset   int // first invalid byte
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("decrypted bytes are not valid %s at offset %d (wrong key?)", e.Encoding, e.Offset)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidEncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

// StrCryptoError implements the StrCryptoError interface.
func (e *InvalidEncodingError) StrCryptoError() {}

// MissingFieldError reports a key file without the named field line.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: no %q line found", e.Field)
}

// Is implements errors.Is for sentinel error matching.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// StrCryptoError implements the StrCryptoError interface.
func (e *MissingFieldError) StrCryptoError() {}

// InsufficientAlphabetError reports a random key request the unique
// sampling policy cannot satisfy.
type InsufficientAlphabetError struct {
	Requested int
	Available int
}

func (e *InsufficientAlphabetError) Error() string {
	return fmt.Sprintf("cannot generate a %d-character key without repeats from %d symbols", e.Requested, e.Available)
}

// Is implements errors.Is for sentinel error matching.
func (e *InsufficientAlphabetError) Is(target error) bool {
	return target == ErrInsufficientAlphabet
}

// StrCryptoError implements the StrCryptoError interface.
func (e *InsufficientAlphabetError) StrCryptoError() {}

// UnsavableValueError reports a value Save refused to write because it
// contains a line break.
type UnsavableValueError struct {
	Field string
}

func (e *UnsavableValueError) Error() string {
	return fmt.Sprintf("cannot save %s: value contains a line break", e.Field)
}

// Is implements errors.Is for sentinel error matching.
func (e *UnsavableValueError) Is(target error) bool {
	return target == ErrUnsavableValue
}

// StrCryptoError implements the StrCryptoError interface.
func (e *UnsavableValueError) StrCryptoError() {}

// wrapError converts internal errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, crypto.ErrEmptyKey) {
		return &InvalidKeyError{Reason: "key must not be empty"}
	}

	if errors.Is(err, crypto.ErrMalformedCiphertext) {
		cause := err
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			cause = corrupt
		}
		return &MalformedCiphertextError{Err: cause}
	}

	var alphaErr *crypto.InsufficientAlphabetError
	if errors.As(err, &alphaErr) {
		return &InsufficientAlphabetError{
			Requested: alphaErr.Requested,
			Available: alphaErr.Available,
		}
	}

	var fieldErr *keyfile.MissingFieldError
	if errors.As(err, &fieldErr) {
		return &MissingFieldError{Field: string(fieldErr.Field)}
	}

	var breakErr *keyfile.LineBreakError
	if errors.As(err, &breakErr) {
		return &UnsavableValueError{Field: string(breakErr.Field)}
	}

	return err
}
