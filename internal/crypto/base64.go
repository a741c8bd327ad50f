package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// urlEncoding is base64url with '=' padding and canonical trailing bits.
var urlEncoding = base64.URLEncoding.Strict()

// ToBase64URL encodes bytes to URL-safe base64 with padding.
func ToBase64URL(data []byte) string {
	return urlEncoding.EncodeToString(data)
}

// FromBase64URL decodes padded URL-safe base64. Standard-alphabet input,
// missing padding, non-canonical trailing bits and embedded line breaks are
// rejected.
func FromBase64URL(s string) ([]byte, error) {
	// The decoder silently skips CR and LF.
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCiphertext, base64.CorruptInputError(i))
	}

	data, err := urlEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}
	return data, nil
}
