package crypto

// AddKey adds the repeating key to src byte by byte, modulo ByteCeiling.
// The result always has the length of src.
func AddKey(src, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	dst := make([]byte, len(src))
	for i, b := range src {
		dst[i] = byte((int(b) + int(key[i%len(key)])) % ByteCeiling)
	}
	return dst, nil
}

// SubKey reverses AddKey. The intermediate is biased by ByteCeiling so it
// never goes negative before the reduction.
func SubKey(src, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	dst := make([]byte, len(src))
	for i, b := range src {
		dst[i] = byte((ByteCeiling + int(b) - int(key[i%len(key)])) % ByteCeiling)
	}
	return dst, nil
}
