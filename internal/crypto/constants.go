package crypto

const (
	// Encoding is the text encoding used for every string/byte conversion.
	// Encrypt and decrypt must agree on it to remain inverses.
	Encoding = "utf-8"

	// ByteCeiling is the exclusive upper bound of a byte value and the
	// modulus of the cipher arithmetic.
	ByteCeiling = 256

	// KeyAlphabet is the alphabet random keys are drawn from: lowercase,
	// uppercase, digits, '-' and '_', in that order.
	KeyAlphabet = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"-_"

	// KeyAlphabetSize is the number of symbols in KeyAlphabet.
	KeyAlphabetSize = len(KeyAlphabet)

	// SeedContext is the HKDF info string used when expanding a key
	// generation seed.
	SeedContext = "strcrypto:keygen:v1"
)
