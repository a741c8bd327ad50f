// Package strcrypto obfuscates short strings with a repeating-key byte
// cipher and stores the result as URL-safe base64 text.
//
// Each plaintext byte (UTF-8) is added, modulo 256, to the key byte at the
// same position, with the key repeated as often as needed. The bytes are
// then encoded with the base64url alphabet and '=' padding. Decryption
// subtracts the key again and requires the result to be valid UTF-8.
//
// This is not a secure cipher. It offers no authentication and a single
// known plaintext reveals the key.
//
// Basic usage:
//
//	ciphertext, err := strcrypto.Encrypt("abcde", "edcba")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ciphertext) // xsbGxsY=
//
//	plaintext, err := strcrypto.Decrypt(ciphertext, "edcba")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Without a key, EncryptRandom draws one from [KeyAlphabet]:
//
//	ciphertext, key, err := strcrypto.EncryptRandom("hello")
//
// By default random keys never repeat a character, which limits keyless
// plaintexts to 64 bytes ([ErrInsufficientAlphabet] beyond that). Use
// [WithSamplingPolicy] or [WithKeyPolicy] with [SampleWithReplacement] to
// lift the limit.
//
// Save and Load keep a ciphertext and its key in text files of the form
//
//	string : xsbGxsY=
//	key : edcba
package strcrypto
