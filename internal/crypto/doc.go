// Package crypto implements the byte-level primitives of the strcrypto
// obfuscation scheme: a repeating-key modular-addition cipher, its padded
// base64url text form, and random key generation.
//
// # Cipher
//
// [AddKey] adds the key bytes, cycled across the input, to each input byte
// modulo [ByteCeiling]. [SubKey] subtracts them again. The key repeats over
// bytes, not characters, so a multi-byte UTF-8 character is transformed one
// byte at a time. The output always has the length of the input.
//
// This is obfuscation, not encryption in the cryptographic sense. There is
// no authentication and a known plaintext reveals the key.
//
// # Text Form
//
// [ToBase64URL] and [FromBase64URL] use the RFC 4648 §5 alphabet ('-' and
// '_' instead of '+' and '/') with '=' padding. Decoding is strict.
//
// # Key Generation
//
// [GenerateKey] draws characters from [KeyAlphabet]. With [SampleUnique] no
// character repeats and at most [KeyAlphabetSize] characters can be drawn;
// with [SampleWithReplacement] there is no cap. [NewSeededReader] provides a
// reproducible random source derived from a seed.
package crypto
