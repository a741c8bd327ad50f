package strcrypto

import (
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/strcrypto/strcrypto-go/internal/crypto"
)

// Version is the library version.
const Version = "1.0.0"

const (
	// Encoding is the text encoding applied to plaintexts and keys.
	Encoding = crypto.Encoding

	// KeyAlphabet holds the 64 symbols random keys are drawn from.
	KeyAlphabet = crypto.KeyAlphabet
)

// Engine encrypts and decrypts strings. The transform itself is stateless;
// an Engine only carries the random key settings. Engines are safe for
// concurrent use.
type Engine struct {
	policy SamplingPolicy

	// mu serializes reads from a caller-supplied or seeded source, which
	// may not be safe for concurrent use.
	mu   sync.Mutex
	rand io.Reader
}

var defaultEngine = &Engine{policy: defaultSamplingPolicy}

// New creates an Engine.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{
		policy: defaultSamplingPolicy,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if _, err := toInternalPolicy(cfg.policy); err != nil {
		return nil, err
	}

	e := &Engine{
		policy: cfg.policy,
		rand:   cfg.rand,
	}

	if cfg.seed != nil {
		r, err := crypto.NewSeededReader(cfg.seed)
		if err != nil {
			return nil, fmt.Errorf("failed to seed key generator: %w", err)
		}
		e.rand = r
	}

	return e, nil
}

// Policy returns the engine's default sampling policy.
func (e *Engine) Policy() SamplingPolicy {
	return e.policy
}

// Encrypt obfuscates plaintext with key and returns the base64url text.
func (e *Engine) Encrypt(plaintext, key string) (string, error) {
	if key == "" {
		return "", &InvalidKeyError{Reason: "key must not be empty"}
	}

	enc, err := crypto.AddKey([]byte(plaintext), []byte(key))
	if err != nil {
		return "", wrapError(err)
	}
	return crypto.ToBase64URL(enc), nil
}

// EncryptRandom obfuscates plaintext with a freshly generated key and
// returns both the ciphertext and the key. The key has one character per
// plaintext byte, and at least one.
func (e *Engine) EncryptRandom(plaintext string, opts ...KeyOption) (ciphertext, key string, err error) {
	key, err = e.GenerateKey(max(len(plaintext), 1), opts...)
	if err != nil {
		return "", "", err
	}

	ciphertext, err = e.Encrypt(plaintext, key)
	if err != nil {
		return "", "", err
	}
	return ciphertext, key, nil
}

// GenerateKey returns a random key of n characters from KeyAlphabet.
func (e *Engine) GenerateKey(n int, opts ...KeyOption) (string, error) {
	cfg := &keyConfig{policy: e.policy}
	for _, opt := range opts {
		opt(cfg)
	}

	policy, err := toInternalPolicy(cfg.policy)
	if err != nil {
		return "", err
	}

	if cfg.rand != nil {
		key, err := crypto.GenerateKey(n, policy, cfg.rand)
		return key, wrapError(err)
	}

	if e.rand != nil {
		e.mu.Lock()
		defer e.mu.Unlock()
	}
	key, err := crypto.GenerateKey(n, policy, e.rand)
	return key, wrapError(err)
}

// Decrypt reverses Encrypt.
func (e *Engine) Decrypt(ciphertext, key string) (string, error) {
	if key == "" {
		return "", &InvalidKeyError{Reason: "key must not be empty"}
	}

	enc, err := crypto.FromBase64URL(ciphertext)
	if err != nil {
		return "", wrapError(err)
	}

	dec, err := crypto.SubKey(enc, []byte(key))
	if err != nil {
		return "", wrapError(err)
	}

	if !utf8.Valid(dec) {
		return "", &InvalidEncodingError{Encoding: Encoding, Offset: firstInvalidUTF8(dec)}
	}
	return string(dec), nil
}

// Encrypt obfuscates plaintext with key using the default engine.
func Encrypt(plaintext, key string) (string, error) {
	return defaultEngine.Encrypt(plaintext, key)
}

// EncryptRandom obfuscates plaintext with a random key using the default
// engine. See Engine.EncryptRandom.
func EncryptRandom(plaintext string, opts ...KeyOption) (ciphertext, key string, err error) {
	return defaultEngine.EncryptRandom(plaintext, opts...)
}

// Decrypt reverses Encrypt using the default engine.
func Decrypt(ciphertext, key string) (string, error) {
	return defaultEngine.Decrypt(ciphertext, key)
}

func toInternalPolicy(p SamplingPolicy) (crypto.SamplingPolicy, error) {
	switch p {
	case SampleUnique:
		return crypto.SampleUnique, nil
	case SampleWithReplacement:
		return crypto.SampleWithReplacement, nil
	default:
		return 0, fmt.Errorf("unknown sampling policy %q", p)
	}
}

func firstInvalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
