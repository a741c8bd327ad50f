package strcrypto

import (
	"fmt"
	"io"
	"strings"
)

// SamplingPolicy specifies how random keys are drawn from the key alphabet.
type SamplingPolicy string

const (
	// SampleUnique draws without replacement. Keys never repeat a character,
	// which caps keyless plaintexts at 64 bytes.
	SampleUnique SamplingPolicy = "unique"
	// SampleWithReplacement draws each character independently, so there is
	// no length cap.
	SampleWithReplacement SamplingPolicy = "replacement"
)

const defaultSamplingPolicy = SampleUnique

// ParseSamplingPolicy converts a policy name into a SamplingPolicy.
func ParseSamplingPolicy(s string) (SamplingPolicy, error) {
	switch p := SamplingPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case SampleUnique, SampleWithReplacement:
		return p, nil
	case "":
		return defaultSamplingPolicy, nil
	default:
		return "", fmt.Errorf("unknown sampling policy %q", s)
	}
}

// engineConfig holds configuration for an Engine.
type engineConfig struct {
	policy SamplingPolicy
	rand   io.Reader
	seed   []byte
}

// keyConfig holds configuration for a single random key draw.
type keyConfig struct {
	policy SamplingPolicy
	rand   io.Reader
}

// Option configures an Engine.
type Option func(*engineConfig)

// KeyOption configures random key generation for one call.
type KeyOption func(*keyConfig)

// WithSamplingPolicy sets the default policy for random keys.
// Default: SampleUnique
func WithSamplingPolicy(policy SamplingPolicy) Option {
	return func(c *engineConfig) {
		c.policy = policy
	}
}

// WithRandReader sets the random source for key generation.
// Default: crypto/rand
func WithRandReader(r io.Reader) Option {
	return func(c *engineConfig) {
		c.rand = r
	}
}

// WithSeed makes key generation reproducible: engines built with the same
// seed generate the same sequence of keys. Overrides WithRandReader.
func WithSeed(seed []byte) Option {
	return func(c *engineConfig) {
		c.seed = seed
	}
}

// WithKeyPolicy overrides the sampling policy for one call.
func WithKeyPolicy(policy SamplingPolicy) KeyOption {
	return func(c *keyConfig) {
		c.policy = policy
	}
}

// WithKeySource overrides the random source for one call.
func WithKeySource(r io.Reader) KeyOption {
	return func(c *keyConfig) {
		c.rand = r
	}
}
