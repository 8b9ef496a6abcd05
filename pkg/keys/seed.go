package keys

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ximinez/ripple-offline-tool/pkg/addresscodec"
)

// SeedSize is the number of bytes of entropy in a seed.
const SeedSize = 16

var (
	// ErrInvalidSeed ...
	ErrInvalidSeed = errors.New("unable to parse seed")
	// ErrInvalidSeedSize ...
	ErrInvalidSeedSize = fmt.Errorf("seed must be %d bytes long", SeedSize)
)

// Seed is the secret from which a key pair is derived.
type Seed [SeedSize]byte

// NewSeedFromBytes copies b into a Seed.
func NewSeedFromBytes(b []byte) (Seed, error) {
	var s Seed
	if len(b) != SeedSize {
		return s, ErrInvalidSeedSize
	}
	copy(s[:], b)
	return s, nil
}

// RandomSeed draws a seed from the system CSPRNG.
func RandomSeed() (Seed, error) {
	var s Seed
	if _, err := rand.Read(s[:]); err != nil {
		return s, err
	}
	return s, nil
}

// SeedFromPassphrase hashes a passphrase into a seed.
func SeedFromPassphrase(passphrase string) Seed {
	var s Seed
	h := SHA512Half([]byte(passphrase))
	copy(s[:], h[:SeedSize])
	return s
}

// ParseGenericSeed accepts a seed in any of the supported text encodings:
// 32 hex characters, a base58 family seed, RFC 1751 words or a passphrase.
// Text that decodes as another kind of base58 token is refused so that an
// address or a public key is never silently used as a passphrase.
func ParseGenericSeed(text string) (Seed, error) {
	if len(text) == 0 {
		return Seed{}, fmt.Errorf("%w: %s", ErrInvalidSeed, text)
	}

	if len(text) == 2*SeedSize {
		if b, err := hex.DecodeString(text); err == nil {
			return NewSeedFromBytes(b)
		}
	}

	if b, err := addresscodec.DecodeBase58Token(addresscodec.TokenFamilySeed, text); err == nil {
		if s, err := NewSeedFromBytes(b); err == nil {
			return s, nil
		}
	}

	if key, err := DecodeRFC1751(text); err == nil {
		return seedFromRFC1751Key(key), nil
	}

	if addresscodec.IsBase58Token(text, 20, addresscodec.TokenAccountID) ||
		addresscodec.IsBase58Token(text, 33, addresscodec.TokenAccountPublic, addresscodec.TokenNodePublic) ||
		addresscodec.IsBase58Token(text, 32, addresscodec.TokenAccountSecret, addresscodec.TokenNodePrivate) {
		return Seed{}, fmt.Errorf("%w: %s", ErrInvalidSeed, text)
	}

	return SeedFromPassphrase(text), nil
}

// seedFromRFC1751Key reverses the byte order: the words encode the seed
// least significant byte first.
func seedFromRFC1751Key(key [16]byte) Seed {
	var s Seed
	for i := range key {
		s[i] = key[len(key)-1-i]
	}
	return s
}

// Base58 returns the family seed encoding of the seed.
func (s Seed) Base58() string {
	return addresscodec.EncodeBase58Token(addresscodec.TokenFamilySeed, s[:])
}

// Hex returns the uppercase hex encoding of the seed.
func (s Seed) Hex() string {
	return strings.ToUpper(hex.EncodeToString(s[:]))
}

// RFC1751 returns the 12 word RFC 1751 encoding of the seed.
func (s Seed) RFC1751() string {
	var key [16]byte
	for i := range s {
		key[i] = s[len(s)-1-i]
	}
	return EncodeRFC1751(key)
}
