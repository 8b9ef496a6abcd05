package keys

import (
	"errors"
	"fmt"
	"strings"
)

// KeyType identifies the signature scheme of a key pair.
type KeyType int

const (
	KeyTypeSecp256k1 KeyType = iota
	KeyTypeEd25519
)

// DefaultKeyType is used whenever a key type is not explicitly requested.
const DefaultKeyType = KeyTypeSecp256k1

// ErrInvalidKeyType ...
var ErrInvalidKeyType = errors.New("invalid key type")

func (k KeyType) String() string {
	switch k {
	case KeyTypeSecp256k1:
		return "secp256k1"
	case KeyTypeEd25519:
		return "ed25519"
	default:
		return fmt.Sprintf("KeyType(%d)", int(k))
	}
}

// ParseKeyType maps the textual key type name onto a KeyType.
func ParseKeyType(s string) (KeyType, error) {
	switch strings.TrimSpace(s) {
	case "secp256k1":
		return KeyTypeSecp256k1, nil
	case "ed25519":
		return KeyTypeEd25519, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKeyType, s)
}

// PublicKeyType infers the key type of a serialized public key.
func PublicKeyType(pub []byte) (KeyType, bool) {
	if len(pub) != 33 {
		return 0, false
	}
	switch pub[0] {
	case 0xED:
		return KeyTypeEd25519, true
	case 0x02, 0x03:
		return KeyTypeSecp256k1, true
	}
	return 0, false
}
