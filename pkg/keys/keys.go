package keys

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ximinez/ripple-offline-tool/pkg/addresscodec"
)

const ed25519Prefix = 0xED

var (
	// ErrInvalidPublicKey ...
	ErrInvalidPublicKey = errors.New("public key must be 33 bytes of a supported key type")
	// ErrInvalidSecretKey ...
	ErrInvalidSecretKey = errors.New("secret key must be 32 bytes long")
	// ErrKeyTypeMismatch ...
	ErrKeyTypeMismatch = errors.New("public and secret keys belong to different key types")
	// ErrDerivationExhausted ...
	ErrDerivationExhausted = errors.New("unable to derive a valid secp256k1 scalar from seed")
)

// PublicKey is the 33 byte serialized public key. Ed25519 keys carry a
// leading 0xED marker, secp256k1 keys are compressed points.
type PublicKey []byte

// Type returns the key type the public key belongs to.
func (p PublicKey) Type() (KeyType, bool) {
	return PublicKeyType(p)
}

// Hex returns the uppercase hex encoding of the public key.
func (p PublicKey) Hex() string {
	return strings.ToUpper(hex.EncodeToString(p))
}

// Base58 returns the account public token encoding of the public key.
func (p PublicKey) Base58() string {
	return addresscodec.EncodeBase58Token(addresscodec.TokenAccountPublic, p)
}

// AccountID returns the account identifier of the public key.
func (p PublicKey) AccountID() addresscodec.AccountID {
	return CalcAccountID(p)
}

// SecretKey is the 32 byte secret scalar (secp256k1) or private seed
// (ed25519) of a key pair.
type SecretKey [32]byte

// Hex returns the uppercase hex encoding of the secret key.
func (s SecretKey) Hex() string {
	return strings.ToUpper(hex.EncodeToString(s[:]))
}

// Base58 returns the account secret token encoding of the secret key.
func (s SecretKey) Base58() string {
	return addresscodec.EncodeBase58Token(addresscodec.TokenAccountSecret, s[:])
}

// DeriveKeyPair deterministically derives the key pair of the given type
// from a seed.
func DeriveKeyPair(keyType KeyType, seed Seed) (PublicKey, SecretKey, error) {
	switch keyType {
	case KeyTypeSecp256k1:
		return deriveSecp256k1(seed)
	case KeyTypeEd25519:
		return deriveEd25519(seed)
	}
	return nil, SecretKey{}, ErrInvalidKeyType
}

func deriveEd25519(seed Seed) (PublicKey, SecretKey, error) {
	secret := SecretKey(SHA512Half(seed[:]))
	priv := ed25519.NewKeyFromSeed(secret[:])
	pub := append([]byte{ed25519Prefix}, priv.Public().(ed25519.PublicKey)...)
	return pub, secret, nil
}

// deriveSecp256k1 follows the XRP Ledger family generator scheme: a root
// scalar is derived from the seed, its public point is the generator,
// and the account key adds a scalar derived from the generator.
func deriveSecp256k1(seed Seed) (PublicKey, SecretKey, error) {
	root, err := deriveScalar(seed[:], nil)
	if err != nil {
		return nil, SecretKey{}, err
	}
	rootBytes := root.Bytes()
	_, rootPub := btcec.PrivKeyFromBytes(rootBytes[:])
	generator := rootPub.SerializeCompressed()

	additional, err := deriveScalar(generator, []byte{0, 0, 0, 0})
	if err != nil {
		return nil, SecretKey{}, err
	}

	secret := new(secp256k1.ModNScalar).Set(root)
	secret.Add(additional)
	secretBytes := secret.Bytes()

	_, pub := btcec.PrivKeyFromBytes(secretBytes[:])
	return pub.SerializeCompressed(), SecretKey(secretBytes), nil
}

func deriveScalar(data, extra []byte) (*secp256k1.ModNScalar, error) {
	buf := make([]byte, 4)
	for seq := uint32(0); seq < 0xffffffff; seq++ {
		binary.BigEndian.PutUint32(buf, seq)
		digest := SHA512Half(data, extra, buf)

		k := new(secp256k1.ModNScalar)
		if overflow := k.SetByteSlice(digest[:]); !overflow && !k.IsZero() {
			return k, nil
		}
	}
	return nil, ErrDerivationExhausted
}

// Sign signs msg with the secret key. Secp256k1 signatures are canonical
// DER over the SHA-512 half of msg, ed25519 signatures cover msg itself.
func Sign(pub PublicKey, secret SecretKey, msg []byte) ([]byte, error) {
	keyType, ok := pub.Type()
	if !ok {
		return nil, ErrInvalidPublicKey
	}
	switch keyType {
	case KeyTypeSecp256k1:
		priv, derived := btcec.PrivKeyFromBytes(secret[:])
		if !bytes.Equal(derived.SerializeCompressed(), pub) {
			return nil, ErrKeyTypeMismatch
		}
		digest := SHA512Half(msg)
		return ecdsa.Sign(priv, digest[:]).Serialize(), nil
	default:
		priv := ed25519.NewKeyFromSeed(secret[:])
		if !bytes.Equal(priv.Public().(ed25519.PublicKey), pub[1:]) {
			return nil, ErrKeyTypeMismatch
		}
		return ed25519.Sign(priv, msg), nil
	}
}

// Verify checks sig against msg and the public key. Secp256k1 signatures
// with a high S value are rejected.
func Verify(pub PublicKey, msg, sig []byte) bool {
	keyType, ok := pub.Type()
	if !ok {
		return false
	}
	switch keyType {
	case KeyTypeSecp256k1:
		key, err := btcec.ParsePubKey(pub)
		if err != nil {
			return false
		}
		signature, err := ecdsa.ParseDERSignature(sig)
		if err != nil {
			return false
		}
		if !bytes.Equal(signature.Serialize(), sig) {
			return false
		}
		digest := SHA512Half(msg)
		return signature.Verify(digest[:], key)
	default:
		return ed25519.Verify(ed25519.PublicKey(pub[1:]), msg, sig)
	}
}
