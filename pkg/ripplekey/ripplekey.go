package ripplekey

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/ximinez/ripple-offline-tool/pkg/addresscodec"
	"github.com/ximinez/ripple-offline-tool/pkg/keys"
)

var (
	// ErrKeyFileRead ...
	ErrKeyFileRead = errors.New("key file is not readable")
	// ErrKeyFileContent ...
	ErrKeyFileContent = errors.New("key file content is invalid")
	// ErrKeyFileExists ...
	ErrKeyFileExists = errors.New("key file already exists")
	// ErrKeyFileWrite ...
	ErrKeyFileWrite = errors.New("key file is not writable")
)

// RippleKey holds the key material of one account: the key type, the seed
// and the key pair derived from them. A RippleKey never changes after it
// has been created.
type RippleKey struct {
	keyType   keys.KeyType
	seed      keys.Seed
	publicKey keys.PublicKey
	secretKey keys.SecretKey
}

// NewRippleKeyOpts is the struct given to the NewRippleKey method. Both
// fields are optional: the key type defaults to secp256k1 and a random
// seed is drawn when Seed is nil.
type NewRippleKeyOpts struct {
	KeyType *string
	Seed    *string
}

func (o NewRippleKeyOpts) validate() error {
	if o.KeyType != nil {
		if _, err := keys.ParseKeyType(*o.KeyType); err != nil {
			return err
		}
	}
	return nil
}

func (o NewRippleKeyOpts) keyType() keys.KeyType {
	if o.KeyType == nil {
		return keys.DefaultKeyType
	}
	kt, _ := keys.ParseKeyType(*o.KeyType)
	return kt
}

// NewRippleKey creates the key material from the optional key type and
// seed text. Seed text may be a passphrase, a base58 family seed, 32 hex
// characters or RFC 1751 words.
func NewRippleKey(opts NewRippleKeyOpts) (*RippleKey, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var seed keys.Seed
	var err error
	if opts.Seed != nil {
		seed, err = keys.ParseGenericSeed(*opts.Seed)
	} else {
		seed, err = keys.RandomSeed()
	}
	if err != nil {
		return nil, err
	}

	return newRippleKey(opts.keyType(), seed)
}

func newRippleKey(keyType keys.KeyType, seed keys.Seed) (*RippleKey, error) {
	pub, secret, err := keys.DeriveKeyPair(keyType, seed)
	if err != nil {
		return nil, err
	}
	return &RippleKey{
		keyType:   keyType,
		seed:      seed,
		publicKey: pub,
		secretKey: secret,
	}, nil
}

func (k *RippleKey) KeyType() keys.KeyType {
	return k.keyType
}

func (k *RippleKey) Seed() keys.Seed {
	return k.seed
}

// PublicKey returns a copy of the serialized public key.
func (k *RippleKey) PublicKey() keys.PublicKey {
	return append(keys.PublicKey(nil), k.publicKey...)
}

func (k *RippleKey) AccountID() addresscodec.AccountID {
	return k.publicKey.AccountID()
}

// Sign signs msg with the secret key.
func (k *RippleKey) Sign(msg []byte) ([]byte, error) {
	log.Debugf("signing %d bytes with %s key of %s", len(msg), k.keyType, k.AccountID())
	return keys.Sign(k.publicKey, k.secretKey, msg)
}
