package binarycodec

import (
	"encoding/binary"

	"github.com/ximinez/ripple-offline-tool/pkg/addresscodec"
	"github.com/ximinez/ripple-offline-tool/pkg/keys"
)

// HashPrefix is the four byte domain separator prepended to data before
// it is hashed or signed.
type HashPrefix uint32

const (
	// HashPrefixTransactionID is 'TXN\0'.
	HashPrefixTransactionID HashPrefix = 0x54584E00
	// HashPrefixTxSign is 'STX\0'.
	HashPrefixTxSign HashPrefix = 0x53545800
	// HashPrefixTxMultiSign is 'SMT\0'.
	HashPrefixTxMultiSign HashPrefix = 0x534D5400
	// HashPrefixManifest is 'MAN\0'.
	HashPrefixManifest HashPrefix = 0x4D414E00
	// HashPrefixValidation is 'VAL\0'.
	HashPrefixValidation HashPrefix = 0x56414C00
	// HashPrefixPaymentChannelClaim is 'CLM\0'.
	HashPrefixPaymentChannelClaim HashPrefix = 0x434C4D00
)

func (p HashPrefix) Bytes() []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(p))
	return b[:]
}

// Hash returns the SHA-512 half of the prefix followed by the full
// canonical bytes of the object.
func (o *Object) Hash(prefix HashPrefix) Hash256 {
	return Hash256(keys.SHA512Half(prefix.Bytes(), o.Encode()))
}

// SigningPreimage is the data a single signer signs.
func (o *Object) SigningPreimage() []byte {
	return append(HashPrefixTxSign.Bytes(), o.SigningData()...)
}

// MultiSigningPreimage is the data a multi-signer signs: the signing
// fields followed by the signer's account id.
func (o *Object) MultiSigningPreimage(signer addresscodec.AccountID) []byte {
	data := append(HashPrefixTxMultiSign.Bytes(), o.SigningData()...)
	return append(data, signer[:]...)
}
