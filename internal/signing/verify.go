package signing

import (
	"errors"
	"fmt"

	"github.com/ximinez/ripple-offline-tool/pkg/binarycodec"
	"github.com/ximinez/ripple-offline-tool/pkg/keys"
)

var (
	// ErrInvalidSignature ...
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrUnsortedSigners ...
	ErrUnsortedSigners = errors.New("signers are not sorted by account")
	// ErrNotSigned ...
	ErrNotSigned = errors.New("transaction is not signed")
)

// Verify checks the signatures of tx: the single signature when
// SigningPubKey is set, every Signers entry otherwise.
func Verify(tx *binarycodec.Transaction) error {
	if tx == nil {
		return ErrNilTransaction
	}
	obj := tx.Object()

	pub, _ := obj.GetBlob(signingPubKeyField)
	if len(pub) > 0 {
		sig, _ := obj.GetBlob(txnSignatureField)
		if !keys.Verify(pub, obj.SigningPreimage(), sig) {
			return ErrInvalidSignature
		}
		return nil
	}

	signers, ok := obj.GetArray(signersField)
	if !ok || len(signers) == 0 {
		return ErrNotSigned
	}
	for i, e := range signers {
		account, _ := e.Object.GetAccountID(accountField)
		if i > 0 {
			prev, _ := signers[i-1].Object.GetAccountID(accountField)
			if prev.Compare(account) > 0 {
				return ErrUnsortedSigners
			}
		}
		signerPub, _ := e.Object.GetBlob(signingPubKeyField)
		sig, _ := e.Object.GetBlob(txnSignatureField)
		if !keys.Verify(signerPub, obj.MultiSigningPreimage(account), sig) {
			return fmt.Errorf("%w: signer %s", ErrInvalidSignature, account)
		}
	}
	return nil
}
