package signing

import (
	"errors"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/ximinez/ripple-offline-tool/pkg/addresscodec"
	"github.com/ximinez/ripple-offline-tool/pkg/binarycodec"
	"github.com/ximinez/ripple-offline-tool/pkg/keys"
)

const (
	accountField       = "Account"
	signingPubKeyField = "SigningPubKey"
	txnSignatureField  = "TxnSignature"
	signersField       = "Signers"
	signerField        = "Signer"
	signatureField     = "Signature"
)

var (
	// ErrNilTransaction ...
	ErrNilTransaction = errors.New("internal error: no transaction to sign")
	// ErrNilObject ...
	ErrNilObject = errors.New("internal error: no object to sign")
)

// Signer is the key material a transaction is signed with.
type Signer interface {
	PublicKey() keys.PublicKey
	AccountID() addresscodec.AccountID
	Sign(msg []byte) ([]byte, error)
}

// SingleSign returns tx signed by signer alone. Any multi-signatures are
// dropped. tx itself is left untouched.
func SingleSign(signer Signer, tx *binarycodec.Transaction) (*binarycodec.Transaction, error) {
	if tx == nil {
		return nil, ErrNilTransaction
	}

	obj := tx.Object()
	if err := obj.Set(signingPubKeyField, []byte(signer.PublicKey())); err != nil {
		return nil, err
	}
	obj.Delete(signersField)

	sig, err := signer.Sign(obj.SigningPreimage())
	if err != nil {
		return nil, err
	}
	if err := obj.Set(txnSignatureField, sig); err != nil {
		return nil, err
	}
	return binarycodec.NewTransaction(obj)
}

// MultiSign returns tx with one more entry in its Signers array, the one
// of signer. The array is kept sorted by account. tx itself is left
// untouched.
func MultiSign(signer Signer, tx *binarycodec.Transaction) (*binarycodec.Transaction, error) {
	if tx == nil {
		return nil, ErrNilTransaction
	}

	obj := tx.Object()
	if err := obj.Set(signingPubKeyField, []byte{}); err != nil {
		return nil, err
	}
	obj.Delete(txnSignatureField)

	account := signer.AccountID()
	sig, err := signer.Sign(obj.MultiSigningPreimage(account))
	if err != nil {
		return nil, err
	}

	entry, err := newSignerEntry(account, signer.PublicKey(), sig)
	if err != nil {
		return nil, err
	}

	existing, _ := obj.GetArray(signersField)
	for _, e := range existing {
		if other, ok := e.Object.GetAccountID(accountField); ok && other == account {
			log.Warnf("account %s already signed this transaction, adding another signature", account)
			break
		}
	}
	signers := append(append(binarycodec.Array{}, existing...), entry)
	sort.SliceStable(signers, func(i, j int) bool {
		a, _ := signers[i].Object.GetAccountID(accountField)
		b, _ := signers[j].Object.GetAccountID(accountField)
		return a.Compare(b) < 0
	})
	if err := obj.Set(signersField, signers); err != nil {
		return nil, err
	}
	log.Debugf("added signer %s, %d signers in total", account, len(signers))

	// The id of the result must come from its bytes, so the transaction is
	// built again from its own encoding.
	reloaded, err := binarycodec.Decode(obj.Encode())
	if err != nil {
		return nil, err
	}
	return binarycodec.NewTransaction(reloaded)
}

// ArbitrarySign signs any object, not necessarily a transaction. The data
// signed is the optional prefix followed by the signing fields of obj and
// the signature is stored in the Signature field of the returned copy.
func ArbitrarySign(
	signer Signer, prefix *binarycodec.HashPrefix, obj *binarycodec.Object,
) (*binarycodec.Object, error) {
	if obj == nil {
		return nil, ErrNilObject
	}

	out := obj.Clone()
	var data []byte
	if prefix != nil {
		data = prefix.Bytes()
	}
	data = append(data, out.SigningData()...)

	sig, err := signer.Sign(data)
	if err != nil {
		return nil, err
	}
	if err := out.Set(signatureField, sig); err != nil {
		return nil, err
	}
	return out, nil
}

func newSignerEntry(
	account addresscodec.AccountID, pub keys.PublicKey, sig []byte,
) (binarycodec.ArrayEntry, error) {
	obj := binarycodec.NewObject()
	if err := obj.Set(accountField, account); err != nil {
		return binarycodec.ArrayEntry{}, err
	}
	if err := obj.Set(signingPubKeyField, []byte(pub)); err != nil {
		return binarycodec.ArrayEntry{}, err
	}
	if err := obj.Set(txnSignatureField, sig); err != nil {
		return binarycodec.ArrayEntry{}, err
	}
	return binarycodec.NewArrayEntry(signerField, obj)
}
