package binarycodec

import (
	"errors"
)

// ErrNilObject ...
var ErrNilObject = errors.New("object must not be nil")

var commonRequiredFields = []string{
	"TransactionType", "Account", "Sequence", "Fee", "SigningPubKey",
}

// requiredFields lists, per transaction type, the fields that must be
// present besides the common ones.
var requiredFields = map[string][]string{
	"Payment":              {"Destination", "Amount"},
	"EscrowCreate":         {"Destination", "Amount"},
	"EscrowFinish":         {"Owner", "OfferSequence"},
	"EscrowCancel":         {"Owner", "OfferSequence"},
	"OfferCreate":          {"TakerPays", "TakerGets"},
	"OfferCancel":          {"OfferSequence"},
	"TicketCreate":         {"TicketCount"},
	"SignerListSet":        {"SignerQuorum"},
	"PaymentChannelCreate": {"Destination", "Amount", "SettleDelay", "PublicKey"},
	"PaymentChannelFund":   {"Channel", "Amount"},
	"PaymentChannelClaim":  {"Channel"},
	"CheckCreate":          {"Destination", "SendMax"},
	"CheckCash":            {"CheckID"},
	"CheckCancel":          {"CheckID"},
	"AccountDelete":        {"Destination"},
	"NFTokenMint":          {"NFTokenTaxon"},
	"NFTokenBurn":          {"NFTokenID"},
	"NFTokenCreateOffer":   {"NFTokenID", "Amount"},
	"NFTokenCancelOffer":   {"NFTokenOffers"},
	"Clawback":             {"Amount"},
	"AMMCreate":            {"Amount", "Amount2", "TradingFee"},
	"AMMDeposit":           {"Asset", "Asset2"},
	"AMMWithdraw":          {"Asset", "Asset2"},
	"AMMVote":              {"Asset", "Asset2", "TradingFee"},
	"AMMBid":               {"Asset", "Asset2"},
	"AMMDelete":            {"Asset", "Asset2"},
	"EnableAmendment":      {"LedgerSequence", "Amendment"},
	"UNLModify":            {"LedgerSequence", "UNLModifyDisabling", "UNLModifyValidator"},
}

// Transaction is an object that passed the transaction format check,
// together with its identifying hash. A Transaction is never modified:
// every change produces a new one with a freshly computed id.
type Transaction struct {
	object *Object
	id     Hash256
}

// NewTransaction checks obj against the transaction formats and computes
// its id. obj is copied, later changes to it do not affect the result.
func NewTransaction(obj *Object) (*Transaction, error) {
	if obj == nil {
		return nil, ErrNilObject
	}
	if err := checkFormat(obj); err != nil {
		return nil, err
	}
	object := obj.Clone()
	return &Transaction{
		object: object,
		id:     object.Hash(HashPrefixTransactionID),
	}, nil
}

// DecodeTransaction decodes canonical bytes into a Transaction.
func DecodeTransaction(data []byte) (*Transaction, error) {
	obj, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return NewTransaction(obj)
}

func checkFormat(obj *Object) error {
	code, ok := obj.GetUInt16("TransactionType")
	if !ok {
		return &FieldError{Name: "TransactionType", Err: ErrMissingField}
	}
	name, known := transactionTypeNames[code]
	if !known {
		return &FieldError{Name: "TransactionType", Err: ErrInvalidFieldData}
	}
	for _, group := range [][]string{requiredFields[name], commonRequiredFields} {
		for _, field := range group {
			if !obj.Has(field) {
				return &FieldError{Name: field, Err: ErrMissingField}
			}
		}
	}
	return nil
}

// ID returns the transaction id.
func (t *Transaction) ID() Hash256 {
	return t.id
}

// Object returns a copy of the transaction fields.
func (t *Transaction) Object() *Object {
	return t.object.Clone()
}

// Encode returns the canonical bytes of the transaction.
func (t *Transaction) Encode() []byte {
	return t.object.Encode()
}

// SigningPreimage is the data a single signer signs.
func (t *Transaction) SigningPreimage() []byte {
	return t.object.SigningPreimage()
}

// JSON renders the transaction together with its id.
func (t *Transaction) JSON() map[string]interface{} {
	out := t.object.JSON()
	out[hashFieldName] = t.id.String()
	return out
}
