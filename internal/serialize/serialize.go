package serialize

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ximinez/ripple-offline-tool/pkg/binarycodec"
)

const signingPubKeyField = "SigningPubKey"

var (
	// ErrInvalidJSON ...
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrUnableToDeserialize ...
	ErrUnableToDeserialize = errors.New("unable to deserialize")
)

// Serialize maps JSON text onto a canonical object and returns its
// canonical bytes as uppercase hex.
func Serialize(text string) (string, error) {
	obj, err := objectFromJSON(text)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(obj.Encode())), nil
}

// Deserialize decodes hex encoded canonical bytes. Text that is empty or
// not hex at all yields no object and no error; bytes that are not a
// valid object yield the decoder error.
func Deserialize(text string) (*binarycodec.Object, error) {
	data, err := hex.DecodeString(strings.TrimSpace(text))
	if err != nil || len(data) == 0 {
		return nil, nil
	}
	return binarycodec.Decode(data)
}

// MakeObject accepts either hex encoded canonical bytes or JSON text.
func MakeObject(text string) (*binarycodec.Object, error) {
	text = strings.TrimSpace(text)

	obj, err := Deserialize(text)
	if err != nil {
		return nil, fmt.Errorf("%w (internal: %s)", ErrUnableToDeserialize, err)
	}
	if obj != nil {
		log.Debug("input is serialized data")
		return obj, nil
	}

	log.Debug("input is not serialized data, trying JSON")
	return objectFromJSON(text)
}

// MakeSignable is MakeObject followed by making sure the object has a
// SigningPubKey field, empty if it was missing.
func MakeSignable(text string) (*binarycodec.Object, error) {
	obj, err := MakeObject(text)
	if err != nil {
		return nil, err
	}
	if !obj.Has(signingPubKeyField) {
		if err := obj.Set(signingPubKeyField, []byte{}); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// MakeTransaction is MakeSignable followed by the transaction format
// check.
func MakeTransaction(text string) (*binarycodec.Transaction, error) {
	obj, err := MakeSignable(text)
	if err != nil {
		return nil, err
	}
	return binarycodec.NewTransaction(obj)
}

// RenderJSON pretty prints an object or a transaction.
func RenderJSON(v interface{ JSON() map[string]interface{} }) (string, error) {
	out, err := binarycodec.MarshalIndent(v.JSON())
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func objectFromJSON(text string) (*binarycodec.Object, error) {
	m, err := binarycodec.ParseJSON(text)
	if err != nil {
		return nil, ErrInvalidJSON
	}
	return binarycodec.ObjectFromJSON(m)
}
