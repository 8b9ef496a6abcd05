package binarycodec

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ximinez/ripple-offline-tool/internal/testutil"
)

var knownItems = []testutil.KnownItem{
	testutil.SignedTx,
	testutil.UnsignedTx,
	testutil.Metadata,
}

func TestDecode(t *testing.T) {
	for _, tt := range knownItems {
		data, err := hex.DecodeString(tt.Hex)
		require.NoError(t, err)

		obj, err := Decode(data)
		require.NoError(t, err)

		rendered, err := json.Marshal(obj.JSON())
		require.NoError(t, err)
		assert.JSONEq(t, withoutHash(t, tt.JSON), string(rendered))
	}
}

func TestEncode(t *testing.T) {
	for _, tt := range knownItems {
		m, err := ParseJSON(tt.JSON)
		require.NoError(t, err)

		obj, err := ObjectFromJSON(m)
		require.NoError(t, err)
		assert.Equal(t, tt.Hex, strings.ToUpper(hex.EncodeToString(obj.Encode())))

		again, err := Decode(obj.Encode())
		require.NoError(t, err)
		assert.Equal(t, obj.Encode(), again.Encode())
	}
}

func TestFailingDecode(t *testing.T) {
	tests := []struct {
		hex string
		err string
	}{
		{
			hex: testutil.UnsignedTx.Hex[:192],
			err: "invalid SerialIter getBitString",
		},
		{
			hex: "1200",
			err: "invalid SerialIter get16",
		},
		{
			hex: "22800000",
			err: "invalid SerialIter get32",
		},
		{
			hex: "7302AB",
			err: "invalid SerialIter getRaw",
		},
		{
			hex: "E1",
			err: ErrUnexpectedEndMarker.Error(),
		},
		{
			hex: "1200001200",
			err: ErrDuplicateField.Error(),
		},
		{
			hex: "2F00000000",
			err: "unknown field: field_type=2, field_name=15",
		},
	}

	for _, tt := range tests {
		data, err := hex.DecodeString(tt.hex)
		require.NoError(t, err)

		_, err = Decode(data)
		require.Error(t, err)
		assert.Equal(t, tt.err, err.Error())
	}
}

func TestDecodeTransaction(t *testing.T) {
	data, _ := hex.DecodeString(testutil.SignedTx.Hex)

	tx, err := DecodeTransaction(data)
	require.NoError(t, err)
	assert.Equal(
		t,
		"F2D008D2AABBABD2A882F9049AA873210908EC3EA1EB0A2044A66093C7ACD2B1",
		tx.ID().String(),
	)
	assert.Equal(t, data, tx.Encode())

	rendered, err := json.Marshal(tx.JSON())
	require.NoError(t, err)
	assert.JSONEq(t, testutil.SignedTx.JSON, string(rendered))
}

func TestTransactionIsImmutable(t *testing.T) {
	data, _ := hex.DecodeString(testutil.SignedTx.Hex)
	obj, err := Decode(data)
	require.NoError(t, err)

	tx, err := NewTransaction(obj)
	require.NoError(t, err)
	id := tx.ID()

	obj.Delete("TxnSignature")
	copied := tx.Object()
	copied.Delete("Fee")

	assert.Equal(t, id, tx.ID())
	assert.Equal(t, data, tx.Encode())
}

func TestFailingNewTransaction(t *testing.T) {
	m, err := ParseJSON(testutil.UnsignedTx.JSON)
	require.NoError(t, err)
	delete(m, "Sequence")

	obj, err := ObjectFromJSON(m)
	require.NoError(t, err)

	_, err = NewTransaction(obj)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, "field 'Sequence' is required but missing", err.Error())

	m, _ = ParseJSON(testutil.UnsignedTx.JSON)
	obj, _ = ObjectFromJSON(m)
	_, err = NewTransaction(obj)
	assert.Equal(t, "field 'SigningPubKey' is required but missing", err.Error())

	_, err = NewTransaction(nil)
	assert.Equal(t, ErrNilObject, err)
}

func TestSigningData(t *testing.T) {
	data, _ := hex.DecodeString(testutil.SignedTx.Hex)
	obj, err := Decode(data)
	require.NoError(t, err)

	unsigned := obj.Clone()
	unsigned.Delete("TxnSignature")

	assert.Equal(t, unsigned.Encode(), obj.SigningData())
	assert.Equal(t, append(HashPrefixTxSign.Bytes(), unsigned.Encode()...), obj.SigningPreimage())

	account, _ := obj.GetAccountID("Account")
	preimage := obj.MultiSigningPreimage(account)
	assert.Equal(t, []byte("SMT\x00"), preimage[:4])
	assert.Equal(t, account[:], preimage[len(preimage)-20:])
}

func withoutHash(t *testing.T, text string) string {
	m := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(text), &m))
	delete(m, "hash")
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return string(b)
}
