package binarycodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectCanonicalOrder(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("SigningPubKey", []byte{0x01}))
	require.NoError(t, obj.Set("Fee", mustDrops(t, 10)))
	require.NoError(t, obj.Set("Sequence", uint32(1)))
	require.NoError(t, obj.Set("TransactionType", uint16(0)))
	require.NoError(t, obj.Set("Flags", uint32(0)))

	names := []string{}
	for _, f := range obj.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(
		t,
		[]string{"TransactionType", "Flags", "Sequence", "Fee", "SigningPubKey"},
		names,
	)

	require.NoError(t, obj.Set("Sequence", uint32(2)))
	assert.Equal(t, 5, obj.Len())
	v, ok := obj.Get("Sequence")
	require.True(t, ok)
	assert.Equal(t, uint32(2), v)

	obj.Delete("Flags")
	obj.Delete("Flags")
	assert.False(t, obj.Has("Flags"))
	assert.Equal(t, 4, obj.Len())
}

func TestFailingObjectSet(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		err   error
	}{
		{"NoSuchField", uint32(1), ErrUnknownField},
		{"Sequence", uint16(1), ErrWrongFieldType},
		{"Account", []byte{0x01}, ErrWrongFieldType},
		{"Memo", (*Object)(nil), ErrWrongFieldType},
		{"MemoData", make([]byte, 918745), ErrVLTooLong},
	}

	obj := NewObject()
	for _, tt := range tests {
		err := obj.Set(tt.name, tt.value)
		assert.ErrorIs(t, err, tt.err, tt.name)
	}
	assert.Equal(t, 0, obj.Len())

	err := obj.Set("Sequence", "1")
	assert.Equal(t, "field 'Sequence' has bad type", err.Error())
}

func TestObjectClone(t *testing.T) {
	memo := NewObject()
	require.NoError(t, memo.Set("MemoData", []byte{0x01, 0x02}))
	entry, err := NewArrayEntry("Memo", memo)
	require.NoError(t, err)

	obj := NewObject()
	require.NoError(t, obj.Set("Memos", Array{entry}))
	require.NoError(t, obj.Set("SigningPubKey", []byte{0x03}))

	clone := obj.Clone()
	memo.Delete("MemoData")
	pub, _ := obj.GetBlob("SigningPubKey")
	pub[0] = 0xFF

	memos, ok := clone.GetArray("Memos")
	require.True(t, ok)
	data, ok := memos[0].Object.GetBlob("MemoData")
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x02}, data)

	pub, _ = clone.GetBlob("SigningPubKey")
	assert.Equal(t, []byte{0x03}, pub)

	_, err = NewArrayEntry("Fee", memo)
	assert.ErrorIs(t, err, ErrWrongFieldType)
}

func mustDrops(t *testing.T, drops int64) Amount {
	a, err := NewDropsAmount(drops)
	require.NoError(t, err)
	return a
}
