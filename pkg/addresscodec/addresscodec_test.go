package addresscodec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBase58Token(t *testing.T) {
	tests := []struct {
		tokenType TokenType
		payload   string
		expected  string
	}{
		{TokenAccountID, "B5F762798A53D543A014CAF8B297CFF8F2F937E8", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"},
		{TokenAccountID, "0000000000000000000000000000000000000000", "rrrrrrrrrrrrrrrrrrrrrhoLvTp"},
		{TokenAccountID, "0000000000000000000000000000000000000001", "rrrrrrrrrrrrrrrrrrrrBZbvji"},
		{TokenFamilySeed, "DEDCE9CE67B451D852FD4E846FCDE31C", "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"},
		{
			TokenAccountPublic,
			"0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020",
			"aBQG8RQAzjs1eTKFEAQXr2gS4utcDiEC9wmi7pfUPTi27VCahwgw",
		},
		{
			TokenAccountSecret,
			"1ACAAEDECE405B2A958212629E16F2EB46B153EEE94CDD350FDEFF52795525B7",
			"p9JfM6HHi64m6mvB6v5k7G2b1cXzGmYiCNJf6GHPKvFTWdeRVjh",
		},
	}

	for _, tt := range tests {
		payload, _ := hex.DecodeString(tt.payload)
		encoded := EncodeBase58Token(tt.tokenType, payload)
		assert.Equal(t, tt.expected, encoded)

		decoded, err := DecodeBase58Token(tt.tokenType, encoded)
		require.NoError(t, err)
		assert.Equal(t, payload, decoded)
	}
}

func TestFailingDecodeBase58Token(t *testing.T) {
	tests := []struct {
		tokenType TokenType
		token     string
		err       error
	}{
		{TokenAccountID, "", ErrInvalidBase58},
		{TokenAccountID, "0OIl", ErrInvalidBase58},
		{TokenAccountID, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTj", ErrInvalidChecksum},
		{TokenFamilySeed, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", ErrInvalidTokenType},
	}

	for _, tt := range tests {
		_, err := DecodeBase58Token(tt.tokenType, tt.token)
		assert.Equal(t, tt.err, err)
	}
}

func TestParseAccountID(t *testing.T) {
	fromAddress, err := ParseAccountID("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	require.NoError(t, err)
	fromHex, err := ParseAccountID("B5F762798A53D543A014CAF8B297CFF8F2F937E8")
	require.NoError(t, err)

	assert.Equal(t, fromAddress, fromHex)
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", fromHex.String())

	_, err = ParseAccountID("snoPBrXtMeMyMHUVTgbuqAfg1SUTb")
	assert.Equal(t, ErrInvalidAccountID, err)
}

func TestAccountIDCompare(t *testing.T) {
	zero, _ := ParseAccountID("rrrrrrrrrrrrrrrrrrrrrhoLvTp")
	one, _ := ParseAccountID("rrrrrrrrrrrrrrrrrrrrBZbvji")

	assert.Equal(t, -1, zero.Compare(one))
	assert.Equal(t, 1, one.Compare(zero))
	assert.Equal(t, 0, one.Compare(one))
}

func TestIsBase58Token(t *testing.T) {
	assert.True(t, IsBase58Token("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", 20, TokenAccountID))
	assert.False(t, IsBase58Token("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", 33, TokenAccountPublic))
	assert.False(t, IsBase58Token("masterpassphrase", 20, TokenAccountID))
}
