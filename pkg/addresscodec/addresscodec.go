package addresscodec

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/mr-tron/base58"
)

// Alphabet is the base58 dictionary used by the XRP Ledger.
const Alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

const checksumLen = 4

// TokenType is the version byte prepended to every base58 encoded token.
type TokenType byte

const (
	TokenNodePublic    TokenType = 28
	TokenNodePrivate   TokenType = 32
	TokenAccountID     TokenType = 0
	TokenAccountPublic TokenType = 35
	TokenAccountSecret TokenType = 34
	TokenFamilySeed    TokenType = 33
)

var (
	// ErrInvalidBase58 ...
	ErrInvalidBase58 = errors.New("string is not valid base58")
	// ErrInvalidChecksum ...
	ErrInvalidChecksum = errors.New("base58 checksum mismatch")
	// ErrInvalidTokenType ...
	ErrInvalidTokenType = errors.New("unexpected base58 token type")
	// ErrInvalidAccountID ...
	ErrInvalidAccountID = errors.New("account id must be a classic address or 20 bytes in hex format")

	rippleAlphabet = base58.NewAlphabet(Alphabet)
)

// EncodeBase58Token prefixes payload with the token version byte, appends
// the double SHA-256 checksum and encodes the result.
func EncodeBase58Token(t TokenType, payload []byte) string {
	buf := make([]byte, 0, 1+len(payload)+checksumLen)
	buf = append(buf, byte(t))
	buf = append(buf, payload...)
	buf = append(buf, checksum(buf)...)
	return base58.EncodeAlphabet(buf, rippleAlphabet)
}

// DecodeBase58Token is the inverse of EncodeBase58Token. The token must
// carry the expected version byte.
func DecodeBase58Token(t TokenType, s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrInvalidBase58
	}
	buf, err := base58.DecodeAlphabet(s, rippleAlphabet)
	if err != nil {
		return nil, ErrInvalidBase58
	}
	if len(buf) < 1+checksumLen {
		return nil, ErrInvalidBase58
	}
	body, sum := buf[:len(buf)-checksumLen], buf[len(buf)-checksumLen:]
	if !bytes.Equal(checksum(body), sum) {
		return nil, ErrInvalidChecksum
	}
	if TokenType(body[0]) != t {
		return nil, ErrInvalidTokenType
	}
	return body[1:], nil
}

func checksum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:checksumLen]
}

// AccountID is the 160-bit identifier of an account.
type AccountID [20]byte

// String returns the classic address of the account.
func (a AccountID) String() string {
	return EncodeBase58Token(TokenAccountID, a[:])
}

// Compare orders account ids byte-wise.
func (a AccountID) Compare(b AccountID) int {
	return bytes.Compare(a[:], b[:])
}

// ParseAccountID accepts a classic address or the 40 hex characters of
// the raw identifier.
func ParseAccountID(s string) (AccountID, error) {
	var id AccountID
	if len(s) == 2*len(id) {
		if b, err := hex.DecodeString(s); err == nil {
			copy(id[:], b)
			return id, nil
		}
	}
	b, err := DecodeBase58Token(TokenAccountID, s)
	if err != nil || len(b) != len(id) {
		return id, ErrInvalidAccountID
	}
	copy(id[:], b)
	return id, nil
}

// IsBase58Token reports whether s decodes as a token of any of the given
// types with the expected payload size.
func IsBase58Token(s string, size int, types ...TokenType) bool {
	for _, t := range types {
		if b, err := DecodeBase58Token(t, strings.TrimSpace(s)); err == nil && len(b) == size {
			return true
		}
	}
	return false
}
