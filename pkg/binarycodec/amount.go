package binarycodec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ximinez/ripple-offline-tool/pkg/addresscodec"
)

const (
	minMantissa  = uint64(1000000000000000)
	maxMantissa  = uint64(9999999999999999)
	minOffset    = -96
	maxOffset    = 80
	maxNative    = uint64(100000000000000000)
	notNativeBit = uint64(1) << 63
	positiveBit  = uint64(1) << 62
	mantissaMask = (uint64(1) << 54) - 1
	nativeMask   = positiveBit - 1

	isoCodeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789<>(){}[]|?!@#$%^&*"
)

var (
	// ErrAmountOverflow ...
	ErrAmountOverflow = errors.New("amount overflow")
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidCurrency ...
	ErrInvalidCurrency = errors.New("invalid currency code")

	bigMinMantissa = new(big.Int).SetUint64(minMantissa)
	bigMaxMantissa = new(big.Int).SetUint64(maxMantissa)
	bigTen         = big.NewInt(10)
)

// Currency is the 160-bit currency code of an issued amount.
type Currency [20]byte

// ParseCurrency accepts "XRP", a three character ISO style code or 40 hex
// characters.
func ParseCurrency(s string) (Currency, error) {
	var c Currency
	switch {
	case s == "" || s == "XRP":
		return c, nil
	case len(s) == 3:
		for _, r := range s {
			if !strings.ContainsRune(isoCodeChars, r) {
				return c, fmt.Errorf("%w: %s", ErrInvalidCurrency, s)
			}
		}
		copy(c[12:15], s)
		return c, nil
	case len(s) == 2*len(c):
		b, err := hex.DecodeString(s)
		if err != nil {
			return c, fmt.Errorf("%w: %s", ErrInvalidCurrency, s)
		}
		copy(c[:], b)
		return c, nil
	}
	return c, fmt.Errorf("%w: %s", ErrInvalidCurrency, s)
}

func (c Currency) IsXRP() bool {
	return c == Currency{}
}

func (c Currency) String() string {
	if c.IsXRP() {
		return "XRP"
	}
	if isZero(c[:12]) && isZero(c[15:]) {
		code := string(c[12:15])
		valid := code != "XRP"
		for _, r := range code {
			if !strings.ContainsRune(isoCodeChars, r) {
				valid = false
			}
		}
		if valid {
			return code
		}
	}
	return strings.ToUpper(hex.EncodeToString(c[:]))
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// Amount is either a number of XRP drops or an issued currency value
// with its currency and issuer. Issued values are kept normalized as a
// 16 digit mantissa and a decimal exponent.
type Amount struct {
	native   bool
	negative bool
	mantissa uint64
	offset   int
	currency Currency
	issuer   addresscodec.AccountID
}

// NewDropsAmount returns a native amount.
func NewDropsAmount(drops int64) (Amount, error) {
	a := Amount{native: true}
	if drops < 0 {
		a.negative = true
		drops = -drops
	}
	a.mantissa = uint64(drops)
	if a.mantissa > maxNative {
		return Amount{}, ErrAmountOverflow
	}
	return a, nil
}

// NewIssuedAmount parses value as a decimal number, optionally in
// scientific notation, and normalizes it.
func NewIssuedAmount(value string, currency Currency, issuer addresscodec.AccountID) (Amount, error) {
	if currency.IsXRP() {
		return Amount{}, fmt.Errorf("%w: issued amount with XRP currency", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %s", ErrInvalidAmount, value)
	}

	a := Amount{currency: currency, issuer: issuer}
	coefficient := d.Coefficient()
	if coefficient.Sign() == 0 {
		return a, nil
	}
	a.negative = coefficient.Sign() < 0
	coefficient.Abs(coefficient)
	offset := int(d.Exponent())

	for coefficient.Cmp(bigMinMantissa) < 0 && offset > minOffset {
		coefficient.Mul(coefficient, bigTen)
		offset--
	}
	for coefficient.Cmp(bigMaxMantissa) > 0 {
		if offset >= maxOffset {
			return Amount{}, ErrAmountOverflow
		}
		coefficient.Quo(coefficient, bigTen)
		offset++
	}
	if offset < minOffset || coefficient.Cmp(bigMinMantissa) < 0 {
		return Amount{currency: currency, issuer: issuer}, nil
	}
	if offset > maxOffset {
		return Amount{}, ErrAmountOverflow
	}

	a.mantissa = coefficient.Uint64()
	a.offset = offset
	return a, nil
}

func (a Amount) IsNative() bool {
	return a.native
}

func (a Amount) IsZero() bool {
	return a.mantissa == 0
}

func (a Amount) Currency() Currency {
	return a.currency
}

func (a Amount) Issuer() addresscodec.AccountID {
	return a.issuer
}

// Drops returns the signed drop count of a native amount.
func (a Amount) Drops() int64 {
	if a.negative {
		return -int64(a.mantissa)
	}
	return int64(a.mantissa)
}

// Value renders the amount the way the ledger does: drops for native
// amounts, and for issued amounts a plain decimal unless the exponent
// calls for scientific notation.
func (a Amount) Value() string {
	if a.native {
		return strconv.FormatInt(a.Drops(), 10)
	}
	if a.mantissa == 0 {
		return "0"
	}
	sign := ""
	if a.negative {
		sign = "-"
	}
	if a.offset != 0 && (a.offset < -25 || a.offset > -5) {
		return fmt.Sprintf("%s%de%d", sign, a.mantissa, a.offset)
	}
	return sign + decimal.New(int64(a.mantissa), int32(a.offset)).String()
}

func (a Amount) encode(s *Serializer) {
	if a.native {
		v := a.mantissa
		if !a.negative {
			v |= positiveBit
		}
		s.Add64(v)
		return
	}

	v := notNativeBit
	if a.mantissa != 0 {
		if !a.negative {
			v |= positiveBit
		}
		v |= uint64(a.offset+97) << 54
		v |= a.mantissa
	}
	s.Add64(v)
	s.AddRaw(a.currency[:])
	s.AddRaw(a.issuer[:])
}

func decodeAmount(it *SerialIter) (Amount, error) {
	v, err := it.Get64()
	if err != nil {
		return Amount{}, err
	}

	if v&notNativeBit == 0 {
		a := Amount{native: true, mantissa: v & nativeMask}
		if v&positiveBit == 0 {
			if a.mantissa == 0 {
				return Amount{}, fmt.Errorf("%w: negative zero", ErrInvalidAmount)
			}
			a.negative = true
		}
		return a, nil
	}

	var a Amount
	currency, err := it.GetBitString(len(a.currency))
	if err != nil {
		return Amount{}, err
	}
	issuer, err := it.GetBitString(len(a.issuer))
	if err != nil {
		return Amount{}, err
	}
	copy(a.currency[:], currency)
	copy(a.issuer[:], issuer)
	if a.currency.IsXRP() {
		return Amount{}, fmt.Errorf("%w: invalid native currency", ErrInvalidAmount)
	}

	mantissa := v & mantissaMask
	if mantissa == 0 {
		if v&^notNativeBit != 0 {
			return Amount{}, fmt.Errorf("%w: invalid currency value", ErrInvalidAmount)
		}
		return a, nil
	}
	offset := int((v>>54)&0xff) - 97
	if mantissa < minMantissa || mantissa > maxMantissa || offset < minOffset || offset > maxOffset {
		return Amount{}, fmt.Errorf("%w: invalid currency value", ErrInvalidAmount)
	}
	a.mantissa = mantissa
	a.offset = offset
	a.negative = v&positiveBit == 0
	return a, nil
}

// Issue identifies an asset: XRP, or a currency together with its issuer.
type Issue struct {
	Currency Currency
	Issuer   addresscodec.AccountID
}

func (i Issue) encode(s *Serializer) {
	s.AddRaw(i.Currency[:])
	if !i.Currency.IsXRP() {
		s.AddRaw(i.Issuer[:])
	}
}

func decodeIssue(it *SerialIter) (Issue, error) {
	var i Issue
	currency, err := it.GetBitString(len(i.Currency))
	if err != nil {
		return i, err
	}
	copy(i.Currency[:], currency)
	if i.Currency.IsXRP() {
		return i, nil
	}
	issuer, err := it.GetBitString(len(i.Issuer))
	if err != nil {
		return i, err
	}
	copy(i.Issuer[:], issuer)
	return i, nil
}
