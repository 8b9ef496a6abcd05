package binarycodec

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ximinez/ripple-offline-tool/pkg/addresscodec"
)

const (
	maxJSONDepth = 64
	// hashFieldName is the derived transaction id; it is accepted on input
	// and never serialized.
	hashFieldName = "hash"
)

// ErrNotJSONObject ...
var ErrNotJSONObject = errors.New("JSON value is not an object")

// ParseJSON decodes text as a JSON object. Numbers are kept as
// json.Number so that 32 and 64 bit integers survive exactly.
func ParseJSON(text string) (map[string]interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after JSON value")
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, ErrNotJSONObject
	}
	return m, nil
}

// ObjectFromJSON maps a parsed JSON object onto a canonical object.
func ObjectFromJSON(m map[string]interface{}) (*Object, error) {
	return objectFromJSON(m, 0)
}

func objectFromJSON(m map[string]interface{}, depth int) (*Object, error) {
	if depth > maxJSONDepth {
		return nil, ErrMaxDepth
	}
	obj := NewObject()
	for name, raw := range m {
		if name == hashFieldName {
			continue
		}
		f, ok := FieldByName(name)
		if !ok {
			return nil, &FieldError{Name: name, Err: ErrUnknownField}
		}
		v, err := valueFromJSON(f, raw, depth)
		if err != nil {
			return nil, err
		}
		obj.set(f, v)
	}
	return obj, nil
}

func valueFromJSON(f *Field, raw interface{}, depth int) (interface{}, error) {
	invalid := &FieldError{Name: f.Name, Err: ErrInvalidFieldData}

	switch f.Type {
	case TypeUInt8:
		names, _ := enum8(f)
		if s, ok := raw.(string); ok && names != nil {
			if code, ok := names[s]; ok {
				return code, nil
			}
		}
		n, ok := uintFromJSON(raw, math.MaxUint8)
		if !ok {
			return nil, invalid
		}
		return uint8(n), nil

	case TypeUInt16:
		names, _ := enum16(f)
		if s, ok := raw.(string); ok && names != nil {
			if code, ok := names[s]; ok {
				return code, nil
			}
			// Transaction types must be given by name.
			if f.Name == "TransactionType" {
				return nil, invalid
			}
		}
		n, ok := uintFromJSON(raw, math.MaxUint16)
		if !ok {
			return nil, invalid
		}
		return uint16(n), nil

	case TypeUInt32:
		n, ok := uintFromJSON(raw, math.MaxUint32)
		if !ok {
			return nil, invalid
		}
		return uint32(n), nil

	case TypeUInt64:
		if s, ok := raw.(string); ok {
			n, err := strconv.ParseUint(s, 16, 64)
			if err != nil {
				return nil, invalid
			}
			return n, nil
		}
		n, ok := uintFromJSON(raw, math.MaxUint64)
		if !ok {
			return nil, invalid
		}
		return n, nil

	case TypeHash128:
		var h Hash128
		if !hexFromJSON(raw, h[:]) {
			return nil, invalid
		}
		return h, nil

	case TypeHash160:
		var h Hash160
		if !hexFromJSON(raw, h[:]) {
			return nil, invalid
		}
		return h, nil

	case TypeHash256:
		var h Hash256
		if !hexFromJSON(raw, h[:]) {
			return nil, invalid
		}
		return h, nil

	case TypeAmount:
		a, err := amountFromJSON(raw)
		if err != nil {
			return nil, invalid
		}
		return a, nil

	case TypeBlob:
		s, ok := raw.(string)
		if !ok {
			return nil, invalid
		}
		b, err := hex.DecodeString(s)
		if err != nil || len(b) > maxVLLength {
			return nil, invalid
		}
		return b, nil

	case TypeAccountID:
		s, ok := raw.(string)
		if !ok {
			return nil, invalid
		}
		id, err := addresscodec.ParseAccountID(s)
		if err != nil {
			return nil, invalid
		}
		return id, nil

	case TypeObject:
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, &FieldError{Name: f.Name, Err: ErrWrongFieldType}
		}
		return objectFromJSON(m, depth+1)

	case TypeArray:
		list, ok := raw.([]interface{})
		if !ok {
			return nil, &FieldError{Name: f.Name, Err: ErrWrongFieldType}
		}
		return arrayFromJSON(f, list, depth+1)

	case TypePathSet:
		ps, err := pathSetFromJSON(raw)
		if err != nil {
			return nil, invalid
		}
		return ps, nil

	case TypeVector256:
		list, ok := raw.([]interface{})
		if !ok {
			return nil, invalid
		}
		out := make([]Hash256, len(list))
		for i, item := range list {
			if !hexFromJSON(item, out[i][:]) {
				return nil, invalid
			}
		}
		return out, nil

	case TypeIssue:
		issue, err := issueFromJSON(raw)
		if err != nil {
			return nil, invalid
		}
		return issue, nil

	case TypeCurrency:
		s, ok := raw.(string)
		if !ok {
			return nil, invalid
		}
		c, err := ParseCurrency(s)
		if err != nil {
			return nil, invalid
		}
		return c, nil
	}
	return nil, &FieldError{Name: f.Name, Err: ErrWrongFieldType}
}

func arrayFromJSON(f *Field, list []interface{}, depth int) (Array, error) {
	if depth > maxJSONDepth {
		return nil, ErrMaxDepth
	}
	arr := make(Array, 0, len(list))
	for _, item := range list {
		wrapper, ok := item.(map[string]interface{})
		if !ok || len(wrapper) != 1 {
			return nil, &FieldError{Name: f.Name, Err: ErrInvalidFieldData}
		}
		for name, inner := range wrapper {
			innerMap, ok := inner.(map[string]interface{})
			if !ok {
				return nil, &FieldError{Name: name, Err: ErrWrongFieldType}
			}
			obj, err := objectFromJSON(innerMap, depth+1)
			if err != nil {
				return nil, err
			}
			e, err := NewArrayEntry(name, obj)
			if err != nil {
				return nil, err
			}
			arr = append(arr, e)
		}
	}
	return arr, nil
}

func uintFromJSON(raw interface{}, max uint64) (uint64, bool) {
	var s string
	switch v := raw.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = v
	case float64:
		if v < 0 || v != math.Trunc(v) || v > float64(max) {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n > max {
		return 0, false
	}
	return n, true
}

func hexFromJSON(raw interface{}, dst []byte) bool {
	s, ok := raw.(string)
	if !ok || len(s) != 2*len(dst) {
		return false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return false
	}
	copy(dst, b)
	return true
}

func amountFromJSON(raw interface{}) (Amount, error) {
	switch v := raw.(type) {
	case string:
		return dropsFromString(v)
	case json.Number:
		return dropsFromString(v.String())
	case map[string]interface{}:
		value, ok := v["value"].(string)
		if !ok {
			if n, isNumber := v["value"].(json.Number); isNumber {
				value, ok = n.String(), true
			}
		}
		currencyText, hasCurrency := v["currency"].(string)
		issuerText, hasIssuer := v["issuer"].(string)
		if !ok || !hasCurrency || !hasIssuer {
			return Amount{}, ErrInvalidAmount
		}
		currency, err := ParseCurrency(currencyText)
		if err != nil {
			return Amount{}, err
		}
		issuer, err := addresscodec.ParseAccountID(issuerText)
		if err != nil {
			return Amount{}, err
		}
		return NewIssuedAmount(value, currency, issuer)
	}
	return Amount{}, ErrInvalidAmount
}

func dropsFromString(s string) (Amount, error) {
	drops, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	return NewDropsAmount(drops)
}

func issueFromJSON(raw interface{}) (Issue, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return Issue{}, ErrInvalidCurrency
	}
	currencyText, _ := m["currency"].(string)
	currency, err := ParseCurrency(currencyText)
	if err != nil {
		return Issue{}, err
	}
	issue := Issue{Currency: currency}
	issuerText, hasIssuer := m["issuer"].(string)
	if currency.IsXRP() {
		if hasIssuer {
			return Issue{}, ErrInvalidCurrency
		}
		return issue, nil
	}
	if !hasIssuer {
		return Issue{}, ErrInvalidCurrency
	}
	issue.Issuer, err = addresscodec.ParseAccountID(issuerText)
	return issue, err
}

func pathSetFromJSON(raw interface{}) (PathSet, error) {
	paths, ok := raw.([]interface{})
	if !ok || len(paths) == 0 {
		return nil, ErrInvalidPathStep
	}
	set := make(PathSet, 0, len(paths))
	for _, p := range paths {
		steps, ok := p.([]interface{})
		if !ok || len(steps) == 0 {
			return nil, ErrInvalidPathStep
		}
		path := make(Path, 0, len(steps))
		for _, s := range steps {
			m, ok := s.(map[string]interface{})
			if !ok {
				return nil, ErrInvalidPathStep
			}
			var step PathStep
			if text, ok := m["account"].(string); ok {
				id, err := addresscodec.ParseAccountID(text)
				if err != nil {
					return nil, err
				}
				step.Account = &id
			}
			if text, ok := m["currency"].(string); ok {
				c, err := ParseCurrency(text)
				if err != nil {
					return nil, err
				}
				step.Currency = &c
			}
			if text, ok := m["issuer"].(string); ok {
				id, err := addresscodec.ParseAccountID(text)
				if err != nil {
					return nil, err
				}
				step.Issuer = &id
			}
			if step.typeByte() == 0 {
				return nil, ErrInvalidPathStep
			}
			path = append(path, step)
		}
		set = append(set, path)
	}
	return set, nil
}

// JSON renders the object as a generic JSON value.
func (o *Object) JSON() map[string]interface{} {
	out := make(map[string]interface{}, len(o.entries))
	for _, e := range o.entries {
		out[e.field.Name] = valueToJSON(e.field, e.value)
	}
	return out
}

func valueToJSON(f *Field, v interface{}) interface{} {
	switch t := v.(type) {
	case uint8:
		if _, names := enum8(f); names != nil {
			if name, ok := names[t]; ok {
				return name
			}
		}
		return t
	case uint16:
		if _, names := enum16(f); names != nil {
			if name, ok := names[t]; ok {
				return name
			}
		}
		return t
	case uint32:
		return t
	case uint64:
		return fmt.Sprintf("%016X", t)
	case Hash128:
		return t.String()
	case Hash160:
		return t.String()
	case Hash256:
		return t.String()
	case Amount:
		if t.IsNative() {
			return t.Value()
		}
		return map[string]interface{}{
			"currency": t.Currency().String(),
			"issuer":   t.Issuer().String(),
			"value":    t.Value(),
		}
	case []byte:
		return strings.ToUpper(hex.EncodeToString(t))
	case addresscodec.AccountID:
		return t.String()
	case *Object:
		return t.JSON()
	case Array:
		out := make([]interface{}, 0, len(t))
		for _, e := range t {
			out = append(out, map[string]interface{}{e.Field.Name: e.Object.JSON()})
		}
		return out
	case PathSet:
		out := make([]interface{}, 0, len(t))
		for _, path := range t {
			steps := make([]interface{}, 0, len(path))
			for _, step := range path {
				m := map[string]interface{}{"type": step.typeByte()}
				if step.Account != nil {
					m["account"] = step.Account.String()
				}
				if step.Currency != nil {
					m["currency"] = step.Currency.String()
				}
				if step.Issuer != nil {
					m["issuer"] = step.Issuer.String()
				}
				steps = append(steps, m)
			}
			out = append(out, steps)
		}
		return out
	case []Hash256:
		out := make([]interface{}, 0, len(t))
		for _, h := range t {
			out = append(out, h.String())
		}
		return out
	case Issue:
		m := map[string]interface{}{"currency": t.Currency.String()}
		if !t.Currency.IsXRP() {
			m["issuer"] = t.Issuer.String()
		}
		return m
	case Currency:
		return t.String()
	}
	return nil
}

// MarshalIndent renders a JSON value with sorted keys and three space
// indentation, without escaping HTML characters.
func MarshalIndent(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "   ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
