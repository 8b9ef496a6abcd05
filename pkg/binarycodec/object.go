package binarycodec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ximinez/ripple-offline-tool/pkg/addresscodec"
)

// Fixed width hash values.
type (
	Hash128 [16]byte
	Hash160 [20]byte
	Hash256 [32]byte
)

func (h Hash128) String() string { return strings.ToUpper(hex.EncodeToString(h[:])) }
func (h Hash160) String() string { return strings.ToUpper(hex.EncodeToString(h[:])) }
func (h Hash256) String() string { return strings.ToUpper(hex.EncodeToString(h[:])) }

// ArrayEntry is one element of an STArray: an inner object wrapped in a
// named object field.
type ArrayEntry struct {
	Field  *Field
	Object *Object
}

// NewArrayEntry wraps obj in the object field called name.
func NewArrayEntry(name string, obj *Object) (ArrayEntry, error) {
	f, ok := FieldByName(name)
	if !ok {
		return ArrayEntry{}, &FieldError{Name: name, Err: ErrUnknownField}
	}
	if f.Type != TypeObject {
		return ArrayEntry{}, &FieldError{Name: name, Err: ErrWrongFieldType}
	}
	return ArrayEntry{Field: f, Object: obj}, nil
}

// Array is the value of an STArray field.
type Array []ArrayEntry

var (
	// ErrUnknownField ...
	ErrUnknownField = errors.New("is unknown")
	// ErrWrongFieldType ...
	ErrWrongFieldType = errors.New("has bad type")
	// ErrInvalidFieldData ...
	ErrInvalidFieldData = errors.New("has invalid data")
	// ErrMissingField ...
	ErrMissingField = errors.New("is required but missing")
)

// FieldError ties one of the field sentinel errors to a field name.
type FieldError struct {
	Name string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field '%s' %s", e.Name, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

type entry struct {
	field *Field
	value interface{}
}

// Object is a set of uniquely named typed fields kept in canonical order.
//
// Values are stored with the following Go types:
//
//	UInt8, UInt16, UInt32, UInt64      uint8, uint16, uint32, uint64
//	Hash128, Hash160, Hash256          Hash128, Hash160, Hash256
//	Amount                             Amount
//	Blob                               []byte
//	AccountID                          addresscodec.AccountID
//	STObject                           *Object
//	STArray                            Array
//	PathSet                            PathSet
//	Vector256                          []Hash256
//	Issue                              Issue
//	Currency                           Currency
type Object struct {
	entries []entry
}

func NewObject() *Object {
	return &Object{}
}

func (o *Object) find(name string) (int, bool) {
	for i, e := range o.entries {
		if e.field.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.entries)
}

// Fields returns the fields of the object in canonical order.
func (o *Object) Fields() []*Field {
	out := make([]*Field, 0, len(o.entries))
	for _, e := range o.entries {
		out = append(out, e.field)
	}
	return out
}

func (o *Object) Has(name string) bool {
	_, ok := o.find(name)
	return ok
}

func (o *Object) Get(name string) (interface{}, bool) {
	i, ok := o.find(name)
	if !ok {
		return nil, false
	}
	return o.entries[i].value, true
}

// Set adds or replaces a field. The value must have the Go type matching
// the field type.
func (o *Object) Set(name string, value interface{}) error {
	f, ok := FieldByName(name)
	if !ok {
		return &FieldError{Name: name, Err: ErrUnknownField}
	}
	if !valueMatches(f.Type, value) {
		return &FieldError{Name: name, Err: ErrWrongFieldType}
	}
	if b, ok := value.([]byte); ok && len(b) > maxVLLength {
		return &FieldError{Name: name, Err: ErrVLTooLong}
	}
	o.set(f, value)
	return nil
}

func (o *Object) set(f *Field, value interface{}) {
	if i, ok := o.find(f.Name); ok {
		o.entries[i].value = value
		return
	}
	i := sort.Search(len(o.entries), func(i int) bool {
		return o.entries[i].field.code() > f.code()
	})
	o.entries = append(o.entries, entry{})
	copy(o.entries[i+1:], o.entries[i:])
	o.entries[i] = entry{field: f, value: value}
}

// Delete removes a field if present.
func (o *Object) Delete(name string) {
	if i, ok := o.find(name); ok {
		o.entries = append(o.entries[:i], o.entries[i+1:]...)
	}
}

func (o *Object) GetBlob(name string) ([]byte, bool) {
	v, ok := o.Get(name)
	b, isBlob := v.([]byte)
	return b, ok && isBlob
}

func (o *Object) GetAccountID(name string) (addresscodec.AccountID, bool) {
	v, ok := o.Get(name)
	id, isAccount := v.(addresscodec.AccountID)
	return id, ok && isAccount
}

func (o *Object) GetArray(name string) (Array, bool) {
	v, ok := o.Get(name)
	a, isArray := v.(Array)
	return a, ok && isArray
}

func (o *Object) GetUInt16(name string) (uint16, bool) {
	v, ok := o.Get(name)
	n, isUInt16 := v.(uint16)
	return n, ok && isUInt16
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := &Object{entries: make([]entry, len(o.entries))}
	for i, e := range o.entries {
		out.entries[i] = entry{field: e.field, value: cloneValue(e.value)}
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case []byte:
		return append([]byte(nil), t...)
	case *Object:
		return t.Clone()
	case Array:
		out := make(Array, len(t))
		for i, e := range t {
			out[i] = ArrayEntry{Field: e.Field, Object: e.Object.Clone()}
		}
		return out
	case PathSet:
		return t.clone()
	case []Hash256:
		return append([]Hash256(nil), t...)
	default:
		return v
	}
}

func valueMatches(t SerializedType, v interface{}) bool {
	switch v.(type) {
	case uint8:
		return t == TypeUInt8
	case uint16:
		return t == TypeUInt16
	case uint32:
		return t == TypeUInt32
	case uint64:
		return t == TypeUInt64
	case Hash128:
		return t == TypeHash128
	case Hash160:
		return t == TypeHash160
	case Hash256:
		return t == TypeHash256
	case Amount:
		return t == TypeAmount
	case []byte:
		return t == TypeBlob
	case addresscodec.AccountID:
		return t == TypeAccountID
	case *Object:
		return t == TypeObject && v.(*Object) != nil
	case Array:
		return t == TypeArray
	case PathSet:
		return t == TypePathSet
	case []Hash256:
		return t == TypeVector256
	case Issue:
		return t == TypeIssue
	case Currency:
		return t == TypeCurrency
	}
	return false
}
