package binarycodec

import (
	"errors"
	"fmt"

	"github.com/ximinez/ripple-offline-tool/pkg/addresscodec"
)

const maxDecodeDepth = 10

var (
	objectEndMarker = &Field{Name: "ObjectEndMarker", Type: TypeObject, Nth: 1}
	arrayEndMarker  = &Field{Name: "ArrayEndMarker", Type: TypeArray, Nth: 1}

	// ErrDuplicateField ...
	ErrDuplicateField = errors.New("duplicate field detected")
	// ErrMaxDepth ...
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")
	// ErrNonObjectInArray ...
	ErrNonObjectInArray = errors.New("non-object in array")
	// ErrUnexpectedEndMarker ...
	ErrUnexpectedEndMarker = errors.New("unexpected end marker")
)

// Encode returns the canonical bytes of the object.
func (o *Object) Encode() []byte {
	s := &Serializer{}
	o.encode(s, false)
	return s.Bytes()
}

// SigningData returns the canonical bytes of the signing fields only.
func (o *Object) SigningData() []byte {
	s := &Serializer{}
	o.encode(s, true)
	return s.Bytes()
}

func (o *Object) encode(s *Serializer, signingOnly bool) {
	for _, e := range o.entries {
		if signingOnly && !e.field.Signing {
			continue
		}
		s.addFieldID(e.field)
		encodeValue(s, e.field, e.value)
	}
}

func encodeValue(s *Serializer, f *Field, v interface{}) {
	switch t := v.(type) {
	case uint8:
		s.Add8(t)
	case uint16:
		s.Add16(t)
	case uint32:
		s.Add32(t)
	case uint64:
		s.Add64(t)
	case Hash128:
		s.AddRaw(t[:])
	case Hash160:
		s.AddRaw(t[:])
	case Hash256:
		s.AddRaw(t[:])
	case Amount:
		t.encode(s)
	case []byte:
		// Blobs longer than the largest VL length are refused when set.
		_ = s.AddVL(t)
	case addresscodec.AccountID:
		_ = s.AddVL(t[:])
	case *Object:
		t.encode(s, false)
		s.addFieldID(objectEndMarker)
	case Array:
		for _, e := range t {
			s.addFieldID(e.Field)
			e.Object.encode(s, false)
			s.addFieldID(objectEndMarker)
		}
		s.addFieldID(arrayEndMarker)
	case PathSet:
		t.encode(s)
	case []Hash256:
		raw := make([]byte, 0, 32*len(t))
		for _, h := range t {
			raw = append(raw, h[:]...)
		}
		_ = s.AddVL(raw)
	case Issue:
		t.encode(s)
	case Currency:
		s.AddRaw(t[:])
	default:
		panic(fmt.Sprintf("binarycodec: unsupported value %T for field %s", v, f.Name))
	}
}

// Decode parses canonical bytes into an object. Every byte must be
// consumed by the top level fields.
func Decode(data []byte) (*Object, error) {
	it := NewSerialIter(data)
	obj, err := decodeObject(it, 0, false)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeObject(it *SerialIter, depth int, inner bool) (*Object, error) {
	if depth > maxDecodeDepth {
		return nil, ErrMaxDepth
	}
	obj := NewObject()
	for inner || !it.Empty() {
		t, n, err := it.getFieldID()
		if err != nil {
			return nil, err
		}
		if t == objectEndMarker.Type && n == objectEndMarker.Nth {
			if !inner {
				return nil, ErrUnexpectedEndMarker
			}
			return obj, nil
		}
		f, ok := fieldByID(t, n)
		if !ok {
			return nil, fmt.Errorf("unknown field: field_type=%d, field_name=%d", t, n)
		}
		if obj.Has(f.Name) {
			return nil, ErrDuplicateField
		}
		v, err := decodeValue(it, f, depth)
		if err != nil {
			return nil, err
		}
		obj.set(f, v)
	}
	return obj, nil
}

func decodeValue(it *SerialIter, f *Field, depth int) (interface{}, error) {
	switch f.Type {
	case TypeUInt8:
		return it.Get8()
	case TypeUInt16:
		return it.Get16()
	case TypeUInt32:
		return it.Get32()
	case TypeUInt64:
		return it.Get64()
	case TypeHash128:
		var h Hash128
		b, err := it.GetBitString(len(h))
		copy(h[:], b)
		return h, err
	case TypeHash160:
		var h Hash160
		b, err := it.GetBitString(len(h))
		copy(h[:], b)
		return h, err
	case TypeHash256:
		var h Hash256
		b, err := it.GetBitString(len(h))
		copy(h[:], b)
		return h, err
	case TypeAmount:
		return decodeAmount(it)
	case TypeBlob:
		return it.GetVL()
	case TypeAccountID:
		var id addresscodec.AccountID
		b, err := it.GetVL()
		if err != nil {
			return nil, err
		}
		if len(b) != len(id) {
			return nil, errors.New("invalid account id length")
		}
		copy(id[:], b)
		return id, nil
	case TypeObject:
		return decodeObject(it, depth+1, true)
	case TypeArray:
		return decodeArray(it, depth+1)
	case TypePathSet:
		return decodePathSet(it)
	case TypeVector256:
		b, err := it.GetVL()
		if err != nil {
			return nil, err
		}
		if len(b)%32 != 0 {
			return nil, errors.New("bad Vector256 length")
		}
		out := make([]Hash256, len(b)/32)
		for i := range out {
			copy(out[i][:], b[32*i:])
		}
		return out, nil
	case TypeIssue:
		return decodeIssue(it)
	case TypeCurrency:
		var c Currency
		b, err := it.GetBitString(len(c))
		copy(c[:], b)
		return c, err
	}
	return nil, fmt.Errorf("unsupported field type %s", f.Type)
}

func decodeArray(it *SerialIter, depth int) (Array, error) {
	if depth > maxDecodeDepth {
		return nil, ErrMaxDepth
	}
	arr := Array{}
	for {
		t, n, err := it.getFieldID()
		if err != nil {
			return nil, err
		}
		if t == arrayEndMarker.Type && n == arrayEndMarker.Nth {
			return arr, nil
		}
		if t == objectEndMarker.Type && n == objectEndMarker.Nth {
			return nil, ErrUnexpectedEndMarker
		}
		f, ok := fieldByID(t, n)
		if !ok {
			return nil, fmt.Errorf("unknown field: field_type=%d, field_name=%d", t, n)
		}
		if f.Type != TypeObject {
			return nil, ErrNonObjectInArray
		}
		obj, err := decodeObject(it, depth+1, true)
		if err != nil {
			return nil, err
		}
		arr = append(arr, ArrayEntry{Field: f, Object: obj})
	}
}
