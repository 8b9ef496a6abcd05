package binarycodec

import (
	"fmt"
	"sort"
)

// SerializedType is the type code of a field.
type SerializedType uint8

const (
	TypeUInt16    SerializedType = 1
	TypeUInt32    SerializedType = 2
	TypeUInt64    SerializedType = 3
	TypeHash128   SerializedType = 4
	TypeHash256   SerializedType = 5
	TypeAmount    SerializedType = 6
	TypeBlob      SerializedType = 7
	TypeAccountID SerializedType = 8
	TypeObject    SerializedType = 14
	TypeArray     SerializedType = 15
	TypeUInt8     SerializedType = 16
	TypeHash160   SerializedType = 17
	TypePathSet   SerializedType = 18
	TypeVector256 SerializedType = 19
	TypeIssue     SerializedType = 24
	TypeCurrency  SerializedType = 26
)

var typeNames = map[SerializedType]string{
	TypeUInt16:    "UInt16",
	TypeUInt32:    "UInt32",
	TypeUInt64:    "UInt64",
	TypeHash128:   "Hash128",
	TypeHash256:   "Hash256",
	TypeAmount:    "Amount",
	TypeBlob:      "Blob",
	TypeAccountID: "AccountID",
	TypeObject:    "STObject",
	TypeArray:     "STArray",
	TypeUInt8:     "UInt8",
	TypeHash160:   "Hash160",
	TypePathSet:   "PathSet",
	TypeVector256: "Vector256",
	TypeIssue:     "Issue",
	TypeCurrency:  "Currency",
}

func (t SerializedType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SerializedType(%d)", uint8(t))
}

// Field describes one entry of the field registry.
type Field struct {
	Name string
	Type SerializedType
	Nth  uint8
	// Signing is false for fields left out of signing preimages.
	Signing bool
}

// code orders fields canonically: by type code, then by field code.
func (f *Field) code() int {
	return int(f.Type)<<8 | int(f.Nth)
}

func (f *Field) String() string {
	return f.Name
}

// header returns the 1 to 3 byte field id.
func (f *Field) header() []byte {
	t, n := byte(f.Type), f.Nth
	switch {
	case t < 16 && n < 16:
		return []byte{t<<4 | n}
	case t < 16:
		return []byte{t << 4, n}
	case n < 16:
		return []byte{n, t}
	default:
		return []byte{0, t, n}
	}
}

var (
	fieldsByName = map[string]*Field{}
	fieldsByCode = map[int]*Field{}
)

func init() {
	for _, group := range fieldDefinitions {
		for _, def := range group.fields {
			f := &Field{
				Name:    def.name,
				Type:    group.typ,
				Nth:     def.nth,
				Signing: !def.notSigning,
			}
			fieldsByName[f.Name] = f
			fieldsByCode[f.code()] = f
		}
	}
}

// FieldByName looks up a field in the registry.
func FieldByName(name string) (*Field, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}

func fieldByID(t SerializedType, nth uint8) (*Field, bool) {
	f, ok := fieldsByCode[(&Field{Type: t, Nth: nth}).code()]
	return f, ok
}

// Fields returns the whole registry in canonical order.
func Fields() []*Field {
	list := make([]*Field, 0, len(fieldsByName))
	for _, f := range fieldsByName {
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].code() < list[j].code() })
	return list
}
