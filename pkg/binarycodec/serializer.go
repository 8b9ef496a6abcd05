package binarycodec

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	maxVLLength   = 918744
	maxSingleByte = 192
	maxDoubleByte = 12480
)

var (
	// ErrVLTooLong ...
	ErrVLTooLong = errors.New("variable length field is too long")
	// ErrInvalidVLLength ...
	ErrInvalidVLLength = errors.New("invalid variable length indicator")
)

// IterError reports a read past the end of the data being decoded.
type IterError struct {
	Op string
}

func (e *IterError) Error() string {
	return "invalid SerialIter " + e.Op
}

// Serializer accumulates canonical bytes.
type Serializer struct {
	buf bytes.Buffer
}

func (s *Serializer) Bytes() []byte {
	return s.buf.Bytes()
}

func (s *Serializer) Add8(v uint8) {
	s.buf.WriteByte(v)
}

func (s *Serializer) Add16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	s.buf.Write(b[:])
}

func (s *Serializer) Add32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	s.buf.Write(b[:])
}

func (s *Serializer) Add64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	s.buf.Write(b[:])
}

func (s *Serializer) AddRaw(b []byte) {
	s.buf.Write(b)
}

func (s *Serializer) addFieldID(f *Field) {
	s.buf.Write(f.header())
}

// AddVL writes b prefixed by its encoded length.
func (s *Serializer) AddVL(b []byte) error {
	prefix, err := encodeVLLength(len(b))
	if err != nil {
		return err
	}
	s.buf.Write(prefix)
	s.buf.Write(b)
	return nil
}

func encodeVLLength(n int) ([]byte, error) {
	switch {
	case n <= maxSingleByte:
		return []byte{byte(n)}, nil
	case n <= maxDoubleByte:
		n -= maxSingleByte + 1
		return []byte{byte(193 + (n >> 8)), byte(n)}, nil
	case n <= maxVLLength:
		n -= maxDoubleByte + 1
		return []byte{byte(241 + (n >> 16)), byte(n >> 8), byte(n)}, nil
	}
	return nil, ErrVLTooLong
}

// SerialIter reads canonical bytes front to back.
type SerialIter struct {
	data []byte
	pos  int
}

func NewSerialIter(data []byte) *SerialIter {
	return &SerialIter{data: data}
}

func (it *SerialIter) Empty() bool {
	return it.pos >= len(it.data)
}

func (it *SerialIter) take(n int, op string) ([]byte, error) {
	if n < 0 || len(it.data)-it.pos < n {
		return nil, &IterError{Op: op}
	}
	b := it.data[it.pos : it.pos+n]
	it.pos += n
	return b, nil
}

func (it *SerialIter) Get8() (uint8, error) {
	b, err := it.take(1, "get8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (it *SerialIter) Get16() (uint16, error) {
	b, err := it.take(2, "get16")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (it *SerialIter) Get32() (uint32, error) {
	b, err := it.take(4, "get32")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (it *SerialIter) Get64() (uint64, error) {
	b, err := it.take(8, "get64")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// GetBitString reads a fixed width hash of n bytes.
func (it *SerialIter) GetBitString(n int) ([]byte, error) {
	b, err := it.take(n, "getBitString")
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

func (it *SerialIter) GetRaw(n int) ([]byte, error) {
	b, err := it.take(n, "getRaw")
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

// GetVL reads a length prefixed byte string.
func (it *SerialIter) GetVL() ([]byte, error) {
	n, err := it.getVLLength()
	if err != nil {
		return nil, err
	}
	return it.GetRaw(n)
}

func (it *SerialIter) getVLLength() (int, error) {
	b1, err := it.Get8()
	if err != nil {
		return 0, err
	}
	switch {
	case b1 <= maxSingleByte:
		return int(b1), nil
	case b1 <= 240:
		b2, err := it.Get8()
		if err != nil {
			return 0, err
		}
		return maxSingleByte + 1 + int(b1-193)<<8 + int(b2), nil
	case b1 <= 254:
		b2, err := it.Get8()
		if err != nil {
			return 0, err
		}
		b3, err := it.Get8()
		if err != nil {
			return 0, err
		}
		return maxDoubleByte + 1 + int(b1-241)<<16 + int(b2)<<8 + int(b3), nil
	}
	return 0, ErrInvalidVLLength
}

// getFieldID reads a field header and returns its type and field codes.
func (it *SerialIter) getFieldID() (SerializedType, uint8, error) {
	b, err := it.Get8()
	if err != nil {
		return 0, 0, err
	}
	t, n := b>>4, b&0x0f
	if t == 0 {
		if t, err = it.Get8(); err != nil {
			return 0, 0, err
		}
		if t < 16 {
			return 0, 0, errors.New("uncommon type out of range")
		}
	}
	if n == 0 {
		if n, err = it.Get8(); err != nil {
			return 0, 0, err
		}
		if n < 16 {
			return 0, 0, errors.New("uncommon name out of range")
		}
	}
	return SerializedType(t), n, nil
}
