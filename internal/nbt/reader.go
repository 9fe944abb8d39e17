package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Read decodes one named tag from r. Compounds decode to map[string]any,
// lists to []any, int arrays to []int32 and byte arrays to []byte; scalars
// keep their Go width (byte, int16, int32, int64, float32, float64).
func Read(r io.Reader) (name string, v any, err error) {
	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return "", nil, err
	}
	if tag[0] == TagEnd {
		return "", nil, nil
	}
	if name, err = readString(r); err != nil {
		return "", nil, err
	}
	v, err = readPayload(r, tag[0])
	return name, v, err
}

func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	b := make([]byte, n)
	_, err := io.ReadFull(r, b)
	return string(b), err
}

func readLen(r io.Reader) (int32, error) {
	var n int32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("nbt: negative length %d", n)
	}
	return n, nil
}

func readPayload(r io.Reader, tag byte) (any, error) {
	switch tag {
	case TagByte:
		var v byte
		err := binary.Read(r, binary.BigEndian, &v)
		return v, err
	case TagShort:
		var v int16
		err := binary.Read(r, binary.BigEndian, &v)
		return v, err
	case TagInt:
		var v int32
		err := binary.Read(r, binary.BigEndian, &v)
		return v, err
	case TagLong:
		var v int64
		err := binary.Read(r, binary.BigEndian, &v)
		return v, err
	case TagFloat:
		var v float32
		err := binary.Read(r, binary.BigEndian, &v)
		return v, err
	case TagDouble:
		var v float64
		err := binary.Read(r, binary.BigEndian, &v)
		return v, err
	case TagString:
		return readString(r)
	case TagByteArray:
		n, err := readLen(r)
		if err != nil {
			return nil, err
		}
		b := make([]byte, n)
		_, err = io.ReadFull(r, b)
		return b, err
	case TagIntArray:
		n, err := readLen(r)
		if err != nil {
			return nil, err
		}
		v := make([]int32, n)
		err = binary.Read(r, binary.BigEndian, v)
		return v, err
	case TagList:
		var elem [1]byte
		if _, err := io.ReadFull(r, elem[:]); err != nil {
			return nil, err
		}
		n, err := readLen(r)
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, n)
		for i := int32(0); i < n; i++ {
			v, err := readPayload(r, elem[0])
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case TagCompound:
		m := make(map[string]any)
		for {
			name, v, err := Read(r)
			if err != nil {
				return nil, err
			}
			if v == nil && name == "" {
				return m, nil
			}
			m[name] = v
		}
	}
	return nil, fmt.Errorf("nbt: unknown tag %d", tag)
}
