// Package nbt reads and writes uncompressed big-endian NBT, the tag format
// of schematics and Anvil chunks.
package nbt

import (
	"encoding/binary"
	"io"
	"math"
)

// NBT tag type IDs.
const (
	TagEnd       byte = 0
	TagByte      byte = 1
	TagShort     byte = 2
	TagInt       byte = 3
	TagLong      byte = 4
	TagFloat     byte = 5
	TagDouble    byte = 6
	TagByteArray byte = 7
	TagString    byte = 8
	TagList      byte = 9
	TagCompound  byte = 10
	TagIntArray  byte = 11
)

// Writer writes NBT binary data to an io.Writer in big-endian format.
// All write methods accumulate errors internally; call Err() after writing
// to check for failures.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a new NBT Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered during writing.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(data []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(data)
}

func (w *Writer) putByte(v byte) {
	w.write([]byte{v})
}

func (w *Writer) putUint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.write(buf[:])
}

func (w *Writer) putInt32(v int32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	w.write(buf[:])
}

func (w *Writer) putInt64(v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	w.write(buf[:])
}

func (w *Writer) putString(s string) {
	w.putUint16(uint16(len(s)))
	if len(s) > 0 {
		w.write([]byte(s))
	}
}

func (w *Writer) writeTagHeader(tagType byte, name string) {
	w.putByte(tagType)
	w.putString(name)
}

// Compound writes a named compound whose fields are written by body.
func (w *Writer) Compound(name string, body func()) {
	w.writeTagHeader(TagCompound, name)
	body()
	w.putByte(TagEnd)
}

// List writes a named list of n elements of type elem; item writes the
// payload of element i. Empty lists are typed End, as the game writes them.
func (w *Writer) List(name string, elem byte, n int, item func(i int)) {
	w.writeTagHeader(TagList, name)
	if n == 0 {
		elem = TagEnd
	}
	w.putByte(elem)
	w.putInt32(int32(n))
	for i := 0; i < n; i++ {
		item(i)
	}
}

// Element writes the fields of one unnamed compound inside a list.
func (w *Writer) Element(body func()) {
	body()
	w.putByte(TagEnd)
}

func (w *Writer) Byte(name string, v byte) {
	w.writeTagHeader(TagByte, name)
	w.putByte(v)
}

func (w *Writer) Short(name string, v int16) {
	w.writeTagHeader(TagShort, name)
	w.putUint16(uint16(v))
}

func (w *Writer) Int(name string, v int32) {
	w.writeTagHeader(TagInt, name)
	w.putInt32(v)
}

func (w *Writer) Long(name string, v int64) {
	w.writeTagHeader(TagLong, name)
	w.putInt64(v)
}

func (w *Writer) StringTag(name, v string) {
	w.writeTagHeader(TagString, name)
	w.putString(v)
}

func (w *Writer) ByteArray(name string, v []byte) {
	w.writeTagHeader(TagByteArray, name)
	w.putInt32(int32(len(v)))
	w.write(v)
}

func (w *Writer) IntArray(name string, v []int32) {
	w.writeTagHeader(TagIntArray, name)
	w.putInt32(int32(len(v)))
	for _, val := range v {
		w.putInt32(val)
	}
}

// Doubles writes a list of doubles, the form of entity positions.
func (w *Writer) Doubles(name string, v ...float64) {
	w.List(name, TagDouble, len(v), func(i int) {
		w.putInt64(int64(math.Float64bits(v[i])))
	})
}

// Floats writes a list of floats, the form of entity rotations.
func (w *Writer) Floats(name string, v ...float32) {
	w.List(name, TagFloat, len(v), func(i int) {
		w.putInt32(int32(math.Float32bits(v[i])))
	})
}
