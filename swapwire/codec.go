// Package swapwire implements the canonical wire codec (C1): a
// deterministic, tag-exhaustive binary encoding used by every protocol
// message. Primitive integers are fixed-width little-endian; variable
// length byte strings carry a 2-byte little-endian length prefix; tagged
// enums are a 2-byte tag followed by the variant payload. The codec is
// total on well-formed input and round-trip exact: Decode(Encode(x)) == x
// for every protocol-defined type.
//
// The framing style (a typed payload preceded by a short fixed header,
// dispatched through a registry keyed on the type tag) follows lnwire's
// Message/ReadMessage/WriteMessage pattern; the element sizes and integer
// endianness follow this protocol's own wire layout rather than lnwire's,
// since the two are different wire formats.
package swapwire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/chainswap/swapcore/swaperr"
)

// MaxVarBytesLength bounds a single length-prefixed byte string, matching
// the 2-byte length prefix's range.
const MaxVarBytesLength = math.MaxUint16

// WriteUint16 writes v as 2 fixed little-endian bytes.
func WriteUint16(w io.Writer, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// ReadUint16 reads 2 fixed little-endian bytes into a uint16.
func ReadUint16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// WriteUint32 writes v as 4 fixed little-endian bytes.
func WriteUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// ReadUint32 reads 4 fixed little-endian bytes into a uint32.
func ReadUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// WriteUint64 writes v as 8 fixed little-endian bytes.
func WriteUint64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// ReadUint64 reads 8 fixed little-endian bytes into a uint64.
func ReadUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// WriteBool writes v as a single 0x00/0x01 byte.
func WriteBool(w io.Writer, v bool) error {
	b := byte(0)
	if v {
		b = 1
	}
	_, err := w.Write([]byte{b})
	return err
}

// ReadBool reads a single byte and interprets it as a boolean.
func ReadBool(r io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// WriteVarBytes writes a byte string as a 2-byte little-endian length
// prefix followed by the raw bytes.
func WriteVarBytes(w io.Writer, b []byte) error {
	if len(b) > MaxVarBytesLength {
		return swaperr.Newf("byte string of length %d exceeds wire maximum", len(b))
	}
	if err := WriteUint16(w, uint16(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// ReadVarBytes reads a 2-byte little-endian length prefix followed by
// that many raw bytes.
func ReadVarBytes(r io.Reader) ([]byte, error) {
	n, err := ReadUint16(r)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// WriteString writes a string using the same framing as WriteVarBytes.
func WriteString(w io.Writer, s string) error {
	return WriteVarBytes(w, []byte(s))
}

// ReadString reads a string using the same framing as ReadVarBytes.
func ReadString(r io.Reader) (string, error) {
	b, err := ReadVarBytes(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteOptionalVarBytes writes a presence byte followed by the payload
// when present, encoding Rust's Option<T> shape over the wire.
func WriteOptionalVarBytes(w io.Writer, b []byte, present bool) error {
	if err := WriteBool(w, present); err != nil {
		return err
	}
	if !present {
		return nil
	}
	return WriteVarBytes(w, b)
}

// ReadOptionalVarBytes reads the shape written by WriteOptionalVarBytes.
func ReadOptionalVarBytes(r io.Reader) (b []byte, present bool, err error) {
	present, err = ReadBool(r)
	if err != nil || !present {
		return nil, present, err
	}
	b, err = ReadVarBytes(r)
	return b, true, err
}
