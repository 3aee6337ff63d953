package swapwire

import (
	"bytes"
	"io"

	"github.com/chainswap/swapcore/swap"
	"github.com/chainswap/swapcore/swaperr"
)

// Codec is implemented by every wire type: protocol messages, and any
// nested structure reused across them.
type Codec interface {
	Encode(w io.Writer) error
	Decode(r io.Reader) error
}

// EncodeToBytes runs c's Encode against an in-memory buffer and returns
// the resulting bytes.
func EncodeToBytes(c Codec) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeFromBytes decodes c from b, failing if any trailing bytes remain
// unconsumed — the codec is round-trip exact and never silently ignores
// tail garbage.
func DecodeFromBytes(c Codec, b []byte) error {
	r := bytes.NewReader(b)
	if err := c.Decode(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return swaperr.Newf("%d trailing bytes after decode", r.Len())
	}
	return nil
}

// WriteTxId writes a swap.TxId as its 2-byte little-endian wire tag.
func WriteTxId(w io.Writer, id swap.TxId) error {
	return WriteUint16(w, uint16(id))
}

// ReadTxId reads a 2-byte little-endian wire tag and parses it into a
// swap.TxId, failing with UnknownType for any value outside 0x0001-0x0006.
func ReadTxId(r io.Reader) (swap.TxId, error) {
	v, err := ReadUint16(r)
	if err != nil {
		return 0, err
	}
	return swap.ParseTxId(v)
}
