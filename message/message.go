// Package message implements the eight protocol messages (C9) and the
// two-phase-commit Session sequencing guard. Every message type
// implements swapwire.Codec directly; dispatch across the eight concrete
// types is done by a small MessageType-tagged registry, the same framing
// split lnwire uses between its wire.Message interface and
// ReadMessage/WriteMessage.
package message

import (
	"bytes"
	"io"

	"github.com/chainswap/swapcore/swapwire"
	"github.com/chainswap/swapcore/swaperr"
)

// MessageType is the 2-byte wire tag identifying which of the eight
// concrete message kinds follows. The assignment is fixed by this
// implementation, matching the TxId tag style: values are sequential
// starting at 1, with no reuse.
type MessageType uint16

const (
	TypeCommitAliceParameters     MessageType = 1
	TypeCommitBobParameters       MessageType = 2
	TypeRevealAliceParameters     MessageType = 3
	TypeRevealBobParameters       MessageType = 4
	TypeCoreArbitratingSetup      MessageType = 5
	TypeRefundProcedureSignatures MessageType = 6
	TypeBuyProcedureSignature     MessageType = 7
	TypeAbort                     MessageType = 8
)

func (t MessageType) String() string {
	switch t {
	case TypeCommitAliceParameters:
		return "commit_alice_parameters"
	case TypeCommitBobParameters:
		return "commit_bob_parameters"
	case TypeRevealAliceParameters:
		return "reveal_alice_parameters"
	case TypeRevealBobParameters:
		return "reveal_bob_parameters"
	case TypeCoreArbitratingSetup:
		return "core_arbitrating_setup"
	case TypeRefundProcedureSignatures:
		return "refund_procedure_signatures"
	case TypeBuyProcedureSignature:
		return "buy_procedure_signature"
	case TypeAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// Message is implemented by every protocol message: it knows its own
// wire tag in addition to the Encode/Decode pair every message carries.
type Message interface {
	swapwire.Codec
	MsgType() MessageType
}

// WriteMessage frames m as a 2-byte MessageType tag followed by its
// encoded body.
func WriteMessage(w io.Writer, m Message) error {
	if err := swapwire.WriteUint16(w, uint16(m.MsgType())); err != nil {
		return err
	}
	return m.Encode(w)
}

// ReadMessage reads a framed message, dispatching on its MessageType tag
// to build the right concrete type before decoding its body into it.
func ReadMessage(r io.Reader) (Message, error) {
	tag, err := swapwire.ReadUint16(r)
	if err != nil {
		return nil, err
	}
	var m Message
	switch MessageType(tag) {
	case TypeCommitAliceParameters:
		m = &CommitAliceParameters{}
	case TypeCommitBobParameters:
		m = &CommitBobParameters{}
	case TypeRevealAliceParameters:
		m = &RevealAliceParameters{}
	case TypeRevealBobParameters:
		m = &RevealBobParameters{}
	case TypeCoreArbitratingSetup:
		m = &CoreArbitratingSetup{}
	case TypeRefundProcedureSignatures:
		m = &RefundProcedureSignatures{}
	case TypeBuyProcedureSignature:
		m = &BuyProcedureSignature{}
	case TypeAbort:
		m = &Abort{}
	default:
		return nil, swaperr.New(swaperr.UnknownType)
	}
	if err := m.Decode(r); err != nil {
		return nil, err
	}
	return m, nil
}

// EncodeToBytes frames and serializes m into a standalone byte string.
func EncodeToBytes(m Message) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteMessage(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeFromBytes parses a single framed message from b, rejecting any
// trailing bytes exactly like swapwire.DecodeFromBytes does for a bare
// Codec.
func DecodeFromBytes(b []byte) (Message, error) {
	r := bytes.NewReader(b)
	m, err := ReadMessage(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, swaperr.New(swaperr.ParseFailed)
	}
	return m, nil
}
