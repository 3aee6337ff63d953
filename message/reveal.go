package message

import (
	"io"

	"github.com/chainswap/swapcore/crypto"
	"github.com/chainswap/swapcore/swapwire"
)

// RevealAliceParameters carries the seven opening values committed to by
// CommitAliceParameters, plus Alice's destination address and the
// cross-group DLEQ proof binding Spend to Adaptor. Each key field is the
// tagged crypto.KeyType union, not a bare byte string.
type RevealAliceParameters struct {
	Buy                crypto.KeyType
	Cancel             crypto.KeyType
	Refund             crypto.KeyType
	Punish             crypto.KeyType
	Adaptor            crypto.KeyType
	Spend              crypto.KeyType
	View               crypto.KeyType
	DestinationAddress string
	Proof              []byte
}

var _ Message = (*RevealAliceParameters)(nil)

func (*RevealAliceParameters) MsgType() MessageType { return TypeRevealAliceParameters }

func (m *RevealAliceParameters) Encode(w io.Writer) error {
	for _, f := range []crypto.KeyType{m.Buy, m.Cancel, m.Refund, m.Punish, m.Adaptor, m.Spend, m.View} {
		if err := f.Encode(w); err != nil {
			return err
		}
	}
	if err := swapwire.WriteString(w, m.DestinationAddress); err != nil {
		return err
	}
	return swapwire.WriteVarBytes(w, m.Proof)
}

func (m *RevealAliceParameters) Decode(r io.Reader) error {
	fields := []*crypto.KeyType{&m.Buy, &m.Cancel, &m.Refund, &m.Punish, &m.Adaptor, &m.Spend, &m.View}
	for _, f := range fields {
		if err := f.Decode(r); err != nil {
			return err
		}
	}
	addr, err := swapwire.ReadString(r)
	if err != nil {
		return err
	}
	m.DestinationAddress = addr
	proof, err := swapwire.ReadVarBytes(r)
	if err != nil {
		return err
	}
	m.Proof = proof
	return nil
}

// RevealBobParameters carries the six opening values committed to by
// CommitBobParameters, plus Bob's refund address and DLEQ proof.
type RevealBobParameters struct {
	Buy           crypto.KeyType
	Cancel        crypto.KeyType
	Refund        crypto.KeyType
	Adaptor       crypto.KeyType
	Spend         crypto.KeyType
	View          crypto.KeyType
	RefundAddress string
	Proof         []byte
}

var _ Message = (*RevealBobParameters)(nil)

func (*RevealBobParameters) MsgType() MessageType { return TypeRevealBobParameters }

func (m *RevealBobParameters) Encode(w io.Writer) error {
	for _, f := range []crypto.KeyType{m.Buy, m.Cancel, m.Refund, m.Adaptor, m.Spend, m.View} {
		if err := f.Encode(w); err != nil {
			return err
		}
	}
	if err := swapwire.WriteString(w, m.RefundAddress); err != nil {
		return err
	}
	return swapwire.WriteVarBytes(w, m.Proof)
}

func (m *RevealBobParameters) Decode(r io.Reader) error {
	fields := []*crypto.KeyType{&m.Buy, &m.Cancel, &m.Refund, &m.Adaptor, &m.Spend, &m.View}
	for _, f := range fields {
		if err := f.Decode(r); err != nil {
			return err
		}
	}
	addr, err := swapwire.ReadString(r)
	if err != nil {
		return err
	}
	m.RefundAddress = addr
	proof, err := swapwire.ReadVarBytes(r)
	if err != nil {
		return err
	}
	m.Proof = proof
	return nil
}
