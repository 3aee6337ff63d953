package message

import (
	"io"

	"github.com/chainswap/swapcore/datum"
)

// RefundProcedureSignatures is sent Alice -> Bob: Alice's regular
// signature cosigning the cancel transaction's Fallback branch, and
// Alice's adaptor signature over the refund transaction, encrypted under
// Bob's adaptor point Tb. Sending this reveals nothing of Alice's own
// adaptor secret; it is Bob adapting and broadcasting Refund that later
// discloses Bob's secret on-chain.
type RefundProcedureSignatures struct {
	CancelSig        datum.Signature
	RefundAdaptorSig datum.Signature
}

var _ Message = (*RefundProcedureSignatures)(nil)

func (*RefundProcedureSignatures) MsgType() MessageType { return TypeRefundProcedureSignatures }

func (m *RefundProcedureSignatures) Encode(w io.Writer) error {
	if err := m.CancelSig.Encode(w); err != nil {
		return err
	}
	return m.RefundAdaptorSig.Encode(w)
}

func (m *RefundProcedureSignatures) Decode(r io.Reader) error {
	if err := m.CancelSig.Decode(r); err != nil {
		return err
	}
	return m.RefundAdaptorSig.Decode(r)
}

// BuyProcedureSignature is sent Bob -> Alice: the buy partial transaction
// and Bob's adaptor signature over it, encrypted under Alice's adaptor
// point Ta. Alice adapting and broadcasting Buy discloses Alice's
// adaptor secret on-chain, letting Bob reconstruct the joint accordant
// spend key.
type BuyProcedureSignature struct {
	Buy           datum.Transaction
	BuyAdaptorSig datum.Signature
}

var _ Message = (*BuyProcedureSignature)(nil)

func (*BuyProcedureSignature) MsgType() MessageType { return TypeBuyProcedureSignature }

func (m *BuyProcedureSignature) Encode(w io.Writer) error {
	if err := m.Buy.Encode(w); err != nil {
		return err
	}
	return m.BuyAdaptorSig.Encode(w)
}

func (m *BuyProcedureSignature) Decode(r io.Reader) error {
	if err := m.Buy.Decode(r); err != nil {
		return err
	}
	return m.BuyAdaptorSig.Decode(r)
}
