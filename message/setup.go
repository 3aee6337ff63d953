package message

import (
	"io"

	"github.com/chainswap/swapcore/datum"
)

// CoreArbitratingSetup is sent Bob -> Alice: the three partial
// transactions sharing a script chain (lock, cancel, refund) and Bob's
// regular signature cosigning the cancel transaction's Fallback branch.
type CoreArbitratingSetup struct {
	Lock      datum.Transaction
	Cancel    datum.Transaction
	Refund    datum.Transaction
	CancelSig datum.Signature
}

var _ Message = (*CoreArbitratingSetup)(nil)

func (*CoreArbitratingSetup) MsgType() MessageType { return TypeCoreArbitratingSetup }

func (m *CoreArbitratingSetup) Encode(w io.Writer) error {
	if err := m.Lock.Encode(w); err != nil {
		return err
	}
	if err := m.Cancel.Encode(w); err != nil {
		return err
	}
	if err := m.Refund.Encode(w); err != nil {
		return err
	}
	return m.CancelSig.Encode(w)
}

func (m *CoreArbitratingSetup) Decode(r io.Reader) error {
	if err := m.Lock.Decode(r); err != nil {
		return err
	}
	if err := m.Cancel.Decode(r); err != nil {
		return err
	}
	if err := m.Refund.Decode(r); err != nil {
		return err
	}
	return m.CancelSig.Decode(r)
}
