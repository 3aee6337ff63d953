// Package swap defines the abstract arbitrating-transaction state machine
// (C6): the six transaction kinds, their legal operations, and the
// invariants governing how they chain together. Concrete realizations
// (e.g. btcswap) implement these interfaces; this package owns none of
// the chain-specific logic.
//
// Associated types are bound via Go generics rather than subclassing, so
// that adapting a signature or output from the wrong chain realization is
// a compile error rather than a runtime TypeMismatch. A realization
// package instantiates these interfaces with its own concrete Sig/Output/
// Tx types and never needs to import this package's sibling realizations.
package swap

import "github.com/chainswap/swapcore/swaperr"

// TxId is the closed enum of arbitrating transaction kinds. The wire tag
// is a 2-byte value: Funding=1, Lock=2, Buy=3, Cancel=4, Refund=5,
// Punish=6.
type TxId uint16

const (
	Funding TxId = 1
	Lock    TxId = 2
	Buy     TxId = 3
	Cancel  TxId = 4
	Refund  TxId = 5
	Punish  TxId = 6
)

func (id TxId) String() string {
	switch id {
	case Funding:
		return "funding"
	case Lock:
		return "lock"
	case Buy:
		return "buy"
	case Cancel:
		return "cancel"
	case Refund:
		return "refund"
	case Punish:
		return "punish"
	default:
		return "unknown"
	}
}

// ParseTxId decodes a wire value into a TxId, failing with UnknownType for
// any value outside 0x0001-0x0006.
func ParseTxId(v uint16) (TxId, error) {
	switch TxId(v) {
	case Funding, Lock, Buy, Cancel, Refund, Punish:
		return TxId(v), nil
	default:
		return 0, swaperr.New(swaperr.UnknownType)
	}
}
