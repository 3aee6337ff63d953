// Package bundle defines the typed records of keys, proofs, addresses,
// timelocks and fees carried through the protocol (C8). A bundle is
// constructed once by its owning role and never mutated after reveal.
package bundle

import (
	"github.com/chainswap/swapcore/blockchain"
	"github.com/chainswap/swapcore/datum"
)

// AliceParameters bundles everything Alice commits to and later reveals.
// FeeUnit is bound by the concrete arbitrating-chain realization in use
// (e.g. btcswap.SatPerVByte) so the bundle stays statically paired to a
// single chain's fee unit rather than accepting any FeeUnit at runtime.
type AliceParameters[FeeUnit blockchain.FeeUnit] struct {
	Buy                Key
	Cancel             Key
	Refund             Key
	Punish             Key
	Adaptor            Key
	Spend              Key
	View               Key
	DestinationAddress datum.Parameter
	Proof              datum.Proof
	CancelTimelock     blockchain.Timelock
	PunishTimelock     blockchain.Timelock
	FeeStrategy        *blockchain.FeeStrategy[FeeUnit]
}

// BobParameters bundles everything Bob commits to and later reveals. It
// has no Punish key — Bob cannot be punished by himself — and carries a
// RefundAddress in place of Alice's DestinationAddress.
type BobParameters[FeeUnit blockchain.FeeUnit] struct {
	Buy            Key
	Cancel         Key
	Refund         Key
	Adaptor        Key
	Spend          Key
	View           Key
	RefundAddress  datum.Parameter
	Proof          datum.Proof
	CancelTimelock blockchain.Timelock
	PunishTimelock blockchain.Timelock
	FeeStrategy    *blockchain.FeeStrategy[FeeUnit]
}

// Key is a thin alias kept local to bundle so callers don't need to reach
// into datum for the common case of reading a bundle field's key datum.
type Key = datum.Key

// CoreArbitratingTransactions carries the three partial transactions Bob
// hands to Alice in CoreArbitratingSetup.
type CoreArbitratingTransactions struct {
	Lock   datum.Transaction
	Cancel datum.Transaction
	Refund datum.Transaction
}

// CosignedArbitratingCancel carries one party's regular signature over
// the Cancel transaction.
type CosignedArbitratingCancel struct {
	CancelSig datum.Signature
}

// SignedAdaptorBuy carries the Buy partial transaction plus Bob's adaptor
// signature over it, encrypted under Alice's adaptor public key.
type SignedAdaptorBuy struct {
	Buy           datum.Transaction
	BuyAdaptorSig datum.Signature
}

// SignedAdaptorRefund carries Alice's adaptor signature over the Refund
// transaction, encrypted under Bob's adaptor public key.
type SignedAdaptorRefund struct {
	RefundAdaptorSig datum.Signature
}
