// Package role defines the swap-role taxonomy: Alice (holds the accordant
// asset, wants the arbitrating one) and Bob (the reverse), and the set of
// arbitrating keys each contributes (C3).
package role

import (
	"io"

	"github.com/chainswap/swapcore/crypto"
	"github.com/chainswap/swapcore/swapwire"
)

// SwapRole identifies which of the two fixed participants a party plays.
type SwapRole int

const (
	Alice SwapRole = iota
	Bob
)

// Encode writes r as its 2-byte wire tag.
func (r SwapRole) Encode(w io.Writer) error {
	return swapwire.WriteUint16(w, uint16(r))
}

// DecodeSwapRole reads the shape written by Encode.
func DecodeSwapRole(r io.Reader) (SwapRole, error) {
	v, err := swapwire.ReadUint16(r)
	if err != nil {
		return 0, err
	}
	return SwapRole(v), nil
}

func (r SwapRole) String() string {
	if r == Alice {
		return "Alice"
	}
	return "Bob"
}

// Other returns the counterparty's role.
func (r SwapRole) Other() SwapRole {
	if r == Alice {
		return Bob
	}
	return Alice
}

// ArbitratingKeys returns the arbitrating-chain key ids this role must
// derive and contribute to the swap. Bob never holds a Punish key: only
// Alice can punish Bob's non-cooperation, since Bob is the one who can be
// left holding an un-spendable accordant share.
func (r SwapRole) ArbitratingKeys() []crypto.ArbitratingKey {
	base := []crypto.ArbitratingKey{
		crypto.Buy, crypto.Cancel, crypto.Refund, crypto.Adaptor,
	}
	if r == Bob {
		return append([]crypto.ArbitratingKey{crypto.Fund}, base...)
	}
	return append(append([]crypto.ArbitratingKey{}, base...), crypto.Punish)
}

// AccordantKeys returns the accordant-chain key ids this role must derive.
// Both roles hold a Spend key share.
func (r SwapRole) AccordantKeys() []crypto.AccordantKey {
	return []crypto.AccordantKey{crypto.Spend}
}

// SharedPrivateKeys returns the shared (to-be-disclosed) private key ids
// this role must derive. Both roles hold a View key share.
func (r SwapRole) SharedPrivateKeys() []crypto.SharedPrivateKey {
	return []crypto.SharedPrivateKey{crypto.View}
}

// AdaptorLabel names the atomicity hinge this role's adaptor key locks:
// Alice's adaptor point encrypts Bob's buy signature, Bob's encrypts
// Alice's refund signature.
func (r SwapRole) AdaptorLabel() string {
	if r == Alice {
		return "Ta"
	}
	return "Tb"
}
