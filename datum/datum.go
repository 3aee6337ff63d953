// Package datum defines the small typed wrappers carried inside parameter
// bundles (C8): a tagged key, a tagged address parameter, the DLEQ proof,
// a tagged signature, and a tagged partial transaction. Each wrapper keeps
// enough tag information to reconstruct a protocol message field, and
// exposes its raw value bytes.
package datum

import (
	"io"

	"github.com/chainswap/swapcore/crypto"
	"github.com/chainswap/swapcore/role"
	"github.com/chainswap/swapcore/swap"
	"github.com/chainswap/swapcore/swapwire"
)

// KeyLabel names which of the fixed key slots in a parameter bundle a Key
// datum fills, mirroring the closed Key enum of the original protocol
// (AliceBuy, AliceCancel, ..., BobPrivateView).
type KeyLabel int

const (
	AliceBuy KeyLabel = iota
	AliceCancel
	AliceRefund
	AlicePunish
	AliceAdaptor
	AliceSpend
	AlicePrivateView
	BobFund
	BobBuy
	BobCancel
	BobRefund
	BobAdaptor
	BobSpend
	BobPrivateView
)

// Key is a tagged key datum: it remembers which role and slot it fills, in
// addition to the raw key bytes needed for commitment/reveal.
type Key struct {
	Label KeyLabel
	Owner role.SwapRole
	Value crypto.KeyType
}

func newKey(label KeyLabel, owner role.SwapRole, value crypto.KeyType) Key {
	return Key{Label: label, Owner: owner, Value: value}
}

func NewAliceBuy(pub []byte) Key     { return newKey(AliceBuy, role.Alice, crypto.NewPublicArbitratingKey(pub)) }
func NewAliceCancel(pub []byte) Key  { return newKey(AliceCancel, role.Alice, crypto.NewPublicArbitratingKey(pub)) }
func NewAliceRefund(pub []byte) Key  { return newKey(AliceRefund, role.Alice, crypto.NewPublicArbitratingKey(pub)) }
func NewAlicePunish(pub []byte) Key  { return newKey(AlicePunish, role.Alice, crypto.NewPublicArbitratingKey(pub)) }
func NewAliceAdaptor(pub []byte) Key { return newKey(AliceAdaptor, role.Alice, crypto.NewPublicArbitratingKey(pub)) }
func NewAliceSpend(pub []byte) Key   { return newKey(AliceSpend, role.Alice, crypto.NewPublicAccordantKey(pub)) }
func NewAlicePrivateView(v []byte) Key {
	return newKey(AlicePrivateView, role.Alice, crypto.NewSharedPrivateKey(v))
}

func NewBobFund(pub []byte) Key    { return newKey(BobFund, role.Bob, crypto.NewPublicArbitratingKey(pub)) }
func NewBobBuy(pub []byte) Key     { return newKey(BobBuy, role.Bob, crypto.NewPublicArbitratingKey(pub)) }
func NewBobCancel(pub []byte) Key  { return newKey(BobCancel, role.Bob, crypto.NewPublicArbitratingKey(pub)) }
func NewBobRefund(pub []byte) Key  { return newKey(BobRefund, role.Bob, crypto.NewPublicArbitratingKey(pub)) }
func NewBobAdaptor(pub []byte) Key { return newKey(BobAdaptor, role.Bob, crypto.NewPublicArbitratingKey(pub)) }
func NewBobSpend(pub []byte) Key   { return newKey(BobSpend, role.Bob, crypto.NewPublicAccordantKey(pub)) }
func NewBobPrivateView(v []byte) Key {
	return newKey(BobPrivateView, role.Bob, crypto.NewSharedPrivateKey(v))
}

// Bytes returns the raw key bytes, without the KeyType tag; the message
// layer's wire encoding and commitments use the tagged KeyType form.
func (k Key) Bytes() []byte { return k.Value.Bytes }

// ParameterLabel names which address slot a Parameter datum fills.
type ParameterLabel int

const (
	DestinationAddress ParameterLabel = iota
	RefundAddress
)

// Parameter wraps an address-shaped bundle field: Alice's destination
// address or Bob's refund address.
type Parameter struct {
	Label ParameterLabel
	Value string
}

func NewDestinationAddress(addr string) Parameter {
	return Parameter{Label: DestinationAddress, Value: addr}
}

func NewRefundAddress(addr string) Parameter {
	return Parameter{Label: RefundAddress, Value: addr}
}

// Proof wraps the cross-group DLEQ proof bytes carried by a parameter
// bundle.
type Proof struct {
	Bytes []byte
}

func NewCrossGroupDLEQ(proof []byte) Proof {
	return Proof{Bytes: proof}
}

// Signature is a tagged signature datum: which transaction it belongs to,
// which role produced it, and its SignatureType payload (Regular, Adapted
// or Adaptor).
type Signature struct {
	TxId  swap.TxId
	Owner role.SwapRole
	Value crypto.SignatureType
}

func NewSignature(txid swap.TxId, owner role.SwapRole, value crypto.SignatureType) Signature {
	return Signature{TxId: txid, Owner: owner, Value: value}
}

// Encode writes the datum in declaration order: TxId, Owner, then the
// tagged SignatureType payload.
func (s Signature) Encode(w io.Writer) error {
	if err := swapwire.WriteTxId(w, s.TxId); err != nil {
		return err
	}
	if err := s.Owner.Encode(w); err != nil {
		return err
	}
	return s.Value.Encode(w)
}

// Decode reads the shape written by Encode.
func (s *Signature) Decode(r io.Reader) error {
	txid, err := swapwire.ReadTxId(r)
	if err != nil {
		return err
	}
	owner, err := role.DecodeSwapRole(r)
	if err != nil {
		return err
	}
	var value crypto.SignatureType
	if err := value.Decode(r); err != nil {
		return err
	}
	s.TxId = txid
	s.Owner = owner
	s.Value = value
	return nil
}

// TransactionLabel names which of the three partial transactions carried
// by CoreArbitratingSetup (or the lone one in BuyProcedureSignature) a
// Transaction datum holds.
type TransactionLabel int

const (
	LockTx TransactionLabel = iota
	CancelTx
	RefundTx
	BuyTx
)

// Transaction wraps a chain-native partial transaction along with which
// swap transaction kind it represents.
type Transaction struct {
	Label TransactionLabel
	Bytes []byte
}

func NewLockTx(b []byte) Transaction   { return Transaction{Label: LockTx, Bytes: b} }
func NewCancelTx(b []byte) Transaction { return Transaction{Label: CancelTx, Bytes: b} }
func NewRefundTx(b []byte) Transaction { return Transaction{Label: RefundTx, Bytes: b} }
func NewBuyTx(b []byte) Transaction    { return Transaction{Label: BuyTx, Bytes: b} }

// Encode writes the datum's label tag followed by its partial
// transaction bytes.
func (t Transaction) Encode(w io.Writer) error {
	if err := swapwire.WriteUint16(w, uint16(t.Label)); err != nil {
		return err
	}
	return swapwire.WriteVarBytes(w, t.Bytes)
}

// Decode reads the shape written by Encode.
func (t *Transaction) Decode(r io.Reader) error {
	label, err := swapwire.ReadUint16(r)
	if err != nil {
		return err
	}
	b, err := swapwire.ReadVarBytes(r)
	if err != nil {
		return err
	}
	t.Label = TransactionLabel(label)
	t.Bytes = b
	return nil
}
