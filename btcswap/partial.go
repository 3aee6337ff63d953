package btcswap

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"

	"github.com/chainswap/swapcore/swaperr"
)

// Output is the concrete Linkable payload for btcswap: enough information
// to reference and later spend a transaction's consumable output.
type Output struct {
	OutPoint     wire.OutPoint
	Value        int64
	RedeemScript []byte
}

// PartialTransaction wraps btcutil/psbt's Packet, giving every btcswap
// transaction kind the BIP-174 Creator/Updater/Signer/Finalizer/Extractor
// lifecycle (C4) the protocol's transaction capability interfaces are
// modeled on.
type PartialTransaction struct {
	Packet *psbt.Packet
}

// NewPartialTransaction creates the Creator-stage PSBT for an unsigned
// transaction.
func NewPartialTransaction(tx *wire.MsgTx) (*PartialTransaction, error) {
	packet, err := psbt.NewFromUnsignedTx(tx)
	if err != nil {
		return nil, swaperr.Wrap(swaperr.ParseFailed, err)
	}
	return &PartialTransaction{Packet: packet}, nil
}

// Serialize encodes the partial transaction to its canonical PSBT byte
// form, used as the payload inside CoreArbitratingSetup and the
// procedure-signature messages.
func (p *PartialTransaction) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Packet.Serialize(&buf); err != nil {
		return nil, swaperr.Wrap(swaperr.ParseFailed, err)
	}
	return buf.Bytes(), nil
}

// ParsePartialTransaction decodes a PSBT byte form back into a
// PartialTransaction.
func ParsePartialTransaction(b []byte) (*PartialTransaction, error) {
	packet, err := psbt.NewFromRawBytes(bytes.NewReader(b), false)
	if err != nil {
		return nil, swaperr.Wrap(swaperr.ParseFailed, err)
	}
	return &PartialTransaction{Packet: packet}, nil
}

// UnsignedTx returns the underlying unsigned transaction.
func (p *PartialTransaction) UnsignedTx() *wire.MsgTx {
	return p.Packet.UnsignedTx
}

// SetWitness installs the finalized witness stack for the single input at
// index, the Finalizer stage of the PSBT lifecycle.
func (p *PartialTransaction) SetWitness(index int, witness wire.TxWitness) error {
	if index >= len(p.Packet.Inputs) {
		return swaperr.New(swaperr.ParseFailed)
	}
	var buf bytes.Buffer
	if err := wire.WriteVarInt(&buf, 0, uint64(len(witness))); err != nil {
		return swaperr.Wrap(swaperr.ParseFailed, err)
	}
	for _, item := range witness {
		if err := wire.WriteVarBytes(&buf, 0, item); err != nil {
			return swaperr.Wrap(swaperr.ParseFailed, err)
		}
	}
	p.Packet.Inputs[index].FinalScriptWitness = buf.Bytes()
	return nil
}

// Extract produces the final broadcastable transaction, the Extractor
// stage of the PSBT lifecycle.
func (p *PartialTransaction) Extract() (*wire.MsgTx, error) {
	return psbt.Extract(p.Packet)
}
