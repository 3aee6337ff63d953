package btcswap

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/chainswap/swapcore/swap"
	"github.com/chainswap/swapcore/swaperr"
)

// PunishTx spends Cancel's failure (single punish-key) branch after its
// timelock, letting Alice unilaterally claim the counterparty's funds
// with no accordant-side secret revealed and no cooperation required.
type PunishTx struct {
	partial        *PartialTransaction
	cancelOutput   Output
	punishTimelock uint32
	destValue      int64
	witnessSet     bool
}

var _ swap.Punishable[[]byte, *wire.MsgTx, Output] = (*PunishTx)(nil)

// NewPunishTx builds the unsigned Punish transaction spending cancel's
// output, sequence-locked by cancel's own PunishTimelock, and paying
// destPkScript, net of fee.
func NewPunishTx(cancel swap.Cancelable[[]byte, *wire.MsgTx, Output], punishTimelockBlocks uint32, destPkScript []byte, fee SatPerVByte) (*PunishTx, error) {
	cancelOut, err := cancel.GetConsumableOutput()
	if err != nil {
		return nil, err
	}

	in := wire.NewTxIn(&cancelOut.OutPoint, nil, nil)
	in.Sequence = punishTimelockBlocks

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(in)
	tx.AddTxOut(wire.NewTxOut(cancelOut.Value, destPkScript))

	feeAmt := SetFee(tx, fee)
	tx.TxOut[0].Value -= int64(feeAmt)

	partial, err := NewPartialTransaction(tx)
	if err != nil {
		return nil, err
	}

	return &PunishTx{
		partial:        partial,
		cancelOutput:   cancelOut,
		punishTimelock: punishTimelockBlocks,
		destValue:      tx.TxOut[0].Value,
	}, nil
}

func (*PunishTx) Id() swap.TxId { return swap.Punish }

func (p *PunishTx) sigHash() ([]byte, error) {
	hashes := txscript.NewTxSigHashes(p.partial.UnsignedTx(), txscript.NewCannedPrevOutputFetcher(p.cancelOutput.RedeemScript, p.cancelOutput.Value))
	return txscript.CalcWitnessSigHash(p.cancelOutput.RedeemScript, hashes, txscript.SigHashAll, p.partial.UnsignedTx(), 0, p.cancelOutput.Value)
}

// GenerateFailureWitness signs Cancel's failure branch under Alice's
// punish key and installs the resulting witness — a single signature
// unlocks this path, so there is no separate cosign step.
func (p *PunishTx) GenerateFailureWitness(privkey []byte) ([]byte, error) {
	priv, _ := btcec.PrivKeyFromBytes(privkey)
	sigHash, err := p.sigHash()
	if err != nil {
		return nil, swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	sig := ecdsa.Sign(priv, sigHash)
	encoded := append(sig.Serialize(), byte(txscript.SigHashAll))

	if err := p.partial.SetWitness(0, failureWitness(p.cancelOutput.RedeemScript, encoded)); err != nil {
		return nil, err
	}
	p.witnessSet = true
	return encoded, nil
}

func (p *PunishTx) VerifyFailureWitness(pubkey []byte, sig []byte) error {
	pub, err := btcec.ParsePubKey(pubkey)
	if err != nil {
		return swaperr.Wrap(swaperr.MissingPublicKey, err)
	}
	parsed, err := ecdsa.ParseDERSignature(sig[:len(sig)-1])
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	sigHash, err := p.sigHash()
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	if !parsed.Verify(sigHash, pub) {
		return swaperr.New(swaperr.InvalidSignature)
	}
	return nil
}

func (p *PunishTx) Finalize() error {
	if !p.witnessSet {
		return swaperr.New(swaperr.MissingWitness)
	}
	return nil
}

func (p *PunishTx) FinalizeAndExtract() (*wire.MsgTx, error) {
	if err := p.Finalize(); err != nil {
		return nil, err
	}
	return p.Extract()
}

func (p *PunishTx) Extract() (*wire.MsgTx, error) {
	return p.partial.Extract()
}

func (p *PunishTx) GetConsumableOutput() (Output, error) {
	return Output{
		OutPoint: wire.OutPoint{Hash: p.partial.UnsignedTx().TxHash(), Index: 0},
		Value:    p.destValue,
	}, nil
}
