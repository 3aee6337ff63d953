package btcswap

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/chainswap/swapcore/swap"
	"github.com/chainswap/swapcore/swaperr"
)

// RefundTx spends Cancel's success (Refund-keys) branch and returns funds
// to their original owner, revealing the refunding party's adaptor
// secret exactly like Buy does on the opposite side of the swap.
type RefundTx struct {
	partial      *PartialTransaction
	cancelOutput Output
	destValue    int64
	sigs         map[string][]byte
}

var _ swap.Refundable[[]byte, *wire.MsgTx, Output] = (*RefundTx)(nil)

// NewRefundTx builds the unsigned Refund transaction spending cancel's
// output and paying refundPkScript, net of fee.
func NewRefundTx(cancel swap.Cancelable[[]byte, *wire.MsgTx, Output], refundPkScript []byte, fee SatPerVByte) (*RefundTx, error) {
	cancelOut, err := cancel.GetConsumableOutput()
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(wire.NewTxIn(&cancelOut.OutPoint, nil, nil))
	tx.AddTxOut(wire.NewTxOut(cancelOut.Value, refundPkScript))

	feeAmt := SetFee(tx, fee)
	tx.TxOut[0].Value -= int64(feeAmt)

	partial, err := NewPartialTransaction(tx)
	if err != nil {
		return nil, err
	}

	return &RefundTx{
		partial:      partial,
		cancelOutput: cancelOut,
		destValue:    tx.TxOut[0].Value,
		sigs:         make(map[string][]byte),
	}, nil
}

func (*RefundTx) Id() swap.TxId { return swap.Refund }

func (r *RefundTx) sigHash() ([]byte, error) {
	hashes := txscript.NewTxSigHashes(r.partial.UnsignedTx(), txscript.NewCannedPrevOutputFetcher(r.cancelOutput.RedeemScript, r.cancelOutput.Value))
	return txscript.CalcWitnessSigHash(r.cancelOutput.RedeemScript, hashes, txscript.SigHashAll, r.partial.UnsignedTx(), 0, r.cancelOutput.Value)
}

func (r *RefundTx) GenerateWitness(privkey []byte) ([]byte, error) {
	priv, _ := btcec.PrivKeyFromBytes(privkey)
	sigHash, err := r.sigHash()
	if err != nil {
		return nil, swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	sig := ecdsa.Sign(priv, sigHash)
	return append(sig.Serialize(), byte(txscript.SigHashAll)), nil
}

func (r *RefundTx) VerifyWitness(pubkey []byte, sig []byte) error {
	pub, err := btcec.ParsePubKey(pubkey)
	if err != nil {
		return swaperr.Wrap(swaperr.MissingPublicKey, err)
	}
	parsed, err := ecdsa.ParseDERSignature(sig[:len(sig)-1])
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	sigHash, err := r.sigHash()
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	if !parsed.Verify(sigHash, pub) {
		return swaperr.New(swaperr.InvalidSignature)
	}
	return nil
}

func (r *RefundTx) GenerateAdaptorWitness(privkey []byte, adaptorPub []byte) ([]byte, error) {
	priv := secp.PrivKeyFromBytes(privkey)
	adaptor, err := secp.ParsePubKey(adaptorPub)
	if err != nil {
		return nil, swaperr.Wrap(swaperr.MissingPublicKey, err)
	}
	sigHash, err := r.sigHash()
	if err != nil {
		return nil, swaperr.Wrap(swaperr.InvalidAdaptorSignature, err)
	}
	return GenerateAdaptorSignature(priv, sigHash, adaptor)
}

func (r *RefundTx) VerifyAdaptorWitness(pubkey []byte, adaptorPub []byte, sig []byte) error {
	pub, err := secp.ParsePubKey(pubkey)
	if err != nil {
		return swaperr.Wrap(swaperr.MissingPublicKey, err)
	}
	adaptor, err := secp.ParsePubKey(adaptorPub)
	if err != nil {
		return swaperr.Wrap(swaperr.MissingPublicKey, err)
	}
	sigHash, err := r.sigHash()
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidAdaptorSignature, err)
	}
	return VerifyAdaptorSignature(pub, sigHash, adaptor, sig)
}

func (r *RefundTx) AddCooperation(pubkey []byte, sig []byte) error {
	r.sigs[string(pubkey)] = sig
	return nil
}

func (r *RefundTx) Finalize() error {
	if r.partial.Packet.Inputs[0].FinalScriptWitness != nil {
		return nil
	}

	successA, successB, _, err := punishableLockPubkeys(r.cancelOutput.RedeemScript)
	if err != nil {
		return err
	}
	pubs, sigs, err := requireCosigners(r.sigs, successA, successB)
	if err != nil {
		return err
	}

	witness := multisigWitness(r.cancelOutput.RedeemScript, pubs[0], sigs[0], pubs[1], sigs[1], true)
	return r.partial.SetWitness(0, witness)
}

func (r *RefundTx) FinalizeAndExtract() (*wire.MsgTx, error) {
	if err := r.Finalize(); err != nil {
		return nil, err
	}
	return r.Extract()
}

func (r *RefundTx) Extract() (*wire.MsgTx, error) {
	return r.partial.Extract()
}

func (r *RefundTx) GetConsumableOutput() (Output, error) {
	return Output{
		OutPoint: wire.OutPoint{Hash: r.partial.UnsignedTx().TxHash(), Index: 0},
		Value:    r.destValue,
	}, nil
}
