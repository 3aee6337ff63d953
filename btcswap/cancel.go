package btcswap

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/chainswap/swapcore/script"
	"github.com/chainswap/swapcore/swap"
	"github.com/chainswap/swapcore/swaperr"
)

// CancelTx spends Lock's fallback (Cancel-keys) branch after its timelock
// and produces a fresh DataPunishableLock output, consumed in turn by
// either Refund or Punish.
type CancelTx struct {
	partial        *PartialTransaction
	lockOutput     Output
	punishableLock []byte
	output         Output
	sigs           map[string][]byte
}

var _ swap.Cancelable[[]byte, *wire.MsgTx, Output] = (*CancelTx)(nil)

// NewCancelTx builds the unsigned Cancel transaction spending lock's
// output, sequence-locked by lock's own Timelock, into a
// DataPunishableLock.
func NewCancelTx(lock swap.Lockable[[]byte, *wire.MsgTx, Output], lockTimelockBlocks uint32, punishable *script.DataPunishableLock[*btcec.PublicKey], fee SatPerVByte) (*CancelTx, error) {
	lockOut, err := lock.GetConsumableOutput()
	if err != nil {
		return nil, err
	}

	redeemScript, err := BuildDataPunishableLock(punishable)
	if err != nil {
		return nil, err
	}
	pkScript, err := witnessScriptHash(redeemScript)
	if err != nil {
		return nil, err
	}

	in := wire.NewTxIn(&lockOut.OutPoint, nil, nil)
	in.Sequence = lockTimelockBlocks

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(in)
	tx.AddTxOut(wire.NewTxOut(lockOut.Value, pkScript))

	feeAmt := SetFee(tx, fee)
	tx.TxOut[0].Value -= int64(feeAmt)

	partial, err := NewPartialTransaction(tx)
	if err != nil {
		return nil, err
	}

	return &CancelTx{
		partial:        partial,
		lockOutput:     lockOut,
		punishableLock: redeemScript,
		sigs:           make(map[string][]byte),
		output: Output{
			OutPoint:     wire.OutPoint{Index: 0},
			Value:        tx.TxOut[0].Value,
			RedeemScript: redeemScript,
		},
	}, nil
}

// NewCancelTxFromPartial wraps a counterparty-supplied serialized Cancel
// partial transaction (as carried by CoreArbitratingSetup), verifying its
// sole output actually pays into the DataPunishableLock script both
// parties agreed to before returning a CancelTx ready for cosigning.
func NewCancelTxFromPartial(raw []byte, lockOut Output, punishable *script.DataPunishableLock[*btcec.PublicKey]) (*CancelTx, error) {
	partial, err := ParsePartialTransaction(raw)
	if err != nil {
		return nil, err
	}

	redeemScript, err := BuildDataPunishableLock(punishable)
	if err != nil {
		return nil, err
	}
	pkScript, err := witnessScriptHash(redeemScript)
	if err != nil {
		return nil, err
	}

	tx := partial.UnsignedTx()
	if len(tx.TxOut) != 1 || !bytes.Equal(tx.TxOut[0].PkScript, pkScript) {
		return nil, swaperr.New(swaperr.InvalidCommitment)
	}

	return &CancelTx{
		partial:        partial,
		lockOutput:     lockOut,
		punishableLock: redeemScript,
		sigs:           make(map[string][]byte),
		output: Output{
			OutPoint:     wire.OutPoint{Index: 0},
			Value:        tx.TxOut[0].Value,
			RedeemScript: redeemScript,
		},
	}, nil
}

// VerifyTemplate re-derives the expected DataPunishableLock witness script
// and compares it byte-for-byte against the script this CancelTx actually
// holds, the same construction-time check NewCancelTx and
// NewCancelTxFromPartial already enforce, made available for re-checking
// against a possibly updated agreed DataPunishableLock before cosigning.
func (c *CancelTx) VerifyTemplate(punishable *script.DataPunishableLock[*btcec.PublicKey]) error {
	expected, err := BuildDataPunishableLock(punishable)
	if err != nil {
		return err
	}
	if !bytes.Equal(c.punishableLock, expected) {
		return swaperr.New(swaperr.InvalidCommitment)
	}
	return nil
}

func (*CancelTx) Id() swap.TxId { return swap.Cancel }

func (c *CancelTx) sigHash() ([]byte, error) {
	hashes := txscript.NewTxSigHashes(c.partial.UnsignedTx(), txscript.NewCannedPrevOutputFetcher(c.lockOutput.RedeemScript, c.lockOutput.Value))
	return txscript.CalcWitnessSigHash(c.lockOutput.RedeemScript, hashes, txscript.SigHashAll, c.partial.UnsignedTx(), 0, c.lockOutput.Value)
}

// GenerateFailureWitness signs Lock's fallback branch under privkey: one
// share of the Cancel-keys 2-of-2 needed to spend Lock after its timelock.
func (c *CancelTx) GenerateFailureWitness(privkey []byte) ([]byte, error) {
	priv, _ := btcec.PrivKeyFromBytes(privkey)
	sigHash, err := c.sigHash()
	if err != nil {
		return nil, swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	sig := ecdsa.Sign(priv, sigHash)
	return append(sig.Serialize(), byte(txscript.SigHashAll)), nil
}

func (c *CancelTx) VerifyFailureWitness(pubkey []byte, sig []byte) error {
	pub, err := btcec.ParsePubKey(pubkey)
	if err != nil {
		return swaperr.Wrap(swaperr.MissingPublicKey, err)
	}
	parsed, err := ecdsa.ParseDERSignature(sig[:len(sig)-1])
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	sigHash, err := c.sigHash()
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	if !parsed.Verify(sigHash, pub) {
		return swaperr.New(swaperr.InvalidSignature)
	}
	return nil
}

func (c *CancelTx) AddCooperation(pubkey []byte, sig []byte) error {
	c.sigs[string(pubkey)] = sig
	return nil
}

func (c *CancelTx) Finalize() error {
	if c.partial.Packet.Inputs[0].FinalScriptWitness != nil {
		return nil
	}

	_, _, cancelA, cancelB, err := lockPubkeys(c.lockOutput.RedeemScript)
	if err != nil {
		return err
	}
	pubs, sigs, err := requireCosigners(c.sigs, cancelA, cancelB)
	if err != nil {
		return err
	}

	witness := multisigWitness(c.lockOutput.RedeemScript, pubs[0], sigs[0], pubs[1], sigs[1], false)
	return c.partial.SetWitness(0, witness)
}

func (c *CancelTx) FinalizeAndExtract() (*wire.MsgTx, error) {
	if err := c.Finalize(); err != nil {
		return nil, err
	}
	return c.Extract()
}

func (c *CancelTx) Extract() (*wire.MsgTx, error) {
	return c.partial.Extract()
}

func (c *CancelTx) GetConsumableOutput() (Output, error) {
	out := c.output
	out.OutPoint.Hash = c.partial.UnsignedTx().TxHash()
	return out, nil
}
