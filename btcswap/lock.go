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

// LockTx spends Funding's output into a DataLock script: a Buy-keys 2-of-2
// success path, or a Cancel-keys 2-of-2 fallback after Timelock. It is
// signed by both parties (a standard p2wsh cooperative spend), never
// adaptor-signed.
type LockTx struct {
	partial      *PartialTransaction
	fundingInput Output
	lockScript   []byte
	output       Output
	sigs         map[string][]byte
}

var _ swap.Lockable[[]byte, *wire.MsgTx, Output] = (*LockTx)(nil)

// NewLockTx builds the unsigned Lock transaction spending prev's
// consumable output into a DataLock paying amount minus fee back into a
// fresh P2WSH output.
func NewLockTx(prev swap.Fundable[Output], lock *script.DataLock[*btcec.PublicKey], fee SatPerVByte) (*LockTx, error) {
	fundingOut, err := prev.GetConsumableOutput()
	if err != nil {
		return nil, err
	}

	redeemScript, err := BuildDataLock(lock)
	if err != nil {
		return nil, err
	}
	pkScript, err := witnessScriptHash(redeemScript)
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(wire.NewTxIn(&fundingOut.OutPoint, nil, nil))
	tx.AddTxOut(wire.NewTxOut(fundingOut.Value, pkScript))

	feeAmt := SetFee(tx, fee)
	tx.TxOut[0].Value -= int64(feeAmt)

	partial, err := NewPartialTransaction(tx)
	if err != nil {
		return nil, err
	}

	return &LockTx{
		partial:      partial,
		fundingInput: fundingOut,
		lockScript:   redeemScript,
		sigs:         make(map[string][]byte),
		output: Output{
			OutPoint:     wire.OutPoint{Index: 0},
			Value:        tx.TxOut[0].Value,
			RedeemScript: redeemScript,
		},
	}, nil
}

// NewLockTxFromPartial wraps a counterparty-supplied serialized Lock
// partial transaction (as carried by CoreArbitratingSetup), verifying its
// sole output actually pays into the DataLock script both parties agreed
// to during the commit/reveal exchange before returning a LockTx ready
// for cosigning. A counterparty that substitutes a different script while
// keeping everything else about the message intact is rejected here,
// before either GenerateWitness or AddCooperation ever runs over it.
func NewLockTxFromPartial(raw []byte, fundingOut Output, lock *script.DataLock[*btcec.PublicKey]) (*LockTx, error) {
	partial, err := ParsePartialTransaction(raw)
	if err != nil {
		return nil, err
	}

	redeemScript, err := BuildDataLock(lock)
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

	return &LockTx{
		partial:      partial,
		fundingInput: fundingOut,
		lockScript:   redeemScript,
		sigs:         make(map[string][]byte),
		output: Output{
			OutPoint:     wire.OutPoint{Index: 0},
			Value:        tx.TxOut[0].Value,
			RedeemScript: redeemScript,
		},
	}, nil
}

// VerifyTemplate re-derives the expected DataLock witness script and
// compares it byte-for-byte against the script this LockTx actually
// holds. NewLockTx and NewLockTxFromPartial both already enforce this at
// construction time; VerifyTemplate lets a caller holding a *LockTx from
// any other source re-check it against a (possibly updated) agreed
// DataLock before cosigning.
func (l *LockTx) VerifyTemplate(lock *script.DataLock[*btcec.PublicKey]) error {
	expected, err := BuildDataLock(lock)
	if err != nil {
		return err
	}
	if !bytes.Equal(l.lockScript, expected) {
		return swaperr.New(swaperr.InvalidCommitment)
	}
	return nil
}

func (*LockTx) Id() swap.TxId { return swap.Lock }

// GenerateWitness signs the Funding input under privkey, producing one
// half of the 2-of-2 cosignature needed to finalize.
func (l *LockTx) GenerateWitness(privkey []byte) ([]byte, error) {
	priv, _ := btcec.PrivKeyFromBytes(privkey)
	hashes := txscript.NewTxSigHashes(l.partial.UnsignedTx(), txscript.NewCannedPrevOutputFetcher(l.fundingInput.RedeemScript, l.fundingInput.Value))
	sigHash, err := txscript.CalcWitnessSigHash(l.fundingInput.RedeemScript, hashes, txscript.SigHashAll, l.partial.UnsignedTx(), 0, l.fundingInput.Value)
	if err != nil {
		return nil, swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	sig := ecdsa.Sign(priv, sigHash)
	return append(sig.Serialize(), byte(txscript.SigHashAll)), nil
}

// VerifyWitness checks a counterparty's Funding-input signature.
func (l *LockTx) VerifyWitness(pubkey []byte, sig []byte) error {
	pub, err := btcec.ParsePubKey(pubkey)
	if err != nil {
		return swaperr.Wrap(swaperr.MissingPublicKey, err)
	}
	parsed, err := ecdsa.ParseDERSignature(sig[:len(sig)-1])
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	hashes := txscript.NewTxSigHashes(l.partial.UnsignedTx(), txscript.NewCannedPrevOutputFetcher(l.fundingInput.RedeemScript, l.fundingInput.Value))
	sigHash, err := txscript.CalcWitnessSigHash(l.fundingInput.RedeemScript, hashes, txscript.SigHashAll, l.partial.UnsignedTx(), 0, l.fundingInput.Value)
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	if !parsed.Verify(sigHash, pub) {
		return swaperr.New(swaperr.InvalidSignature)
	}
	return nil
}

// AddCooperation stores one party's signature over the Funding input,
// keyed by pubkey. Finalize needs exactly two entries to assemble the
// spending witness.
func (l *LockTx) AddCooperation(pubkey []byte, sig []byte) error {
	l.sigs[string(pubkey)] = sig
	return nil
}

func (l *LockTx) Finalize() error {
	if l.partial.Packet.Inputs[0].FinalScriptWitness != nil {
		return nil
	}

	fundA, fundB, err := plainMultisigPubkeys(l.fundingInput.RedeemScript)
	if err != nil {
		return err
	}
	pubs, sigs, err := requireCosigners(l.sigs, fundA, fundB)
	if err != nil {
		return err
	}

	witness := plainMultisigWitness(l.fundingInput.RedeemScript, pubs[0], sigs[0], pubs[1], sigs[1])
	return l.partial.SetWitness(0, witness)
}

func (l *LockTx) FinalizeAndExtract() (*wire.MsgTx, error) {
	if err := l.Finalize(); err != nil {
		return nil, err
	}
	return l.Extract()
}

func (l *LockTx) Extract() (*wire.MsgTx, error) {
	return l.partial.Extract()
}

func (l *LockTx) GetConsumableOutput() (Output, error) {
	out := l.output
	out.OutPoint.Hash = l.partial.UnsignedTx().TxHash()
	return out, nil
}
