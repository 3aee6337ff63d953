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

// BuyTx is the happy path: spends Lock's success (Buy-keys) branch and
// pays the buyer's destination address. Whichever party completes the
// 2-of-2 by adapting the counterparty's encrypted signature reveals, by
// broadcasting, the adaptor secret the counterparty needed all along.
type BuyTx struct {
	partial    *PartialTransaction
	lockOutput Output
	destValue  int64
	sigs       map[string][]byte
}

var _ swap.Buyable[[]byte, *wire.MsgTx, Output] = (*BuyTx)(nil)

// NewBuyTx builds the unsigned Buy transaction spending lock's output and
// paying destPkScript, net of fee.
func NewBuyTx(lock swap.Lockable[[]byte, *wire.MsgTx, Output], destPkScript []byte, fee SatPerVByte) (*BuyTx, error) {
	lockOut, err := lock.GetConsumableOutput()
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(wire.NewTxIn(&lockOut.OutPoint, nil, nil))
	tx.AddTxOut(wire.NewTxOut(lockOut.Value, destPkScript))

	feeAmt := SetFee(tx, fee)
	tx.TxOut[0].Value -= int64(feeAmt)

	partial, err := NewPartialTransaction(tx)
	if err != nil {
		return nil, err
	}

	return &BuyTx{
		partial:    partial,
		lockOutput: lockOut,
		destValue:  tx.TxOut[0].Value,
		sigs:       make(map[string][]byte),
	}, nil
}

func (*BuyTx) Id() swap.TxId { return swap.Buy }

func (b *BuyTx) sigHash() ([]byte, error) {
	hashes := txscript.NewTxSigHashes(b.partial.UnsignedTx(), txscript.NewCannedPrevOutputFetcher(b.lockOutput.RedeemScript, b.lockOutput.Value))
	return txscript.CalcWitnessSigHash(b.lockOutput.RedeemScript, hashes, txscript.SigHashAll, b.partial.UnsignedTx(), 0, b.lockOutput.Value)
}

func (b *BuyTx) GenerateWitness(privkey []byte) ([]byte, error) {
	priv, _ := btcec.PrivKeyFromBytes(privkey)
	sigHash, err := b.sigHash()
	if err != nil {
		return nil, swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	sig := ecdsa.Sign(priv, sigHash)
	return append(sig.Serialize(), byte(txscript.SigHashAll)), nil
}

func (b *BuyTx) VerifyWitness(pubkey []byte, sig []byte) error {
	pub, err := btcec.ParsePubKey(pubkey)
	if err != nil {
		return swaperr.Wrap(swaperr.MissingPublicKey, err)
	}
	parsed, err := ecdsa.ParseDERSignature(sig[:len(sig)-1])
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	sigHash, err := b.sigHash()
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidSignature, err)
	}
	if !parsed.Verify(sigHash, pub) {
		return swaperr.New(swaperr.InvalidSignature)
	}
	return nil
}

func (b *BuyTx) GenerateAdaptorWitness(privkey []byte, adaptorPub []byte) ([]byte, error) {
	priv := secp.PrivKeyFromBytes(privkey)
	adaptor, err := secp.ParsePubKey(adaptorPub)
	if err != nil {
		return nil, swaperr.Wrap(swaperr.MissingPublicKey, err)
	}
	sigHash, err := b.sigHash()
	if err != nil {
		return nil, swaperr.Wrap(swaperr.InvalidAdaptorSignature, err)
	}
	return GenerateAdaptorSignature(priv, sigHash, adaptor)
}

func (b *BuyTx) VerifyAdaptorWitness(pubkey []byte, adaptorPub []byte, sig []byte) error {
	pub, err := secp.ParsePubKey(pubkey)
	if err != nil {
		return swaperr.Wrap(swaperr.MissingPublicKey, err)
	}
	adaptor, err := secp.ParsePubKey(adaptorPub)
	if err != nil {
		return swaperr.Wrap(swaperr.MissingPublicKey, err)
	}
	sigHash, err := b.sigHash()
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidAdaptorSignature, err)
	}
	return VerifyAdaptorSignature(pub, sigHash, adaptor, sig)
}

func (b *BuyTx) AddCooperation(pubkey []byte, sig []byte) error {
	b.sigs[string(pubkey)] = sig
	return nil
}

func (b *BuyTx) Finalize() error {
	if b.partial.Packet.Inputs[0].FinalScriptWitness != nil {
		return nil
	}

	buyA, buyB, _, _, err := lockPubkeys(b.lockOutput.RedeemScript)
	if err != nil {
		return err
	}
	pubs, sigs, err := requireCosigners(b.sigs, buyA, buyB)
	if err != nil {
		return err
	}

	witness := multisigWitness(b.lockOutput.RedeemScript, pubs[0], sigs[0], pubs[1], sigs[1], true)
	return b.partial.SetWitness(0, witness)
}

func (b *BuyTx) FinalizeAndExtract() (*wire.MsgTx, error) {
	if err := b.Finalize(); err != nil {
		return nil, err
	}
	return b.Extract()
}

func (b *BuyTx) Extract() (*wire.MsgTx, error) {
	return b.partial.Extract()
}

// GetConsumableOutput returns Buy's destination output. It carries no
// RedeemScript since Buy is the protocol's terminal happy-path
// transaction: nothing in the swap core spends from it further.
func (b *BuyTx) GetConsumableOutput() (Output, error) {
	return Output{
		OutPoint: wire.OutPoint{Hash: b.partial.UnsignedTx().TxHash(), Index: 0},
		Value:    b.destValue,
	}, nil
}
