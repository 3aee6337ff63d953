package btcswap

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/chainswap/swapcore/blockchain"
	"github.com/chainswap/swapcore/swaperr"
)

// SatPerVByte is the arbitrating chain's FeeUnit: satoshis per virtual byte,
// the same unit btcwallet's txrules fee estimator works in.
type SatPerVByte uint64

func (r SatPerVByte) AsNativeUnit() uint64 { return uint64(r) }

var _ blockchain.FeeUnit = SatPerVByte(0)

// Weight estimates a transaction's virtual size in the same BIP-141 sense
// lnd's estimateCommitTxWeight uses: 4*base + witness, scaled down to
// vbytes by WitnessScaleFactor.
func Weight(tx *wire.MsgTx) int64 {
	return mempoolGetTxVirtualSize(tx)
}

func mempoolGetTxVirtualSize(tx *wire.MsgTx) int64 {
	baseSize := tx.SerializeSizeStripped()
	totalSize := tx.SerializeSize()
	witnessSize := totalSize - baseSize

	weight := baseSize*blockchain.WitnessScaleFactor + witnessSize
	vsize := (weight + blockchain.WitnessScaleFactor - 1) / blockchain.WitnessScaleFactor
	return int64(vsize)
}

// SetFee computes the fee amount for an unsigned transaction under the
// given rate: fee = rate (sat/vbyte) * weight(unsigned_tx).
func SetFee(tx *wire.MsgTx, rate SatPerVByte) btcutil.Amount {
	return btcutil.Amount(Weight(tx) * int64(rate))
}

// ValidateFee recomputes a transaction's actual fee as
// sum(inputs) - sum(outputs) and checks it exactly matches
// rate*weight(tx), where rate is the strategy resolved against politic —
// the same single rate SetFee would have used to build tx in the first
// place. A Range strategy collapses to whichever bound politic picks
// before comparison; it is never treated as an acceptable window on its
// own.
func ValidateFee(tx *wire.MsgTx, totalInput btcutil.Amount, strategy blockchain.FeeStrategy[SatPerVByte], politic blockchain.FeePolitic) error {
	var totalOutput btcutil.Amount
	for _, out := range tx.TxOut {
		totalOutput += btcutil.Amount(out.Value)
	}
	if totalOutput > totalInput {
		return swaperr.New(swaperr.NotEnoughAssets)
	}
	actualFee := totalInput - totalOutput

	expectedRate := strategy.Resolve(politic)
	expected := SetFee(tx, expectedRate)

	if actualFee < expected {
		return swaperr.Newf("fee %d below agreed rate's expected fee %d", actualFee, expected)
	}
	if actualFee > expected {
		return swaperr.New(swaperr.AmountOfFeeTooHigh)
	}
	return nil
}
