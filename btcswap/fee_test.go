package btcswap

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/chainswap/swapcore/blockchain"
)

func sampleTx(outputValue int64) *wire.MsgTx {
	tx := wire.NewMsgTx(2)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: 0},
		Witness:          wire.TxWitness{make([]byte, 71), make([]byte, 33)},
	})
	tx.AddTxOut(&wire.TxOut{
		Value:    outputValue,
		PkScript: make([]byte, 34),
	})
	return tx
}

func TestSetFeeScalesWithRate(t *testing.T) {
	tx := sampleTx(100000)
	low := SetFee(tx, SatPerVByte(1))
	high := SetFee(tx, SatPerVByte(10))
	require.Greater(t, int64(high), int64(low))
}

func TestValidateFeeAcceptsExactFixedRate(t *testing.T) {
	tx := sampleTx(0)
	weight := Weight(tx)
	rate := SatPerVByte(5)
	fee := btcutil.Amount(weight * int64(rate))
	tx.TxOut[0].Value = int64(100000 - fee)

	strategy := blockchain.NewFixedFeeStrategy(rate)
	err := ValidateFee(tx, btcutil.Amount(100000), strategy, blockchain.Aggressive)
	require.NoError(t, err)
}

func TestValidateFeeRejectsUnderpayingFixedRate(t *testing.T) {
	tx := sampleTx(0)
	weight := Weight(tx)
	rate := SatPerVByte(5)
	fee := btcutil.Amount(weight*int64(rate)) / 2
	tx.TxOut[0].Value = int64(100000 - fee)

	strategy := blockchain.NewFixedFeeStrategy(rate)
	err := ValidateFee(tx, btcutil.Amount(100000), strategy, blockchain.Aggressive)
	require.Error(t, err)
}

func TestValidateFeeRejectsOverpaying(t *testing.T) {
	tx := sampleTx(0)
	weight := Weight(tx)
	rate := SatPerVByte(5)
	fee := btcutil.Amount(weight*int64(rate)) * 100
	tx.TxOut[0].Value = 1000
	total := fee + btcutil.Amount(tx.TxOut[0].Value)

	strategy := blockchain.NewFixedFeeStrategy(rate)
	err := ValidateFee(tx, total, strategy, blockchain.Aggressive)
	require.Error(t, err)
}

func TestValidateFeeRejectsOutputsExceedingInputs(t *testing.T) {
	tx := sampleTx(200000)
	strategy := blockchain.NewFixedFeeStrategy(SatPerVByte(5))
	err := ValidateFee(tx, btcutil.Amount(100000), strategy, blockchain.Aggressive)
	require.Error(t, err)
}

func TestValidateFeeAcceptsRangeRateMatchingPolitic(t *testing.T) {
	tx := sampleTx(0)
	weight := Weight(tx)
	lowRate := SatPerVByte(1)
	fee := btcutil.Amount(weight * int64(lowRate))
	tx.TxOut[0].Value = int64(100000 - fee)

	strategy := blockchain.NewRangeFeeStrategy(lowRate, SatPerVByte(5))
	err := ValidateFee(tx, btcutil.Amount(100000), strategy, blockchain.Aggressive)
	require.NoError(t, err)
}

func TestValidateFeeRejectsRangeRateNotMatchingPolitic(t *testing.T) {
	tx := sampleTx(0)
	weight := Weight(tx)
	hiRate := SatPerVByte(5)
	fee := btcutil.Amount(weight * int64(hiRate))
	tx.TxOut[0].Value = int64(100000 - fee)

	strategy := blockchain.NewRangeFeeStrategy(SatPerVByte(1), hiRate)
	err := ValidateFee(tx, btcutil.Amount(100000), strategy, blockchain.Aggressive)
	require.Error(t, err)
}
