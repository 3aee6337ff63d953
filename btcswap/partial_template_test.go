package btcswap

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/chainswap/swapcore/script"
	"github.com/chainswap/swapcore/swaperr"
)

// TestNewLockTxFromPartialAcceptsMatchingTemplate exercises the counterparty
// path: Bob builds a Lock transaction locally, serializes it the way
// CoreArbitratingSetup would carry it, and Alice reconstructs it from those
// raw bytes plus the DataLock both sides already agreed to.
func TestNewLockTxFromPartialAcceptsMatchingTemplate(t *testing.T) {
	_, alicePub := genPriv(1)
	_, bobPub := genPriv(2)

	fundingRedeem, err := sortedMultiSigScript(alicePub, bobPub)
	require.NoError(t, err)
	fundingPkScript, err := witnessScriptHash(fundingRedeem)
	require.NoError(t, err)

	fundingTx := wire.NewMsgTx(2)
	fundingTx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Index: 0}, nil, nil))
	fundingTx.AddTxOut(wire.NewTxOut(1000000, fundingPkScript))
	funding := &FundingTx{Tx: fundingTx, OutputIndex: 0, RedeemScript: fundingRedeem}

	_, buyAlicePub := genPriv(3)
	_, buyBobPub := genPriv(4)
	_, cancelAlicePub := genPriv(5)
	_, cancelBobPub := genPriv(6)

	lockScript := &script.DataLock[*btcec.PublicKey]{
		Timelock: blockTimelock(144),
		Success:  script.Success2of2[*btcec.PublicKey]{Alice: buyAlicePub, Bob: buyBobPub},
		Fallback: script.Success2of2[*btcec.PublicKey]{Alice: cancelAlicePub, Bob: cancelBobPub},
	}

	bobsLockTx, err := NewLockTx(funding, lockScript, SatPerVByte(2))
	require.NoError(t, err)

	raw, err := bobsLockTx.partial.Serialize()
	require.NoError(t, err)

	fundingOut, err := funding.GetConsumableOutput()
	require.NoError(t, err)

	alicesLockTx, err := NewLockTxFromPartial(raw, fundingOut, lockScript)
	require.NoError(t, err)
	require.NoError(t, alicesLockTx.VerifyTemplate(lockScript))
}

// TestNewLockTxFromPartialRejectsSubstitutedScript catches a counterparty
// that sends a Lock template paying into a script built from different
// parameters than what was agreed during commit/reveal.
func TestNewLockTxFromPartialRejectsSubstitutedScript(t *testing.T) {
	_, alicePub := genPriv(1)
	_, bobPub := genPriv(2)

	fundingRedeem, err := sortedMultiSigScript(alicePub, bobPub)
	require.NoError(t, err)
	fundingPkScript, err := witnessScriptHash(fundingRedeem)
	require.NoError(t, err)

	fundingTx := wire.NewMsgTx(2)
	fundingTx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Index: 0}, nil, nil))
	fundingTx.AddTxOut(wire.NewTxOut(1000000, fundingPkScript))
	funding := &FundingTx{Tx: fundingTx, OutputIndex: 0, RedeemScript: fundingRedeem}

	_, buyAlicePub := genPriv(3)
	_, buyBobPub := genPriv(4)
	_, cancelAlicePub := genPriv(5)
	_, cancelBobPub := genPriv(6)

	agreed := &script.DataLock[*btcec.PublicKey]{
		Timelock: blockTimelock(144),
		Success:  script.Success2of2[*btcec.PublicKey]{Alice: buyAlicePub, Bob: buyBobPub},
		Fallback: script.Success2of2[*btcec.PublicKey]{Alice: cancelAlicePub, Bob: cancelBobPub},
	}

	_, strayPub := genPriv(99)
	substituted := &script.DataLock[*btcec.PublicKey]{
		Timelock: blockTimelock(144),
		Success:  script.Success2of2[*btcec.PublicKey]{Alice: strayPub, Bob: buyBobPub},
		Fallback: script.Success2of2[*btcec.PublicKey]{Alice: cancelAlicePub, Bob: cancelBobPub},
	}

	bobsLockTx, err := NewLockTx(funding, substituted, SatPerVByte(2))
	require.NoError(t, err)

	raw, err := bobsLockTx.partial.Serialize()
	require.NoError(t, err)

	fundingOut, err := funding.GetConsumableOutput()
	require.NoError(t, err)

	_, err = NewLockTxFromPartial(raw, fundingOut, agreed)
	require.ErrorIs(t, err, swaperr.New(swaperr.InvalidCommitment))
}

// TestNewCancelTxFromPartialAcceptsMatchingTemplate mirrors the Lock-side
// test for CancelTx's counterparty-bytes constructor.
func TestNewCancelTxFromPartialAcceptsMatchingTemplate(t *testing.T) {
	alicePriv, alicePub := genPriv(1)
	bobPriv, bobPub := genPriv(2)

	fundingRedeem, err := sortedMultiSigScript(alicePub, bobPub)
	require.NoError(t, err)
	fundingPkScript, err := witnessScriptHash(fundingRedeem)
	require.NoError(t, err)

	fundingTx := wire.NewMsgTx(2)
	fundingTx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Index: 0}, nil, nil))
	fundingTx.AddTxOut(wire.NewTxOut(1000000, fundingPkScript))
	funding := &FundingTx{Tx: fundingTx, OutputIndex: 0, RedeemScript: fundingRedeem}

	_, buyAlicePub := genPriv(3)
	_, buyBobPub := genPriv(4)
	_, cancelAlicePub := genPriv(5)
	_, cancelBobPub := genPriv(6)

	lockScript := &script.DataLock[*btcec.PublicKey]{
		Timelock: blockTimelock(144),
		Success:  script.Success2of2[*btcec.PublicKey]{Alice: buyAlicePub, Bob: buyBobPub},
		Fallback: script.Success2of2[*btcec.PublicKey]{Alice: cancelAlicePub, Bob: cancelBobPub},
	}
	lockTx, err := NewLockTx(funding, lockScript, SatPerVByte(2))
	require.NoError(t, err)

	sigAlice, err := lockTx.GenerateWitness(alicePriv.Serialize())
	require.NoError(t, err)
	sigBob, err := lockTx.GenerateWitness(bobPriv.Serialize())
	require.NoError(t, err)
	require.NoError(t, lockTx.AddCooperation(alicePub.SerializeCompressed(), sigAlice))
	require.NoError(t, lockTx.AddCooperation(bobPub.SerializeCompressed(), sigBob))
	_, err = lockTx.FinalizeAndExtract()
	require.NoError(t, err)

	_, failureAlicePub := genPriv(7)
	punishableScript := &script.DataPunishableLock[*btcec.PublicKey]{
		Timelock: blockTimelock(288),
		Success:  script.Success2of2[*btcec.PublicKey]{Alice: cancelAlicePub, Bob: cancelBobPub},
		Failure:  failureAlicePub,
	}

	bobsCancelTx, err := NewCancelTx(lockTx, 144, punishableScript, SatPerVByte(2))
	require.NoError(t, err)

	raw, err := bobsCancelTx.partial.Serialize()
	require.NoError(t, err)

	lockOut, err := lockTx.GetConsumableOutput()
	require.NoError(t, err)

	alicesCancelTx, err := NewCancelTxFromPartial(raw, lockOut, punishableScript)
	require.NoError(t, err)
	require.NoError(t, alicesCancelTx.VerifyTemplate(punishableScript))
}

// TestNewCancelTxFromPartialRejectsSubstitutedScript mirrors the Lock-side
// rejection test for CancelTx.
func TestNewCancelTxFromPartialRejectsSubstitutedScript(t *testing.T) {
	alicePriv, alicePub := genPriv(1)
	bobPriv, bobPub := genPriv(2)

	fundingRedeem, err := sortedMultiSigScript(alicePub, bobPub)
	require.NoError(t, err)
	fundingPkScript, err := witnessScriptHash(fundingRedeem)
	require.NoError(t, err)

	fundingTx := wire.NewMsgTx(2)
	fundingTx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Index: 0}, nil, nil))
	fundingTx.AddTxOut(wire.NewTxOut(1000000, fundingPkScript))
	funding := &FundingTx{Tx: fundingTx, OutputIndex: 0, RedeemScript: fundingRedeem}

	_, buyAlicePub := genPriv(3)
	_, buyBobPub := genPriv(4)
	_, cancelAlicePub := genPriv(5)
	_, cancelBobPub := genPriv(6)

	lockScript := &script.DataLock[*btcec.PublicKey]{
		Timelock: blockTimelock(144),
		Success:  script.Success2of2[*btcec.PublicKey]{Alice: buyAlicePub, Bob: buyBobPub},
		Fallback: script.Success2of2[*btcec.PublicKey]{Alice: cancelAlicePub, Bob: cancelBobPub},
	}
	lockTx, err := NewLockTx(funding, lockScript, SatPerVByte(2))
	require.NoError(t, err)

	sigAlice, err := lockTx.GenerateWitness(alicePriv.Serialize())
	require.NoError(t, err)
	sigBob, err := lockTx.GenerateWitness(bobPriv.Serialize())
	require.NoError(t, err)
	require.NoError(t, lockTx.AddCooperation(alicePub.SerializeCompressed(), sigAlice))
	require.NoError(t, lockTx.AddCooperation(bobPub.SerializeCompressed(), sigBob))
	_, err = lockTx.FinalizeAndExtract()
	require.NoError(t, err)

	_, failureAlicePub := genPriv(7)
	agreed := &script.DataPunishableLock[*btcec.PublicKey]{
		Timelock: blockTimelock(288),
		Success:  script.Success2of2[*btcec.PublicKey]{Alice: cancelAlicePub, Bob: cancelBobPub},
		Failure:  failureAlicePub,
	}

	_, strayPub := genPriv(98)
	substituted := &script.DataPunishableLock[*btcec.PublicKey]{
		Timelock: blockTimelock(288),
		Success:  script.Success2of2[*btcec.PublicKey]{Alice: cancelAlicePub, Bob: cancelBobPub},
		Failure:  strayPub,
	}

	bobsCancelTx, err := NewCancelTx(lockTx, 144, substituted, SatPerVByte(2))
	require.NoError(t, err)

	raw, err := bobsCancelTx.partial.Serialize()
	require.NoError(t, err)

	lockOut, err := lockTx.GetConsumableOutput()
	require.NoError(t, err)

	_, err = NewCancelTxFromPartial(raw, lockOut, agreed)
	require.ErrorIs(t, err, swaperr.New(swaperr.InvalidCommitment))
}
