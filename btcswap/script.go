package btcswap

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/chainswap/swapcore/script"
	"github.com/chainswap/swapcore/swaperr"
)

// sortedMultiSigScript generates the 2-of-2 multisig redeem script used by
// every DataLock's success path, following lnd's genMultiSigScript:
// pubkeys are lexicographically sorted so that the spending witness's
// signature order is deterministic regardless of caller order.
func sortedMultiSigScript(a, b *btcec.PublicKey) ([]byte, error) {
	aBytes, bBytes := a.SerializeCompressed(), b.SerializeCompressed()
	if bytes.Compare(aBytes, bBytes) == -1 {
		aBytes, bBytes = bBytes, aBytes
	}

	builder := txscript.NewScriptBuilder()
	builder.AddOp(txscript.OP_2)
	builder.AddData(aBytes)
	builder.AddData(bBytes)
	builder.AddOp(txscript.OP_2)
	builder.AddOp(txscript.OP_CHECKMULTISIG)
	return builder.Script()
}

// BuildDataLock constructs the redeem script for a DataLock: the Buy
// multisig's 2-of-2 success path, or after Timelock a fallback to the
// Cancel multisig's 2-of-2. The branch shape is:
//
//	OP_IF
//	    OP_2 <alice_buy> <bob_buy> OP_2 OP_CHECKMULTISIG
//	OP_ELSE
//	    <timelock> OP_CHECKSEQUENCEVERIFY OP_DROP
//	    OP_2 <alice_cancel> <bob_cancel> OP_2 OP_CHECKMULTISIG
//	OP_ENDIF
func BuildDataLock(lock *script.DataLock[*btcec.PublicKey]) ([]byte, error) {
	success, err := sortedMultiSigScript(lock.Success.Alice, lock.Success.Bob)
	if err != nil {
		return nil, err
	}
	fallback, err := sortedMultiSigScript(lock.Fallback.Alice, lock.Fallback.Bob)
	if err != nil {
		return nil, err
	}

	builder := txscript.NewScriptBuilder()
	builder.AddOp(txscript.OP_IF)
	builder.AddOps(success)
	builder.AddOp(txscript.OP_ELSE)
	builder.AddInt64(int64(lock.Timelock.AsUInt32()))
	builder.AddOp(txscript.OP_CHECKSEQUENCEVERIFY)
	builder.AddOp(txscript.OP_DROP)
	builder.AddOps(fallback)
	builder.AddOp(txscript.OP_ENDIF)
	return builder.Script()
}

// BuildDataPunishableLock constructs the redeem script for a
// DataPunishableLock: a 2-of-2 success path, or after the timelock a
// unilateral failure path paying the punish key. The branch shape follows
// the original protocol's cancel output script exactly:
//
//	OP_IF
//	    OP_2 <alice> <bob> OP_2 OP_CHECKMULTISIG
//	OP_ELSE
//	    <timelock> OP_CHECKSEQUENCEVERIFY OP_DROP
//	    <punish> OP_CHECKSIG
//	OP_ENDIF
func BuildDataPunishableLock(lock *script.DataPunishableLock[*btcec.PublicKey]) ([]byte, error) {
	multisig, err := sortedMultiSigScript(lock.Success.Alice, lock.Success.Bob)
	if err != nil {
		return nil, err
	}

	builder := txscript.NewScriptBuilder()
	builder.AddOp(txscript.OP_IF)
	builder.AddOps(multisig)
	builder.AddOp(txscript.OP_ELSE)
	builder.AddInt64(int64(lock.Timelock.AsUInt32()))
	builder.AddOp(txscript.OP_CHECKSEQUENCEVERIFY)
	builder.AddOp(txscript.OP_DROP)
	builder.AddData(lock.Failure.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIG)
	builder.AddOp(txscript.OP_ENDIF)
	return builder.Script()
}

// witnessScriptHash wraps redeemScript in a P2WSH output script, the same
// shape lnd's witnessScriptHash produces.
func witnessScriptHash(redeemScript []byte) ([]byte, error) {
	scriptHash := chainhash.HashB(redeemScript)
	builder := txscript.NewScriptBuilder()
	builder.AddOp(txscript.OP_0)
	builder.AddData(scriptHash)
	return builder.Script()
}

// plainMultisigWitness builds the witness stack for an unforked 2-of-2
// output (no OP_IF wrapper, used by Funding's consumable output): a nil
// element, the two signatures in pubkey-sorted order, and the redeem
// script.
func plainMultisigWitness(redeemScript []byte, pubA, sigA, pubB, sigB []byte) wire.TxWitness {
	var witness wire.TxWitness
	witness = append(witness, nil)
	if bytes.Compare(pubA, pubB) == -1 {
		witness = append(witness, sigB, sigA)
	} else {
		witness = append(witness, sigA, sigB)
	}
	return append(witness, redeemScript)
}

// multisigWitness builds the witness stack for a 2-of-2 branch nested
// inside an OP_IF/OP_ELSE: a nil element (to eat OP_CHECKMULTISIG's extra
// pop), the two signatures in pubkey-sorted order, the branch selector
// (a single 0x01 byte for the OP_IF branch, an empty element for
// OP_ELSE), and the redeem script.
func multisigWitness(redeemScript []byte, pubA, sigA, pubB, sigB []byte, ifBranch bool) wire.TxWitness {
	var witness wire.TxWitness
	witness = append(witness, nil)
	if bytes.Compare(pubA, pubB) == -1 {
		witness = append(witness, sigB, sigA)
	} else {
		witness = append(witness, sigA, sigB)
	}
	witness = append(witness, branchSelector(ifBranch), redeemScript)
	return witness
}

// failureWitness builds the witness stack for a DataPunishableLock's
// timelock-gated failure path: a single signature under the failure key,
// the empty OP_ELSE selector element, and the redeem script.
func failureWitness(redeemScript []byte, sig []byte) wire.TxWitness {
	return wire.TxWitness{sig, branchSelector(false), redeemScript}
}

func branchSelector(ifBranch bool) []byte {
	if ifBranch {
		return []byte{1}
	}
	return []byte{}
}

// lockPubkeys recovers the four public keys (Buy-pair, then Cancel-pair)
// from a DataLock redeem script by parsing out its data pushes. This
// mirrors the original cancel output parser's skip(11).take(2) offset
// into the disassembled script token stream: the multisig branches are
// nested inside OP_IF/OP_ELSE, so the pubkey pushes are recovered by
// position in the flattened list of data pushes rather than by walking
// the tree of opcodes.
func lockPubkeys(redeemScript []byte) (buyA, buyB, cancelA, cancelB []byte, err error) {
	tokens, err := txscript.PushedData(redeemScript)
	if err != nil {
		return nil, nil, nil, nil, swaperr.Wrap(swaperr.ParseFailed, err)
	}
	if len(tokens) < 4 {
		return nil, nil, nil, nil, swaperr.New(swaperr.ParseFailed)
	}
	last2 := tokens[len(tokens)-2:]
	return tokens[0], tokens[1], last2[0], last2[1], nil
}

// punishableLockPubkeys recovers the Success pair and the Failure key
// from a DataPunishableLock redeem script, by the same flattened data
// push positions lockPubkeys relies on.
func punishableLockPubkeys(redeemScript []byte) (successA, successB, failure []byte, err error) {
	tokens, err := txscript.PushedData(redeemScript)
	if err != nil {
		return nil, nil, nil, swaperr.Wrap(swaperr.ParseFailed, err)
	}
	if len(tokens) < 3 {
		return nil, nil, nil, swaperr.New(swaperr.ParseFailed)
	}
	return tokens[0], tokens[1], tokens[len(tokens)-1], nil
}

// plainMultisigPubkeys recovers the two public keys from an unforked
// 2-of-2 redeem script (Funding's consumable output): no OP_IF wrapper, so
// the two data pushes are the whole of the script's pushed data.
func plainMultisigPubkeys(redeemScript []byte) (pubA, pubB []byte, err error) {
	tokens, err := txscript.PushedData(redeemScript)
	if err != nil {
		return nil, nil, swaperr.Wrap(swaperr.ParseFailed, err)
	}
	if len(tokens) != 2 {
		return nil, nil, swaperr.New(swaperr.ParseFailed)
	}
	return tokens[0], tokens[1], nil
}

// requireCosigners looks up a signature for each of the expected pubkeys
// in sigs, returning them in expected's order. It fails with
// MissingSignature if an expected pubkey hasn't cosigned yet, and with
// MissingPublicKey if sigs holds a cosignature under a pubkey the script
// doesn't call for — a stray entry is never silently accepted in place of
// a required signer.
func requireCosigners(sigs map[string][]byte, expected ...[]byte) (pubs, sigList [][]byte, err error) {
	for _, pub := range expected {
		sig, ok := sigs[string(pub)]
		if !ok {
			return nil, nil, swaperr.New(swaperr.MissingSignature)
		}
		pubs = append(pubs, pub)
		sigList = append(sigList, sig)
	}
	for pub := range sigs {
		recognized := false
		for _, e := range expected {
			if string(e) == pub {
				recognized = true
				break
			}
		}
		if !recognized {
			return nil, nil, swaperr.New(swaperr.MissingPublicKey)
		}
	}
	return pubs, sigList, nil
}
