// Package btcswap is the Bitcoin-shaped realization of the arbitrating
// chain (C7): it binds the abstract crypto, script and swap transaction
// interfaces to btcsuite/btcd's secp256k1 curve, script engine, and PSBT
// partial-transaction representation.
//
// Key derivation, multisig script construction and weight estimation
// follow lnd's lnwallet conventions; the adaptor-signature and
// cross-group DLEQ primitives are new, grounded on the Schnorr scheme
// shipped in github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr.
package btcswap
