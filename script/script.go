// Package script defines the two abstract script data shapes used by the
// arbitrating-chain realization (C4): DataLock and DataPunishableLock.
// Both are 2-of-2 multisig success paths with a timelocked fallback; the
// concrete script bytes are generated by the realization package (e.g.
// btcswap), not here.
package script

import "github.com/chainswap/swapcore/blockchain"

// Success2of2 names the two public keys whose joint signature unlocks a
// script's default (non-timelocked) path.
type Success2of2[Pub any] struct {
	Alice Pub
	Bob   Pub
}

// DataLock is produced at Lock: a 2-of-2 success path (the Buy multisig),
// or after Timelock a fallback to the Cancel multisig. Lock's timelock
// must be strictly less than the punishable lock's timelock so Cancel
// becomes spendable before Punish can fire.
type DataLock[Pub any] struct {
	Timelock blockchain.Timelock
	Success  Success2of2[Pub]
	Fallback Success2of2[Pub]
}

// DataPunishableLock is produced at Cancel: a 2-of-2 success path (the
// Refund multisig), or after Timelock a unilateral fallback spendable only
// by Failure — the victim's punish key.
type DataPunishableLock[Pub any] struct {
	Timelock blockchain.Timelock
	Success  Success2of2[Pub]
	Failure  Pub
}
