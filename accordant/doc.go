// Package accordant is the limited-scripting chain realization: no
// transaction state machine of its own, only the key material the
// arbitrating-chain adaptor secrets ultimately unlock. A swap's spend key
// is the sum of both parties' spend scalars; once one side's adaptor
// secret is revealed on the arbitrating chain (by a Buy or Refund
// broadcast), the counterparty can reconstruct the joint spend key and
// sweep the accordant-chain output unilaterally. This package derives each
// party's keys and binds both spend public keys in a hash commitment
// (JointSpendCommitment); it does not add spend scalars or reconstruct the
// joint spend key.
package accordant
