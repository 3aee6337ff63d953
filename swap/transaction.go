package swap

// Cooperable is implemented by transactions that need a counterparty's
// signature folded in before they can be finalized (Lock, Buy, Cancel,
// Refund). AddCooperation stores the given
// signature keyed by its pubkey for later use by Finalize.
type Cooperable[Sig any] interface {
	AddCooperation(pubkey []byte, sig Sig) error
}

// Finalizable assembles the final witness/signature set, making the
// transaction ready for Extract. Finalize is idempotent: a second call is
// a no-op rather than an error.
type Finalizable interface {
	Finalize() error
}

// Broadcastable extracts a finalized transaction into its chain-native,
// broadcastable form.
type Broadcastable[Tx any] interface {
	Finalizable
	Extract() (Tx, error)
	FinalizeAndExtract() (Tx, error)
}

// Linkable yields the data a downstream transaction needs to spend this
// transaction's output: the consumable output reference plus whatever
// metadata is required to build a valid unlocking witness for it.
type Linkable[Output any] interface {
	GetConsumableOutput() (Output, error)
}

// Signable is implemented by transactions unlocked by an ordinary
// signature over the default (non-timelocked) spending path.
type Signable[Sig any] interface {
	GenerateWitness(privkey []byte) (Sig, error)
	VerifyWitness(pubkey []byte, sig Sig) error
}

// AdaptorSignable is implemented by transactions that can additionally be
// unlocked via an adaptor signature tied to a given adaptor public key.
type AdaptorSignable[Sig any] interface {
	GenerateAdaptorWitness(privkey []byte, adaptorPub []byte) (Sig, error)
	VerifyAdaptorWitness(pubkey []byte, adaptorPub []byte, sig Sig) error
}

// Forkable is implemented by transactions whose consumable output has two
// spending paths — a cooperative success path and a unilateral,
// timelock-gated failure path — and exposes witness generation/
// verification for the failure path only (the success path is handled by
// Signable/Cooperable on the sibling transaction that shares the script).
type Forkable[Sig any] interface {
	GenerateFailureWitness(privkey []byte) (Sig, error)
	VerifyFailureWitness(pubkey []byte, sig Sig) error
}

// Fundable represents the external funding transaction: created outside
// the swap core by an external wallet, and injected into it once observed
// on-chain.
type Fundable[Output any] interface {
	Linkable[Output]
	Id() TxId
}

// Lockable represents the Lock transaction: spends Funding, pays into the
// DataLock script that Buy and Cancel can later spend.
type Lockable[Sig any, Tx any, Output any] interface {
	Signable[Sig]
	Broadcastable[Tx]
	Linkable[Output]
	Cooperable[Sig]
	Id() TxId
}

// Buyable represents the Buy transaction: the happy path, spends Lock and
// pays the buyer while revealing Alice's adaptor secret.
type Buyable[Sig any, Tx any, Output any] interface {
	Signable[Sig]
	AdaptorSignable[Sig]
	Broadcastable[Tx]
	Linkable[Output]
	Cooperable[Sig]
	Id() TxId
}

// Cancelable represents the Cancel transaction: the unhappy path, spends
// Lock after its timelock and produces a new punishable lock consumed by
// Refund or Punish.
type Cancelable[Sig any, Tx any, Output any] interface {
	Forkable[Sig]
	Broadcastable[Tx]
	Linkable[Output]
	Cooperable[Sig]
	Id() TxId
}

// Refundable represents the Refund transaction: spends Cancel, returns
// funds to their original owner while revealing Bob's adaptor secret.
type Refundable[Sig any, Tx any, Output any] interface {
	Signable[Sig]
	AdaptorSignable[Sig]
	Broadcastable[Tx]
	Linkable[Output]
	Cooperable[Sig]
	Id() TxId
}

// Punishable represents the Punish transaction: spends Cancel after its
// timelock, giving Alice a unilateral spend of the counterparty's funds
// without revealing any accordant-side secret.
type Punishable[Sig any, Tx any, Output any] interface {
	Forkable[Sig]
	Broadcastable[Tx]
	Linkable[Output]
	Id() TxId
}
