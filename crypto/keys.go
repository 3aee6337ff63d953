// Package crypto defines the per-chain cryptographic capability traits
// consumed by the swap core (C2): key types, signature types, commitments,
// and the cross-group DLEQ proof. Concrete cryptographic math lives in a
// realization package (e.g. btcswap, accordant); this package only pins
// down the shapes those realizations must expose.
package crypto

// ArbitratingKey enumerates the key roles an arbitrating-chain keypair can
// play within a swap. The set is closed: adding a key role is a protocol
// version bump, not a runtime extension point.
type ArbitratingKey int

const (
	Fund ArbitratingKey = iota
	Buy
	Cancel
	Refund
	Punish
	Adaptor
)

func (k ArbitratingKey) String() string {
	switch k {
	case Fund:
		return "fund"
	case Buy:
		return "buy"
	case Cancel:
		return "cancel"
	case Refund:
		return "refund"
	case Punish:
		return "punish"
	case Adaptor:
		return "adaptor"
	default:
		return "unknown"
	}
}

// AccordantKey enumerates the key roles an accordant-chain keypair can
// play. Today the only closed-form member is Spend.
type AccordantKey int

const (
	Spend AccordantKey = iota
)

func (k AccordantKey) String() string {
	return "spend"
}

// SharedPrivateKey enumerates private-key material that, unlike a normal
// private key, is meant to be disclosed to the counterparty as part of the
// protocol (e.g. a view key on a privacy-preserving accordant chain).
type SharedPrivateKey int

const (
	View SharedPrivateKey = iota
)

func (k SharedPrivateKey) String() string {
	return "view"
}

// Keys is implemented once per chain and crypto engine; it defines the
// private/public key pair types used by that chain and the canonical byte
// form of a public key, which doubles as commitment-hash input and wire
// payload.
type Keys interface {
	// PublicKeyBytes returns the canonical serialized form of a public
	// key, used both on the wire and as commitment hash input.
	PublicKeyBytes() []byte
}

// FromSeed is implemented by a chain's key-derivation logic. Derivation
// must be a deterministic, pure function of (seed, key id): calling it
// twice with the same arguments yields bit-identical output. This is the
// only sanctioned source of protocol keys; generating a fresh random key
// mid-protocol is a protocol violation.
type FromSeed[K comparable, Priv any, Pub any] interface {
	PrivateKey(seed []byte, id K) (Priv, error)
	PublicKey(seed []byte, id K) (Pub, error)
}

// Commitment is a hiding, binding commitment scheme: Commit produces a
// commitment to a byte string, Validate checks whether a later-revealed
// byte string matches an earlier commitment.
type Commitment interface {
	// CommitTo hashes the given bytes into a commitment value.
	CommitTo(data []byte) []byte
	// Validate reports whether data matches the given commitment.
	Validate(data []byte, commitment []byte) bool
}

// DleqProof witnesses that an accordant spend point and an arbitrating
// adaptor point are discrete logs of a single scalar across two different
// groups. Without this proof, learning one scalar from on-chain disclosure
// does not imply knowledge of the other.
type DleqProof interface {
	// Generate derives the spend/adaptor public points from a seed,
	// deterministically, together with a proof linking them; the proof
	// bytes may differ between calls with the same seed.
	Generate(seed []byte) (spendPub []byte, adaptorPub []byte, proof []byte, err error)
	// Verify checks the proof against the claimed points.
	Verify(spendPub []byte, adaptorPub []byte, proof []byte) error
}
