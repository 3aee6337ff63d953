package message

import (
	"io"

	"github.com/chainswap/swapcore/crypto"
	"github.com/chainswap/swapcore/swapwire"
)

// keyTypeBytes serializes a tagged KeyType to its canonical wire bytes before
// hashing, so a commitment binds both the key's role (arbitrating,
// accordant, or shared-private) and its value — not just the raw bytes,
// which would let a reveal swap in a different KeyType tag carrying the
// same payload.
func keyTypeBytes(k crypto.KeyType) ([]byte, error) {
	return swapwire.EncodeToBytes(&k)
}

// CommitAliceParameters carries Alice's seven key commitments: buy,
// cancel, refund, punish, adaptor, spend, view, in declaration order.
// Each field is a Commitment.CommitTo output, opaque at this layer.
type CommitAliceParameters struct {
	Buy     []byte
	Cancel  []byte
	Refund  []byte
	Punish  []byte
	Adaptor []byte
	Spend   []byte
	View    []byte
}

var _ Message = (*CommitAliceParameters)(nil)

func (*CommitAliceParameters) MsgType() MessageType { return TypeCommitAliceParameters }

func (m *CommitAliceParameters) Encode(w io.Writer) error {
	for _, f := range [][]byte{m.Buy, m.Cancel, m.Refund, m.Punish, m.Adaptor, m.Spend, m.View} {
		if err := swapwire.WriteVarBytes(w, f); err != nil {
			return err
		}
	}
	return nil
}

func (m *CommitAliceParameters) Decode(r io.Reader) error {
	fields := []*[]byte{&m.Buy, &m.Cancel, &m.Refund, &m.Punish, &m.Adaptor, &m.Spend, &m.View}
	for _, f := range fields {
		v, err := swapwire.ReadVarBytes(r)
		if err != nil {
			return err
		}
		*f = v
	}
	return nil
}

// VerifyAlice checks reveal against m's commitments and the cross-group
// DLEQ binding between reveal's spend and adaptor points. Any single
// mismatch rejects the whole reveal.
func (m *CommitAliceParameters) VerifyAlice(reveal *RevealAliceParameters, commitment crypto.Commitment, dleq crypto.DleqProof) error {
	keys := []crypto.KeyType{reveal.Buy, reveal.Cancel, reveal.Refund, reveal.Punish, reveal.Adaptor, reveal.Spend, reveal.View}
	committed := [][]byte{m.Buy, m.Cancel, m.Refund, m.Punish, m.Adaptor, m.Spend, m.View}
	if err := validateKeyCommitments(commitment, keys, committed); err != nil {
		return err
	}
	return dleq.Verify(reveal.Spend.Bytes, reveal.Adaptor.Bytes, reveal.Proof)
}

// CommitBobParameters carries Bob's six key commitments: buy, cancel,
// refund, adaptor, spend, view. Bob has no punish key to commit to.
type CommitBobParameters struct {
	Buy     []byte
	Cancel  []byte
	Refund  []byte
	Adaptor []byte
	Spend   []byte
	View    []byte
}

var _ Message = (*CommitBobParameters)(nil)

func (*CommitBobParameters) MsgType() MessageType { return TypeCommitBobParameters }

func (m *CommitBobParameters) Encode(w io.Writer) error {
	for _, f := range [][]byte{m.Buy, m.Cancel, m.Refund, m.Adaptor, m.Spend, m.View} {
		if err := swapwire.WriteVarBytes(w, f); err != nil {
			return err
		}
	}
	return nil
}

func (m *CommitBobParameters) Decode(r io.Reader) error {
	fields := []*[]byte{&m.Buy, &m.Cancel, &m.Refund, &m.Adaptor, &m.Spend, &m.View}
	for _, f := range fields {
		v, err := swapwire.ReadVarBytes(r)
		if err != nil {
			return err
		}
		*f = v
	}
	return nil
}

// VerifyBob checks reveal against m's commitments and the cross-group
// DLEQ binding, mirroring VerifyAlice for Bob's six-field bundle.
func (m *CommitBobParameters) VerifyBob(reveal *RevealBobParameters, commitment crypto.Commitment, dleq crypto.DleqProof) error {
	keys := []crypto.KeyType{reveal.Buy, reveal.Cancel, reveal.Refund, reveal.Adaptor, reveal.Spend, reveal.View}
	committed := [][]byte{m.Buy, m.Cancel, m.Refund, m.Adaptor, m.Spend, m.View}
	if err := validateKeyCommitments(commitment, keys, committed); err != nil {
		return err
	}
	return dleq.Verify(reveal.Spend.Bytes, reveal.Adaptor.Bytes, reveal.Proof)
}

// validateKeyCommitments checks each opened KeyType against its
// corresponding commitment, over the key's canonical tagged wire bytes
// so a reveal can't swap in a different KeyType tag for the same
// underlying payload.
func validateKeyCommitments(commitment crypto.Commitment, opened []crypto.KeyType, committed [][]byte) error {
	for i, k := range opened {
		b, err := keyTypeBytes(k)
		if err != nil {
			return err
		}
		if !commitment.Validate(b, committed[i]) {
			return invalidCommitment()
		}
	}
	return nil
}
