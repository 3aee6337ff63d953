package message

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainswap/swapcore/crypto"
	"github.com/chainswap/swapcore/datum"
	"github.com/chainswap/swapcore/role"
	"github.com/chainswap/swapcore/swap"
)

type fakeCommitment struct{}

func (fakeCommitment) CommitTo(data []byte) []byte {
	sum := byte(0)
	for _, b := range data {
		sum ^= b
	}
	return []byte{sum}
}

func (f fakeCommitment) Validate(data []byte, commitment []byte) bool {
	got := f.CommitTo(data)
	return len(got) == len(commitment) && got[0] == commitment[0]
}

type fakeDleq struct{ fail bool }

func (f fakeDleq) Generate(seed []byte) ([]byte, []byte, []byte, error) {
	return []byte("spend"), []byte("adaptor"), []byte("proof"), nil
}

func (f fakeDleq) Verify(spendPub, adaptorPub, proof []byte) error {
	if f.fail {
		return invalidProof()
	}
	return nil
}

func roundTrip(t *testing.T, m Message) Message {
	t.Helper()
	b, err := EncodeToBytes(m)
	require.NoError(t, err)
	decoded, err := DecodeFromBytes(b)
	require.NoError(t, err)
	require.Equal(t, m.MsgType(), decoded.MsgType())
	return decoded
}

func TestCommitAliceParametersRoundTrip(t *testing.T) {
	m := &CommitAliceParameters{
		Buy: []byte("buy"), Cancel: []byte("cancel"), Refund: []byte("refund"),
		Punish: []byte("punish"), Adaptor: []byte("adaptor"), Spend: []byte("spend"),
		View: []byte("view"),
	}
	decoded := roundTrip(t, m).(*CommitAliceParameters)
	require.Equal(t, m, decoded)
}

func TestCommitBobParametersRoundTrip(t *testing.T) {
	m := &CommitBobParameters{
		Buy: []byte("buy"), Cancel: []byte("cancel"), Refund: []byte("refund"),
		Adaptor: []byte("adaptor"), Spend: []byte("spend"), View: []byte("view"),
	}
	decoded := roundTrip(t, m).(*CommitBobParameters)
	require.Equal(t, m, decoded)
}

func TestRevealAliceParametersRoundTrip(t *testing.T) {
	m := &RevealAliceParameters{
		Buy:                crypto.NewPublicArbitratingKey([]byte("buypub")),
		Cancel:             crypto.NewPublicArbitratingKey([]byte("cancelpub")),
		Refund:             crypto.NewPublicArbitratingKey([]byte("refundpub")),
		Punish:             crypto.NewPublicArbitratingKey([]byte("punishpub")),
		Adaptor:            crypto.NewPublicArbitratingKey([]byte("adaptorpub")),
		Spend:              crypto.NewPublicAccordantKey([]byte("spendpub")),
		View:               crypto.NewSharedPrivateKey([]byte("viewpriv")),
		DestinationAddress: "bc1qexample",
		Proof:              []byte("dleqproof"),
	}
	decoded := roundTrip(t, m).(*RevealAliceParameters)
	require.Equal(t, m, decoded)
}

func TestCommitRevealVerifySucceedsOnMatchingOpening(t *testing.T) {
	commitment := fakeCommitment{}
	dleq := fakeDleq{}

	reveal := &RevealAliceParameters{
		Buy:     crypto.NewPublicArbitratingKey([]byte("buypub")),
		Cancel:  crypto.NewPublicArbitratingKey([]byte("cancelpub")),
		Refund:  crypto.NewPublicArbitratingKey([]byte("refundpub")),
		Punish:  crypto.NewPublicArbitratingKey([]byte("punishpub")),
		Adaptor: crypto.NewPublicArbitratingKey([]byte("adaptorpub")),
		Spend:   crypto.NewPublicAccordantKey([]byte("spendpub")),
		View:    crypto.NewSharedPrivateKey([]byte("viewpriv")),
		Proof:   []byte("proof"),
	}

	commit := &CommitAliceParameters{}
	fields := []*[]byte{&commit.Buy, &commit.Cancel, &commit.Refund, &commit.Punish, &commit.Adaptor, &commit.Spend, &commit.View}
	opened := []crypto.KeyType{reveal.Buy, reveal.Cancel, reveal.Refund, reveal.Punish, reveal.Adaptor, reveal.Spend, reveal.View}
	for i, k := range opened {
		b, err := keyTypeBytes(k)
		require.NoError(t, err)
		*fields[i] = commitment.CommitTo(b)
	}

	require.NoError(t, commit.VerifyAlice(reveal, commitment, dleq))
}

func TestCommitRevealVerifyRejectsWrongCommitment(t *testing.T) {
	commitment := fakeCommitment{}
	dleq := fakeDleq{}

	reveal := &RevealAliceParameters{
		Buy:     crypto.NewPublicArbitratingKey([]byte("buypub")),
		Cancel:  crypto.NewPublicArbitratingKey([]byte("cancelpub")),
		Refund:  crypto.NewPublicArbitratingKey([]byte("refundpub")),
		Punish:  crypto.NewPublicArbitratingKey([]byte("punishpub")),
		Adaptor: crypto.NewPublicArbitratingKey([]byte("adaptorpub")),
		Spend:   crypto.NewPublicAccordantKey([]byte("spendpub")),
		View:    crypto.NewSharedPrivateKey([]byte("viewpriv")),
		Proof:   []byte("proof"),
	}

	commit := &CommitAliceParameters{
		Buy: []byte{0xff}, Cancel: []byte{0xff}, Refund: []byte{0xff},
		Punish: []byte{0xff}, Adaptor: []byte{0xff}, Spend: []byte{0xff}, View: []byte{0xff},
	}

	err := commit.VerifyAlice(reveal, commitment, dleq)
	require.ErrorIs(t, err, invalidCommitment())
}

func TestCommitRevealVerifyRejectsWrongKeyTag(t *testing.T) {
	commitment := fakeCommitment{}
	dleq := fakeDleq{}

	opened := crypto.NewPublicArbitratingKey([]byte("samebytes"))
	b, err := keyTypeBytes(opened)
	require.NoError(t, err)
	committedHash := commitment.CommitTo(b)

	// Swap in a different tag over the same raw bytes: the commitment
	// must no longer validate, since it binds the tag too.
	retagged := crypto.NewPublicAccordantKey([]byte("samebytes"))

	reveal := &RevealAliceParameters{
		Buy: retagged, Cancel: opened, Refund: opened, Punish: opened,
		Adaptor: opened, Spend: opened, View: opened, Proof: []byte("proof"),
	}
	commit := &CommitAliceParameters{
		Buy: committedHash, Cancel: committedHash, Refund: committedHash,
		Punish: committedHash, Adaptor: committedHash, Spend: committedHash, View: committedHash,
	}

	err = commit.VerifyAlice(reveal, commitment, dleq)
	require.ErrorIs(t, err, invalidCommitment())
}

func TestCoreArbitratingSetupRoundTrip(t *testing.T) {
	m := &CoreArbitratingSetup{
		Lock:      datum.NewLockTx([]byte("locktx")),
		Cancel:    datum.NewCancelTx([]byte("canceltx")),
		Refund:    datum.NewRefundTx([]byte("refundtx")),
		CancelSig: datum.NewSignature(swap.Cancel, role.Bob, crypto.NewRegularSignature([]byte("sig"))),
	}
	decoded := roundTrip(t, m).(*CoreArbitratingSetup)
	require.Equal(t, m, decoded)
}

func TestBuyProcedureSignatureRoundTrip(t *testing.T) {
	m := &BuyProcedureSignature{
		Buy:           datum.NewBuyTx([]byte("buytx")),
		BuyAdaptorSig: datum.NewSignature(swap.Buy, role.Bob, crypto.NewAdaptorSignature([]byte("encsig"))),
	}
	decoded := roundTrip(t, m).(*BuyProcedureSignature)
	require.Equal(t, m, decoded)
}

func TestAbortRoundTripWithAndWithoutBody(t *testing.T) {
	withBody := NewAbort("counterparty timed out")
	decoded := roundTrip(t, withBody).(*Abort)
	require.Equal(t, withBody, decoded)

	withoutBody := NewAbort("")
	decoded2 := roundTrip(t, withoutBody).(*Abort)
	require.False(t, decoded2.HasBody)
}

func TestDecodeFromBytesRejectsTrailingBytes(t *testing.T) {
	m := NewAbort("x")
	b, err := EncodeToBytes(m)
	require.NoError(t, err)
	b = append(b, 0x01)
	_, err = DecodeFromBytes(b)
	require.Error(t, err)
}

func TestReadMessageRejectsUnknownType(t *testing.T) {
	_, err := DecodeFromBytes([]byte{0xff, 0xff})
	require.Error(t, err)
}

func TestSessionOrderingHappyPath(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.AcceptCommitAlice())
	require.NoError(t, s.AcceptCommitBob())
	require.NoError(t, s.AcceptRevealAlice())
	require.NoError(t, s.AcceptRevealBob())
	require.NoError(t, s.AcceptCoreArbitratingSetup())
	require.NoError(t, s.AcceptRefundProcedureSignatures())
	require.NoError(t, s.AcceptBuyProcedureSignature())
}

func TestSessionOrderingRejectsRevealBeforeBothCommits(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.AcceptCommitAlice())
	require.ErrorIs(t, s.AcceptRevealAlice(), outOfOrder())
}

func TestSessionOrderingRejectsSetupBeforeBothReveals(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.AcceptCommitAlice())
	require.NoError(t, s.AcceptCommitBob())
	require.NoError(t, s.AcceptRevealAlice())
	require.ErrorIs(t, s.AcceptCoreArbitratingSetup(), outOfOrder())
}

func TestSessionOrderingRejectsBuyProcedureBeforeRefundProcedure(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.AcceptCommitAlice())
	require.NoError(t, s.AcceptCommitBob())
	require.NoError(t, s.AcceptRevealAlice())
	require.NoError(t, s.AcceptRevealBob())
	require.NoError(t, s.AcceptCoreArbitratingSetup())
	require.ErrorIs(t, s.AcceptBuyProcedureSignature(), outOfOrder())
}

func TestSessionAbortBeforeLockBroadcastThenBlocksFurtherMessages(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.AcceptCommitAlice())
	require.NoError(t, s.AcceptCommitBob())
	require.NoError(t, s.AcceptAbort())
	require.True(t, s.IsAborted())
	require.ErrorIs(t, s.AcceptRevealAlice(), outOfOrder())
}

func TestSessionAbortRejectedAfterLockBroadcast(t *testing.T) {
	s := NewSession()
	s.MarkLockBroadcast()
	require.ErrorIs(t, s.AcceptAbort(), outOfOrder())
}
