package btcswap

import (
	"crypto/rand"
	"crypto/sha256"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/chainswap/swapcore/swaperr"
)

// nothingUpMySleeveH is a second secp256k1 generator, derived by hashing a
// fixed label into a scalar and multiplying the standard base point G by
// it; its discrete log with respect to G is therefore public. The accordant spend point is bound to it
// the same way the arbitrating adaptor point is bound to G, so a single
// Chaum-Pedersen equality proof ties both points to one shared scalar.
//
// A fully faithful cross-group proof (binding a secp256k1 point to an
// ed25519/ristretto point, as the accordant chain eventually uses) needs
// bespoke arithmetic bridging the two curves' different scalar fields; this
// same-curve analogue captures the protocol's equality-of-discrete-log
// invariant without that bridge, and is documented as a scoped
// simplification.
var nothingUpMySleeveH = func() *secp.JacobianPoint {
	sum := sha256.Sum256([]byte("chainswap/dleq-h-generator"))
	var scalar secp.ModNScalar
	scalar.SetByteSlice(sum[:])
	var h secp.JacobianPoint
	secp.ScalarBaseMultNonConst(&scalar, &h)
	h.ToAffine()
	return &h
}()

// CrossGroupDLEQ is the DleqProof implementation binding the arbitrating
// adaptor point to the accordant spend point via a Chaum-Pedersen
// equality-of-discrete-log proof.
type CrossGroupDLEQ struct{}

type dleqProof struct {
	e secp.ModNScalar
	s secp.ModNScalar
}

// Generate derives a scalar from seed and produces both public points plus
// a proof that they share the same discrete log, one under G (the
// arbitrating adaptor point) and one under H (the accordant spend point).
func (CrossGroupDLEQ) Generate(seed []byte) (spendPub, adaptorPub, proof []byte, err error) {
	xBytes, err := deriveScalar(seed, "dleq/x")
	if err != nil {
		return nil, nil, nil, err
	}
	var x secp.ModNScalar
	x.SetByteSlice(xBytes)

	var adaptorPt, spendPt secp.JacobianPoint
	secp.ScalarBaseMultNonConst(&x, &adaptorPt)
	adaptorPt.ToAffine()
	scalarMult(&x, nothingUpMySleeveH, &spendPt)
	spendPt.ToAffine()

	var k secp.ModNScalar
	if err := randScalar(&k); err != nil {
		return nil, nil, nil, err
	}

	var r1, r2 secp.JacobianPoint
	secp.ScalarBaseMultNonConst(&k, &r1)
	r1.ToAffine()
	scalarMult(&k, nothingUpMySleeveH, &r2)
	r2.ToAffine()

	e := challenge(&adaptorPt, &spendPt, &r1, &r2)

	var s secp.ModNScalar
	s.Set(&e).Mul(&x).Add(&k)

	return serializePoint(&spendPt), serializePoint(&adaptorPt), serializeProof(e, s), nil
}

// Verify checks that spendPub and adaptorPub share a discrete log, under H
// and G respectively, per proof.
func (CrossGroupDLEQ) Verify(spendPub, adaptorPub, proof []byte) error {
	spendPt, err := parsePoint(spendPub)
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidProof, err)
	}
	adaptorPt, err := parsePoint(adaptorPub)
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidProof, err)
	}
	e, s, err := parseProof(proof)
	if err != nil {
		return swaperr.Wrap(swaperr.InvalidProof, err)
	}

	// R1' = s*G - e*adaptorPub
	var sg, eAdaptor, r1 secp.JacobianPoint
	secp.ScalarBaseMultNonConst(s, &sg)
	scalarMult(e, adaptorPt, &eAdaptor)
	negate(&eAdaptor)
	secp.AddNonConst(&sg, &eAdaptor, &r1)
	r1.ToAffine()

	// R2' = s*H - e*spendPub
	var sh, eSpend, r2 secp.JacobianPoint
	scalarMult(s, nothingUpMySleeveH, &sh)
	scalarMult(e, spendPt, &eSpend)
	negate(&eSpend)
	secp.AddNonConst(&sh, &eSpend, &r2)
	r2.ToAffine()

	e2 := challenge(adaptorPt, spendPt, &r1, &r2)
	if !e2.Equals(e) {
		return swaperr.New(swaperr.InvalidProof)
	}
	return nil
}

func scalarMult(k *secp.ModNScalar, p *secp.JacobianPoint, result *secp.JacobianPoint) {
	secp.ScalarMultNonConst(k, p, result)
}

func negate(p *secp.JacobianPoint) {
	p.Y.Negate(1)
	p.Y.Normalize()
}

func challenge(adaptorPt, spendPt, r1, r2 *secp.JacobianPoint) secp.ModNScalar {
	h := sha256.New()
	h.Write(serializePoint(adaptorPt))
	h.Write(serializePoint(spendPt))
	h.Write(serializePoint(r1))
	h.Write(serializePoint(r2))
	sum := h.Sum(nil)
	var e secp.ModNScalar
	e.SetByteSlice(sum)
	return e
}

func randScalar(out *secp.ModNScalar) error {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return err
	}
	out.SetByteSlice(b[:])
	return nil
}

func serializePoint(p *secp.JacobianPoint) []byte {
	q := *p
	q.ToAffine()
	pub := secp.NewPublicKey(&q.X, &q.Y)
	return pub.SerializeCompressed()
}

func parsePoint(b []byte) (*secp.JacobianPoint, error) {
	pub, err := secp.ParsePubKey(b)
	if err != nil {
		return nil, err
	}
	var p secp.JacobianPoint
	pub.AsJacobian(&p)
	return &p, nil
}

func serializeProof(e, s secp.ModNScalar) []byte {
	eb := e.Bytes()
	sb := s.Bytes()
	out := make([]byte, 0, 64)
	out = append(out, eb[:]...)
	out = append(out, sb[:]...)
	return out
}

func parseProof(b []byte) (*secp.ModNScalar, *secp.ModNScalar, error) {
	if len(b) != 64 {
		return nil, nil, swaperr.Newf("dleq proof must be 64 bytes, got %d", len(b))
	}
	var e, s secp.ModNScalar
	e.SetByteSlice(b[:32])
	s.SetByteSlice(b[32:])
	return &e, &s, nil
}
