package btcswap

import (
	"crypto/sha256"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/chainswap/swapcore/crypto"
	"github.com/chainswap/swapcore/swaperr"
)

// AdaptorSignatures implements crypto.Signatures via an encrypted Schnorr
// signature: the adaptor (encrypted) signature's s-scalar omits the
// adaptor secret t; adapting adds t, recovering subtracts the encrypted
// signature's s-scalar from the adapted one. This is the standard
// adaptor-signature construction used by PTLC-style cross-chain swaps.
type AdaptorSignatures struct{}

var _ crypto.Signatures = AdaptorSignatures{}

// adaptorSig is the wire shape of an encrypted signature: the nonce point
// R' (33 compressed bytes) and the scalar s' (32 bytes).
type adaptorSig struct {
	rPrime *secp.PublicKey
	sPrime secp.ModNScalar
}

// GenerateAdaptorSignature produces an adaptor signature over msg under
// privkey, encrypted against adaptorPub (a public point T = t*G for some
// secret t unknown to the signer).
func GenerateAdaptorSignature(privkey *secp.PrivateKey, msg []byte, adaptorPub *secp.PublicKey) ([]byte, error) {
	var k secp.ModNScalar
	if err := randScalar(&k); err != nil {
		return nil, err
	}

	var rPrimeJac secp.JacobianPoint
	secp.ScalarBaseMultNonConst(&k, &rPrimeJac)
	rPrimeJac.ToAffine()
	rPrime := secp.NewPublicKey(&rPrimeJac.X, &rPrimeJac.Y)

	var adaptorJac secp.JacobianPoint
	adaptorPub.AsJacobian(&adaptorJac)

	var rJac secp.JacobianPoint
	secp.AddNonConst(&rPrimeJac, &adaptorJac, &rJac)
	rJac.ToAffine()

	e := schnorrChallenge(&rJac, privkey.PubKey(), msg)

	var sPrime secp.ModNScalar
	sPrime.Set(&e).Mul(&privkey.Key).Add(&k)

	return encodeAdaptorSig(rPrime, sPrime), nil
}

// VerifyAdaptorSignature checks an encrypted signature against pubkey,
// msg and the adaptor point it was encrypted under.
func VerifyAdaptorSignature(pubkey *secp.PublicKey, msg []byte, adaptorPub *secp.PublicKey, sig []byte) error {
	rPrime, sPrime, err := decodeAdaptorSig(sig)
	if err != nil {
		return err
	}

	var rPrimeJac, adaptorJac, rJac secp.JacobianPoint
	rPrime.AsJacobian(&rPrimeJac)
	adaptorPub.AsJacobian(&adaptorJac)
	secp.AddNonConst(&rPrimeJac, &adaptorJac, &rJac)
	rJac.ToAffine()

	e := schnorrChallenge(&rJac, pubkey, msg)

	var lhs secp.JacobianPoint
	secp.ScalarBaseMultNonConst(sPrime, &lhs)
	lhs.ToAffine()

	var pubJac, eP, rhs secp.JacobianPoint
	pubkey.AsJacobian(&pubJac)
	secp.ScalarMultNonConst(&e, &pubJac, &eP)
	secp.AddNonConst(&rPrimeJac, &eP, &rhs)
	rhs.ToAffine()

	if lhs.X.Equals(&rhs.X) && lhs.Y.Equals(&rhs.Y) {
		return nil
	}
	return swaperr.New(swaperr.InvalidAdaptorSignature)
}

// Adapt converts an encrypted signature into an ordinary one, given the
// adaptor secret t (the discrete log of the adaptor point T): the nonce
// becomes R = R' + T and the scalar s = s' + t.
func (AdaptorSignatures) Adapt(adaptorSecret []byte, encryptedSig []byte) ([]byte, error) {
	rPrime, sPrime, err := decodeAdaptorSig(encryptedSig)
	if err != nil {
		return nil, err
	}
	var t secp.ModNScalar
	t.SetByteSlice(adaptorSecret)

	var s secp.ModNScalar
	s.Set(sPrime).Add(&t)

	var tJac, rPrimeJac, rJac secp.JacobianPoint
	secp.ScalarBaseMultNonConst(&t, &tJac)
	rPrime.AsJacobian(&rPrimeJac)
	secp.AddNonConst(&rPrimeJac, &tJac, &rJac)
	rJac.ToAffine()
	r := secp.NewPublicKey(&rJac.X, &rJac.Y)

	return encodeRegularSig(r, s), nil
}

// RecoverKey recovers the adaptor secret t = s - s' given the adapted
// (ordinary) signature and the original encrypted signature.
func (AdaptorSignatures) RecoverKey(adaptedSig []byte, encryptedSig []byte) ([]byte, error) {
	_, s, err := decodeAdaptorSig(adaptedSig)
	if err != nil {
		return nil, err
	}
	_, sPrime, err := decodeAdaptorSig(encryptedSig)
	if err != nil {
		return nil, err
	}

	var t secp.ModNScalar
	t.Set(s).Add(sPrime.Negate())

	tBytes := t.Bytes()
	return tBytes[:], nil
}

func schnorrChallenge(r *secp.JacobianPoint, pub *secp.PublicKey, msg []byte) secp.ModNScalar {
	h := sha256.New()
	rCopy := *r
	rCopy.ToAffine()
	rPub := secp.NewPublicKey(&rCopy.X, &rCopy.Y)
	h.Write(rPub.SerializeCompressed())
	h.Write(pub.SerializeCompressed())
	h.Write(msg)
	sum := h.Sum(nil)

	var e secp.ModNScalar
	e.SetByteSlice(sum)
	return e
}

func encodeAdaptorSig(rPrime *secp.PublicKey, sPrime secp.ModNScalar) []byte {
	sBytes := sPrime.Bytes()
	out := make([]byte, 0, 65)
	out = append(out, rPrime.SerializeCompressed()...)
	out = append(out, sBytes[:]...)
	return out
}

func encodeRegularSig(rPrime *secp.PublicKey, s secp.ModNScalar) []byte {
	return encodeAdaptorSig(rPrime, s)
}

func decodeAdaptorSig(b []byte) (*secp.PublicKey, *secp.ModNScalar, error) {
	if len(b) != 65 {
		return nil, nil, swaperr.Newf("adaptor signature must be 65 bytes, got %d", len(b))
	}
	rPrime, err := secp.ParsePubKey(b[:33])
	if err != nil {
		return nil, nil, swaperr.Wrap(swaperr.InvalidAdaptorSignature, err)
	}
	var s secp.ModNScalar
	s.SetByteSlice(b[33:])
	return rPrime, &s, nil
}
