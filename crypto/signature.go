package crypto

import (
	"io"

	"github.com/chainswap/swapcore/swaperr"
	"github.com/chainswap/swapcore/swapwire"
)

// Signatures is implemented once per arbitrating chain and crypto engine.
// AdaptorSignature is only required of arbitrating chains; accordant chains
// never produce on-chain signatures themselves.
type Signatures interface {
	// Adapt decrypts an adaptor signature into a regular signature using
	// the adaptor secret. Adapt and RecoverKey are inverses:
	// RecoverKey(Adapt(sk, adaptorSig), adaptorSig) == sk.
	Adapt(privkey []byte, adaptorSig []byte) (sig []byte, err error)
	// RecoverKey recovers the adaptor secret given a regular signature
	// and the adaptor signature it was decrypted from.
	RecoverKey(sig []byte, adaptorSig []byte) (adaptorSecret []byte, err error)
}

// SignatureTypeTag is the wire tag assigned to each SignatureType variant.
// The assignment is fixed by this implementation's wire layout: Adaptor=0,
// Adapted=1, Regular=2.
type SignatureTypeTag uint16

const (
	SigTagAdaptor SignatureTypeTag = 0
	SigTagAdapted SignatureTypeTag = 1
	SigTagRegular SignatureTypeTag = 2
)

// SignatureType is the tagged union of the three signature shapes that
// flow through the protocol: a still-encrypted Adaptor signature, an
// Adapted (decrypted) signature, or an ordinary Regular signature.
type SignatureType struct {
	Tag   SignatureTypeTag
	Bytes []byte
}

// NewRegularSignature wraps a regular signature.
func NewRegularSignature(sig []byte) SignatureType {
	return SignatureType{Tag: SigTagRegular, Bytes: sig}
}

// NewAdaptedSignature wraps a decrypted adaptor signature.
func NewAdaptedSignature(sig []byte) SignatureType {
	return SignatureType{Tag: SigTagAdapted, Bytes: sig}
}

// NewAdaptorSignature wraps an adaptor (still-encrypted) signature.
func NewAdaptorSignature(sig []byte) SignatureType {
	return SignatureType{Tag: SigTagAdaptor, Bytes: sig}
}

// TryIntoRegular narrows the tagged union to its Regular payload, failing
// with TypeMismatch if the wrong variant is stored.
func (s SignatureType) TryIntoRegular() ([]byte, error) {
	if s.Tag != SigTagRegular {
		return nil, swaperr.New(swaperr.TypeMismatch)
	}
	return s.Bytes, nil
}

// TryIntoAdapted narrows the tagged union to its Adapted payload.
func (s SignatureType) TryIntoAdapted() ([]byte, error) {
	if s.Tag != SigTagAdapted {
		return nil, swaperr.New(swaperr.TypeMismatch)
	}
	return s.Bytes, nil
}

// TryIntoAdaptor narrows the tagged union to its Adaptor payload.
func (s SignatureType) TryIntoAdaptor() ([]byte, error) {
	if s.Tag != SigTagAdaptor {
		return nil, swaperr.New(swaperr.TypeMismatch)
	}
	return s.Bytes, nil
}

// Encode writes the tagged enum shape: a 2-byte tag followed by the
// variant payload.
func (s SignatureType) Encode(w io.Writer) error {
	if err := swapwire.WriteUint16(w, uint16(s.Tag)); err != nil {
		return err
	}
	return swapwire.WriteVarBytes(w, s.Bytes)
}

// Decode reads the shape written by Encode.
func (s *SignatureType) Decode(r io.Reader) error {
	tag, err := swapwire.ReadUint16(r)
	if err != nil {
		return err
	}
	b, err := swapwire.ReadVarBytes(r)
	if err != nil {
		return err
	}
	s.Tag = SignatureTypeTag(tag)
	s.Bytes = b
	return nil
}

// KeyTypeTag is the wire tag assigned to each KeyType variant.
type KeyTypeTag uint16

const (
	KeyTagPublicArbitrating KeyTypeTag = 0
	KeyTagPublicAccordant   KeyTypeTag = 1
	KeyTagSharedPrivate     KeyTypeTag = 2
)

// KeyType is the tagged union of the three key shapes that flow through
// the protocol's commitment/reveal and key datum machinery.
type KeyType struct {
	Tag   KeyTypeTag
	Bytes []byte
}

// NewPublicArbitratingKey wraps an arbitrating-chain public key.
func NewPublicArbitratingKey(b []byte) KeyType {
	return KeyType{Tag: KeyTagPublicArbitrating, Bytes: b}
}

// NewPublicAccordantKey wraps an accordant-chain public key.
func NewPublicAccordantKey(b []byte) KeyType {
	return KeyType{Tag: KeyTagPublicAccordant, Bytes: b}
}

// NewSharedPrivateKey wraps a shared (to-be-disclosed) private key.
func NewSharedPrivateKey(b []byte) KeyType {
	return KeyType{Tag: KeyTagSharedPrivate, Bytes: b}
}

// TryIntoPublicArbitrating narrows the tagged union to an arbitrating
// public key, failing with TypeMismatch otherwise.
func (k KeyType) TryIntoPublicArbitrating() ([]byte, error) {
	if k.Tag != KeyTagPublicArbitrating {
		return nil, swaperr.New(swaperr.TypeMismatch)
	}
	return k.Bytes, nil
}

// TryIntoPublicAccordant narrows the tagged union to an accordant public
// key, failing with TypeMismatch otherwise.
func (k KeyType) TryIntoPublicAccordant() ([]byte, error) {
	if k.Tag != KeyTagPublicAccordant {
		return nil, swaperr.New(swaperr.TypeMismatch)
	}
	return k.Bytes, nil
}

// TryIntoSharedPrivate narrows the tagged union to shared private key
// material, failing with TypeMismatch otherwise.
func (k KeyType) TryIntoSharedPrivate() ([]byte, error) {
	if k.Tag != KeyTagSharedPrivate {
		return nil, swaperr.New(swaperr.TypeMismatch)
	}
	return k.Bytes, nil
}

// Encode writes the tagged enum shape: a 2-byte tag followed by the
// variant payload.
func (k KeyType) Encode(w io.Writer) error {
	if err := swapwire.WriteUint16(w, uint16(k.Tag)); err != nil {
		return err
	}
	return swapwire.WriteVarBytes(w, k.Bytes)
}

// Decode reads the shape written by Encode.
func (k *KeyType) Decode(r io.Reader) error {
	tag, err := swapwire.ReadUint16(r)
	if err != nil {
		return err
	}
	b, err := swapwire.ReadVarBytes(r)
	if err != nil {
		return err
	}
	k.Tag = KeyTypeTag(tag)
	k.Bytes = b
	return nil
}
