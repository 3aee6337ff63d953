// Package swaperr defines the closed error taxonomy shared by every
// component of the swap core. Errors are values, not strings: callers
// switch on Code rather than matching message text.
package swaperr

import "fmt"

// Code identifies the kind of failure within the swap core's closed
// taxonomy. New codes are added here, never invented ad hoc at call sites.
type Code int

const (
	// Cryptographic errors.
	InvalidSignature Code = iota + 1
	InvalidAdaptorSignature
	InvalidProof
	InvalidCommitment
	Other

	// Fee errors.
	AmountOfFeeTooHigh
	NotEnoughAssets
	MissingInputsMetadata

	// Transaction errors.
	MultiUTXOUnsupported
	MissingWitness
	MissingPublicKey
	MissingSignature
	MissingSigHashType

	// Protocol errors.
	TypeMismatch
	ParseFailed
	UnknownType
	OutOfOrder
)

var names = map[Code]string{
	InvalidSignature:        "invalid signature",
	InvalidAdaptorSignature: "invalid adaptor signature",
	InvalidProof:            "invalid cross-group dleq proof",
	InvalidCommitment:       "invalid commitment",
	Other:                   "other",
	AmountOfFeeTooHigh:      "amount of fee too high",
	NotEnoughAssets:         "not enough assets to cover fee",
	MissingInputsMetadata:   "missing inputs metadata",
	MultiUTXOUnsupported:    "multi-utxo output unsupported",
	MissingWitness:          "missing witness",
	MissingPublicKey:        "missing public key",
	MissingSignature:        "missing signature",
	MissingSigHashType:      "missing sighash type",
	TypeMismatch:            "type mismatch",
	ParseFailed:             "parse failed",
	UnknownType:             "unknown type",
	OutOfOrder:              "message received out of order",
}

// Error is a structured error carrying one Code from the closed taxonomy,
// plus an optional wrapped cause and payload for the Other variant.
type Error struct {
	Code    Code
	Payload string
	Cause   error
}

// New builds an Error for the given code with no wrapped cause.
func New(code Code) *Error {
	return &Error{Code: code}
}

// Newf builds an Other error carrying a formatted payload message.
func Newf(format string, args ...interface{}) *Error {
	return &Error{Code: Other, Payload: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error for the given code around a lower-level cause.
func Wrap(code Code, cause error) *Error {
	return &Error{Code: code, Cause: cause}
}

func (e *Error) Error() string {
	name := names[e.Code]
	if name == "" {
		name = "unknown error code"
	}
	if e.Payload != "" {
		return fmt.Sprintf("%s: %s", name, e.Payload)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", name, e.Cause)
	}
	return name
}

// Unwrap allows errors.Is/errors.As to see through to the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a swaperr.Error with the same Code, so that
// errors.Is(err, swaperr.New(swaperr.InvalidProof)) works as expected.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
