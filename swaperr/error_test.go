package swaperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMatchesSameCode(t *testing.T) {
	err := Wrap(InvalidProof, errors.New("underlying cause"))
	require.True(t, errors.Is(err, New(InvalidProof)))
	require.False(t, errors.Is(err, New(InvalidCommitment)))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(OutOfOrder, cause)
	require.Equal(t, cause, errors.Unwrap(err))
}

func TestNewHasNoCause(t *testing.T) {
	err := New(TypeMismatch)
	require.Nil(t, errors.Unwrap(err))
}

func TestErrorStringIncludesPayload(t *testing.T) {
	err := Newf("fee %d below floor %d", 10, 20)
	require.Contains(t, err.Error(), "fee 10 below floor 20")
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := Wrap(ParseFailed, errors.New("bad varint"))
	require.Contains(t, err.Error(), "bad varint")
}

func TestErrorStringFallsBackForUnknownCode(t *testing.T) {
	err := New(Code(9999))
	require.Equal(t, "unknown error code", err.Error())
}
