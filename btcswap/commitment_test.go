package btcswap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashCommitmentValidatesMatchingData(t *testing.T) {
	var c HashCommitment
	data := []byte("a revealed key datum")
	commitment := c.CommitTo(data)
	require.True(t, c.Validate(data, commitment))
}

func TestHashCommitmentRejectsTamperedData(t *testing.T) {
	var c HashCommitment
	commitment := c.CommitTo([]byte("original data"))
	require.False(t, c.Validate([]byte("different data"), commitment))
}

func TestHashCommitmentRejectsWrongLengthCommitment(t *testing.T) {
	var c HashCommitment
	require.False(t, c.Validate([]byte("data"), []byte{1, 2, 3}))
}

func TestHashCommitmentDeterministic(t *testing.T) {
	var c HashCommitment
	data := []byte("deterministic input")
	require.Equal(t, c.CommitTo(data), c.CommitTo(data))
}
