package swap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainswap/swapcore/swaperr"
)

func TestParseTxIdAcceptsEveryKnownValue(t *testing.T) {
	cases := []struct {
		v    uint16
		want TxId
	}{
		{1, Funding},
		{2, Lock},
		{3, Buy},
		{4, Cancel},
		{5, Refund},
		{6, Punish},
	}
	for _, c := range cases {
		got, err := ParseTxId(c.v)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
}

func TestParseTxIdRejectsUnknownValues(t *testing.T) {
	for _, v := range []uint16{0, 7, 0xFFFF} {
		_, err := ParseTxId(v)
		require.Error(t, err)
		require.True(t, errors.Is(err, swaperr.New(swaperr.UnknownType)))
	}
}

func TestTxIdStringNamesEveryVariant(t *testing.T) {
	require.Equal(t, "funding", Funding.String())
	require.Equal(t, "lock", Lock.String())
	require.Equal(t, "buy", Buy.String())
	require.Equal(t, "cancel", Cancel.String())
	require.Equal(t, "refund", Refund.String())
	require.Equal(t, "punish", Punish.String())
	require.Equal(t, "unknown", TxId(0).String())
}
