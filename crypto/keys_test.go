package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArbitratingKeyStringNamesEveryVariant(t *testing.T) {
	require.Equal(t, "fund", Fund.String())
	require.Equal(t, "buy", Buy.String())
	require.Equal(t, "cancel", Cancel.String())
	require.Equal(t, "refund", Refund.String())
	require.Equal(t, "punish", Punish.String())
	require.Equal(t, "adaptor", Adaptor.String())
	require.Equal(t, "unknown", ArbitratingKey(99).String())
}

func TestAccordantKeyStringIsSpend(t *testing.T) {
	require.Equal(t, "spend", Spend.String())
}

func TestSharedPrivateKeyStringIsView(t *testing.T) {
	require.Equal(t, "view", View.String())
}
