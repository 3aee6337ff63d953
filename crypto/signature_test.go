package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignatureTypeTryIntoMatchesOwnTag(t *testing.T) {
	sig := NewRegularSignature([]byte{1, 2, 3})
	got, err := sig.TryIntoRegular()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)

	_, err = sig.TryIntoAdapted()
	require.Error(t, err)
	_, err = sig.TryIntoAdaptor()
	require.Error(t, err)
}

func TestSignatureTypeEncodeDecodeRoundTrip(t *testing.T) {
	orig := NewAdaptorSignature([]byte{0xde, 0xad, 0xbe, 0xef})

	var buf bytes.Buffer
	require.NoError(t, orig.Encode(&buf))

	var decoded SignatureType
	require.NoError(t, decoded.Decode(&buf))
	require.Equal(t, orig, decoded)
}

func TestKeyTypeTryIntoMatchesOwnTag(t *testing.T) {
	k := NewPublicAccordantKey([]byte{9, 9})
	got, err := k.TryIntoPublicAccordant()
	require.NoError(t, err)
	require.Equal(t, []byte{9, 9}, got)

	_, err = k.TryIntoPublicArbitrating()
	require.Error(t, err)
	_, err = k.TryIntoSharedPrivate()
	require.Error(t, err)
}

func TestKeyTypeEncodeDecodeRoundTrip(t *testing.T) {
	orig := NewSharedPrivateKey([]byte("a view key"))

	var buf bytes.Buffer
	require.NoError(t, orig.Encode(&buf))

	var decoded KeyType
	require.NoError(t, decoded.Decode(&buf))
	require.Equal(t, orig, decoded)
}

func TestKeyTypeEncodeDecodeEmptyBytes(t *testing.T) {
	orig := NewPublicArbitratingKey(nil)

	var buf bytes.Buffer
	require.NoError(t, orig.Encode(&buf))

	var decoded KeyType
	require.NoError(t, decoded.Decode(&buf))
	require.Equal(t, KeyTagPublicArbitrating, decoded.Tag)
	require.Empty(t, decoded.Bytes)
}
