package classifier_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/Amr-9/AddrScope/internal/fixture"
	"github.com/Amr-9/AddrScope/pkg/classifier"
)

const derivedKeys = 32

func inLengths(address string, lengths []int) bool {
	n := utf8.RuneCountInString(address)
	for _, l := range lengths {
		if n == l {
			return true
		}
	}
	return false
}

// TestDerivedAddresses checks every table row against addresses encoded
// from random keys. Bech32 lengths are fixed by the program size, so those
// rows always match. Base58 lengths depend on leading zero bytes, so those
// rows match exactly when the derived length falls in the configured range.
func TestDerivedAddresses(t *testing.T) {
	c, err := classifier.New(append(classifier.DefaultTable(), classifier.RegtestRules()...))
	require.NoError(t, err)

	for i := 0; i < derivedKeys; i++ {
		_, pub, err := fixture.GenerateKeyPair()
		require.NoError(t, err)

		for _, rule := range c.Table() {
			addr, err := fixture.DeriveAddress(pub, rule.Type, rule.Network)
			require.NoError(t, err)

			want := true
			if rule.Type.IsBase58() {
				want = inLengths(addr, rule.Lengths)
			}
			require.Equal(t, want, c.Is(addr, rule.Type), "%s %s %s", rule.Type, rule.Network, addr)

			if !want {
				continue
			}
			require.Equal(t, []classifier.AddressType{rule.Type}, c.Types(addr), addr)

			net, ok := c.Network(addr)
			require.True(t, ok)
			require.Equal(t, rule.Network, net, addr)

			cat := c.Categories(addr)
			require.Equal(t, c.IsSegWitNative(addr) || c.IsNestedSegWit(addr), cat.Has(classifier.SegWitV0))
			require.Equal(t, c.IsNestedSegWit(addr), c.IsWrappedSegWit(addr))
			require.Equal(t, c.IsTaproot(addr), c.IsSegWitV1(addr))
		}
	}
}

// P2SH and testnet P2PKH version bytes leave no room for length variance.
func TestDerivedFixedBase58Lengths(t *testing.T) {
	for i := 0; i < derivedKeys; i++ {
		_, pub, err := fixture.GenerateKeyPair()
		require.NoError(t, err)

		addr, err := fixture.DeriveAddress(pub, classifier.P2SH, classifier.Mainnet)
		require.NoError(t, err)
		require.Len(t, addr, 34)
		require.True(t, classifier.IsNestedSegWit(addr), addr)

		addr, err = fixture.DeriveAddress(pub, classifier.P2SH, classifier.Testnet)
		require.NoError(t, err)
		require.Len(t, addr, 35)
		require.True(t, classifier.IsNestedSegWit(addr), addr)

		addr, err = fixture.DeriveAddress(pub, classifier.P2PKH, classifier.Testnet)
		require.NoError(t, err)
		require.Len(t, addr, 34)
		require.True(t, classifier.IsLegacy(addr), addr)
	}
}

func TestForeignLookAlikes(t *testing.T) {
	for i := 0; i < derivedKeys; i++ {
		_, pub, err := fixture.GenerateKeyPair()
		require.NoError(t, err)

		for _, addr := range []string{fixture.EthereumAddress(pub), fixture.TronAddress(pub)} {
			require.Equal(t, classifier.Category(0), classifier.Categories(addr), addr)
			require.False(t, classifier.Describe(addr).Known, addr)
		}
	}
}
