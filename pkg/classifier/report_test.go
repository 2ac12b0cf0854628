package classifier

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	require.Equal(t, "none", Category(0).String())
	require.Equal(t, "legacy", Legacy.String())
	require.Equal(t, "nested-segwit|segwit-v0", (NestedSegWit | SegWitV0).String())
	require.Equal(t, []string{"segwit-v1", "taproot"}, Categories(taprootAddress).Names())
	require.True(t, (SegWitV0 | SegWitNative).Has(SegWitV0))
	require.False(t, SegWitV0.Has(SegWitV0|SegWitNative))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name      string
		address   string
		types     []string
		cats      []string
		network   string
		known     bool
		outsideAB string
	}{
		{
			name:    "legacy",
			address: legacyAddress,
			types:   []string{"P2PKH"},
			cats:    []string{"legacy"},
			network: "mainnet",
			known:   true,
		},
		{
			name:    "testnet p2sh",
			address: testnetP2SH,
			types:   []string{"P2SH"},
			cats:    []string{"nested-segwit", "segwit-v0"},
			network: "testnet",
			known:   true,
		},
		{
			name:    "p2wsh",
			address: p2wshAddress,
			types:   []string{"P2WSH"},
			cats:    []string{"segwit-native", "segwit-v0"},
			network: "mainnet",
			known:   true,
		},
		{
			name:    "taproot",
			address: taprootAddress,
			types:   []string{"P2TR"},
			cats:    []string{"segwit-v1", "taproot"},
			network: "mainnet",
			known:   true,
		},
		{
			name:      "legacy shape with bad characters",
			address:   "1J9uwBYepTm5737RtzkSEePTevGgDGLP0O",
			types:     []string{"P2PKH"},
			cats:      []string{"legacy"},
			network:   "mainnet",
			known:     true,
			outsideAB: "0O",
		},
		{
			name:      "bech32 shape with bad characters",
			address:   "bc1qfvmj8jse4r7203mrchfyt24sjcpna3s2y35ylb",
			types:     []string{"P2WPKH"},
			cats:      []string{"segwit-native", "segwit-v0"},
			network:   "mainnet",
			known:     true,
			outsideAB: "b",
		},
		{
			name:    "unknown",
			address: unrelatedString,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Describe(tc.address)
			require.Equal(t, tc.address, r.Address)
			require.Equal(t, tc.types, r.TypeNames)
			require.Equal(t, tc.cats, r.Names)
			require.Equal(t, tc.network, r.Network)
			require.Equal(t, tc.known, r.Known)
			require.Equal(t, tc.outsideAB, r.OutsideAlphabet)
		})
	}
}

func TestReportJSON(t *testing.T) {
	raw, err := json.Marshal(Describe(nativeSegWitAddress))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"address": "bc1qfvmj8jse4r7203mrchfyt24sjcpna3s2y35ylp",
		"types": ["P2WPKH"],
		"categories": ["segwit-native", "segwit-v0"],
		"network": "mainnet",
		"known": true
	}`, string(raw))

	raw, err = json.Marshal(Describe(""))
	require.NoError(t, err)
	require.JSONEq(t, `{"address": "", "types": null, "categories": null, "known": false}`, string(raw))
}

func TestCharsets(t *testing.T) {
	require.Empty(t, InvalidBase58Chars(legacyAddress))
	require.Equal(t, []rune{'0', 'O', 'I', 'l'}, InvalidBase58Chars("10OIl"))
	require.Empty(t, InvalidBech32Chars(taprootAddress))
	require.Equal(t, []rune{'b', 'i', 'o'}, InvalidBech32Chars("bc1qbio"))
	require.Equal(t, []rune{'B'}, InvalidBech32Chars("qB"))
	require.True(t, IsValidBech32Char('q'))
	require.False(t, IsValidBech32Char('1'))
	require.True(t, IsValidBase58Char('z'))
	require.False(t, IsValidBase58Char('0'))
}
